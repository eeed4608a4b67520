// Tests for Config validation and defaults.
package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"valid sqlite", Config{Driver: DriverSQLite}, nil},
		{"valid postgres", Config{Driver: DriverPostgres, DSN: "postgres://localhost/cartilla"}, nil},
		{"empty driver", Config{}, ErrDriverEmpty},
		{"unknown driver", Config{Driver: "mysql"}, ErrDriverUnknown},
		{"postgres without dsn", Config{Driver: DriverPostgres}, ErrDSNEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	assert.Equal(t, 10, cfg.GetMaxOpenConns())
	assert.Equal(t, 5, cfg.GetMaxIdleConns())
	assert.Equal(t, 30*time.Minute, cfg.GetConnMaxLifetime())

	cfg = Config{MaxOpenConns: 2, MaxIdleConns: 1, ConnMaxLifetime: 5}
	assert.Equal(t, 2, cfg.GetMaxOpenConns())
	assert.Equal(t, 1, cfg.GetMaxIdleConns())
	assert.Equal(t, 5*time.Minute, cfg.GetConnMaxLifetime())
}
