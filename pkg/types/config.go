package types

import (
	"errors"
	"time"
)

// Config holds driver selection and connection parameters for opening a
// store.
type Config struct {
	Driver  string `json:"driver" yaml:"driver"`
	DataDir string `json:"data_dir" yaml:"data_dir"` // sqlite: directory holding cartilla.db
	DSN     string `json:"dsn" yaml:"dsn"`           // postgres: connection URL

	MaxOpenConns    int `json:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns    int `json:"max_idle_conns" yaml:"max_idle_conns"`
	ConnMaxLifetime int `json:"conn_max_lifetime_minutes" yaml:"conn_max_lifetime_minutes"`
}

// Supported driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config validation errors.
var (
	ErrDriverEmpty   = errors.New("driver must not be empty")
	ErrDriverUnknown = errors.New("unknown driver")
	ErrDSNEmpty      = errors.New("dsn required for postgres driver")
)

// knownDrivers lists the drivers that Validate accepts.
var knownDrivers = map[string]bool{
	DriverSQLite:   true,
	DriverPostgres: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Driver == "" {
		return ErrDriverEmpty
	}
	if !knownDrivers[c.Driver] {
		return ErrDriverUnknown
	}
	if c.Driver == DriverPostgres && c.DSN == "" {
		return ErrDSNEmpty
	}
	return nil
}

// GetMaxOpenConns returns the configured pool ceiling, defaulting to 10.
func (c Config) GetMaxOpenConns() int {
	if c.MaxOpenConns > 0 {
		return c.MaxOpenConns
	}
	return 10
}

// GetMaxIdleConns returns the configured idle pool size, defaulting to 5.
func (c Config) GetMaxIdleConns() int {
	if c.MaxIdleConns > 0 {
		return c.MaxIdleConns
	}
	return 5
}

// GetConnMaxLifetime returns the configured connection lifetime, defaulting
// to 30 minutes.
func (c Config) GetConnMaxLifetime() time.Duration {
	if c.ConnMaxLifetime > 0 {
		return time.Duration(c.ConnMaxLifetime) * time.Minute
	}
	return 30 * time.Minute
}
