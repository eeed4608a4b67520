package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentError(t *testing.T) {
	err := error(&IdentError{Kind: IdentTable, Name: "usuarios"})

	assert.ErrorIs(t, err, ErrInvalidIdentifier)
	assert.Contains(t, err.Error(), `"usuarios"`)

	var ie *IdentError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, IdentTable, ie.Kind)
}

func TestQueryError(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed")
	err := error(&QueryError{Op: "create planes", Err: cause})

	assert.ErrorIs(t, err, ErrQueryFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "create planes")
}

func TestTxError(t *testing.T) {
	cause := errors.New("no such column")
	err := error(&TxError{Op: "cascade toggle planes", Err: cause})

	assert.ErrorIs(t, err, ErrTxFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "rolled back")
	assert.NotErrorIs(t, err, ErrQueryFailed)
}
