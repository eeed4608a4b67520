package types

import (
	"errors"
	"fmt"
)

// Operation errors surfaced by the data-access layer.
var (
	// ErrNotFound reports that no row matched the given id or name for an
	// operation that requires existence (cascade toggle, name-keyed reads).
	ErrNotFound = errors.New("row not found")

	// ErrUnsupportedCascade reports a cascade toggle on a table with no
	// configured rule set. Cascading is opt-in per table.
	ErrUnsupportedCascade = errors.New("table has no cascade rules")

	// ErrInvalidIdentifier reports a table or column name outside the static
	// allowlist. Match against it with errors.Is; the concrete *IdentError
	// carries the offending name.
	ErrInvalidIdentifier = errors.New("identifier not in allowlist")

	// ErrEmptyRecord reports a create or update with no column/value pairs.
	ErrEmptyRecord = errors.New("record has no columns")

	// ErrQueryFailed and ErrTxFailed classify the typed errors below for
	// errors.Is checks.
	ErrQueryFailed = errors.New("query failed")
	ErrTxFailed    = errors.New("transaction failed")
)

// Identifier kinds for IdentError.
const (
	IdentTable = "table"
	IdentField = "field"
)

// IdentError reports a table or column name rejected by the allowlist.
// It is always a caller programming error, never retried.
type IdentError struct {
	Kind string // IdentTable or IdentField
	Name string // the offending identifier, verbatim
}

func (e *IdentError) Error() string {
	return fmt.Sprintf("%s %q not in allowlist", e.Kind, e.Name)
}

// Unwrap makes errors.Is(err, ErrInvalidIdentifier) hold for IdentError.
func (e *IdentError) Unwrap() error { return ErrInvalidIdentifier }

// QueryError wraps a statement the underlying store rejected (constraint
// violation, syntax, connectivity). Op names the operation for diagnostics.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// Is classifies any QueryError as ErrQueryFailed.
func (e *QueryError) Is(target error) bool { return target == ErrQueryFailed }

// TxError wraps a failure inside a multi-statement atomic operation. By the
// time a TxError is returned the transaction has been rolled back; no partial
// effect is observable.
type TxError struct {
	Op  string
	Err error
}

func (e *TxError) Error() string {
	return fmt.Sprintf("%s: rolled back: %v", e.Op, e.Err)
}

func (e *TxError) Unwrap() error { return e.Err }

// Is classifies any TxError as ErrTxFailed.
func (e *TxError) Is(target error) bool { return target == ErrTxFailed }
