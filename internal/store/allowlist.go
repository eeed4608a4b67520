package store

import (
	"github.com/andescore/cartilla/pkg/types"
)

// Ident is a table or column name that has passed allowlist validation.
// Query builders accept only Ident, never raw strings, so every identifier
// that reaches SQL text has gone through the gate.
type Ident string

// Allowlist holds the static sets of permitted table and column names.
// It is immutable after construction; concurrent reads need no locking.
type Allowlist struct {
	tables map[string]struct{}
	fields map[string]struct{}
}

// NewAllowlist builds an allowlist from the given table and field names.
func NewAllowlist(tables, fields []string) *Allowlist {
	a := &Allowlist{
		tables: make(map[string]struct{}, len(tables)),
		fields: make(map[string]struct{}, len(fields)),
	}
	for _, t := range tables {
		a.tables[t] = struct{}{}
	}
	for _, f := range fields {
		a.fields[f] = struct{}{}
	}
	return a
}

// Table validates a table name by exact match. No case folding or trimming
// is performed; anything but an exact member fails.
func (a *Allowlist) Table(name string) (Ident, error) {
	if _, ok := a.tables[name]; !ok {
		return "", &types.IdentError{Kind: types.IdentTable, Name: name}
	}
	return Ident(name), nil
}

// Field validates a column name by exact match.
func (a *Allowlist) Field(name string) (Ident, error) {
	if _, ok := a.fields[name]; !ok {
		return "", &types.IdentError{Kind: types.IdentField, Name: name}
	}
	return Ident(name), nil
}
