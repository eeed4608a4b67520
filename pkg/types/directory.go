package types

import "context"

// Directory is the operation set of the generic data-access layer. Callers
// supply table and field names as plain strings; every identifier is
// validated internally against the static allowlist, and a miss fails with
// an IdentError before any store call is issued.
type Directory interface {
	// GetAll returns every row of the table, unfiltered.
	GetAll(ctx context.Context, table string) ([]Record, error)

	// GetByID returns the first row matching id, or (nil, nil) when absent.
	GetByID(ctx context.Context, table, idField string, id any) (Record, error)

	// Create inserts data and returns it merged with the generated id.
	Create(ctx context.Context, table string, data Record) (Record, error)

	// Update unconditionally applies data to matching rows and returns the
	// merged {idField: id, ...data} view.
	Update(ctx context.Context, table, idField string, id any, data Record) (Record, error)

	// Delete removes matching rows and reports whether any were removed.
	Delete(ctx context.Context, table, idField string, id any) (bool, error)

	// CheckUnique reports whether no row has field = value, optionally
	// excluding one row by id.
	CheckUnique(ctx context.Context, table, field string, value any, excludeIDField string, excludeID any) (bool, error)

	// HasRelations reports whether any configured dependent table
	// references id.
	HasRelations(ctx context.Context, table, idField string, id any) (bool, error)

	// ReplaceRelations replaces the join table's full value set for one
	// parent id. A nil values slice is a no-op.
	ReplaceRelations(ctx context.Context, joinTable, parentIDField string, parentID any, valueField string, values []any) error

	// UpdateByName updates the row keyed by nameField = oldName and keeps
	// the directory's denormalized copy of the name in sync, atomically.
	UpdateByName(ctx context.Context, table, nameField, oldName string, data Record, denormField string) (RenameResult, error)

	// CascadeToggleStatus flips the row's estado and propagates the new
	// status to dependents per the table's cascade rules, atomically.
	CascadeToggleStatus(ctx context.Context, table, idField string, id any) (ToggleResult, error)

	// Close releases the store's connection pool.
	Close() error
}
