package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/andescore/cartilla/pkg/types"
)

// GetAll returns every row of the table, unfiltered. Pagination, if needed,
// is the caller's concern.
func (s *Store) GetAll(ctx context.Context, table string) ([]types.Record, error) {
	t, err := s.alw.Table(table)
	if err != nil {
		return nil, err
	}
	return s.exec.queryAll(ctx, fmt.Sprintf("get all %s", table),
		fmt.Sprintf("SELECT * FROM %s", t))
}

// GetByID returns the first row matching id, or (nil, nil) when no row
// matches. Absence is a result here, not an error.
func (s *Store) GetByID(ctx context.Context, table, idField string, id any) (types.Record, error) {
	t, err := s.alw.Table(table)
	if err != nil {
		return nil, err
	}
	idf, err := s.alw.Field(idField)
	if err != nil {
		return nil, err
	}

	rows, err := s.exec.queryAll(ctx, fmt.Sprintf("get %s by id", table),
		fmt.Sprintf("SELECT * FROM %s WHERE %s = ? LIMIT 1", t, idf), id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Create inserts data as a new row and returns data merged with the
// generated id under the table's id column. Constraint violations surface
// as QueryError; this layer does not translate them.
func (s *Store) Create(ctx context.Context, table string, data types.Record) (types.Record, error) {
	t, err := s.alw.Table(table)
	if err != nil {
		return nil, err
	}
	cols, args, err := s.validateColumns(data)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, types.ErrEmptyRecord
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t, joinIdents(cols, ", "), placeholders)

	idCol := Ident(s.schema.IDColumns[table])
	op := fmt.Sprintf("create %s", table)
	id, haveID, err := s.exec.insert(ctx, op, query, idCol, args...)
	if err != nil {
		return nil, err
	}

	merged := data.Clone()
	var key any
	if haveID {
		merged[string(idCol)] = id
		key = id
	}
	s.auditBestEffort(ctx, auditEntry{Operation: "create", Table: table, Key: key, Detail: data})
	return merged, nil
}

// Update applies data to the row(s) matching id and returns the merged
// {idField: id, ...data} view. There is deliberately no existence check;
// a no-match update reports the same view as a matched one.
func (s *Store) Update(ctx context.Context, table, idField string, id any, data types.Record) (types.Record, error) {
	t, err := s.alw.Table(table)
	if err != nil {
		return nil, err
	}
	idf, err := s.alw.Field(idField)
	if err != nil {
		return nil, err
	}
	cols, args, err := s.validateColumns(data)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, types.ErrEmptyRecord
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", t, setClause(cols), idf)
	args = append(args, id)

	if _, err := s.exec.exec(ctx, fmt.Sprintf("update %s", table), query, args...); err != nil {
		return nil, err
	}

	merged := data.Clone()
	merged[idField] = id
	s.auditBestEffort(ctx, auditEntry{Operation: "update", Table: table, Key: id, Detail: data})
	return merged, nil
}

// Delete removes the row(s) matching id and reports whether at least one
// row was removed.
func (s *Store) Delete(ctx context.Context, table, idField string, id any) (bool, error) {
	t, err := s.alw.Table(table)
	if err != nil {
		return false, err
	}
	idf, err := s.alw.Field(idField)
	if err != nil {
		return false, err
	}

	affected, err := s.exec.exec(ctx, fmt.Sprintf("delete %s", table),
		fmt.Sprintf("DELETE FROM %s WHERE %s = ?", t, idf), id)
	if err != nil {
		return false, err
	}
	if affected > 0 {
		s.auditBestEffort(ctx, auditEntry{Operation: "delete", Table: table, Key: id})
	}
	return affected > 0, nil
}

// CheckUnique reports whether no row has field = value, optionally excluding
// one row by id for update-in-place checks. Counts instead of fetching.
func (s *Store) CheckUnique(ctx context.Context, table, field string, value any, excludeIDField string, excludeID any) (bool, error) {
	t, err := s.alw.Table(table)
	if err != nil {
		return false, err
	}
	f, err := s.alw.Field(field)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", t, f)
	args := []any{value}
	if excludeIDField != "" {
		xf, err := s.alw.Field(excludeIDField)
		if err != nil {
			return false, err
		}
		query += fmt.Sprintf(" AND %s <> ?", xf)
		args = append(args, excludeID)
	}

	n, err := s.exec.count(ctx, fmt.Sprintf("check unique %s.%s", table, field), query, args...)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// HasRelations reports whether any row in the table's statically configured
// dependent tables references id. Tables with no configured dependents
// report false.
func (s *Store) HasRelations(ctx context.Context, table, idField string, id any) (bool, error) {
	if _, err := s.alw.Table(table); err != nil {
		return false, err
	}
	if _, err := s.alw.Field(idField); err != nil {
		return false, err
	}

	for _, dep := range s.schema.Dependents[table] {
		// Dependent identifiers were validated when the schema was loaded.
		n, err := s.exec.count(ctx, fmt.Sprintf("check relations %s->%s", table, dep.Table),
			fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", dep.Table, dep.Column), id)
		if err != nil {
			return false, err
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}

// validateColumns passes every key of data through the field allowlist and
// returns the columns in deterministic order with their values aligned.
func (s *Store) validateColumns(data types.Record) ([]Ident, []any, error) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cols := make([]Ident, 0, len(keys))
	args := make([]any, 0, len(keys))
	for _, k := range keys {
		c, err := s.alw.Field(k)
		if err != nil {
			return nil, nil, err
		}
		cols = append(cols, c)
		args = append(args, data[k])
	}
	return cols, args, nil
}

func joinIdents(cols []Ident, sep string) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = string(c)
	}
	return strings.Join(parts, sep)
}

func setClause(cols []Ident) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprintf("%s = ?", c)
	}
	return strings.Join(parts, ", ")
}
