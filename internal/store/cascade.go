package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/andescore/cartilla/pkg/types"
)

// ValueSelector names which parent value a cascade rule binds into its
// condition.
type ValueSelector int

const (
	// SelectParentID binds the toggled row's id.
	SelectParentID ValueSelector = iota
	// SelectParentName binds the toggled row's display name. A rule with
	// this selector is skipped when the parent has no name.
	SelectParentName
)

// Subquery describes a nested SELECT a rule's column is compared against:
// "Column IN (SELECT Select FROM From WHERE Where = ?)" when Many is set,
// scalar equality otherwise. The bound value comes from the rule's selector.
type Subquery struct {
	Select string
	From   string
	Where  string
	Many   bool
}

// CascadeRule is one declarative propagation step: set the status column of
// every row in Table whose Column matches the selected parent value. Rules
// are static configuration; adding a cascading entity type is pure data.
type CascadeRule struct {
	Table    string
	Column   string
	Selector ValueSelector
	Subquery *Subquery
}

// compiledRule is a rule with its UPDATE statement already built from
// validated identifiers.
type compiledRule struct {
	sql      string
	selector ValueSelector
}

// compileRule validates every identifier the rule names and renders its
// UPDATE statement. Placeholder order: new status, then the selected value.
func compileRule(alw *Allowlist, r CascadeRule) (compiledRule, error) {
	table, err := alw.Table(r.Table)
	if err != nil {
		return compiledRule{}, err
	}
	column, err := alw.Field(r.Column)
	if err != nil {
		return compiledRule{}, err
	}
	status, err := alw.Field(statusColumn)
	if err != nil {
		return compiledRule{}, err
	}

	cond := fmt.Sprintf("%s = ?", column)
	if r.Subquery != nil {
		sel, err := alw.Field(r.Subquery.Select)
		if err != nil {
			return compiledRule{}, err
		}
		from, err := alw.Table(r.Subquery.From)
		if err != nil {
			return compiledRule{}, err
		}
		where, err := alw.Field(r.Subquery.Where)
		if err != nil {
			return compiledRule{}, err
		}
		inner := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", sel, from, where)
		if r.Subquery.Many {
			cond = fmt.Sprintf("%s IN (%s)", column, inner)
		} else {
			cond = fmt.Sprintf("%s = (%s)", column, inner)
		}
	}

	return compiledRule{
		sql:      fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s", table, status, cond),
		selector: r.Selector,
	}, nil
}

// CascadeToggleStatus flips the estado of the row identified by
// (table, idField, id) and propagates the new status to every dependent row
// selected by the table's cascade rules, all inside one transaction.
//
// Returns ErrNotFound when no such row exists and ErrUnsupportedCascade when
// the table has no configured rule set. Any failure after the transaction
// opens rolls back everything and surfaces as a TxError; no partial cascade
// is observable.
func (s *Store) CascadeToggleStatus(ctx context.Context, table, idField string, id any) (types.ToggleResult, error) {
	var res types.ToggleResult

	t, err := s.alw.Table(table)
	if err != nil {
		return res, err
	}
	idf, err := s.alw.Field(idField)
	if err != nil {
		return res, err
	}
	rules, ok := s.rules[table]
	if !ok {
		return res, types.ErrUnsupportedCascade
	}

	current, name, err := s.readStatus(ctx, t, idf, table, id)
	if err != nil {
		return res, err
	}
	newStatus, err := types.ToggleStatus(current)
	if err != nil {
		return res, err
	}

	op := fmt.Sprintf("cascade toggle %s", table)
	tx, err := s.exec.begin(ctx, op)
	if err != nil {
		return res, &types.TxError{Op: op, Err: err}
	}
	defer tx.Rollback()

	for _, r := range rules {
		value, ok := selectValue(r.selector, id, name)
		if !ok {
			continue
		}
		if _, err := tx.ExecContext(ctx, s.exec.rebind(r.sql), newStatus, value); err != nil {
			return res, &types.TxError{Op: op, Err: err}
		}
	}

	parent := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", t, statusColumn, idf)
	if _, err := tx.ExecContext(ctx, s.exec.rebind(parent), newStatus, id); err != nil {
		return res, &types.TxError{Op: op, Err: err}
	}

	if err := s.auditTx(ctx, tx, auditEntry{
		Operation: "toggle",
		Table:     table,
		Key:       id,
		Detail:    types.Record{statusColumn: newStatus},
	}); err != nil {
		return res, &types.TxError{Op: op, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return res, &types.TxError{Op: op, Err: err}
	}
	return types.ToggleResult{OK: true, NewStatus: newStatus}, nil
}

// readStatus fetches the current estado and, when the table has a display
// name column, the name the table's by-name rules bind.
func (s *Store) readStatus(ctx context.Context, t, idf Ident, table string, id any) (string, sql.NullString, error) {
	var name sql.NullString

	cols := []string{statusColumn}
	nameCol, hasName := s.schema.NameColumns[table]
	if hasName {
		cols = append(cols, nameCol)
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", strings.Join(cols, ", "), t, idf)

	rows, err := s.exec.queryAll(ctx, "read status", query, id)
	if err != nil {
		return "", name, err
	}
	if len(rows) == 0 {
		return "", name, types.ErrNotFound
	}

	current, _ := rows[0][statusColumn].(string)
	if hasName {
		if v, ok := rows[0][nameCol].(string); ok {
			name = sql.NullString{String: v, Valid: true}
		}
	}
	return current, name, nil
}

// selectValue resolves a rule's bound value. The second return is false when
// the rule does not apply this call (name-bound rule on a nameless parent).
func selectValue(sel ValueSelector, id any, name sql.NullString) (any, bool) {
	switch sel {
	case SelectParentName:
		if !name.Valid {
			return nil, false
		}
		return name.String, true
	default:
		return id, true
	}
}
