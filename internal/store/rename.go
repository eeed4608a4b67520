package store

import (
	"context"
	"fmt"

	"github.com/andescore/cartilla/pkg/types"
)

// UpdateByName updates the row of table addressed by nameField = oldName
// with data, and, when data renames the row and denormField is given,
// rewrites every row of the directory table whose denormField text equals
// oldName — one transaction, all or nothing.
//
// Zero matched rows is reported, not failed: the result's Renamed count
// carries the number of denormalized rows rewritten, and existence checks
// belong to the caller.
func (s *Store) UpdateByName(ctx context.Context, table, nameField, oldName string, data types.Record, denormField string) (types.RenameResult, error) {
	res := types.RenameResult{OldName: oldName, NewName: oldName}

	t, err := s.alw.Table(table)
	if err != nil {
		return res, err
	}
	nf, err := s.alw.Field(nameField)
	if err != nil {
		return res, err
	}
	cols, args, err := s.validateColumns(data)
	if err != nil {
		return res, err
	}
	if len(cols) == 0 {
		return res, types.ErrEmptyRecord
	}

	var dt, df Ident
	if denormField != "" {
		dt, err = s.alw.Table(s.schema.DenormTable)
		if err != nil {
			return res, err
		}
		df, err = s.alw.Field(denormField)
		if err != nil {
			return res, err
		}
	}

	newName, renamed := data[nameField].(string)
	renamed = renamed && newName != oldName

	op := fmt.Sprintf("rename %s", table)
	tx, err := s.exec.begin(ctx, op)
	if err != nil {
		return res, &types.TxError{Op: op, Err: err}
	}
	defer tx.Rollback()

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", t, setClause(cols), nf)
	if _, err := tx.ExecContext(ctx, s.exec.rebind(query), append(args, oldName)...); err != nil {
		return res, &types.TxError{Op: op, Err: err}
	}

	if renamed && denormField != "" {
		sync := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", dt, df, df)
		sr, err := tx.ExecContext(ctx, s.exec.rebind(sync), newName, oldName)
		if err != nil {
			return res, &types.TxError{Op: op, Err: err}
		}
		if res.Renamed, err = sr.RowsAffected(); err != nil {
			return res, &types.TxError{Op: op, Err: err}
		}
	}

	if err := s.auditTx(ctx, tx, auditEntry{
		Operation: "rename",
		Table:     table,
		Key:       oldName,
		Detail:    data,
	}); err != nil {
		return res, &types.TxError{Op: op, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return res, &types.TxError{Op: op, Err: err}
	}

	res.OK = true
	if renamed {
		res.NewName = newName
	}
	return res, nil
}
