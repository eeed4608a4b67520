package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/andescore/cartilla/pkg/types"
)

// ReplaceRelations replaces the full set of join-table rows for one parent:
// delete every existing (parentID, *) pair, then bulk-insert one row per
// value. An empty non-nil values slice means "no longer associated with
// anything"; a nil slice means "no change requested" and is a no-op.
//
// The two steps are not transactional on their own. Callers that need
// atomicity with a surrounding operation wrap the call in a shared
// transaction.
func (s *Store) ReplaceRelations(ctx context.Context, joinTable, parentIDField string, parentID any, valueField string, values []any) error {
	if values == nil {
		return nil
	}

	jt, err := s.alw.Table(joinTable)
	if err != nil {
		return err
	}
	pf, err := s.alw.Field(parentIDField)
	if err != nil {
		return err
	}
	vf, err := s.alw.Field(valueField)
	if err != nil {
		return err
	}

	op := fmt.Sprintf("replace relations %s", joinTable)
	if _, err := s.exec.exec(ctx, op,
		fmt.Sprintf("DELETE FROM %s WHERE %s = ?", jt, pf), parentID); err != nil {
		return err
	}

	if len(values) > 0 {
		placeholders := make([]string, len(values))
		args := make([]any, 0, 2*len(values))
		for i, v := range values {
			placeholders[i] = "(?, ?)"
			args = append(args, parentID, v)
		}
		query := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES %s",
			jt, pf, vf, strings.Join(placeholders, ", "))
		if _, err := s.exec.exec(ctx, op, query, args...); err != nil {
			return err
		}
	}

	s.auditBestEffort(ctx, auditEntry{
		Operation: "relations",
		Table:     joinTable,
		Key:       parentID,
		Detail:    types.Record{valueField: values},
	})
	return nil
}
