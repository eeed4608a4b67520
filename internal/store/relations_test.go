// Tests for join-table set replacement.
package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andescore/cartilla/pkg/types"
)

// planIDs returns the id_plan values the join table holds for one prestador.
func planIDs(t *testing.T, s *Store, prestadorID int64) []int64 {
	t.Helper()
	rows, err := s.GetAll(context.Background(), types.TablePrestadorPlanes)
	require.NoError(t, err)

	var ids []int64
	for _, r := range rows {
		if r["id_prestador"] == prestadorID {
			ids = append(ids, r["id_plan"].(int64))
		}
	}
	return ids
}

func TestReplaceRelations_ReplacesFullSet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	prestadorID := createRow(t, s, types.TablePrestadores, types.Record{"nombre": "Dra. Paz"})
	p1 := createRow(t, s, types.TablePlanes, types.Record{"nombre": "Plan Oro"})
	p2 := createRow(t, s, types.TablePlanes, types.Record{"nombre": "Plan Plata"})
	p3 := createRow(t, s, types.TablePlanes, types.Record{"nombre": "Plan Bronce"})

	err := s.ReplaceRelations(ctx, types.TablePrestadorPlanes, "id_prestador", prestadorID, "id_plan", []any{p1, p2})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{p1, p2}, planIDs(t, s, prestadorID))

	// Replacing with {p2, p3} drops p1 entirely.
	err = s.ReplaceRelations(ctx, types.TablePrestadorPlanes, "id_prestador", prestadorID, "id_plan", []any{p2, p3})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{p2, p3}, planIDs(t, s, prestadorID))
}

func TestReplaceRelations_EmptySetClears(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	prestadorID := createRow(t, s, types.TablePrestadores, types.Record{"nombre": "Dra. Paz"})
	p1 := createRow(t, s, types.TablePlanes, types.Record{"nombre": "Plan Oro"})

	err := s.ReplaceRelations(ctx, types.TablePrestadorPlanes, "id_prestador", prestadorID, "id_plan", []any{p1})
	require.NoError(t, err)

	err = s.ReplaceRelations(ctx, types.TablePrestadorPlanes, "id_prestador", prestadorID, "id_plan", []any{})
	require.NoError(t, err)
	assert.Empty(t, planIDs(t, s, prestadorID))
}

func TestReplaceRelations_NilIsNoOp(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	prestadorID := createRow(t, s, types.TablePrestadores, types.Record{"nombre": "Dra. Paz"})
	p1 := createRow(t, s, types.TablePlanes, types.Record{"nombre": "Plan Oro"})

	err := s.ReplaceRelations(ctx, types.TablePrestadorPlanes, "id_prestador", prestadorID, "id_plan", []any{p1})
	require.NoError(t, err)

	err = s.ReplaceRelations(ctx, types.TablePrestadorPlanes, "id_prestador", prestadorID, "id_plan", nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{p1}, planIDs(t, s, prestadorID), "nil values must leave the set alone")
}

func TestReplaceRelations_LeavesOtherParentsAlone(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := createRow(t, s, types.TablePrestadores, types.Record{"nombre": "Dra. Paz"})
	b := createRow(t, s, types.TablePrestadores, types.Record{"nombre": "Dr. Sosa"})
	p1 := createRow(t, s, types.TablePlanes, types.Record{"nombre": "Plan Oro"})

	require.NoError(t, s.ReplaceRelations(ctx, types.TablePrestadorPlanes, "id_prestador", a, "id_plan", []any{p1}))
	require.NoError(t, s.ReplaceRelations(ctx, types.TablePrestadorPlanes, "id_prestador", b, "id_plan", []any{p1}))

	require.NoError(t, s.ReplaceRelations(ctx, types.TablePrestadorPlanes, "id_prestador", a, "id_plan", []any{}))
	assert.ElementsMatch(t, []int64{p1}, planIDs(t, s, b))
}
