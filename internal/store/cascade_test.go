// Tests for the cascade status engine: full propagation, atomicity, and the
// declared failure modes.
package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andescore/cartilla/pkg/types"
)

// rowStatus fetches the estado of one row.
func rowStatus(t *testing.T, s *Store, table, idField string, id any) string {
	t.Helper()
	rec, err := s.GetByID(context.Background(), table, idField, id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	status, _ := rec["estado"].(string)
	return status
}

// planFixture seeds a plan with one linked and one unlinked prestador plus
// matching directory rows, and returns the generated ids.
type planFixture struct {
	plan     int64
	linked   int64 // prestador assigned to the plan
	unlinked int64 // prestador with no plan assignment
	listed   int64 // cartilla row carrying the plan's name
	other    int64 // cartilla row for an unrelated plan
}

func seedPlanFixture(t *testing.T, s *Store) planFixture {
	t.Helper()
	ctx := context.Background()

	fx := planFixture{
		plan:     createRow(t, s, types.TablePlanes, types.Record{"nombre": "Plan Oro"}),
		linked:   createRow(t, s, types.TablePrestadores, types.Record{"nombre": "Dra. Paz"}),
		unlinked: createRow(t, s, types.TablePrestadores, types.Record{"nombre": "Dr. Sosa"}),
	}
	fx.listed = createRow(t, s, types.TableCartilla, types.Record{"nombre": "Dra. Paz", "plan": "Plan Oro"})
	fx.other = createRow(t, s, types.TableCartilla, types.Record{"nombre": "Dr. Sosa", "plan": "Plan Plata"})

	_, err := s.Create(ctx, types.TablePrestadorPlanes, types.Record{"id_prestador": fx.linked, "id_plan": fx.plan})
	require.NoError(t, err)
	return fx
}

func TestCascadeToggle_PlanPropagatesToDirectoryAndProviders(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	fx := seedPlanFixture(t, s)

	res, err := s.CascadeToggleStatus(ctx, types.TablePlanes, "id_plan", fx.plan)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, types.StatusInactivo, res.NewStatus)

	assert.Equal(t, types.StatusInactivo, rowStatus(t, s, types.TablePlanes, "id_plan", fx.plan))
	assert.Equal(t, types.StatusInactivo, rowStatus(t, s, types.TableCartilla, "id_cartilla", fx.listed))
	assert.Equal(t, types.StatusInactivo, rowStatus(t, s, types.TablePrestadores, "id_prestador", fx.linked))

	// Rows outside the cascade keep their status.
	assert.Equal(t, types.StatusActivo, rowStatus(t, s, types.TableCartilla, "id_cartilla", fx.other))
	assert.Equal(t, types.StatusActivo, rowStatus(t, s, types.TablePrestadores, "id_prestador", fx.unlinked))
}

func TestCascadeToggle_RoundTripRestoresActivo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	fx := seedPlanFixture(t, s)

	_, err := s.CascadeToggleStatus(ctx, types.TablePlanes, "id_plan", fx.plan)
	require.NoError(t, err)

	res, err := s.CascadeToggleStatus(ctx, types.TablePlanes, "id_plan", fx.plan)
	require.NoError(t, err)
	assert.Equal(t, types.StatusActivo, res.NewStatus)

	assert.Equal(t, types.StatusActivo, rowStatus(t, s, types.TablePlanes, "id_plan", fx.plan))
	assert.Equal(t, types.StatusActivo, rowStatus(t, s, types.TableCartilla, "id_cartilla", fx.listed))
	assert.Equal(t, types.StatusActivo, rowStatus(t, s, types.TablePrestadores, "id_prestador", fx.linked))
}

func TestCascadeToggle_ProvinceReachesListingsAndProviders(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	prov := createRow(t, s, types.TableProvincias, types.Record{"nombre": "Buenos Aires"})
	loc := createRow(t, s, types.TableLocalidades, types.Record{"nombre": "La Plata", "id_provincia": prov})
	inProv := createRow(t, s, types.TablePrestadores, types.Record{"nombre": "Dra. Paz", "id_localidad": loc})
	outProv := createRow(t, s, types.TablePrestadores, types.Record{"nombre": "Dr. Sosa"})
	listed := createRow(t, s, types.TableCartilla, types.Record{"nombre": "Dra. Paz", "provincia": "Buenos Aires"})

	res, err := s.CascadeToggleStatus(ctx, types.TableProvincias, "id_provincia", prov)
	require.NoError(t, err)
	assert.Equal(t, types.StatusInactivo, res.NewStatus)

	assert.Equal(t, types.StatusInactivo, rowStatus(t, s, types.TableProvincias, "id_provincia", prov))
	assert.Equal(t, types.StatusInactivo, rowStatus(t, s, types.TableCartilla, "id_cartilla", listed))
	assert.Equal(t, types.StatusInactivo, rowStatus(t, s, types.TablePrestadores, "id_prestador", inProv))
	assert.Equal(t, types.StatusActivo, rowStatus(t, s, types.TablePrestadores, "id_prestador", outProv))
}

func TestCascadeToggle_LocalityUpdatesItsProviders(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	prov := createRow(t, s, types.TableProvincias, types.Record{"nombre": "Buenos Aires"})
	loc := createRow(t, s, types.TableLocalidades, types.Record{"nombre": "La Plata", "id_provincia": prov})
	inLoc := createRow(t, s, types.TablePrestadores, types.Record{"nombre": "Dra. Paz", "id_localidad": loc})
	listed := createRow(t, s, types.TableCartilla, types.Record{"nombre": "Dra. Paz", "localidad": "La Plata"})

	res, err := s.CascadeToggleStatus(ctx, types.TableLocalidades, "id_localidad", loc)
	require.NoError(t, err)
	assert.Equal(t, types.StatusInactivo, res.NewStatus)

	assert.Equal(t, types.StatusInactivo, rowStatus(t, s, types.TableLocalidades, "id_localidad", loc))
	assert.Equal(t, types.StatusInactivo, rowStatus(t, s, types.TableCartilla, "id_cartilla", listed))
	assert.Equal(t, types.StatusInactivo, rowStatus(t, s, types.TablePrestadores, "id_prestador", inLoc))
	// The parent province is not part of a locality's cascade.
	assert.Equal(t, types.StatusActivo, rowStatus(t, s, types.TableProvincias, "id_provincia", prov))
}

func TestCascadeToggle_MissingRow(t *testing.T) {
	s := openTestStore(t)

	_, err := s.CascadeToggleStatus(context.Background(), types.TablePlanes, "id_plan", 999)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestCascadeToggle_TableWithoutRules(t *testing.T) {
	s := openTestStore(t)

	_, err := s.CascadeToggleStatus(context.Background(), types.TableCartilla, "id_cartilla", 1)
	assert.ErrorIs(t, err, types.ErrUnsupportedCascade)
}

// A failing rule mid-transaction must leave every row untouched, including
// rows an earlier rule already updated inside the transaction.
func TestCascadeToggle_FailureRollsBackEverything(t *testing.T) {
	ctx := context.Background()

	sch := DefaultSchema()
	// The second rule names an allowlisted column the cartilla table does not
	// have, so its UPDATE fails after the first rule already ran.
	sch.Cascades[types.TablePlanes] = []CascadeRule{
		{Table: types.TableCartilla, Column: "plan", Selector: SelectParentName},
		{Table: types.TableCartilla, Column: "matricula", Selector: SelectParentID},
	}
	s, err := OpenSchema(types.Config{Driver: types.DriverSQLite, DataDir: t.TempDir()}, sch)
	require.NoError(t, err)
	defer s.Close()

	fx := seedPlanFixture(t, s)

	_, err = s.CascadeToggleStatus(ctx, types.TablePlanes, "id_plan", fx.plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrTxFailed)

	assert.Equal(t, types.StatusActivo, rowStatus(t, s, types.TablePlanes, "id_plan", fx.plan))
	assert.Equal(t, types.StatusActivo, rowStatus(t, s, types.TableCartilla, "id_cartilla", fx.listed))

	// The rolled-back toggle must not leave a journal entry either.
	journal, err := s.GetAll(ctx, types.TableAuditoria)
	require.NoError(t, err)
	for _, e := range journal {
		assert.NotEqual(t, "toggle", e["operacion"])
	}
}

func TestCascadeToggle_WritesAuditEntryWithNewStatus(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	fx := seedPlanFixture(t, s)

	_, err := s.CascadeToggleStatus(ctx, types.TablePlanes, "id_plan", fx.plan)
	require.NoError(t, err)

	journal, err := s.GetAll(ctx, types.TableAuditoria)
	require.NoError(t, err)

	var found bool
	for _, e := range journal {
		if e["operacion"] == "toggle" {
			found = true
			assert.Equal(t, types.TablePlanes, e["tabla"])
			assert.Contains(t, e["detalle"], types.StatusInactivo)
		}
	}
	assert.True(t, found, "toggle journal entry missing")
}
