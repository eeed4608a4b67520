package store

import (
	"github.com/andescore/cartilla/pkg/types"
)

// statusColumn is the table column governed by the cascade engine.
const statusColumn = "estado"

// DependentRef names a dependent table and the column in it that references
// a parent row's id. Used by HasRelations to block orphaning deletes.
type DependentRef struct {
	Table  string
	Column string
}

// Schema is the static configuration of the directory: the identifier
// allowlists plus the table metadata the generic operations need. It is
// loaded once at open and never mutated.
type Schema struct {
	// Tables and Fields feed the allowlist.
	Tables []string
	Fields []string

	// IDColumns maps a table to its generated-id column, used to merge the
	// generated identifier into Create results. Join tables have none.
	IDColumns map[string]string

	// NameColumns maps a table to its display-name column for cascade rules
	// that match dependents by name rather than id.
	NameColumns map[string]string

	// Dependents maps a table to the join/child tables that reference it.
	Dependents map[string][]DependentRef

	// DenormTable is the table carrying denormalized text copies of other
	// tables' name columns (the directory listing).
	DenormTable string

	// Cascades maps a parent table to its cascade rule set. Tables absent
	// from this map do not support cascade toggling.
	Cascades map[string][]CascadeRule
}

// DefaultSchema returns the directory schema: the allowlisted tables and
// columns of the provider directory plus its dependents map and cascade
// rule sets.
func DefaultSchema() Schema {
	return Schema{
		Tables: types.StandardTableNames,
		Fields: []string{
			"id_plan", "id_categoria", "id_especialidad",
			"id_provincia", "id_localidad", "id_prestador", "id_cartilla",
			"nombre", "email", "telefono", "direccion", "matricula",
			"plan", "categoria", "especialidad", "provincia", "localidad",
			statusColumn,
			"id_auditoria", "operacion", "tabla", "registro", "detalle", "creado_en",
		},
		IDColumns: map[string]string{
			types.TablePlanes:         "id_plan",
			types.TableCategorias:     "id_categoria",
			types.TableEspecialidades: "id_especialidad",
			types.TableProvincias:     "id_provincia",
			types.TableLocalidades:    "id_localidad",
			types.TablePrestadores:    "id_prestador",
			types.TableCartilla:       "id_cartilla",
		},
		NameColumns: map[string]string{
			types.TablePlanes:         "nombre",
			types.TableCategorias:     "nombre",
			types.TableEspecialidades: "nombre",
		},
		Dependents: map[string][]DependentRef{
			types.TablePlanes:         {{Table: types.TablePrestadorPlanes, Column: "id_plan"}},
			types.TableCategorias:     {{Table: types.TablePrestadorCategorias, Column: "id_categoria"}},
			types.TableEspecialidades: {{Table: types.TablePrestadorEspecialidades, Column: "id_especialidad"}},
			types.TableProvincias:     {{Table: types.TableLocalidades, Column: "id_provincia"}},
			types.TableLocalidades:    {{Table: types.TablePrestadores, Column: "id_localidad"}},
			types.TablePrestadores:    {{Table: types.TableCartilla, Column: "id_prestador"}},
		},
		DenormTable: types.TableCartilla,
		Cascades: map[string][]CascadeRule{
			types.TablePlanes: {
				{Table: types.TableCartilla, Column: "plan", Selector: SelectParentName},
				{Table: types.TablePrestadores, Column: "id_prestador", Selector: SelectParentID,
					Subquery: &Subquery{Select: "id_prestador", From: types.TablePrestadorPlanes, Where: "id_plan", Many: true}},
			},
			types.TableCategorias: {
				{Table: types.TableCartilla, Column: "categoria", Selector: SelectParentName},
				{Table: types.TablePrestadores, Column: "id_prestador", Selector: SelectParentID,
					Subquery: &Subquery{Select: "id_prestador", From: types.TablePrestadorCategorias, Where: "id_categoria", Many: true}},
			},
			types.TableEspecialidades: {
				{Table: types.TableCartilla, Column: "especialidad", Selector: SelectParentName},
				{Table: types.TablePrestadores, Column: "id_prestador", Selector: SelectParentID,
					Subquery: &Subquery{Select: "id_prestador", From: types.TablePrestadorEspecialidades, Where: "id_especialidad", Many: true}},
			},
			types.TableProvincias: {
				{Table: types.TableCartilla, Column: "provincia", Selector: SelectParentID,
					Subquery: &Subquery{Select: "nombre", From: types.TableProvincias, Where: "id_provincia"}},
				{Table: types.TablePrestadores, Column: "id_localidad", Selector: SelectParentID,
					Subquery: &Subquery{Select: "id_localidad", From: types.TableLocalidades, Where: "id_provincia", Many: true}},
			},
			types.TableLocalidades: {
				{Table: types.TableCartilla, Column: "localidad", Selector: SelectParentID,
					Subquery: &Subquery{Select: "nombre", From: types.TableLocalidades, Where: "id_localidad"}},
				{Table: types.TablePrestadores, Column: "id_localidad", Selector: SelectParentID},
			},
		},
	}
}
