package types

// Directory table names. These are the only tables the data-access layer
// will interpolate into SQL; everything else is rejected by the allowlist.
const (
	TablePlanes         = "planes"
	TableCategorias     = "categorias"
	TableEspecialidades = "especialidades"
	TableProvincias     = "provincias"
	TableLocalidades    = "localidades"
	TablePrestadores    = "prestadores"
	TableCartilla       = "cartilla"
	TableAuditoria      = "auditoria"
)

// Join tables associating providers with plans, categories, and specialties.
const (
	TablePrestadorPlanes         = "prestador_planes"
	TablePrestadorCategorias     = "prestador_categorias"
	TablePrestadorEspecialidades = "prestador_especialidades"
)

// StandardTableNames lists every allowlisted table for enumeration.
var StandardTableNames = []string{
	TablePlanes,
	TableCategorias,
	TableEspecialidades,
	TableProvincias,
	TableLocalidades,
	TablePrestadores,
	TableCartilla,
	TablePrestadorPlanes,
	TablePrestadorCategorias,
	TablePrestadorEspecialidades,
	TableAuditoria,
}
