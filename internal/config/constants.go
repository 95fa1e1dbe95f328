package config

// Fixed column contract of the Tiny ERP balancete export.
const (
	ColTipo      = "Tipo"
	ColGrupo     = "Grupo"
	ColCategoria = "Categoria"

	// ColTotal is an aggregate column in the export; it contains no date and
	// is excluded from date-column detection.
	ColTotal = "Total"

	// DateColumnSep separates the month abbreviation from the two-digit year
	// in date column headers ("Mar/24").
	DateColumnSep = "/"
)

// Tipo labels used by the summary to split inflows from outflows.
const (
	TipoEntrada = "Entrada"
	TipoSaida   = "Saída"
)

// OutputSuffix is inserted before the extension of the input file name to
// derive the output file name.
const OutputSuffix = "_optimized"

// OutputHeader is the column order of the long-format CSV.
var OutputHeader = []string{"Data", "Ano", "Mes", "Mes_Nome", "Tipo", "Grupo", "Categoria", "Valor"}
