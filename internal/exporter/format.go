package exporter

import (
	"strconv"

	"balancetecli/internal/dataprocessing"
)

// formatObservation renders one observation as a CSV record in the
// OutputHeader column order. Valor always carries exactly 2 decimal places
// so values like 13.4 appear as 13.40.
func formatObservation(obs dataprocessing.Observation) []string {
	return []string{
		obs.Data,
		strconv.Itoa(obs.Ano),
		strconv.Itoa(obs.Mes),
		obs.MesNome,
		obs.Tipo,
		obs.Grupo,
		obs.Categoria,
		obs.Valor.StringFixed(2),
	}
}
