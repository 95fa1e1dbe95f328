package dataprocessing

import (
	"errors"

	"github.com/shopspring/decimal"

	"balancetecli/internal/config"
)

// ErrNoObservations is returned by Summarize for an empty input; min/max of
// an empty set is undefined, so absence is reported instead of a summary.
var ErrNoObservations = errors.New("no observations to summarize")

// Summary aggregates a reshaped output for the completion log.
type Summary struct {
	StartDate        string
	EndDate          string
	TotalEntries     int
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	UniqueGroups     int
	UniqueCategories int
}

// Summarize computes the date range, record count, Entrada/Saída totals and
// distinct group/category counts of the observations. Pure aggregation.
func Summarize(observations []Observation) (Summary, error) {
	if len(observations) == 0 {
		return Summary{}, ErrNoObservations
	}

	s := Summary{
		StartDate:     observations[0].Data,
		EndDate:       observations[0].Data,
		TotalEntries:  len(observations),
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	groups := make(map[string]struct{})
	categories := make(map[string]struct{})

	for _, obs := range observations {
		if obs.Data < s.StartDate {
			s.StartDate = obs.Data
		}
		if obs.Data > s.EndDate {
			s.EndDate = obs.Data
		}

		switch obs.Tipo {
		case config.TipoEntrada:
			s.TotalIncome = s.TotalIncome.Add(obs.Valor)
		case config.TipoSaida:
			s.TotalExpenses = s.TotalExpenses.Add(obs.Valor)
		}

		groups[obs.Grupo] = struct{}{}
		categories[obs.Categoria] = struct{}{}
	}

	s.UniqueGroups = len(groups)
	s.UniqueCategories = len(categories)
	return s, nil
}
