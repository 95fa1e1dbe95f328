package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"balancetecli/internal/config"
)

// Observation is one long-format record: the identifying fields of an input
// row combined with one date column's parsed date and cell value. Valor is
// always a finite value quantized to 2 decimal places; unparseable or
// missing cells normalize to 0.00 and are never dropped.
type Observation struct {
	Data      string // ISO date, first day of the month
	Ano       int
	Mes       int
	MesNome   string
	Tipo      string
	Grupo     string
	Categoria string
	Valor     decimal.Decimal
}

// Reshaper converts a validated wide-format table into long-format
// observations.
type Reshaper struct {
	logger *slog.Logger
}

// NewReshaper creates a new reshaper. A nil logger falls back to the
// default slog logger.
func NewReshaper(logger *slog.Logger) *Reshaper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reshaper{logger: logger}
}

// Reshape emits exactly one Observation per (row, date column) pair, then
// sorts the result by (Data, Tipo, Grupo, Categoria) ascending. Rows with
// identical identifying fields are not merged.
func (r *Reshaper) Reshape(ctx context.Context, t *Table) ([]Observation, error) {
	dateCols := t.DateColumns()

	r.logger.InfoContext(ctx, "transforming data from wide to long format",
		slog.Int("row_count", len(t.Rows)),
		slog.Int("date_column_count", len(dateCols)))

	// Parse every header up front so a bad one aborts before any work.
	type parsedCol struct {
		name  string
		month int
		year  int
	}
	cols := make([]parsedCol, 0, len(dateCols))
	for _, name := range dateCols {
		month, year, err := ParseDateColumn(name)
		if err != nil {
			return nil, fmt.Errorf("parse date column: %w", err)
		}
		cols = append(cols, parsedCol{name: name, month: month, year: year})
	}

	observations := make([]Observation, 0, len(t.Rows)*len(cols))
	for _, row := range t.Rows {
		for _, col := range cols {
			observations = append(observations, Observation{
				Data:      fmt.Sprintf("%04d-%02d-01", col.year, col.month),
				Ano:       col.year,
				Mes:       col.month,
				MesNome:   MonthName(col.month),
				Tipo:      row[config.ColTipo],
				Grupo:     row[config.ColGrupo],
				Categoria: strings.TrimSpace(row[config.ColCategoria]),
				Valor:     parseValue(row[col.name]),
			})
		}
	}

	sortObservations(observations)
	return observations, nil
}

// parseValue normalizes a raw cell into a 2-decimal value. Brazilian
// formatting is expected: when a decimal comma is present, "." thousands
// separators are stripped first ("1.500,00" → 1500.00). Anything that still
// fails to parse, including an empty cell, becomes 0.00. Quantization uses
// round-half-to-even.
func parseValue(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.RoundBank(2)
}

// sortObservations orders by (Data, Tipo, Grupo, Categoria), all ascending
// lexicographic. The sort is stable so equal keys keep input row order.
func sortObservations(observations []Observation) {
	sort.SliceStable(observations, func(i, j int) bool {
		a, b := observations[i], observations[j]
		if a.Data != b.Data {
			return a.Data < b.Data
		}
		if a.Tipo != b.Tipo {
			return a.Tipo < b.Tipo
		}
		if a.Grupo != b.Grupo {
			return a.Grupo < b.Grupo
		}
		return a.Categoria < b.Categoria
	})
}
