package dataprocessing

import (
	"strings"

	"balancetecli/internal/config"
)

// Table is an in-memory wide-format table: ordered column names plus one
// cell map per row. Cells missing from a short row read as "".
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// HasColumn reports whether the table header contains name.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// DateColumns returns the date-formatted columns in original header order.
// A date column is any column other than Total whose name contains "/".
func (t *Table) DateColumns() []string {
	var cols []string
	for _, col := range t.Columns {
		if col != config.ColTotal && strings.Contains(col, config.DateColumnSep) {
			cols = append(cols, col)
		}
	}
	return cols
}
