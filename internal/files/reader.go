package files

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"balancetecli/internal/dataprocessing"
	"balancetecli/internal/errors"
)

// ReadTable loads the input file into a Table, picking the reader by file
// extension: .xlsx goes through excelize, everything else is treated as CSV.
func ReadTable(path string) (*dataprocessing.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	return readCSV(path)
}

// readCSV reads a UTF-8 CSV file, first row as header. A leading byte-order
// mark is tolerated and stripped. Short rows are allowed; their missing
// trailing cells read as empty.
func readCSV(path string) (*dataprocessing.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewReadError(path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewReadError(path, err)
	}
	if len(records) == 0 {
		return nil, errors.NewReadError(path, fmt.Errorf("empty file"))
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	return buildTable(header, records[1:]), nil
}

// readXLSX reads the first sheet of a workbook, first row as header.
func readXLSX(path string) (*dataprocessing.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewReadError(path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewReadError(path, fmt.Errorf("workbook has no sheets"))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.NewReadError(path, err)
	}
	if len(rows) == 0 {
		return nil, errors.NewReadError(path, fmt.Errorf("sheet %q is empty", sheets[0]))
	}

	return buildTable(rows[0], rows[1:]), nil
}

func buildTable(header []string, rows [][]string) *dataprocessing.Table {
	table := &dataprocessing.Table{
		Columns: header,
		Rows:    make([]map[string]string, 0, len(rows)),
	}

	for _, cells := range rows {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
