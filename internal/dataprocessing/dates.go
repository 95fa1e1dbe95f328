package dataprocessing

import (
	"strconv"
	"strings"

	"balancetecli/internal/config"
	"balancetecli/internal/errors"
)

// monthNumbers maps the Brazilian-Portuguese month abbreviations used by
// Tiny ERP column headers to month numbers.
var monthNumbers = map[string]int{
	"Jan": 1, "Fev": 2, "Mar": 3, "Abr": 4, "Mai": 5, "Jun": 6,
	"Jul": 7, "Ago": 8, "Set": 9, "Out": 10, "Nov": 11, "Dez": 12,
}

// monthNames maps month numbers to full Brazilian-Portuguese month names.
var monthNames = map[int]string{
	1: "Janeiro", 2: "Fevereiro", 3: "Março", 4: "Abril",
	5: "Maio", 6: "Junho", 7: "Julho", 8: "Agosto",
	9: "Setembro", 10: "Outubro", 11: "Novembro", 12: "Dezembro",
}

// ParseDateColumn decodes a "Mon/YY" column header into a month number and
// a full year. The two-digit year is taken as 2000+YY; there is no century
// rollover handling. An unknown month abbreviation is a hard error, matching
// the export contract.
func ParseDateColumn(name string) (month, year int, err error) {
	token := strings.TrimSpace(name)
	monthStr, yearStr, _ := strings.Cut(token, config.DateColumnSep)

	month, ok := monthNumbers[strings.TrimSpace(monthStr)]
	if !ok {
		return 0, 0, errors.NewDateHeaderError(name)
	}

	yy, convErr := strconv.ParseUint(strings.TrimSpace(yearStr), 10, 32)
	if convErr != nil {
		return 0, 0, errors.NewDateHeaderError(name)
	}

	return month, 2000 + int(yy), nil
}

// MonthName returns the full localized name for a month number in [1,12].
func MonthName(month int) string {
	return monthNames[month]
}
