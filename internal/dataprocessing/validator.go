package dataprocessing

import (
	"balancetecli/internal/config"
	"balancetecli/internal/errors"
)

// requiredColumns are the identifying columns every balancete export carries.
var requiredColumns = []string{config.ColTipo, config.ColGrupo, config.ColCategoria}

// Validate gates the input table before any transformation. It checks that
// all identifying columns are present (reporting every missing one at once)
// and that at least one date column exists. It is a gate, not a full schema
// validator: cell contents, duplicate columns and row count are not checked.
func Validate(t *Table) error {
	var missing []string
	for _, col := range requiredColumns {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return errors.NewMissingColumnsError(missing)
	}

	if len(t.DateColumns()) == 0 {
		return errors.NewNoDateColumnsError()
	}

	return nil
}
