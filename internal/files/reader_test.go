package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"balancetecli/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadTable_CSV(t *testing.T) {
	path := writeFile(t, "balancete.csv",
		"Tipo,Grupo,Categoria,Jan/24,Total\nEntrada,Vendas,Produtos,\"1.500,00\",1500\n")

	table, err := ReadTable(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Tipo", "Grupo", "Categoria", "Jan/24", "Total"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Entrada", table.Rows[0]["Tipo"])
	assert.Equal(t, "1.500,00", table.Rows[0]["Jan/24"])
}

func TestReadTable_CSVWithBOM(t *testing.T) {
	path := writeFile(t, "bom.csv",
		"\xEF\xBB\xBFTipo,Grupo,Categoria,Jan/24\nSaída,Moradia,Aluguel,800\n")

	table, err := ReadTable(path)
	require.NoError(t, err)

	assert.Equal(t, "Tipo", table.Columns[0])
	assert.True(t, table.HasColumn("Tipo"))
}

func TestReadTable_ShortRows(t *testing.T) {
	path := writeFile(t, "short.csv",
		"Tipo,Grupo,Categoria,Jan/24,Fev/24\nEntrada,Vendas,Produtos\n")

	table, err := ReadTable(path)
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "", table.Rows[0]["Jan/24"])
	assert.Equal(t, "", table.Rows[0]["Fev/24"])
}

func TestReadTable_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	_, err := ReadTable(path)
	require.Error(t, err)
	assert.Equal(t, errors.CodeFileRead, errors.CodeOf(err))
}

func TestReadTable_MissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeFileRead, errors.CodeOf(err))
}

func TestReadTable_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balancete.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Tipo", "Grupo", "Categoria", "Jan/24"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Entrada", "Vendas", "Produtos", "1500,00"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := ReadTable(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Tipo", "Grupo", "Categoria", "Jan/24"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "1500,00", table.Rows[0]["Jan/24"])
}

func TestReadTable_XLSXNotAWorkbook(t *testing.T) {
	path := writeFile(t, "fake.xlsx", "not a zip")

	_, err := ReadTable(path)
	require.Error(t, err)
	assert.Equal(t, errors.CodeFileRead, errors.CodeOf(err))
}
