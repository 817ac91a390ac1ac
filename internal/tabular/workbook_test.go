package tabular

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, ref, cell))
		}
	}

	path := filepath.Join(t.TempDir(), "assessment.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeTestWorkbook(t, [][]string{
		{"Objective ID", "Status"},
		{"3.1.1[a]", "Met"},
		{"", ""},
		{"3.1.1[b]", "Partial"},
	})

	rows, err := ReadWorkbook(path)
	require.NoError(t, err)

	// Blank rows are dropped on the way out.
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Objective ID", "Status"}, rows[0])
	assert.Equal(t, []string{"3.1.1[a]", "Met"}, rows[1])
	assert.Equal(t, []string{"3.1.1[b]", "Partial"}, rows[2])
}

func TestReadWorkbook_MissingFile(t *testing.T) {
	_, err := ReadWorkbook(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}
