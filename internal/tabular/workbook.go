package tabular

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook decodes the first sheet of an XLSX workbook into a cell
// matrix suitable for the passthrough path. Only the first sheet is read;
// assessment workbooks keep the objective table there and use any further
// sheets for reference material.
func ReadWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	return CleanMatrix(rows), nil
}
