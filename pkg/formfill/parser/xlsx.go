package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the rows of one worksheet.
// If sheetName is empty the first sheet is used. Fully blank rows are dropped.
func ReadXLSX(path, sheetName string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, wrapRead("xlsx", path, err)
	}
	defer f.Close()

	rows, err := ExtractRows(f, sheetName)
	if err != nil {
		return nil, wrapRead("xlsx", path, err)
	}
	return rows, nil
}

// ExtractRows extracts the non-blank rows of a sheet as strings.
func ExtractRows(f *excelize.File, sheetName string) ([][]string, error) {
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}

	result := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		result = append(result, row)
	}
	return result, nil
}
