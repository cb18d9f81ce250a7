package commands

import (
	"io"

	"github.com/xuri/excelize/v2"
)

func writeXLSX(f io.Writer, table [][]string, worksheet string) error {
	workbook := excelize.NewFile()

	defer workbook.Close()

	if worksheet != "" {
		if err := workbook.SetSheetName("Sheet1", worksheet); err != nil {
			return err
		}
	} else {
		worksheet = "Sheet1"
	}

	for i, record := range table {
		for j, value := range record {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}

			if err := workbook.SetCellStr(worksheet, cell, value); err != nil {
				return err
			}
		}
	}

	return workbook.Write(f)
}
