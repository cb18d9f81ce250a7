package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sheetbatch/sheetbatch"
)

func getCmd() *cobra.Command {
	url := ""
	worksheet := ""
	file := time.Now().Format("2006-01-02T150405.tsv")

	cmd := cobra.Command{
		Use:   "get",
		Short: "Downloads a Google Sheets worksheet to a local file",
		Long:  "Fetches a worksheet and stores its grid to a local TSV file, or to an Excel workbook if the file name ends in .xlsx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(url) == "" {
				return fmt.Errorf("--url is a required option")
			}

			id, err := spreadsheetID(url)
			if err != nil {
				return err
			}

			debugf("Spreadsheet - ID:%s  worksheet:%q  file:%s", id, worksheet, file)

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			spreadsheet, err := client.OpenByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			sheet, err := resolveSheet(spreadsheet, worksheet)
			if err != nil {
				return err
			}

			table := sheetTable(sheet)
			if len(table) == 0 {
				return fmt.Errorf("no data in worksheet %q", sheet.Title())
			}

			if err := store(file, table, sheet.Title()); err != nil {
				return err
			}

			infof("Retrieved %q to file %s", sheet.Title(), file)

			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", url, "Spreadsheet URL (or bare spreadsheet ID)")
	cmd.Flags().StringVar(&worksheet, "sheet", worksheet, "Worksheet title. Defaults to the first worksheet")
	cmd.Flags().StringVar(&file, "file", file, "Output file name. A .xlsx extension selects Excel output")

	return &cmd
}

func resolveSheet(spreadsheet *sheetbatch.Spreadsheet, title string) (*sheetbatch.Sheet, error) {
	if strings.TrimSpace(title) == "" {
		return spreadsheet.SheetByIndex(0)
	}

	return spreadsheet.SheetByTitle(title)
}

// sheetTable flattens the cached grid to display values, trimming trailing
// empty rows and columns.
func sheetTable(sheet *sheetbatch.Sheet) [][]string {
	rows := int64(0)
	cols := int64(0)

	for row := int64(1); row <= sheet.RowCount(); row++ {
		for col := int64(1); col <= sheet.ColumnCount(); col++ {
			if sheet.DisplayValueAt(row, col) != "" {
				if row > rows {
					rows = row
				}

				if col > cols {
					cols = col
				}
			}
		}
	}

	table := make([][]string, rows)
	for row := int64(1); row <= rows; row++ {
		record := make([]string, cols)
		for col := int64(1); col <= cols; col++ {
			record[col-1] = sheet.DisplayValueAt(row, col)
		}

		table[row-1] = record
	}

	return table
}

// store writes the table to file, picking the format from the extension. The
// table is written to a temporary file first and renamed into place so that a
// failed write cannot leave a half-written file behind.
func store(file string, table [][]string, worksheet string) error {
	tmp, err := os.CreateTemp(os.TempDir(), APP)
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if strings.HasSuffix(strings.ToLower(file), ".xlsx") {
		if err := writeXLSX(tmp, table, worksheet); err != nil {
			return fmt.Errorf("error creating XLSX file (%v)", err)
		}
	} else {
		if err := writeTSV(tmp, table); err != nil {
			return fmt.Errorf("error creating TSV file (%v)", err)
		}
	}

	tmp.Close()

	if dir := filepath.Dir(file); dir != "." {
		if err := os.MkdirAll(dir, 0770); err != nil {
			return err
		}
	}

	return os.Rename(tmp.Name(), file)
}
