package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sheetbatch/sheetbatch"
)

func putCmd() *cobra.Command {
	url := ""
	worksheet := ""
	file := ""
	row := int64(1)
	col := int64(1)
	border := ""

	cmd := cobra.Command{
		Use:   "put",
		Short: "Uploads a TSV file to a Google Sheets worksheet",
		Long:  "Reads a local TSV file and writes it to a worksheet, anchored at --row/--col, as a single batched update. With --border, the uploaded table is boxed in the given border style.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(url) == "" {
				return fmt.Errorf("--url is a required option")
			}

			if strings.TrimSpace(file) == "" {
				return fmt.Errorf("--file is a required option")
			}

			id, err := spreadsheetID(url)
			if err != nil {
				return err
			}

			f, err := os.Open(file)
			if err != nil {
				return err
			}

			defer f.Close()

			table, err := readTSV(f)
			if err != nil {
				return fmt.Errorf("error reading TSV file (%v)", err)
			}

			if len(table) == 0 {
				return fmt.Errorf("no data in TSV file %s", file)
			}

			debugf("Spreadsheet - ID:%s  worksheet:%q  anchor:(%v,%v)  rows:%v", id, worksheet, row, col, len(table))

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

			if err := sheet.UpdateStrings(row, col, table); err != nil {
				return err
			}

			if border != "" {
				width := int64(0)
				for _, record := range table {
					if int64(len(record)) > width {
						width = int64(len(record))
					}
				}

				box := sheetbatch.NewRange(row, col, row+int64(len(table))-1, col+width-1)
				if err := sheet.UpdateBordersAround(box, sheetbatch.BorderStyle(border), nil); err != nil {
					return err
				}
			}

			staged := client.Pending()
			if err := client.Flush(cmd.Context()); err != nil {
				return err
			}

			infof("Uploaded %s to %q (%v requests in one batch)", file, sheet.Title(), staged)

			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", url, "Spreadsheet URL (or bare spreadsheet ID)")
	cmd.Flags().StringVar(&worksheet, "sheet", worksheet, "Worksheet title. Defaults to the first worksheet")
	cmd.Flags().StringVar(&file, "file", file, "TSV file to upload")
	cmd.Flags().Int64Var(&row, "row", row, "1-based row of the top-left cell to write to")
	cmd.Flags().Int64Var(&col, "col", col, "1-based column of the top-left cell to write to")
	cmd.Flags().StringVar(&border, "border", border, "Border style (SOLID, DASHED, ...) drawn around the uploaded table")

	return &cmd
}
