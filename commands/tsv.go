package commands

import (
	"encoding/csv"
	"io"
)

func writeTSV(f io.Writer, table [][]string) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	return w.WriteAll(table)
}

func readTSV(f io.Reader) ([][]string, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	return r.ReadAll()
}
