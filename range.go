package sheetbatch

import (
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// Range is a rectangular cell range with 1-based, inclusive bounds. The Sheets
// API itself uses 0-based half-open indices - gridRange does the conversion.
type Range struct {
	MinRow int64
	MinCol int64
	MaxRow int64
	MaxCol int64
}

func NewRange(minRow, minCol, maxRow, maxCol int64) Range {
	return Range{
		MinRow: minRow,
		MinCol: minCol,
		MaxRow: maxRow,
		MaxCol: maxCol,
	}
}

func (r Range) String() string {
	return fmt.Sprintf("R%vC%v:R%vC%v", r.MinRow, r.MinCol, r.MaxRow, r.MaxCol)
}

// Contains reports whether the 1-based cell (row, col) falls inside the range.
func (r Range) Contains(row, col int64) bool {
	return row >= r.MinRow && row <= r.MaxRow && col >= r.MinCol && col <= r.MaxCol
}

func (r Range) validate() error {
	if r.MinRow < 1 || r.MinCol < 1 {
		return fmt.Errorf("%v: bounds must be 1-based: %w", r, ErrInvalidRange)
	}

	if r.MaxRow < r.MinRow || r.MaxCol < r.MinCol {
		return fmt.Errorf("%v: max precedes min: %w", r, ErrInvalidRange)
	}

	return nil
}

func (r Range) gridRange(sheetID int64) *sheets.GridRange {
	return &sheets.GridRange{
		SheetId:          sheetID,
		StartRowIndex:    r.MinRow - 1,
		EndRowIndex:      r.MaxRow,
		StartColumnIndex: r.MinCol - 1,
		EndColumnIndex:   r.MaxCol,
		ForceSendFields:  []string{"StartRowIndex", "StartColumnIndex"},
	}
}
