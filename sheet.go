package sheetbatch

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// Sheet is a handle to a single worksheet. Reads index the grid data cached at
// the time the handle was obtained (or last refreshed) and never perform
// network I/O.
type Sheet struct {
	spreadsheet *Spreadsheet
	id          int64
	raw         *sheets.Sheet
}

func (sh *Sheet) ID() int64 {
	return sh.id
}

func (sh *Sheet) Title() string {
	if p := sh.properties(); p != nil {
		return p.Title
	}

	return ""
}

// Index returns the sheet's zero-based position in the spreadsheet.
func (sh *Sheet) Index() int64 {
	if p := sh.properties(); p != nil {
		return p.Index
	}

	return 0
}

func (sh *Sheet) RowCount() int64 {
	if p := sh.properties(); p != nil && p.GridProperties != nil {
		return p.GridProperties.RowCount
	}

	return 0
}

func (sh *Sheet) ColumnCount() int64 {
	if p := sh.properties(); p != nil && p.GridProperties != nil {
		return p.GridProperties.ColumnCount
	}

	return 0
}

func (sh *Sheet) Hidden() bool {
	if p := sh.properties(); p != nil {
		return p.Hidden
	}

	return false
}

// Refresh refetches this sheet's grid (one getByDataFilter call, scoped to
// this sheet only) and replaces the cached copy atomically.
func (sh *Sheet) Refresh(ctx context.Context) error {
	raw, err := sh.spreadsheet.client.api.getSheetGrid(ctx, sh.spreadsheet.id, sh.id)
	if err != nil {
		return err
	}

	sh.raw = raw

	return nil
}

// ValueAt returns the user-entered value of the 1-based cell (row, col). Cells
// never written, and coordinates outside the cached grid, yield the empty
// sentinel.
func (sh *Sheet) ValueAt(row, col int64) Value {
	if cell := sh.cellAt(row, col); cell != nil {
		return Value{raw: cell.UserEnteredValue}
	}

	return Value{}
}

// EffectiveValueAt returns the calculated value - for formula cells, the
// result of evaluating the formula.
func (sh *Sheet) EffectiveValueAt(row, col int64) Value {
	if cell := sh.cellAt(row, col); cell != nil {
		return Value{raw: cell.EffectiveValue}
	}

	return Value{}
}

// DisplayValueAt returns the formatted value as rendered in the UI, or "" for
// unset cells.
func (sh *Sheet) DisplayValueAt(row, col int64) string {
	if cell := sh.cellAt(row, col); cell != nil {
		return cell.FormattedValue
	}

	return ""
}

// MergedRanges returns the sheet's merged cell ranges.
func (sh *Sheet) MergedRanges() []Range {
	merges := make([]Range, 0, len(sh.raw.Merges))
	for _, m := range sh.raw.Merges {
		merges = append(merges, Range{
			MinRow: m.StartRowIndex + 1,
			MinCol: m.StartColumnIndex + 1,
			MaxRow: m.EndRowIndex,
			MaxCol: m.EndColumnIndex,
		})
	}

	return merges
}

// MergedRangeAt returns the merged range containing (row, col), or the
// single-cell range if the cell is not merged.
func (sh *Sheet) MergedRangeAt(row, col int64) Range {
	for _, merge := range sh.MergedRanges() {
		if merge.Contains(row, col) {
			return merge
		}
	}

	return Range{MinRow: row, MinCol: col, MaxRow: row, MaxCol: col}
}

// BorderStyleAt returns the effective border style ("SOLID", "DASHED", ...) on
// the given side of the cell, or "" if the cell has no border there. Only the
// four outer sides are valid.
func (sh *Sheet) BorderStyleAt(row, col int64, side Side) (string, error) {
	var border *sheets.Border

	cell := sh.cellAt(row, col)
	if cell != nil && cell.EffectiveFormat != nil && cell.EffectiveFormat.Borders != nil {
		switch side {
		case SideTop:
			border = cell.EffectiveFormat.Borders.Top
		case SideBottom:
			border = cell.EffectiveFormat.Borders.Bottom
		case SideLeft:
			border = cell.EffectiveFormat.Borders.Left
		case SideRight:
			border = cell.EffectiveFormat.Borders.Right
		default:
			return "", fmt.Errorf("border side %q: %w", side, ErrInvalidArgument)
		}
	} else {
		switch side {
		case SideTop, SideBottom, SideLeft, SideRight:
		default:
			return "", fmt.Errorf("border side %q: %w", side, ErrInvalidArgument)
		}
	}

	if border == nil {
		return "", nil
	}

	return border.Style, nil
}

// DataValidationAt returns the cell's data validation rule, or nil.
func (sh *Sheet) DataValidationAt(row, col int64) *sheets.DataValidationRule {
	if cell := sh.cellAt(row, col); cell != nil {
		return cell.DataValidation
	}

	return nil
}

func (sh *Sheet) ConditionalFormats() []*sheets.ConditionalFormatRule {
	return sh.raw.ConditionalFormats
}

func (sh *Sheet) ProtectedRanges() []*sheets.ProtectedRange {
	return sh.raw.ProtectedRanges
}

// FindText returns the positions of all cached cells whose display value
// contains s, in row-major order.
func (sh *Sheet) FindText(s string) []CellRef {
	found := []CellRef{}

	grid := sh.grid()
	if grid == nil {
		return found
	}

	for i, rd := range grid.RowData {
		if rd == nil {
			continue
		}

		for j, cell := range rd.Values {
			if cell != nil && cell.FormattedValue != "" && strings.Contains(cell.FormattedValue, s) {
				found = append(found, CellRef{
					Row: grid.StartRow + int64(i) + 1,
					Col: grid.StartColumn + int64(j) + 1,
				})
			}
		}
	}

	return found
}

func (sh *Sheet) properties() *sheets.SheetProperties {
	if sh.raw == nil {
		return nil
	}

	return sh.raw.Properties
}

func (sh *Sheet) grid() *sheets.GridData {
	if sh.raw == nil || len(sh.raw.Data) == 0 {
		return nil
	}

	return sh.raw.Data[0]
}

func (sh *Sheet) cellAt(row, col int64) *sheets.CellData {
	if row < 1 || col < 1 {
		return nil
	}

	grid := sh.grid()
	if grid == nil {
		return nil
	}

	r := row - 1 - grid.StartRow
	c := col - 1 - grid.StartColumn

	if r < 0 || r >= int64(len(grid.RowData)) {
		return nil
	}

	rd := grid.RowData[r]
	if rd == nil || c < 0 || c >= int64(len(rd.Values)) {
		return nil
	}

	return rd.Values[c]
}
