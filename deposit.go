package sheetbatch

import (
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// ValueKind selects which ExtendedValue field a staged cell value is written
// to.
type ValueKind string

const (
	NumberValue  ValueKind = "numberValue"
	StringValue  ValueKind = "stringValue"
	BoolValue    ValueKind = "boolValue"
	FormulaValue ValueKind = "formulaValue"
)

func (k ValueKind) valid() bool {
	switch k {
	case NumberValue, StringValue, BoolValue, FormulaValue:
		return true
	}

	return false
}

// Side identifies a border within a range.
type Side string

const (
	SideTop             Side = "top"
	SideBottom          Side = "bottom"
	SideLeft            Side = "left"
	SideRight           Side = "right"
	SideInnerHorizontal Side = "innerHorizontal"
	SideInnerVertical   Side = "innerVertical"
)

func (s Side) valid() bool {
	switch s {
	case SideTop, SideBottom, SideLeft, SideRight, SideInnerHorizontal, SideInnerVertical:
		return true
	}

	return false
}

type BorderStyle string

const (
	BorderDotted      BorderStyle = "DOTTED"
	BorderDashed      BorderStyle = "DASHED"
	BorderSolid       BorderStyle = "SOLID"
	BorderSolidMedium BorderStyle = "SOLID_MEDIUM"
	BorderSolidThick  BorderStyle = "SOLID_THICK"
	BorderDouble      BorderStyle = "DOUBLE"
	BorderNone        BorderStyle = "NONE"
)

func (s BorderStyle) valid() bool {
	switch s {
	case BorderDotted, BorderDashed, BorderSolid, BorderSolidMedium, BorderSolidThick, BorderDouble, BorderNone:
		return true
	}

	return false
}

type Dimension string

const (
	Rows    Dimension = "ROWS"
	Columns Dimension = "COLUMNS"
)

func (d Dimension) valid() bool {
	return d == Rows || d == Columns
}

type MergeType string

const (
	MergeAll     MergeType = "MERGE_ALL"
	MergeColumns MergeType = "MERGE_COLUMNS"
	MergeRows    MergeType = "MERGE_ROWS"
)

func (m MergeType) valid() bool {
	switch m {
	case MergeAll, MergeColumns, MergeRows:
		return true
	}

	return false
}

type HorizontalAlign string

const (
	AlignLeft   HorizontalAlign = "LEFT"
	AlignCenter HorizontalAlign = "CENTER"
	AlignRight  HorizontalAlign = "RIGHT"
)

func (a HorizontalAlign) valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	}

	return false
}

type VerticalAlign string

const (
	AlignTop    VerticalAlign = "TOP"
	AlignMiddle VerticalAlign = "MIDDLE"
	AlignBottom VerticalAlign = "BOTTOM"
)

func (a VerticalAlign) valid() bool {
	switch a {
	case AlignTop, AlignMiddle, AlignBottom:
		return true
	}

	return false
}

type NumberFormatType string

const (
	FormatAutomatic  NumberFormatType = "AUTOMATIC"
	FormatText       NumberFormatType = "TEXT"
	FormatNumber     NumberFormatType = "NUMBER"
	FormatPercent    NumberFormatType = "PERCENT"
	FormatCurrency   NumberFormatType = "CURRENCY"
	FormatDate       NumberFormatType = "DATE"
	FormatTime       NumberFormatType = "TIME"
	FormatDateTime   NumberFormatType = "DATE_TIME"
	FormatScientific NumberFormatType = "SCIENTIFIC"
)

func (t NumberFormatType) valid() bool {
	switch t {
	case FormatAutomatic, FormatText, FormatNumber, FormatPercent, FormatCurrency, FormatDate, FormatTime, FormatDateTime, FormatScientific:
		return true
	}

	return false
}

type WrapStrategy string

const (
	WrapOverflow WrapStrategy = "OVERFLOW_CELL"
	WrapLegacy   WrapStrategy = "LEGACY_WRAP"
	WrapClip     WrapStrategy = "CLIP"
	Wrap         WrapStrategy = "WRAP"
)

func (w WrapStrategy) valid() bool {
	switch w {
	case WrapOverflow, WrapLegacy, WrapClip, Wrap:
		return true
	}

	return false
}

// UpdateCells deposits a request to write a rectangular grid of values
// anchored at the 1-based cell (row, col); values[i][j] lands in cell
// (row+i, col+j). Rows may be ragged. Nothing is sent until Flush, and a
// validation failure leaves the queue unmodified.
func (sh *Sheet) UpdateCells(row, col int64, values [][]any, kind ValueKind) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("anchor (%v,%v): %w", row, col, ErrInvalidRange)
	}

	if len(values) == 0 {
		return fmt.Errorf("empty value grid: %w", ErrInvalidRange)
	}

	if !kind.valid() {
		return fmt.Errorf("value kind %q: %w", kind, ErrInvalidArgument)
	}

	rows := make([]*sheets.RowData, 0, len(values))
	for _, rowValues := range values {
		rd := sheets.RowData{
			Values: make([]*sheets.CellData, 0, len(rowValues)),
		}

		for _, v := range rowValues {
			ev, err := extendedValue(kind, v)
			if err != nil {
				return err
			}

			rd.Values = append(rd.Values, &sheets.CellData{UserEnteredValue: ev})
		}

		rows = append(rows, &rd)
	}

	sh.deposit(&sheets.Request{
		UpdateCells: &sheets.UpdateCellsRequest{
			Rows:   rows,
			Fields: "userEnteredValue",
			Start: &sheets.GridCoordinate{
				SheetId:         sh.id,
				RowIndex:        row - 1,
				ColumnIndex:     col - 1,
				ForceSendFields: []string{"RowIndex", "ColumnIndex"},
			},
		},
	})

	return nil
}

// UpdateNumbers stages a numeric value grid anchored at (row, col).
func (sh *Sheet) UpdateNumbers(row, col int64, values [][]float64) error {
	grid := make([][]any, len(values))
	for i, rowValues := range values {
		grid[i] = make([]any, len(rowValues))
		for j, v := range rowValues {
			grid[i][j] = v
		}
	}

	return sh.UpdateCells(row, col, grid, NumberValue)
}

// UpdateStrings stages a string value grid anchored at (row, col).
func (sh *Sheet) UpdateStrings(row, col int64, values [][]string) error {
	grid := make([][]any, len(values))
	for i, rowValues := range values {
		grid[i] = make([]any, len(rowValues))
		for j, v := range rowValues {
			grid[i][j] = v
		}
	}

	return sh.UpdateCells(row, col, grid, StringValue)
}

// UpdateBorders deposits a request to set the border on one side of a range.
// color may be nil for the default border colour.
func (sh *Sheet) UpdateBorders(r Range, side Side, style BorderStyle, color *sheets.Color) error {
	if err := r.validate(); err != nil {
		return err
	}

	if !side.valid() {
		return fmt.Errorf("border side %q: %w", side, ErrInvalidArgument)
	}

	if !style.valid() {
		return fmt.Errorf("border style %q: %w", style, ErrInvalidArgument)
	}

	border := sheets.Border{
		Style: string(style),
		Color: color,
	}

	rq := sheets.UpdateBordersRequest{
		Range: r.gridRange(sh.id),
	}

	switch side {
	case SideTop:
		rq.Top = &border
	case SideBottom:
		rq.Bottom = &border
	case SideLeft:
		rq.Left = &border
	case SideRight:
		rq.Right = &border
	case SideInnerHorizontal:
		rq.InnerHorizontal = &border
	case SideInnerVertical:
		rq.InnerVertical = &border
	}

	sh.deposit(&sheets.Request{UpdateBorders: &rq})

	return nil
}

// UpdateBordersAround deposits four border requests (top, right, bottom, left)
// boxing the range.
func (sh *Sheet) UpdateBordersAround(r Range, style BorderStyle, color *sheets.Color) error {
	for _, side := range []Side{SideTop, SideRight, SideBottom, SideLeft} {
		if err := sh.UpdateBorders(r, side, style, color); err != nil {
			return err
		}
	}

	return nil
}

// UpdateBackgroundColor deposits a request to set the background colour of
// every cell in the range.
func (sh *Sheet) UpdateBackgroundColor(r Range, color *sheets.Color) error {
	cell := sheets.CellData{
		UserEnteredFormat: &sheets.CellFormat{
			BackgroundColor: color,
		},
	}

	return sh.repeatCell(r, &cell, "userEnteredFormat.backgroundColor")
}

// UpdateForegroundColor deposits a request to set the text colour of every
// cell in the range.
func (sh *Sheet) UpdateForegroundColor(r Range, color *sheets.Color) error {
	cell := sheets.CellData{
		UserEnteredFormat: &sheets.CellFormat{
			TextFormat: &sheets.TextFormat{
				ForegroundColor: color,
			},
		},
	}

	return sh.repeatCell(r, &cell, "userEnteredFormat.textFormat.foregroundColor")
}

// UpdateTextFormat deposits a request to replace the text format of every cell
// in the range. Attributes left unset in format are reset.
func (sh *Sheet) UpdateTextFormat(r Range, format *sheets.TextFormat) error {
	if format == nil {
		return fmt.Errorf("nil text format: %w", ErrInvalidArgument)
	}

	cell := sheets.CellData{
		UserEnteredFormat: &sheets.CellFormat{
			TextFormat: format,
		},
	}

	return sh.repeatCell(r, &cell, "userEnteredFormat.textFormat")
}

// UpdateTextFormatRuns deposits a request to apply a text format to character
// positions [start, end) of every cell in the range. An end of -1 runs to the
// end of the cell text.
func (sh *Sheet) UpdateTextFormatRuns(r Range, start, end int64, format *sheets.TextFormat) error {
	if format == nil {
		return fmt.Errorf("nil text format: %w", ErrInvalidArgument)
	}

	if start < 0 || (end >= 0 && end < start) {
		return fmt.Errorf("text run [%v,%v): %w", start, end, ErrInvalidRange)
	}

	runs := []*sheets.TextFormatRun{
		{
			Format:          format,
			StartIndex:      start,
			ForceSendFields: []string{"StartIndex"},
		},
	}

	if end >= 0 {
		runs = append(runs, &sheets.TextFormatRun{
			Format:     &sheets.TextFormat{},
			StartIndex: end,
		})
	}

	cell := sheets.CellData{
		TextFormatRuns: runs,
	}

	return sh.repeatCell(r, &cell, "textFormatRuns")
}

// UpdateAlignment deposits a request to set the horizontal and vertical
// alignment of every cell in the range.
func (sh *Sheet) UpdateAlignment(r Range, horizontal HorizontalAlign, vertical VerticalAlign) error {
	if !horizontal.valid() {
		return fmt.Errorf("horizontal alignment %q: %w", horizontal, ErrInvalidArgument)
	}

	if !vertical.valid() {
		return fmt.Errorf("vertical alignment %q: %w", vertical, ErrInvalidArgument)
	}

	cell := sheets.CellData{
		UserEnteredFormat: &sheets.CellFormat{
			HorizontalAlignment: string(horizontal),
			VerticalAlignment:   string(vertical),
		},
	}

	return sh.repeatCell(r, &cell, "userEnteredFormat.horizontalAlignment,userEnteredFormat.verticalAlignment")
}

// UpdateNumberFormat deposits a request to set the number format of every cell
// in the range. FormatAutomatic clears any explicit format; pattern is ignored
// for it.
func (sh *Sheet) UpdateNumberFormat(r Range, format NumberFormatType, pattern string) error {
	if !format.valid() {
		return fmt.Errorf("number format %q: %w", format, ErrInvalidArgument)
	}

	nf := sheets.NumberFormat{}
	if format != FormatAutomatic {
		nf.Type = string(format)
		nf.Pattern = pattern
	}

	cell := sheets.CellData{
		UserEnteredFormat: &sheets.CellFormat{
			NumberFormat: &nf,
		},
	}

	return sh.repeatCell(r, &cell, "userEnteredFormat.numberFormat")
}

// UpdateWrapStrategy deposits a request to set the wrap strategy of every cell
// in the range.
func (sh *Sheet) UpdateWrapStrategy(r Range, strategy WrapStrategy) error {
	if !strategy.valid() {
		return fmt.Errorf("wrap strategy %q: %w", strategy, ErrInvalidArgument)
	}

	cell := sheets.CellData{
		UserEnteredFormat: &sheets.CellFormat{
			WrapStrategy: string(strategy),
		},
	}

	return sh.repeatCell(r, &cell, "userEnteredFormat.wrapStrategy")
}

// UpdateNote deposits a request to set (or, with "", clear) the note on a
// single cell.
func (sh *Sheet) UpdateNote(row, col int64, note string) error {
	cell := sheets.CellData{
		Note:            note,
		ForceSendFields: []string{"Note"},
	}

	return sh.repeatCell(Range{MinRow: row, MinCol: col, MaxRow: row, MaxCol: col}, &cell, "note")
}

// UpdateDataValidation deposits a request to set the data validation rule of
// every cell in the range. A nil rule clears validation.
func (sh *Sheet) UpdateDataValidation(r Range, rule *sheets.DataValidationRule) error {
	cell := sheets.CellData{
		DataValidation: rule,
	}

	return sh.repeatCell(r, &cell, "dataValidation")
}

// MergeCells deposits a request to merge the cells in the range.
func (sh *Sheet) MergeCells(r Range, mergeType MergeType) error {
	if err := r.validate(); err != nil {
		return err
	}

	if !mergeType.valid() {
		return fmt.Errorf("merge type %q: %w", mergeType, ErrInvalidArgument)
	}

	sh.deposit(&sheets.Request{
		MergeCells: &sheets.MergeCellsRequest{
			Range:     r.gridRange(sh.id),
			MergeType: string(mergeType),
		},
	})

	return nil
}

// UnmergeCells deposits a request to unmerge all merged ranges within the
// range.
func (sh *Sheet) UnmergeCells(r Range) error {
	if err := r.validate(); err != nil {
		return err
	}

	sh.deposit(&sheets.Request{
		UnmergeCells: &sheets.UnmergeCellsRequest{
			Range: r.gridRange(sh.id),
		},
	})

	return nil
}

// InsertDimension deposits a request to insert rows or columns [start, end],
// 1-based inclusive.
func (sh *Sheet) InsertDimension(dim Dimension, start, end int64, inheritFromBefore bool) error {
	rng, err := sh.dimensionRange(dim, start, end)
	if err != nil {
		return err
	}

	sh.deposit(&sheets.Request{
		InsertDimension: &sheets.InsertDimensionRequest{
			Range:             rng,
			InheritFromBefore: inheritFromBefore,
		},
	})

	return nil
}

// DeleteDimension deposits a request to delete rows or columns [start, end].
func (sh *Sheet) DeleteDimension(dim Dimension, start, end int64) error {
	rng, err := sh.dimensionRange(dim, start, end)
	if err != nil {
		return err
	}

	sh.deposit(&sheets.Request{
		DeleteDimension: &sheets.DeleteDimensionRequest{
			Range: rng,
		},
	})

	return nil
}

// SetDimensionSize deposits a request to fix the pixel size of rows or
// columns [start, end].
func (sh *Sheet) SetDimensionSize(dim Dimension, start, end, pixels int64) error {
	rng, err := sh.dimensionRange(dim, start, end)
	if err != nil {
		return err
	}

	sh.deposit(&sheets.Request{
		UpdateDimensionProperties: &sheets.UpdateDimensionPropertiesRequest{
			Range: rng,
			Properties: &sheets.DimensionProperties{
				PixelSize: pixels,
			},
			Fields: "pixelSize",
		},
	})

	return nil
}

// HideGridlines deposits a request to hide (or show) the sheet's gridlines.
func (sh *Sheet) HideGridlines(hidden bool) {
	sh.deposit(&sheets.Request{
		UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				SheetId: sh.id,
				GridProperties: &sheets.GridProperties{
					HideGridlines:   hidden,
					ForceSendFields: []string{"HideGridlines"},
				},
			},
			Fields: "gridProperties.hideGridlines",
		},
	})
}

// FreezeRows deposits a request to freeze the first count rows.
func (sh *Sheet) FreezeRows(count int64) {
	sh.deposit(&sheets.Request{
		UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				SheetId: sh.id,
				GridProperties: &sheets.GridProperties{
					FrozenRowCount:  count,
					ForceSendFields: []string{"FrozenRowCount"},
				},
			},
			Fields: "gridProperties.frozenRowCount",
		},
	})
}

// UpdateTitle deposits a request to rename the sheet.
func (sh *Sheet) UpdateTitle(title string) {
	sh.deposit(&sheets.Request{
		UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				SheetId: sh.id,
				Title:   title,
			},
			Fields: "title",
		},
	})
}

// SetHidden deposits a request to hide or unhide the sheet.
func (sh *Sheet) SetHidden(hidden bool) {
	sh.deposit(&sheets.Request{
		UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				SheetId:         sh.id,
				Hidden:          hidden,
				ForceSendFields: []string{"Hidden"},
			},
			Fields: "hidden",
		},
	})
}

// AddConditionalFormat deposits a request to insert a conditional format rule
// over the range at the given zero-based rule index. The rule must carry
// either a boolean or a gradient rule.
func (sh *Sheet) AddConditionalFormat(r Range, rule *sheets.ConditionalFormatRule, index int64) error {
	if err := r.validate(); err != nil {
		return err
	}

	if rule == nil || (rule.BooleanRule == nil && rule.GradientRule == nil) {
		return fmt.Errorf("conditional format needs a boolean or gradient rule: %w", ErrInvalidArgument)
	}

	staged := *rule
	staged.Ranges = []*sheets.GridRange{r.gridRange(sh.id)}

	sh.deposit(&sheets.Request{
		AddConditionalFormatRule: &sheets.AddConditionalFormatRuleRequest{
			Rule:            &staged,
			Index:           index,
			ForceSendFields: []string{"Index"},
		},
	})

	return nil
}

// DeleteConditionalFormat deposits a request to delete the conditional format
// rule at the given zero-based index. Subsequent rule indexes shift down.
func (sh *Sheet) DeleteConditionalFormat(index int64) {
	sh.deposit(&sheets.Request{
		DeleteConditionalFormatRule: &sheets.DeleteConditionalFormatRuleRequest{
			SheetId:         sh.id,
			Index:           index,
			ForceSendFields: []string{"Index"},
		},
	})
}

// Protect deposits a request to protect the whole sheet, leaving the given
// ranges editable. The client's account email (WithAccountEmail) is recorded
// as the sole editor.
func (sh *Sheet) Protect(unprotected ...Range) error {
	email := sh.spreadsheet.client.email
	if email == "" {
		return fmt.Errorf("sheet protection requires an account email: %w", ErrInvalidArgument)
	}

	pr := sheets.ProtectedRange{
		Range: &sheets.GridRange{
			SheetId: sh.id,
		},
		Editors: &sheets.Editors{
			Users: []string{email},
		},
	}

	for _, r := range unprotected {
		if err := r.validate(); err != nil {
			return err
		}

		pr.UnprotectedRanges = append(pr.UnprotectedRanges, r.gridRange(sh.id))
	}

	sh.deposit(&sheets.Request{
		AddProtectedRange: &sheets.AddProtectedRangeRequest{
			ProtectedRange: &pr,
		},
	})

	return nil
}

// Unprotect deposits a request to delete the protected range with the given
// id.
func (sh *Sheet) Unprotect(protectedRangeID int64) {
	sh.deposit(&sheets.Request{
		DeleteProtectedRange: &sheets.DeleteProtectedRangeRequest{
			ProtectedRangeId: protectedRangeID,
		},
	})
}

func (sh *Sheet) repeatCell(r Range, cell *sheets.CellData, fields string) error {
	if err := r.validate(); err != nil {
		return err
	}

	sh.deposit(&sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range:  r.gridRange(sh.id),
			Cell:   cell,
			Fields: fields,
		},
	})

	return nil
}

func (sh *Sheet) dimensionRange(dim Dimension, start, end int64) (*sheets.DimensionRange, error) {
	if !dim.valid() {
		return nil, fmt.Errorf("dimension %q: %w", dim, ErrInvalidArgument)
	}

	if start < 1 || end < start {
		return nil, fmt.Errorf("%s [%v,%v]: %w", dim, start, end, ErrInvalidRange)
	}

	return &sheets.DimensionRange{
		SheetId:         sh.id,
		Dimension:       string(dim),
		StartIndex:      start - 1,
		EndIndex:        end,
		ForceSendFields: []string{"StartIndex"},
	}, nil
}

func (sh *Sheet) deposit(rq *sheets.Request) {
	sh.spreadsheet.client.deposit(sh.spreadsheet.id, rq)
}

func extendedValue(kind ValueKind, v any) (*sheets.ExtendedValue, error) {
	switch kind {
	case NumberValue:
		var n float64

		switch value := v.(type) {
		case float64:
			n = value
		case float32:
			n = float64(value)
		case int:
			n = float64(value)
		case int32:
			n = float64(value)
		case int64:
			n = float64(value)
		default:
			return nil, fmt.Errorf("%v (%T) is not a number: %w", v, v, ErrInvalidArgument)
		}

		return &sheets.ExtendedValue{NumberValue: &n}, nil

	case StringValue:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%v (%T) is not a string: %w", v, v, ErrInvalidArgument)
		}

		return &sheets.ExtendedValue{StringValue: &s}, nil

	case BoolValue:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("%v (%T) is not a bool: %w", v, v, ErrInvalidArgument)
		}

		return &sheets.ExtendedValue{BoolValue: &b}, nil

	case FormulaValue:
		f, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%v (%T) is not a formula string: %w", v, v, ErrInvalidArgument)
		}

		return &sheets.ExtendedValue{FormulaValue: &f}, nil
	}

	return nil, fmt.Errorf("value kind %q: %w", kind, ErrInvalidArgument)
}
