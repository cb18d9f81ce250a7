package sheetbatch

import (
	"strconv"

	"google.golang.org/api/sheets/v4"
)

// CellRef is a 1-based (row, column) cell position.
type CellRef struct {
	Row int64
	Col int64
}

// Value is a cached cell value. The zero Value is the empty sentinel returned
// for unset and out-of-range cells.
type Value struct {
	raw *sheets.ExtendedValue
}

func (v Value) IsEmpty() bool {
	if v.raw == nil {
		return true
	}

	return v.raw.NumberValue == nil && v.raw.StringValue == nil && v.raw.BoolValue == nil && v.raw.FormulaValue == nil && v.raw.ErrorValue == nil
}

func (v Value) Number() (float64, bool) {
	if v.raw == nil || v.raw.NumberValue == nil {
		return 0, false
	}

	return *v.raw.NumberValue, true
}

func (v Value) Text() (string, bool) {
	if v.raw == nil || v.raw.StringValue == nil {
		return "", false
	}

	return *v.raw.StringValue, true
}

func (v Value) Bool() (bool, bool) {
	if v.raw == nil || v.raw.BoolValue == nil {
		return false, false
	}

	return *v.raw.BoolValue, true
}

func (v Value) Formula() (string, bool) {
	if v.raw == nil || v.raw.FormulaValue == nil {
		return "", false
	}

	return *v.raw.FormulaValue, true
}

// ErrorValue returns the API error value for cells whose formula evaluation
// failed, or nil.
func (v Value) ErrorValue() *sheets.ErrorValue {
	if v.raw == nil {
		return nil
	}

	return v.raw.ErrorValue
}

func (v Value) String() string {
	switch {
	case v.raw == nil:
		return ""

	case v.raw.StringValue != nil:
		return *v.raw.StringValue

	case v.raw.NumberValue != nil:
		return strconv.FormatFloat(*v.raw.NumberValue, 'f', -1, 64)

	case v.raw.BoolValue != nil:
		return strconv.FormatBool(*v.raw.BoolValue)

	case v.raw.FormulaValue != nil:
		return *v.raw.FormulaValue

	case v.raw.ErrorValue != nil:
		return v.raw.ErrorValue.Type

	default:
		return ""
	}
}
