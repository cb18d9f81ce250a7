package sheetbatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/sheets/v4"
)

func TestZeroValueIsEmpty(t *testing.T) {
	v := Value{}

	assert.True(t, v.IsEmpty())
	assert.Equal(t, "", v.String())

	_, ok := v.Number()
	assert.False(t, ok)

	_, ok = v.Text()
	assert.False(t, ok)

	_, ok = v.Bool()
	assert.False(t, ok)

	_, ok = v.Formula()
	assert.False(t, ok)

	assert.Nil(t, v.ErrorValue())
}

func TestValueAccessors(t *testing.T) {
	n, ok := (Value{raw: numv(42.5)}).Number()
	assert.True(t, ok)
	assert.Equal(t, 42.5, n)

	s, ok := (Value{raw: strv("hello")}).Text()
	assert.True(t, ok)
	assert.Equal(t, "hello", s)

	b, ok := (Value{raw: boolv(false)}).Bool()
	assert.True(t, ok)
	assert.False(t, b)

	f, ok := (Value{raw: formulav("=SUM(A1:A9)")}).Formula()
	assert.True(t, ok)
	assert.Equal(t, "=SUM(A1:A9)", f)
}

func TestValueAccessorKindMismatch(t *testing.T) {
	v := Value{raw: strv("not a number")}

	_, ok := v.Number()
	assert.False(t, ok)

	_, ok = v.Bool()
	assert.False(t, ok)

	assert.False(t, v.IsEmpty())
}

func TestValueZeroesAreNotEmpty(t *testing.T) {
	// a stored 0, "" or false is a real value, distinct from an unset cell
	assert.False(t, (Value{raw: numv(0)}).IsEmpty())
	assert.False(t, (Value{raw: strv("")}).IsEmpty())
	assert.False(t, (Value{raw: boolv(false)}).IsEmpty())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "widgets", (Value{raw: strv("widgets")}).String())
	assert.Equal(t, "3", (Value{raw: numv(3)}).String())
	assert.Equal(t, "3.25", (Value{raw: numv(3.25)}).String())
	assert.Equal(t, "true", (Value{raw: boolv(true)}).String())
	assert.Equal(t, "=B2*2", (Value{raw: formulav("=B2*2")}).String())
}

func TestValueError(t *testing.T) {
	raw := sheets.ExtendedValue{
		ErrorValue: &sheets.ErrorValue{Type: "DIVIDE_BY_ZERO", Message: "Function DIVIDE parameter 2 cannot be zero."},
	}
	v := Value{raw: &raw}

	assert.False(t, v.IsEmpty())
	assert.Equal(t, "DIVIDE_BY_ZERO", v.ErrorValue().Type)
	assert.Equal(t, "DIVIDE_BY_ZERO", v.String())
}
