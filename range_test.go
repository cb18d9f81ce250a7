package sheetbatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeString(t *testing.T) {
	assert.Equal(t, "R2C2:R4C5", NewRange(2, 2, 4, 5).String())
	assert.Equal(t, "R1C1:R1C1", NewRange(1, 1, 1, 1).String())
}

func TestRangeContains(t *testing.T) {
	r := NewRange(2, 2, 4, 5)

	assert.True(t, r.Contains(2, 2))
	assert.True(t, r.Contains(4, 5))
	assert.True(t, r.Contains(3, 4))

	assert.False(t, r.Contains(1, 2))
	assert.False(t, r.Contains(5, 2))
	assert.False(t, r.Contains(2, 1))
	assert.False(t, r.Contains(2, 6))
}

func TestRangeValidate(t *testing.T) {
	assert.NoError(t, NewRange(1, 1, 1, 1).validate())
	assert.NoError(t, NewRange(2, 2, 4, 5).validate())

	assert.ErrorIs(t, NewRange(0, 1, 1, 1).validate(), ErrInvalidRange)
	assert.ErrorIs(t, NewRange(1, 0, 1, 1).validate(), ErrInvalidRange)
	assert.ErrorIs(t, NewRange(4, 2, 2, 5).validate(), ErrInvalidRange)
	assert.ErrorIs(t, NewRange(2, 5, 4, 2).validate(), ErrInvalidRange)
}

func TestGridRangeConversion(t *testing.T) {
	gr := NewRange(2, 2, 4, 5).gridRange(7)

	assert.Equal(t, int64(7), gr.SheetId)
	assert.Equal(t, int64(1), gr.StartRowIndex)
	assert.Equal(t, int64(4), gr.EndRowIndex)
	assert.Equal(t, int64(1), gr.StartColumnIndex)
	assert.Equal(t, int64(5), gr.EndColumnIndex)
}

func TestGridRangeForcesZeroIndices(t *testing.T) {
	// a range anchored at R1C1 maps to start indices 0, which json-omitempty
	// would otherwise drop
	gr := NewRange(1, 1, 3, 3).gridRange(0)

	require.Equal(t, int64(0), gr.StartRowIndex)
	require.Equal(t, int64(0), gr.StartColumnIndex)
	assert.Equal(t, []string{"StartRowIndex", "StartColumnIndex"}, gr.ForceSendFields)
}
