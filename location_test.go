package wisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationShiftedAndBack(t *testing.T) {
	start := Location{Line: 2, Column: 3, Pos: 10}
	shifted := start.Shifted(4)
	assert.Equal(t, Location{Line: 2, Column: 7, Pos: 14}, shifted)
	assert.Equal(t, start, shifted.ShiftedBack(4))
}

func TestLocationShiftedBackPanicsPastStart(t *testing.T) {
	start := Location{Line: 1, Column: 1, Pos: 0}
	assert.Panics(t, func() { start.ShiftedBack(1) })
}

func TestLocationLess(t *testing.T) {
	a := Location{Line: 1, Column: 5, Pos: 5}
	b := Location{Line: 1, Column: 6, Pos: 6}
	c := Location{Line: 2, Column: 1, Pos: 7}
	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.False(t, b.Less(a))
}

func TestCodeSpanMergeAndInBetween(t *testing.T) {
	left := CodeSpan{Start: Location{Line: 1, Column: 1, Pos: 0}, End: Location{Line: 1, Column: 4, Pos: 3}}
	right := CodeSpan{Start: Location{Line: 1, Column: 6, Pos: 5}, End: Location{Line: 1, Column: 9, Pos: 8}}

	merged := MergeSpans(left, right)
	assert.Equal(t, left.Start, merged.Start)
	assert.Equal(t, right.End, merged.End)

	between := SpanInBetween(left, right)
	assert.Equal(t, left.End.Shifted(1), between.Start)
	assert.Equal(t, right.Start.ShiftedBack(1), between.End)
}

func TestCodeSpanSlice(t *testing.T) {
	src := "var a = 1;"
	span := CodeSpan{Start: Location{Line: 1, Column: 1, Pos: 0}, End: Location{Line: 1, Column: 4, Pos: 3}}
	require.Equal(t, "var", span.Slice(src))
}

func TestCodeSpanExtendToLeft(t *testing.T) {
	span := CodeSpan{Start: Location{Line: 1, Column: 2, Pos: 1}, End: Location{Line: 1, Column: 3, Pos: 2}}
	extended := span.ExtendToLeft(1)
	assert.Equal(t, Location{Line: 1, Column: 1, Pos: 0}, extended.Start)
}
