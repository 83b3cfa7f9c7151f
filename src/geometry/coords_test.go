package geometry

import (
	"evilboard/src/base"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orientations = []base.Orientation{base.WhiteOnBottom, base.BlackOnBottom}

func TestToPointCorners(t *testing.T) {
	tests := []struct {
		sq   base.Square
		o    base.Orientation
		want Point
	}{
		{"a1", base.WhiteOnBottom, Point{25, 375}},
		{"h8", base.WhiteOnBottom, Point{375, 25}},
		{"a8", base.WhiteOnBottom, Point{25, 25}},
		{"e4", base.WhiteOnBottom, Point{225, 225}},
		{"a1", base.BlackOnBottom, Point{375, 25}},
		{"h8", base.BlackOnBottom, Point{25, 375}},
		{"h1", base.BlackOnBottom, Point{25, 25}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.sq, tt.o), func(t *testing.T) {
			got, err := ToPoint(tt.sq, tt.o, 400)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToPointInvalidSquare(t *testing.T) {
	for _, sq := range []base.Square{"", "z9", "e", "e10"} {
		_, err := ToPoint(sq, base.WhiteOnBottom, 400)
		assert.ErrorIs(t, err, base.ErrInvalidSquare, "square %q", sq)
	}
}

func TestToPointBoundsAndBijection(t *testing.T) {
	const w = 480.0
	for _, o := range orientations {
		cells := map[[2]int]base.Square{}
		for _, sq := range base.AllSquares() {
			p, err := ToPoint(sq, o, w)
			require.NoError(t, err)
			assert.True(t, p.X >= 0 && p.X <= w, "%s x=%v", sq, p.X)
			assert.True(t, p.Y >= 0 && p.Y <= w, "%s y=%v", sq, p.Y)

			col, row, err := Cell(sq, o)
			require.NoError(t, err)
			key := [2]int{col, row}
			_, dup := cells[key]
			assert.False(t, dup, "cell %v mapped twice", key)
			cells[key] = sq
		}
		assert.Len(t, cells, 64, o.String())
	}
}

func TestToPointRoundTrip(t *testing.T) {
	const w = 400.0
	for _, o := range orientations {
		for _, sq := range base.AllSquares() {
			p, err := ToPoint(sq, o, w)
			require.NoError(t, err)

			got, err := SquareAtPoint(p, o, w)
			require.NoError(t, err)
			assert.Equal(t, sq, got, o.String())

			col, row, err := Cell(sq, o)
			require.NoError(t, err)
			back, err := SquareAtCell(col, row, o)
			require.NoError(t, err)
			assert.Equal(t, sq, back)
		}
	}
}

func TestToPointOrientationSymmetry(t *testing.T) {
	const w = 400.0
	for _, sq := range base.AllSquares() {
		white, err := ToPoint(sq, base.WhiteOnBottom, w)
		require.NoError(t, err)
		black, err := ToPoint(sq, base.BlackOnBottom, w)
		require.NoError(t, err)
		assert.InDelta(t, w-white.X, black.X, 1e-9, string(sq))
		assert.InDelta(t, w-white.Y, black.Y, 1e-9, string(sq))
	}
}

func TestToPointFollowsWidth(t *testing.T) {
	small, err := ToPoint("c3", base.WhiteOnBottom, 200)
	require.NoError(t, err)
	large, err := ToPoint("c3", base.WhiteOnBottom, 800)
	require.NoError(t, err)
	assert.Equal(t, small.Scale(4), large)
}

func TestSquareAtPointOffBoard(t *testing.T) {
	_, err := SquareAtPoint(Point{-1, 10}, base.WhiteOnBottom, 400)
	assert.ErrorIs(t, err, base.ErrInvalidSquare)
	_, err = SquareAtPoint(Point{400, 10}, base.WhiteOnBottom, 400)
	assert.ErrorIs(t, err, base.ErrInvalidSquare)
	_, err = SquareAtPoint(Point{10, 10}, base.WhiteOnBottom, 0)
	assert.ErrorIs(t, err, base.ErrInvalidWidth)
}

func TestSquareRect(t *testing.T) {
	r, err := SquareRect("b2", base.WhiteOnBottom, 400)
	require.NoError(t, err)
	assert.Equal(t, Rect{X: 50, Y: 300, W: 50, H: 50}, r)
	assert.Equal(t, Point{75, 325}, r.Center())
	assert.True(t, r.Contains(50, 300))
	assert.False(t, r.Contains(49, 300))
	assert.False(t, r.Contains(100, 320))
	assert.False(t, r.Contains(60, 350))

	// every point Contains accepts maps back to the square
	for _, p := range []Point{{X: 50, Y: 300}, {X: 99.9, Y: 349.9}, {X: 75, Y: 325}} {
		require.True(t, r.Contains(p.X, p.Y))
		sq, err := SquareAtPoint(p, base.WhiteOnBottom, 400)
		require.NoError(t, err)
		assert.Equal(t, base.Square("b2"), sq)
	}
}
