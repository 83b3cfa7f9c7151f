package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareFileRank(t *testing.T) {
	tests := []struct {
		sq         Square
		file, rank int
		ok         bool
	}{
		{"a1", 0, 0, true},
		{"h8", 7, 7, true},
		{"e4", 4, 3, true},
		{"i1", -1, -1, false},
		{"a9", -1, -1, false},
		{"a", -1, -1, false},
		{"e44", -1, -1, false},
		{"E4", -1, -1, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.sq), func(t *testing.T) {
			f, r, err := tt.sq.FileRank()
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidSquare)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.file, f)
			assert.Equal(t, tt.rank, r)
		})
	}
}

func TestAllSquares(t *testing.T) {
	all := AllSquares()
	require.Len(t, all, 64)
	assert.Equal(t, Square("a1"), all[0])
	assert.Equal(t, Square("h8"), all[63])

	seen := map[Square]bool{}
	for _, sq := range all {
		assert.True(t, sq.Valid())
		seen[sq] = true
	}
	assert.Len(t, seen, 64)
}

func TestSquareAt(t *testing.T) {
	sq, err := SquareAt(4, 3)
	require.NoError(t, err)
	assert.Equal(t, Square("e4"), sq)

	_, err = SquareAt(8, 0)
	assert.ErrorIs(t, err, ErrInvalidSquare)
}

func TestSquareLight(t *testing.T) {
	assert.False(t, Square("a1").Light())
	assert.True(t, Square("h1").Light())
	assert.False(t, Square("h8").Light())
}

func TestOrientation(t *testing.T) {
	o, err := OrientationFromString("Black")
	require.NoError(t, err)
	assert.Equal(t, BlackOnBottom, o)
	assert.Equal(t, WhiteOnBottom, o.Flip())
	assert.Equal(t, "black", o.String())

	_, err = OrientationFromString("sideways")
	assert.Error(t, err)
}

func TestParsePiece(t *testing.T) {
	tests := map[string]Piece{
		"wP": WPawn,
		"bK": BKing,
		"bn": BKnight,
		"Q":  WQueen,
		"r":  BRook,
	}
	for in, want := range tests {
		got, err := ParsePiece(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePiece("xP")
	assert.Error(t, err)
	assert.Equal(t, "wP", WPawn.String())
	assert.Equal(t, "bQ", BQueen.String())
}

func TestParseArrowAndPremove(t *testing.T) {
	a, err := ParseArrow("e2e4")
	require.NoError(t, err)
	assert.Equal(t, Arrow{From: "e2", To: "e4"}, a)
	assert.Equal(t, "e2e4", a.String())

	_, err = ParseArrow("e2z4")
	assert.ErrorIs(t, err, ErrInvalidSquare)

	pm, err := ParsePremove("g1f3", WKnight)
	require.NoError(t, err)
	assert.Equal(t, Premove{Source: "g1", Target: "f3", Piece: WKnight}, pm)
}

func TestPositionClone(t *testing.T) {
	p := Position{"e4": WPawn}
	c := p.Clone()
	c["d4"] = WPawn
	assert.Len(t, p, 1)
	assert.Len(t, c, 2)
}
