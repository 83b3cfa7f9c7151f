package compose

import (
	"evilboard/src/base"
	"evilboard/src/geometry"
	"evilboard/src/logx"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func snapshot() Snapshot {
	return Snapshot{
		Position:    base.Position{"e4": base.WPawn, "g8": base.BKnight},
		Arrows:      []base.Arrow{{From: "e2", To: "e4"}},
		Premoves:    []base.Premove{{Source: "e2", Target: "e4", Piece: base.WPawn}},
		Orientation: base.WhiteOnBottom,
		Width:       400,
		ArrowStyle:  geometry.DefaultArrowStyle(),
	}
}

func TestComposeSquares(t *testing.T) {
	f := Compose(snapshot(), logx.NewNop())
	require.True(t, f.Ready)
	require.Len(t, f.Squares, 64)
	assert.Equal(t, 50.0, f.SquareSize)

	first := f.Squares[0]
	assert.Equal(t, base.Square("a8"), first.Square)
	assert.Equal(t, geometry.Rect{X: 0, Y: 0, W: 50, H: 50}, first.Rect)
	assert.True(t, first.Light)

	last := f.Squares[63]
	assert.Equal(t, base.Square("h1"), last.Square)
	assert.Equal(t, geometry.Point{X: 375, Y: 375}, last.Center)

	e4, ok := f.At("e4")
	require.True(t, ok)
	assert.True(t, e4.State.HasCommittedPiece)
	assert.True(t, e4.State.IsPremoveTarget)

	e2, ok := f.At("e2")
	require.True(t, ok)
	assert.True(t, e2.State.IsPremoveEndpoint)
	assert.False(t, e2.State.HasCommittedPiece)
}

func TestComposeBlackOnBottom(t *testing.T) {
	snap := snapshot()
	snap.Orientation = base.BlackOnBottom
	f := Compose(snap, logx.NewNop())
	assert.Equal(t, base.Square("h1"), f.Squares[0].Square)
	assert.Equal(t, base.Square("a8"), f.Squares[63].Square)

	require.Len(t, f.Arrows, 1)
	// e2 -> e4 points down the screen when black is at the bottom
	assert.Greater(t, f.Arrows[0].Direction.Y, 0.0)
}

func TestComposeNotation(t *testing.T) {
	snap := snapshot()
	snap.ShowNotation = true
	f := Compose(snap, logx.NewNop())

	a1, _ := f.At("a1")
	assert.Equal(t, "a", a1.FileLabel)
	assert.Equal(t, "1", a1.RankLabel)
	h1, _ := f.At("h1")
	assert.Equal(t, "h", h1.FileLabel)
	assert.Empty(t, h1.RankLabel)
	e4, _ := f.At("e4")
	assert.Empty(t, e4.FileLabel)
	assert.Empty(t, e4.RankLabel)

	snap.Orientation = base.BlackOnBottom
	f = Compose(snap, logx.NewNop())
	h8, _ := f.At("h8")
	assert.Equal(t, "h", h8.FileLabel)
	assert.Equal(t, "8", h8.RankLabel)

	snap.ShowNotation = false
	f = Compose(snap, logx.NewNop())
	h8, _ = f.At("h8")
	assert.Empty(t, h8.FileLabel)
}

func TestComposeNoWidth(t *testing.T) {
	snap := snapshot()
	snap.Width = 0
	f := Compose(snap, logx.NewNop())
	assert.False(t, f.Ready)
	assert.Empty(t, f.Squares)
	assert.Empty(t, f.Arrows)
}

func TestComposeEmptyOverlay(t *testing.T) {
	f := Compose(Snapshot{Width: 320}, logx.NewNop())
	require.True(t, f.Ready)
	assert.Empty(t, f.Arrows)
	for _, v := range f.Squares {
		assert.False(t, v.State.HasCommittedPiece)
		assert.False(t, v.State.IsPremoveEndpoint)
	}
}

func TestComposeArrowFailuresAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	snap := snapshot()
	snap.Arrows = []base.Arrow{
		{From: "e2", To: "e4"},
		{From: "d4", To: "d4"},
		{From: "zz", To: "d4"},
		{From: "g1", To: "f3"},
	}
	snap.ArrowStyle = geometry.ArrowStyle{
		Color: geometry.PerArrow(color.RGBA{1, 2, 3, 255}, color.RGBA{}, color.RGBA{}),
		Width: geometry.Uniform(0.02),
	}

	f := Compose(snap, logx.NewFromCore(core))
	require.Len(t, f.Arrows, 2)
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, f.Arrows[0].Color)
	assert.Equal(t, geometry.DefaultArrowColor, f.Arrows[1].Color)
	assert.Equal(t, "arrowhead3", f.Arrows[1].MarkerID)

	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Equal(t, 1, logs.FilterMessageSnippet("degenerate").Len())
}
