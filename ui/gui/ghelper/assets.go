package ghelper

import (
	"evilboard/src/base"
	"evilboard/ui/export"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// GUIAssetsWorker rasterizes piece sprites and font faces for one square
// size and rebuilds them when the size changes.
type GUIAssetsWorker struct {
	theme  export.Theme
	size   int
	pieces map[base.Piece]*ebiten.Image
	ghosts map[base.Piece]*ebiten.Image
	labels font.Face
	status font.Face
}

func NewGUIAssetsWorker(th export.Theme) (*GUIAssetsWorker, error) {
	status, err := export.NewFace(14)
	if err != nil {
		return nil, fmt.Errorf("error load font: %w", err)
	}
	return &GUIAssetsWorker{theme: th, status: status}, nil
}

// Resize prepares sprites for squares of size px. Same size is a no-op.
func (aw *GUIAssetsWorker) Resize(size int) error {
	if size <= 0 || size == aw.size {
		return nil
	}
	pieceFace, err := export.NewFace(float64(size) * 0.45)
	if err != nil {
		return fmt.Errorf("error load font: %w", err)
	}
	labels, err := export.NewFace(float64(size) * 0.22)
	if err != nil {
		return fmt.Errorf("error load font: %w", err)
	}

	pieces := make(map[base.Piece]*ebiten.Image, 12)
	ghosts := make(map[base.Piece]*ebiten.Image, 12)
	for _, p := range []base.Piece{
		base.WKing, base.WQueen, base.WRook, base.WBishop, base.WKnight, base.WPawn,
		base.BKing, base.BQueen, base.BRook, base.BBishop, base.BKnight, base.BPawn,
	} {
		pieces[p] = renderPiece(p, size, pieceFace, aw.theme, 1)
		ghosts[p] = renderPiece(p, size, pieceFace, aw.theme, aw.theme.GhostAlpha)
	}
	aw.size, aw.pieces, aw.ghosts, aw.labels = size, pieces, ghosts, labels
	return nil
}

func renderPiece(p base.Piece, size int, face font.Face, th export.Theme, alpha float64) *ebiten.Image {
	dc := gg.NewContext(size, size)
	s := float64(size)
	export.PaintPiece(dc, p, s/2, s/2, s, face, th, alpha)
	return ebiten.NewImageFromImage(dc.Image())
}

func (aw *GUIAssetsWorker) Piece(p base.Piece) *ebiten.Image {
	return aw.pieces[p]
}

func (aw *GUIAssetsWorker) Ghost(p base.Piece) *ebiten.Image {
	return aw.ghosts[p]
}

func (aw *GUIAssetsWorker) Labels() font.Face {
	return aw.labels
}

func (aw *GUIAssetsWorker) Status() font.Face {
	return aw.status
}

func (aw *GUIAssetsWorker) Theme() export.Theme {
	return aw.theme
}
