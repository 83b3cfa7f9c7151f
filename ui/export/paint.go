package export

import (
	"evilboard/src/base"
	"evilboard/src/compose"
	"evilboard/src/geometry"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// PaintFrame draws squares, pieces, premove ghosts, notation and arrows with
// the board's top-left corner at (ox, oy). labels may be nil when the frame
// carries no notation; pieceFace may be nil to draw bare discs.
func PaintFrame(dc *gg.Context, f compose.Frame, th Theme, pieceFace, labels font.Face, ox, oy float64) {
	if !f.Ready {
		return
	}
	for _, v := range f.Squares {
		r := v.Rect
		setColor(dc, th.SquareColor(v.Light, v.State.IsPremoveEndpoint), 1)
		dc.DrawRectangle(ox+r.X, oy+r.Y, r.W, r.H)
		dc.Fill()
	}

	for _, v := range f.Squares {
		c := v.Center
		if v.State.HasCommittedPiece {
			PaintPiece(dc, v.State.Piece, ox+c.X, oy+c.Y, f.SquareSize, pieceFace, th, 1)
		}
		if v.State.IsPremoveTarget {
			PaintPiece(dc, v.State.PremoveTarget.Piece, ox+c.X, oy+c.Y, f.SquareSize, pieceFace, th, th.GhostAlpha)
		}
	}

	if labels != nil {
		dc.SetFontFace(labels)
		pad := f.SquareSize * 0.06
		for _, v := range f.Squares {
			if v.FileLabel == "" && v.RankLabel == "" {
				continue
			}
			// label in the color of the opposite square
			setColor(dc, th.SquareColor(!v.Light, false), 1)
			r := v.Rect
			if v.RankLabel != "" {
				dc.DrawStringAnchored(v.RankLabel, ox+r.X+pad, oy+r.Y+pad, 0, 1)
			}
			if v.FileLabel != "" {
				dc.DrawStringAnchored(v.FileLabel, ox+r.X+r.W-pad, oy+r.Y+r.H-pad, 1, 0)
			}
		}
	}

	for _, a := range f.Arrows {
		PaintArrow(dc, a, ox, oy)
	}
}

// PaintArrow strokes the shortened line and fills its head.
func PaintArrow(dc *gg.Context, a geometry.ArrowRenderSpec, ox, oy float64) {
	setColor(dc, a.Color, 1)
	dc.SetLineWidth(a.StrokeWidth)
	dc.SetLineCap(gg.LineCapButt)
	dc.DrawLine(ox+a.From.X, oy+a.From.Y, ox+a.End.X, oy+a.End.Y)
	dc.Stroke()

	dc.MoveTo(ox+a.Head[0].X, oy+a.Head[0].Y)
	dc.LineTo(ox+a.Head[1].X, oy+a.Head[1].Y)
	dc.LineTo(ox+a.Head[2].X, oy+a.Head[2].Y)
	dc.ClosePath()
	dc.Fill()
}

// PaintPiece draws a piece as a disc with its letter, centered on (cx, cy).
func PaintPiece(dc *gg.Context, p base.Piece, cx, cy, size float64, face font.Face, th Theme, alpha float64) {
	fill, ink := th.WhitePiece, th.BlackPiece
	if base.PieceIsBlack(p) {
		fill, ink = ink, fill
	}
	radius := size * 0.38

	setColor(dc, fill, alpha)
	dc.DrawCircle(cx, cy, radius)
	dc.FillPreserve()
	setColor(dc, ink, alpha)
	dc.SetLineWidth(size * 0.04)
	dc.Stroke()

	if face != nil {
		dc.SetFontFace(face)
		dc.DrawStringAnchored(string(p.Kind()), cx, cy, 0.5, 0.35)
	}
}

func setColor(dc *gg.Context, c color.RGBA, alpha float64) {
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(float64(c.A)*alpha))
}
