package ghelper

import (
	"evilboard/src/geometry"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteSubImage *ebiten.Image

// source texture for DrawTriangles, created on first use
func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	// create a context with alpha and draw rounded rectangle using gg (anti-aliased)
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(radius))
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	img := dc.Image()
	return ebiten.NewImageFromImage(img)
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

// DrawRect fills r shifted by (ox, oy).
func DrawRect(screen *ebiten.Image, r geometry.Rect, ox, oy float64, c color.RGBA) {
	vector.DrawFilledRect(screen, float32(ox+r.X), float32(oy+r.Y), float32(r.W), float32(r.H), c, false)
}

// DrawArrow strokes the shaft up to End and fills the head triangle.
func DrawArrow(screen *ebiten.Image, a geometry.ArrowRenderSpec, ox, oy float64) {
	vector.StrokeLine(screen,
		float32(ox+a.From.X), float32(oy+a.From.Y),
		float32(ox+a.End.X), float32(oy+a.End.Y),
		float32(a.StrokeWidth), a.Color, true)

	var path vector.Path
	path.MoveTo(float32(ox+a.Head[0].X), float32(oy+a.Head[0].Y))
	path.LineTo(float32(ox+a.Head[1].X), float32(oy+a.Head[1].Y))
	path.LineTo(float32(ox+a.Head[2].X), float32(oy+a.Head[2].Y))
	path.Close()
	fillPath(screen, &path, a.Color)
}

func fillPath(screen *ebiten.Image, path *vector.Path, c color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	// color.RGBA is already premultiplied
	r, g, b, al := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = al
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whitePixel(), op)
}
