package gdraw

import (
	"evilboard/ui/gui/gctx"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *gctx.GUIBoardContext) (SceneType, error)
	Draw(ctx *gctx.GUIBoardContext, screen *ebiten.Image)
	Close()
}

type SceneType int

const (
	SceneBoard SceneType = iota
	SceneNotChanged
)

func (t SceneType) ToScene(s Scene, ctx *gctx.GUIBoardContext) (Scene, error) {
	switch t {
	case SceneBoard:
		if s != nil {
			s.Close()
		}
		return NewGUIBoardDrawer(ctx)
	case SceneNotChanged:
	default:
	}
	return s, nil
}

// drawCentered writes msg centered on (cx, cy).
func drawCentered(screen *ebiten.Image, msg string, face font.Face, cx, cy int, c color.Color) {
	bounds := text.BoundString(face, msg)
	text.Draw(screen, msg, face, cx-bounds.Dx()/2, cy+bounds.Dy()/2, c)
}

// fade scales a color by alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
