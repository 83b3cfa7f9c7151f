package export

import (
	"evilboard/src/base"
	"evilboard/src/compose"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
)

func paintContext(f compose.Frame, th Theme) (*gg.Context, error) {
	if !f.Ready {
		return nil, base.ErrInvalidWidth
	}
	size := int(math.Ceil(f.Width))
	dc := gg.NewContext(size, size)

	pieceFace, err := NewFace(f.SquareSize * 0.45)
	if err != nil {
		return nil, fmt.Errorf("error load font: %w", err)
	}
	labelFace, err := NewFace(f.SquareSize * 0.22)
	if err != nil {
		return nil, fmt.Errorf("error load font: %w", err)
	}

	PaintFrame(dc, f, th, pieceFace, labelFace, 0, 0)
	return dc, nil
}

// RenderImage rasterizes a composed frame at its own width.
func RenderImage(f compose.Frame, th Theme) (image.Image, error) {
	dc, err := paintContext(f, th)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// RenderPNG writes the frame as a PNG image.
func RenderPNG(w io.Writer, f compose.Frame, th Theme) error {
	dc, err := paintContext(f, th)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}
