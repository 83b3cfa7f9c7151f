package gdraw

import (
	"evilboard/src/geometry"
	"evilboard/ui/gui/gbase"
	"math"
)

// boardLayout places the board inside the window above the status line.
type boardLayout struct {
	X, Y float64
	Size float64
}

// computeLayout clamps the wanted board width to the window. Size is a
// multiple of 8 and may be 0 when the window is too small.
func computeLayout(winW, winH int, want float64) boardLayout {
	avail := math.Min(float64(winW-2*gbase.BoardMargin), float64(winH-2*gbase.BoardMargin-gbase.StatusH))
	size := math.Min(want, avail)
	size = math.Floor(size/8) * 8
	if size < 0 {
		size = 0
	}
	return boardLayout{
		X:    math.Floor((float64(winW) - size) / 2),
		Y:    math.Floor((float64(winH-gbase.StatusH) - size) / 2),
		Size: size,
	}
}

func (l boardLayout) Rect() geometry.Rect {
	return geometry.Rect{X: l.X, Y: l.Y, W: l.Size, H: l.Size}
}

// Local converts screen pixels to board pixels.
func (l boardLayout) Local(x, y int) geometry.Point {
	return geometry.Point{X: float64(x) - l.X, Y: float64(y) - l.Y}
}
