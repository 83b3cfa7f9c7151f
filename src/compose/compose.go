// Package compose lays out one frame of the board: squares with their
// resolved state and the arrow overlay. Renderers draw a Frame and nothing
// else.
package compose

import (
	"errors"
	"evilboard/src/base"
	"evilboard/src/geometry"
	"evilboard/src/logic/squarestate"
	"evilboard/src/logx"
)

// Snapshot is the board-wide state for one render. Compose never mutates it.
type Snapshot struct {
	Position     base.Position
	Arrows       []base.Arrow
	Premoves     []base.Premove
	Orientation  base.Orientation
	Width        float64
	ArrowStyle   geometry.ArrowStyle
	ShowNotation bool
}

type SquareView struct {
	Square base.Square
	Col    int
	Row    int
	Light  bool
	Rect   geometry.Rect
	Center geometry.Point
	State  squarestate.State

	// empty unless notation is shown and the square sits on the edge
	FileLabel string
	RankLabel string
}

type Frame struct {
	// false when there is no usable width yet; draw a placeholder
	Ready      bool
	Width      float64
	SquareSize float64
	// row-major from the top-left cell
	Squares []SquareView
	Arrows  []geometry.ArrowRenderSpec
}

func Compose(snap Snapshot, logger logx.Logger) Frame {
	if snap.Width <= 0 {
		logger.Debugf("compose skipped: %v (%v)", base.ErrInvalidWidth, snap.Width)
		return Frame{}
	}

	f := Frame{
		Ready:      true,
		Width:      snap.Width,
		SquareSize: geometry.SquareSize(snap.Width),
		Squares:    make([]SquareView, 0, 64),
	}

	states := squarestate.ResolveAll(snap.Position, snap.Premoves)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq, err := geometry.SquareAtCell(col, row, snap.Orientation)
			if err != nil {
				logger.Errorf("cell %d,%d: %v", col, row, err)
				continue
			}
			rect, _ := geometry.SquareRect(sq, snap.Orientation, snap.Width)
			view := SquareView{
				Square: sq,
				Col:    col,
				Row:    row,
				Light:  sq.Light(),
				Rect:   rect,
				Center: rect.Center(),
				State:  states[sq],
			}
			if snap.ShowNotation {
				if row == 7 {
					view.FileLabel = string(sq[0])
				}
				if col == 0 {
					view.RankLabel = string(sq[1])
				}
			}
			f.Squares = append(f.Squares, view)
		}
	}

	specs, errs := geometry.Arrows(snap.Arrows, snap.Orientation, snap.Width, snap.ArrowStyle)
	for _, e := range errs {
		switch {
		case errors.Is(e, base.ErrStyleIndexOutOfRange):
			logger.Warnf("arrow style fallback: %v", e)
		case errors.Is(e, base.ErrDegenerateArrow):
			logger.Debugf("arrow omitted: %v", e)
		default:
			logger.Errorf("arrow omitted: %v", e)
		}
	}
	f.Arrows = specs
	return f
}

// At returns the view of sq, if the frame has one.
func (f Frame) At(sq base.Square) (SquareView, bool) {
	for _, v := range f.Squares {
		if v.Square == sq {
			return v, true
		}
	}
	return SquareView{}, false
}
