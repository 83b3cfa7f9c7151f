package geometry

import (
	"errors"
	"evilboard/src/base"
	"fmt"
	"image/color"
	"strconv"
)

// arrowhead box in stroke-width units, reference point at the middle of its base
const (
	markerLength = 2.0
	markerHalfW  = 1.25
)

// ArrowRenderSpec is everything a renderer needs to draw one arrow.
type ArrowRenderSpec struct {
	Index     int
	Arrow     base.Arrow
	From      Point // center of the source square
	To        Point // center of the target square
	End       Point // line end, pulled back from To
	Direction Point // unit vector From -> To
	Color     color.RGBA
	// pixels
	StrokeWidth float64
	// unique per list position so every head can take its own color
	MarkerID string
	// tip first, then both base corners
	Head [3]Point
}

func MarkerID(index int) string {
	return "arrowhead" + strconv.Itoa(index)
}

// ArrowGeometry computes the line and head of arrow number index.
//
// A zero-length arrow returns ErrDegenerateArrow and an empty spec; callers
// omit it. A style index outside a PerArrow list falls back to the default
// style: the spec is complete and the error wraps ErrStyleIndexOutOfRange.
func ArrowGeometry(from, to base.Square, o base.Orientation, boardWidth float64, style ArrowStyle, index int) (ArrowRenderSpec, error) {
	if boardWidth <= 0 {
		return ArrowRenderSpec{}, base.ErrInvalidWidth
	}
	p0, err := ToPoint(from, o, boardWidth)
	if err != nil {
		return ArrowRenderSpec{}, err
	}
	p1, err := ToPoint(to, o, boardWidth)
	if err != nil {
		return ArrowRenderSpec{}, err
	}

	d := p1.Sub(p0)
	length := d.Len()
	if length == 0 {
		return ArrowRenderSpec{}, fmt.Errorf("%w: %s%s", base.ErrDegenerateArrow, from, to)
	}
	v := d.Scale(1 / length)

	clr, frac, styleErr := style.Stroke(index)
	sw := boardWidth * frac
	end := p1.Sub(v.Scale(SquareSize(boardWidth) * ArrowPullBack))

	return ArrowRenderSpec{
		Index:       index,
		Arrow:       base.Arrow{From: from, To: to},
		From:        p0,
		To:          p1,
		End:         end,
		Direction:   v,
		Color:       clr,
		StrokeWidth: sw,
		MarkerID:    MarkerID(index),
		Head:        arrowHead(end, v, sw),
	}, styleErr
}

func arrowHead(at Point, v Point, sw float64) [3]Point {
	n := v.Perp().Scale(markerHalfW * sw)
	return [3]Point{
		at.Add(v.Scale(markerLength * sw)),
		at.Add(n),
		at.Sub(n),
	}
}

// ArrowErr ties a geometry error to the arrow that produced it.
type ArrowErr struct {
	Index int
	Arrow base.Arrow
	Err   error
}

func (e ArrowErr) Error() string {
	return fmt.Sprintf("arrow %d (%s): %v", e.Index, e.Arrow, e.Err)
}

func (e ArrowErr) Unwrap() error {
	return e.Err
}

// Arrows runs ArrowGeometry over a list. Specs keep list order; omitted arrows
// are reported in errs. Arrows that fell back to the default style are in both.
func Arrows(list []base.Arrow, o base.Orientation, boardWidth float64, style ArrowStyle) ([]ArrowRenderSpec, []ArrowErr) {
	var (
		specs []ArrowRenderSpec
		errs  []ArrowErr
	)
	for i, a := range list {
		spec, err := ArrowGeometry(a.From, a.To, o, boardWidth, style, i)
		if err != nil {
			errs = append(errs, ArrowErr{Index: i, Arrow: a, Err: err})
			if !errors.Is(err, base.ErrStyleIndexOutOfRange) {
				continue
			}
		}
		specs = append(specs, spec)
	}
	return specs, errs
}
