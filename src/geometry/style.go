package geometry

import (
	"evilboard/src/base"
	"fmt"
	"image/color"
)

const (
	// fraction of a square the line end is pulled back from the target center
	ArrowPullBack = 0.4
	// stroke width as a fraction of the board width
	DefaultArrowWidth = 0.025
)

// rgb(255,170,0)
var DefaultArrowColor = color.RGBA{0xff, 0xaa, 0x00, 0xff}

// Styled holds either one value shared by every arrow or a list aligned with
// the arrow list by index.
type Styled[T any] struct {
	uniform  T
	perArrow []T
	indexed  bool
}

func Uniform[T any](v T) Styled[T] {
	return Styled[T]{uniform: v}
}

func PerArrow[T any](vs ...T) Styled[T] {
	cp := make([]T, len(vs))
	copy(cp, vs)
	return Styled[T]{perArrow: cp, indexed: true}
}

func (s Styled[T]) Indexed() bool {
	return s.indexed
}

// Len is the number of indexed entries, 0 for a uniform value.
func (s Styled[T]) Len() int {
	return len(s.perArrow)
}

// At returns the value for arrow i. An index outside a PerArrow list yields
// def together with ErrStyleIndexOutOfRange.
func (s Styled[T]) At(i int, def T) (T, error) {
	if !s.indexed {
		return s.uniform, nil
	}
	if i < 0 || i >= len(s.perArrow) {
		return def, fmt.Errorf("%w: index %d, %d entries", base.ErrStyleIndexOutOfRange, i, len(s.perArrow))
	}
	return s.perArrow[i], nil
}

// ArrowStyle is the color and relative width of the arrow overlay.
type ArrowStyle struct {
	Color Styled[color.RGBA]
	Width Styled[float64]
}

func DefaultArrowStyle() ArrowStyle {
	return ArrowStyle{
		Color: Uniform(DefaultArrowColor),
		Width: Uniform(float64(DefaultArrowWidth)),
	}
}

// Stroke resolves color and width fraction for arrow i. On error the returned
// values are the defaults for the channel that was out of range.
func (st ArrowStyle) Stroke(i int) (color.RGBA, float64, error) {
	c, cerr := st.Color.At(i, DefaultArrowColor)
	w, werr := st.Width.At(i, DefaultArrowWidth)
	if cerr != nil {
		return c, w, cerr
	}
	return c, w, werr
}
