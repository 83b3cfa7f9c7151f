package gdraw

import (
	"evilboard/src/geometry"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		want       float64
		size, x, y float64
	}{
		{"fits", 900, 700, 560, 560, 170, 56},
		{"clamped by height", 900, 500, 560, 424, 238, 24},
		{"rounded to eighths", 900, 700, 563, 560, 170, 56},
		{"too small", 40, 40, 560, 0, 20, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := computeLayout(tt.w, tt.h, tt.want)
			assert.Equal(t, tt.size, l.Size)
			assert.Equal(t, tt.x, l.X)
			assert.Equal(t, tt.y, l.Y)
		})
	}
}

func TestLayoutRectAndLocal(t *testing.T) {
	l := boardLayout{X: 100, Y: 50, Size: 400}
	assert.Equal(t, geometry.Rect{X: 100, Y: 50, W: 400, H: 400}, l.Rect())
	assert.Equal(t, geometry.Point{X: 25, Y: 10}, l.Local(125, 60))
	assert.True(t, l.Rect().Contains(499, 449))
	assert.False(t, l.Rect().Contains(500, 450))
}
