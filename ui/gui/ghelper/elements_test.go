package ghelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLine(t *testing.T) {
	var sl StatusLine
	assert.False(t, sl.Visible())
	assert.Zero(t, sl.Alpha())

	sl.Show("saved", 4)
	assert.True(t, sl.Visible())
	assert.Equal(t, 1.0, sl.Alpha())

	sl.Tick(3.5)
	assert.True(t, sl.Visible())
	assert.InDelta(t, 0.5, sl.Alpha(), 1e-9)

	sl.Tick(1)
	assert.False(t, sl.Visible())
	assert.Empty(t, sl.Text)
	sl.Tick(1)
	assert.Zero(t, sl.Alpha())
}

func TestPointInRect(t *testing.T) {
	assert.True(t, PointInRect(10, 10, 10, 10, 5, 5))
	assert.False(t, PointInRect(15, 10, 10, 10, 5, 5))
}
