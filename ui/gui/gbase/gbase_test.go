package gbase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteFromString(t *testing.T) {
	assert.Equal(t, DarkPalette, PaletteFromString("dark"))
	assert.Equal(t, LightPalette, PaletteFromString("light"))
	assert.Equal(t, LightPalette, PaletteFromString("neon"))
	assert.Equal(t, "dark", DarkPalette.String())
	assert.Equal(t, "", Palette{}.String())
}
