package gconf

import (
	"evilboard/src/base"
	"evilboard/src/geometry"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), *c)
}

func TestLoadKeepsDefaultsAndCorrects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	data := `{
		"theme": "neon",
		"orientation": "black",
		"board_width": 10,
		"dark_square": "brown",
		"arrow_colors": ["#f00", "zzz", "#00ff0080"],
		"arrow_widths": [0.9, -1]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	def := defaultConfig()
	assert.Equal(t, "light", c.Theme)
	assert.Equal(t, base.BlackOnBottom, c.BoardOrientation())
	assert.Equal(t, def.BoardWidth, c.BoardWidth)
	assert.Equal(t, def.DarkSquare, c.DarkSquare)
	assert.Equal(t, def.LightSquare, c.LightSquare)
	assert.True(t, c.ShowNotation)
	assert.Equal(t, []string{"#f00", "#00ff0080"}, c.ArrowColors)
	assert.Equal(t, def.ArrowWidths, c.ArrowWidths)
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	c := defaultConfig()
	c.Orientation = "black"
	c.ArrowColors = []string{"#112233", "#445566"}
	require.NoError(t, c.SaveTo(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, *got)
}

func TestArrowStyle(t *testing.T) {
	c := defaultConfig()
	st, err := c.ArrowStyle()
	require.NoError(t, err)
	assert.False(t, st.Color.Indexed())
	clr, w, err := st.Stroke(5)
	require.NoError(t, err)
	assert.Equal(t, geometry.DefaultArrowColor, clr)
	assert.Equal(t, geometry.DefaultArrowWidth, w)

	c.ArrowColors = []string{"#ff0000", "#00ff00"}
	c.ArrowWidths = []float64{0.01, 0.02}
	st, err = c.ArrowStyle()
	require.NoError(t, err)
	assert.True(t, st.Color.Indexed())
	assert.True(t, st.Width.Indexed())
	clr, w, err = st.Stroke(1)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0xff, 0, 0xff}, clr)
	assert.Equal(t, 0.02, w)

	c.ArrowColors = []string{"nope"}
	_, err = c.ArrowStyle()
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#f0d9b5", color.RGBA{0xf0, 0xd9, 0xb5, 0xff}, true},
		{"fff", color.RGBA{0xff, 0xff, 0xff, 0xff}, true},
		{"#00000080", color.RGBA{0, 0, 0, 0x80}, true},
		{"#12345", color.RGBA{}, false},
		{"bad", color.RGBA{}, false},
		{"f0d9b5", color.RGBA{}, false},
		{"#gggggg", color.RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
