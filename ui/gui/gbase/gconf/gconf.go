package gconf

import (
	"encoding/json"
	"evilboard/src/base"
	"evilboard/src/geometry"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
)

const ConfigFile = "evilboard.json"

type Config struct {
	Theme        string    `json:"theme"`         // light/dark
	BoardWidth   float64   `json:"board_width"`   // pixels
	Orientation  string    `json:"orientation"`   // white/black
	ShowNotation bool      `json:"show_notation"` //
	LightSquare  string    `json:"light_square"`  // #rrggbb
	DarkSquare   string    `json:"dark_square"`   // #rrggbb
	PremoveLight string    `json:"premove_light"` // #rrggbb
	PremoveDark  string    `json:"premove_dark"`  // #rrggbb
	ArrowColors  []string  `json:"arrow_colors"`  // one for all arrows, or one per arrow
	ArrowWidths  []float64 `json:"arrow_widths"`  // fraction of board width, same rule
	WindowH      int       `json:"window_h"`      //
	WindowW      int       `json:"window_w"`      //
	Debug        bool      `json:"debug"`         // true/false
}

func defaultConfig() Config {
	return Config{
		Theme:        "light",
		BoardWidth:   560,
		Orientation:  "white",
		ShowNotation: true,
		LightSquare:  "#f0d9b5",
		DarkSquare:   "#b58863",
		PremoveLight: "#bd2828",
		PremoveDark:  "#a42323",
		ArrowColors:  []string{"#ffaa00"},
		ArrowWidths:  []float64{geometry.DefaultArrowWidth},
		WindowH:      700,
		WindowW:      900,
		Debug:        false,
	}
}

func NewGUIConfig() (*Config, error) {
	return Load(ConfigFile)
}

// Load reads path; a missing file gives the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		def := defaultConfig()
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	c := defaultConfig()
	if err := json.NewDecoder(conf).Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Save() error {
	return c.SaveTo(ConfigFile)
}

func (c *Config) SaveTo(path string) error {
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, jsonData, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if _, err := base.OrientationFromString(c.Orientation); err != nil {
		c.Orientation = def.Orientation
	}
	if c.BoardWidth < 160 {
		c.BoardWidth = def.BoardWidth
	}
	for _, p := range []struct {
		v   *string
		def string
	}{
		{&c.LightSquare, def.LightSquare},
		{&c.DarkSquare, def.DarkSquare},
		{&c.PremoveLight, def.PremoveLight},
		{&c.PremoveDark, def.PremoveDark},
	} {
		if _, err := ParseHexColor(*p.v); err != nil {
			*p.v = p.def
		}
	}

	colors := c.ArrowColors[:0:0]
	for _, s := range c.ArrowColors {
		if _, err := ParseHexColor(s); err == nil {
			colors = append(colors, s)
		}
	}
	if len(colors) == 0 {
		colors = def.ArrowColors
	}
	c.ArrowColors = colors

	widths := c.ArrowWidths[:0:0]
	for _, w := range c.ArrowWidths {
		if w > 0 && w < 0.5 {
			widths = append(widths, w)
		}
	}
	if len(widths) == 0 {
		widths = def.ArrowWidths
	}
	c.ArrowWidths = widths

	if c.WindowH < 400 || c.WindowW < 400 {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}

func (c *Config) BoardOrientation() base.Orientation {
	o, _ := base.OrientationFromString(c.Orientation)
	return o
}

// ArrowStyle maps a single entry to Uniform and several entries to PerArrow.
func (c *Config) ArrowStyle() (geometry.ArrowStyle, error) {
	st := geometry.DefaultArrowStyle()

	colors := make([]color.RGBA, 0, len(c.ArrowColors))
	for _, s := range c.ArrowColors {
		clr, err := ParseHexColor(s)
		if err != nil {
			return st, err
		}
		colors = append(colors, clr)
	}
	switch len(colors) {
	case 0:
	case 1:
		st.Color = geometry.Uniform(colors[0])
	default:
		st.Color = geometry.PerArrow(colors...)
	}

	switch len(c.ArrowWidths) {
	case 0:
	case 1:
		st.Width = geometry.Uniform(c.ArrowWidths[0])
	default:
		st.Width = geometry.PerArrow(c.ArrowWidths...)
	}
	return st, nil
}

// ParseHexColor reads #rgb, #rrggbb or #rrggbbaa.
func ParseHexColor(s string) (color.RGBA, error) {
	h, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("invalid color %q: missing #", s)
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
