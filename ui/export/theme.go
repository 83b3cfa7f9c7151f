package export

import (
	"evilboard/ui/gui/gbase/gconf"
	"image/color"
)

type Theme struct {
	Light        color.RGBA
	Dark         color.RGBA
	PremoveLight color.RGBA
	PremoveDark  color.RGBA
	WhitePiece   color.RGBA
	BlackPiece   color.RGBA
	// opacity of a premoved piece drawn over the board
	GhostAlpha float64
}

var DefaultTheme = Theme{
	Light:        color.RGBA{0xf0, 0xd9, 0xb5, 0xff},
	Dark:         color.RGBA{0xb5, 0x88, 0x63, 0xff},
	PremoveLight: color.RGBA{0xbd, 0x28, 0x28, 0xff},
	PremoveDark:  color.RGBA{0xa4, 0x23, 0x23, 0xff},
	WhitePiece:   color.RGBA{0xfa, 0xfa, 0xfa, 0xff},
	BlackPiece:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	GhostAlpha:   0.5,
}

// ThemeFromConfig takes square colors from the config. The config is expected
// to be corrected already; unparsable values keep the defaults.
func ThemeFromConfig(c *gconf.Config) Theme {
	th := DefaultTheme
	for _, p := range []struct {
		dst *color.RGBA
		src string
	}{
		{&th.Light, c.LightSquare},
		{&th.Dark, c.DarkSquare},
		{&th.PremoveLight, c.PremoveLight},
		{&th.PremoveDark, c.PremoveDark},
	} {
		if clr, err := gconf.ParseHexColor(p.src); err == nil {
			*p.dst = clr
		}
	}
	return th
}

// SquareColor picks the fill for a square, premove highlight first.
func (th Theme) SquareColor(light, premove bool) color.RGBA {
	switch {
	case premove && light:
		return th.PremoveLight
	case premove:
		return th.PremoveDark
	case light:
		return th.Light
	default:
		return th.Dark
	}
}
