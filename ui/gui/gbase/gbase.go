package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	BoardMargin  = 24
	StatusH      = 28
	MinBoardSize = 160
	// seconds a status message stays on screen
	StatusTTL = 2.5
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg          color.RGBA
	Frame       color.RGBA
	FrameStroke color.RGBA
	Text        color.RGBA
	Placeholder color.RGBA
	ModalBg     color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:          color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	Frame:       color.RGBA{0xff, 0xff, 0xff, 0xff},
	FrameStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	Text:        color.RGBA{0x22, 0x22, 0x22, 0xff},
	Placeholder: color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
	ModalBg:     color.RGBA{0x00, 0x00, 0x00, 0x88},
}

var DarkPalette = Palette{
	Bg:          color.RGBA{0x12, 0x12, 0x12, 0xff},
	Frame:       color.RGBA{0x20, 0x20, 0x20, 0xff},
	FrameStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	Text:        color.RGBA{0xee, 0xee, 0xee, 0xff},
	Placeholder: color.RGBA{0x44, 0x44, 0x44, 0xff},
	ModalBg:     color.RGBA{0x00, 0x00, 0x00, 0x99},
}
