package gctx

import (
	"evilboard/src"
	"evilboard/src/logx"
	"evilboard/src/tracker"
	"evilboard/ui/export"
	"evilboard/ui/gui/gbase"
	"evilboard/ui/gui/gbase/gconf"
	"evilboard/ui/gui/ghelper"
)

// ---- GUI Context ----

type GUIBoardContext struct {
	Builder      *src.BoardBuilder
	AssetsWorker *ghelper.GUIAssetsWorker
	Config       *gconf.Config
	Theme        gbase.Palette
	BoardTheme   export.Theme
	// pointer releases of the whole window, fed once per Update
	Events *tracker.Dispatcher
	Logx   logx.Logger
}

func NewGUIBoardContext(b *src.BoardBuilder, a *ghelper.GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIBoardContext {
	return &GUIBoardContext{
		Builder:      b,
		AssetsWorker: a,
		Config:       c,
		Theme:        gbase.PaletteFromString(c.Theme),
		BoardTheme:   a.Theme(),
		Events:       tracker.NewDispatcher(),
		Logx:         l,
	}
}
