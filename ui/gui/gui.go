package gui

import (
	"evilboard/src"
	"evilboard/src/logx"
	"evilboard/ui/export"
	"evilboard/ui/gui/gbase/gconf"
	"evilboard/ui/gui/gctx"
	"evilboard/ui/gui/gdraw"
	"evilboard/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIBoardContext
}

func NewGUI(b *src.BoardBuilder, cfg *gconf.Config, logx logx.Logger) (*GUIProcessing, error) {
	assets, err := ghelper.NewGUIAssetsWorker(export.ThemeFromConfig(cfg))
	if err != nil {
		return nil, err
	}
	ctx := gctx.NewGUIBoardContext(b, assets, cfg, logx)
	scene, err := gdraw.SceneBoard.ToScene(nil, ctx)
	if err != nil {
		return nil, err
	}
	return &GUIProcessing{current: scene, ctx: ctx}, nil
}

func (gp *GUIProcessing) Run() error {
	defer gp.current.Close()
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("EvilBoard")
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	next, err := gp.current.Update(gp.ctx)
	if err != nil {
		return err
	}
	gp.current, err = next.ToScene(gp.current, gp.ctx)
	return err
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		gp.ctx.Config.WindowW, gp.ctx.Config.WindowH = outsideWidth, outsideHeight
	}
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
