package gdraw

import (
	"errors"
	"evilboard/src/base"
	"evilboard/src/compose"
	"evilboard/src/geometry"
	"evilboard/src/tracker"
	"evilboard/ui/export"
	"evilboard/ui/gui/gbase"
	"evilboard/ui/gui/gctx"
	"evilboard/ui/gui/ghelper"
	"evilboard/ui/gui/ghelper/gclipboard"
	"evilboard/ui/gui/ghelper/gdialog"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// GUIBoardDrawer implements Scene: one board with its annotation overlay.
type GUIBoardDrawer struct {
	layout boardLayout

	// left drag, queued as a premove on release
	dragging  bool
	dragFrom  base.Square
	dragPiece base.Piece

	// clears the right-click gesture on releases outside the board
	outside *tracker.Tracker

	frameImg  *ebiten.Image
	frameSize float64

	status   ghelper.StatusLine
	lastTick time.Time
}

func NewGUIBoardDrawer(ctx *gctx.GUIBoardContext) (*GUIBoardDrawer, error) {
	bd := &GUIBoardDrawer{lastTick: time.Now()}
	bd.recalcLayout(ctx)

	bd.outside = tracker.New(ctx.Events, bd.region, ctx.Builder.ClearCurrentRightClickDown)
	if err := bd.outside.Activate(); err != nil {
		return nil, fmt.Errorf("error attach outside tracker: %w", err)
	}
	return bd, nil
}

func (bd *GUIBoardDrawer) region() (geometry.Rect, bool) {
	return bd.layout.Rect(), bd.layout.Size > 0
}

func (bd *GUIBoardDrawer) recalcLayout(ctx *gctx.GUIBoardContext) {
	bd.layout = computeLayout(ctx.Config.WindowW, ctx.Config.WindowH, ctx.Config.BoardWidth)
	if bd.layout.Size <= 0 {
		return
	}
	if bd.layout.Size != ctx.Builder.Width() {
		if err := ctx.Builder.SetWidth(bd.layout.Size); err != nil {
			ctx.Logx.Errorf("error set board width: %v", err)
		}
	}
	if err := ctx.AssetsWorker.Resize(int(geometry.SquareSize(bd.layout.Size))); err != nil {
		ctx.Logx.Errorf("error resize assets: %v", err)
	}
}

// squareAt maps a cursor position to a square, false off the board.
func (bd *GUIBoardDrawer) squareAt(ctx *gctx.GUIBoardContext, x, y int) (base.Square, bool) {
	if bd.layout.Size <= 0 {
		return "", false
	}
	sq, err := geometry.SquareAtPoint(bd.layout.Local(x, y), ctx.Builder.Orientation(), bd.layout.Size)
	if err != nil {
		return "", false
	}
	return sq, true
}

func (bd *GUIBoardDrawer) Close() {
	bd.outside.Deactivate()
}

// Update
func (bd *GUIBoardDrawer) Update(ctx *gctx.GUIBoardContext) (SceneType, error) {
	now := time.Now()
	bd.status.Tick(now.Sub(bd.lastTick).Seconds())
	bd.lastTick = now

	bd.recalcLayout(ctx)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return SceneNotChanged, gbase.ErrExit
	}
	bd.handleKeys(ctx)

	mx, my := ebiten.CursorPosition()

	// ---- right button: arrows ----
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if sq, ok := bd.squareAt(ctx, mx, my); ok {
			_ = ctx.Builder.SetRightClickDown(sq)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		if sq, ok := bd.squareAt(ctx, mx, my); ok {
			if down, ok := ctx.Builder.RightClickDown(); ok && down != sq {
				if err := ctx.Builder.ToggleArrow(down, sq); err != nil {
					ctx.Logx.Errorf("error toggle arrow: %v", err)
				}
			}
			ctx.Builder.ClearCurrentRightClickDown()
		}
		ctx.Events.Dispatch(tracker.ReleaseEvent{X: float64(mx), Y: float64(my), Button: tracker.MouseButtonRight})
	}

	// ---- left button: premoves ----
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if sq, ok := bd.squareAt(ctx, mx, my); ok {
			if p, ok := ctx.Builder.PieceAt(sq); ok {
				bd.dragging = true
				bd.dragFrom = sq
				bd.dragPiece = p
			}
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if sq, ok := bd.squareAt(ctx, mx, my); ok && bd.dragging && sq != bd.dragFrom {
			pm := base.Premove{Source: bd.dragFrom, Target: sq, Piece: bd.dragPiece}
			if err := ctx.Builder.AddPremove(pm); err != nil {
				ctx.Logx.Errorf("error premove: %v", err)
			}
		}
		bd.dragging = false
		ctx.Events.Dispatch(tracker.ReleaseEvent{X: float64(mx), Y: float64(my), Button: tracker.MouseButtonLeft})
	}

	return SceneNotChanged, nil
}

func (bd *GUIBoardDrawer) handleKeys(ctx *gctx.GUIBoardContext) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		ctx.Builder.Flip()
		bd.status.Show(fmt.Sprintf("%v on bottom", ctx.Builder.Orientation()), gbase.StatusTTL)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		ctx.Builder.ClearArrows()
		ctx.Builder.ClearPremoves()
		bd.status.Show("annotations cleared", gbase.StatusTTL)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		ctx.Builder.SetShowNotation(!ctx.Builder.ShowNotation())
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		bd.savePNG(ctx)
	case inpututil.IsKeyJustPressed(ebiten.KeyY):
		if err := gclipboard.WriteAll(ctx.Builder.FEN()); err != nil {
			ctx.Logx.Errorf("error copy FEN: %v", err)
			bd.status.Show("clipboard unavailable", gbase.StatusTTL)
			return
		}
		bd.status.Show("FEN copied", gbase.StatusTTL)
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		fen, err := gclipboard.ReadAll()
		if err != nil {
			ctx.Logx.Errorf("error paste FEN: %v", err)
			bd.status.Show("clipboard unavailable", gbase.StatusTTL)
			return
		}
		if err := ctx.Builder.CreateFromFEN(fen); err != nil {
			ctx.Logx.Warnf("clipboard is not a FEN: %v", err)
			bd.status.Show("clipboard is not a FEN", gbase.StatusTTL)
			return
		}
		ctx.Builder.ClearPremoves()
		bd.status.Show("position pasted", gbase.StatusTTL)
	}
}

func (bd *GUIBoardDrawer) savePNG(ctx *gctx.GUIBoardContext) {
	path, err := gdialog.SavePNG("Save board")
	if errors.Is(err, gdialog.ErrCancelled) {
		return
	}
	if err != nil {
		ctx.Logx.Errorf("error save dialog: %v", err)
		return
	}
	file, err := os.Create(path)
	if err != nil {
		ctx.Logx.Errorf("error create %s: %v", path, err)
		bd.status.Show("save failed", gbase.StatusTTL)
		return
	}
	defer file.Close()

	f := compose.Compose(ctx.Builder.Snapshot(), ctx.Logx)
	if err := export.RenderPNG(file, f, ctx.BoardTheme); err != nil {
		ctx.Logx.Errorf("error render PNG: %v", err)
		bd.status.Show("save failed", gbase.StatusTTL)
		return
	}
	ctx.Logx.Infof("board saved to %s", path)
	bd.status.Show("saved "+path, gbase.StatusTTL)
}

// Draw
func (bd *GUIBoardDrawer) Draw(ctx *gctx.GUIBoardContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	snap := ctx.Builder.Snapshot()
	snap.Width = bd.layout.Size
	f := compose.Compose(snap, ctx.Logx)

	if !f.Ready {
		drawCentered(screen, "...", ctx.AssetsWorker.Status(), ctx.Config.WindowW/2, ctx.Config.WindowH/2, ctx.Theme.Placeholder)
		return
	}

	ox, oy := bd.layout.X, bd.layout.Y
	bd.drawFrame(ctx, screen)

	th := ctx.BoardTheme
	for _, v := range f.Squares {
		ghelper.DrawRect(screen, v.Rect, ox, oy, th.SquareColor(v.Light, v.State.IsPremoveEndpoint))
	}

	for _, v := range f.Squares {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(ox+v.Rect.X, oy+v.Rect.Y)
		if v.State.HasCommittedPiece && !(bd.dragging && v.Square == bd.dragFrom) {
			if img := ctx.AssetsWorker.Piece(v.State.Piece); img != nil {
				screen.DrawImage(img, op)
			}
		}
		if v.State.IsPremoveTarget {
			if img := ctx.AssetsWorker.Ghost(v.State.PremoveTarget.Piece); img != nil {
				screen.DrawImage(img, op)
			}
		}
	}

	if labels := ctx.AssetsWorker.Labels(); labels != nil {
		ascent := labels.Metrics().Ascent.Ceil()
		pad := int(f.SquareSize * 0.06)
		for _, v := range f.Squares {
			c := th.SquareColor(!v.Light, false)
			x, y := int(ox+v.Rect.X), int(oy+v.Rect.Y)
			if v.RankLabel != "" {
				text.Draw(screen, v.RankLabel, labels, x+pad, y+pad+ascent, c)
			}
			if v.FileLabel != "" {
				b := text.BoundString(labels, v.FileLabel)
				text.Draw(screen, v.FileLabel, labels, x+int(v.Rect.W)-pad-b.Dx(), y+int(v.Rect.H)-pad, c)
			}
		}
	}

	for _, a := range f.Arrows {
		ghelper.DrawArrow(screen, a, ox, oy)
	}

	mx, my := ebiten.CursorPosition()
	bd.drawPendingArrow(ctx, screen, snap, mx, my)

	if bd.dragging {
		if img := ctx.AssetsWorker.Piece(bd.dragPiece); img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(mx)-f.SquareSize/2, float64(my)-f.SquareSize/2)
			screen.DrawImage(img, op)
		}
	}

	if bd.status.Visible() {
		drawCentered(screen, bd.status.Text, ctx.AssetsWorker.Status(),
			ctx.Config.WindowW/2, ctx.Config.WindowH-gbase.StatusH/2, fade(ctx.Theme.Text, bd.status.Alpha()))
	}
}

// drawPendingArrow previews the arrow of a right-drag in progress.
func (bd *GUIBoardDrawer) drawPendingArrow(ctx *gctx.GUIBoardContext, screen *ebiten.Image, snap compose.Snapshot, mx, my int) {
	down, ok := ctx.Builder.RightClickDown()
	if !ok {
		return
	}
	sq, ok := bd.squareAt(ctx, mx, my)
	if !ok || sq == down {
		return
	}
	spec, err := geometry.ArrowGeometry(down, sq, snap.Orientation, snap.Width, snap.ArrowStyle, len(snap.Arrows))
	if err != nil && !errors.Is(err, base.ErrStyleIndexOutOfRange) {
		return
	}
	spec.Color = fade(spec.Color, 0.6)
	ghelper.DrawArrow(screen, spec, bd.layout.X, bd.layout.Y)
}

func (bd *GUIBoardDrawer) drawFrame(ctx *gctx.GUIBoardContext, screen *ebiten.Image) {
	const border = 8
	if bd.frameImg == nil || bd.frameSize != bd.layout.Size {
		s := int(bd.layout.Size) + 2*border
		bd.frameImg = ghelper.RenderRoundedRect(s, s, 10, ctx.Theme.Frame, ctx.Theme.FrameStroke, 2)
		bd.frameSize = bd.layout.Size
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(bd.layout.X-border, bd.layout.Y-border)
	screen.DrawImage(bd.frameImg, op)
}
