package src

import (
	"evilboard/src/base"
	"evilboard/src/compose"
	"evilboard/src/geometry"
	"evilboard/src/logic/convert/convfen"
	"evilboard/src/logx"
	"fmt"
)

// BoardBuilder owns the board-wide state: position, annotations, premoves,
// view options and the pointer gesture. Renderers read it through Snapshot.
type BoardBuilder struct {
	position     base.Position
	arrows       []base.Arrow
	premoves     []base.Premove
	orientation  base.Orientation
	width        float64
	arrowStyle   geometry.ArrowStyle
	showNotation bool

	rightClickDown *base.Square

	logger logx.Logger
}

func NewBoardBuilder(logger logx.Logger) *BoardBuilder {
	return &BoardBuilder{
		position:     base.Position{},
		orientation:  base.WhiteOnBottom,
		arrowStyle:   geometry.DefaultArrowStyle(),
		showNotation: true,
		logger:       logger,
	}
}

// ---- Position ----

func (bb *BoardBuilder) CreateFromFEN(fen string) error {
	bb.logger.Debugf("create board by FEN: %v", fen)
	pos, err := convfen.ConvertFENToPosition(fen)
	if err != nil {
		return fmt.Errorf("error parse FEN: %w", err)
	}
	bb.position = pos
	return nil
}

func (bb *BoardBuilder) CreateClassic() {
	bb.logger.Debug("create classic board")
	pos, _ := convfen.ConvertFENToPosition(base.FEN_START_PLACEMENT)
	bb.position = pos
}

func (bb *BoardBuilder) CreateEmpty() {
	bb.logger.Debug("create empty board")
	bb.position = base.Position{}
}

func (bb *BoardBuilder) CurrentPosition() base.Position {
	return bb.position.Clone()
}

func (bb *BoardBuilder) PieceAt(sq base.Square) (base.Piece, bool) {
	p, ok := bb.position[sq]
	return p, ok
}

// FEN returns the piece placement field of the current position.
func (bb *BoardBuilder) FEN() string {
	return convfen.ConvertPositionToFEN(bb.position)
}

// ---- View ----

func (bb *BoardBuilder) Orientation() base.Orientation {
	return bb.orientation
}

func (bb *BoardBuilder) SetOrientation(o base.Orientation) {
	bb.orientation = o
}

func (bb *BoardBuilder) Flip() {
	bb.orientation = bb.orientation.Flip()
	bb.logger.Debugf("board flipped: %v on bottom", bb.orientation)
}

func (bb *BoardBuilder) Width() float64 {
	return bb.width
}

func (bb *BoardBuilder) SetWidth(w float64) error {
	if w <= 0 {
		return fmt.Errorf("%w: %v", base.ErrInvalidWidth, w)
	}
	bb.width = w
	return nil
}

func (bb *BoardBuilder) SetShowNotation(show bool) {
	bb.showNotation = show
}

func (bb *BoardBuilder) ShowNotation() bool {
	return bb.showNotation
}

func (bb *BoardBuilder) SetArrowStyle(st geometry.ArrowStyle) {
	bb.arrowStyle = st
}

// ---- Arrows ----

// ToggleArrow adds from->to, or removes it when it is already drawn.
func (bb *BoardBuilder) ToggleArrow(from, to base.Square) error {
	if err := validSquares(from, to); err != nil {
		return err
	}
	for i, a := range bb.arrows {
		if a.From == from && a.To == to {
			bb.arrows = append(bb.arrows[:i:i], bb.arrows[i+1:]...)
			bb.logger.Debugf("arrow removed: %s%s", from, to)
			return nil
		}
	}
	bb.arrows = append(bb.arrows, base.Arrow{From: from, To: to})
	bb.logger.Debugf("arrow added: %s%s", from, to)
	if st := bb.arrowStyle; (st.Color.Indexed() && len(bb.arrows) > st.Color.Len()) ||
		(st.Width.Indexed() && len(bb.arrows) > st.Width.Len()) {
		bb.logger.Warnf("arrow %d has no style entry, default used", len(bb.arrows)-1)
	}
	return nil
}

func (bb *BoardBuilder) ClearArrows() {
	bb.arrows = nil
}

func (bb *BoardBuilder) Arrows() []base.Arrow {
	return append([]base.Arrow(nil), bb.arrows...)
}

// ---- Premoves ----

func (bb *BoardBuilder) AddPremove(pm base.Premove) error {
	if err := validSquares(pm.Source, pm.Target); err != nil {
		return err
	}
	bb.premoves = append(bb.premoves, pm)
	bb.logger.Infof("premove queued: %v", pm)
	return nil
}

func (bb *BoardBuilder) ClearPremoves() {
	bb.premoves = nil
}

func (bb *BoardBuilder) Premoves() []base.Premove {
	return append([]base.Premove(nil), bb.premoves...)
}

// ---- Pointer gesture ----

func (bb *BoardBuilder) SetRightClickDown(sq base.Square) error {
	if err := validSquares(sq); err != nil {
		return err
	}
	bb.rightClickDown = &sq
	return nil
}

func (bb *BoardBuilder) RightClickDown() (base.Square, bool) {
	if bb.rightClickDown == nil {
		return "", false
	}
	return *bb.rightClickDown, true
}

func (bb *BoardBuilder) ClearCurrentRightClickDown() {
	if bb.rightClickDown != nil {
		bb.logger.Debugf("right click on %s cleared", *bb.rightClickDown)
	}
	bb.rightClickDown = nil
}

// Snapshot copies the state needed for one render.
func (bb *BoardBuilder) Snapshot() compose.Snapshot {
	return compose.Snapshot{
		Position:     bb.position.Clone(),
		Arrows:       bb.Arrows(),
		Premoves:     bb.Premoves(),
		Orientation:  bb.orientation,
		Width:        bb.width,
		ArrowStyle:   bb.arrowStyle,
		ShowNotation: bb.showNotation,
	}
}

func validSquares(sqs ...base.Square) error {
	for _, sq := range sqs {
		if !sq.Valid() {
			return fmt.Errorf("%w: %q", base.ErrInvalidSquare, string(sq))
		}
	}
	return nil
}
