// Package squarestate derives the transient look of each square from the
// committed position and the queue of pending premoves.
package squarestate

import "evilboard/src/base"

// State is recomputed on every render and never stored.
type State struct {
	Square            base.Square
	Piece             base.Piece // committed piece, EmptyPiece when none
	HasCommittedPiece bool

	// first premove in queue order that lands here; later ones on the same
	// square are not surfaced
	PremoveTarget   base.Premove
	IsPremoveTarget bool

	// some premove starts or ends here (highlight)
	IsPremoveEndpoint bool
}

// Resolve reports the committed piece and premove state of sq. A square can
// carry both a committed piece and a premove ghost; both are set.
func Resolve(sq base.Square, position base.Position, premoves []base.Premove) State {
	st := State{Square: sq, Piece: base.EmptyPiece}

	if p, ok := position[sq]; ok && p != base.EmptyPiece && p != base.InvalidPiece {
		st.Piece = p
		st.HasCommittedPiece = true
	}

	for _, pm := range premoves {
		if pm.Source == sq || pm.Target == sq {
			st.IsPremoveEndpoint = true
		}
		if !st.IsPremoveTarget && pm.Target == sq {
			st.PremoveTarget = pm
			st.IsPremoveTarget = true
		}
		if st.IsPremoveTarget && st.IsPremoveEndpoint {
			break
		}
	}
	return st
}

// ResolveAll resolves every square of the board.
func ResolveAll(position base.Position, premoves []base.Premove) map[base.Square]State {
	out := make(map[base.Square]State, 64)
	for _, sq := range base.AllSquares() {
		out[sq] = Resolve(sq, position, premoves)
	}
	return out
}
