package cli

import (
	"evilboard/src/base"
	"evilboard/src/compose"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI-code
const (
	reset     = "\033[0m"
	lightBg   = "\033[47m"
	darkBg    = "\033[100m"
	premoveBg = "\033[41m"
	whiteF    = "\033[97m"
	blackF    = "\033[30m"
	dimF      = "\033[90m"
)

type DrawFunc func(w io.Writer, f compose.Frame)

// Piece -> unicode glyph
func pieceGlyph(p base.Piece) string {
	switch p {
	case base.WKing:
		return "♔"
	case base.WQueen:
		return "♕"
	case base.WRook:
		return "♖"
	case base.WBishop:
		return "♗"
	case base.WKnight:
		return "♘"
	case base.WPawn:
		return "♙"
	case base.BKing:
		return "♚"
	case base.BQueen:
		return "♛"
	case base.BRook:
		return "♜"
	case base.BBishop:
		return "♝"
	case base.BKnight:
		return "♞"
	case base.BPawn:
		return "♟"
	default:
		return " "
	}
}

// DrawerFor picks colored output for terminals and plain text otherwise.
func DrawerFor(f *os.File) DrawFunc {
	if term.IsTerminal(int(f.Fd())) {
		EnableANSI(f)
		return PrintFrame
	}
	return PrintFramePlain
}

// PrintFrame draws the board in screen orientation with ANSI colors. A
// premoved piece is shown dimmed when its square has no committed piece.
func PrintFrame(w io.Writer, f compose.Frame) {
	if !f.Ready {
		fmt.Fprintln(w, "(no board)")
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "   "+fileHeader(f, "  "))
	for _, v := range f.Squares {
		if v.Col == 0 {
			fmt.Fprintf(w, "%c ", v.Square[1])
		}
		st := v.State

		bg := darkBg
		if v.Light {
			bg = lightBg
		}
		if st.IsPremoveEndpoint {
			bg = premoveBg
		}

		g, fg := " ", dimF
		switch {
		case st.HasCommittedPiece:
			g = pieceGlyph(st.Piece)
			fg = blackF
			if base.PieceIsWhite(st.Piece) && !v.Light {
				fg = whiteF
			}
		case st.IsPremoveTarget:
			g = pieceGlyph(st.PremoveTarget.Piece)
		}

		fmt.Fprintf(w, "%s%s %s %s", bg, fg, g, reset)
		if v.Col == 7 {
			fmt.Fprintf(w, " %c\n", v.Square[1])
		}
	}
	fmt.Fprintln(w, "   "+fileHeader(f, "  "))
	printOverlay(w, f)
}

// PrintFramePlain is PrintFrame without escape codes: '.' empty, '*' premove
// endpoint, lower-case letter for a premove ghost.
func PrintFramePlain(w io.Writer, f compose.Frame) {
	if !f.Ready {
		fmt.Fprintln(w, "(no board)")
		return
	}
	fmt.Fprintln(w, "  "+fileHeader(f, " "))
	var row strings.Builder
	for _, v := range f.Squares {
		if v.Col == 0 {
			row.Reset()
			row.WriteByte(v.Square[1])
			row.WriteByte(' ')
		}
		st := v.State
		c := '.'
		switch {
		case st.HasCommittedPiece:
			c = base.ConvertRuneFromPiece(st.Piece)
		case st.IsPremoveTarget:
			c = ghostRune(st.PremoveTarget.Piece)
		case st.IsPremoveEndpoint:
			c = '*'
		}
		row.WriteRune(c)
		row.WriteByte(' ')
		if v.Col == 7 {
			row.WriteByte(v.Square[1])
			fmt.Fprintln(w, row.String())
		}
	}
	fmt.Fprintln(w, "  "+fileHeader(f, " "))
	printOverlay(w, f)
}

func ghostRune(p base.Piece) rune {
	r := base.ConvertUpperRuneFromPiece(p)
	if r < 'A' || r > 'Z' {
		return '?'
	}
	return r - 'A' + 'a'
}

func fileHeader(f compose.Frame, sep string) string {
	files := make([]string, 0, 8)
	for _, v := range f.Squares[:8] {
		files = append(files, string(v.Square[0]))
	}
	return strings.Join(files, sep)
}

func printOverlay(w io.Writer, f compose.Frame) {
	if len(f.Arrows) == 0 {
		return
	}
	names := make([]string, 0, len(f.Arrows))
	for _, a := range f.Arrows {
		names = append(names, fmt.Sprintf("%s->%s", a.Arrow.From, a.Arrow.To))
	}
	fmt.Fprintf(w, "Arrows: %s\n", strings.Join(names, " "))
}
