package base

import (
	"errors"
	"fmt"
	"strings"
)

// Forsyth–Edwards Notation, piece placement of the initial position
const FEN_START_PLACEMENT string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

var (
	ErrInvalidSquare        = errors.New("invalid square")
	ErrDegenerateArrow      = errors.New("degenerate arrow")
	ErrStyleIndexOutOfRange = errors.New("style index out of range")
	ErrNoEventSource        = errors.New("no event source")
	ErrInvalidWidth         = errors.New("invalid board width")
)

// ---- Pieces ----

type Piece uint8

const (
	WKing        Piece = 19
	WQueen       Piece = 18
	WRook        Piece = 15
	WBishop      Piece = 14
	WKnight      Piece = 13
	WPawn        Piece = 11
	BKing        Piece = 9
	BQueen       Piece = 8
	BRook        Piece = 5
	BBishop      Piece = 4
	BKnight      Piece = 3
	BPawn        Piece = 1
	EmptyPiece   Piece = 99
	InvalidPiece Piece = 0
)

func PieceIsWhite(p Piece) bool {
	return p >= WPawn && p <= WKing
}

func PieceIsBlack(p Piece) bool {
	return p >= BPawn && p <= BKing
}

// upper-case letter of the piece type, '.' for anything else
func (p Piece) Kind() rune {
	return ConvertUpperRuneFromPiece(p)
}

func (p Piece) String() string {
	switch {
	case PieceIsWhite(p):
		return "w" + string(p.Kind())
	case PieceIsBlack(p):
		return "b" + string(p.Kind())
	default:
		return "-"
	}
}

func ConvertPieceFromRune(p rune) Piece {
	switch p {
	case 'P':
		return WPawn
	case 'R':
		return WRook
	case 'N':
		return WKnight
	case 'B':
		return WBishop
	case 'Q':
		return WQueen
	case 'K':
		return WKing
	case 'p':
		return BPawn
	case 'r':
		return BRook
	case 'n':
		return BKnight
	case 'b':
		return BBishop
	case 'q':
		return BQueen
	case 'k':
		return BKing
	default:
		return InvalidPiece
	}
}

func ConvertRuneFromPiece(p Piece) rune {
	switch p {
	case WPawn:
		return 'P'
	case WKnight:
		return 'N'
	case WBishop:
		return 'B'
	case WRook:
		return 'R'
	case WQueen:
		return 'Q'
	case WKing:
		return 'K'
	case BPawn:
		return 'p'
	case BKnight:
		return 'n'
	case BBishop:
		return 'b'
	case BRook:
		return 'r'
	case BQueen:
		return 'q'
	case BKing:
		return 'k'
	default:
		return '.'
	}
}

func ConvertUpperRuneFromPiece(p Piece) rune {
	r := ConvertRuneFromPiece(p)
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

// ParsePiece accepts "wP", "bK" style descriptors and bare FEN letters.
func ParsePiece(s string) (Piece, error) {
	switch len(s) {
	case 1:
		if p := ConvertPieceFromRune(rune(s[0])); p != InvalidPiece {
			return p, nil
		}
	case 2:
		kind := rune(strings.ToUpper(s[1:])[0])
		switch s[0] {
		case 'w':
			if p := ConvertPieceFromRune(kind); p != InvalidPiece {
				return p, nil
			}
		case 'b':
			if p := ConvertPieceFromRune(kind - 'A' + 'a'); p != InvalidPiece {
				return p, nil
			}
		}
	}
	return InvalidPiece, fmt.Errorf("invalid piece %q", s)
}

// ---- Squares ----

// Square is an algebraic label, "a1".."h8".
type Square string

func ParseSquare(s string) (Square, error) {
	sq := Square(s)
	if !sq.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return sq, nil
}

func (s Square) Valid() bool {
	return len(s) == 2 && s[0] >= 'a' && s[0] <= 'h' && s[1] >= '1' && s[1] <= '8'
}

// FileRank returns file (a=0..h=7) and rank (1=0..8=7) indexes.
func (s Square) FileRank() (int, int, error) {
	if !s.Valid() {
		return -1, -1, fmt.Errorf("%w: %q", ErrInvalidSquare, string(s))
	}
	return int(s[0] - 'a'), int(s[1] - '1'), nil
}

// Light reports the color of the square on a real board (a1 is dark).
func (s Square) Light() bool {
	f, r, err := s.FileRank()
	if err != nil {
		return false
	}
	return (f+r)%2 == 1
}

func SquareAt(file, rank int) (Square, error) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return "", fmt.Errorf("%w: file %d rank %d", ErrInvalidSquare, file, rank)
	}
	return Square([]byte{byte('a' + file), byte('1' + rank)}), nil
}

// AllSquares lists a1, b1 .. h8.
func AllSquares() []Square {
	out := make([]Square, 0, 64)
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			out = append(out, Square([]byte{byte('a' + file), byte('1' + rank)}))
		}
	}
	return out
}

// ---- Orientation ----

type Orientation uint8

const (
	WhiteOnBottom Orientation = iota
	BlackOnBottom
)

func (o Orientation) String() string {
	switch o {
	case WhiteOnBottom:
		return "white"
	case BlackOnBottom:
		return "black"
	default:
	}
	return "invalid"
}

func (o Orientation) Flip() Orientation {
	if o == BlackOnBottom {
		return WhiteOnBottom
	}
	return BlackOnBottom
}

func OrientationFromString(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "white", "w", "":
		return WhiteOnBottom, nil
	case "black", "b":
		return BlackOnBottom, nil
	default:
	}
	return WhiteOnBottom, fmt.Errorf("invalid orientation %q", s)
}

// ---- Board data ----

// Position maps squares to the pieces standing on them. Empty squares are absent.
type Position map[Square]Piece

func (p Position) Clone() Position {
	out := make(Position, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

type Arrow struct {
	From Square
	To   Square
}

func (a Arrow) String() string {
	return string(a.From) + string(a.To)
}

// ParseArrow reads "e2e4".
func ParseArrow(s string) (Arrow, error) {
	if len(s) != 4 {
		return Arrow{}, fmt.Errorf("%w: arrow %q", ErrInvalidSquare, s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Arrow{}, err
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Arrow{}, err
	}
	return Arrow{From: from, To: to}, nil
}

type Premove struct {
	Source Square
	Target Square
	Piece  Piece
}

func (pm Premove) String() string {
	return fmt.Sprintf("%s %s%s", pm.Piece, pm.Source, pm.Target)
}

// ParsePremove reads "e2e4" and attaches the given piece.
func ParsePremove(s string, piece Piece) (Premove, error) {
	a, err := ParseArrow(s)
	if err != nil {
		return Premove{}, err
	}
	return Premove{Source: a.From, Target: a.To, Piece: piece}, nil
}
