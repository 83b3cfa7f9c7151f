package convfen

import (
	"errors"
	"evilboard/src/base"
	"fmt"
	"strconv"
	"strings"
)

// keyword accepted in place of a FEN string
const StartKeyword = "start"

func ConvertPositionToFEN(pos base.Position) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq, _ := base.SquareAt(file, rank)
			pc, ok := pos[sq]
			if !ok || pc == base.EmptyPiece || pc == base.InvalidPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteRune(base.ConvertRuneFromPiece(pc))
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
	return b.String()
}

// ConvertFENToPosition reads the piece placement of a FEN. Only the first
// field is used; side to move, castling and clocks are ignored.
func ConvertFENToPosition(fen string) (base.Position, error) {
	fen = strings.TrimSpace(fen)
	if fen == StartKeyword {
		fen = base.FEN_START_PLACEMENT
	}
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, errors.New("empty FEN")
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("must be 8 rows, but there are %d", len(ranks))
	}

	pos := base.Position{}
	for r := 0; r < 8; r++ {
		row := ranks[r]
		count := 0
		for _, ch := range row {
			if count == 8 {
				return nil, fmt.Errorf("row %d overflow", r+1)
			}
			if ch >= '1' && ch <= '8' {
				empty := int(ch - '0')
				if empty+count > 8 {
					return nil, fmt.Errorf("row %d overflow: %d + %d squares", r+1, count, empty)
				}
				count += empty
				continue
			}
			pc := base.ConvertPieceFromRune(ch)
			if pc == base.InvalidPiece {
				return nil, fmt.Errorf("error convert piece %q", ch)
			}
			sq, _ := base.SquareAt(count, 7-r)
			pos[sq] = pc
			count++
		}
		if count != 8 {
			return nil, fmt.Errorf("must be 8 fields in row[%d], but there are %d", r+1, count)
		}
	}
	return pos, nil
}
