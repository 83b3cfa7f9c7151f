package geometry

import (
	"evilboard/src/base"
	"fmt"
)

// SquareSize is the side of one square for a board of the given width.
func SquareSize(boardWidth float64) float64 {
	return boardWidth / 8
}

// Cell returns the screen grid cell of sq: col 0 is the left edge, row 0 the top.
func Cell(sq base.Square, o base.Orientation) (int, int, error) {
	f, r, err := sq.FileRank()
	if err != nil {
		return -1, -1, err
	}
	if o == base.BlackOnBottom {
		return 7 - f, r, nil
	}
	return f, 7 - r, nil
}

// SquareAtCell is the inverse of Cell.
func SquareAtCell(col, row int, o base.Orientation) (base.Square, error) {
	if col < 0 || col > 7 || row < 0 || row > 7 {
		return "", fmt.Errorf("%w: cell %d,%d", base.ErrInvalidSquare, col, row)
	}
	if o == base.BlackOnBottom {
		return base.SquareAt(7-col, row)
	}
	return base.SquareAt(col, 7-row)
}

// ToPoint returns the center of sq in board pixels.
func ToPoint(sq base.Square, o base.Orientation, boardWidth float64) (Point, error) {
	col, row, err := Cell(sq, o)
	if err != nil {
		return Point{}, err
	}
	s := SquareSize(boardWidth)
	return Point{
		X: float64(col)*s + s/2,
		Y: float64(row)*s + s/2,
	}, nil
}

// SquareRect returns the pixel area covered by sq.
func SquareRect(sq base.Square, o base.Orientation, boardWidth float64) (Rect, error) {
	col, row, err := Cell(sq, o)
	if err != nil {
		return Rect{}, err
	}
	s := SquareSize(boardWidth)
	return Rect{X: float64(col) * s, Y: float64(row) * s, W: s, H: s}, nil
}

// SquareAtPoint finds the square under a board-relative pixel. Points outside
// the board fail with ErrInvalidSquare.
func SquareAtPoint(p Point, o base.Orientation, boardWidth float64) (base.Square, error) {
	if boardWidth <= 0 {
		return "", base.ErrInvalidWidth
	}
	if p.X < 0 || p.Y < 0 || p.X >= boardWidth || p.Y >= boardWidth {
		return "", fmt.Errorf("%w: point %.1f,%.1f off board", base.ErrInvalidSquare, p.X, p.Y)
	}
	s := SquareSize(boardWidth)
	return SquareAtCell(int(p.X/s), int(p.Y/s), o)
}
