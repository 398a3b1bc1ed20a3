package entity

import (
	"fmt"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// ParseBoard reads a position written row by row, nine cells in total.
// X and O are marks; '.', '-' and '_' are empty cells. Whitespace and '/' are ignored,
// so "XO./.X./..O" and "XO. .X. ..O" describe the same board.
//
// The mark to move is derived from the mark counts. Positions that cannot be reached
// by legal play are rejected with ErrInvalidBoard.
func ParseBoard(notation string) (Board, error) {
	board := NewBoard()

	cell := 0
	for _, r := range notation {
		if unicode.IsSpace(r) || r == '/' {
			continue
		}

		var mark Mark
		switch unicode.ToUpper(r) {
		case 'X':
			mark = X
		case 'O':
			mark = O
		case '.', '-', '_':
			mark = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q", apperror.ErrInvalidBoard, r)
		}

		if cell >= Size*Size {
			return Board{}, fmt.Errorf("%w: more than %d cells", apperror.ErrInvalidBoard, Size*Size)
		}

		board.Cells[cell/Size][cell%Size] = mark
		cell++
	}

	if cell != Size*Size {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", apperror.ErrInvalidBoard, cell, Size*Size)
	}

	xCount, oCount := board.Count(X), board.Count(O)
	switch xCount - oCount {
	case 0:
		board.Next = X
	case 1:
		board.Next = O
	default:
		return Board{}, fmt.Errorf("%w: %d X and %d O", apperror.ErrInvalidBoard, xCount, oCount)
	}

	if err := board.validateWinner(); err != nil {
		return Board{}, err
	}

	return board, nil
}

// validateWinner rejects boards where play continued after a win.
func (that Board) validateWinner() error {
	var xLines, oLines int
	for _, combo := range WinCombos {
		switch that.lineOwner(combo) {
		case X:
			xLines++
		case O:
			oLines++
		}
	}

	switch {
	case xLines > 0 && oLines > 0:
		return fmt.Errorf("%w: both players have a winning line", apperror.ErrInvalidBoard)
	case xLines > 0 && that.Next != O:
		return fmt.Errorf("%w: O moved after X won", apperror.ErrInvalidBoard)
	case oLines > 0 && that.Next != X:
		return fmt.Errorf("%w: X moved after O won", apperror.ErrInvalidBoard)
	}

	return nil
}
