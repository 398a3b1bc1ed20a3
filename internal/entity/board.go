package entity

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Size is the length of a board side.
const Size = 3

type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Move is a placement on the board, zero-based.
type Move struct {
	Row int
	Col int
}

// String renders the move with one-based coordinates, the way players enter them.
func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row+1, that.Col+1)
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

type Outcome uint8

const (
	XWins Outcome = iota + 1
	OWins
	Tie
)

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Tie:
		return "tie"
	default:
		return "in progress"
	}
}

var (
	// allMoves lists every cell in row-major order.
	allMoves = func() []Move {
		moves := make([]Move, 0, Size*Size)
		for row := range Size {
			for col := range Size {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
		return moves
	}()

	WinCombos = [8][3]Move{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
)

// Board is a tic-tac-toe position. It is a value: ApplyMove returns a new Board
// and never touches the receiver.
type Board struct {
	Cells [Size][Size]Mark
	Next  Mark
}

func NewBoard() Board {
	return Board{Next: X}
}

func (that Board) At(move Move) Mark {
	return that.Cells[move.Row][move.Col]
}

// PossibleMoves returns the empty cells in row-major order, or nothing once the game is over.
func (that Board) PossibleMoves() []Move {
	if that.IsGameOver() {
		return []Move{}
	}

	return lo.Filter(allMoves, func(move Move, _ int) bool {
		return that.At(move) == Empty
	})
}

func (that Board) ApplyMove(move Move) (Board, error) {
	if that.IsGameOver() {
		return that, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrGameFinished)
	}

	if !move.InBounds() {
		return that, fmt.Errorf("%w: %w: row %d, col %d", apperror.ErrInvalidMove, apperror.ErrInvalidCell, move.Row, move.Col)
	}

	if that.At(move) != Empty {
		return that, fmt.Errorf("%w: %w: %s", apperror.ErrInvalidMove, apperror.ErrCellOccupied, move)
	}

	next := that
	next.Cells[move.Row][move.Col] = that.Next
	next.Next = that.Next.Opponent()

	return next, nil
}

// Winner returns the mark owning a complete line, or Empty.
func (that Board) Winner() Mark {
	for _, combo := range WinCombos {
		if owner := that.lineOwner(combo); owner != Empty {
			return owner
		}
	}

	return Empty
}

func (that Board) IsGameOver() bool {
	if that.Winner() != Empty {
		return true
	}

	// the game will continue until all the squares are full
	return that.Count(Empty) == 0
}

// Outcome reports the result of a finished game. ok is false while the game is in progress.
func (that Board) Outcome() (outcome Outcome, ok bool) {
	switch that.Winner() {
	case X:
		return XWins, true
	case O:
		return OWins, true
	}

	if that.Count(Empty) == 0 {
		return Tie, true
	}

	return 0, false
}

func (that Board) Count(mark Mark) int {
	return lo.CountBy(allMoves, func(move Move) bool {
		return that.At(move) == mark
	})
}

// Reset returns a board equal to NewBoard.
func (that Board) Reset() Board {
	return NewBoard()
}

// String renders the board in the notation accepted by ParseBoard, e.g. "X.O/.X./..O".
func (that Board) String() string {
	var sb strings.Builder

	for row := range Size {
		if row > 0 {
			sb.WriteByte('/')
		}

		for col := range Size {
			switch that.Cells[row][col] {
			case X:
				sb.WriteByte('X')
			case O:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}

func (that Board) lineOwner(combo [3]Move) Mark {
	a, b, c := that.At(combo[0]), that.At(combo[1]), that.At(combo[2])
	if a != Empty && a == b && b == c {
		return a
	}

	return Empty
}
