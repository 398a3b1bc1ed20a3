package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

func mustParse(t *testing.T, notation string) Board {
	t.Helper()

	board, err := ParseBoard(notation)
	require.NoError(t, err)

	return board
}

// reachable walks every position reachable from the empty board by legal play.
func reachable(t *testing.T) []Board {
	t.Helper()

	seen := map[Board]bool{}
	var walk func(board Board)
	walk = func(board Board) {
		if seen[board] {
			return
		}
		seen[board] = true

		for _, move := range board.PossibleMoves() {
			next, err := board.ApplyMove(move)
			require.NoError(t, err)
			walk(next)
		}
	}
	walk(NewBoard())

	boards := make([]Board, 0, len(seen))
	for board := range seen {
		boards = append(boards, board)
	}

	return boards
}

func TestNewBoard(t *testing.T) {
	// When: creating a new board
	board := NewBoard()

	// Then: every cell is empty and X moves first
	expected := Board{Next: X}
	require.Equal(t, expected, board)
	assert.False(t, board.IsGameOver())
	assert.Equal(t, Empty, board.Winner())
	assert.Len(t, board.PossibleMoves(), 9)
}

func TestBoard_ApplyMove(t *testing.T) {
	t.Run("Successful move", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: X plays the center
		next, err := board.ApplyMove(Move{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the mark is written and the turn passes to O
		expected := NewBoard()
		expected.Cells[1][1] = X
		expected.Next = O
		require.Equal(t, expected, next)

		// And: the original board is untouched
		require.Equal(t, NewBoard(), board)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where X holds the corner
		board := mustParse(t, "X../.../...")

		// When: O tries to play the same cell
		next, err := board.ApplyMove(Move{Row: 0, Col: 0})

		// Then: the move is rejected as invalid because the cell is occupied
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// And: neither board changed
		assert.Equal(t, board, next)
		assert.Equal(t, mustParse(t, "X../.../..."), board)
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		board := NewBoard()

		for _, move := range []Move{{Row: 3, Col: 0}, {Row: 0, Col: 3}, {Row: -1, Col: 0}, {Row: 0, Col: -1}} {
			// When: a move outside the grid is applied
			_, err := board.ApplyMove(move)

			// Then: ErrInvalidCell is returned
			require.ErrorIs(t, err, apperror.ErrInvalidMove)
			assert.ErrorIs(t, err, apperror.ErrInvalidCell)
		}
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: a board where X has already won
		board := mustParse(t, "XXX/OO./...")

		// When: O tries to keep playing
		_, err := board.ApplyMove(Move{Row: 1, Col: 2})

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Move after tie", func(t *testing.T) {
		// Given: a full board with no winner
		board := mustParse(t, "XOX/XOO/OXX")

		// When: anyone tries to move
		_, err := board.ApplyMove(Move{Row: 0, Col: 0})

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestBoard_Winner(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		winner   Mark
		outcome  Outcome
		over     bool
	}{
		{name: "X wins top row", notation: "XXX/OO./...", winner: X, outcome: XWins, over: true},
		{name: "X wins left column", notation: "XO./XO./X..", winner: X, outcome: XWins, over: true},
		{name: "O wins main diagonal", notation: "OXX/XO./..O", winner: O, outcome: OWins, over: true},
		{name: "O wins anti diagonal", notation: "XXO/XO./O..", winner: O, outcome: OWins, over: true},
		{name: "X wins middle column", notation: "OX./.X./OX.", winner: X, outcome: XWins, over: true},
		{name: "X wins on last cell", notation: "XOX/OXO/OXX", winner: X, outcome: XWins, over: true},
		{name: "Tie", notation: "XOX/XOO/OXX", winner: Empty, outcome: Tie, over: true},
		{name: "Ongoing", notation: "XO./.X./..O", winner: Empty, over: false},
		{name: "Empty", notation: ".../.../...", winner: Empty, over: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a parsed position
			board := mustParse(t, tt.notation)

			// When: checking the result
			outcome, over := board.Outcome()

			// Then: winner, terminal status and outcome agree
			assert.Equal(t, tt.winner, board.Winner())
			assert.Equal(t, tt.over, board.IsGameOver())
			assert.Equal(t, tt.over, over)
			assert.Equal(t, tt.outcome, outcome)
		})
	}
}

func TestBoard_PossibleMoves(t *testing.T) {
	t.Run("Row-major order of empty cells", func(t *testing.T) {
		board := mustParse(t, "X.O/.X./O..")

		expected := []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}
		assert.Equal(t, expected, board.PossibleMoves())
	})

	t.Run("Nothing once won even with empty cells", func(t *testing.T) {
		board := mustParse(t, "XXX/OO./...")

		assert.Empty(t, board.PossibleMoves())
	})
}

func TestBoard_ReachablePositions(t *testing.T) {
	boards := reachable(t)

	// 5478 legal positions exist in tic-tac-toe
	require.Len(t, boards, 5478)

	for _, board := range boards {
		moves := board.PossibleMoves()

		// possible moves are empty cells only, and none exist iff the game is over
		for _, move := range moves {
			require.Equal(t, Empty, board.At(move), board.String())
		}
		require.Equal(t, board.IsGameOver(), len(moves) == 0, board.String())

		// X moves first and players alternate
		diff := board.Count(X) - board.Count(O)
		require.Contains(t, []int{0, 1}, diff, board.String())

		if diff == 0 {
			require.Equal(t, X, board.Next, board.String())
		} else {
			require.Equal(t, O, board.Next, board.String())
		}

		// a failing move never changes the board
		before := board
		if _, err := board.ApplyMove(Move{Row: Size, Col: 0}); err == nil {
			t.Fatalf("out of bounds move accepted on %s", board)
		}
		require.Equal(t, before, board)
	}
}

func TestBoard_Reset(t *testing.T) {
	// Given: a board after a few moves
	board := NewBoard()
	for _, move := range []Move{{1, 1}, {0, 0}, {2, 2}} {
		var err error
		board, err = board.ApplyMove(move)
		require.NoError(t, err)
	}

	// When: the board is reset
	reset := board.Reset()

	// Then: it equals a fresh board
	assert.Equal(t, NewBoard(), reset)
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, O, X.Opponent())
	assert.Equal(t, X, O.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}

func TestMove_String(t *testing.T) {
	assert.Equal(t, "(1, 3)", Move{Row: 0, Col: 2}.String())
}
