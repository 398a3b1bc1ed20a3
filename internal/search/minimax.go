// Package search picks tic-tac-toe moves by exhaustive minimax over the game tree.
//
// Positions are scored from the point of view of the player to move at the root:
// Win when that player wins, Loss when the opponent wins, Tie otherwise. Every
// continuation is evaluated; there is no pruning and no heuristic.
//
// When several moves share the best value the one that comes first in row-major
// order wins, i.e. the lowest row and then the lowest column. On the empty board
// every move is a tie, so the search plays (0, 0).
package search

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type Value int8

const (
	Loss Value = -1
	Tie  Value = 0
	Win  Value = 1
)

func (that Value) String() string {
	switch that {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "tie"
	}
}

// Result is the outcome of a search from one position.
type Result struct {
	Move  entity.Move
	Value Value
	Nodes int64
}

type Option func(*Searcher)

// WithParallel evaluates the root moves concurrently. The chosen move does not change.
func WithParallel(parallel bool) Option {
	return func(s *Searcher) {
		s.parallel = parallel
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) {
		s.logger = logger.With("component", "search")
	}
}

// Searcher holds search settings only. It keeps no state between calls and is safe
// for concurrent use.
type Searcher struct {
	parallel bool
	logger   *slog.Logger
}

func New(opts ...Option) *Searcher {
	searcher := &Searcher{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(searcher)
	}

	return searcher
}

// BestMove runs a sequential search with default settings.
func BestMove(board entity.Board) (entity.Move, error) {
	return New().BestMove(board)
}

func (that *Searcher) BestMove(board entity.Board) (entity.Move, error) {
	result, err := that.Search(board)
	if err != nil {
		return entity.Move{}, err
	}

	return result.Move, nil
}

// Search returns the optimal move for board.Next together with its value.
// It fails with ErrNoLegalMove when the game is already over.
func (that *Searcher) Search(board entity.Board) (Result, error) {
	moves := board.PossibleMoves()
	if len(moves) == 0 {
		return Result{}, fmt.Errorf("%w: board %s", apperror.ErrNoLegalMove, board)
	}

	var nodes atomic.Int64
	values := make([]Value, len(moves))
	self := board.Next

	// moves come from PossibleMoves, so ApplyMove cannot fail here or in minimax;
	// its error is passed through unchanged.
	evaluate := func(i int) error {
		child, err := board.ApplyMove(moves[i])
		if err != nil {
			return err
		}

		values[i], err = minimax(child, self, &nodes)
		return err
	}

	if that.parallel {
		var g errgroup.Group
		for i := range moves {
			g.Go(func() error {
				return evaluate(i)
			})
		}

		if err := g.Wait(); err != nil {
			return Result{}, err
		}
	} else {
		for i := range moves {
			if err := evaluate(i); err != nil {
				return Result{}, err
			}
		}
	}

	// strict comparison keeps the earliest move in row-major order on ties
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}

	result := Result{
		Move:  moves[best],
		Value: values[best],
		Nodes: nodes.Load(),
	}

	that.logger.Debug("move selected",
		"board", board.String(),
		"player", self.String(),
		"move", result.Move.String(),
		"value", result.Value.String(),
		"nodes", result.Nodes,
		"parallel", that.parallel,
	)

	return result, nil
}

// Evaluate returns the game-theoretic value of board for the player to move.
func (that *Searcher) Evaluate(board entity.Board) (Value, error) {
	var nodes atomic.Int64

	return minimax(board, board.Next, &nodes)
}

func minimax(board entity.Board, self entity.Mark, nodes *atomic.Int64) (Value, error) {
	nodes.Add(1)

	if outcome, over := board.Outcome(); over {
		return score(outcome, self), nil
	}

	maximizing := board.Next == self

	best := Win
	if maximizing {
		best = Loss
	}

	for _, move := range board.PossibleMoves() {
		child, err := board.ApplyMove(move)
		if err != nil {
			return Tie, err
		}

		value, err := minimax(child, self, nodes)
		if err != nil {
			return Tie, err
		}

		if maximizing && value > best || !maximizing && value < best {
			best = value
		}
	}

	return best, nil
}

func score(outcome entity.Outcome, self entity.Mark) Value {
	switch {
	case outcome == entity.XWins && self == entity.X, outcome == entity.OWins && self == entity.O:
		return Win
	case outcome == entity.Tie:
		return Tie
	default:
		return Loss
	}
}
