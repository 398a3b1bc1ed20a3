package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/search"
)

type searcher interface {
	BestMove(board entity.Board) (entity.Move, error)
}

type minimaxPlayer struct {
	name     string
	searcher searcher
}

// NewMinimaxPlayer plays the optimal move found by exhaustive search.
func NewMinimaxPlayer(name string, searcher *search.Searcher) Player {
	return &minimaxPlayer{
		name:     name,
		searcher: searcher,
	}
}

func (that *minimaxPlayer) Name() string {
	return that.name
}

func (that *minimaxPlayer) IsBot() bool {
	return true
}

func (that *minimaxPlayer) NextMove(ctx context.Context, board entity.Board) (entity.Move, error) {
	if err := ctx.Err(); err != nil {
		return entity.Move{}, err
	}

	move, err := that.searcher.BestMove(board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to choose move: %w", err)
	}

	return move, nil
}

type randomPlayer struct {
	name string
	rnd  *rand.Rand
}

// NewRandomPlayer picks a uniformly random legal move. A nil rnd is seeded from the clock.
func NewRandomPlayer(name string, rnd *rand.Rand) Player {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	}

	return &randomPlayer{
		name: name,
		rnd:  rnd,
	}
}

func (that *randomPlayer) Name() string {
	return that.name
}

func (that *randomPlayer) IsBot() bool {
	return true
}

func (that *randomPlayer) NextMove(ctx context.Context, board entity.Board) (entity.Move, error) {
	if err := ctx.Err(); err != nil {
		return entity.Move{}, err
	}

	availableMoves := board.PossibleMoves()
	if len(availableMoves) == 0 {
		return entity.Move{}, apperror.ErrNoLegalMove
	}

	return availableMoves[that.rnd.Intn(len(availableMoves))], nil
}
