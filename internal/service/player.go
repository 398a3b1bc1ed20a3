package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/search"
)

const (
	KindHuman   = "human"
	KindMinimax = "minimax"
	KindRandom  = "random"
)

// Player produces a move for the mark to move on the given board.
type Player interface {
	Name() string
	IsBot() bool
	NextMove(ctx context.Context, board entity.Board) (entity.Move, error)
}

// PlayerFactory builds players by kind. Input and Output are only needed for human players.
type PlayerFactory struct {
	Logger   *slog.Logger
	Input    LineReader
	Output   io.Writer
	Searcher *search.Searcher
	Rand     *rand.Rand
}

func (that *PlayerFactory) New(kind, name string) (Player, error) {
	if name == "" {
		name = kind
	}

	switch kind {
	case KindHuman:
		if that.Input == nil || that.Output == nil {
			return nil, fmt.Errorf("human player %q needs console input and output", name)
		}
		return NewHumanPlayer(that.Logger, name, that.Input, that.Output), nil
	case KindMinimax:
		searcher := that.Searcher
		if searcher == nil {
			searcher = search.New()
		}
		return NewMinimaxPlayer(name, searcher), nil
	case KindRandom:
		return NewRandomPlayer(name, that.Rand), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, kind)
	}
}
