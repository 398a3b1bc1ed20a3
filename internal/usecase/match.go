package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type player interface {
	Name() string
	IsBot() bool
	NextMove(ctx context.Context, board entity.Board) (entity.Move, error)
}

type presenter interface {
	Intro(xName, oName string) error
	ShowBoard(board entity.Board) error
	Moved(mark entity.Mark, playerName string, move entity.Move) error
	Thinking(playerName string) func()
	Result(board entity.Board, outcome entity.Outcome) error
}

// Match plays games between two players. It owns the board for the duration of a game
// and resets it once the game is over.
type Match struct {
	logger *slog.Logger

	playerX   player
	playerO   player
	presenter presenter

	board entity.Board
}

func NewMatch(logger *slog.Logger, playerX, playerO player, presenter presenter) *Match {
	return &Match{
		logger: logger.With("component", "match"),

		playerX:   playerX,
		playerO:   playerO,
		presenter: presenter,

		board: entity.NewBoard(),
	}
}

// Board returns the current position.
func (that *Match) Board() entity.Board {
	return that.board
}

// Play runs one game from the empty board.
func (that *Match) Play(ctx context.Context) (entity.Outcome, error) {
	return that.PlayFrom(ctx, entity.NewBoard())
}

// PlayFrom runs one game starting at the given position.
func (that *Match) PlayFrom(ctx context.Context, board entity.Board) (entity.Outcome, error) {
	log := that.logger.With("method", "PlayFrom", "x", that.playerX.Name(), "o", that.playerO.Name())

	that.board = board
	defer func() {
		that.board = that.board.Reset()
	}()

	if err := that.presenter.Intro(that.playerX.Name(), that.playerO.Name()); err != nil {
		return 0, fmt.Errorf("failed to show intro: %w", err)
	}

	for !that.board.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("match interrupted: %w", err)
		}

		if err := that.presenter.ShowBoard(that.board); err != nil {
			return 0, fmt.Errorf("failed to show board: %w", err)
		}

		if err := that.makeTurn(ctx); err != nil {
			return 0, err
		}
	}

	outcome, _ := that.board.Outcome()
	if err := that.presenter.Result(that.board, outcome); err != nil {
		return 0, fmt.Errorf("failed to show result: %w", err)
	}

	log.Info("game finished", "outcome", outcome.String(), "board", that.board.String())

	return outcome, nil
}

func (that *Match) makeTurn(ctx context.Context) error {
	mark := that.board.Next
	current := that.playerFor(mark)

	move, err := that.nextMove(ctx, current)
	if err != nil {
		return fmt.Errorf("player %s (%s) failed to move: %w", mark, current.Name(), err)
	}

	next, err := that.board.ApplyMove(move)
	if err != nil {
		return fmt.Errorf("player %s (%s) made an illegal move: %w", mark, current.Name(), err)
	}

	that.logger.Debug("move applied", "player", mark.String(), "name", current.Name(), "move", move.String())
	that.board = next

	if err = that.presenter.Moved(mark, current.Name(), move); err != nil {
		return fmt.Errorf("failed to announce move: %w", err)
	}

	return nil
}

func (that *Match) nextMove(ctx context.Context, current player) (entity.Move, error) {
	if current.IsBot() {
		stop := that.presenter.Thinking(current.Name())
		defer stop()
	}

	return current.NextMove(ctx, that.board)
}

func (that *Match) playerFor(mark entity.Mark) player {
	if mark == entity.O {
		return that.playerO
	}

	return that.playerX
}
