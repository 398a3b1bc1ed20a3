package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	promptRow    = "Enter row to play on: "
	promptColumn = "Enter column to play on: "

	msgInvalidEntry = "Invalid entry: enter integers between 1 and 3."
	msgInvalidMove  = "Invalid move: ensure the chosen square is empty."
)

var errInvalidEntry = errors.New("invalid entry")

// LineReader is the part of *readline.Instance the console players use.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type humanPlayer struct {
	logger *slog.Logger

	name   string
	input  LineReader
	output io.Writer
}

// NewHumanPlayer asks for one-based row and column until a legal move is entered.
// Both numbers may also be given on the row prompt, e.g. "2 3".
func NewHumanPlayer(logger *slog.Logger, name string, input LineReader, output io.Writer) Player {
	return &humanPlayer{
		logger: logger.With("component", "human", "player", name),
		name:   name,
		input:  input,
		output: output,
	}
}

func (that *humanPlayer) Name() string {
	return that.name
}

func (that *humanPlayer) IsBot() bool {
	return false
}

func (that *humanPlayer) NextMove(ctx context.Context, board entity.Board) (entity.Move, error) {
	log := that.logger.With("method", "NextMove")

	validMoves := board.PossibleMoves()
	if len(validMoves) == 0 {
		return entity.Move{}, apperror.ErrNoLegalMove
	}

	for {
		if err := ctx.Err(); err != nil {
			return entity.Move{}, err
		}

		move, err := that.readMove()
		if errors.Is(err, errInvalidEntry) {
			log.Debug("rejected entry", "error", err)
			that.say(msgInvalidEntry)
			continue
		}

		if err != nil {
			return entity.Move{}, err
		}

		if !lo.Contains(validMoves, move) {
			log.Debug("rejected move", "move", move.String())
			that.say(msgInvalidMove)
			continue
		}

		return move, nil
	}
}

func (that *humanPlayer) readMove() (entity.Move, error) {
	line, err := that.readLine(promptRow)
	if err != nil {
		return entity.Move{}, err
	}

	fields := strings.Fields(line)
	if len(fields) == 1 {
		column, err := that.readLine(promptColumn)
		if err != nil {
			return entity.Move{}, err
		}
		fields = append(fields, strings.Fields(column)...)
	}

	if len(fields) != 2 {
		return entity.Move{}, fmt.Errorf("%w: %q", errInvalidEntry, line)
	}

	row, err := parseIndex(fields[0])
	if err != nil {
		return entity.Move{}, err
	}

	col, err := parseIndex(fields[1])
	if err != nil {
		return entity.Move{}, err
	}

	return entity.Move{Row: row, Col: col}, nil
}

func (that *humanPlayer) readLine(prompt string) (string, error) {
	that.input.SetPrompt(prompt)

	line, err := that.input.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
	}

	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return line, nil
}

func (that *humanPlayer) say(msg string) {
	if _, err := fmt.Fprintln(that.output, msg); err != nil {
		that.logger.Error("failed to write message", "error", err)
	}
}

// parseIndex converts a one-based coordinate to a zero-based index.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > entity.Size {
		return 0, fmt.Errorf("%w: %q", errInvalidEntry, s)
	}

	return n - 1, nil
}
