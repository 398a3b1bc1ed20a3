package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/chzyer/readline"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	spinnerCharSet = 14
	spinnerDelay   = 100 * time.Millisecond

	promptContinue = "(press enter) "
)

// LineReader is the part of *readline.Instance used to wait for enter.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type Option func(*Presenter)

// WithInput makes the presenter wait for enter after announcing each move.
func WithInput(input LineReader) Option {
	return func(p *Presenter) {
		p.input = input
	}
}

func WithColor(colored bool) Option {
	return func(p *Presenter) {
		p.marks = newPalette(colored)
	}
}

// WithSilent suppresses all output.
func WithSilent(silent bool) Option {
	return func(p *Presenter) {
		p.silent = silent
	}
}

// Presenter reports the progress of a match on a terminal.
type Presenter struct {
	logger *slog.Logger

	out    io.Writer
	input  LineReader
	silent bool
	marks  palette
}

func New(logger *slog.Logger, out io.Writer, opts ...Option) *Presenter {
	presenter := &Presenter{
		logger: logger.With("component", "console"),
		out:    out,
		marks:  newPalette(false),
	}

	for _, opt := range opts {
		opt(presenter)
	}

	return presenter
}

func (that *Presenter) Intro(xName, oName string) error {
	if that.silent {
		return nil
	}

	msg := fmt.Sprintf("Beginning a game between %s as X and %s as O!\n", xName, oName)
	if that.input != nil {
		msg = "Press enter at each stage to move on.\n" + msg
	}

	return that.print(msg)
}

// ShowBoard clears the screen and draws the position.
func (that *Presenter) ShowBoard(board entity.Board) error {
	if that.silent {
		return nil
	}

	that.clear()

	return that.print(renderBoard(board, that.marks))
}

// Moved announces a move and waits for enter when an input is attached.
func (that *Presenter) Moved(mark entity.Mark, playerName string, move entity.Move) error {
	if that.silent {
		return nil
	}

	msg := fmt.Sprintf("Player %s, using strategy %s, chose to play at %s.\n", mark, playerName, move)
	if err := that.print(msg); err != nil {
		return err
	}

	return that.pause()
}

// Thinking shows a spinner while a bot searches. The returned func stops it.
func (that *Presenter) Thinking(playerName string) func() {
	file, ok := that.out.(*os.File)
	if that.silent || !ok {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[spinnerCharSet], spinnerDelay,
		spinner.WithWriterFile(file),
		spinner.WithSuffix(" "+playerName+" is thinking"),
	)
	s.Start()

	return s.Stop
}

// Result draws the final position and names the winner.
func (that *Presenter) Result(board entity.Board, outcome entity.Outcome) error {
	if that.silent {
		return nil
	}

	that.clear()

	msg := renderBoard(board, that.marks)
	switch outcome {
	case entity.XWins, entity.OWins:
		msg += fmt.Sprintf("Player %s wins!\n", board.Winner())
	default:
		msg += "It's a tie!\n"
	}

	return that.print(msg)
}

func (that *Presenter) print(msg string) error {
	if _, err := io.WriteString(that.out, msg); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}

	return nil
}

func (that *Presenter) pause() error {
	if that.input == nil {
		return nil
	}

	that.logger.Debug("waiting for enter")
	that.input.SetPrompt(promptContinue)

	_, err := that.input.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
	}

	if err != nil {
		return fmt.Errorf("failed to wait for enter: %w", err)
	}

	return nil
}

// clear runs only in interactive mode, so the output of bot-only matches can be piped.
func (that *Presenter) clear() {
	if that.input == nil {
		return
	}

	readline.ClearScreen(that.out)
}
