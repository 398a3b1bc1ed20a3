package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

// New returns a context bounded by maxWaitDuration and a JSON logger, like the application uses.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Lines is a scripted line reader. Once the lines run out it returns io.EOF.
type Lines struct {
	lines   []string
	Prompts []string
}

func NewLines(lines ...string) *Lines {
	return &Lines{lines: lines}
}

func (that *Lines) Readline() (string, error) {
	if len(that.lines) == 0 {
		return "", io.EOF
	}

	line := that.lines[0]
	that.lines = that.lines[1:]

	return line, nil
}

func (that *Lines) SetPrompt(prompt string) {
	that.Prompts = append(that.Prompts, prompt)
}

// Remaining reports how many scripted lines were not consumed.
func (that *Lines) Remaining() int {
	return len(that.lines)
}
