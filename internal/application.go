package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/search"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/console"
)

const prompt = "> "

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// RunApp - plays one game on the console, starting at the given position.
func RunApp(logger *slog.Logger, conf *config.Config, start entity.Board) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	factory := &service.PlayerFactory{
		Logger:   logger,
		Output:   os.Stdout,
		Searcher: search.New(search.WithParallel(conf.ParallelSearch), search.WithLogger(logger)),
	}
	presenterOpts := []console.Option{
		console.WithSilent(conf.Silent),
		console.WithColor(!color.NoColor),
	}

	if needsInput(conf) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          prompt,
			EOFPrompt:       "exit",
			InterruptPrompt: "^C",

			FuncFilterInputRune: filterInput,
		})
		if err != nil {
			return fmt.Errorf("could not open console input: %w", err)
		}

		defer func() {
			if err = rl.Close(); err != nil {
				log.Error("could not close console input", "error", err)
			}
		}()

		factory.Input = rl
		presenterOpts = append(presenterOpts, console.WithInput(rl))
	}

	playerX, err := factory.New(conf.PlayerX.Kind, conf.PlayerX.Name)
	if err != nil {
		return fmt.Errorf("could not create player X: %w", err)
	}

	playerO, err := factory.New(conf.PlayerO.Kind, conf.PlayerO.Name)
	if err != nil {
		return fmt.Errorf("could not create player O: %w", err)
	}

	presenter := console.New(logger, os.Stdout, presenterOpts...)
	match := usecase.NewMatch(logger, playerX, playerO, presenter)

	log.Info("Starting match", "x", playerX.Name(), "o", playerO.Name(), "position", start.String())

	outcome, err := match.PlayFrom(ctx, start)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	log.Info("Match finished", "outcome", outcome.String())

	return nil
}

// needsInput reports whether the console must be read: a human is playing, or the
// presenter pauses between moves.
func needsInput(conf *config.Config) bool {
	return !conf.Silent || conf.PlayerX.Kind == service.KindHuman || conf.PlayerO.Kind == service.KindHuman
}
