package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagPosition = "position"
	flagParallel = "parallel"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against a perfect minimax player",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// global flags
	root.PersistentFlags().String(flagConfig, "config.yml", "Path to the config file")
	root.PersistentFlags().String(flagLogLevel, "", "Log level: debug, info, warn or error")

	root.AddCommand(Play())
	root.AddCommand(Best())

	return root
}

// load reads the config and applies the global flags to it.
func load(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, err
	}

	conf, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed(flagLogLevel) {
		if conf.LogLevel, err = cmd.Flags().GetString(flagLogLevel); err != nil {
			return nil, err
		}
	}

	return conf, nil
}

// initLogger writes JSON logs to stderr, keeping stdout for the game.
func initLogger(conf *config.Config) *slog.Logger {
	return newLogger(os.Stderr, conf.LogLevel)
}

func newLogger(w io.Writer, levelName string) *slog.Logger {
	var level slog.Level

	switch levelName {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// position parses the --position flag, or returns the empty board when it is not set.
func position(cmd *cobra.Command) (entity.Board, error) {
	notation, err := cmd.Flags().GetString(flagPosition)
	if err != nil {
		return entity.Board{}, err
	}

	if notation == "" {
		return entity.NewBoard(), nil
	}

	board, err := entity.ParseBoard(notation)
	if err != nil {
		return entity.Board{}, fmt.Errorf("bad --%s: %w", flagPosition, err)
	}

	return board, nil
}
