package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-minimax/internal"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
)

const (
	flagX      = "x"
	flagO      = "o"
	flagXName  = "x-name"
	flagOName  = "o-name"
	flagSilent = "silent"
)

func Play() *cobra.Command {
	play := &cobra.Command{
		Use:   "play",
		Short: "Play a game on the console",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play runs one game of tic-tac-toe between two players on
			the console. Each side is played by a human, by the minimax
			bot, which never loses, or by a bot choosing at random.

			Humans enter the one-based row and column of their move,
			either at separate prompts or together as "2 3". Unless
			--silent is given, the board is drawn before every move and
			the game waits for enter after each one.

			A game may start from a position given in board notation:
			rows top to bottom separated by "/", with X, O and "." for
			an empty cell, for example "X.O/.X./...".`),
		Example: heredoc.Doc(`
			$ tictactoe play
			$ tictactoe play --x minimax --o random --silent
			$ tictactoe play --x human --o minimax --position "X.O/.X./..."`),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := load(cmd)
			if err != nil {
				return err
			}

			if err = applyPlayFlags(cmd, conf); err != nil {
				return err
			}

			start, err := position(cmd)
			if err != nil {
				return err
			}

			return app.RunApp(initLogger(conf), conf, start)
		},
	}

	play.Flags().String(flagX, "", "Strategy for X: human, minimax or random")
	play.Flags().String(flagO, "", "Strategy for O: human, minimax or random")
	play.Flags().String(flagXName, "", "Display name for X")
	play.Flags().String(flagOName, "", "Display name for O")
	play.Flags().Bool(flagSilent, false, "Do not draw the board or wait between moves")
	play.Flags().Bool(flagParallel, false, "Search the top-level moves of the bot in parallel")
	play.Flags().String(flagPosition, "", "Start from this position instead of the empty board")

	return play
}

// applyPlayFlags overrides the config with the flags given on the command line. Choosing a
// strategy drops the configured name, so a "--o random" game is not announced as "MiniMax".
func applyPlayFlags(cmd *cobra.Command, conf *config.Config) error {
	flags := cmd.Flags()

	sides := []struct {
		player         *config.Player
		kindFlag, name string
	}{
		{&conf.PlayerX, flagX, flagXName},
		{&conf.PlayerO, flagO, flagOName},
	}

	for _, side := range sides {
		if flags.Changed(side.kindFlag) {
			kind, err := flags.GetString(side.kindFlag)
			if err != nil {
				return err
			}
			side.player.Kind, side.player.Name = kind, ""
		}

		if flags.Changed(side.name) {
			name, err := flags.GetString(side.name)
			if err != nil {
				return err
			}
			side.player.Name = name
		}
	}

	if flags.Changed(flagSilent) {
		silent, err := flags.GetBool(flagSilent)
		if err != nil {
			return err
		}
		conf.Silent = silent
	}

	if flags.Changed(flagParallel) {
		parallel, err := flags.GetBool(flagParallel)
		if err != nil {
			return err
		}
		conf.ParallelSearch = parallel
	}

	return nil
}
