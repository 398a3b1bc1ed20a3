package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/search"
)

func Best() *cobra.Command {
	best := &cobra.Command{
		Use:   "best",
		Short: "Print the minimax move for a position",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`best searches the whole game tree below the given position
			and prints the move the minimax bot would play, the value of
			the position for the side to move and the number of nodes
			visited.

			Among equally good moves the one with the lowest row, then the
			lowest column, is chosen.`),
		Example: heredoc.Doc(`
			$ tictactoe best --position "XX./OO./..."`),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := load(cmd)
			if err != nil {
				return err
			}

			board, err := position(cmd)
			if err != nil {
				return err
			}

			parallel := conf.ParallelSearch
			if cmd.Flags().Changed(flagParallel) {
				if parallel, err = cmd.Flags().GetBool(flagParallel); err != nil {
					return err
				}
			}

			searcher := search.New(search.WithParallel(parallel), search.WithLogger(initLogger(conf)))

			result, err := searcher.Search(board)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s to move: play %s, value %s, %d nodes searched\n",
				board.Next, result.Move, result.Value, result.Nodes)

			return err
		},
	}

	best.Flags().String(flagPosition, "", "Position in board notation, e.g. \"X.O/.X./...\"")
	best.Flags().Bool(flagParallel, false, "Search the top-level moves in parallel")

	return best
}
