package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	header    = "    1   2   3\n"
	separator = "   ---+---+---\n"
)

type palette map[entity.Mark]*color.Color

func newPalette(colored bool) palette {
	marks := palette{
		entity.X:     color.New(color.FgRed, color.Bold),
		entity.O:     color.New(color.FgCyan, color.Bold),
		entity.Empty: color.New(color.Reset),
	}

	for _, c := range marks {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return marks
}

// renderBoard draws the grid with one-based row and column labels, the same numbers
// human players type.
func renderBoard(board entity.Board, marks palette) string {
	var sb strings.Builder

	sb.WriteString(header)
	for row := range entity.Size {
		if row > 0 {
			sb.WriteString(separator)
		}

		cells := make([]string, 0, entity.Size)
		for col := range entity.Size {
			mark := board.Cells[row][col]
			cells = append(cells, marks[mark].Sprint(mark.String()))
		}

		fmt.Fprintf(&sb, "%d   %s\n", row+1, strings.Join(cells, " | "))
	}

	return sb.String()
}
