package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yml")))

	err := root.Execute()

	return out.String(), err
}

func TestBest(t *testing.T) {
	t.Run("Prints the winning move", func(t *testing.T) {
		// When: asking for the best move where X completes the top row
		out, err := run(t, "best", "--position", "XX./OO./...")

		// Then: the one-based move and the value are printed
		require.NoError(t, err)
		assert.Contains(t, out, "X to move: play (1, 3), value win")
	})

	t.Run("Parallel search prints the same move", func(t *testing.T) {
		out, err := run(t, "best", "--position", "X../.OO/.X.", "--parallel")

		require.NoError(t, err)
		assert.Contains(t, out, "X to move: play (2, 1), value tie")
	})

	t.Run("Error on malformed position", func(t *testing.T) {
		_, err := run(t, "best", "--position", "XXX")

		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Error on finished game", func(t *testing.T) {
		_, err := run(t, "best", "--position", "XXX/OO./...")

		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})
}

func TestPlay(t *testing.T) {
	t.Run("Plays a silent game between bots", func(t *testing.T) {
		_, err := run(t, "play", "--x", "minimax", "--o", "random", "--silent")

		require.NoError(t, err)
	})

	t.Run("Error on unknown strategy", func(t *testing.T) {
		_, err := run(t, "play", "--x", "oracle", "--o", "minimax", "--silent")

		require.ErrorIs(t, err, apperror.ErrUnknownPlayer)
	})
}

func TestApplyPlayFlags(t *testing.T) {
	// Given: the default config and a command line choosing two bots
	conf := &config.Config{
		PlayerX: config.Player{Kind: config.DefaultXKind, Name: config.DefaultXName},
		PlayerO: config.Player{Kind: config.DefaultOKind, Name: config.DefaultOName},
	}
	play := Play()
	require.NoError(t, play.ParseFlags([]string{"--x", "random", "--o-name", "Deep Thought", "--parallel"}))

	// When: applying the flags
	require.NoError(t, applyPlayFlags(play, conf))

	// Then: only the given values change
	assert.Equal(t, config.Player{Kind: "random"}, conf.PlayerX)
	assert.Equal(t, config.Player{Kind: config.DefaultOKind, Name: "Deep Thought"}, conf.PlayerO)
	assert.True(t, conf.ParallelSearch)
	assert.False(t, conf.Silent)
}
