package cmd

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/termsweep/config"
	"github.com/they4kman/termsweep/director/constraint"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/shell"
)

func TestCreateBoard(t *testing.T) {
	t.Run("random", func(t *testing.T) {
		board, err := createBoard(&config.Config{Width: 16, Height: 8, NumMines: 20, Seed: 3, FlagOpened: true})
		require.NoError(t, err)

		assert.Equal(t, 16, board.Width())
		assert.Equal(t, 8, board.Height())
		assert.Equal(t, 20, board.NumMines())
	})

	t.Run("mine map", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "map.yaml")
		require.NoError(t, os.WriteFile(path, []byte("layout: |\n  -x-\n  ---\n"), 0o644))

		board, err := createBoard(&config.Config{MapPath: path})
		require.NoError(t, err)

		assert.Equal(t, 3, board.Width())
		assert.Equal(t, 2, board.Height())
		assert.True(t, board.CellAt(1, 0).IsMine())

		// flags on opened cells are refused when FlagOpened is off
		_, err = board.Open(0, 1)
		require.NoError(t, err)
		board.Flag(0, 1)
		assert.False(t, board.CellAt(0, 1).IsFlagged())
	})

	t.Run("missing map", func(t *testing.T) {
		_, err := createBoard(&config.Config{MapPath: filepath.Join(t.TempDir(), "missing.yaml")})
		assert.Error(t, err)
	})
}

func TestAutoplay(t *testing.T) {
	board, err := game.NewBoardFromPattern("----\n----")
	require.NoError(t, err)

	var out strings.Builder
	outcome, err := autoplay(board, constraint.New(rand.NewSource(1)), &out)
	require.NoError(t, err)

	assert.Equal(t, shell.Won, outcome)
	assert.Contains(t, out.String(), "Director won.")
}

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "map.txt")
	require.NoError(t, os.WriteFile(mapPath, []byte("-x-\n"), 0o644))

	var out strings.Builder
	rootCmd.SetIn(strings.NewReader("o 0 0\no 2 0\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--map", mapPath, "--color=false"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "You win")
}
