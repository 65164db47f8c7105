package constraint

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/util/collections"
)

func newDirector(t *testing.T, layout string) (*Director, *game.Board) {
	t.Helper()

	board, err := game.NewBoardFromPattern(layout)
	require.NoError(t, err)

	director := New(rand.NewSource(1))
	director.Init(board)
	return director, board
}

func TestActFlagsDeducedMine(t *testing.T) {
	director, board := newDirector(t, "-x-")

	_, err := board.Open(0, 0)
	require.NoError(t, err)

	require.NoError(t, director.Act())
	assert.True(t, board.CellAt(1, 0).IsFlagged())
	assert.False(t, board.CellAt(2, 0).IsOpened())

	// nothing left to deduce; the only unflagged cell is opened at random
	require.NoError(t, director.Act())
	assert.True(t, board.Finished())
	assert.Equal(t, game.Won, board.State())
}

func TestActOpensDeducedSafeCells(t *testing.T) {
	director, board := newDirector(t, "x--\n---")

	_, err := board.Open(0, 1)
	require.NoError(t, err)
	board.Flag(0, 0)

	require.NoError(t, director.Act())
	assert.True(t, board.CellAt(1, 0).IsOpened())
	assert.True(t, board.CellAt(1, 1).IsOpened())
	assert.False(t, board.CellAt(0, 0).IsOpened())
}

func TestActPlaysToTheEnd(t *testing.T) {
	director, board := newDirector(t, `
x-------
--------
----x---
--------
-------x`[1:])

	for board.State() == game.Ongoing {
		if err := director.Act(); err != nil {
			assert.ErrorIs(t, err, game.ErrGameOver)
			break
		}
	}
	assert.NotEqual(t, game.Ongoing, board.State())
}

func TestSimplify(t *testing.T) {
	board, err := game.NewBoardFromPattern("---")
	require.NoError(t, err)
	a, b := board.CellAt(0, 0), board.CellAt(1, 0)

	observations := []*Observation{
		{origin: board.CellAt(2, 0), numMines: 1, cells: collections.Set[*game.Cell]{a: {}}},
		{origin: board.CellAt(2, 0), numMines: 1, cells: collections.Set[*game.Cell]{a: {}, b: {}}},
	}

	simplified, added := simplify(observations)
	require.True(t, added)
	require.Len(t, simplified, 3)

	split := simplified[2]
	assert.Equal(t, 0, split.numMines)
	assert.True(t, split.cells.Equal(collections.Set[*game.Cell]{b: {}}))
	assert.Equal(t, "Obs[       ?, 0 ε (1, 0)]", split.String())

	_, added = simplify(simplified)
	assert.False(t, added)
}
