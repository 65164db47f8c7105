package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellInitialState(t *testing.T) {
	cell := NewCell()

	assert.False(t, cell.IsMine())
	assert.False(t, cell.IsOpened())
	assert.False(t, cell.IsFlagged())
	assert.False(t, cell.Resolved())
	assert.True(t, cell.Openable())

	_, counted := cell.NumMines()
	assert.False(t, counted)

	assert.Equal(t, GlyphClosed, cell.Glyph())
}

func TestCellPlantMine(t *testing.T) {
	cell := NewCell()
	assert.Same(t, cell, cell.PlantMine())
	assert.Same(t, cell, cell.PlantMine())

	assert.True(t, cell.IsMine())
	assert.False(t, cell.IsOpened())
	assert.False(t, cell.IsFlagged())
	assert.True(t, cell.Resolved())
	assert.Equal(t, GlyphClosed, cell.Glyph())
}

func TestCellOpen(t *testing.T) {
	t.Run("non-mine without derived count panics on display", func(t *testing.T) {
		cell := NewCell()
		assert.Same(t, cell, cell.Open())

		assert.True(t, cell.IsOpened())
		assert.True(t, cell.Resolved())
		assert.False(t, cell.Openable())
		assert.PanicsWithError(t, "neighbor count of Cell(0, 0) was never derived", func() {
			cell.Glyph()
		})
	})

	t.Run("mine", func(t *testing.T) {
		cell := NewCell().PlantMine().Open()

		assert.True(t, cell.IsMine())
		assert.True(t, cell.IsOpened())
		assert.True(t, cell.Resolved())
		assert.Equal(t, GlyphMine, cell.Glyph())
		assert.Equal(t, GlyphMine, cell.StyledGlyph())
	})
}

func TestCellToggleFlag(t *testing.T) {
	cell := NewCell()
	assert.Same(t, cell, cell.ToggleFlag())

	assert.True(t, cell.IsFlagged())
	assert.False(t, cell.IsOpened())
	assert.False(t, cell.IsMine())
	assert.False(t, cell.Resolved())
	assert.False(t, cell.Openable())
	assert.Equal(t, GlyphFlag, cell.Glyph())

	cell.ToggleFlag()
	assert.False(t, cell.IsFlagged())
	assert.True(t, cell.Openable())
	assert.Equal(t, GlyphClosed, cell.Glyph())
}

func TestCellGlyphWithCount(t *testing.T) {
	want := []string{GlyphBlank, "１ ", "２ ", "３ ", "４ ", "５ ", "６ ", "７ ", "８ "}

	for n, glyph := range want {
		cell := NewCell().Open()
		cell.setNumMines(n)

		assert.Equal(t, glyph, cell.Glyph(), "count %d", n)
		assert.Contains(t, cell.StyledGlyph(), glyph, "count %d", n)
	}
}

func TestCellNumMinesIsWriteOnce(t *testing.T) {
	cell := NewCell()
	cell.setNumMines(3)

	numMines, counted := cell.NumMines()
	assert.True(t, counted)
	assert.Equal(t, 3, numMines)

	assert.Panics(t, func() { cell.setNumMines(4) })
	numMines, _ = cell.NumMines()
	assert.Equal(t, 3, numMines)
}
