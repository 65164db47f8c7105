package game

import (
	"fmt"

	"github.com/gookit/color"
)

type Cell struct {
	x, y int

	numMines   int
	hasCounted bool

	isMine, isOpened, isFlagged bool
}

var numberStyles = map[int]color.Style{
	1: {color.FgBlue, color.OpBold},
	2: {color.FgGreen, color.OpBold},
	3: {color.FgRed, color.OpBold},
	4: {color.FgMagenta, color.OpBold},
	5: {color.FgYellow, color.OpBold},
	6: {color.FgCyan, color.OpBold},
	7: {color.FgBlack, color.OpBold},
	8: {color.FgGray, color.OpBold},
}

// NewCell returns an empty cell: no mine, closed, unflagged, count unset.
// A cell only gets a position and a neighbor count once a Board owns it.
func NewCell() *Cell {
	return &Cell{}
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) X() int {
	return cell.x
}

func (cell *Cell) Y() int {
	return cell.y
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsOpened() bool {
	return cell.isOpened
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

// Resolved reports whether the cell no longer stands between the player and
// a win: it is either opened or a mine. Flags play no part.
func (cell *Cell) Resolved() bool {
	return cell.isOpened || cell.isMine
}

func (cell *Cell) Openable() bool {
	return !cell.isOpened && !cell.isFlagged
}

// NumMines returns the neighbor-mine count and whether it has been derived.
func (cell *Cell) NumMines() (int, bool) {
	return cell.numMines, cell.hasCounted
}

func (cell *Cell) PlantMine() *Cell {
	cell.isMine = true
	return cell
}

func (cell *Cell) Open() *Cell {
	cell.isOpened = true
	return cell
}

func (cell *Cell) ToggleFlag() *Cell {
	cell.isFlagged = !cell.isFlagged
	return cell
}

// panics [AssertionError]
func (cell *Cell) setNumMines(numMines int) {
	if cell.hasCounted {
		panic(AssertionError{fmt.Sprintf("neighbor count of %v already set", cell)})
	}
	cell.numMines = numMines
	cell.hasCounted = true
}

// Glyph renders the cell's state. Panics with [AssertionError] for an opened
// non-mine cell whose neighbor count was never derived.
func (cell *Cell) Glyph() string {
	switch {
	case cell.isOpened:
		if cell.isMine {
			return GlyphMine
		}
		n := cell.mustNumMines()
		if n == 0 {
			return GlyphBlank
		}
		return digitGlyph(n)
	case cell.isFlagged:
		return GlyphFlag
	default:
		return GlyphClosed
	}
}

// StyledGlyph is Glyph with opened digits coloured per count.
func (cell *Cell) StyledGlyph() string {
	glyph := cell.Glyph()
	if !cell.isOpened || cell.isMine {
		return glyph
	}
	if style, ok := numberStyles[cell.numMines]; ok {
		return style.Sprint(glyph)
	}
	return glyph
}

func (cell *Cell) mustNumMines() int {
	if !cell.hasCounted {
		panic(AssertionError{fmt.Sprintf("neighbor count of %v was never derived", cell)})
	}
	return cell.numMines
}

func digitGlyph(n int) string {
	return string(rune(fullWidthZero+n)) + " "
}
