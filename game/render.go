package game

import (
	"fmt"
	"io"
	"strings"
)

const clearScreen = "\033[2J\033[1;1H"

// String renders the grid with x indices across the top and y indices down
// the side, framed by rule lines.
func (board *Board) String() string {
	return board.render((*Cell).Glyph)
}

// Show clears the terminal, writes the board to w and returns the number of
// lines written.
func (board *Board) Show(w io.Writer) (int, error) {
	glyph := (*Cell).Glyph
	if board.colorize {
		glyph = (*Cell).StyledGlyph
	}
	out := board.render(glyph)

	if _, err := io.WriteString(w, clearScreen+out); err != nil {
		return 0, err
	}
	return strings.Count(out, "\n"), nil
}

func (board *Board) render(glyph func(*Cell) string) string {
	var b strings.Builder

	rule := "---+" + strings.Repeat("---", board.width) + "\n"

	b.WriteString(" \\x|\n")
	b.WriteString("y \\|")
	for x := 0; x < board.width; x++ {
		if x > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%2d", x)
	}
	b.WriteString("\n")

	b.WriteString(rule)
	for y, row := range board.cells {
		fmt.Fprintf(&b, "%3d|", y)
		for _, cell := range row {
			b.WriteString(glyph(cell))
		}
		b.WriteString("\n")
	}
	b.WriteString(rule)

	return b.String()
}
