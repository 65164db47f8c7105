package random

import (
	"math/rand"
	"time"

	"github.com/they4kman/termsweep/game"
)

type Director struct {
	board *game.Board
	rand  *rand.Rand
}

// New returns a director opening cells in an order drawn from source. A nil
// source is seeded from the clock.
func New(source rand.Source) *Director {
	if source == nil {
		source = rand.NewSource(time.Now().UnixNano())
	}
	return &Director{rand: rand.New(source)}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	if director.rand == nil {
		director.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// Act opens one uniformly chosen closed, unflagged cell.
func (director *Director) Act() error {
	candidates := make([]*game.Cell, 0, director.board.NumCells())
	for _, cell := range director.board.Cells() {
		if cell.Openable() {
			candidates = append(candidates, cell)
		}
	}
	if len(candidates) == 0 {
		return game.ErrNoMoves
	}

	cell := candidates[director.rand.Intn(len(candidates))]
	game.Log.WithField("cell", cell).Debug("random director opens")
	_, err := director.board.Open(cell.X(), cell.Y())
	return err
}
