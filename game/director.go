package game

import "errors"

// ErrNoMoves is returned by Director.Act when no closed, unflagged cell is left.
var ErrNoMoves = errors.New("no moves left")

// Director plays a Board through its public command surface.
type Director interface {
	// Init binds the director to a board
	Init(*Board)

	// Act performs a single step of actions, returning the error of the
	// first Open that failed (game over)
	Act() error
}
