package game

import (
	"errors"
	"fmt"
)

var (
	// ErrGameOver is matched by the error Board.Open returns when a mine is opened
	ErrGameOver = errors.New("game over")

	ErrMissingMineCount = errors.New("mine count must be positive")
	ErrMissingPlanter   = errors.New("mine planter is required")
	ErrPatternSize      = errors.New("mine pattern does not match grid size")
	ErrEmptyGrid        = errors.New("grid must not be empty")
	ErrRaggedGrid       = errors.New("grid rows must have equal length")
	ErrInvalidCell      = errors.New("grid cell is nil or already initialized")
)

// GameOverError reports the mine that ended the game. The board remains
// inspectable after it is returned.
type GameOverError struct {
	X, Y int
}

func (e *GameOverError) Error() string {
	return fmt.Sprintf("game over: mine opened at (%d, %d)", e.X, e.Y)
}

func (e *GameOverError) Is(target error) bool {
	return target == ErrGameOver
}

type AssertionError struct {
	message string
}

func (e AssertionError) Error() string {
	return e.message
}
