package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/termsweep/util/collections"
)

// reveal opens the closed, unflagged cell at origin. A zero-count cell floods
// outward breadth-first through an explicit queue, so large empty regions
// never deepen the call stack. Cells are only ever moved from closed to
// opened here, which bounds the flood by the number of cells.
func (board *Board) reveal(origin point) error {
	var visitQueue deque.Deque[point]
	queued := make(collections.Set[point])

	enqueue := func(pt point) {
		if queued.Contains(pt) {
			return
		}
		queued.Add(pt)
		visitQueue.PushBack(pt)
	}

	enqueue(origin)
	for visitQueue.Len() > 0 {
		pt := visitQueue.PopFront()
		cell := board.cells[pt.y][pt.x]

		if !cell.Openable() {
			continue
		}
		cell.Open()

		if cell.isMine {
			return &GameOverError{X: pt.x, Y: pt.y}
		}

		if cell.numMines == 0 {
			for _, neighbor := range board.neighborPoints(pt) {
				enqueue(neighbor)
			}
		}
	}

	return nil
}
