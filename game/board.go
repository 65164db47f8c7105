package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Board struct {
	width, height int // in number of cells
	cells         [][]*Cell

	state      BoardState
	flagPolicy FlagPolicy
	colorize   bool

	log logrus.FieldLogger
}

type Option func(*Board)

func WithFlagPolicy(policy FlagPolicy) Option {
	return func(board *Board) {
		board.flagPolicy = policy
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(board *Board) {
		board.log = log
	}
}

// WithColor enables coloured digits in Show.
func WithColor(colorize bool) Option {
	return func(board *Board) {
		board.colorize = colorize
	}
}

// NewBoard allocates a width×height grid, lets planter place the mines and
// derives every cell's neighbor count.
func NewBoard(width, height int, planter MinePlanter, opts ...Option) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("board of %dx%d: %w", width, height, ErrEmptyGrid)
	}
	if planter == nil {
		return nil, ErrMissingPlanter
	}
	if sized, ok := planter.(sizedPlanter); ok && sized.Len() != width*height {
		return nil, fmt.Errorf("pattern of %d cells for %dx%d board: %w",
			sized.Len(), width, height, ErrPatternSize)
	}

	grid := make([][]*Cell, height)
	for y := range grid {
		grid[y] = make([]*Cell, width)
		for x := range grid[y] {
			grid[y][x] = NewCell()
		}
	}

	board := newBoard(grid, opts)
	planter.PlantTo(board.Cells())
	board.deriveNumMines()

	board.log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"mines":  board.NumMines(),
	}).Debug("board created")

	return board, nil
}

func NewRandomBoard(width, height, numMines int, source rand.Source, opts ...Option) (*Board, error) {
	planter, err := NewRandomPlanter(numMines, source)
	if err != nil {
		return nil, err
	}
	return NewBoard(width, height, planter, opts...)
}

// NewBoardFromPattern builds a board from rows of markers, where
// DefaultMineMarker denotes a mine, e.g. "-x-\n---".
func NewBoardFromPattern(pattern string, opts ...Option) (*Board, error) {
	width, height, err := measurePattern(pattern)
	if err != nil {
		return nil, err
	}
	return NewBoard(width, height, NewPresetPlanter(pattern), opts...)
}

// NewBoardFromGrid takes ownership of a pre-built grid of fresh cells, which
// may already carry mines, and derives their neighbor counts.
func NewBoardFromGrid(grid [][]*Cell, opts ...Option) (*Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(grid[0])
	for y, row := range grid {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), width, ErrRaggedGrid)
		}
		for x, cell := range row {
			if cell == nil || cell.hasCounted {
				return nil, fmt.Errorf("cell (%d, %d): %w", x, y, ErrInvalidCell)
			}
		}
	}

	board := newBoard(grid, opts)
	board.deriveNumMines()
	return board, nil
}

func newBoard(grid [][]*Cell, opts []Option) *Board {
	board := &Board{
		width:  len(grid[0]),
		height: len(grid),
		cells:  grid,
		state:  Ongoing,
		log:    Log,
	}
	for _, opt := range opts {
		opt(board)
	}

	for y, row := range grid {
		for x, cell := range row {
			cell.x, cell.y = x, y
		}
	}

	return board
}

func measurePattern(pattern string) (int, int, error) {
	rows := strings.Split(strings.TrimRight(strings.ReplaceAll(pattern, "\r", ""), "\n"), "\n")
	width := len([]rune(rows[0]))
	if width == 0 {
		return 0, 0, ErrEmptyGrid
	}
	for y, row := range rows {
		if n := len([]rune(row)); n != width {
			return 0, 0, fmt.Errorf("row %d has %d cells, want %d: %w", y, n, width, ErrRaggedGrid)
		}
	}
	return width, len(rows), nil
}

func (board *Board) deriveNumMines() {
	for y, row := range board.cells {
		for x, cell := range row {
			numMines := 0
			for _, neighbor := range board.Neighbors(x, y) {
				if neighbor.isMine {
					numMines++
				}
			}
			cell.setNumMines(numMines)
		}
	}
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) NumMines() int {
	total := 0
	for _, cell := range board.Cells() {
		if cell.isMine {
			total++
		}
	}
	return total
}

func (board *Board) NumFlags() int {
	total := 0
	for _, cell := range board.Cells() {
		if cell.isFlagged {
			total++
		}
	}
	return total
}

// CellAt returns nil for coordinates outside the grid.
func (board *Board) CellAt(x, y int) *Cell {
	if x >= 0 && y >= 0 && x < board.width && y < board.height {
		return board.cells[y][x]
	}
	return nil
}

// Cells returns every cell in row-major order.
func (board *Board) Cells() []*Cell {
	cells := make([]*Cell, 0, board.NumCells())
	for _, row := range board.cells {
		cells = append(cells, row...)
	}
	return cells
}

// Neighbors returns the up to 8 in-range cells surrounding (x, y).
func (board *Board) Neighbors(x, y int) []*Cell {
	neighbors := make([]*Cell, 0, len(neighborDirections))
	for _, pt := range board.neighborPoints(point{x, y}) {
		neighbors = append(neighbors, board.cells[pt.y][pt.x])
	}
	return neighbors
}

func (board *Board) neighborPoints(pt point) []point {
	points := make([]point, 0, len(neighborDirections))
	for _, dir := range neighborDirections {
		neighbor := point{pt.x + dir.x, pt.y + dir.y}
		if board.CellAt(neighbor.x, neighbor.y) != nil {
			points = append(points, neighbor)
		}
	}
	return points
}

// Open reveals the cell at (x, y).
//
// Coordinates outside the grid and flagged cells are ignored. Opening an
// already opened cell is a chord: when its flagged neighbors match its count,
// every unflagged neighbor is opened. Opening a zero-count cell cascades
// through its neighbors. Opening a mine returns a *GameOverError, which
// matches ErrGameOver.
func (board *Board) Open(x, y int) (*Cell, error) {
	cell := board.CellAt(x, y)
	if cell == nil || cell.isFlagged {
		return cell, nil
	}

	var err error
	if cell.isOpened {
		err = board.chord(point{x, y})
	} else {
		err = board.reveal(point{x, y})
	}

	if err != nil {
		if errors.Is(err, ErrGameOver) {
			board.lose(err)
		}
		return cell, err
	}

	if board.state == Ongoing && board.Finished() {
		board.win()
	}
	return cell, nil
}

func (board *Board) chord(pt point) error {
	cell := board.cells[pt.y][pt.x]

	numFlagged := 0
	for _, neighbor := range board.Neighbors(pt.x, pt.y) {
		if neighbor.isFlagged {
			numFlagged++
		}
	}
	if numFlagged != cell.numMines {
		return nil
	}

	for _, neighborPt := range board.neighborPoints(pt) {
		// Opened neighbors are skipped so chording never recurses
		if !board.cells[neighborPt.y][neighborPt.x].Openable() {
			continue
		}
		if err := board.reveal(neighborPt); err != nil {
			return err
		}
	}
	return nil
}

// Flag toggles the flag at (x, y). Out-of-range coordinates are ignored, as
// are opened cells under FlagClosedOnly.
func (board *Board) Flag(x, y int) *Cell {
	cell := board.CellAt(x, y)
	if cell == nil {
		return nil
	}
	if cell.isOpened && board.flagPolicy == FlagClosedOnly {
		return cell
	}
	return cell.ToggleFlag()
}

// Finished reports whether every non-mine cell has been opened.
func (board *Board) Finished() bool {
	for _, row := range board.cells {
		for _, cell := range row {
			if !cell.Resolved() {
				return false
			}
		}
	}
	return true
}

func (board *Board) win() {
	board.state = Won
	board.log.WithField("flags", board.NumFlags()).Info("board cleared")
}

func (board *Board) lose(err error) {
	board.state = Lost
	board.log.WithError(err).Info("mine opened")
}
