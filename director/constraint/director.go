package constraint

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/util/collections"
)

// Number of passes combining overlapping observations per Act
const simplifyPasses = 4

// Director deduces safe cells and mines from the opened numbers, and guesses
// the least likely mine when nothing can be deduced.
type Director struct {
	board *game.Board
	rand  *rand.Rand

	fallback *random.Director
}

// Observation states that exactly numMines of cells are mines.
type Observation struct {
	origin   *game.Cell
	numMines int
	cells    collections.Set[*game.Cell]
}

func (observation Observation) String() string {
	cells := observation.cells.Items()
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y() != cells[j].Y() {
			return cells[i].Y() < cells[j].Y()
		}
		return cells[i].X() < cells[j].X()
	})

	var cellsRepr strings.Builder
	for i, cell := range cells {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		fmt.Fprintf(&cellsRepr, "(%d, %d)", cell.X(), cell.Y())
	}

	var originRepr string
	if observation.origin == nil {
		originRepr = "?"
	} else {
		originRepr = fmt.Sprintf("(%d, %d)", observation.origin.X(), observation.origin.Y())
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func New(source rand.Source) *Director {
	if source == nil {
		source = rand.NewSource(time.Now().UnixNano())
	}
	r := rand.New(source)
	return &Director{
		rand:     r,
		fallback: random.New(rand.NewSource(r.Int63())),
	}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	if director.rand == nil {
		director.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if director.fallback == nil {
		director.fallback = random.New(rand.NewSource(director.rand.Int63()))
	}
	director.fallback.Init(board)
}

// Act performs every deliberate action available; failing that, it opens
// the cell least likely to be a mine, and failing that, a random cell.
func (director *Director) Act() error {
	observations := director.observe()
	for i := 0; i < simplifyPasses; i++ {
		var added bool
		observations, added = simplify(observations)
		if !added {
			break
		}
	}

	acted, err := director.actDeliberate(observations)
	if err != nil || acted {
		return err
	}

	acted, err = director.actLowestProbability(observations)
	if err != nil || acted {
		return err
	}

	return director.fallback.Act()
}

func (director *Director) observe() []*Observation {
	var observations []*Observation

	for _, cell := range director.board.Cells() {
		if !cell.IsOpened() || cell.IsMine() {
			continue
		}
		numMines, _ := cell.NumMines()

		observation := &Observation{
			origin:   cell,
			numMines: numMines,
			cells:    make(collections.Set[*game.Cell]),
		}
		for _, neighbor := range director.board.Neighbors(cell.X(), cell.Y()) {
			if neighbor.IsOpened() {
				continue
			}
			if neighbor.IsFlagged() {
				observation.numMines--
			} else {
				observation.cells.Add(neighbor)
			}
		}

		if len(observation.cells) > 0 {
			observations = append(observations, observation)
		}
	}

	return observations
}

// simplify adds, for every observation strictly contained in another, the
// observation of the cells left over.
func simplify(observations []*Observation) ([]*Observation, bool) {
	added := false

	for _, observation := range observations {
		for _, other := range observations {
			if other == observation || len(other.cells) <= len(observation.cells) {
				continue
			}
			if !observation.cells.IsSubsetOf(other.cells) {
				continue
			}

			splitObs := &Observation{
				numMines: other.numMines - observation.numMines,
				cells:    other.cells.Difference(observation.cells),
			}
			if containsObservation(observations, splitObs) {
				continue
			}

			observations = append(observations, splitObs)
			added = true
		}
	}

	return observations, added
}

func containsObservation(observations []*Observation, observation *Observation) bool {
	for _, other := range observations {
		if other.cells.Equal(observation.cells) {
			return true
		}
	}
	return false
}

func (director *Director) actDeliberate(observations []*Observation) (bool, error) {
	acted := false

	for _, observation := range observations {
		switch {
		case observation.numMines == len(observation.cells):
			for cell := range observation.cells {
				if cell.Openable() {
					director.log(observation).WithField("cell", cell).Debug("flag deduced mine")
					director.board.Flag(cell.X(), cell.Y())
					acted = true
				}
			}

		case observation.numMines == 0:
			for cell := range observation.cells {
				if cell.Openable() {
					director.log(observation).WithField("cell", cell).Debug("open deduced safe cell")
					if _, err := director.board.Open(cell.X(), cell.Y()); err != nil {
						return true, err
					}
					acted = true
				}
			}
		}
	}

	return acted, nil
}

func (director *Director) actLowestProbability(observations []*Observation) (bool, error) {
	lowestProbability := math.Inf(1)
	cellProbabilities := make(map[*game.Cell]float64)

	for _, observation := range observations {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			if !cell.Openable() {
				continue
			}
			if past, ok := cellProbabilities[cell]; !ok || probability < past {
				cellProbabilities[cell] = probability
			}
			lowestProbability = math.Min(lowestProbability, probability)
		}
	}

	lowestProbabilityCells := make([]*game.Cell, 0, len(cellProbabilities))
	for cell, probability := range cellProbabilities {
		if probability <= lowestProbability {
			lowestProbabilityCells = append(lowestProbabilityCells, cell)
		}
	}
	if len(lowestProbabilityCells) == 0 {
		return false, nil
	}

	// Map iteration order is random; sort first so a seeded director is repeatable
	sort.Slice(lowestProbabilityCells, func(i, j int) bool {
		a, b := lowestProbabilityCells[i], lowestProbabilityCells[j]
		if a.Y() != b.Y() {
			return a.Y() < b.Y()
		}
		return a.X() < b.X()
	})
	cell := lowestProbabilityCells[director.rand.Intn(len(lowestProbabilityCells))]

	game.Log.WithFields(logrus.Fields{
		"cell":        cell,
		"probability": lowestProbability,
	}).Debug("open least likely mine")
	_, err := director.board.Open(cell.X(), cell.Y())
	return true, err
}

func (director *Director) log(observation *Observation) *logrus.Entry {
	return game.Log.WithField("observation", observation.String())
}
