package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// MinePlanter decides which of the given cells contain mines.
type MinePlanter interface {
	PlantTo(cells []*Cell)
}

// sizedPlanter is implemented by planters that only fit a grid of one size.
type sizedPlanter interface {
	MinePlanter
	Len() int
}

type RandomPlanter struct {
	count int
	rand  *rand.Rand
}

// NewRandomPlanter returns a planter sampling count cells on each PlantTo.
// A nil source is seeded from the clock.
func NewRandomPlanter(count int, source rand.Source) (*RandomPlanter, error) {
	if count <= 0 {
		return nil, fmt.Errorf("random planter with count %d: %w", count, ErrMissingMineCount)
	}
	if source == nil {
		source = rand.NewSource(time.Now().UnixNano())
	}
	return &RandomPlanter{
		count: count,
		rand:  rand.New(source),
	}, nil
}

func (planter *RandomPlanter) Count() int {
	return planter.count
}

// PlantTo plants min(count, len(cells)) mines into distinct cells.
func (planter *RandomPlanter) PlantTo(cells []*Cell) {
	numMines := min(planter.count, len(cells))
	for _, idx := range planter.rand.Perm(len(cells))[:numMines] {
		cells[idx].PlantMine()
	}
}

type PresetPlanter struct {
	pattern []rune
	marker  rune
}

func NewPresetPlanter(pattern string) *PresetPlanter {
	return NewPresetPlanterWithMarker(pattern, DefaultMineMarker)
}

// NewPresetPlanterWithMarker reads pattern row-major, one rune per cell, with
// line breaks ignored.
func NewPresetPlanterWithMarker(pattern string, marker rune) *PresetPlanter {
	pattern = strings.NewReplacer("\r", "", "\n", "").Replace(pattern)
	return &PresetPlanter{
		pattern: []rune(pattern),
		marker:  marker,
	}
}

func (planter *PresetPlanter) Len() int {
	return len(planter.pattern)
}

func (planter *PresetPlanter) PlantTo(cells []*Cell) {
	for i, c := range planter.pattern {
		if i >= len(cells) {
			return
		}
		if c == planter.marker {
			cells[i].PlantMine()
		}
	}
}
