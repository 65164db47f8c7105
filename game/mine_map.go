package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v2"
)

// MineMap is a fixed mine layout, one marker rune per cell, one line per row.
type MineMap struct {
	Name   string `yaml:"name,omitempty"`
	Marker string `yaml:"marker,omitempty"`
	Layout string `yaml:"layout"`
}

// LoadMineMap reads either a YAML mapping with a layout key, or a bare
// layout using DefaultMineMarker. Input that is not a YAML mapping is always
// a bare layout, so rows such as "---" or "#x#" are kept as cells.
func LoadMineMap(in []byte) (*MineMap, error) {
	mineMap := MineMap{Layout: string(in)}

	if isYAMLMapping(in) {
		mineMap = MineMap{}
		if err := yaml.Unmarshal(in, &mineMap); err != nil {
			return nil, fmt.Errorf("unable to parse mine map: %w", err)
		}
		if mineMap.Layout == "" {
			return nil, fmt.Errorf("mine map %q has no layout: %w", mineMap.Name, ErrEmptyGrid)
		}
	}

	if _, err := mineMap.marker(); err != nil {
		return nil, err
	}
	if _, _, err := measurePattern(mineMap.Layout); err != nil {
		return nil, fmt.Errorf("mine map %q: %w", mineMap.Name, err)
	}
	return &mineMap, nil
}

func isYAMLMapping(in []byte) bool {
	var document map[interface{}]interface{}
	if err := yaml.Unmarshal(in, &document); err != nil {
		return false
	}
	return len(document) > 0
}

func (mineMap *MineMap) marker() (rune, error) {
	if mineMap.Marker == "" {
		return DefaultMineMarker, nil
	}
	if utf8.RuneCountInString(mineMap.Marker) != 1 {
		return 0, fmt.Errorf("mine map marker %q must be a single character", mineMap.Marker)
	}
	marker, _ := utf8.DecodeRuneInString(mineMap.Marker)
	return marker, nil
}

func (mineMap *MineMap) Serialize() string {
	out, err := yaml.Marshal(mineMap)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func (mineMap *MineMap) CreateBoard(opts ...Option) (*Board, error) {
	marker, err := mineMap.marker()
	if err != nil {
		return nil, err
	}
	width, height, err := measurePattern(mineMap.Layout)
	if err != nil {
		return nil, err
	}

	planter := NewPresetPlanterWithMarker(strings.TrimRight(mineMap.Layout, "\r\n"), marker)
	return NewBoard(width, height, planter, opts...)
}

// MineMap returns the board's mine layout, one DefaultMineMarker per mine.
func (board *Board) MineMap() *MineMap {
	var layout strings.Builder
	for _, row := range board.cells {
		for _, cell := range row {
			if cell.isMine {
				layout.WriteRune(DefaultMineMarker)
			} else {
				layout.WriteRune('-')
			}
		}
		layout.WriteString("\n")
	}
	return &MineMap{Layout: layout.String()}
}
