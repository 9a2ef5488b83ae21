// Package canvas provides a rune-matrix canvas for rendering shapes and
// routed edge paths as box-drawing characters. The demo viewer draws
// into it every frame and the visual tests compare its String output.
package canvas

import (
	"errors"
	"strings"
)

var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid canvas size")
)

// Grid is a fixed-size matrix of character cells.
//
// The origin is top-left, x grows rightward, y downward, all coordinates
// in character cells. Grid is not safe for concurrent writes.
type Grid struct {
	cells  [][]rune
	width  int
	height int
}

// NewGrid creates a cleared grid. Returns nil for non-positive sizes.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		return nil
	}
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &Grid{cells: cells, width: width, height: height}
}

// Size returns the grid dimensions.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Get returns the rune at (x, y), or a space when out of bounds.
func (g *Grid) Get(x, y int) rune {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return ' '
	}
	return g.cells[y][x]
}

// Set places a rune, merging line characters that cross each other.
func (g *Grid) Set(x, y int, char rune) error {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return ErrOutOfBounds
	}
	g.cells[y][x] = mergeRunes(g.cells[y][x], char)
	return nil
}

// Clear resets every cell to a space.
func (g *Grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = ' '
		}
	}
}

// String renders the grid as newline-separated rows.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// mergeRunes resolves what happens when a line rune lands on an
// occupied cell. Crossing lines become a junction; everything else is
// last-writer-wins.
func mergeRunes(existing, incoming rune) rune {
	if existing == ' ' || existing == incoming {
		return incoming
	}
	switch {
	case existing == '─' && incoming == '│',
		existing == '│' && incoming == '─':
		return '┼'
	case existing == '┼' && (incoming == '─' || incoming == '│'):
		return '┼'
	}
	return incoming
}
