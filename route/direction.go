// Package route implements the edge connectors: the orthogonal
// pattern-table router and the simpler fallback connectors it delegates
// to. All connectors are pure functions appending points to a
// caller-supplied slice.
package route

import (
	"strings"

	"orthoroute/core"
)

// Dirs is a set of compass directions. A single direction describes the
// side of a shape an edge attaches to; DirsAll means unconstrained.
type Dirs uint8

const (
	DirWest Dirs = 1 << iota
	DirNorth
	DirSouth
	DirEast
)

const (
	// DirsNone is the empty set. A resolved endpoint direction must
	// never be DirsNone; see assertDirection.
	DirsNone Dirs = 0

	// DirsAll allows attachment on any side.
	DirsAll = DirWest | DirNorth | DirSouth | DirEast
)

// Has reports whether all directions in o are present in d.
func (d Dirs) Has(o Dirs) bool {
	return d&o == o
}

// Single reports whether d contains exactly one direction.
func (d Dirs) Single() bool {
	return d != 0 && d&(d-1) == 0
}

// Reversed returns the set with every direction replaced by its
// opposite: west and east swap, north and south swap.
func (d Dirs) Reversed() Dirs {
	var r Dirs
	if d&DirWest != 0 {
		r |= DirEast
	}
	if d&DirEast != 0 {
		r |= DirWest
	}
	if d&DirNorth != 0 {
		r |= DirSouth
	}
	if d&DirSouth != 0 {
		r |= DirNorth
	}
	return r
}

// String returns the concatenated direction names, in W/N/S/E order.
func (d Dirs) String() string {
	if d == 0 {
		return "none"
	}
	var b strings.Builder
	if d&DirWest != 0 {
		b.WriteString(core.DirectionWest)
	}
	if d&DirNorth != 0 {
		b.WriteString(core.DirectionNorth)
	}
	if d&DirSouth != 0 {
		b.WriteString(core.DirectionSouth)
	}
	if d&DirEast != 0 {
		b.WriteString(core.DirectionEast)
	}
	return b.String()
}

// rotated returns a single direction turned clockwise by quad quarter
// turns. Used to map a shape's styled port constraint into canvas
// directions when the shape itself is rotated, and to rotate the
// canonical route patterns into the active quadrant.
func (d Dirs) rotated(quad int) Dirs {
	clockwise := [4]Dirs{DirNorth, DirEast, DirSouth, DirWest}
	for i, dir := range clockwise {
		if dir == d {
			return clockwise[(i+quad)%4]
		}
	}
	return d
}

// patternIndex maps a single direction to its row/column index in the
// route-pattern table: west 1, north 2, east 3, south 4.
func (d Dirs) patternIndex() int {
	switch d {
	case DirWest:
		return 1
	case DirNorth:
		return 2
	case DirEast:
		return 3
	case DirSouth:
		return 4
	}
	return 0
}

// PortConstraints resolves the set of sides an edge may attach to on
// terminal. The terminal's own portConstraint style wins over the edge's
// per-endpoint constraint; absent both, def is returned. When the
// terminal styles portConstraintRotation=1, its rotation turns the
// constraint with the shape.
func PortConstraints(terminal *core.CellState, edgeStyle core.Style, isSource bool, def Dirs) Dirs {
	edgeKey := core.KeyTargetPortConstraint
	if isSource {
		edgeKey = core.KeySourcePortConstraint
	}

	var style core.Style
	if terminal != nil {
		style = terminal.Style
	}
	value := style.Str(core.KeyPortConstraint, edgeStyle.Str(edgeKey, ""))
	if value == "" {
		return def
	}

	quad := 0
	if style.Float(core.KeyPortConstraintRotation, 0) == 1 {
		quad = rotationQuad(style.Float(core.KeyRotation, 0))
	}

	var result Dirs
	named := []struct {
		name string
		dir  Dirs
	}{
		{core.DirectionWest, DirWest},
		{core.DirectionNorth, DirNorth},
		{core.DirectionSouth, DirSouth},
		{core.DirectionEast, DirEast},
	}
	for _, n := range named {
		if strings.Contains(value, n.name) {
			result |= n.dir.rotated(quad)
		}
	}
	return result
}

// rotationQuad buckets a rotation angle into quarter turns: within 45
// degrees of upright is 0, then one quadrant per further quarter turn.
func rotationQuad(rotation float64) int {
	switch {
	case rotation > 45 && rotation < 135:
		return 1
	case rotation >= 135 || rotation <= -135:
		return 2
	case rotation < -45:
		return 3
	}
	return 0
}

// assertDirection guards the invariant that constraint resolution always
// produces at least one direction. An empty set here is a logic defect
// in the resolution chain, not a representable routing state.
func assertDirection(d Dirs) {
	if d == DirsNone {
		panic("route: endpoint direction resolved to the empty set")
	}
}
