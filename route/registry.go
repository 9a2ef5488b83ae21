package route

import "orthoroute/core"

// Connector computes the bend points for an edge between two terminal
// shapes. Either terminal may be nil when the corresponding end is
// pinned to a fixed point in e.AbsolutePoints. Points are appended to
// out and the extended slice returned; the terminal anchor points
// themselves are never part of the result.
type Connector func(e *core.EdgeState, source, target *core.CellState, hints []core.Point, out []core.Point) []core.Point

// Style names accepted by Lookup.
const (
	StyleOrthogonal     = "orthogonalEdgeStyle"
	StyleSegment        = "segmentEdgeStyle"
	StyleElbow          = "elbowEdgeStyle"
	StyleSideToSide     = "sideToSideEdgeStyle"
	StyleTopToBottom    = "topToBottomEdgeStyle"
	StyleEntityRelation = "entityRelationEdgeStyle"
	StyleLoop           = "loopEdgeStyle"
)

var connectors = map[string]Connector{
	StyleOrthogonal:     Orthogonal,
	StyleSegment:        Segment,
	StyleElbow:          Elbow,
	StyleSideToSide:     SideToSide,
	StyleTopToBottom:    TopToBottom,
	StyleEntityRelation: EntityRelation,
	StyleLoop:           Loop,
}

// Lookup returns the connector registered under name, or nil for
// unknown names and the empty string. A nil connector means the edge
// is drawn as a straight line.
func Lookup(name string) Connector {
	if name == "" || name == core.ValueNone {
		return nil
	}
	return connectors[name]
}

// For resolves the connector for an edge from its style, preferring
// Loop for self-edges that carry no explicit style.
func For(e *core.EdgeState, source, target *core.CellState) Connector {
	name := e.Style.Str(core.KeyEdgeStyle, "")
	if name == "" && source != nil && source == target {
		return Loop
	}
	return Lookup(name)
}

// Styles lists the registered style names in a stable order, for
// callers that cycle through them.
func Styles() []string {
	return []string{
		StyleOrthogonal,
		StyleSegment,
		StyleElbow,
		StyleSideToSide,
		StyleTopToBottom,
		StyleEntityRelation,
		StyleLoop,
	}
}
