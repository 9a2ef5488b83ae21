package core

import "strconv"

// Style keys understood by the routing engine.
const (
	// KeyEdgeStyle selects the connector in the route registry.
	KeyEdgeStyle = "edgeStyle"

	// KeyJettySize sets the stand-off distance for both endpoints.
	// KeySourceJettySize and KeyTargetJettySize override it per endpoint.
	// The value "auto" derives the size from the arrowhead marker.
	KeyJettySize       = "jettySize"
	KeySourceJettySize = "sourceJettySize"
	KeyTargetJettySize = "targetJettySize"

	// KeySegment is the stub length used by the entity-relation and
	// loop connectors.
	KeySegment = "segment"

	// KeyElbow forces the elbow connector's orientation.
	KeyElbow = "elbow"

	// KeyDirection sets the loop connector's exit direction.
	KeyDirection = "direction"

	// KeyRotation is the shape rotation in degrees.
	KeyRotation = "rotation"

	// Arrowhead presence and size, consulted for "auto" jetty sizing.
	KeyStartArrow = "startArrow"
	KeyEndArrow   = "endArrow"
	KeyStartSize  = "startSize"
	KeyEndSize    = "endSize"

	// Port constraints restrict which side(s) of a shape an edge may
	// attach to. The value is a concatenation of direction names.
	KeyPortConstraint         = "portConstraint"
	KeySourcePortConstraint   = "sourcePortConstraint"
	KeyTargetPortConstraint   = "targetPortConstraint"
	KeyPortConstraintRotation = "portConstraintRotation"

	// Fractional routing-center offsets, -0.5 to 0.5.
	KeyRoutingCenterX = "routingCenterX"
	KeyRoutingCenterY = "routingCenterY"
)

// Style values.
const (
	ValueAuto = "auto"
	ValueNone = "none"

	DirectionNorth = "north"
	DirectionSouth = "south"
	DirectionEast  = "east"
	DirectionWest  = "west"

	ElbowVertical   = "vertical"
	ElbowHorizontal = "horizontal"
)

// Default sizes, in unscaled model units.
const (
	// DefaultMarkerSize is the arrowhead size assumed when a marker is
	// present but no explicit size is styled.
	DefaultMarkerSize = 6

	// EntitySegment is the default stub length of the entity-relation
	// connector.
	EntitySegment = 30

	// LoopSegment is the default segment length of the loop connector.
	LoopSegment = 10
)

// Style is a string-keyed property bag describing how an edge or shape
// is drawn. Lookups never fail: absent or malformed values fall back to
// the default supplied at the call site.
type Style map[string]string

// Str returns the string value for key, or def when absent.
func (s Style) Str(key, def string) string {
	if s == nil {
		return def
	}
	if v, ok := s[key]; ok {
		return v
	}
	return def
}

// Float returns the numeric value for key. Absent or non-numeric values
// yield def.
func (s Style) Float(key string, def float64) float64 {
	if s == nil {
		return def
	}
	v, ok := s[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// Has reports whether key is present.
func (s Style) Has(key string) bool {
	_, ok := s[key]
	return ok
}
