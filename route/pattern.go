package route

// A step is one abstract move instruction in a route pattern. Patterns
// are written for quadrant 0 (target north-west of source); execution
// rotates each step's direction and boundary side into the active
// quadrant. A step moves the current way-point along one axis:
//
//   - limit none: advance by half the inter-shape separation on the
//     move axis;
//   - limit source/target: advance no further than the named shape's
//     side boundary (its rect grown by the jetty), or, with center set,
//     no further than that shape's connection-point coordinate.
//
// Moves in the limit branch only ever go forward: a boundary already
// behind the way-point leaves it in place.
type step struct {
	dir    Dirs       // move direction, pre-rotation
	limit  limitShape // which shape's boundary clamps the move
	side   sideIndex  // boundary side, pre-rotation
	center bool       // clamp to the shape's connection point instead of a side
}

// limitShape names the shape a step clamps against.
type limitShape uint8

const (
	limitNone limitShape = iota
	limitSource
	limitTarget
)

// sideIndex identifies one rectangle boundary in the limits table. The
// values are one-hot so a quadrant rotation is a left shift with
// wrap-around (see rotateSide).
type sideIndex uint8

const (
	sideNone   sideIndex = 0
	sideLeft   sideIndex = 1
	sideTop    sideIndex = 2
	sideRight  sideIndex = 4
	sideBottom sideIndex = 8
)

// rotateSide turns a boundary side clockwise by quad quarter turns.
func rotateSide(s sideIndex, quad int) sideIndex {
	s <<= quad
	if s > 0xF {
		s >>= 4
	}
	return s
}

// The individual steps the pattern table is composed of.
var (
	// Mid-gap sweeps: advance by half the separation between shapes.
	midWest  = step{dir: DirWest}
	midNorth = step{dir: DirNorth}

	// Clamped moves against a shape boundary.
	sourceLeft   = step{dir: DirWest, limit: limitSource, side: sideLeft}
	sourceTop    = step{dir: DirNorth, limit: limitSource, side: sideTop}
	targetLeft   = step{dir: DirWest, limit: limitTarget, side: sideLeft}
	targetTop    = step{dir: DirNorth, limit: limitTarget, side: sideTop}
	targetRight  = step{dir: DirEast, limit: limitTarget, side: sideRight}
	targetBottom = step{dir: DirSouth, limit: limitTarget, side: sideBottom}

	// Clamped moves toward the target's connection-point coordinate.
	targetCenterW = step{dir: DirWest, limit: limitTarget, center: true}
	targetCenterN = step{dir: DirNorth, limit: limitTarget, center: true}
	targetCenterE = step{dir: DirEast, limit: limitTarget, center: true}
	targetCenterS = step{dir: DirSouth, limit: limitTarget, center: true}
)

// routePatterns is the canonical 4x4 table of route recipes, indexed by
// [sourceIndex-1][targetIndex-1] after quadrant normalization (west 1,
// north 2, east 3, south 4, minus the quadrant, wrapped into 1..4).
// Written for quadrant 0; every entry is non-empty.
var routePatterns = [4][4][]step{
	{
		{midWest, targetBottom, targetLeft, targetCenterN},
		{midWest, sourceTop, midNorth, targetRight, targetTop, targetCenterW},
		{midWest, sourceTop, midNorth, targetCenterS, targetRight, targetCenterN},
		{midWest, targetBottom, targetCenterW, sourceTop, midNorth, targetCenterE, targetBottom},
	},
	{
		{midNorth, sourceLeft, midWest, targetBottom, targetLeft, targetCenterN},
		{midNorth, targetRight, targetTop, targetCenterW},
		{midNorth, targetRight, targetCenterN, sourceLeft, midWest, targetCenterS, targetRight},
		{midNorth, sourceLeft, midWest, targetCenterE, targetBottom},
	},
	{
		{sourceTop, midNorth, sourceLeft, midWest, targetBottom, targetLeft, targetCenterN},
		{targetTop, targetCenterW},
		{sourceTop, targetCenterN, sourceLeft, midWest, targetCenterS, targetRight},
		{sourceTop, midNorth, sourceLeft, midWest, targetBottom, targetCenterW, targetCenterE},
	},
	{
		{targetLeft, targetCenterN},
		{sourceLeft, midWest, sourceTop, midNorth, targetRight, targetTop, targetCenterW},
		{sourceLeft, midWest, sourceTop, midNorth, targetCenterS, targetRight},
		{sourceLeft, targetCenterW, sourceTop, midNorth, targetCenterE, targetBottom},
	},
}

// dirVectors maps a rotated direction index (west 1, north 2, east 3,
// south 4) to its unit move vector.
var dirVectors = [4][2]float64{
	{-1, 0},
	{0, -1},
	{1, 0},
	{0, 1},
}

// quadrantOf classifies the target center's position relative to the
// source center: 0 north-west, 1 north-east, 2 south-east, 3 south-west.
// The dx slot of the boundary (equal centers on x, target above) lands
// in quadrant 2 so the canonical patterns stay applicable.
func quadrantOf(dx, dy float64) int {
	if dx < 0 {
		if dy < 0 {
			return 2
		}
		return 1
	}
	if dy <= 0 {
		if dx == 0 {
			return 2
		}
		return 3
	}
	return 0
}

// patternFor selects the route pattern for the resolved endpoint
// directions in the given quadrant.
func patternFor(sourceDir, targetDir Dirs, quad int) []step {
	sourceIndex := sourceDir.patternIndex() - quad
	targetIndex := targetDir.patternIndex() - quad
	if sourceIndex < 1 {
		sourceIndex += 4
	}
	if targetIndex < 1 {
		targetIndex += 4
	}
	return routePatterns[sourceIndex-1][targetIndex-1]
}
