package route

import "orthoroute/core"

// Scratch holds the working buffers of one orthogonal routing
// invocation: the way-point buffer the pattern executor writes into,
// the per-shape boundary limits, and the inter-shape separations.
//
// A Scratch is cheap enough to live on the stack; Orthogonal allocates
// one per call. Callers routing many edges may reuse a single Scratch
// through OrthogonalInto, but a Scratch must never be shared between
// concurrently routed edges. Entries past the active route length are
// stale from previous invocations and must be ignored.
type Scratch struct {
	// waypoints is the fixed-capacity way-point buffer. Patterns have
	// at most 7 steps, so at most 8 way-points are ever live.
	waypoints [12]core.Point

	// limits holds, per shape (0 source, 1 target), the jetty-grown
	// boundary coordinates indexed by sideIndex.
	limits [2][9]float64

	// seps holds the clamped-to-zero separations between the shapes,
	// indexed by rotated direction index (1 west .. 4 south).
	seps [5]float64
}
