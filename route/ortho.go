package route

import (
	"math"

	"orthoroute/core"
	"orthoroute/geometry"
)

// Orthogonal routes an edge as a sequence of axis-aligned segments
// leaving the source and entering the target perpendicular to the
// resolved attachment sides. It appends the computed bend points to out
// and returns the extended slice; the true terminal anchors are the
// caller's to add.
//
// The router declines, delegating to Segment, when the endpoints are
// closer than the combined jetty stand-off, when explicit way-point
// hints are present, or when either terminal is itself an edge.
func Orthogonal(e *core.EdgeState, source, target *core.CellState, hints []core.Point, out []core.Point) []core.Point {
	var s Scratch
	return OrthogonalInto(&s, e, source, target, hints, out)
}

// OrthogonalInto is Orthogonal with a caller-owned Scratch, for callers
// that route many edges per frame and want to reuse the buffers. The
// Scratch must not be shared across concurrent invocations.
func OrthogonalInto(s *Scratch, e *core.EdgeState, source, target *core.CellState, hints []core.Point, out []core.Point) []core.Point {
	// Terminal edge-ness comes from the caller's snapshots, before any
	// scaling (scaling preserves the flag).
	sourceEdge := source != nil && source.Edge
	targetEdge := target != nil && target.Edge

	pts := geometry.ScalePoints(e.AbsolutePoints, e.Scale)
	src := geometry.ScaleState(source, e.Scale)
	tgt := geometry.ScaleState(target, e.Scale)

	var p0, pe *core.Point
	if len(pts) > 0 {
		p0 = pts[0]
		pe = pts[len(pts)-1]
	}

	// Nothing to route from or to.
	if (src == nil && p0 == nil) || (tgt == nil && pe == nil) {
		return out
	}

	var geo [2]core.Rect
	if src != nil {
		geo[0] = src.Rect
	} else {
		geo[0] = core.Rect{X: p0.X, Y: p0.Y}
	}
	if tgt != nil {
		geo[1] = tgt.Rect
	} else {
		geo[1] = core.Rect{X: pe.X, Y: pe.Y}
	}

	jetty := [2]float64{
		JettySize(e.Style, true),
		JettySize(e.Style, false),
	}

	// Self-loops need symmetric clearance on both sides of the shape.
	if source != nil && source == target {
		wider := math.Max(jetty[0], jetty[1])
		jetty[0] = wider
		jetty[1] = wider
	}
	totalJetty := jetty[0] + jetty[1]

	tooShort := false
	if p0 != nil && pe != nil {
		dx := pe.X - p0.X
		dy := pe.Y - p0.Y
		tooShort = dx*dx+dy*dy < totalJetty*totalJetty
	}

	if tooShort || len(hints) > 0 || sourceEdge || targetEdge {
		return Segment(e, source, target, hints, out)
	}

	// Resolve constraints, replacing rotated shapes by their axis
	// aligned bounding boxes before any jetty or quadrant work.
	portCons := [2]Dirs{DirsAll, DirsAll}
	if src != nil {
		portCons[0] = PortConstraints(src, e.Style, true, DirsAll)
		if rotation := src.Style.Float(core.KeyRotation, 0); rotation != 0 {
			geo[0] = geometry.RotatedBounds(geo[0], rotation)
		}
	}
	if tgt != nil {
		portCons[1] = PortConstraints(tgt, e.Style, false, DirsAll)
		if rotation := tgt.Style.Float(core.KeyRotation, 0); rotation != 0 {
			geo[1] = geometry.RotatedBounds(geo[1], rotation)
		}
	}
	for i := range geo {
		geo[i].X = geometry.Round1(geo[i].X)
		geo[i].Y = geometry.Round1(geo[i].Y)
		geo[i].Width = geometry.Round1(geo[i].Width)
		geo[i].Height = geometry.Round1(geo[i].Height)
	}

	quad := quadrantOf(geo[0].CenterX()-geo[1].CenterX(), geo[0].CenterY()-geo[1].CenterY())

	// Fixed connection points override direction preference and pin the
	// fractional position the jetty leaves from.
	var dir [2]Dirs
	constraint := [2][2]float64{{0.5, 0.5}, {0.5, 0.5}}
	terms := [2]*core.Point{}
	if src != nil {
		terms[0] = p0
	}
	if tgt != nil {
		terms[1] = pe
	}
	for i, term := range terms {
		if term == nil {
			continue
		}
		g := geo[i]
		if g.Width != 0 {
			constraint[i][0] = (term.X - g.X) / g.Width
		}
		if math.Abs(term.X-g.X) <= 1 {
			dir[i] = DirWest
		} else if math.Abs(term.X-g.X-g.Width) <= 1 {
			dir[i] = DirEast
		}
		if g.Height != 0 {
			constraint[i][1] = (term.Y - g.Y) / g.Height
		}
		if math.Abs(term.Y-g.Y) <= 1 {
			dir[i] = DirNorth
		} else if math.Abs(term.Y-g.Y-g.Height) <= 1 {
			dir[i] = DirSouth
		}
	}

	sourceTopDist := geo[0].Y - (geo[1].Y + geo[1].Height)
	sourceLeftDist := geo[0].X - (geo[1].X + geo[1].Width)
	sourceBottomDist := geo[1].Y - (geo[0].Y + geo[0].Height)
	sourceRightDist := geo[1].X - (geo[0].X + geo[0].Width)

	s.seps[1] = math.Max(sourceLeftDist-totalJetty, 0)
	s.seps[2] = math.Max(sourceTopDist-totalJetty, 0)
	s.seps[3] = math.Max(sourceRightDist-totalJetty, 0)
	s.seps[4] = math.Max(sourceBottomDist-totalJetty, 0)

	for i := range geo {
		s.limits[i][sideLeft] = geo[i].X - jetty[i]
		s.limits[i][sideTop] = geo[i].Y - jetty[i]
		s.limits[i][sideRight] = geo[i].X + geo[i].Width + jetty[i]
		s.limits[i][sideBottom] = geo[i].Y + geo[i].Height + jetty[i]
	}

	resolveDirections(&dir, portCons, sourceLeftDist, sourceRightDist, sourceTopDist, sourceBottomDist)

	pattern := patternFor(dir[0], dir[1], quad)

	// Seed the way-point buffer with the source jetty exit.
	wp := &s.waypoints
	wp[0] = core.Point{X: geo[0].X, Y: geo[0].Y}
	switch dir[0] {
	case DirWest:
		wp[0].X -= jetty[0]
		wp[0].Y += constraint[0][1] * geo[0].Height
	case DirSouth:
		wp[0].X += constraint[0][0] * geo[0].Width
		wp[0].Y += geo[0].Height + jetty[0]
	case DirEast:
		wp[0].X += geo[0].Width + jetty[0]
		wp[0].Y += constraint[0][1] * geo[0].Height
	case DirNorth:
		wp[0].X += constraint[0][0] * geo[0].Width
		wp[0].Y -= jetty[0]
	}

	const horizontal, vertical = 0, 1

	currentIndex := 0
	lastOrientation := horizontal
	if dir[0]&(DirEast|DirWest) == 0 {
		lastOrientation = vertical
	}
	initialOrientation := lastOrientation

	for _, st := range pattern {
		// Rotate the canonical step into the active quadrant.
		directionIndex := st.dir.patternIndex() + quad
		if directionIndex > 4 {
			directionIndex -= 4
		}
		vec := dirVectors[directionIndex-1]

		currentOrientation := vertical
		if directionIndex%2 > 0 {
			currentOrientation = horizontal
		}

		// An axis change opens a new way-point; moves on the same axis
		// keep sliding the current one.
		if currentOrientation != lastOrientation {
			currentIndex++
			wp[currentIndex] = wp[currentIndex-1]
		}

		side := rotateSide(st.side, quad)

		if st.limit != limitNone && side < 9 {
			shape := 0
			if st.limit == limitTarget {
				shape = 1
			}

			var limit float64
			switch {
			case st.center && currentOrientation == horizontal:
				limit = geo[shape].X + constraint[shape][0]*geo[shape].Width
			case st.center:
				limit = geo[shape].Y + constraint[shape][1]*geo[shape].Height
			default:
				limit = s.limits[shape][side]
			}

			if currentOrientation == horizontal {
				if delta := (limit - wp[currentIndex].X) * vec[0]; delta > 0 {
					wp[currentIndex].X += vec[0] * delta
				}
			} else {
				if delta := (limit - wp[currentIndex].Y) * vec[1]; delta > 0 {
					wp[currentIndex].Y += vec[1] * delta
				}
			}
		} else if currentOrientation == horizontal {
			wp[currentIndex].X += vec[0] * math.Abs(s.seps[directionIndex]/2)
		} else {
			wp[currentIndex].Y += vec[1] * math.Abs(s.seps[directionIndex]/2)
		}

		lastOrientation = currentOrientation
	}

	// The path must end with a segment perpendicular to the target's
	// entry side; when the way-point parity disagrees, the last point
	// is redundant.
	targetOrientation := horizontal
	if dir[1]&(DirEast|DirWest) == 0 {
		targetOrientation = vertical
	}
	sameOrient := 0
	if targetOrientation != initialOrientation {
		sameOrient = 1
	}
	if sameOrient != (currentIndex+1)%2 {
		currentIndex--
	}

	base := len(out)
	for i := 0; i <= currentIndex; i++ {
		out = append(out, core.Point{
			X: geometry.Round1(wp[i].X * e.Scale),
			Y: geometry.Round1(wp[i].Y * e.Scale),
		})
	}
	return dedupAppended(out, base)
}

// resolveDirections fills in any endpoint direction not already pinned
// by a fixed connection point. Preference goes to the axis with more
// clearance between the shapes, reversing a preferred side when the
// endpoint's constraint disallows it.
func resolveDirections(dir *[2]Dirs, portCons [2]Dirs, leftDist, rightDist, topDist, bottomDist float64) {
	var horPref, vertPref [2]Dirs
	if leftDist >= rightDist {
		horPref[0] = DirWest
	} else {
		horPref[0] = DirEast
	}
	if topDist >= bottomDist {
		vertPref[0] = DirNorth
	} else {
		vertPref[0] = DirSouth
	}
	horPref[1] = horPref[0].Reversed()
	vertPref[1] = vertPref[0].Reversed()

	preferredHorizDist := math.Max(leftDist, rightDist)
	preferredVertDist := math.Max(topDist, bottomDist)

	var prefOrdering [2][2]Dirs
	preferredOrderSet := false

	// Default ordering per endpoint, honoring its constraint.
	for i := 0; i < 2; i++ {
		if dir[i] != DirsNone {
			continue
		}
		if horPref[i]&portCons[i] == 0 {
			horPref[i] = horPref[i].Reversed()
		}
		if vertPref[i]&portCons[i] == 0 {
			vertPref[i] = vertPref[i].Reversed()
		}
		prefOrdering[i] = [2]Dirs{vertPref[i], horPref[i]}
	}

	// With clearance on both axes a two-segment connection is possible
	// when the source's preferred exit pairs with the target's matching
	// entry.
	if preferredVertDist > 0 && preferredHorizDist > 0 {
		if horPref[0]&portCons[0] != 0 && vertPref[1]&portCons[1] != 0 {
			prefOrdering[0] = [2]Dirs{horPref[0], vertPref[0]}
			prefOrdering[1] = [2]Dirs{vertPref[1], horPref[1]}
			preferredOrderSet = true
		} else if vertPref[0]&portCons[0] != 0 && horPref[1]&portCons[1] != 0 {
			prefOrdering[0] = [2]Dirs{vertPref[0], horPref[0]}
			prefOrdering[1] = [2]Dirs{horPref[1], vertPref[1]}
			preferredOrderSet = true
		}
	}
	if preferredVertDist > 0 && !preferredOrderSet {
		prefOrdering[0] = [2]Dirs{vertPref[0], horPref[0]}
		prefOrdering[1] = [2]Dirs{vertPref[1], horPref[1]}
		preferredOrderSet = true
	}
	if preferredHorizDist > 0 && !preferredOrderSet {
		prefOrdering[0] = [2]Dirs{horPref[0], vertPref[0]}
		prefOrdering[1] = [2]Dirs{horPref[1], vertPref[1]}
	}

	for i := 0; i < 2; i++ {
		if dir[i] != DirsNone {
			continue
		}
		if prefOrdering[i][0]&portCons[i] == 0 {
			prefOrdering[i][0] = prefOrdering[i][1]
		}

		// First allowed candidate wins, in priority order.
		candidates := [4]Dirs{
			prefOrdering[i][0] & portCons[i],
			prefOrdering[i][1] & portCons[i],
			prefOrdering[1-i][i] & portCons[i],
			prefOrdering[i][0].Reversed() & portCons[i],
		}
		for _, c := range candidates {
			if c != DirsNone {
				dir[i] = c
				break
			}
		}
		if portCons[i].Single() {
			dir[i] = portCons[i]
		}
		assertDirection(dir[i])
	}
}

// dedupAppended removes consecutive duplicate points from out[base:].
func dedupAppended(out []core.Point, base int) []core.Point {
	i := base + 1
	for i < len(out) {
		if out[i-1] == out[i] {
			out = append(out[:i], out[i+1:]...)
		} else {
			i++
		}
	}
	return out
}
