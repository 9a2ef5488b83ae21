package route

import (
	"math"

	"orthoroute/core"
	"orthoroute/geometry"
)

// Segment routes an edge through its way-point hints using alternating
// horizontal and vertical segments. The orientation of the first
// segment is inferred from how the first (or, failing that, the last)
// hint lines up with its terminal, then flips at every hint.
//
// Bends that land inside a floating terminal are pruned, and a final
// bend within one unit of a fixed end point is collapsed into it.
func Segment(e *core.EdgeState, source, target *core.CellState, hints []core.Point, out []core.Point) []core.Point {
	scale := e.Scale
	if scale <= 0 {
		scale = 1
	}
	pts := geometry.ScalePoints(e.AbsolutePoints, scale)
	src := geometry.ScaleState(source, scale)
	tgt := geometry.ScaleState(target, scale)

	const tol = 1.0

	base := len(out)
	var lastPushed *core.Point
	if base > 0 {
		lastPushed = &out[base-1]
	}

	// push appends a point in view coordinates, dropping it when it is
	// within tolerance of the previous one.
	push := func(pt core.Point) {
		pt.X = geometry.Round1(pt.X * scale)
		pt.Y = geometry.Round1(pt.Y * scale)
		if lastPushed == nil ||
			math.Abs(lastPushed.X-pt.X) >= tol ||
			math.Abs(lastPushed.Y-pt.Y) >= math.Max(1, scale) {
			out = append(out, pt)
			lastPushed = &out[len(out)-1]
		}
	}

	var p0, pe *core.Point
	if len(pts) > 0 {
		p0 = pts[0]
		pe = pts[len(pts)-1]
	}

	var pt core.Point
	switch {
	case p0 != nil:
		pt = *p0
	case src != nil:
		pt = core.Point{X: src.RoutingCenterX(), Y: src.RoutingCenterY()}
	default:
		return out
	}
	pt.X = geometry.Round1(pt.X)
	pt.Y = geometry.Round1(pt.Y)

	horizontal := true
	var hint core.Point
	haveHint := false

	if len(hints) > 0 {
		// Hints arrive in view coordinates like the absolute points.
		hs := make([]core.Point, 0, len(hints))
		for _, h := range hints {
			hs = append(hs, core.Point{X: geometry.Round1(h.X / scale), Y: geometry.Round1(h.Y / scale)})
		}

		// Snap the outer hints onto coincident fixed points.
		if p0 != nil {
			if math.Abs(hs[0].X-p0.X) < tol {
				hs[0].X = p0.X
			}
			if math.Abs(hs[0].Y-p0.Y) < tol {
				hs[0].Y = p0.Y
			}
		}
		if pe != nil {
			last := len(hs) - 1
			if math.Abs(hs[last].X-pe.X) < tol {
				hs[last].X = pe.X
			}
			if math.Abs(hs[last].Y-pe.Y) < tol {
				hs[last].Y = pe.Y
			}
		}

		hint = hs[0]
		haveHint = true

		// Infer the first segment's orientation from the source end,
		// falling back to the target end when the source is ambiguous.
		currentTerm := src
		currentPt := p0
		currentHint := hs[0]
		if currentPt != nil {
			currentTerm = nil
		}

		for i := 0; i < 2; i++ {
			fixedVertAlign := currentPt != nil && currentPt.X == currentHint.X
			fixedHozAlign := currentPt != nil && currentPt.Y == currentHint.Y

			inHozChan := currentTerm != nil &&
				currentHint.Y >= currentTerm.Y && currentHint.Y <= currentTerm.Y+currentTerm.Height
			inVertChan := currentTerm != nil &&
				currentHint.X >= currentTerm.X && currentHint.X <= currentTerm.X+currentTerm.Width

			hozChan := fixedHozAlign || (currentPt == nil && inHozChan)
			vertChan := fixedVertAlign || (currentPt == nil && inVertChan)

			// A hint in both channels, or coincident with a fixed
			// point, says nothing about orientation at this end.
			if !(i == 0 && ((hozChan && vertChan) || (fixedVertAlign && fixedHozAlign))) {
				if currentPt != nil && !fixedHozAlign && !fixedVertAlign && (inHozChan || inVertChan) {
					horizontal = !inHozChan
					break
				}
				if vertChan || hozChan {
					horizontal = hozChan
					if i == 1 {
						// Walking back from the target, the parity of
						// the hint count decides the first segment.
						if len(hs)%2 == 0 {
							horizontal = hozChan
						} else {
							horizontal = vertChan
						}
					}
					break
				}
			}

			currentTerm = tgt
			currentPt = pe
			if currentPt != nil {
				currentTerm = nil
			}
			currentHint = hs[len(hs)-1]

			if fixedVertAlign && fixedHozAlign {
				hs = hs[1:]
			}
		}

		if horizontal && ((p0 != nil && p0.Y != hint.Y) ||
			(p0 == nil && src != nil && (hint.Y < src.Y || hint.Y > src.Y+src.Height))) {
			push(core.Point{X: pt.X, Y: hint.Y})
		} else if !horizontal && ((p0 != nil && p0.X != hint.X) ||
			(p0 == nil && src != nil && (hint.X < src.X || hint.X > src.X+src.Width))) {
			push(core.Point{X: hint.X, Y: pt.Y})
		}

		if horizontal {
			pt.Y = hint.Y
		} else {
			pt.X = hint.X
		}

		for _, h := range hs {
			horizontal = !horizontal
			hint = h
			if horizontal {
				pt.Y = hint.Y
			} else {
				pt.X = hint.X
			}
			push(pt)
		}
	} else {
		hint = pt
		haveHint = true
		horizontal = true
	}

	// Approach the last point with one more perpendicular bend when the
	// hint chain does not already line up with it.
	var lastPt *core.Point
	switch {
	case pe != nil:
		lastPt = pe
	case tgt != nil:
		lastPt = &core.Point{X: tgt.RoutingCenterX(), Y: tgt.RoutingCenterY()}
	}
	if lastPt != nil {
		end := core.Point{X: geometry.Round1(lastPt.X), Y: geometry.Round1(lastPt.Y)}
		if haveHint {
			if horizontal && ((pe != nil && pe.Y != hint.Y) ||
				(pe == nil && tgt != nil && (hint.Y < tgt.Y || hint.Y > tgt.Y+tgt.Height))) {
				push(core.Point{X: end.X, Y: hint.Y})
			} else if !horizontal && ((pe != nil && pe.X != hint.X) ||
				(pe == nil && tgt != nil && (hint.X < tgt.X || hint.X > tgt.X+tgt.Width))) {
				push(core.Point{X: hint.X, Y: end.Y})
			}
		}
	}

	// Bends swallowed by a floating terminal add nothing.
	if p0 == nil && src != nil {
		box := core.Rect{X: src.X * scale, Y: src.Y * scale, Width: src.Width * scale, Height: src.Height * scale}
		for len(out)-base > 1 && box.Contains(out[base+1].X, out[base+1].Y) {
			out = append(out[:base+1], out[base+2:]...)
		}
	}
	if pe == nil && tgt != nil {
		box := core.Rect{X: tgt.X * scale, Y: tgt.Y * scale, Width: tgt.Width * scale, Height: tgt.Height * scale}
		for len(out)-base > 1 && box.Contains(out[len(out)-1].X, out[len(out)-1].Y) {
			out = out[:len(out)-1]
		}
	}

	// Collapse a last bend that sits on top of the fixed end point, and
	// square up the bend before it.
	if pe != nil && len(out) > base {
		peX := geometry.Round1(pe.X * scale)
		peY := geometry.Round1(pe.Y * scale)
		last := len(out) - 1
		if math.Abs(peX-out[last].X) <= tol && math.Abs(peY-out[last].Y) <= tol {
			out = out[:last]
			if len(out) > base {
				last = len(out) - 1
				if math.Abs(out[last].X-peX) < tol {
					out[last].X = peX
				}
				if math.Abs(out[last].Y-peY) < tol {
					out[last].Y = peY
				}
			}
		}
	}

	return dedupAppended(out, base)
}
