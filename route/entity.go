package route

import (
	"math"

	"orthoroute/core"
)

// EntityRelation routes an edge out of the side of each shape with a
// fixed-length horizontal stub, the way entity-relationship diagrams
// draw foreign keys. The exit side follows the terminal's relative
// position when it is a port, and the shapes' horizontal order
// otherwise.
func EntityRelation(e *core.EdgeState, source, target *core.CellState, hints []core.Point, out []core.Point) []core.Point {
	segment := e.Style.Float(core.KeySegment, core.EntitySegment) * e.Scale

	p0, pe := e.Endpoints()

	isSourceLeft := false
	if source != nil {
		if source.Relative {
			isSourceLeft = source.RelativeX <= 0.5
		} else if target != nil {
			rightOfTarget := target.X + target.Width
			if pe != nil {
				rightOfTarget = pe.X
			}
			leftOfSource := source.X
			if p0 != nil {
				leftOfSource = p0.X
			}
			isSourceLeft = rightOfTarget < leftOfSource
		}
	}

	if p0 != nil {
		source = &core.CellState{Rect: core.Rect{X: p0.X, Y: p0.Y}}
	} else if source == nil {
		return out
	}

	isTargetLeft := true
	if target != nil {
		if target.Relative {
			isTargetLeft = target.RelativeX <= 0.5
		} else {
			rightOfSource := source.X + source.Width
			if p0 != nil {
				rightOfSource = p0.X
			}
			leftOfTarget := target.X
			if pe != nil {
				leftOfTarget = pe.X
			}
			isTargetLeft = rightOfSource < leftOfTarget
		}
	}

	if pe != nil {
		target = &core.CellState{Rect: core.Rect{X: pe.X, Y: pe.Y}}
	} else if target == nil {
		return out
	}

	x0 := source.X
	if !isSourceLeft {
		x0 += source.Width
	}
	y0 := source.RoutingCenterY()

	xe := target.X
	if !isTargetLeft {
		xe += target.Width
	}
	ye := target.RoutingCenterY()

	dx := segment
	if isSourceLeft {
		dx = -segment
	}
	dep := core.Point{X: x0 + dx, Y: y0}

	dx = segment
	if isTargetLeft {
		dx = -segment
	}
	arr := core.Point{X: xe + dx, Y: ye}

	switch {
	case isSourceLeft == isTargetLeft:
		// Both stubs leave on the same side; route around the outside.
		x := math.Max(x0, xe) + segment
		if isSourceLeft {
			x = math.Min(x0, xe) - segment
		}
		out = append(out,
			core.Point{X: x, Y: y0},
			core.Point{X: x, Y: ye})

	case (dep.X < arr.X) == isSourceLeft:
		// The stubs point at each other's backs; S-bend between them.
		midY := y0 + (ye-y0)/2
		out = append(out,
			dep,
			core.Point{X: dep.X, Y: midY},
			core.Point{X: arr.X, Y: midY},
			arr)

	default:
		out = append(out, dep, arr)
	}

	return out
}
