package route

import (
	"math"

	"orthoroute/core"
)

// Loop routes a self-edge out of one side of its shape and back in,
// with the side taken from the direction style key. A hint drags the
// loop's apex; a hint inside the shape is ignored.
func Loop(e *core.EdgeState, source, target *core.CellState, hints []core.Point, out []core.Point) []core.Point {
	p0, pe := e.Endpoints()

	// With both ends pinned the hints pass through untouched.
	if p0 != nil && pe != nil {
		return append(out, hints...)
	}

	if source == nil {
		return out
	}

	var pt *core.Point
	if len(hints) > 0 {
		pt = &hints[0]
		if source.Contains(pt.X, pt.Y) {
			pt = nil
		}
	}

	var x, dx, y, dy float64

	seg := e.Style.Float(core.KeySegment, core.LoopSegment) * e.Scale
	dir := e.Style.Str(core.KeyDirection, core.DirectionWest)

	if dir == core.DirectionNorth || dir == core.DirectionSouth {
		x = source.RoutingCenterX()
		dx = seg
	} else {
		y = source.RoutingCenterY()
		dy = seg
	}

	if pt == nil || pt.X < source.X || pt.X > source.X+source.Width {
		if pt != nil {
			x = pt.X
			dy = math.Max(math.Abs(y-pt.Y), dy)
		} else {
			switch dir {
			case core.DirectionNorth:
				y = source.Y - 2*dx
			case core.DirectionSouth:
				y = source.Y + source.Height + 2*dx
			case core.DirectionEast:
				x = source.X - 2*dy
			default:
				x = source.X + source.Width + 2*dy
			}
		}
	} else if pt != nil {
		x = source.RoutingCenterX()
		dx = math.Max(math.Abs(x-pt.X), dy)
		y = pt.Y
		dy = 0
	}

	return append(out,
		core.Point{X: x - dx, Y: y - dy},
		core.Point{X: x + dx, Y: y + dy})
}
