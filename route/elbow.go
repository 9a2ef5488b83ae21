package route

import (
	"math"

	"orthoroute/core"
)

// Elbow routes an edge with a single bend, choosing between a vertical
// and a horizontal middle segment. With a hint outside the combined
// bounding box the hint's side decides; otherwise overlapping
// projections of the two shapes decide, and the elbow style key breaks
// the tie.
func Elbow(e *core.EdgeState, source, target *core.CellState, hints []core.Point, out []core.Point) []core.Point {
	var pt *core.Point
	if len(hints) > 0 {
		pt = &hints[0]
	}

	vertical := false
	horizontal := false

	if source != nil && target != nil {
		if pt != nil {
			left := math.Min(source.X, target.X)
			right := math.Max(source.X+source.Width, target.X+target.Width)
			top := math.Min(source.Y, target.Y)
			bottom := math.Max(source.Y+source.Height, target.Y+target.Height)

			vertical = pt.Y < top || pt.Y > bottom
			horizontal = pt.X < left || pt.X > right
		} else {
			left := math.Max(source.X, target.X)
			right := math.Min(source.X+source.Width, target.X+target.Width)

			vertical = left == right
			if !vertical {
				top := math.Max(source.Y, target.Y)
				bottom := math.Min(source.Y+source.Height, target.Y+target.Height)
				horizontal = top == bottom
			}
		}
	}

	if !horizontal && (vertical || e.Style.Str(core.KeyElbow, "") == core.ElbowVertical) {
		return TopToBottom(e, source, target, hints, out)
	}
	return SideToSide(e, source, target, hints, out)
}

// SideToSide routes an edge horizontally out of both shapes through a
// shared vertical segment between them.
func SideToSide(e *core.EdgeState, source, target *core.CellState, hints []core.Point, out []core.Point) []core.Point {
	var pt *core.Point
	if len(hints) > 0 {
		pt = &hints[0]
	}
	p0, pe := e.Endpoints()

	// Fixed end points replace their terminal with a degenerate shape
	// at the point itself.
	if p0 != nil {
		source = &core.CellState{Rect: core.Rect{X: p0.X, Y: p0.Y}}
	}
	if pe != nil {
		target = &core.CellState{Rect: core.Rect{X: pe.X, Y: pe.Y}}
	}

	if source == nil || target == nil {
		return out
	}

	l := math.Max(source.X, target.X)
	r := math.Min(source.X+source.Width, target.X+target.Width)

	x := math.Round(r + (l-r)/2)
	if pt != nil {
		x = pt.X
	}

	y1 := source.RoutingCenterY()
	y2 := target.RoutingCenterY()

	if pt != nil {
		if pt.Y >= source.Y && pt.Y <= source.Y+source.Height {
			y1 = pt.Y
		}
		if pt.Y >= target.Y && pt.Y <= target.Y+target.Height {
			y2 = pt.Y
		}
	}

	base := len(out)
	if !target.Contains(x, y1) && !source.Contains(x, y1) {
		out = append(out, core.Point{X: x, Y: y1})
	}
	if !target.Contains(x, y2) && !source.Contains(x, y2) {
		out = append(out, core.Point{X: x, Y: y2})
	}

	if len(out)-base == 1 {
		if pt != nil {
			if !target.Contains(x, pt.Y) && !source.Contains(x, pt.Y) {
				out = append(out, core.Point{X: x, Y: pt.Y})
			}
		} else {
			t := math.Max(source.Y, target.Y)
			b := math.Min(source.Y+source.Height, target.Y+target.Height)
			out = append(out, core.Point{X: x, Y: t + (b-t)/2})
		}
	}

	return dedupAppended(out, base)
}

// TopToBottom routes an edge vertically out of both shapes through a
// shared horizontal segment between them.
func TopToBottom(e *core.EdgeState, source, target *core.CellState, hints []core.Point, out []core.Point) []core.Point {
	var pt *core.Point
	if len(hints) > 0 {
		pt = &hints[0]
	}
	p0, pe := e.Endpoints()

	if p0 != nil {
		source = &core.CellState{Rect: core.Rect{X: p0.X, Y: p0.Y}}
	}
	if pe != nil {
		target = &core.CellState{Rect: core.Rect{X: pe.X, Y: pe.Y}}
	}

	if source == nil || target == nil {
		return out
	}

	t := math.Max(source.Y, target.Y)
	b := math.Min(source.Y+source.Height, target.Y+target.Height)

	y := math.Round(b + (t-b)/2)
	if pt != nil {
		y = pt.Y
	}

	x1 := source.RoutingCenterX()
	x2 := target.RoutingCenterX()

	if pt != nil {
		if pt.X >= source.X && pt.X <= source.X+source.Width {
			x1 = pt.X
		}
		if pt.X >= target.X && pt.X <= target.X+target.Width {
			x2 = pt.X
		}
	}

	base := len(out)
	if !target.Contains(x1, y) && !source.Contains(x1, y) {
		out = append(out, core.Point{X: x1, Y: y})
	}
	if !target.Contains(x2, y) && !source.Contains(x2, y) {
		out = append(out, core.Point{X: x2, Y: y})
	}

	if len(out)-base == 1 {
		if pt != nil {
			if !target.Contains(pt.X, y) && !source.Contains(pt.X, y) {
				out = append(out, core.Point{X: pt.X, Y: y})
			}
		} else {
			l := math.Max(source.X, target.X)
			r := math.Min(source.X+source.Width, target.X+target.Width)
			out = append(out, core.Point{X: l + (r-l)/2, Y: y})
		}
	}

	return dedupAppended(out, base)
}
