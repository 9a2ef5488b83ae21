package geometry

import "orthoroute/core"

// ScalePoints maps a sequence of possibly-nil points into model
// coordinates by dividing each coordinate by scale and rounding to one
// decimal. Nil entries pass through unchanged so index alignment with
// floating endpoints is preserved. A non-positive scale is treated as 1.
func ScalePoints(points []*core.Point, scale float64) []*core.Point {
	if points == nil {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}

	result := make([]*core.Point, len(points))
	for i, p := range points {
		if p == nil {
			continue
		}
		result[i] = &core.Point{
			X: Round1(p.X / scale),
			Y: Round1(p.Y / scale),
		}
	}
	return result
}

// ScaleState returns a clone of state with its rectangle mapped into
// model coordinates, rounded to one decimal. The style bag and flags are
// shared with the original; routers treat them as read-only.
func ScaleState(state *core.CellState, scale float64) *core.CellState {
	if state == nil {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}

	clone := *state
	clone.Rect = core.Rect{
		X:      Round1(state.X / scale),
		Y:      Round1(state.Y / scale),
		Width:  Round1(state.Width / scale),
		Height: Round1(state.Height / scale),
	}
	return &clone
}
