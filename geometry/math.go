// Package geometry provides the scaling and rounding helpers the routers
// use to move between screen (scaled) and model (unscaled) coordinates.
package geometry

import (
	"math"

	"orthoroute/core"
)

// Round1 rounds v to one decimal digit. All router output is rounded
// this way so repeated invocations are byte-identical.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// RotatedBounds returns the axis-aligned bounding box of rect rotated by
// angle degrees around its center. A zero angle returns rect unchanged.
func RotatedBounds(rect core.Rect, angle float64) core.Rect {
	if angle == 0 {
		return rect
	}

	rad := angle * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	cx := rect.CenterX()
	cy := rect.CenterY()

	corners := [4]core.Point{
		{X: rect.X, Y: rect.Y},
		{X: rect.X + rect.Width, Y: rect.Y},
		{X: rect.X + rect.Width, Y: rect.Y + rect.Height},
		{X: rect.X, Y: rect.Y + rect.Height},
	}

	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)

	for _, c := range corners {
		x := cx + (c.X-cx)*cos - (c.Y-cy)*sin
		y := cy + (c.X-cx)*sin + (c.Y-cy)*cos
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	return core.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
