// Package core contains the fundamental types shared by the orthoroute
// routing engine: geometry value types and the read-only snapshots of
// shapes and edges that the routers consume.
package core

// Point represents a 2D coordinate on the diagram canvas.
type Point struct {
	X, Y float64
}

// Translated returns the point moved by (dx, dy).
func (p Point) Translated(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect represents an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains checks if a coordinate lies inside the rectangle.
// Boundaries are inclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects checks if two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X+o.Width && o.X <= r.X+r.Width &&
		r.Y <= o.Y+o.Height && o.Y <= r.Y+r.Height
}

// Grow returns the rectangle expanded by margin on all four sides.
func (r Rect) Grow(margin float64) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// CenterX returns the x coordinate of the rectangle's center.
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// CenterY returns the y coordinate of the rectangle's center.
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// CellState is the read-only geometric snapshot of a shape (or edge) that
// the routers consume. It deliberately exposes only what routing needs:
// bounds, rotation, the style bag and whether the underlying cell is an
// edge. The rendering pipeline owns the full shape; routers never mutate
// a CellState.
type CellState struct {
	Rect

	// Rotation is the shape's rotation in degrees.
	Rotation float64

	// Style is the shape's style bag.
	Style Style

	// Edge reports whether the underlying model cell is itself an edge.
	// Edge-to-edge connections cannot be routed orthogonally.
	Edge bool

	// Relative indicates the cell's geometry is expressed as a relative
	// position on its parent, with RelativeX the fractional x position.
	// The entity-relation connector uses this to pick an exit side.
	Relative  bool
	RelativeX float64
}

// RoutingCenterX returns the x coordinate edges should aim for, shifted
// from the geometric center by the routingCenterX style fraction.
func (s *CellState) RoutingCenterX() float64 {
	return s.X + s.Width*(0.5+s.Style.Float(KeyRoutingCenterX, 0))
}

// RoutingCenterY returns the y coordinate edges should aim for.
func (s *CellState) RoutingCenterY() float64 {
	return s.Y + s.Height*(0.5+s.Style.Float(KeyRoutingCenterY, 0))
}

// EdgeState is the read-only snapshot of the edge being routed.
type EdgeState struct {
	// AbsolutePoints holds the edge's current points in view coordinates.
	// The first and last entries are the fixed endpoints; a nil entry
	// means that endpoint floats on its terminal shape.
	AbsolutePoints []*Point

	// Style is the edge's style bag.
	Style Style

	// Scale is the current view scale factor.
	Scale float64
}

// Endpoints returns the first and last absolute points, either of which
// may be nil for a floating endpoint.
func (e *EdgeState) Endpoints() (p0, pe *Point) {
	if len(e.AbsolutePoints) == 0 {
		return nil, nil
	}
	return e.AbsolutePoints[0], e.AbsolutePoints[len(e.AbsolutePoints)-1]
}
