package core

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 60, 45, true},
		{"left edge", 10, 45, true},
		{"right edge", 110, 45, true},
		{"top edge", 60, 20, true},
		{"bottom edge", 60, 70, true},
		{"outside left", 9.9, 45, false},
		{"outside below", 60, 70.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 50}

	if !r.Intersects(Rect{X: 50, Y: 25, Width: 100, Height: 50}) {
		t.Error("overlapping rectangles should intersect")
	}
	if !r.Intersects(Rect{X: 100, Y: 0, Width: 10, Height: 10}) {
		t.Error("touching rectangles should intersect")
	}
	if r.Intersects(Rect{X: 200, Y: 200, Width: 10, Height: 10}) {
		t.Error("distant rectangles should not intersect")
	}
}

func TestRectGrow(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}.Grow(5)
	want := Rect{X: 5, Y: 5, Width: 30, Height: 30}
	if r != want {
		t.Errorf("Grow(5) = %+v, want %+v", r, want)
	}
}

func TestStyleFloat(t *testing.T) {
	s := Style{
		"good": "12.5",
		"bad":  "wide",
	}

	if got := s.Float("good", 1); got != 12.5 {
		t.Errorf("Float(good) = %v, want 12.5", got)
	}
	if got := s.Float("bad", 7); got != 7 {
		t.Errorf("malformed value should fall back to default, got %v", got)
	}
	if got := s.Float("missing", 3); got != 3 {
		t.Errorf("missing value should fall back to default, got %v", got)
	}
	var nilStyle Style
	if got := nilStyle.Float("any", 9); got != 9 {
		t.Errorf("nil style should fall back to default, got %v", got)
	}
}

func TestRoutingCenter(t *testing.T) {
	s := &CellState{Rect: Rect{X: 0, Y: 0, Width: 100, Height: 50}}
	if got := s.RoutingCenterX(); got != 50 {
		t.Errorf("RoutingCenterX = %v, want 50", got)
	}

	s.Style = Style{KeyRoutingCenterX: "0.25", KeyRoutingCenterY: "-0.5"}
	if got := s.RoutingCenterX(); got != 75 {
		t.Errorf("shifted RoutingCenterX = %v, want 75", got)
	}
	if got := s.RoutingCenterY(); got != 0 {
		t.Errorf("shifted RoutingCenterY = %v, want 0", got)
	}
}

func TestEdgeStateEndpoints(t *testing.T) {
	var e EdgeState
	if p0, pe := e.Endpoints(); p0 != nil || pe != nil {
		t.Error("empty edge should have nil endpoints")
	}

	a := &Point{X: 1, Y: 2}
	b := &Point{X: 3, Y: 4}
	e = EdgeState{AbsolutePoints: []*Point{a, nil, b}}
	p0, pe := e.Endpoints()
	if p0 != a || pe != b {
		t.Errorf("Endpoints() = %v, %v, want %v, %v", p0, pe, a, b)
	}
}
