package route

import (
	"testing"

	"orthoroute/core"
)

func TestLoopDefaultWest(t *testing.T) {
	shape := box(100, 100, 80, 40)

	got := Loop(floatingEdge(core.Style{}), shape, shape, nil, nil)

	// The default direction routes out of the right side of the shape.
	want := []core.Point{{X: 200, Y: 110}, {X: 200, Y: 130}}
	if !pointsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLoopNorth(t *testing.T) {
	shape := box(100, 100, 80, 40)
	e := floatingEdge(core.Style{core.KeyDirection: core.DirectionNorth})

	got := Loop(e, shape, shape, nil, nil)

	want := []core.Point{{X: 130, Y: 80}, {X: 150, Y: 80}}
	if !pointsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLoopHintInsideSpan(t *testing.T) {
	shape := box(100, 100, 80, 40)
	hints := []core.Point{{X: 150, Y: 200}}

	got := Loop(floatingEdge(core.Style{}), shape, shape, hints, nil)

	// A hint below the shape drags the apex to its y and widens the
	// loop around the routing center.
	want := []core.Point{{X: 130, Y: 200}, {X: 150, Y: 200}}
	if !pointsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLoopHintInsideShapeIgnored(t *testing.T) {
	shape := box(100, 100, 80, 40)
	hints := []core.Point{{X: 140, Y: 120}}

	got := Loop(floatingEdge(core.Style{}), shape, shape, hints, nil)
	want := Loop(floatingEdge(core.Style{}), shape, shape, nil, nil)

	if !pointsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLoopFixedEndpointsPassHintsThrough(t *testing.T) {
	shape := box(100, 100, 80, 40)
	e := &core.EdgeState{
		AbsolutePoints: []*core.Point{{X: 180, Y: 110}, {X: 180, Y: 130}},
		Style:          core.Style{},
		Scale:          1,
	}
	hints := []core.Point{{X: 260, Y: 120}}

	got := Loop(e, shape, shape, hints, nil)

	if !pointsEqual(got, hints) {
		t.Errorf("got %v, want %v", got, hints)
	}
}
