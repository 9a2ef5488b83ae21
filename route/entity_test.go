package route

import (
	"testing"

	"orthoroute/core"
)

func TestEntityRelation(t *testing.T) {
	source := box(0, 0, 100, 50)
	target := box(200, 100, 100, 50)

	got := EntityRelation(floatingEdge(core.Style{}), source, target, nil, nil)

	// Source exits right, target entered from the left, stubs 30 long.
	want := []core.Point{{X: 130, Y: 25}, {X: 170, Y: 125}}
	if !pointsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEntityRelationSameSide(t *testing.T) {
	// A right-anchored port on the target puts both stubs on the right;
	// the route swings around the outside.
	source := box(0, 0, 100, 50)
	target := box(200, 100, 100, 50)
	target.Relative = true
	target.RelativeX = 0.9

	got := EntityRelation(floatingEdge(core.Style{}), source, target, nil, nil)

	want := []core.Point{{X: 330, Y: 25}, {X: 330, Y: 125}}
	if !pointsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEntityRelationSBend(t *testing.T) {
	// Overlapping stubs facing each other's backs take the s-bend.
	source := box(120, 100, 100, 50)
	target := box(0, 0, 100, 50)

	got := EntityRelation(floatingEdge(core.Style{}), source, target, nil, nil)

	want := []core.Point{
		{X: 90, Y: 125},
		{X: 90, Y: 75},
		{X: 130, Y: 75},
		{X: 130, Y: 25},
	}
	if !pointsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEntityRelationSegmentStyle(t *testing.T) {
	source := box(0, 0, 100, 50)
	target := box(300, 0, 100, 50)
	e := floatingEdge(core.Style{core.KeySegment: "50"})

	got := EntityRelation(e, source, target, nil, nil)

	want := []core.Point{{X: 150, Y: 25}, {X: 250, Y: 25}}
	if !pointsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
