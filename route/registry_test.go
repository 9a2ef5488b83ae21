package route

import (
	"testing"

	"orthoroute/core"
)

func TestLookup(t *testing.T) {
	for _, name := range Styles() {
		if Lookup(name) == nil {
			t.Errorf("no connector registered for %q", name)
		}
	}
	if Lookup("") != nil {
		t.Error("empty name should resolve to no connector")
	}
	if Lookup(core.ValueNone) != nil {
		t.Error("none should resolve to no connector")
	}
	if Lookup("bezierEdgeStyle") != nil {
		t.Error("unknown name should resolve to no connector")
	}
}

func TestForSelfLoopDefaultsToLoop(t *testing.T) {
	shape := box(100, 100, 80, 40)
	e := floatingEdge(core.Style{})

	got := For(e, shape, shape)(e, shape, shape, nil, nil)
	want := Loop(e, shape, shape, nil, nil)

	if !pointsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestForUsesStyleKey(t *testing.T) {
	e := floatingEdge(core.Style{core.KeyEdgeStyle: StyleEntityRelation})
	source := box(0, 0, 100, 50)
	target := box(200, 100, 100, 50)

	got := For(e, source, target)(e, source, target, nil, nil)
	want := EntityRelation(e, source, target, nil, nil)

	if !pointsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
