package canvas

import (
	"strings"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(4, 3)
	if g == nil {
		t.Fatal("expected a grid")
	}
	w, h := g.Size()
	if w != 4 || h != 3 {
		t.Errorf("got %dx%d, want 4x3", w, h)
	}
	if NewGrid(0, 3) != nil || NewGrid(4, -1) != nil {
		t.Error("invalid sizes should return nil")
	}
}

func TestSetGet(t *testing.T) {
	g := NewGrid(3, 3)
	if err := g.Set(1, 1, 'x'); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := g.Get(1, 1); got != 'x' {
		t.Errorf("got %q, want 'x'", got)
	}
	if got := g.Get(5, 5); got != ' ' {
		t.Errorf("out of bounds Get: got %q, want space", got)
	}
	if err := g.Set(3, 0, 'x'); err != ErrOutOfBounds {
		t.Errorf("out of bounds Set: got %v, want ErrOutOfBounds", err)
	}
}

func TestCrossingLinesMerge(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, '─')
	g.Set(1, 1, '│')
	if got := g.Get(1, 1); got != '┼' {
		t.Errorf("got %q, want junction", got)
	}
}

func TestDrawBox(t *testing.T) {
	g := NewGrid(6, 4)
	g.DrawBox(0, 0, 6, 4, DefaultBoxStyle)

	want := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	if got := g.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDrawPathCornersAndArrow(t *testing.T) {
	g := NewGrid(8, 5)
	g.DrawPath([]Cell{{1, 1}, {5, 1}, {5, 3}}, true)

	want := strings.Join([]string{
		"        ",
		" ────┐  ",
		"     │  ",
		"     ▼  ",
		"        ",
	}, "\n")
	if got := g.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDrawPathCrossesExistingLine(t *testing.T) {
	g := NewGrid(5, 5)
	g.DrawPath([]Cell{{0, 2}, {4, 2}}, false)
	g.DrawPath([]Cell{{2, 0}, {2, 4}}, false)

	if got := g.Get(2, 2); got != '┼' {
		t.Errorf("got %q at crossing, want junction", got)
	}
}
