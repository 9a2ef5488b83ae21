package route

import "testing"

func TestQuadrantOf(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   int
	}{
		{1, 1, 0},
		{-1, 1, 1},
		{-1, -1, 2},
		{1, -1, 3},
		{0, -1, 2},
		{0, 0, 2},
		{0, 1, 0},
		{1, 0, 3},
		{-1, 0, 1},
	}
	for _, tt := range tests {
		if got := quadrantOf(tt.dx, tt.dy); got != tt.want {
			t.Errorf("quadrantOf(%v, %v): got %d, want %d", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestRotateSide(t *testing.T) {
	tests := []struct {
		side sideIndex
		quad int
		want sideIndex
	}{
		{sideLeft, 0, sideLeft},
		{sideLeft, 1, sideTop},
		{sideLeft, 2, sideRight},
		{sideLeft, 3, sideBottom},
		{sideBottom, 1, sideLeft},
		{sideBottom, 2, sideTop},
		{sideTop, 3, sideLeft},
		{sideRight, 2, sideLeft},
	}
	for _, tt := range tests {
		if got := rotateSide(tt.side, tt.quad); got != tt.want {
			t.Errorf("rotateSide(%d, %d): got %d, want %d", tt.side, tt.quad, got, tt.want)
		}
	}
}

func TestRoutePatternsComplete(t *testing.T) {
	for si := range routePatterns {
		for ti := range routePatterns[si] {
			pattern := routePatterns[si][ti]
			if len(pattern) == 0 {
				t.Errorf("empty pattern at [%d][%d]", si, ti)
				continue
			}
			if len(pattern) > 7 {
				t.Errorf("pattern [%d][%d] has %d steps, the way-point buffer assumes at most 7", si, ti, len(pattern))
			}
			for i, st := range pattern {
				if !st.dir.Single() {
					t.Errorf("pattern [%d][%d] step %d has direction %v", si, ti, i, st.dir)
				}
				if st.limit != limitNone && st.side == sideNone && !st.center {
					t.Errorf("pattern [%d][%d] step %d limits without a side or center", si, ti, i)
				}
			}
		}
	}
}

func TestPatternForWrapsIndices(t *testing.T) {
	// East source, north target in quadrant 2 normalizes to the
	// west/south cell.
	got := patternFor(DirEast, DirNorth, 2)
	want := routePatterns[0][3]
	if &got[0] != &want[0] {
		t.Error("patternFor(E, N, 2) did not select cell [0][3]")
	}

	got = patternFor(DirWest, DirEast, 3)
	want = routePatterns[1][3]
	if &got[0] != &want[0] {
		t.Error("patternFor(W, E, 3) did not select cell [1][3]")
	}

	got = patternFor(DirWest, DirNorth, 0)
	want = routePatterns[0][1]
	if &got[0] != &want[0] {
		t.Error("patternFor(W, N, 0) did not select cell [0][1]")
	}

	got = patternFor(DirWest, DirEast, 0)
	want = routePatterns[0][2]
	if &got[0] != &want[0] {
		t.Error("patternFor(W, E, 0) did not select cell [0][2]")
	}
}

func TestWestToEastCellEndsOnTargetCenter(t *testing.T) {
	// The recipe must clamp east of the target and then drop to the
	// connection-point height, so the final segment enters the east
	// side horizontally.
	cell := routePatterns[0][2]
	last := cell[len(cell)-1]
	if !last.center || last.limit != limitTarget || last.dir != DirNorth {
		t.Errorf("cell [0][2] ends on %+v, want the target's vertical center", last)
	}
	prev := cell[len(cell)-2]
	if prev.center || prev.limit != limitTarget || prev.side != sideRight {
		t.Errorf("cell [0][2] approaches via %+v, want the target's right limit", prev)
	}
}
