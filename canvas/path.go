package canvas

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// DrawPath draws an orthogonal polyline through the given cells,
// resolving corner characters at each bend. Diagonal segments are
// skipped. With arrow set, the final cell gets an arrowhead pointing
// along the last segment.
func (g *Grid) DrawPath(cells []Cell, arrow bool) {
	if len(cells) < 2 {
		return
	}

	for i := 0; i < len(cells)-1; i++ {
		g.drawSegment(cells[i], cells[i+1])
	}

	// Corners overwrite the straight runes laid down by the segments.
	for i := 1; i < len(cells)-1; i++ {
		in := direction(cells[i-1], cells[i])
		out := direction(cells[i], cells[i+1])
		if c := cornerRune(in, out); c != 0 {
			g.put(cells[i].X, cells[i].Y, c)
		}
	}

	if arrow {
		last := cells[len(cells)-1]
		d := direction(cells[len(cells)-2], last)
		if a := arrowRune(d); a != 0 {
			g.put(last.X, last.Y, a)
		}
	}
}

func (g *Grid) drawSegment(from, to Cell) {
	switch {
	case from.Y == to.Y:
		x0, x1 := from.X, to.X
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			g.Set(x, from.Y, '─')
		}
	case from.X == to.X:
		y0, y1 := from.Y, to.Y
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			g.Set(from.X, y, '│')
		}
	}
}

// direction returns the unit step from a to b, zero on the diagonal.
func direction(a, b Cell) Cell {
	switch {
	case a.Y == b.Y && b.X > a.X:
		return Cell{1, 0}
	case a.Y == b.Y && b.X < a.X:
		return Cell{-1, 0}
	case a.X == b.X && b.Y > a.Y:
		return Cell{0, 1}
	case a.X == b.X && b.Y < a.Y:
		return Cell{0, -1}
	}
	return Cell{}
}

func cornerRune(in, out Cell) rune {
	type turn struct{ in, out Cell }
	switch (turn{in, out}) {
	case turn{Cell{1, 0}, Cell{0, 1}}, turn{Cell{0, -1}, Cell{-1, 0}}:
		return '┐'
	case turn{Cell{1, 0}, Cell{0, -1}}, turn{Cell{0, 1}, Cell{-1, 0}}:
		return '┘'
	case turn{Cell{-1, 0}, Cell{0, 1}}, turn{Cell{0, -1}, Cell{1, 0}}:
		return '┌'
	case turn{Cell{-1, 0}, Cell{0, -1}}, turn{Cell{0, 1}, Cell{1, 0}}:
		return '└'
	}
	return 0
}

func arrowRune(d Cell) rune {
	switch d {
	case Cell{1, 0}:
		return '▶'
	case Cell{-1, 0}:
		return '◀'
	case Cell{0, 1}:
		return '▼'
	case Cell{0, -1}:
		return '▲'
	}
	return 0
}

// put overwrites a cell without junction merging, skipping cells
// outside the grid.
func (g *Grid) put(x, y int, char rune) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y][x] = char
}
