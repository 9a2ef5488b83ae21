package canvas

// BoxStyle selects the rune set used for a box outline.
type BoxStyle struct {
	TopLeft, TopRight       rune
	BottomLeft, BottomRight rune
	Horizontal, Vertical    rune
}

// DefaultBoxStyle draws with light box-drawing characters.
var DefaultBoxStyle = BoxStyle{
	TopLeft: '┌', TopRight: '┐',
	BottomLeft: '└', BottomRight: '┘',
	Horizontal: '─', Vertical: '│',
}

// DoubleBoxStyle draws with double-line characters, used by the demo to
// mark the selected shape.
var DoubleBoxStyle = BoxStyle{
	TopLeft: '╔', TopRight: '╗',
	BottomLeft: '╚', BottomRight: '╝',
	Horizontal: '═', Vertical: '║',
}

// DrawBox outlines a rectangle from its top-left corner. Boxes smaller
// than 2x2 cells are skipped. Cells outside the grid are clipped.
func (g *Grid) DrawBox(x, y, width, height int, style BoxStyle) {
	if width < 2 || height < 2 {
		return
	}

	right := x + width - 1
	bottom := y + height - 1

	g.Set(x, y, style.TopLeft)
	g.Set(right, y, style.TopRight)
	g.Set(x, bottom, style.BottomLeft)
	g.Set(right, bottom, style.BottomRight)

	for cx := x + 1; cx < right; cx++ {
		g.Set(cx, y, style.Horizontal)
		g.Set(cx, bottom, style.Horizontal)
	}
	for cy := y + 1; cy < bottom; cy++ {
		g.Set(x, cy, style.Vertical)
		g.Set(right, cy, style.Vertical)
	}
}

// DrawLabel writes text centered inside the box at (x, y, width, height),
// truncated to fit the interior.
func (g *Grid) DrawLabel(x, y, width, height int, text string) {
	if width < 3 || height < 3 {
		return
	}
	runes := []rune(text)
	if len(runes) > width-2 {
		runes = runes[:width-2]
	}
	startX := x + (width-len(runes))/2
	cy := y + height/2
	for i, r := range runes {
		g.Set(startX+i, cy, r)
	}
}
