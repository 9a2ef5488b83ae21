// Command routeview is an interactive playground for the route connectors.
// Two boxes are drawn on a rune canvas; the arrow keys move the target box
// and Tab cycles through the registered edge styles, re-routing on every
// keypress.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"orthoroute/canvas"
	"orthoroute/core"
	"orthoroute/route"
)

// unit is the number of diagram coordinates per terminal cell. Routing in a
// scaled-up space keeps jetty stand-offs visible after rounding back down.
const unit = 10

type app struct {
	source   core.Rect // terminal cells
	target   core.Rect
	styleIdx int
	styles   []string
}

func newApp() *app {
	return &app{
		source: core.Rect{X: 4, Y: 3, Width: 14, Height: 5},
		target: core.Rect{X: 40, Y: 14, Width: 14, Height: 5},
		styles: route.Styles(),
	}
}

func (a *app) style() string { return a.styles[a.styleIdx] }

// routePoints runs the selected connector and returns the full polyline in
// terminal cells, terminals included.
func (a *app) routePoints() []canvas.Cell {
	src := &core.CellState{Rect: scaleRect(a.source)}
	tgt := &core.CellState{Rect: scaleRect(a.target)}
	if a.style() == route.StyleLoop {
		tgt = src
	}

	e := &core.EdgeState{
		AbsolutePoints: []*core.Point{nil, nil},
		Style:          core.Style{core.KeyEdgeStyle: a.style()},
		Scale:          1,
	}
	conn := route.Lookup(a.style())
	if conn == nil {
		return nil
	}

	pts := conn(e, src, tgt, nil, nil)

	full := make([]core.Point, 0, len(pts)+2)
	full = append(full, core.Point{X: src.RoutingCenterX(), Y: src.RoutingCenterY()})
	full = append(full, pts...)
	full = append(full, core.Point{X: tgt.RoutingCenterX(), Y: tgt.RoutingCenterY()})
	return toCells(full)
}

func scaleRect(r core.Rect) core.Rect {
	return core.Rect{X: r.X * unit, Y: r.Y * unit, Width: r.Width * unit, Height: r.Height * unit}
}

// toCells converts diagram points to terminal cells, splitting any diagonal
// hop into a horizontal-then-vertical corner so the path renderer only sees
// axis-aligned segments.
func toCells(pts []core.Point) []canvas.Cell {
	cells := make([]canvas.Cell, 0, len(pts)+2)
	for _, p := range pts {
		c := canvas.Cell{X: int(p.X / unit), Y: int(p.Y / unit)}
		if n := len(cells); n > 0 {
			prev := cells[n-1]
			if c.X == prev.X && c.Y == prev.Y {
				continue
			}
			if c.X != prev.X && c.Y != prev.Y {
				cells = append(cells, canvas.Cell{X: c.X, Y: prev.Y})
			}
		}
		cells = append(cells, c)
	}
	return cells
}

func (a *app) render(screen tcell.Screen) {
	w, h := screen.Size()
	grid := canvas.NewGrid(w, h)
	if grid == nil {
		return
	}

	grid.DrawPath(a.routePoints(), true)
	grid.DrawBox(int(a.source.X), int(a.source.Y), int(a.source.Width), int(a.source.Height), canvas.DefaultBoxStyle)
	grid.DrawBox(int(a.target.X), int(a.target.Y), int(a.target.Width), int(a.target.Height), canvas.DoubleBoxStyle)
	grid.DrawLabel(int(a.source.X), int(a.source.Y), int(a.source.Width), int(a.source.Height), "source")
	grid.DrawLabel(int(a.target.X), int(a.target.Y), int(a.target.Width), int(a.target.Height), "target")

	screen.Clear()
	gw, gh := grid.Size()
	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			screen.SetContent(x, y, grid.Get(x, y), nil, tcell.StyleDefault)
		}
	}

	status := fmt.Sprintf(" %s  [tab] style  [arrows] move  [q] quit ", a.style())
	for i, r := range status {
		screen.SetContent(i, h-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	screen.Show()
}

func (a *app) handleKey(ev *tcell.EventKey, maxW, maxH int) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		a.styleIdx = (a.styleIdx + 1) % len(a.styles)
	case tcell.KeyLeft:
		a.target.X--
	case tcell.KeyRight:
		a.target.X++
	case tcell.KeyUp:
		a.target.Y--
	case tcell.KeyDown:
		a.target.Y++
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return false
		}
	}
	if a.target.X < 0 {
		a.target.X = 0
	}
	if a.target.Y < 0 {
		a.target.Y = 0
	}
	if max := float64(maxW) - a.target.Width; a.target.X > max {
		a.target.X = max
	}
	if max := float64(maxH) - a.target.Height - 1; a.target.Y > max {
		a.target.Y = max
	}
	return true
}

func main() {
	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "routeview: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	a := newApp()
	a.render(screen)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			a.render(screen)
		case *tcell.EventKey:
			w, h := screen.Size()
			if !a.handleKey(ev, w, h) {
				return
			}
			a.render(screen)
		}
	}
}
