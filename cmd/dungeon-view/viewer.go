package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Ko-stant/dungeon-bsp/internal/dungeon"
)

// Row 0 holds the status line; the grid starts below it.
const gridTop = 1

var (
	wallStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	floorStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	corridorStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	anchorStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	statusStyle   = tcell.StyleDefault.Reverse(true)
)

// Viewer draws one finished dungeon and regenerates it on request.
type Viewer struct {
	screen tcell.Screen
	cfg    dungeon.Config
	result *dungeon.Result
}

func NewViewer(screen tcell.Screen, cfg dungeon.Config) (*Viewer, error) {
	result, err := dungeon.Generate(cfg)
	if err != nil {
		return nil, err
	}
	// Pin the effective seed so regeneration walks forward from it.
	cfg.Seed = result.Seed
	return &Viewer{screen: screen, cfg: cfg, result: result}, nil
}

func (v *Viewer) Result() *dungeon.Result {
	return v.result
}

// Regenerate builds the next dungeon with seed+1.
func (v *Viewer) Regenerate() error {
	next := v.cfg
	next.Seed++
	if next.Seed == 0 {
		next.Seed = 1
	}
	result, err := dungeon.Generate(next)
	if err != nil {
		return err
	}
	v.cfg = next
	v.result = result
	return nil
}

// HandleEvent reacts to one screen event and reports whether the viewer keeps running.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			_ = v.Regenerate()
		}
	case *tcell.EventResize:
		v.screen.Sync()
	case nil:
		return false
	}
	return true
}

func styleFor(c dungeon.Cell) tcell.Style {
	switch c {
	case dungeon.CellFloor:
		return floorStyle
	case dungeon.CellCorridor:
		return corridorStyle
	default:
		return wallStyle
	}
}

// Draw renders the grid clipped to the screen, with anchors marked.
func (v *Viewer) Draw() {
	v.screen.Clear()
	w, h := v.screen.Size()

	stats := v.result.Stats()
	status := fmt.Sprintf(" seed %d  %dx%d  rooms %d  corridors %d  [r] next  [q] quit ",
		v.result.Seed, v.cfg.Width, v.cfg.Depth, stats.Rooms, stats.Corridors)
	drawText(v.screen, 0, 0, w, status, statusStyle)

	grid := v.result.Grid
	for y := 0; y < grid.Depth() && y+gridTop < h; y++ {
		for x := 0; x < grid.Width() && x < w; x++ {
			c := grid.At(x, y)
			v.screen.SetContent(x, y+gridTop, rune(c.Glyph()), nil, styleFor(c))
		}
	}
	for _, a := range v.result.Anchors {
		if a.X < w && a.Y+gridTop < h {
			v.screen.SetContent(a.X, a.Y+gridTop, '@', nil, anchorStyle)
		}
	}

	v.screen.Show()
}

func drawText(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= maxX {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
