package dungeon

import (
	"fmt"
	"math"
	"strings"

	"github.com/Ko-stant/dungeon-bsp/internal/geometry"
)

type Cell byte

const (
	CellWall Cell = iota
	CellFloor
	CellCorridor
)

func (c Cell) Glyph() byte {
	switch c {
	case CellFloor:
		return '.'
	case CellCorridor:
		return '+'
	default:
		return '#'
	}
}

func (c Cell) String() string {
	switch c {
	case CellWall:
		return "wall"
	case CellFloor:
		return "floor"
	case CellCorridor:
		return "corridor"
	}
	return fmt.Sprintf("cell(%d)", byte(c))
}

// Grid is a dense width x depth buffer of cells, row-major by depth.
// A fresh grid is all walls; cells are only ever raised to floor or corridor.
type Grid struct {
	width int
	depth int
	cells []Cell
}

func NewGrid(width, depth int) *Grid {
	if width <= 0 || depth <= 0 {
		panic(fmt.Sprintf("dungeon: grid %dx%d has non-positive extent", width, depth))
	}
	if width > math.MaxInt/depth {
		panic(fmt.Sprintf("dungeon: grid %dx%d overflows", width, depth))
	}
	return &Grid{width: width, depth: depth, cells: make([]Cell, width*depth)}
}

func (g *Grid) Width() int { return g.width }
func (g *Grid) Depth() int { return g.depth }

func (g *Grid) Bounds() geometry.Region {
	return geometry.NewRegion(0, 0, g.width, g.depth)
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.depth
}

// At returns the cell at (x, y); anything outside the grid reads as wall.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return CellWall
	}
	return g.cells[y*g.width+x]
}

// Set writes c at (x, y) and reports whether the write happened.
// Writes outside the grid and writes of CellWall are ignored.
func (g *Grid) Set(x, y int, c Cell) bool {
	if !g.InBounds(x, y) || c == CellWall {
		return false
	}
	g.cells[y*g.width+x] = c
	return true
}

func (g *Grid) Walkable(x, y int) bool {
	return g.At(x, y) != CellWall
}

// Cells returns a copy of the buffer.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Rows renders each row with one glyph per cell: '#' wall, '.' floor, '+' corridor.
func (g *Grid) Rows() []string {
	rows := make([]string, g.depth)
	line := make([]byte, g.width)
	for y := range g.depth {
		for x := range g.width {
			line[x] = g.cells[y*g.width+x].Glyph()
		}
		rows[y] = string(line)
	}
	return rows
}

func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

func (g *Grid) RegionMap() geometry.RegionMap {
	return geometry.BuildRegionMap(g.width, g.depth, g.Walkable)
}
