package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/Ko-stant/dungeon-bsp/internal/geometry"
)

type Segment struct {
	From geometry.Point `json:"from"`
	To   geometry.Point `json:"to"`
}

// Corridor joins two consecutive anchors with one straight segment or two forming an L.
type Corridor struct {
	From     geometry.Point   `json:"from"`
	To       geometry.Point   `json:"to"`
	Segments []Segment        `json:"segments"`
	Cells    []geometry.Point `json:"cells"`
}

func (c Corridor) Bent() bool {
	return len(c.Segments) == 2
}

type Router struct {
	grid *Grid
}

func NewRouter(grid *Grid) *Router {
	return &Router{grid: grid}
}

// Route connects anchors[i-1] to anchors[i] for every i. Corridor cells overwrite floor:
// where a corridor crosses a room the grid shows the corridor, the room itself is still
// described by its leaf.
func (r *Router) Route(anchors []geometry.Point) []Corridor {
	if len(anchors) < 2 {
		return nil
	}
	corridors := make([]Corridor, 0, len(anchors)-1)
	for i := 1; i < len(anchors); i++ {
		corridors = append(corridors, r.Connect(anchors[i-1], anchors[i]))
	}
	return corridors
}

// Connect carves from prev to cur. Anchors that differ on both axes meet at the corner
// (prev.X, cur.Y); each leg is drawn toward the corner.
func (r *Router) Connect(prev, cur geometry.Point) Corridor {
	var segments []Segment
	if prev.X != cur.X && prev.Y != cur.Y {
		corner := geometry.Point{X: prev.X, Y: cur.Y}
		segments = []Segment{{From: cur, To: corner}, {From: prev, To: corner}}
	} else {
		segments = []Segment{{From: cur, To: prev}}
	}

	seen := mapset.New[geometry.Point]()
	var cells []geometry.Point
	for _, s := range segments {
		geometry.VisitLine(s.From, s.To, func(p geometry.Point) {
			r.grid.Set(p.X, p.Y, CellCorridor)
			if !seen.Has(p) {
				seen.Put(p)
				cells = append(cells, p)
			}
		})
	}
	return Corridor{From: prev, To: cur, Segments: segments, Cells: cells}
}
