package geometry

import "fmt"

type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Region is an axis-aligned rectangle of cells. Depth runs along y.
type Region struct {
	Position Point `json:"position"`
	Width    int   `json:"width"`
	Depth    int   `json:"depth"`
}

// NewRegion panics on non-positive extents; such a region can only come from a bug in the caller.
func NewRegion(x, y, width, depth int) Region {
	if width <= 0 || depth <= 0 {
		panic(fmt.Sprintf("geometry: region %dx%d at (%d,%d) has non-positive extent", width, depth, x, y))
	}
	return Region{Position: Point{X: x, Y: y}, Width: width, Depth: depth}
}

func (r Region) Area() int {
	return r.Width * r.Depth
}

// Center uses integer division, so even extents round toward the far edge.
func (r Region) Center() Point {
	return Point{X: r.Position.X + r.Width/2, Y: r.Position.Y + r.Depth/2}
}

func (r Region) Contains(p Point) bool {
	return p.X >= r.Position.X && p.X < r.Position.X+r.Width &&
		p.Y >= r.Position.Y && p.Y < r.Position.Y+r.Depth
}

// ContainsRegion reports whether o lies fully inside r.
func (r Region) ContainsRegion(o Region) bool {
	return o.Position.X >= r.Position.X && o.Position.Y >= r.Position.Y &&
		o.Position.X+o.Width <= r.Position.X+r.Width &&
		o.Position.Y+o.Depth <= r.Position.Y+r.Depth
}

func (r Region) Overlaps(o Region) bool {
	return r.Position.X < o.Position.X+o.Width && o.Position.X < r.Position.X+r.Width &&
		r.Position.Y < o.Position.Y+o.Depth && o.Position.Y < r.Position.Y+r.Depth
}

// Extent returns the size along the axis that a split of the given orientation divides.
// A horizontal cut divides the depth, a vertical cut divides the width.
func (r Region) Extent(o Orientation) int {
	if o == Horizontal {
		return r.Depth
	}
	return r.Width
}

// SplitAt cuts r so that the first part has extent offset along the split axis.
func (r Region) SplitAt(o Orientation, offset int) (Region, Region) {
	x, y := r.Position.X, r.Position.Y
	if o == Horizontal {
		return NewRegion(x, y, r.Width, offset),
			NewRegion(x, y+offset, r.Width, r.Depth-offset)
	}
	return NewRegion(x, y, offset, r.Depth),
		NewRegion(x+offset, y, r.Width-offset, r.Depth)
}

type RegionMap struct {
	Width         int
	Height        int
	TileRegionIDs []int
	RegionsCount  int
}
