package dungeon

import (
	"fmt"

	"github.com/Ko-stant/dungeon-bsp/internal/geometry"
)

// CarvePolicy selects which cells of a leaf region become floor.
type CarvePolicy int

const (
	// CarveInterior leaves a one-cell wall ring inside every leaf, so neighbouring rooms
	// never share a floor edge.
	CarveInterior CarvePolicy = iota
	// CarveFull floors the whole leaf region.
	CarveFull
)

func (p CarvePolicy) String() string {
	switch p {
	case CarveInterior:
		return "interior"
	case CarveFull:
		return "full"
	}
	return fmt.Sprintf("CarvePolicy(%d)", int(p))
}

func (p CarvePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *CarvePolicy) UnmarshalText(text []byte) error {
	v, err := ParseCarvePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func ParseCarvePolicy(s string) (CarvePolicy, error) {
	switch s {
	case "", "interior":
		return CarveInterior, nil
	case "full":
		return CarveFull, nil
	}
	return 0, fmt.Errorf("%w: unknown carve policy %q", ErrInvalidConfig, s)
}

// Carver is the only writer of floor cells.
type Carver struct {
	Policy CarvePolicy
	grid   *Grid
}

func NewCarver(grid *Grid, policy CarvePolicy) *Carver {
	return &Carver{Policy: policy, grid: grid}
}

// Carve floors the room for r and returns its anchor, the region center.
func (c *Carver) Carve(r geometry.Region) geometry.Point {
	inset := 1
	if c.Policy == CarveFull {
		inset = 0
	}
	x0, y0 := r.Position.X+inset, r.Position.Y+inset
	x1, y1 := r.Position.X+r.Width-inset, r.Position.Y+r.Depth-inset
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.grid.Set(x, y, CellFloor)
		}
	}
	return r.Center()
}
