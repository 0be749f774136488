package dungeon

import (
	"testing"

	"github.com/Ko-stant/dungeon-bsp/internal/geometry"
)

func TestCarver_Interior(t *testing.T) {
	g := NewGrid(8, 6)
	anchor := NewCarver(g, CarveInterior).Carve(geometry.NewRegion(1, 1, 5, 4))

	if anchor != (geometry.Point{X: 3, Y: 3}) {
		t.Errorf("expected anchor (3,3), got %v", anchor)
	}
	if got := g.Count(CellFloor); got != 3*2 {
		t.Fatalf("expected 6 floor cells, got %d", got)
	}
	want := []string{
		"########",
		"########",
		"##...###",
		"##...###",
		"########",
		"########",
	}
	for y, row := range g.Rows() {
		if row != want[y] {
			t.Errorf("row %d: expected %q, got %q", y, want[y], row)
		}
	}
}

func TestCarver_Full(t *testing.T) {
	g := NewGrid(8, 6)
	NewCarver(g, CarveFull).Carve(geometry.NewRegion(1, 1, 5, 4))
	if got := g.Count(CellFloor); got != 5*4 {
		t.Fatalf("expected 20 floor cells, got %d", got)
	}
}

func TestCarver_ThinRegionCarvesNothing(t *testing.T) {
	g := NewGrid(4, 4)
	anchor := NewCarver(g, CarveInterior).Carve(geometry.NewRegion(0, 0, 2, 4))
	if g.Count(CellFloor) != 0 {
		t.Fatalf("expected no floor for a two-wide region")
	}
	if anchor != (geometry.Point{X: 1, Y: 2}) {
		t.Fatalf("expected anchor (1,2), got %v", anchor)
	}
}

func TestParseCarvePolicy(t *testing.T) {
	for in, want := range map[string]CarvePolicy{"": CarveInterior, "interior": CarveInterior, "full": CarveFull} {
		got, err := ParseCarvePolicy(in)
		if err != nil || got != want {
			t.Errorf("ParseCarvePolicy(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseCarvePolicy("stacked"); err == nil {
		t.Errorf("expected error for unknown policy")
	}
}
