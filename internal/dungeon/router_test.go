package dungeon

import (
	"reflect"
	"testing"

	"github.com/Ko-stant/dungeon-bsp/internal/geometry"
)

func TestRouter_StraightCorridor(t *testing.T) {
	g := NewGrid(8, 3)
	c := NewRouter(g).Connect(geometry.Point{X: 1, Y: 1}, geometry.Point{X: 5, Y: 1})

	if c.Bent() {
		t.Fatalf("expected a straight corridor")
	}
	want := []geometry.Point{{X: 5, Y: 1}, {X: 4, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	if !reflect.DeepEqual(c.Cells, want) {
		t.Fatalf("expected %v, got %v", want, c.Cells)
	}
	if g.Rows()[1] != "#+++++##" {
		t.Fatalf("unexpected row %q", g.Rows()[1])
	}
}

func TestRouter_LShapedCorridorUsesPreviousColumn(t *testing.T) {
	g := NewGrid(6, 5)
	prev := geometry.Point{X: 1, Y: 1}
	cur := geometry.Point{X: 4, Y: 3}

	c := NewRouter(g).Connect(prev, cur)

	corner := geometry.Point{X: 1, Y: 3}
	if !c.Bent() || c.Segments[0] != (Segment{From: cur, To: corner}) || c.Segments[1] != (Segment{From: prev, To: corner}) {
		t.Fatalf("unexpected segments %+v", c.Segments)
	}
	if len(c.Cells) != 6 {
		t.Fatalf("expected 6 distinct cells with the corner counted once, got %v", c.Cells)
	}
	want := []string{
		"######",
		"#+####",
		"#+####",
		"#++++#",
		"######",
	}
	for y, row := range g.Rows() {
		if row != want[y] {
			t.Errorf("row %d: expected %q, got %q", y, want[y], row)
		}
	}
}

func TestRouter_OverwritesFloor(t *testing.T) {
	g := NewGrid(5, 3)
	NewCarver(g, CarveFull).Carve(geometry.NewRegion(0, 0, 5, 3))
	NewRouter(g).Connect(geometry.Point{X: 0, Y: 1}, geometry.Point{X: 4, Y: 1})
	if g.Count(CellCorridor) != 5 || g.Count(CellFloor) != 10 {
		t.Fatalf("expected corridor over the middle row, got\n%s", g)
	}
}

func TestRouter_RouteConsecutivePairs(t *testing.T) {
	g := NewGrid(10, 10)
	anchors := []geometry.Point{{X: 1, Y: 1}, {X: 1, Y: 5}, {X: 7, Y: 8}}

	corridors := NewRouter(g).Route(anchors)

	if len(corridors) != 2 {
		t.Fatalf("expected 2 corridors, got %d", len(corridors))
	}
	for i, c := range corridors {
		if c.From != anchors[i] || c.To != anchors[i+1] {
			t.Errorf("corridor %d joins %v->%v", i, c.From, c.To)
		}
	}
	if NewRouter(g).Route(anchors[:1]) != nil {
		t.Errorf("expected no corridors for a single anchor")
	}
}
