package geometry

import (
	"reflect"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

func TestLine_Horizontal(t *testing.T) {
	got := Line(Point{0, 0}, Point{5, 0})
	want := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLine_Diagonal(t *testing.T) {
	got := Line(Point{0, 0}, Point{3, 3})
	want := []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLine_ZeroLength(t *testing.T) {
	got := Line(Point{4, 7}, Point{4, 7})
	if len(got) != 1 || got[0] != (Point{4, 7}) {
		t.Fatalf("expected single cell (4,7), got %v", got)
	}
}

func TestLine_VerticalUpwards(t *testing.T) {
	got := Line(Point{2, 3}, Point{2, 0})
	want := []Point{{2, 3}, {2, 2}, {2, 1}, {2, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLine_ShallowSlope(t *testing.T) {
	// Reference values from the integer Bresenham formulation.
	got := Line(Point{0, 0}, Point{2, 1})
	want := []Point{{0, 0}, {1, 1}, {2, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got = Line(Point{0, 0}, Point{5, 2})
	want = []Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLine_EightConnected(t *testing.T) {
	ends := []Point{{7, 3}, {-4, 9}, {3, -8}, {-6, -6}, {0, 11}, {12, 1}}
	for _, end := range ends {
		cells := Line(Point{0, 0}, end)
		if cells[0] != (Point{0, 0}) || cells[len(cells)-1] != end {
			t.Errorf("line to %v: endpoints not included: %v", end, cells)
			continue
		}
		want := max(abs(end.X), abs(end.Y)) + 1
		if len(cells) != want {
			t.Errorf("line to %v: expected %d cells, got %d", end, want, len(cells))
		}
		for i := 1; i < len(cells); i++ {
			dx := abs(cells[i].X - cells[i-1].X)
			dy := abs(cells[i].Y - cells[i-1].Y)
			if dx > 1 || dy > 1 || (dx == 0 && dy == 0) {
				t.Errorf("line to %v: gap or repeat between %v and %v", end, cells[i-1], cells[i])
			}
		}
	}
}

func TestLine_RoundTripAxisAlignedAndDiagonal(t *testing.T) {
	cases := []struct {
		a, b Point
	}{
		{Point{0, 0}, Point{5, 0}},
		{Point{3, 9}, Point{3, 1}},
		{Point{1, 1}, Point{6, 6}},
		{Point{8, 2}, Point{2, 8}},
		{Point{4, 4}, Point{4, 4}},
	}
	for _, tc := range cases {
		forward := mapset.New[Point]()
		for _, p := range Line(tc.a, tc.b) {
			forward.Put(p)
		}
		backward := Line(tc.b, tc.a)
		if forward.Size() != len(backward) {
			t.Errorf("%v<->%v: expected %d cells back, got %d", tc.a, tc.b, forward.Size(), len(backward))
			continue
		}
		for _, p := range backward {
			if !forward.Has(p) {
				t.Errorf("%v<->%v: reverse visits %v which forward does not", tc.a, tc.b, p)
			}
		}
	}
}

func TestLine_Deterministic(t *testing.T) {
	a, b := Point{-3, 4}, Point{11, -2}
	first := Line(a, b)
	for range 5 {
		if got := Line(a, b); !reflect.DeepEqual(got, first) {
			t.Fatalf("expected identical output, got %v then %v", first, got)
		}
	}
}

func TestVisitLine_MatchesLine(t *testing.T) {
	var visited []Point
	VisitLine(Point{1, 2}, Point{9, 5}, func(p Point) {
		visited = append(visited, p)
	})
	if !reflect.DeepEqual(visited, Line(Point{1, 2}, Point{9, 5})) {
		t.Fatalf("VisitLine and Line disagree: %v", visited)
	}
}
