package geometry

import "testing"

func TestNewRegion_PanicsOnNonPositiveExtent(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 3}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %dx%d", dims[0], dims[1])
				}
			}()
			NewRegion(0, 0, dims[0], dims[1])
		}()
	}
}

func TestRegion_Center(t *testing.T) {
	r := NewRegion(2, 3, 5, 4)
	if got := r.Center(); got != (Point{4, 5}) {
		t.Fatalf("expected (4,5), got %v", got)
	}
}

func TestRegion_SplitAtTilesParent(t *testing.T) {
	parent := NewRegion(1, 2, 9, 7)
	for _, o := range []Orientation{Horizontal, Vertical} {
		a, b := parent.SplitAt(o, 3)
		if a.Area()+b.Area() != parent.Area() {
			t.Errorf("%s: areas %d+%d do not sum to %d", o, a.Area(), b.Area(), parent.Area())
		}
		if a.Overlaps(b) {
			t.Errorf("%s: children overlap: %+v %+v", o, a, b)
		}
		if !parent.ContainsRegion(a) || !parent.ContainsRegion(b) {
			t.Errorf("%s: children escape parent: %+v %+v", o, a, b)
		}
		if a.Extent(o) != 3 {
			t.Errorf("%s: expected first child extent 3, got %d", o, a.Extent(o))
		}
	}
}

func TestRegion_Contains(t *testing.T) {
	r := NewRegion(0, 0, 3, 2)
	if !r.Contains(Point{2, 1}) {
		t.Errorf("expected (2,1) inside")
	}
	if r.Contains(Point{3, 0}) || r.Contains(Point{0, 2}) {
		t.Errorf("expected far edges to be exclusive")
	}
}
