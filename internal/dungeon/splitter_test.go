package dungeon

import (
	"math/rand"
	"testing"

	"github.com/Ko-stant/dungeon-bsp/internal/geometry"
)

// scriptedSource replays fixed draws and records the order they were requested in.
type scriptedSource struct {
	floats []float64
	ints   []int
	calls  []string
}

func (s *scriptedSource) Float64() float64 {
	s.calls = append(s.calls, "Float64")
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Intn(n int) int {
	s.calls = append(s.calls, "Intn")
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		panic("scripted Intn value out of range")
	}
	return v
}

func TestSplitter_RejectsWhenEitherSideAtMinimum(t *testing.T) {
	src := &scriptedSource{}
	s := NewSplitter(5, src)

	for _, r := range []geometry.Region{
		geometry.NewRegion(0, 0, 5, 40),
		geometry.NewRegion(0, 0, 40, 5),
		geometry.NewRegion(0, 0, 4, 4),
	} {
		if _, ok := s.Split(r); ok {
			t.Errorf("expected %+v to be rejected", r)
		}
	}
	if len(src.calls) != 0 {
		t.Fatalf("expected no random draws for undersized regions, got %v", src.calls)
	}
}

func TestSplitter_DrawOrderOrientationThenOffset(t *testing.T) {
	// Arrange
	src := &scriptedSource{floats: []float64{0.9}, ints: []int{2}}
	s := NewSplitter(3, src)

	// Act
	cut, ok := s.Split(geometry.NewRegion(0, 0, 10, 10))

	// Assert
	if !ok {
		t.Fatalf("expected 10x10 with minimum 3 to split")
	}
	if got := src.calls; len(got) != 2 || got[0] != "Float64" || got[1] != "Intn" {
		t.Fatalf("expected Float64 then Intn, got %v", got)
	}
	if cut.Orientation != geometry.Horizontal {
		t.Errorf("expected horizontal cut for draw 0.9, got %s", cut.Orientation)
	}
	if cut.Offset != 5 {
		t.Errorf("expected offset 3+2=5, got %d", cut.Offset)
	}
	if cut.Left != geometry.NewRegion(0, 0, 10, 5) || cut.Right != geometry.NewRegion(0, 5, 10, 5) {
		t.Errorf("unexpected children %+v %+v", cut.Left, cut.Right)
	}
}

func TestSplitter_LowDrawSplitsVertically(t *testing.T) {
	src := &scriptedSource{floats: []float64{0.5}, ints: []int{0}}
	cut, ok := NewSplitter(3, src).Split(geometry.NewRegion(2, 2, 10, 10))
	if !ok {
		t.Fatalf("expected split")
	}
	if cut.Orientation != geometry.Vertical {
		t.Errorf("expected vertical cut for draw 0.5, got %s", cut.Orientation)
	}
	if cut.Left != geometry.NewRegion(2, 2, 3, 10) || cut.Right != geometry.NewRegion(5, 2, 7, 10) {
		t.Errorf("unexpected children %+v %+v", cut.Left, cut.Right)
	}
}

func TestSplitter_AspectOverride(t *testing.T) {
	tests := []struct {
		name   string
		region geometry.Region
		draw   float64
		want   geometry.Orientation
	}{
		{"wide forces vertical", geometry.NewRegion(0, 0, 12, 10), 0.99, geometry.Vertical},
		{"tall forces horizontal", geometry.NewRegion(0, 0, 10, 12), 0.01, geometry.Horizontal},
		{"just under ratio keeps draw", geometry.NewRegion(0, 0, 11, 10), 0.99, geometry.Horizontal},
		{"square keeps draw", geometry.NewRegion(0, 0, 10, 10), 0.01, geometry.Vertical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &scriptedSource{floats: []float64{tt.draw}, ints: []int{0}}
			cut, ok := NewSplitter(3, src).Split(tt.region)
			if !ok {
				t.Fatalf("expected split")
			}
			if cut.Orientation != tt.want {
				t.Errorf("expected %s, got %s", tt.want, cut.Orientation)
			}
			if len(src.calls) != 2 {
				t.Errorf("expected orientation draw even when overridden, got %v", src.calls)
			}
		})
	}
}

func TestSplitter_RejectsWhenNoOffsetRange(t *testing.T) {
	// 10 - 5 = 5 is not greater than 5, so the cut is refused after the orientation draw.
	src := &scriptedSource{floats: []float64{0.1}}
	if _, ok := NewSplitter(5, src).Split(geometry.NewRegion(0, 0, 10, 10)); ok {
		t.Fatalf("expected rejection when max offset equals the minimum")
	}
	if len(src.calls) != 1 || src.calls[0] != "Float64" {
		t.Fatalf("expected only the orientation draw, got %v", src.calls)
	}
}

func TestSplitter_ChildrenTileParentAndRespectMinimum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const m = 4
	s := NewSplitter(m, rng)
	for range 500 {
		parent := geometry.NewRegion(rng.Intn(20), rng.Intn(20), 1+rng.Intn(60), 1+rng.Intn(60))
		cut, ok := s.Split(parent)
		if !ok {
			continue
		}
		if cut.Left.Area()+cut.Right.Area() != parent.Area() || cut.Left.Overlaps(cut.Right) {
			t.Fatalf("children %+v %+v do not tile %+v", cut.Left, cut.Right, parent)
		}
		if !parent.ContainsRegion(cut.Left) || !parent.ContainsRegion(cut.Right) {
			t.Fatalf("children escape %+v", parent)
		}
		if cut.Left.Extent(cut.Orientation) < m || cut.Right.Extent(cut.Orientation) < m {
			t.Fatalf("child below minimum along %s: %+v %+v", cut.Orientation, cut.Left, cut.Right)
		}
	}
}
