package dungeon

import "github.com/Ko-stant/dungeon-bsp/internal/geometry"

// A region whose long side is at least 6/5 of its short side is always cut across the long side.
const (
	aspectNum = 6
	aspectDen = 5
)

// Source is the slice of *rand.Rand the generator draws from.
type Source interface {
	Float64() float64
	Intn(n int) int
}

type Cut struct {
	Orientation geometry.Orientation
	Offset      int
	Left        geometry.Region
	Right       geometry.Region
}

type Splitter struct {
	MinSize int
	rng     Source
}

func NewSplitter(minSize int, rng Source) *Splitter {
	return &Splitter{MinSize: minSize, rng: rng}
}

// Split decides whether r divides and where. The orientation draw happens before the
// aspect override and the size check so a given seed consumes the same stream of numbers
// regardless of which branch wins; the offset draw only happens for accepted cuts.
func (s *Splitter) Split(r geometry.Region) (Cut, bool) {
	m := s.MinSize
	if r.Width <= m || r.Depth <= m {
		return Cut{}, false
	}

	orientation := geometry.Vertical
	if s.rng.Float64() > 0.5 {
		orientation = geometry.Horizontal
	}
	if r.Width*aspectDen >= r.Depth*aspectNum {
		orientation = geometry.Vertical
	} else if r.Depth*aspectDen >= r.Width*aspectNum {
		orientation = geometry.Horizontal
	}

	// The draw below is half-open, so an extent of exactly 2m is rejected even though
	// two children of m would fit.
	maxOffset := r.Extent(orientation) - m
	if maxOffset <= m {
		return Cut{}, false
	}

	offset := m + s.rng.Intn(maxOffset-m)
	left, right := r.SplitAt(orientation, offset)
	return Cut{Orientation: orientation, Offset: offset, Left: left, Right: right}, true
}
