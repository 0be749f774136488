package dungeon

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid dungeon config")

// Defaults match the 50x50 level, room size 5 and split depth 5 the generator was tuned on.
const (
	DefaultWidth       = 50
	DefaultDepth       = 50
	DefaultMinRoomSize = 5
	DefaultMaxDepth    = 5

	// MaxCells caps Width*Depth for a single run.
	MaxCells = 1 << 22
)

type Config struct {
	Width       int         `json:"width"`
	Depth       int         `json:"depth"`
	MinRoomSize int         `json:"minRoomSize"`
	MaxDepth    int         `json:"maxDepth"`
	Seed        int64       `json:"seed"` // 0 picks a seed from the clock
	Carve       CarvePolicy `json:"carve"`
}

func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Depth:       DefaultDepth,
		MinRoomSize: DefaultMinRoomSize,
		MaxDepth:    DefaultMaxDepth,
		Carve:       CarveInterior,
	}
}

// Validate rejects configurations that cannot describe a grid at all. A minimum room size
// larger than the grid is valid and yields a single room.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Depth <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidConfig, c.Width, c.Depth)
	}
	if c.Width > MaxCells/c.Depth {
		return fmt.Errorf("%w: grid %dx%d exceeds %d cells", ErrInvalidConfig, c.Width, c.Depth, MaxCells)
	}
	if c.MinRoomSize < 1 {
		return fmt.Errorf("%w: minimum room size %d must be at least 1", ErrInvalidConfig, c.MinRoomSize)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max split depth %d must not be negative", ErrInvalidConfig, c.MaxDepth)
	}
	if c.Carve != CarveInterior && c.Carve != CarveFull {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, c.Carve)
	}
	return nil
}
