package views

import (
	"fmt"

	"github.com/Ko-stant/dungeon-bsp/internal/protocol"
)

func metaLine(s protocol.Snapshot) string {
	return fmt.Sprintf("seed %d, %dx%d, %d rooms, %d corridors, carve %s",
		s.Seed, s.Width, s.Depth, s.Stats.Rooms, s.Stats.Corridors, s.Carve)
}

func cellClass(c byte) string {
	switch c {
	case '.':
		return "floor"
	case '+':
		return "corridor"
	}
	return "wall"
}
