package protocol

import (
	"github.com/Ko-stant/dungeon-bsp/internal/dungeon"
	"github.com/Ko-stant/dungeon-bsp/internal/geometry"
)

const ProtocolVersion = "v1"

// Snapshot is the read-only view of one finished dungeon handed to clients.
// Rows use '#' for wall, '.' for floor and '+' for corridor.
type Snapshot struct {
	ProtocolVersion string           `json:"protocolVersion"`
	Seed            int64            `json:"seed"`
	Width           int              `json:"width"`
	Depth           int              `json:"depth"`
	MinRoomSize     int              `json:"minRoomSize"`
	MaxDepth        int              `json:"maxDepth"`
	Carve           string           `json:"carve"`
	Rows            []string         `json:"rows"`
	Anchors         []geometry.Point `json:"anchors"`
	Leaves          []dungeon.Leaf   `json:"leaves"`
	Corridors       []CorridorLite   `json:"corridors"`
	Stats           dungeon.Stats    `json:"stats"`
	Connected       bool             `json:"connected"`
}

type CorridorLite struct {
	From     geometry.Point    `json:"from"`
	To       geometry.Point    `json:"to"`
	Segments []dungeon.Segment `json:"segments"`
	Bent     bool              `json:"bent"`
}

func NewSnapshot(result *dungeon.Result) Snapshot {
	corridors := make([]CorridorLite, 0, len(result.Corridors))
	for _, c := range result.Corridors {
		corridors = append(corridors, CorridorLite{From: c.From, To: c.To, Segments: c.Segments, Bent: c.Bent()})
	}
	anchors := result.Anchors
	if anchors == nil {
		anchors = []geometry.Point{}
	}
	return Snapshot{
		ProtocolVersion: ProtocolVersion,
		Seed:            result.Seed,
		Width:           result.Grid.Width(),
		Depth:           result.Grid.Depth(),
		MinRoomSize:     result.Config.MinRoomSize,
		MaxDepth:        result.Config.MaxDepth,
		Carve:           result.Config.Carve.String(),
		Rows:            result.Grid.Rows(),
		Anchors:         anchors,
		Leaves:          result.Leaves,
		Corridors:       corridors,
		Stats:           result.Stats(),
		Connected:       result.Connected(),
	}
}
