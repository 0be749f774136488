package protocol

import (
	"encoding/json"

	"github.com/Ko-stant/dungeon-bsp/internal/dungeon"
)

const IntentRequestGenerate = "RequestGenerate"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RequestGenerate asks for a new dungeon. Zero or missing fields keep the server defaults;
// MaxDepth is a pointer because a depth of 0 is a meaningful request.
type RequestGenerate struct {
	Width       int    `json:"width,omitempty"`
	Depth       int    `json:"depth,omitempty"`
	MinRoomSize int    `json:"minRoomSize,omitempty"`
	MaxDepth    *int   `json:"maxDepth,omitempty"`
	Seed        int64  `json:"seed,omitempty"`
	Carve       string `json:"carve,omitempty"`
}

// ApplyTo overlays the request on base. The result is not validated.
func (r RequestGenerate) ApplyTo(base dungeon.Config) (dungeon.Config, error) {
	cfg := base
	if r.Width != 0 {
		cfg.Width = r.Width
	}
	if r.Depth != 0 {
		cfg.Depth = r.Depth
	}
	if r.MinRoomSize != 0 {
		cfg.MinRoomSize = r.MinRoomSize
	}
	if r.MaxDepth != nil {
		cfg.MaxDepth = *r.MaxDepth
	}
	cfg.Seed = r.Seed
	if r.Carve != "" {
		policy, err := dungeon.ParseCarvePolicy(r.Carve)
		if err != nil {
			return base, err
		}
		cfg.Carve = policy
	}
	return cfg, nil
}
