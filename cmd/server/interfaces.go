package main

import "github.com/Ko-stant/dungeon-bsp/internal/dungeon"

// Broadcaster interface for WebSocket communication
type Broadcaster interface {
	BroadcastEvent(eventType string, payload any)
}

// Logger interface for logging abstraction
type Logger interface {
	Printf(format string, v ...any)
}

// SequenceGenerator interface for sequence number generation
type SequenceGenerator interface {
	Next() uint64
}

// DungeonService runs one generation for a validated or unvalidated config.
type DungeonService interface {
	Generate(cfg dungeon.Config) (*dungeon.Result, error)
}
