package main

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"

	"github.com/Ko-stant/dungeon-bsp/internal/dungeon"
	"github.com/Ko-stant/dungeon-bsp/internal/protocol"
	"github.com/Ko-stant/dungeon-bsp/internal/ws"
)

// BroadcasterImpl implements Broadcaster using WebSocket hub
type BroadcasterImpl struct {
	hub      *ws.Hub
	sequence SequenceGenerator
}

func NewBroadcaster(hub *ws.Hub, sequence SequenceGenerator) *BroadcasterImpl {
	return &BroadcasterImpl{
		hub:      hub,
		sequence: sequence,
	}
}

func (b *BroadcasterImpl) BroadcastEvent(eventType string, payload any) {
	envelope := protocol.PatchEnvelope{
		Sequence: b.sequence.Next(),
		Type:     eventType,
		Payload:  payload,
	}
	n, err := b.hub.BroadcastJSON(context.Background(), envelope)
	if err != nil {
		log.Printf("failed to marshal %s: %v", eventType, err)
		return
	}
	log.Printf("broadcast %s #%d to %d viewers", eventType, envelope.Sequence, n)
}

// LoggerImpl implements Logger using standard log package
type LoggerImpl struct{}

func NewLogger() *LoggerImpl {
	return &LoggerImpl{}
}

func (l *LoggerImpl) Printf(format string, v ...any) {
	log.Printf(format, v...)
}

// SequenceGeneratorImpl implements SequenceGenerator using atomic counter
type SequenceGeneratorImpl struct {
	counter uint64
}

func NewSequenceGenerator() *SequenceGeneratorImpl {
	return &SequenceGeneratorImpl{}
}

func (sg *SequenceGeneratorImpl) Next() uint64 {
	return atomic.AddUint64(&sg.counter, 1)
}

// GeneratorService runs every request on a fresh generator, so requests never share a grid.
type GeneratorService struct{}

func (GeneratorService) Generate(cfg dungeon.Config) (*dungeon.Result, error) {
	return dungeon.Generate(cfg)
}

// TestableHandlers uses dependency injection for better testability
type TestableHandlers struct {
	service     DungeonService
	broadcaster Broadcaster
	logger      Logger
	defaults    dungeon.Config

	mu      sync.RWMutex
	current *protocol.Snapshot
}

func NewTestableHandlers(service DungeonService, broadcaster Broadcaster, logger Logger, defaults dungeon.Config) *TestableHandlers {
	return &TestableHandlers{
		service:     service,
		broadcaster: broadcaster,
		logger:      logger,
		defaults:    defaults,
	}
}

// Generate builds a snapshot for req without publishing it.
func (h *TestableHandlers) Generate(req protocol.RequestGenerate) (protocol.Snapshot, error) {
	cfg, err := req.ApplyTo(h.defaults)
	if err != nil {
		return protocol.Snapshot{}, err
	}
	result, err := h.service.Generate(cfg)
	if err != nil {
		return protocol.Snapshot{}, err
	}
	return protocol.NewSnapshot(result), nil
}

// HandleRequestGenerate generates, keeps the result as the current dungeon and pushes it to viewers.
func (h *TestableHandlers) HandleRequestGenerate(req protocol.RequestGenerate) (protocol.Snapshot, error) {
	snapshot, err := h.Generate(req)
	if err != nil {
		h.logger.Printf("Generate failed: %v", err)
		return protocol.Snapshot{}, err
	}
	h.logger.Printf("generated seed=%d %dx%d rooms=%d corridors=%d",
		snapshot.Seed, snapshot.Width, snapshot.Depth, snapshot.Stats.Rooms, snapshot.Stats.Corridors)

	h.mu.Lock()
	h.current = &snapshot
	h.mu.Unlock()

	h.broadcaster.BroadcastEvent(protocol.PatchDungeonGenerated, protocol.DungeonGenerated{Snapshot: snapshot})
	return snapshot, nil
}

func (h *TestableHandlers) Current() (protocol.Snapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return protocol.Snapshot{}, false
	}
	return *h.current, true
}

// HandleIntent decodes one client message and dispatches it.
func (h *TestableHandlers) HandleIntent(data []byte) error {
	var env protocol.IntentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return badRequest("malformed intent: %v", err)
	}
	switch env.Type {
	case protocol.IntentRequestGenerate:
		var req protocol.RequestGenerate
		if len(env.Payload) > 0 {
			if err := json.Unmarshal(env.Payload, &req); err != nil {
				return badRequest("malformed %s payload: %v", env.Type, err)
			}
		}
		_, err := h.HandleRequestGenerate(req)
		return err
	default:
		h.logger.Printf("unknown intent %q", env.Type)
		return &RequestError{Code: CodeUnknownIntent, Message: "unknown intent " + env.Type}
	}
}
