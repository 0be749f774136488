package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Ko-stant/dungeon-bsp/internal/protocol"
	"github.com/Ko-stant/dungeon-bsp/internal/ws"
)

func main() {
	cfg, err := LoadServerConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	profiling := GetProfilingConfigFromEnv(os.Getenv)
	StartProfiling(profiling)

	logger := NewLogger()
	metrics := NewGenerationMetrics()
	service := NewInstrumentedService(GeneratorService{}, metrics)

	hub := ws.NewHub()
	handlers := NewTestableHandlers(service, NewBroadcaster(hub, NewSequenceGenerator()), logger, cfg.Dungeon)

	first, err := handlers.HandleRequestGenerate(protocol.RequestGenerate{Seed: cfg.Dungeon.Seed})
	if err != nil {
		log.Fatalf("Failed to generate initial dungeon: %v", err)
	}
	log.Printf("initial dungeon seed=%d (%s carve, min room %d, max depth %d)",
		first.Seed, first.Carve, first.MinRoomSize, first.MaxDepth)

	if profiling.Enabled {
		StartMetricsReporting(metrics, profiling.ReportInterval, logger)
	}

	log.Printf("listening on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, newMux(handlers, hub)))
}
