package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"runtime"
	"sync"
	"time"

	"github.com/Ko-stant/dungeon-bsp/internal/dungeon"
)

// ProfilingConfig holds configuration for profiling
type ProfilingConfig struct {
	Enabled        bool
	Port           string
	ReportInterval time.Duration
}

// StartProfiling starts the pprof server when enabled
func StartProfiling(config ProfilingConfig) {
	if !config.Enabled {
		return
	}

	runtime.SetBlockProfileRate(1)
	runtime.SetMutexProfileFraction(1)

	if config.Port != "" {
		go func() {
			log.Printf("Starting pprof server on :%s", config.Port)
			log.Printf("CPU profile: http://localhost:%s/debug/pprof/profile", config.Port)
			log.Printf("Heap profile: http://localhost:%s/debug/pprof/heap", config.Port)

			if err := http.ListenAndServe(":"+config.Port, nil); err != nil {
				log.Printf("pprof server failed: %v", err)
			}
		}()
	}
}

// GetProfilingConfigFromEnv creates profiling config from environment variables
func GetProfilingConfigFromEnv(getenv func(string) string) ProfilingConfig {
	port := getenv("PPROF_PORT")
	if port == "" {
		port = "42069"
	}
	interval := time.Minute
	if raw := getenv("METRICS_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			interval = d
		}
	}

	return ProfilingConfig{
		Enabled:        getenv("ENABLE_PROFILING") == "true",
		Port:           port,
		ReportInterval: interval,
	}
}

// GenerationMetrics tracks generation throughput. Safe for concurrent requests.
type GenerationMetrics struct {
	mu              sync.Mutex
	Generations     int64
	Failures        int64
	RoomsGenerated  int64
	AvgGenerateTime time.Duration
	PeakGoroutines  int
	PeakMemoryUsage uint64
	StartTime       time.Time
}

func NewGenerationMetrics() *GenerationMetrics {
	return &GenerationMetrics{
		StartTime: time.Now(),
	}
}

// TrackGeneration records one successful run
func (m *GenerationMetrics) TrackGeneration(duration time.Duration, rooms int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Generations++
	m.RoomsGenerated += int64(rooms)
	m.AvgGenerateTime = (m.AvgGenerateTime*time.Duration(m.Generations-1) + duration) / time.Duration(m.Generations)
}

func (m *GenerationMetrics) TrackFailure() {
	m.mu.Lock()
	m.Failures++
	m.mu.Unlock()
}

// UpdateSystemMetrics updates system-level metrics
func (m *GenerationMetrics) UpdateSystemMetrics() {
	goroutines := runtime.NumGoroutine()
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	m.mu.Lock()
	defer m.mu.Unlock()
	if goroutines > m.PeakGoroutines {
		m.PeakGoroutines = goroutines
	}
	if ms.Alloc > m.PeakMemoryUsage {
		m.PeakMemoryUsage = ms.Alloc
	}
}

// LogMetrics logs current metrics
func (m *GenerationMetrics) LogMetrics(logger Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	uptime := time.Since(m.StartTime)
	logger.Printf("=== Generation Metrics ===")
	logger.Printf("Uptime: %v", uptime)
	logger.Printf("Generations: %d (failed: %d)", m.Generations, m.Failures)
	logger.Printf("Rooms generated: %d", m.RoomsGenerated)
	logger.Printf("Average generate time: %v", m.AvgGenerateTime)
	logger.Printf("Peak goroutines: %d", m.PeakGoroutines)
	logger.Printf("Peak memory usage: %d bytes", m.PeakMemoryUsage)
}

// InstrumentedService wraps a DungeonService with metrics tracking
type InstrumentedService struct {
	service DungeonService
	metrics *GenerationMetrics
}

func NewInstrumentedService(service DungeonService, metrics *GenerationMetrics) *InstrumentedService {
	return &InstrumentedService{
		service: service,
		metrics: metrics,
	}
}

func (s *InstrumentedService) Generate(cfg dungeon.Config) (*dungeon.Result, error) {
	start := time.Now()
	result, err := s.service.Generate(cfg)
	if err != nil {
		s.metrics.TrackFailure()
		return nil, err
	}
	s.metrics.TrackGeneration(time.Since(start), len(result.Leaves))
	s.metrics.UpdateSystemMetrics()
	return result, nil
}

// StartMetricsReporting starts periodic metrics reporting
func StartMetricsReporting(metrics *GenerationMetrics, interval time.Duration, logger Logger) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			metrics.LogMetrics(logger)
		}
	}()
}
