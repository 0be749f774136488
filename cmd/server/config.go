package main

import (
	"fmt"
	"strconv"

	"github.com/Ko-stant/dungeon-bsp/internal/dungeon"
)

// ServerConfig is read from the environment once at startup.
type ServerConfig struct {
	Port    string
	Dungeon dungeon.Config
}

// LoadServerConfig reads APP_PORT and the DUNGEON_* variables; unset variables keep defaults.
func LoadServerConfig(getenv func(string) string) (ServerConfig, error) {
	cfg := ServerConfig{
		Port:    getenv("APP_PORT"),
		Dungeon: dungeon.DefaultConfig(),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"DUNGEON_WIDTH", &cfg.Dungeon.Width},
		{"DUNGEON_DEPTH", &cfg.Dungeon.Depth},
		{"DUNGEON_MIN_ROOM", &cfg.Dungeon.MinRoomSize},
		{"DUNGEON_MAX_DEPTH", &cfg.Dungeon.MaxDepth},
	}
	for _, v := range ints {
		raw := getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = n
	}

	if raw := getenv("DUNGEON_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("DUNGEON_SEED: %w", err)
		}
		cfg.Dungeon.Seed = seed
	}

	policy, err := dungeon.ParseCarvePolicy(getenv("DUNGEON_CARVE"))
	if err != nil {
		return ServerConfig{}, fmt.Errorf("DUNGEON_CARVE: %w", err)
	}
	cfg.Dungeon.Carve = policy

	if err := cfg.Dungeon.Validate(); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}
