package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/Ko-stant/dungeon-bsp/internal/dungeon"
)

var (
	width    = flag.Int("width", 50, "grid width in cells")
	depth    = flag.Int("depth", 50, "grid depth in cells")
	minRoom  = flag.Int("min-room", 5, "minimum room extent")
	maxDepth = flag.Int("max-depth", 5, "maximum split depth")
	seed     = flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	carve    = flag.String("carve", "interior", "room carve policy: interior or full")
)

func main() {
	flag.Parse()

	policy, err := dungeon.ParseCarvePolicy(*carve)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg := dungeon.Config{
		Width:       *width,
		Depth:       *depth,
		MinRoomSize: *minRoom,
		MaxDepth:    *maxDepth,
		Seed:        *seed,
		Carve:       policy,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}

	v, err := NewViewer(screen, cfg)
	if err != nil {
		screen.Fini()
		log.Fatalf("generate: %v", err)
	}
	v.Draw()
	for v.HandleEvent(screen.PollEvent()) {
		v.Draw()
	}
	screen.Fini()
	fmt.Printf("last seed: %d\n", v.Result().Seed)
}
