package dungeon

import (
	"math/rand"
	"time"

	"github.com/Ko-stant/dungeon-bsp/internal/geometry"
)

// Generator builds dungeons from one configuration and one random stream.
// Successive Generate calls keep drawing from the same stream.
type Generator struct {
	cfg  Config
	seed int64
	rng  Source
}

func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.SetSeed(seed)
	return g, nil
}

// NewGeneratorWithSource uses rng as is; the reported seed is cfg.Seed.
func NewGeneratorWithSource(cfg Config, rng Source) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, seed: cfg.Seed, rng: rng}, nil
}

// SetSeed restarts the random stream for reproducible dungeons.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

func (g *Generator) Seed() int64    { return g.seed }
func (g *Generator) Config() Config { return g.cfg }

type Result struct {
	Seed      int64            `json:"seed"`
	Config    Config           `json:"config"`
	Grid      *Grid            `json:"-"`
	Root      *Node            `json:"-"`
	Leaves    []Leaf           `json:"leaves"`
	Anchors   []geometry.Point `json:"anchors"`
	Corridors []Corridor       `json:"corridors"`
}

// Generate runs one full pass: partition, carve a room per leaf, then route corridors
// between the anchors in the order the leaves were reached.
func (g *Generator) Generate() *Result {
	grid := NewGrid(g.cfg.Width, g.cfg.Depth)
	b := &builder{
		splitter: NewSplitter(g.cfg.MinRoomSize, g.rng),
		carver:   NewCarver(grid, g.cfg.Carve),
	}
	root := &Node{Region: grid.Bounds()}
	b.build(root, g.cfg.MaxDepth, 0)

	cfg := g.cfg
	cfg.Seed = g.seed
	return &Result{
		Seed:      g.seed,
		Config:    cfg,
		Grid:      grid,
		Root:      root,
		Leaves:    b.leaves,
		Anchors:   b.anchors,
		Corridors: NewRouter(grid).Route(b.anchors),
	}
}

// Generate is shorthand for NewGenerator(cfg) followed by one Generate call.
func Generate(cfg Config) (*Result, error) {
	g, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}
	return g.Generate(), nil
}

type builder struct {
	splitter *Splitter
	carver   *Carver
	leaves   []Leaf
	anchors  []geometry.Point
}

func (b *builder) build(node *Node, splitDepth, level int) {
	if splitDepth <= 0 {
		b.commit(node, level)
		return
	}
	cut, ok := b.splitter.Split(node.Region)
	if !ok {
		b.commit(node, level)
		return
	}
	node.Cut = cut.Orientation
	node.Left = &Node{Region: cut.Left}
	node.Right = &Node{Region: cut.Right}
	b.build(node.Left, splitDepth-1, level+1)
	b.build(node.Right, splitDepth-1, level+1)
}

func (b *builder) commit(node *Node, level int) {
	anchor := b.carver.Carve(node.Region)
	b.leaves = append(b.leaves, Leaf{Region: node.Region, Anchor: anchor, Level: level})
	b.anchors = append(b.anchors, anchor)
}

type Stats struct {
	Rooms         int `json:"rooms"`
	Corridors     int `json:"corridors"`
	FloorCells    int `json:"floorCells"`
	CorridorCells int `json:"corridorCells"`
	WallCells     int `json:"wallCells"`
}

func (r *Result) Stats() Stats {
	return Stats{
		Rooms:         len(r.Leaves),
		Corridors:     len(r.Corridors),
		FloorCells:    r.Grid.Count(CellFloor),
		CorridorCells: r.Grid.Count(CellCorridor),
		WallCells:     r.Grid.Count(CellWall),
	}
}

// Connected reports whether every anchor can reach every other over floor and corridor
// cells. A single room counts as connected even if it was too small to carve.
func (r *Result) Connected() bool {
	if len(r.Anchors) < 2 {
		return true
	}
	return geometry.Connected(r.Grid.RegionMap(), r.Anchors)
}
