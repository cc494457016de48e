// Package gen runs the floor generation pipeline: space partitioning, room
// carving, adjacency detection, connectivity resolution, corridor carving,
// room classification, and lock-and-key placement. The whole pipeline is a
// pure function of (config, seed): one seeded generator is threaded through
// every stage in a fixed order, so identical inputs always produce
// identical layouts.
package gen

import (
	"math/rand"
	"time"

	"github.com/duskhall/levelforge/internal/bsp"
	"github.com/duskhall/levelforge/internal/config"
	"github.com/duskhall/levelforge/internal/grid"
	"github.com/duskhall/levelforge/internal/layout"
	"github.com/duskhall/levelforge/internal/logger"
)

// Generator produces floor layouts from a normalized configuration.
// A Generator is not safe for concurrent use; generate each floor with its
// own Generator (each owns its own rand source and output structures).
type Generator struct {
	cfg  config.Generation
	seed int64
	rng  *rand.Rand
}

// NewGenerator validates and clamps the configuration and resolves the
// seed (0 picks one from the clock). A ConfigurationError is returned
// before any generation work happens.
func NewGenerator(cfg config.Generation) (*Generator, error) {
	normalized, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}

	seed := normalized.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:  normalized,
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}, nil
}

// Seed returns the seed actually used (relevant when the config asked for
// a random one).
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate runs the full pipeline and returns the finished floor.
// Non-fatal quality conditions (disconnected candidate graph, skipped
// corridors, skipped locks) are recorded as warnings on the Level, never
// as errors.
func (g *Generator) Generate() (*layout.Level, error) {
	cfg := g.cfg

	leaves := bsp.Partition(cfg.Width, cfg.Height, g.rng, cfg.MinCellSize, cfg.MaxDepth)
	logger.Debug("floor partitioned", "leaves", len(leaves), "seed", g.seed)

	lv := layout.NewLevel(cfg.Width, cfg.Height, g.seed)
	lv.Rooms = carveRooms(leaves, g.rng, cfg.MinInset, cfg.MaxInset)

	candidates := buildCandidateEdges(leaves)
	accepted, components := resolveConnectivity(candidates, len(lv.Rooms), cfg.LoopChance, g.rng)
	logger.Debug("connectivity resolved",
		"candidates", len(candidates), "accepted", len(accepted), "components", components)

	carveCorridors(lv, leaves, accepted, g.rng)
	addRoomTiles(lv)

	classify(lv, g.rng, cfg.ShopCount, cfg.TreasureCount, cfg.EmptyChance)

	if unreached := lv.UnreachedRooms(); len(unreached) > 0 {
		lv.Warn(layout.WarnDisconnectedGraph,
			"candidate graph does not span all rooms", unreached...)
		logger.Warning("floor has unreachable rooms", "rooms", unreached, "seed", g.seed)
	}

	placeLocks(lv, g.rng, cfg.LockCount)

	deriveWalls(lv)

	logger.Info("floor generated",
		"seed", g.seed,
		"rooms", len(lv.Rooms),
		"corridors", len(lv.Corridors),
		"locks", len(lv.Locks),
		"warnings", len(lv.Warnings))

	return lv, nil
}

// addRoomTiles unions every room rectangle into the floor tile set.
func addRoomTiles(lv *layout.Level) {
	for _, r := range lv.Rooms {
		for y := r.Bounds.Y; y < r.Bounds.Bottom(); y++ {
			for x := r.Bounds.X; x < r.Bounds.Right(); x++ {
				lv.FloorTiles[grid.Point{X: x, Y: y}] = true
			}
		}
	}
}

// deriveWalls marks every in-bounds tile that touches a floor or door tile
// (8-neighborhood) but is neither, giving the floor a solid outline.
func deriveWalls(lv *layout.Level) {
	for y := 0; y < lv.Height; y++ {
		for x := 0; x < lv.Width; x++ {
			p := grid.Point{X: x, Y: y}
			if lv.FloorTiles[p] || lv.DoorTiles[p] {
				continue
			}
			if touchesFloor(lv, p) {
				lv.WallTiles[p] = true
			}
		}
	}
}

func touchesFloor(lv *layout.Level, p grid.Point) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := grid.Point{X: p.X + dx, Y: p.Y + dy}
			if lv.FloorTiles[n] || lv.DoorTiles[n] {
				return true
			}
		}
	}
	return false
}
