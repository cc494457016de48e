// Package config holds the floor generation configuration. Values are
// validated once at the boundary: out-of-range fields are clamped into sane
// ranges, and only combinations that cannot host a single valid room are
// rejected with a ConfigurationError.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bounds applied by Normalize.
const (
	MinFloorDim = 16
	MaxFloorDim = 512

	MinCellFloor = 4
	MinCellCeil  = 256

	MaxDepthCeil = 10
	MaxInsetCeil = 8

	// MinRoomDim is the smallest room side the carver will ever produce.
	MinRoomDim = 2
)

// Generation drives one floor generation run.
type Generation struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"` // 0 = derive from the clock

	MinCellSize int `yaml:"min_cell_size"`
	MaxDepth    int `yaml:"max_depth"`

	MinInset int `yaml:"min_inset"`
	MaxInset int `yaml:"max_inset"`

	LoopChance float64 `yaml:"loop_chance"` // probability of accepting each extra edge

	LockCount     int     `yaml:"lock_count"`
	ShopCount     int     `yaml:"shop_count"`
	TreasureCount int     `yaml:"treasure_count"`
	EmptyChance   float64 `yaml:"empty_chance"` // fraction of side rooms left bare
}

// Default returns a Generation with reasonable mid-size floor settings.
func Default() Generation {
	return Generation{
		Width:         64,
		Height:        48,
		Seed:          0,
		MinCellSize:   8,
		MaxDepth:      4,
		MinInset:      1,
		MaxInset:      3,
		LoopChance:    0.15,
		LockCount:     1,
		ShopCount:     1,
		TreasureCount: 2,
		EmptyChance:   0.25,
	}
}

// ConfigurationError reports a configuration that cannot produce a floor
// with at least one valid room. It is surfaced before generation starts.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "config: " + e.Reason
}

// Load reads a Generation from a YAML file, merged over defaults.
// A missing file is not an error: defaults are returned.
func Load(path string) (Generation, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Normalize clamps every field into its sane range and rejects combinations
// that cannot host one valid room. Invalid individual values are clamped,
// never rejected; only a floor too small to exist at all is an error.
func (g Generation) Normalize() (Generation, error) {
	if g.Width <= 0 || g.Height <= 0 {
		return g, &ConfigurationError{
			Reason: fmt.Sprintf("floor %dx%d cannot host a room", g.Width, g.Height),
		}
	}

	g.Width = clampInt(g.Width, MinFloorDim, MaxFloorDim)
	g.Height = clampInt(g.Height, MinFloorDim, MaxFloorDim)
	g.MinCellSize = clampInt(g.MinCellSize, MinCellFloor, MinCellCeil)
	g.MaxDepth = clampInt(g.MaxDepth, 1, MaxDepthCeil)

	g.MinInset = clampInt(g.MinInset, 0, MaxInsetCeil)
	g.MaxInset = clampInt(g.MaxInset, g.MinInset, MaxInsetCeil)

	g.LoopChance = clampFloat(g.LoopChance, 0, 1)
	g.EmptyChance = clampFloat(g.EmptyChance, 0, 1)

	if g.LockCount < 0 {
		g.LockCount = 0
	}
	if g.ShopCount < 0 {
		g.ShopCount = 0
	}
	if g.TreasureCount < 0 {
		g.TreasureCount = 0
	}

	// Even at minimum inset the degenerate single-leaf floor must fit a
	// room of MinRoomDim per side.
	if g.Width-2*g.MinInset < MinRoomDim || g.Height-2*g.MinInset < MinRoomDim {
		return g, &ConfigurationError{
			Reason: fmt.Sprintf("inset %d leaves no room on a %dx%d floor",
				g.MinInset, g.Width, g.Height),
		}
	}

	return g, nil
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func clampFloat(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
