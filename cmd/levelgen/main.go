package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/duskhall/levelforge/internal/config"
	"github.com/duskhall/levelforge/internal/gen"
	"github.com/duskhall/levelforge/internal/grid"
	"github.com/duskhall/levelforge/internal/layout"
	"github.com/duskhall/levelforge/internal/logger"
	"github.com/duskhall/levelforge/internal/store"
)

func main() {
	configFile := flag.String("config", "data/levelforge.yaml", "Path to generation config file")
	loggingFile := flag.String("logging", "data/logging.yaml", "Path to logging config file")
	width := flag.Int("width", 0, "Floor width (overrides config)")
	height := flag.Int("height", 0, "Floor height (overrides config)")
	seed := flag.Int64("seed", 0, "Generation seed (0 = random)")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	recordDB := flag.String("record", "", "SQLite database to record the run in (empty = no recording)")
	showLegend := flag.Bool("legend", true, "Show legend")
	flag.Parse()

	logCfg, err := logger.LoadConfig(*loggingFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading logging config: %v\n", err)
		os.Exit(1)
	}
	logger.Initialize(logCfg)

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	g, err := gen.NewGenerator(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lv, err := g.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating floor: %v\n", err)
		os.Exit(1)
	}

	var output strings.Builder
	output.WriteString(fmt.Sprintf("Floor %dx%d (Seed: %d, Rooms: %d)\n",
		lv.Width, lv.Height, lv.Seed, len(lv.Rooms)))
	output.WriteString(strings.Repeat("=", 60) + "\n\n")

	renderFloor(&output, lv)
	output.WriteString("\n")
	renderRooms(&output, lv)

	if len(lv.Warnings) > 0 {
		output.WriteString("\nWarnings:\n")
		for _, w := range lv.Warnings {
			output.WriteString(fmt.Sprintf("  [%s] %s", w.Code, w.Message))
			if len(w.Rooms) > 0 {
				output.WriteString(fmt.Sprintf(" (rooms %v)", w.Rooms))
			}
			output.WriteString("\n")
		}
	}

	if *showLegend {
		output.WriteString(getLegend())
	}

	if *recordDB != "" {
		s, err := store.Open(*recordDB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening run store: %v\n", err)
			os.Exit(1)
		}
		defer s.Close()

		runID, err := s.RecordRun(lv)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error recording run: %v\n", err)
			os.Exit(1)
		}
		output.WriteString(fmt.Sprintf("\nRecorded as run %d in %s\n", runID, *recordDB))
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output.String()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Floor written to %s\n", *outputFile)
	} else {
		fmt.Print(output.String())
	}
}

// renderFloor draws the tile map, one character per tile.
func renderFloor(output *strings.Builder, lv *layout.Level) {
	keyTiles := make(map[grid.Point]bool)
	for _, lock := range lv.Locks {
		keyTiles[lock.KeyTile] = true
	}

	for y := 0; y < lv.Height; y++ {
		for x := 0; x < lv.Width; x++ {
			p := grid.Point{X: x, Y: y}
			output.WriteByte(tileChar(lv, p, keyTiles))
		}
		output.WriteByte('\n')
	}
}

func tileChar(lv *layout.Level, p grid.Point, keyTiles map[grid.Point]bool) byte {
	switch {
	case lv.IsLockedDoor(p):
		return 'X'
	case lv.DoorTiles[p]:
		return '+'
	case keyTiles[p]:
		return 'K'
	case lv.FloorTiles[p]:
		if r := lv.RoomAt(p); r != nil && r.Center() == p {
			return roomMarker(r.Type)
		}
		return '.'
	case lv.WallTiles[p]:
		return '#'
	default:
		return ' '
	}
}

func roomMarker(t layout.RoomType) byte {
	switch t {
	case layout.RoomEntrance:
		return 'E'
	case layout.RoomBoss:
		return 'B'
	case layout.RoomMainPath:
		return 'M'
	case layout.RoomShop:
		return '$'
	case layout.RoomTreasure:
		return 'T'
	case layout.RoomEmpty:
		return 'o'
	default:
		return '.'
	}
}

// renderRooms prints one line per room with its role and reach.
func renderRooms(output *strings.Builder, lv *layout.Level) {
	output.WriteString("Rooms:\n")
	for _, r := range lv.Rooms {
		line := fmt.Sprintf("  %2d: %-9s at (%d,%d) %dx%d distance %d",
			r.ID, r.Type, r.Bounds.X, r.Bounds.Y, r.Bounds.W, r.Bounds.H, r.Distance)
		if r.OnMainPath {
			line += " [main path]"
		}
		if r.Access == layout.AccessLocked {
			line += " [locked]"
		}
		if r.HasKey {
			line += " [key]"
		}
		output.WriteString(line + "\n")
	}
}

func getLegend() string {
	return `
Legend:
  #  wall            .  floor
  +  door            X  locked door
  K  key             E  entrance
  B  boss            M  main path
  $  shop            T  treasure
  o  empty room
`
}
