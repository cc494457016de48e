// Command levelview serves generated floors over WebSocket for live
// previewing: a client sends generation parameters as a JSON message and
// receives the full floor layout back.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/websocket"

	"github.com/duskhall/levelforge/internal/config"
	"github.com/duskhall/levelforge/internal/gen"
	"github.com/duskhall/levelforge/internal/grid"
	"github.com/duskhall/levelforge/internal/layout"
	"github.com/duskhall/levelforge/internal/logger"
)

// generateRequest is one client request. Zero fields fall back to the
// server's base configuration.
type generateRequest struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Seed        int64   `json:"seed"`
	MinCellSize int     `json:"min_cell_size"`
	MaxDepth    int     `json:"max_depth"`
	LoopChance  float64 `json:"loop_chance"`
	LockCount   int     `json:"lock_count"`
}

type roomDTO struct {
	ID         int    `json:"id"`
	Type       string `json:"type"`
	Access     string `json:"access"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	W          int    `json:"w"`
	H          int    `json:"h"`
	Distance   int    `json:"distance"`
	OnMainPath bool   `json:"on_main_path"`
	HasKey     bool   `json:"has_key"`
}

type corridorDTO struct {
	A     int      `json:"a"`
	B     int      `json:"b"`
	DoorA [2]int   `json:"door_a"`
	DoorB [2]int   `json:"door_b"`
	Path  [][2]int `json:"path"`
	Loop  bool     `json:"loop"`
}

type lockDTO struct {
	Door       [2]int `json:"door"`
	LockedRoom int    `json:"locked_room"`
	KeyRoom    int    `json:"key_room"`
	KeyTile    [2]int `json:"key_tile"`
}

type warningDTO struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Rooms   []int  `json:"rooms,omitempty"`
}

// levelDTO is the wire form of a generated floor. Tile sets are flattened
// to coordinate pairs since JSON objects cannot key on points.
type levelDTO struct {
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Seed      int64         `json:"seed"`
	Rooms     []roomDTO     `json:"rooms"`
	Corridors []corridorDTO `json:"corridors"`
	Locks     []lockDTO     `json:"locks"`
	Floor     [][2]int      `json:"floor"`
	Walls     [][2]int      `json:"walls"`
	Doors     [][2]int      `json:"doors"`
	Warnings  []warningDTO  `json:"warnings,omitempty"`
}

type errorDTO struct {
	Error string `json:"error"`
}

type previewServer struct {
	base config.Generation
}

func main() {
	address := flag.String("address", ":8090", "Listen address")
	configFile := flag.String("config", "data/levelforge.yaml", "Path to generation config file")
	loggingFile := flag.String("logging", "data/logging.yaml", "Path to logging config file")
	flag.Parse()

	logCfg, err := logger.LoadConfig(*loggingFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading logging config: %v\n", err)
		os.Exit(1)
	}
	logger.Initialize(logCfg)

	base, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	srv := &previewServer{base: base}
	http.HandleFunc("/ws", srv.handleUpgrade)

	logger.Info("preview server listening", "address", *address)
	if err := http.ListenAndServe(*address, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// handleUpgrade upgrades an HTTP connection to WebSocket.
func (s *previewServer) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", "error", err)
		return
	}

	go s.handleConnection(conn)
}

// handleConnection answers generation requests on one connection until the
// client disconnects.
func (s *previewServer) handleConnection(conn *websocket.Conn) {
	defer conn.Close()

	for {
		var req generateRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warning("preview client read failed", "error", err)
			}
			return
		}

		payload, err := s.generate(req)
		if err != nil {
			if werr := conn.WriteJSON(errorDTO{Error: err.Error()}); werr != nil {
				return
			}
			continue
		}
		if err := conn.WriteJSON(payload); err != nil {
			logger.Warning("preview client write failed", "error", err)
			return
		}
	}
}

// generate merges the request over the base config and runs the pipeline.
func (s *previewServer) generate(req generateRequest) (*levelDTO, error) {
	cfg := s.base
	if req.Width > 0 {
		cfg.Width = req.Width
	}
	if req.Height > 0 {
		cfg.Height = req.Height
	}
	if req.Seed != 0 {
		cfg.Seed = req.Seed
	}
	if req.MinCellSize > 0 {
		cfg.MinCellSize = req.MinCellSize
	}
	if req.MaxDepth > 0 {
		cfg.MaxDepth = req.MaxDepth
	}
	if req.LoopChance > 0 {
		cfg.LoopChance = req.LoopChance
	}
	if req.LockCount > 0 {
		cfg.LockCount = req.LockCount
	}

	g, err := gen.NewGenerator(cfg)
	if err != nil {
		return nil, err
	}
	lv, err := g.Generate()
	if err != nil {
		return nil, err
	}

	return toDTO(lv), nil
}

func toDTO(lv *layout.Level) *levelDTO {
	out := &levelDTO{
		Width:  lv.Width,
		Height: lv.Height,
		Seed:   lv.Seed,
		Floor:  tilePairs(lv, lv.FloorTiles),
		Walls:  tilePairs(lv, lv.WallTiles),
		Doors:  tilePairs(lv, lv.DoorTiles),
	}

	for _, r := range lv.Rooms {
		out.Rooms = append(out.Rooms, roomDTO{
			ID:         r.ID,
			Type:       r.Type.String(),
			Access:     r.Access.String(),
			X:          r.Bounds.X,
			Y:          r.Bounds.Y,
			W:          r.Bounds.W,
			H:          r.Bounds.H,
			Distance:   r.Distance,
			OnMainPath: r.OnMainPath,
			HasKey:     r.HasKey,
		})
	}

	for _, c := range lv.Corridors {
		dto := corridorDTO{
			A:     c.A,
			B:     c.B,
			DoorA: pair(c.DoorA),
			DoorB: pair(c.DoorB),
			Loop:  c.Loop,
		}
		for _, p := range c.Path {
			dto.Path = append(dto.Path, pair(p))
		}
		out.Corridors = append(out.Corridors, dto)
	}

	for _, l := range lv.Locks {
		out.Locks = append(out.Locks, lockDTO{
			Door:       pair(l.Door),
			LockedRoom: l.LockedRoom,
			KeyRoom:    l.KeyRoom,
			KeyTile:    pair(l.KeyTile),
		})
	}

	for _, w := range lv.Warnings {
		out.Warnings = append(out.Warnings, warningDTO{
			Code:    w.Code.String(),
			Message: w.Message,
			Rooms:   w.Rooms,
		})
	}

	return out
}

// tilePairs flattens a tile set to coordinate pairs in row-major order, so
// the payload is stable for a given floor.
func tilePairs(lv *layout.Level, tiles map[grid.Point]bool) [][2]int {
	var out [][2]int
	for y := 0; y < lv.Height; y++ {
		for x := 0; x < lv.Width; x++ {
			if tiles[grid.Point{X: x, Y: y}] {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

func pair(p grid.Point) [2]int {
	return [2]int{p.X, p.Y}
}
