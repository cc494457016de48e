// Package layout defines the generated floor model: rooms, corridors, locks,
// tile sets and the room-adjacency graph. A Level is the sole artifact the
// generator hands to external consumers and is read-only after generation.
package layout

import "github.com/duskhall/levelforge/internal/grid"

// Edge is a candidate connection between two rooms whose cells share a
// border wide enough for a doorway. A < B always holds.
type Edge struct {
	A    int
	B    int
	Door grid.Point // anchor on the shared cell border (midpoint of the span)
	Loop bool       // accepted beyond the spanning tree
}

// Corridor is a carved connection between two rooms. DoorA and DoorB lie on
// the boundary of rooms A and B respectively; Path holds the carved tiles
// between them, deduplicated and never inside a room.
type Corridor struct {
	A     int
	B     int
	DoorA grid.Point
	DoorB grid.Point
	Path  []grid.Point
	Loop  bool
}

// Lock gates one room behind a locked door tile. The key sits in an
// upstream room whose BFS distance is strictly smaller than the locked
// room's, so the floor always stays solvable.
type Lock struct {
	Door       grid.Point
	LockedRoom int
	KeyRoom    int
	KeyTile    grid.Point
}

// WarningCode identifies a non-fatal generation-quality condition.
type WarningCode int

const (
	WarnDisconnectedGraph WarningCode = iota
	WarnCorridorCarveFailure
	WarnInsolvableLock
)

// String returns the string representation of a WarningCode.
func (c WarningCode) String() string {
	switch c {
	case WarnDisconnectedGraph:
		return "disconnected_graph"
	case WarnCorridorCarveFailure:
		return "corridor_carve_failure"
	case WarnInsolvableLock:
		return "insolvable_lock"
	default:
		return "unknown"
	}
}

// Warning is a structured generation-quality report attached to the Level,
// so callers and tests can assert on it instead of scraping logs.
type Warning struct {
	Code    WarningCode
	Message string
	Rooms   []int // affected room ids, if any
}

// Level aggregates everything generated for one floor.
type Level struct {
	Width  int
	Height int
	Seed   int64

	Rooms     []*Room // arena indexed by room id
	Corridors []Corridor
	Locks     []Lock

	FloorTiles map[grid.Point]bool
	WallTiles  map[grid.Point]bool
	DoorTiles  map[grid.Point]bool

	Graph map[int][]int // room id -> connected room ids

	Warnings []Warning
}

// NewLevel creates an empty level of the given size.
func NewLevel(width, height int, seed int64) *Level {
	return &Level{
		Width:      width,
		Height:     height,
		Seed:       seed,
		FloorTiles: make(map[grid.Point]bool),
		WallTiles:  make(map[grid.Point]bool),
		DoorTiles:  make(map[grid.Point]bool),
		Graph:      make(map[int][]int),
	}
}

// Warn appends a structured warning.
func (l *Level) Warn(code WarningCode, message string, rooms ...int) {
	l.Warnings = append(l.Warnings, Warning{Code: code, Message: message, Rooms: rooms})
}

// Bounds returns the floor rectangle.
func (l *Level) Bounds() grid.Rect {
	return grid.Rect{X: 0, Y: 0, W: l.Width, H: l.Height}
}

// InBounds reports whether the point lies on the floor.
func (l *Level) InBounds(p grid.Point) bool {
	return l.Bounds().Contains(p)
}

// RoomAt returns the room covering the tile, or nil.
func (l *Level) RoomAt(p grid.Point) *Room {
	for _, r := range l.Rooms {
		if r.Bounds.Contains(p) {
			return r
		}
	}
	return nil
}

// RoomsOfType returns all rooms with the given type, in id order.
func (l *Level) RoomsOfType(t RoomType) []*Room {
	var out []*Room
	for _, r := range l.Rooms {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

// Entrance returns the entrance room, or nil before classification.
func (l *Level) Entrance() *Room {
	for _, r := range l.Rooms {
		if r.Type == RoomEntrance {
			return r
		}
	}
	return nil
}

// Boss returns the boss room, the floor's exit anchor, or nil before
// classification.
func (l *Level) Boss() *Room {
	for _, r := range l.Rooms {
		if r.Type == RoomBoss {
			return r
		}
	}
	return nil
}

// IsLockedDoor reports whether the tile is a locked door.
func (l *Level) IsLockedDoor(p grid.Point) bool {
	for _, lock := range l.Locks {
		if lock.Door == p {
			return true
		}
	}
	return false
}

// IsTraversable reports whether an agent could stand on the tile: any floor
// tile, or a door tile that is not locked.
func (l *Level) IsTraversable(p grid.Point) bool {
	if l.DoorTiles[p] {
		return !l.IsLockedDoor(p)
	}
	return l.FloorTiles[p]
}

// HasWarning reports whether a warning with the given code was recorded.
func (l *Level) HasWarning(code WarningCode) bool {
	for _, w := range l.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// UnreachedRooms returns ids of rooms the entrance BFS never reached.
func (l *Level) UnreachedRooms() []int {
	var out []int
	for _, r := range l.Rooms {
		if r.Distance < 0 {
			out = append(out, r.ID)
		}
	}
	return out
}
