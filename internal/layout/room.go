package layout

import "github.com/duskhall/levelforge/internal/grid"

// RoomType classifies a room's role on the floor.
type RoomType int

const (
	RoomSide     RoomType = iota // off the critical path
	RoomEntrance                 // start of the floor
	RoomMainPath                 // on the entrance-to-boss walk
	RoomBoss                     // boss/exit anchor, farthest from the entrance
	RoomShop                     // merchant room
	RoomTreasure                 // loot room
	RoomEmpty                    // intentionally bare side room
)

// String returns the string representation of a RoomType.
func (t RoomType) String() string {
	switch t {
	case RoomSide:
		return "side"
	case RoomEntrance:
		return "entrance"
	case RoomMainPath:
		return "main_path"
	case RoomBoss:
		return "boss"
	case RoomShop:
		return "shop"
	case RoomTreasure:
		return "treasure"
	case RoomEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// RoomAccess is the gating state of a room.
type RoomAccess int

const (
	AccessOpen   RoomAccess = iota // freely enterable
	AccessClosed                   // door closed but unlocked
	AccessLocked                   // gated behind a locked door
)

// String returns the string representation of a RoomAccess.
func (a RoomAccess) String() string {
	switch a {
	case AccessOpen:
		return "open"
	case AccessClosed:
		return "closed"
	case AccessLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Room is one carved room. Geometry is immutable after generation;
// classification fields (Type, Access, Distance, OnMainPath, HasKey) are
// filled in by the classifier and lock placer.
type Room struct {
	ID         int
	Bounds     grid.Rect
	Type       RoomType
	Access     RoomAccess
	Distance   int // BFS depth from the entrance, -1 = unreached
	OnMainPath bool
	HasKey     bool
	Neighbors  []int // ids of rooms connected by a corridor
}

// Center returns the room's middle tile.
func (r *Room) Center() grid.Point {
	return r.Bounds.Center()
}

// Interior reports whether the point lies strictly inside the room,
// off its boundary ring.
func (r *Room) Interior(p grid.Point) bool {
	return r.Bounds.Contains(p) && !r.Bounds.OnBoundary(p)
}
