package layout

import (
	"testing"

	"github.com/duskhall/levelforge/internal/grid"
)

// buildTestLevel assembles a small two-room level by hand:
// room 0 at (1,1) 4x4, room 1 at (7,1) 4x4, corridor between them.
func buildTestLevel() *Level {
	l := NewLevel(12, 6, 42)
	l.Rooms = []*Room{
		{ID: 0, Bounds: grid.Rect{X: 1, Y: 1, W: 4, H: 4}, Type: RoomEntrance, Distance: 0},
		{ID: 1, Bounds: grid.Rect{X: 7, Y: 1, W: 4, H: 4}, Type: RoomBoss, Distance: 1},
	}
	l.Graph[0] = []int{1}
	l.Graph[1] = []int{0}

	for _, r := range l.Rooms {
		for y := r.Bounds.Y; y < r.Bounds.Bottom(); y++ {
			for x := r.Bounds.X; x < r.Bounds.Right(); x++ {
				l.FloorTiles[grid.Point{X: x, Y: y}] = true
			}
		}
	}

	doorA := grid.Point{X: 4, Y: 3}
	doorB := grid.Point{X: 7, Y: 3}
	l.DoorTiles[doorA] = true
	l.DoorTiles[doorB] = true
	path := []grid.Point{{X: 5, Y: 3}, {X: 6, Y: 3}}
	for _, p := range path {
		l.FloorTiles[p] = true
	}
	l.Corridors = []Corridor{{A: 0, B: 1, DoorA: doorA, DoorB: doorB, Path: path}}
	return l
}

func TestRoomAt(t *testing.T) {
	l := buildTestLevel()

	if r := l.RoomAt(grid.Point{X: 2, Y: 2}); r == nil || r.ID != 0 {
		t.Errorf("RoomAt(2,2) = %v, want room 0", r)
	}
	if r := l.RoomAt(grid.Point{X: 8, Y: 4}); r == nil || r.ID != 1 {
		t.Errorf("RoomAt(8,4) = %v, want room 1", r)
	}
	if r := l.RoomAt(grid.Point{X: 5, Y: 3}); r != nil {
		t.Errorf("RoomAt(5,3) = room %d, want nil (corridor tile)", r.ID)
	}
}

func TestEntranceAndBoss(t *testing.T) {
	l := buildTestLevel()

	if e := l.Entrance(); e == nil || e.ID != 0 {
		t.Error("Entrance() should return room 0")
	}
	if b := l.Boss(); b == nil || b.ID != 1 {
		t.Error("Boss() should return room 1")
	}
}

func TestRoomsOfType(t *testing.T) {
	l := buildTestLevel()

	if got := l.RoomsOfType(RoomEntrance); len(got) != 1 || got[0].ID != 0 {
		t.Errorf("RoomsOfType(entrance) = %v", got)
	}
	if got := l.RoomsOfType(RoomShop); got != nil {
		t.Errorf("RoomsOfType(shop) = %v, want none", got)
	}
}

func TestIsTraversable(t *testing.T) {
	l := buildTestLevel()

	if !l.IsTraversable(grid.Point{X: 2, Y: 2}) {
		t.Error("room floor should be traversable")
	}
	if !l.IsTraversable(grid.Point{X: 5, Y: 3}) {
		t.Error("corridor tile should be traversable")
	}
	if !l.IsTraversable(grid.Point{X: 4, Y: 3}) {
		t.Error("unlocked door should be traversable")
	}
	if l.IsTraversable(grid.Point{X: 0, Y: 0}) {
		t.Error("wall/void should not be traversable")
	}

	// Lock the door into room 1.
	l.Locks = append(l.Locks, Lock{
		Door:       grid.Point{X: 7, Y: 3},
		LockedRoom: 1,
		KeyRoom:    0,
		KeyTile:    l.Rooms[0].Center(),
	})
	if l.IsTraversable(grid.Point{X: 7, Y: 3}) {
		t.Error("locked door should not be traversable")
	}
	if !l.IsLockedDoor(grid.Point{X: 7, Y: 3}) {
		t.Error("IsLockedDoor should report the locked tile")
	}
}

func TestWarnings(t *testing.T) {
	l := buildTestLevel()

	if l.HasWarning(WarnDisconnectedGraph) {
		t.Error("fresh level should have no warnings")
	}
	l.Warn(WarnDisconnectedGraph, "2 rooms unreachable", 3, 4)
	if !l.HasWarning(WarnDisconnectedGraph) {
		t.Error("warning not recorded")
	}
	if len(l.Warnings[0].Rooms) != 2 {
		t.Errorf("warning rooms = %v, want [3 4]", l.Warnings[0].Rooms)
	}
}

func TestUnreachedRooms(t *testing.T) {
	l := buildTestLevel()
	if got := l.UnreachedRooms(); got != nil {
		t.Errorf("UnreachedRooms() = %v, want none", got)
	}
	l.Rooms[1].Distance = -1
	if got := l.UnreachedRooms(); len(got) != 1 || got[0] != 1 {
		t.Errorf("UnreachedRooms() = %v, want [1]", got)
	}
}

func TestRoomTypeStrings(t *testing.T) {
	tests := []struct {
		t    RoomType
		want string
	}{
		{RoomEntrance, "entrance"},
		{RoomBoss, "boss"},
		{RoomShop, "shop"},
		{RoomTreasure, "treasure"},
		{RoomEmpty, "empty"},
		{RoomMainPath, "main_path"},
		{RoomSide, "side"},
	}
	for _, tc := range tests {
		if got := tc.t.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.t, got, tc.want)
		}
	}
}
