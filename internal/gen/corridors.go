package gen

import (
	"fmt"
	"math/rand"

	"github.com/duskhall/levelforge/internal/bsp"
	"github.com/duskhall/levelforge/internal/grid"
	"github.com/duskhall/levelforge/internal/layout"
)

// carveCorridors turns every accepted edge into a carved corridor: a door
// tile on each room's boundary wall facing the other room, and an L-shaped
// two-wide path between them. The orientation coin is drawn for every edge
// before any failure check so the random stream stays stable across floors
// that skip a corridor. Successfully carved corridors populate the room
// adjacency graph; skipped ones are reported as warnings.
func carveCorridors(lv *layout.Level, leaves []*bsp.Cell, accepted []layout.Edge, rng *rand.Rand) {
	for _, e := range accepted {
		horizontalFirst := rng.Intn(2) == 0

		c, ok := carveCorridor(lv, leaves[e.A].Bounds, leaves[e.B].Bounds, e, horizontalFirst)
		if !ok {
			lv.Warn(layout.WarnCorridorCarveFailure,
				fmt.Sprintf("rooms %d and %d share no matching border", e.A, e.B),
				e.A, e.B)
			continue
		}

		lv.Corridors = append(lv.Corridors, c)
		lv.DoorTiles[c.DoorA] = true
		lv.DoorTiles[c.DoorB] = true
		connect(lv, e.A, e.B)
	}
}

// connect records the carved adjacency in the graph and on both rooms.
func connect(lv *layout.Level, a, b int) {
	lv.Graph[a] = append(lv.Graph[a], b)
	lv.Graph[b] = append(lv.Graph[b], a)
	lv.Rooms[a].Neighbors = append(lv.Rooms[a].Neighbors, b)
	lv.Rooms[b].Neighbors = append(lv.Rooms[b].Neighbors, a)
}

// carveCorridor places the two doors and the path for one edge. Doors sit
// on the room walls facing each other, at the edge's border anchor clamped
// into each room's span. The path runs from one tile outside each door.
func carveCorridor(lv *layout.Level, cellA, cellB grid.Rect, e layout.Edge, horizontalFirst bool) (layout.Corridor, bool) {
	ra := lv.Rooms[e.A].Bounds
	rb := lv.Rooms[e.B].Bounds

	var doorA, doorB, start, end grid.Point
	switch {
	case cellA.Right() == cellB.X: // A west of B
		doorA = grid.Point{X: ra.MaxX(), Y: grid.Clamp(e.Door.Y, ra.Y, ra.MaxY())}
		doorB = grid.Point{X: rb.X, Y: grid.Clamp(e.Door.Y, rb.Y, rb.MaxY())}
		start = grid.Point{X: doorA.X + 1, Y: doorA.Y}
		end = grid.Point{X: doorB.X - 1, Y: doorB.Y}
	case cellB.Right() == cellA.X: // B west of A
		doorA = grid.Point{X: ra.X, Y: grid.Clamp(e.Door.Y, ra.Y, ra.MaxY())}
		doorB = grid.Point{X: rb.MaxX(), Y: grid.Clamp(e.Door.Y, rb.Y, rb.MaxY())}
		start = grid.Point{X: doorA.X - 1, Y: doorA.Y}
		end = grid.Point{X: doorB.X + 1, Y: doorB.Y}
	case cellA.Bottom() == cellB.Y: // A north of B
		doorA = grid.Point{X: grid.Clamp(e.Door.X, ra.X, ra.MaxX()), Y: ra.MaxY()}
		doorB = grid.Point{X: grid.Clamp(e.Door.X, rb.X, rb.MaxX()), Y: rb.Y}
		start = grid.Point{X: doorA.X, Y: doorA.Y + 1}
		end = grid.Point{X: doorB.X, Y: doorB.Y - 1}
	case cellB.Bottom() == cellA.Y: // B north of A
		doorA = grid.Point{X: grid.Clamp(e.Door.X, ra.X, ra.MaxX()), Y: ra.Y}
		doorB = grid.Point{X: grid.Clamp(e.Door.X, rb.X, rb.MaxX()), Y: rb.MaxY()}
		start = grid.Point{X: doorA.X, Y: doorA.Y - 1}
		end = grid.Point{X: doorB.X, Y: doorB.Y + 1}
	default:
		return layout.Corridor{}, false
	}

	path := carvePath(lv, start, end, horizontalFirst)

	return layout.Corridor{
		A:     e.A,
		B:     e.B,
		DoorA: doorA,
		DoorB: doorB,
		Path:  path,
		Loop:  e.Loop,
	}, true
}

// carvePath lays an L-shaped run from start to end, widened to two tiles
// (horizontal runs gain the tile below, vertical runs the tile to the
// right). Tiles outside the floor or inside a room are dropped; doors
// already cover the room crossings.
func carvePath(lv *layout.Level, start, end grid.Point, horizontalFirst bool) []grid.Point {
	corner := grid.Point{X: end.X, Y: start.Y}
	if !horizontalFirst {
		corner = grid.Point{X: start.X, Y: end.Y}
	}

	seen := make(map[grid.Point]bool)
	var path []grid.Point
	add := func(p grid.Point) {
		if seen[p] || !lv.InBounds(p) || lv.RoomAt(p) != nil {
			return
		}
		seen[p] = true
		path = append(path, p)
		lv.FloorTiles[p] = true
	}

	lay := func(from, to grid.Point) {
		if from.Y == to.Y {
			step := 1
			if to.X < from.X {
				step = -1
			}
			for x := from.X; ; x += step {
				add(grid.Point{X: x, Y: from.Y})
				add(grid.Point{X: x, Y: from.Y + 1})
				if x == to.X {
					break
				}
			}
			return
		}
		step := 1
		if to.Y < from.Y {
			step = -1
		}
		for y := from.Y; ; y += step {
			add(grid.Point{X: from.X, Y: y})
			add(grid.Point{X: from.X + 1, Y: y})
			if y == to.Y {
				break
			}
		}
	}

	lay(start, corner)
	lay(corner, end)
	return path
}
