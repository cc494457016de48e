package gen

import (
	"math/rand"
	"sort"

	"github.com/duskhall/levelforge/internal/layout"
)

// classify assigns a role to every room. It resets all classification
// state first, so calling it again on the same level reproduces the same
// assignment from the same random stream.
//
// The entrance is the room closest to the floor origin. A breadth-first
// search from the entrance records each room's distance; the farthest room
// becomes the boss room, and the parent chain between them is the main
// path. Shops and treasure rooms are picked from off-path rooms whose
// distance sits nearest the mean, keeping them in the floor's mid-band
// rather than huddled by the entrance. What remains may roll into empty
// rooms. Unreachable rooms keep a distance of -1 and stay side rooms.
func classify(lv *layout.Level, rng *rand.Rand, shopCount, treasureCount int, emptyChance float64) {
	if len(lv.Rooms) == 0 {
		return
	}

	for _, r := range lv.Rooms {
		r.Type = layout.RoomSide
		r.Distance = -1
		r.OnMainPath = false
	}

	start := entranceRoom(lv)
	parent := bfs(lv, start)

	boss := start
	for _, r := range lv.Rooms {
		if r.Distance > lv.Rooms[boss].Distance {
			boss = r.ID
		}
	}

	markMainPath(lv, parent, start, boss)

	assignSpecials(lv, shopCount, treasureCount)

	for _, r := range lv.Rooms {
		if r.Type != layout.RoomSide || r.Distance < 0 || r.OnMainPath {
			continue
		}
		if rng.Float64() < emptyChance {
			r.Type = layout.RoomEmpty
		}
	}
}

// entranceRoom picks the room whose bounds sit closest to the origin,
// lowest id on ties.
func entranceRoom(lv *layout.Level) int {
	best := 0
	for _, r := range lv.Rooms[1:] {
		if r.Bounds.X+r.Bounds.Y < lv.Rooms[best].Bounds.X+lv.Rooms[best].Bounds.Y {
			best = r.ID
		}
	}
	return best
}

// bfs walks the adjacency graph from start, filling in room distances and
// returning the parent of each visited room (-1 for start and unreached).
func bfs(lv *layout.Level, start int) []int {
	parent := make([]int, len(lv.Rooms))
	for i := range parent {
		parent[i] = -1
	}

	lv.Rooms[start].Distance = 0
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range lv.Graph[cur] {
			if lv.Rooms[next].Distance >= 0 {
				continue
			}
			lv.Rooms[next].Distance = lv.Rooms[cur].Distance + 1
			parent[next] = cur
			queue = append(queue, next)
		}
	}
	return parent
}

// markMainPath walks the parent chain from boss back to start and labels
// the route. A single-room floor gets an entrance and nothing else.
func markMainPath(lv *layout.Level, parent []int, start, boss int) {
	lv.Rooms[start].Type = layout.RoomEntrance
	lv.Rooms[start].OnMainPath = true
	if boss == start {
		return
	}

	lv.Rooms[boss].Type = layout.RoomBoss
	lv.Rooms[boss].OnMainPath = true
	for cur := parent[boss]; cur >= 0 && cur != start; cur = parent[cur] {
		lv.Rooms[cur].Type = layout.RoomMainPath
		lv.Rooms[cur].OnMainPath = true
	}
}

// assignSpecials labels shops and treasure rooms. Candidates are reached
// off-path side rooms, ordered by how close their distance lies to the
// mean distance of all reached rooms, lowest id on ties. Shops claim the
// head of the order, treasure rooms the next slots.
func assignSpecials(lv *layout.Level, shopCount, treasureCount int) {
	var sum, reached int
	for _, r := range lv.Rooms {
		if r.Distance >= 0 {
			sum += r.Distance
			reached++
		}
	}
	if reached == 0 {
		return
	}
	mean := float64(sum) / float64(reached)

	var candidates []*layout.Room
	for _, r := range lv.Rooms {
		if r.Distance >= 0 && !r.OnMainPath && r.Type == layout.RoomSide {
			candidates = append(candidates, r)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		di := absFloat(float64(candidates[i].Distance) - mean)
		dj := absFloat(float64(candidates[j].Distance) - mean)
		if di != dj {
			return di < dj
		}
		return candidates[i].ID < candidates[j].ID
	})

	for i, r := range candidates {
		switch {
		case i < shopCount:
			r.Type = layout.RoomShop
		case i < shopCount+treasureCount:
			r.Type = layout.RoomTreasure
		default:
			return
		}
	}
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
