package gen

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/duskhall/levelforge/internal/grid"
	"github.com/duskhall/levelforge/internal/layout"
)

// placeLocks gates up to lockCount rooms behind locked doors, each with a
// key placed in a strictly closer room so no lock can seal its own key.
// Shop and treasure rooms are locked first, deepest first; if more locks
// are requested than special rooms exist, the deepest remaining off-path
// side rooms fill in. A room with no valid key host is skipped with a
// warning instead of producing an unwinnable floor.
func placeLocks(lv *layout.Level, rng *rand.Rand, lockCount int) {
	if lockCount <= 0 {
		return
	}

	placed := 0
	for _, target := range lockCandidates(lv) {
		if placed == lockCount {
			return
		}
		if placeLock(lv, rng, target) {
			placed++
		}
	}
}

// lockCandidates orders the rooms eligible for a lock: special rooms by
// descending distance, then off-path side rooms by descending distance,
// lowest id on ties. Only reached rooms beyond the entrance qualify.
func lockCandidates(lv *layout.Level) []*layout.Room {
	var specials, fallback []*layout.Room
	for _, r := range lv.Rooms {
		if r.Distance <= 0 || r.OnMainPath {
			continue
		}
		switch r.Type {
		case layout.RoomShop, layout.RoomTreasure:
			specials = append(specials, r)
		case layout.RoomSide, layout.RoomEmpty:
			fallback = append(fallback, r)
		}
	}

	deepestFirst := func(rooms []*layout.Room) {
		sort.Slice(rooms, func(i, j int) bool {
			if rooms[i].Distance != rooms[j].Distance {
				return rooms[i].Distance > rooms[j].Distance
			}
			return rooms[i].ID < rooms[j].ID
		})
	}
	deepestFirst(specials)
	deepestFirst(fallback)

	return append(specials, fallback...)
}

// placeLock locks the door between target and its closest upstream
// neighbor and hides the key in a strictly closer room. Returns false
// when no room can host the key.
func placeLock(lv *layout.Level, rng *rand.Rand, target *layout.Room) bool {
	// Never seal a room that already hides a key behind its own door;
	// every key stays reachable without opening any lock.
	if target.HasKey {
		return false
	}

	parent := upstreamNeighbor(lv, target)
	if parent < 0 {
		return false
	}

	door, ok := doorBetween(lv, target.ID, parent)
	if !ok {
		return false
	}

	var hosts []*layout.Room
	for _, r := range lv.Rooms {
		if r.Distance <= 0 || r.Distance >= target.Distance {
			continue
		}
		if r.Access == layout.AccessLocked || r.HasKey {
			continue
		}
		hosts = append(hosts, r)
	}
	if len(hosts) == 0 {
		lv.Warn(layout.WarnInsolvableLock,
			fmt.Sprintf("no key host closer than room %d", target.ID), target.ID)
		return false
	}

	key := hosts[rng.Intn(len(hosts))]
	target.Access = layout.AccessLocked
	key.HasKey = true
	lv.Locks = append(lv.Locks, layout.Lock{
		Door:       door,
		LockedRoom: target.ID,
		KeyRoom:    key.ID,
		KeyTile:    key.Center(),
	})
	return true
}

// upstreamNeighbor returns the neighbor with the smallest distance
// strictly below the target's, lowest id on ties, or -1.
func upstreamNeighbor(lv *layout.Level, target *layout.Room) int {
	best := -1
	for _, id := range target.Neighbors {
		n := lv.Rooms[id]
		if n.Distance < 0 || n.Distance >= target.Distance {
			continue
		}
		if best < 0 || n.Distance < lv.Rooms[best].Distance ||
			(n.Distance == lv.Rooms[best].Distance && id < best) {
			best = id
		}
	}
	return best
}

// doorBetween returns the door tile on room a's side of the corridor
// joining rooms a and b.
func doorBetween(lv *layout.Level, a, b int) (door grid.Point, ok bool) {
	for _, c := range lv.Corridors {
		if c.A == a && c.B == b {
			return c.DoorA, true
		}
		if c.A == b && c.B == a {
			return c.DoorB, true
		}
	}
	return door, false
}
