package gen

import (
	"math/rand"
	"testing"

	"github.com/duskhall/levelforge/internal/layout"
)

type roleSnapshot struct {
	Type       layout.RoomType
	Distance   int
	OnMainPath bool
}

func snapshotRoles(lv *layout.Level) []roleSnapshot {
	out := make([]roleSnapshot, len(lv.Rooms))
	for i, r := range lv.Rooms {
		out[i] = roleSnapshot{Type: r.Type, Distance: r.Distance, OnMainPath: r.OnMainPath}
	}
	return out
}

func TestClassifyIdempotent(t *testing.T) {
	lv := generate(t, testConfig(64, 48, 4242))

	classify(lv, rand.New(rand.NewSource(777)), 1, 2, 0.25)
	first := snapshotRoles(lv)

	classify(lv, rand.New(rand.NewSource(777)), 1, 2, 0.25)
	second := snapshotRoles(lv)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("room %d changed between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestClassifyEntranceNearestOrigin(t *testing.T) {
	for _, seed := range []int64{8, 88, 888} {
		lv := generate(t, testConfig(56, 40, seed))
		entrance := lv.Entrance()
		if entrance == nil {
			t.Fatalf("seed %d: no entrance", seed)
		}
		for _, r := range lv.Rooms {
			if r.Bounds.X+r.Bounds.Y < entrance.Bounds.X+entrance.Bounds.Y {
				t.Errorf("seed %d: room %d at %+v is closer to origin than entrance %d at %+v",
					seed, r.ID, r.Bounds, entrance.ID, entrance.Bounds)
			}
		}
		if entrance.Distance != 0 {
			t.Errorf("seed %d: entrance distance %d, want 0", seed, entrance.Distance)
		}
	}
}

func TestClassifyBossIsFarthest(t *testing.T) {
	for _, seed := range []int64{6, 66, 666} {
		lv := generate(t, testConfig(64, 48, seed))
		boss := lv.Boss()
		if boss == nil {
			t.Fatalf("seed %d: no boss", seed)
		}
		for _, r := range lv.Rooms {
			if r.Distance > boss.Distance {
				t.Errorf("seed %d: room %d at distance %d farther than boss at %d",
					seed, r.ID, r.Distance, boss.Distance)
			}
		}
		if !boss.OnMainPath {
			t.Errorf("seed %d: boss not on main path", seed)
		}
	}
}

func TestClassifyMainPathIsConnectedChain(t *testing.T) {
	lv := generate(t, testConfig(64, 48, 303))
	entrance, boss := lv.Entrance(), lv.Boss()
	if entrance == nil || boss == nil {
		t.Fatal("missing entrance or boss")
	}

	// Every main-path room except the entrance has a main-path neighbor
	// exactly one step closer.
	for _, r := range lv.Rooms {
		if !r.OnMainPath || r.ID == entrance.ID {
			continue
		}
		found := false
		for _, id := range r.Neighbors {
			n := lv.Rooms[id]
			if n.OnMainPath && n.Distance == r.Distance-1 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("main-path room %d at distance %d has no upstream main-path neighbor",
				r.ID, r.Distance)
		}
	}
}

func TestClassifySpecialRoomsOffMainPath(t *testing.T) {
	for _, seed := range []int64{12, 120, 1200} {
		lv := generate(t, testConfig(72, 54, seed))
		for _, r := range lv.Rooms {
			switch r.Type {
			case layout.RoomShop, layout.RoomTreasure, layout.RoomEmpty:
				if r.OnMainPath {
					t.Errorf("seed %d: %v room %d lies on the main path", seed, r.Type, r.ID)
				}
				if r.Distance < 0 {
					t.Errorf("seed %d: %v room %d is unreachable", seed, r.Type, r.ID)
				}
			}
		}
	}
}
