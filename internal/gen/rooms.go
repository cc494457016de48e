package gen

import (
	"math/rand"

	"github.com/duskhall/levelforge/internal/bsp"
	"github.com/duskhall/levelforge/internal/config"
	"github.com/duskhall/levelforge/internal/grid"
	"github.com/duskhall/levelforge/internal/layout"
)

// carveRooms inscribes one room per leaf cell, in leaf (pre-)order.
// Room id equals the leaf index, so every partition hosts exactly one room.
func carveRooms(leaves []*bsp.Cell, rng *rand.Rand, minInset, maxInset int) []*layout.Room {
	rooms := make([]*layout.Room, len(leaves))
	for i, leaf := range leaves {
		rooms[i] = &layout.Room{
			ID:       i,
			Bounds:   carveRoom(leaf.Bounds, rng, minInset, maxInset),
			Type:     layout.RoomSide,
			Access:   layout.AccessOpen,
			Distance: -1,
		}
	}
	return rooms
}

// carveRoom shrinks the cell by an independent inset per side, each drawn
// uniformly from [minInset, maxInset]. Four draws happen per room in a
// fixed order (left, right, top, bottom) regardless of clamping, keeping
// the random stream stable. If the drawn insets would push a side below
// the minimum room size, that axis falls back to the largest valid extent
// anchored at the cell's minimum inset: deterministic and always valid.
func carveRoom(cell grid.Rect, rng *rand.Rand, minInset, maxInset int) grid.Rect {
	span := maxInset - minInset + 1
	left := minInset + rng.Intn(span)
	right := minInset + rng.Intn(span)
	top := minInset + rng.Intn(span)
	bottom := minInset + rng.Intn(span)

	room := grid.Rect{
		X: cell.X + left,
		Y: cell.Y + top,
		W: cell.W - left - right,
		H: cell.H - top - bottom,
	}

	if room.W < config.MinRoomDim {
		room.X, room.W = clampAxis(cell.X, cell.W, minInset)
	}
	if room.H < config.MinRoomDim {
		room.Y, room.H = clampAxis(cell.Y, cell.H, minInset)
	}
	return room
}

// clampAxis returns the largest valid origin/extent for one axis when the
// drawn insets over-shrank it: the extent at minimum inset, never below
// the minimum room size and never beyond the cell.
func clampAxis(cellOrigin, cellExtent, minInset int) (int, int) {
	extent := cellExtent - 2*minInset
	if extent < config.MinRoomDim {
		extent = config.MinRoomDim
	}
	if extent > cellExtent {
		extent = cellExtent
	}
	origin := cellOrigin + minInset
	if origin+extent > cellOrigin+cellExtent {
		origin = cellOrigin + cellExtent - extent
	}
	return origin, extent
}
