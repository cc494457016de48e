package gen

import (
	"github.com/duskhall/levelforge/internal/bsp"
	"github.com/duskhall/levelforge/internal/grid"
	"github.com/duskhall/levelforge/internal/layout"
)

// minSharedSpan is the smallest cell-border overlap that can host a
// doorway plus clearance on both sides.
const minSharedSpan = 2

// buildCandidateEdges scans every leaf pair for a shared cell border and
// returns one candidate edge per adjacent pair, A < B, in (A, B) order.
// The Door anchor is the midpoint of the shared span on the border line;
// it is derived purely from geometry so the candidate set never consumes
// randomness.
func buildCandidateEdges(leaves []*bsp.Cell) []layout.Edge {
	var edges []layout.Edge
	for a := 0; a < len(leaves); a++ {
		for b := a + 1; b < len(leaves); b++ {
			if e, ok := sharedBorder(a, b, leaves[a].Bounds, leaves[b].Bounds); ok {
				edges = append(edges, e)
			}
		}
	}
	return edges
}

// sharedBorder reports whether two cells touch along a full edge segment
// wide enough for a doorway, and builds the candidate edge if so.
func sharedBorder(a, b int, ra, rb grid.Rect) (layout.Edge, bool) {
	// Vertical border: ra's right edge against rb's left edge, or mirrored.
	if ra.Right() == rb.X || rb.Right() == ra.X {
		top := maxInt(ra.Y, rb.Y)
		bottom := minInt(ra.Bottom(), rb.Bottom())
		if bottom-top >= minSharedSpan {
			x := rb.X
			if rb.Right() == ra.X {
				x = ra.X
			}
			return layout.Edge{A: a, B: b, Door: grid.Point{X: x, Y: (top + bottom - 1) / 2}}, true
		}
	}

	// Horizontal border: ra's bottom edge against rb's top edge, or mirrored.
	if ra.Bottom() == rb.Y || rb.Bottom() == ra.Y {
		left := maxInt(ra.X, rb.X)
		right := minInt(ra.Right(), rb.Right())
		if right-left >= minSharedSpan {
			y := rb.Y
			if rb.Bottom() == ra.Y {
				y = ra.Y
			}
			return layout.Edge{A: a, B: b, Door: grid.Point{X: (left + right - 1) / 2, Y: y}}, true
		}
	}

	return layout.Edge{}, false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
