package gen

import (
	"testing"

	"github.com/duskhall/levelforge/internal/bsp"
	"github.com/duskhall/levelforge/internal/grid"
	"github.com/duskhall/levelforge/internal/layout"
)

func cells(rects ...grid.Rect) []*bsp.Cell {
	out := make([]*bsp.Cell, len(rects))
	for i, r := range rects {
		out[i] = &bsp.Cell{Bounds: r}
	}
	return out
}

func TestBuildCandidateEdges(t *testing.T) {
	// Two cells side by side over a third spanning both.
	leaves := cells(
		grid.Rect{X: 0, Y: 0, W: 10, H: 10},
		grid.Rect{X: 10, Y: 0, W: 10, H: 10},
		grid.Rect{X: 0, Y: 10, W: 20, H: 10},
	)

	edges := buildCandidateEdges(leaves)

	want := []layout.Edge{
		{A: 0, B: 1, Door: grid.Point{X: 10, Y: 4}},
		{A: 0, B: 2, Door: grid.Point{X: 4, Y: 10}},
		{A: 1, B: 2, Door: grid.Point{X: 14, Y: 10}},
	}
	if len(edges) != len(want) {
		t.Fatalf("got %d edges, want %d: %+v", len(edges), len(want), edges)
	}
	for i, e := range edges {
		if e != want[i] {
			t.Errorf("edge %d = %+v, want %+v", i, e, want[i])
		}
	}
}

func TestBuildCandidateEdgesIgnoresDiagonalAndDistant(t *testing.T) {
	leaves := cells(
		grid.Rect{X: 0, Y: 0, W: 10, H: 10},
		grid.Rect{X: 10, Y: 10, W: 10, H: 10}, // corner touch only
		grid.Rect{X: 30, Y: 0, W: 10, H: 10},  // not touching at all
	)

	if edges := buildCandidateEdges(leaves); len(edges) != 0 {
		t.Fatalf("got %d edges, want 0: %+v", len(edges), edges)
	}
}

func TestBuildCandidateEdgesRejectsNarrowOverlap(t *testing.T) {
	// Borders touch along a single tile, too narrow for a doorway.
	leaves := cells(
		grid.Rect{X: 0, Y: 0, W: 10, H: 10},
		grid.Rect{X: 10, Y: 9, W: 10, H: 10},
	)

	if edges := buildCandidateEdges(leaves); len(edges) != 0 {
		t.Fatalf("got %d edges, want 0: %+v", len(edges), edges)
	}
}
