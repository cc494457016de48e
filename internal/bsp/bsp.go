// Package bsp implements recursive binary space partitioning of a floor
// rectangle into leaf cells. Each leaf later hosts exactly one room.
package bsp

import (
	"math/rand"

	"github.com/duskhall/levelforge/internal/grid"
)

// Cell is a node in the partition tree. A cell with no children is a leaf.
// The tree is transient: it is discarded once the leaves are collected.
type Cell struct {
	Bounds grid.Rect
	Depth  int
	Left   *Cell
	Right  *Cell
}

// IsLeaf reports whether the cell has no children.
func (c *Cell) IsLeaf() bool {
	return c.Left == nil && c.Right == nil
}

// Partition recursively splits a width x height floor into leaf cells and
// returns the leaves in pre-order. All randomness comes from rng, consumed
// in a fixed pre-order traversal (split self, then left, then right), so
// identical seeds always yield identical leaf sets.
//
// A floor smaller than 2*minCellSize on both axes produces the root as the
// sole leaf: degenerate but valid.
func Partition(width, height int, rng *rand.Rand, minCellSize, maxDepth int) []*Cell {
	root := &Cell{Bounds: grid.Rect{X: 0, Y: 0, W: width, H: height}}
	split(root, rng, minCellSize, maxDepth)

	var leaves []*Cell
	collectLeaves(root, &leaves)
	return leaves
}

// split divides a cell into two children along a randomly chosen axis.
// Vertical splits are preferred when the cell is wide enough and the height
// is too small or a coin flip says so; otherwise the split is horizontal.
// A cell that cannot be split along either axis without violating
// minCellSize becomes a leaf even below maxDepth.
func split(c *Cell, rng *rand.Rand, minCellSize, maxDepth int) {
	if c.Depth >= maxDepth {
		return
	}

	canVertical := c.Bounds.W >= 2*minCellSize
	canHorizontal := c.Bounds.H >= 2*minCellSize
	if !canVertical && !canHorizontal {
		return
	}

	vertical := canVertical && (!canHorizontal || rng.Intn(2) == 0)

	if vertical {
		// Offset drawn uniformly in [minCellSize, W-minCellSize].
		off := minCellSize + rng.Intn(c.Bounds.W-2*minCellSize+1)
		c.Left = &Cell{
			Bounds: grid.Rect{X: c.Bounds.X, Y: c.Bounds.Y, W: off, H: c.Bounds.H},
			Depth:  c.Depth + 1,
		}
		c.Right = &Cell{
			Bounds: grid.Rect{X: c.Bounds.X + off, Y: c.Bounds.Y, W: c.Bounds.W - off, H: c.Bounds.H},
			Depth:  c.Depth + 1,
		}
	} else {
		off := minCellSize + rng.Intn(c.Bounds.H-2*minCellSize+1)
		c.Left = &Cell{
			Bounds: grid.Rect{X: c.Bounds.X, Y: c.Bounds.Y, W: c.Bounds.W, H: off},
			Depth:  c.Depth + 1,
		}
		c.Right = &Cell{
			Bounds: grid.Rect{X: c.Bounds.X, Y: c.Bounds.Y + off, W: c.Bounds.W, H: c.Bounds.H - off},
			Depth:  c.Depth + 1,
		}
	}

	split(c.Left, rng, minCellSize, maxDepth)
	split(c.Right, rng, minCellSize, maxDepth)
}

// collectLeaves appends all leaves of the subtree to out in pre-order.
func collectLeaves(c *Cell, out *[]*Cell) {
	if c.IsLeaf() {
		*out = append(*out, c)
		return
	}
	collectLeaves(c.Left, out)
	collectLeaves(c.Right, out)
}
