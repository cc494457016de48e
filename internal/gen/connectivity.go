package gen

import (
	"math/rand"

	"github.com/duskhall/levelforge/internal/layout"
)

// unionFind is a disjoint-set forest with path compression and union by
// size, sized once for the room count.
type unionFind struct {
	parent []int
	size   []int
	sets   int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union merges the sets holding a and b and reports whether they were
// previously separate.
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	uf.sets--
	return true
}

// resolveConnectivity picks the edges to carve: a randomized spanning
// tree over the candidate set, plus extra candidates kept as loops with
// the configured probability. Candidates are shuffled once, then walked
// Kruskal-style; an edge joining two components is accepted as a tree
// edge, every other candidate rolls against loopChance. The second return
// value is the number of connected components left over, 1 when the tree
// spans every room.
func resolveConnectivity(edges []layout.Edge, roomCount int, loopChance float64, rng *rand.Rand) ([]layout.Edge, int) {
	shuffled := make([]layout.Edge, len(edges))
	copy(shuffled, edges)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	uf := newUnionFind(roomCount)
	accepted := make([]layout.Edge, 0, len(shuffled))
	for _, e := range shuffled {
		if uf.union(e.A, e.B) {
			accepted = append(accepted, e)
			continue
		}
		// Redundant edge: roll for a loop. The draw happens for every
		// redundant candidate so the random stream does not depend on
		// roll outcomes.
		if rng.Float64() < loopChance {
			e.Loop = true
			accepted = append(accepted, e)
		}
	}

	return accepted, uf.sets
}
