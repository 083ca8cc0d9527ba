// Package routegraph models a route optimizer's candidate moves as
// one-shot cost edges from the machine's current position to a
// candidate block's entry point, borrowed in idiom (not as an import)
// from katalvlaran/lvlath's explicit graph node/edge modeling — the
// optimizer here is a greedy walk over these edges, not a shortest-path
// search over a persistent graph.
package routegraph

// Edge is one candidate move: stitching BlockIndex next, in the given
// orientation, at the stated cost.
type Edge struct {
	BlockIndex int
	Reversed   bool
	Cost       float64
}

// Cheapest returns the lowest-cost edge, breaking ties by the lowest
// BlockIndex for deterministic output. ok is false for an empty slice.
func Cheapest(edges []Edge) (Edge, bool) {
	if len(edges) == 0 {
		return Edge{}, false
	}
	best := edges[0]
	for _, e := range edges[1:] {
		if e.Cost < best.Cost || (e.Cost == best.Cost && e.BlockIndex < best.BlockIndex) {
			best = e
		}
	}
	return best, true
}
