package fixtures

import (
	"fmt"

	"github.com/talentdag/engine/tree"
)

// RandomLayeredDAG builds a layered DAG from layerSizes (layerSizes[i] is
// the node count at row i). Every node in layer i+1 independently includes
// an edge to each node in layer i with probability cfg.edgeProb (an
// Erdos-Renyi-style Bernoulli trial per candidate edge, run layer by
// layer so every edge is strictly forward). A node that draws zero edges
// falls back to requiring every node in the prior layer, so the tree never
// produces an unreachable row.
//
// Requires WithSeed or WithRand; every layer must be non-empty.
func RandomLayeredDAG(layerSizes []int, opts ...FixtureOption) (*tree.TalentTree, error) {
	if len(layerSizes) < 1 {
		return nil, fmt.Errorf("fixtures.RandomLayeredDAG: no layers: %w", ErrTooFewNodes)
	}
	cfg := newFixtureConfig(opts...)
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}
	if cfg.edgeProb < 0 || cfg.edgeProb > 1 {
		return nil, ErrInvalidProbability
	}
	for i, size := range layerSizes {
		if size < 1 {
			return nil, fmt.Errorf("fixtures.RandomLayeredDAG: layer %d has size %d: %w", i, size, ErrTooFewNodes)
		}
	}

	var nodes []*tree.Node
	total := 0
	idx := 0
	var prevLayerIDs []int
	nextID := 0

	for row, size := range layerSizes {
		layerIDs := make([]int, size)
		for c := 0; c < size; c++ {
			id := nextID
			nextID++
			layerIDs[c] = id

			var prev []int
			if row > 0 {
				for _, pid := range prevLayerIDs {
					if cfg.rng.Float64() < cfg.edgeProb {
						prev = append(prev, pid)
					}
				}
				if len(prev) == 0 {
					prev = append(prev, prevLayerIDs...)
				}
			}

			node := makeNode(cfg, id, row, c, prev, idx)
			nodes = append(nodes, node)
			total += node.MaxRanks
			idx++
		}
		prevLayerIDs = layerIDs
	}
	linkNext(nodes)

	gates := deriveGates(cfg, len(layerSizes)-1)
	budget := resolveBudget(cfg, total)

	return tree.NewTalentTree(tree.ClassTree, nodes, gates, budget)
}
