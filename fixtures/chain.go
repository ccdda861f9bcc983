package fixtures

import (
	"fmt"

	"github.com/talentdag/engine/tree"
)

const minChainNodes = 1

// Chain builds a strict linear prerequisite chain of n nodes: node i
// requires node i-1, one per row. Useful for exercising forced-cost and
// reachability logic with a single unambiguous path.
func Chain(n int, opts ...FixtureOption) (*tree.TalentTree, error) {
	if n < minChainNodes {
		return nil, fmt.Errorf("fixtures.Chain: n=%d < min=%d: %w", n, minChainNodes, ErrTooFewNodes)
	}
	cfg := newFixtureConfig(opts...)

	nodes := make([]*tree.Node, 0, n)
	total := 0
	for i := 0; i < n; i++ {
		var prev []int
		if i > 0 {
			prev = []int{i - 1}
		}
		node := makeNode(cfg, i, i, 0, prev, i)
		nodes = append(nodes, node)
		total += node.MaxRanks
	}
	linkNext(nodes)

	gates := deriveGates(cfg, n-1)
	budget := resolveBudget(cfg, total)

	return tree.NewTalentTree(tree.ClassTree, nodes, gates, budget)
}
