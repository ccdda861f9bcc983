package fixtures

import (
	"fmt"

	"github.com/talentdag/engine/tree"
)

const minHubLeaves = 1

// Hub builds a single entry node at row 0 (the hub) with n leaves at row 1,
// each requiring only the hub. Useful for exercising the DP's ancestor-bit
// sharing: all n leaves are gated behind the same single predecessor bit.
func Hub(n int, opts ...FixtureOption) (*tree.TalentTree, error) {
	if n < minHubLeaves {
		return nil, fmt.Errorf("fixtures.Hub: n=%d < min=%d: %w", n, minHubLeaves, ErrTooFewNodes)
	}
	cfg := newFixtureConfig(opts...)

	const hubID = 0
	hub := makeNode(cfg, hubID, 0, 0, nil, 0)
	nodes := []*tree.Node{hub}
	total := hub.MaxRanks

	for i := 0; i < n; i++ {
		id := i + 1
		leaf := makeNode(cfg, id, 1, i, []int{hubID}, id)
		nodes = append(nodes, leaf)
		total += leaf.MaxRanks
	}
	linkNext(nodes)

	gates := deriveGates(cfg, 1)
	budget := resolveBudget(cfg, total)

	return tree.NewTalentTree(tree.ClassTree, nodes, gates, budget)
}
