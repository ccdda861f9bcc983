package fixtures

import "github.com/talentdag/engine/tree"

// makeNode builds one node at (row, col) with prereqs prev, honoring the
// config's Choice/MaxRanks settings. idx is the node's 0-based build order,
// used only to decide whether this node becomes a Choice node.
func makeNode(cfg *fixtureConfig, id, row, col int, prev []int, idx int) *tree.Node {
	n := &tree.Node{
		ID:        id,
		Row:       row,
		Col:       col,
		Prev:      prev,
		EntryNode: len(prev) == 0,
	}
	if cfg.choiceEvery > 0 && idx > 0 && idx%cfg.choiceEvery == 0 {
		n.Type = tree.Choice
		n.Entries = make([]tree.Entry, cfg.choiceArity)
		for i := range n.Entries {
			n.Entries[i] = tree.Entry{ID: id*100 + i, Index: i, MaxRanks: cfg.maxRanks}
		}
		n.MaxRanks = cfg.maxRanks
	} else {
		n.Type = tree.Single
		n.Entries = []tree.Entry{{ID: id * 100, Index: 0, MaxRanks: cfg.maxRanks}}
		n.MaxRanks = cfg.maxRanks
	}
	return n
}

// linkNext populates every node's Next slice from the rest of the set's
// Prev slices, so the tree is navigable in both directions.
func linkNext(nodes []*tree.Node) {
	byID := make(map[int]*tree.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}
	for _, n := range nodes {
		for _, p := range n.Prev {
			if prevNode, ok := byID[p]; ok {
				prevNode.Next = append(prevNode.Next, n.ID)
			}
		}
	}
}

// deriveGates inserts a row gate every gateEvery rows (starting at the
// first row past 0), requiring gateCost points spent below it. Returns nil
// when gating is disabled.
func deriveGates(cfg *fixtureConfig, maxRow int) []tree.Gate {
	if cfg.gateEvery <= 0 {
		return nil
	}
	var gates []tree.Gate
	for row := cfg.gateEvery; row <= maxRow; row += cfg.gateEvery {
		gates = append(gates, tree.Gate{Row: row, RequiredPoints: cfg.gateCost})
	}
	return gates
}

// resolveBudget returns cfg.budget if set, else tt's own MaxPoints (every
// node purchasable).
func resolveBudget(cfg *fixtureConfig, maxPoints int) int {
	if cfg.budget > 0 {
		return cfg.budget
	}
	return maxPoints
}
