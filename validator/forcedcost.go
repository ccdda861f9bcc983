package validator

import (
	"sort"

	"github.com/talentdag/engine/constraint"
	"github.com/talentdag/engine/tree"
)

// forcedCostResult mirrors lvlath's dijkstra.Result shape (Dist/Prev keyed
// by vertex) but is filled by a single forward relaxation pass over nodes
// sorted by (ReqPoints, Row): every edge in a parsed TalentTree already
// points to a strictly later row, so a DAG shortest-path relaxation needs
// no priority queue, unlike the general weighted graphs dijkstra.Run solves.
type forcedCostResult struct {
	dist map[int]int
	via  map[int]int // argmin predecessor actually used to reach each node
}

// mandatoryRank returns the minimum number of ranks that must be purchased
// on n to satisfy an Always constraint on it or on a descendant that
// depends on it, using c (if present) to pin an exact rank or entry.
func mandatoryRank(n *tree.Node, c constraint.Constraint, hasConstraint bool) int {
	if n.FreeNode {
		return 0
	}
	if n.Type == tree.Single {
		if hasConstraint && c.ExactRank != nil {
			return *c.ExactRank
		}
		return 1
	}
	// Choice: cheapest satisfying entry.
	if hasConstraint && c.EntryIndex != nil && *c.EntryIndex < len(n.Entries) {
		return n.Entries[*c.EntryIndex].MaxRanks
	}
	min := n.Entries[0].MaxRanks
	for _, e := range n.Entries[1:] {
		if e.MaxRanks < min {
			min = e.MaxRanks
		}
	}
	return min
}

func selfCost(n *tree.Node, always bool, store constraint.Store) int {
	if always || n.FreeNode {
		return 0
	}
	c, ok := store[n.ID]
	return mandatoryRank(n, c, ok)
}

func computeForcedCost(t *tree.TalentTree, store constraint.Store, always map[int]bool) forcedCostResult {
	order := make([]*tree.Node, len(t.Nodes))
	copy(order, t.Nodes)
	sort.Slice(order, func(i, j int) bool {
		if order[i].ReqPoints != order[j].ReqPoints {
			return order[i].ReqPoints < order[j].ReqPoints
		}
		return order[i].Row < order[j].Row
	})

	dist := make(map[int]int, len(order))
	via := make(map[int]int, len(order))
	const unreached = -1

	for _, n := range order {
		cost := selfCost(n, always[n.ID], store)
		if len(n.Prev) == 0 {
			dist[n.ID] = cost
			via[n.ID] = unreached
			continue
		}
		best := -1
		bestPrev := unreached
		for _, p := range n.Prev {
			pd, ok := dist[p]
			if !ok {
				continue
			}
			if best == -1 || pd < best {
				best = pd
				bestPrev = p
			}
		}
		if best == -1 {
			best = 0
		}
		dist[n.ID] = best + cost
		via[n.ID] = bestPrev
	}
	return forcedCostResult{dist: dist, via: via}
}

// ForcedNodesAndCost walks the argmin predecessor chain back from every
// always-constrained node, collecting every node that must be purchased to
// satisfy it and summing their mandatory ranks.
func ForcedNodesAndCost(t *tree.TalentTree, store constraint.Store) (forced map[int]bool, totalCost int) {
	always := constraint.AlwaysNodes(store)
	fc := computeForcedCost(t, store, always)
	forced = make(map[int]bool)

	for id := range always {
		n, err := t.NodeByID(id)
		if err != nil {
			continue
		}
		if !forced[id] {
			forced[id] = true
			c, ok := store[id]
			totalCost += mandatoryRank(n, c, ok)
		}
		cur := fc.via[id]
		for cur != -1 && !forced[cur] {
			pn, err := t.NodeByID(cur)
			if err != nil {
				break
			}
			forced[cur] = true
			totalCost += selfCost(pn, always[cur], store)
			cur = fc.via[cur]
		}
	}
	return forced, totalCost
}
