package unrank

import (
	"math/big"

	"github.com/talentdag/engine/constraint"
	"github.com/talentdag/engine/internal/dp"
	"github.com/talentdag/engine/tree"
)

// tables holds everything GenerateTreeBuilds needs to turn an index k into
// a concrete Build: the shared layout, the forward-reachable snapshots,
// and the backward-filled suffix completion counts.
type tables struct {
	layout    *dp.Layout
	store     constraint.Store
	snapshots []map[uint64]poly // snapshots[i]: states just before Order[i]
	suffix    []map[uint64]poly // suffix[i][bitmap][r]: completions of Order[i:] spending r
	budget    int
}

// storeEntry looks up the Constraint for nodeID, if any.
func (tb *tables) storeEntry(nodeID int) (constraint.Constraint, bool) {
	c, ok := tb.store[nodeID]
	return c, ok
}

func buildTables(t *tree.TalentTree, store constraint.Store) *tables {
	layout := dp.BuildLayout(t, store)
	snapshots := snapshotStates(t, store, layout)
	budget := t.PointBudget
	n := len(layout.Order)

	suffix := make([]map[uint64]poly, n+1)
	base := basePoly(budget) // suffix[n] is bitmap-independent: 1 way to spend exactly 0 more.

	for i := n - 1; i >= 0; i-- {
		node := layout.Order[i]
		c, hasConstraint := store[node.ID]
		never := layout.NeverNode(node.ID)
		always := layout.AlwaysNode(node.ID)
		branches := dp.Branches(node, c, hasConstraint, never)

		layer := make(map[uint64]poly, len(snapshots[i]))
		for bitmap := range snapshots[i] {
			accessible := layout.Accessible(node, bitmap)
			eff := dp.Effective(node, branches, accessible, always)

			out := newPoly(budget)
			if eff.SkipAllowed {
				nb, ok := layout.Advance(i, bitmap)
				if ok {
					addIntoPoly(out, suffixAt(suffix, base, i+1, nb))
				}
			}
			if len(eff.Selects) > 0 {
				ceiling := budget
				if node.ReqPoints > 0 {
					ceiling = budget - node.ReqPoints
				}
				for _, sel := range eff.Selects {
					nb0 := bitmap
					if bit, tracked := layout.Bit[node.ID]; tracked {
						nb0 |= 1 << uint(bit)
					}
					nb, ok := layout.Advance(i, nb0)
					if !ok {
						continue
					}
					contribution := newPoly(budget)
					addShiftedPoly(contribution, suffixAt(suffix, base, i+1, nb), sel.Cost)
					if ceiling < budget {
						for r := ceiling + 1; r <= budget; r++ {
							contribution[r] = 0
						}
					}
					addIntoPoly(out, contribution)
				}
			}
			layer[bitmap] = out
		}
		suffix[i] = layer
	}

	return &tables{layout: layout, store: store, snapshots: snapshots, suffix: suffix, budget: budget}
}

func suffixAt(suffix []map[uint64]poly, base poly, idx int, bitmap uint64) poly {
	if idx >= len(suffix)-1 && suffix[idx] == nil {
		return base
	}
	if layer := suffix[idx]; layer != nil {
		if p, ok := layer[bitmap]; ok {
			return p
		}
	}
	return base
}

// Total returns the overall build count implied by the suffix tables,
// summed the same way counter.CountTreeBuilds does: a valid build spends
// exactly tb.budget points, so only the coefficient at index == tb.budget
// counts in each final state.
func (tb *tables) Total() *big.Int {
	total := big.NewInt(0)
	for _, p := range tb.snapshots[len(tb.layout.Order)] {
		if tb.budget < len(p) {
			total.Add(total, big.NewInt(p[tb.budget]))
		}
	}
	return total
}
