package unrank

import (
	"github.com/talentdag/engine/constraint"
	"github.com/talentdag/engine/internal/dp"
	"github.com/talentdag/engine/tree"
)

// snapshotStates replays the same forward sweep counter.CountTreeBuilds
// runs, but records the full bitmap -> poly map before each node is
// processed. snapshots[i] is the state just before Order[i] is processed;
// snapshots[len(Order)] is the final state, after every node has run. The
// backward suffix fill in suffix.go only needs to visit bitmaps present in
// these snapshots, which keeps it from ever touching a bitmap the forward
// walk could not actually reach.
func snapshotStates(t *tree.TalentTree, store constraint.Store, layout *dp.Layout) []map[uint64]poly {
	budget := t.PointBudget
	snapshots := make([]map[uint64]poly, len(layout.Order)+1)

	states := map[uint64]poly{0: basePoly(budget)}
	snapshots[0] = states

	for idx, n := range layout.Order {
		c, hasConstraint := store[n.ID]
		never := layout.NeverNode(n.ID)
		always := layout.AlwaysNode(n.ID)
		branches := dp.Branches(n, c, hasConstraint, never)

		next := make(map[uint64]poly)
		for bitmap, p := range states {
			if p.isZero() {
				continue
			}
			accessible := layout.Accessible(n, bitmap)
			eff := dp.Effective(n, branches, accessible, always)

			if eff.SkipAllowed {
				nb, ok := layout.Advance(idx, bitmap)
				if ok {
					mergeStatePoly(next, budget, nb, p)
				}
			}
			if len(eff.Selects) > 0 {
				gated := applyGateFloorPoly(p, n.ReqPoints, budget)
				if !gated.isZero() {
					for _, sel := range eff.Selects {
						nb0 := bitmap
						if bit, tracked := layout.Bit[n.ID]; tracked {
							nb0 |= 1 << uint(bit)
						}
						nb, ok := layout.Advance(idx, nb0)
						if !ok {
							continue
						}
						shifted := newPoly(budget)
						addShiftedPoly(shifted, gated, sel.Cost)
						mergeStatePoly(next, budget, nb, shifted)
					}
				}
			}
		}
		states = next
		snapshots[idx+1] = states
	}
	return snapshots
}

func basePoly(budget int) poly {
	p := newPoly(budget)
	p[0] = 1
	return p
}

func mergeStatePoly(states map[uint64]poly, budget int, bitmap uint64, contribution poly) {
	existing, ok := states[bitmap]
	if !ok {
		existing = newPoly(budget)
		states[bitmap] = existing
	}
	addIntoPoly(existing, contribution)
}

func applyGateFloorPoly(p poly, reqPoints, budget int) poly {
	if reqPoints <= 0 {
		return p
	}
	out := newPoly(budget)
	for i := reqPoints; i < len(p) && i <= budget; i++ {
		out[i] = p[i]
	}
	return out
}
