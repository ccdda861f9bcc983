package validator

import "github.com/talentdag/engine/tree"

// gateFeasibility reports an error for every gate in t whose RequiredPoints
// exceed the summed MaxRanks of the non-free nodes in rows below the gate's
// row. It does not look at constraints: never-constrained nodes still
// count, and neither forced costs nor the point budget are checked per
// gate.
func gateFeasibility(t *tree.TalentTree) []Warning {
	var out []Warning
	for _, g := range t.SortedGates() {
		max := 0
		for _, n := range t.Nodes {
			if n.Row < g.Row && !n.FreeNode {
				max += n.MaxRanks
			}
		}
		if g.RequiredPoints > max {
			out = append(out, Warning{
				Severity: SeverityError,
				Check:    "gate-feasibility",
				Message:  "gate requires more points than the tree can provide below its row",
			})
		}
	}
	return out
}
