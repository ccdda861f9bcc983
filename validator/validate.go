package validator

import (
	"github.com/talentdag/engine/constraint"
	"github.com/talentdag/engine/tree"
)

// Validate runs every structural check, in the fixed order the DP engines
// depend on, and aggregates every finding into a Result.
func Validate(t *tree.TalentTree, store constraint.Store) Result {
	var r Result

	always := constraint.AlwaysNodes(store)
	never := constraint.NeverNodes(store)

	// Check 1: always/never collision.
	if conflicts := constraint.HasConflict(always, never); len(conflicts) > 0 {
		r.Warnings = append(r.Warnings, Warning{
			Severity: SeverityError,
			Check:    "always-never-collision",
			Message:  "one or more nodes are marked both always and never",
			NodeIDs:  conflicts,
		})
	}

	// Check 2: reachability of always nodes under the never-set.
	reachable := ComputeReachable(t, never)
	var unreachableAlways []int
	for id := range always {
		if !reachable[id] {
			unreachableAlways = append(unreachableAlways, id)
		}
	}
	if len(unreachableAlways) > 0 {
		r.Warnings = append(r.Warnings, Warning{
			Severity: SeverityError,
			Check:    "always-unreachable",
			Message:  "an always-constrained node is unreachable given the never-set",
			NodeIDs:  unreachableAlways,
		})
	}

	// Check 3: total selectable points versus budget (informational).
	total := 0
	for _, n := range t.Nodes {
		if n.FreeNode || never[n.ID] || !reachable[n.ID] {
			continue
		}
		total += n.MaxRanks
	}
	if total < t.PointBudget {
		r.Warnings = append(r.Warnings, Warning{
			Severity: SeverityWarning,
			Check:    "total-selectable",
			Message:  "reachable, non-never content cannot absorb the full point budget",
		})
	}

	// Check 4: forced cost of always-constrained nodes and their
	// prerequisite chains.
	_, forcedCost := ForcedNodesAndCost(t, store)
	if forcedCost > t.PointBudget {
		r.Warnings = append(r.Warnings, Warning{
			Severity: SeverityError,
			Check:    "forced-cost",
			Message:  "mandatory ranks from always constraints exceed the point budget",
		})
	}

	// Check 5: per-gate feasibility.
	r.Warnings = append(r.Warnings, gateFeasibility(t)...)

	return r
}
