package dp

import (
	"sort"

	"github.com/talentdag/engine/constraint"
	"github.com/talentdag/engine/tree"
)

// Monomial is one concrete way to select a node: the point cost of that
// choice. EntryIndex and Rank identify which alternative this monomial
// represents, used by unrank to record the chosen Build entry.
type Monomial struct {
	Cost       int
	EntryIndex int // Choice nodes: which entry; Single nodes: always 0
	Rank       int // Single nodes: the rank purchased; Choice nodes: the entry's MaxRanks
}

// BranchSet enumerates every way a node can be resolved during one DP
// step: skipping it (if allowed) and the ordered list of ways to select
// it, in canonical order (ascending EntryIndex, then ascending Rank).
type BranchSet struct {
	SkipAllowed bool
	Selects     []Monomial
}

// Branches enumerates n's skip/select options given any Constraint store
// entry for it. It does not consider accessibility (whether n's
// prerequisites are satisfied in a given bitmap); callers combine this
// with Layout.Accessible before committing to a select branch.
func Branches(n *tree.Node, c constraint.Constraint, hasConstraint bool, never bool) BranchSet {
	if never {
		return BranchSet{SkipAllowed: true}
	}

	always := hasConstraint && c.Kind == constraint.Always
	skipAllowed := !always && !n.FreeNode

	var selects []Monomial
	switch n.Type {
	case tree.Single:
		lo, hi := 1, n.MaxRanks
		if hasConstraint && c.ExactRank != nil {
			lo, hi = *c.ExactRank, *c.ExactRank
		}
		if n.FreeNode {
			lo, hi = n.MaxRanks, n.MaxRanks
		}
		for r := lo; r <= hi; r++ {
			cost := r
			if n.FreeNode {
				cost = 0
			}
			selects = append(selects, Monomial{Cost: cost, EntryIndex: 0, Rank: r})
		}
	default: // Choice
		entries := n.Entries
		if hasConstraint && c.EntryIndex != nil && *c.EntryIndex < len(entries) {
			e := entries[*c.EntryIndex]
			cost := e.MaxRanks
			if n.FreeNode {
				cost = 0
			}
			selects = append(selects, Monomial{Cost: cost, EntryIndex: *c.EntryIndex, Rank: e.MaxRanks})
		} else {
			for i, e := range entries {
				cost := e.MaxRanks
				if n.FreeNode {
					cost = 0
				}
				selects = append(selects, Monomial{Cost: cost, EntryIndex: i, Rank: e.MaxRanks})
			}
		}
	}

	sort.Slice(selects, func(i, j int) bool {
		if selects[i].EntryIndex != selects[j].EntryIndex {
			return selects[i].EntryIndex < selects[j].EntryIndex
		}
		return selects[i].Rank < selects[j].Rank
	})

	return BranchSet{SkipAllowed: skipAllowed, Selects: selects}
}

// Effective adjusts a BranchSet for accessibility: when n is inaccessible
// given bitmap, selection is impossible. A node that is both inaccessible
// and always-constrained has no valid completion at all (SkipAllowed is
// forced false with no selects, which the DP engines read as a dead
// state); otherwise it is forced into skip-only.
func Effective(n *tree.Node, bs BranchSet, accessible bool, always bool) BranchSet {
	if accessible || n.FreeNode {
		return bs
	}
	if always {
		return BranchSet{}
	}
	return BranchSet{SkipAllowed: true}
}
