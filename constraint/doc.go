// Package constraint models the player-supplied overrides that narrow a
// TalentTree's build space: forcing a node always selected, forbidding it
// entirely, or gating it behind a boolean expression over other nodes'
// selection state.
//
// A BooleanExpr is a small closed sum type (TalentSelected, And, Or). Per
// an explicit design decision recorded in this module's DESIGN.md, a
// TalentSelected clause with MinRank > 1 is conservatively evaluated as
// false: the bit-packed DP engines in counter and unrank track only
// rank >= 1 per node, so a minimum-rank-above-one condition can never be
// proven true and is treated as permanently unsatisfied rather than
// rejected outright.
//
// Errors:
//
//	ErrAlwaysNeverConflict - a NodeID is marked both Always and Never.
//	ErrEntryIndexOnSingle  - EntryIndex was set on a constraint for a Single node.
//	ErrExactRankOnChoice   - ExactRank was set on a constraint for a Choice node.
//	ErrExactRankOutOfRange - ExactRank fell outside [1, node.MaxRanks].
//	ErrEntryIndexOutOfRange - EntryIndex fell outside the node's Entries.
//	ErrEmptyChildren       - an And/Or expression was built with zero children.
package constraint
