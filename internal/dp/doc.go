// Package dp implements the bitmap-indexed state layout shared by
// counter.CountTreeBuilds and unrank.GenerateTreeBuilds: a single
// processing order over a TalentTree's nodes, a free-list bit allocator
// that assigns one bit per node whose selection state a later node or
// conditional constraint must inspect, and the per-node skip/select branch
// enumeration both DP engines transition over.
//
// The flat-array-over-bitmask shape (state keyed by an integer bitmap, one
// bit retired as soon as its last consumer has been processed) is the same
// idiom lvlath's tsp.heldKarp uses for its Hamiltonian-path DP, adapted
// here from "minimum tour cost over subsets" to "node processing order
// over a DAG, tracking only the bits later steps still need".
//
// A TalentSelected condition with MinRank > 1 is evaluated conservatively
// as always-false (see constraint's package doc): this package therefore
// never needs to track a node's exact rank, only whether it has rank >= 1,
// which collapses what would otherwise be a second "at full rank" bit per
// multi-rank ancestor down to a single bit per tracked node.
package dp
