// Package catalog turns raw talent-tree records, as exported by a game
// client's data files, into validated tree.Specialization values.
//
// Parse performs, in order: coordinate quantization and row densification,
// forward-edge filtering (an edge is kept only if it points to a strictly
// later row), a DAG-sanity pass (detectCycles) that a well-formed catalog
// should never trip, hero-node grouping by sub-tree ID, gate derivation
// from row thresholds, and per-node MaxRanks/apex derivation.
//
// Complexity: O(V^2 + E) per tree in the worst case, dominated by the
// insertion sort in stableTopoOrder; the edge filter is a single pass.
package catalog
