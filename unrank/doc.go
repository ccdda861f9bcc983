// Package unrank generates the k-th build of a TalentTree in canonical
// order without enumerating its predecessors. It builds a reachable-bitmap
// set per node index with a forward pass identical in shape to counter's
// sweep, then fills a suffix completion-count table backward from the end
// of internal/dp's processing order, and finally walks forward once more
// consuming digits of k against those tables — the same digit-DP idiom
// counter's forward convolution uses, transposed.
//
// Canonical order ranks node-processing decisions first by node Order
// index, then skip-before-select, then ascending EntryIndex, then
// ascending Rank — the same tie-break internal/dp.Branches already
// produces, so GenerateTreeBuilds and CountTreeBuilds agree on what build
// k means without either package importing the other's internals beyond
// the shared Layout.
package unrank
