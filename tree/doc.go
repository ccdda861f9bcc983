// Package tree defines the central Entry, Node, TalentTree, and
// Specialization types that make up a parsed talent catalog, and provides
// read-only accessors for building per-tree indices.
//
// All types in this package are immutable once returned by catalog.Parse:
// nothing in this module mutates a Node, Entry, or TalentTree after
// construction. Callers may safely share a *TalentTree across goroutines
// without synchronization.
//
// The package-level sentinel errors live in errors.go; types live in
// types.go, accessor methods in methods.go.
//
// Errors:
//
//	ErrEmptyEntries     - a Node was constructed with zero Entries.
//	ErrDuplicateNodeID  - two Nodes in the same TalentTree share an ID.
//	ErrNodeNotFound     - a lookup referenced a NodeID absent from the tree.
//	ErrInvalidNodeType  - a Node's Type is neither Single nor Choice.
package tree
