package tree

import "errors"

var (
	// ErrEmptyEntries is returned when a Node has no Entries.
	ErrEmptyEntries = errors.New("tree: node has no entries")

	// ErrDuplicateNodeID is returned when two Nodes share an ID.
	ErrDuplicateNodeID = errors.New("tree: duplicate node id")

	// ErrNodeNotFound is returned when a NodeID lookup misses.
	ErrNodeNotFound = errors.New("tree: node not found")

	// ErrInvalidNodeType is returned for a Node.Type outside {Single, Choice}.
	ErrInvalidNodeType = errors.New("tree: invalid node type")
)
