package catalog

import "errors"

var (
	// ErrCycleDetected is returned when detectCycles finds a cycle in a
	// tree's forward-edge graph. A well-formed catalog never triggers
	// this; it exists as a defensive sanity check over untrusted input.
	ErrCycleDetected = errors.New("catalog: cycle detected in node graph")

	// ErrUnknownNodeType is returned when a RawNode's Type field is
	// neither "single" nor "choice".
	ErrUnknownNodeType = errors.New("catalog: unknown node type")

	// ErrNoEntries is returned when a RawNode has zero usable entries
	// after discard filtering.
	ErrNoEntries = errors.New("catalog: node has no usable entries")

	// ErrDanglingEdge describes a RawNode.Next entry that references a node
	// ID absent from the record. Parse does not return it: such edges are
	// dropped silently.
	ErrDanglingEdge = errors.New("catalog: edge references unknown node id")
)
