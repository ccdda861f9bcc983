package codec

import (
	"sort"

	"github.com/talentdag/engine/tree"
)

// LookupNode is one node's wire-format metadata: how many bits its rank or
// entry-index field needs when selected.
type LookupNode struct {
	NodeID     int
	IsChoice   bool
	MaxRanks   int // Single nodes: valid ranks are [1, MaxRanks]
	NumEntries int // Choice nodes: valid entry indices are [0, NumEntries)
}

// EntryLookup is the canonical, ascending-node-ID ordering that
// EncodeTalentHash and DecodeTalentHash both walk, so a hash produced from
// one TalentTree's lookup only ever decodes correctly against the same
// tree's lookup.
type EntryLookup struct {
	Nodes []LookupNode
}

// BuildEntryLookup derives an EntryLookup from t, ordering nodes by
// ascending ID for a stable, deterministic wire layout independent of any
// DP processing order.
func BuildEntryLookup(t *tree.TalentTree) EntryLookup {
	nodes := make([]LookupNode, 0, len(t.Nodes))
	for _, n := range t.Nodes {
		nodes = append(nodes, LookupNode{
			NodeID:     n.ID,
			IsChoice:   n.Type == tree.Choice,
			MaxRanks:   n.MaxRanks,
			NumEntries: len(n.Entries),
		})
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].NodeID < nodes[j].NodeID })
	return EntryLookup{Nodes: nodes}
}

// fieldBits returns the number of bits needed to encode an integer in
// [0, count).
func fieldBits(count int) int {
	if count <= 1 {
		return 0
	}
	n := 0
	for (1 << uint(n)) < count {
		n++
	}
	return n
}

func (n LookupNode) fieldWidth() int {
	if n.IsChoice {
		return fieldBits(n.NumEntries)
	}
	return fieldBits(n.MaxRanks + 1) // ranks are 1..MaxRanks, field stores the rank value itself
}
