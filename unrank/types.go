package unrank

// BuildEntry records how one node was resolved in a generated Build.
// EntryIndex is meaningful only for Choice nodes; Rank is meaningful only
// for Single nodes (and, for display, equals the chosen entry's MaxRanks
// on a Choice node).
type BuildEntry struct {
	Selected   bool
	EntryIndex int
	Rank       int
}

// Build is one concrete, fully resolved selection over a TalentTree:
// Entries holds a selected entry/rank for every selected node. Nodes
// absent from Entries were skipped.
type Build struct {
	Entries map[int]BuildEntry
}
