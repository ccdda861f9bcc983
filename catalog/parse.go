package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/talentdag/engine/tree"
)

// Parse converts raw catalog records into tree.Specialization values, one
// per record, using budgets for the point-budget field of every produced
// TalentTree.
func Parse(records []RawCatalogRecord, budgets Budgets) ([]tree.Specialization, error) {
	specs := make([]tree.Specialization, 0, len(records))
	for _, rec := range records {
		spec, err := parseOne(rec, budgets)
		if err != nil {
			return nil, fmt.Errorf("catalog: parsing %s/%s: %w", rec.ClassName, rec.SpecName, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseOne(rec RawCatalogRecord, budgets Budgets) (tree.Specialization, error) {
	classTree, err := buildTree(rec.ClassNodes, tree.ClassTree, budgets.Class, nil, "")
	if err != nil {
		return tree.Specialization{}, fmt.Errorf("class tree: %w", err)
	}
	specTree, err := buildTree(rec.SpecNodes, tree.SpecTree, budgets.Spec, nil, "")
	if err != nil {
		return tree.Specialization{}, fmt.Errorf("spec tree: %w", err)
	}

	heroGroups := groupBySubTree(rec.HeroNodes)
	names := subTreeNames(rec.SubTrees, rec.HeroNodes)

	heroTrees := make([]*tree.TalentTree, 0, len(heroGroups))
	for _, id := range sortedSubTreeIDs(heroGroups) {
		nodes := heroGroups[id]
		idCopy := id
		ht, err := buildTree(nodes, tree.HeroTree, budgets.Hero, &idCopy, names[id])
		if err != nil {
			return tree.Specialization{}, fmt.Errorf("hero tree %d: %w", id, err)
		}
		markApex(ht)
		heroTrees = append(heroTrees, ht)
	}

	return tree.Specialization{
		ClassName: rec.ClassName,
		SpecName:  rec.SpecName,
		ClassTree: classTree,
		SpecTree:  specTree,
		HeroTrees: heroTrees,
	}, nil
}

func groupBySubTree(nodes []RawNode) map[int][]RawNode {
	out := make(map[int][]RawNode)
	for _, n := range nodes {
		id := 0
		if n.SubTreeID != nil {
			id = *n.SubTreeID
		}
		out[id] = append(out[id], n)
	}
	return out
}

func sortedSubTreeIDs(groups map[int][]RawNode) []int {
	ids := make([]int, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// subTreeNames resolves a display name for every hero sub-tree ID: the
// explicit RawSubTreeMeta name when one exists, otherwise the synthesized
// name "sub-tree <id>". Node names are not split or consulted.
func subTreeNames(meta []RawSubTreeMeta, nodes []RawNode) map[int]string {
	out := make(map[int]string)
	for _, m := range meta {
		out[m.SubTreeID] = m.Name
	}
	for _, n := range nodes {
		if n.SubTreeID == nil {
			continue
		}
		id := *n.SubTreeID
		if _, ok := out[id]; ok {
			continue
		}
		out[id] = fmt.Sprintf("sub-tree %d", id)
	}
	return out
}

func buildTree(raw []RawNode, typ tree.TreeType, budget int, subTreeID *int, subTreeName string) (*tree.TalentTree, error) {
	raw = discardInvalid(raw)
	if len(raw) == 0 {
		t, err := tree.NewTalentTree(typ, nil, nil, budget)
		if err != nil {
			return nil, err
		}
		t.SubTreeID = subTreeID
		t.SubTreeName = subTreeName
		return t, nil
	}

	byID := make(map[int]RawNode, len(raw))
	for _, n := range raw {
		byID[n.ID] = n
	}

	rawRows, rawCols := make(map[int]int, len(raw)), make(map[int]int, len(raw))
	for _, n := range raw {
		rawRows[n.ID] = quantize(n.PosY)
		rawCols[n.ID] = quantize(n.PosX)
	}
	row := densify(rawRows)

	nodes := make([]*tree.Node, 0, len(raw))
	nextByID := make(map[int][]int, len(raw))
	prevByID := make(map[int][]int, len(raw))

	for _, n := range raw {
		var kept []int
		for _, nb := range n.Next {
			target, ok := byID[nb]
			if !ok {
				continue // dangling edge to a discarded/unknown node: drop silently
			}
			if row[target.ID] <= row[n.ID] {
				continue // not a forward edge: discard
			}
			kept = append(kept, nb)
			prevByID[nb] = append(prevByID[nb], n.ID)
		}
		nextByID[n.ID] = kept
	}

	ids := make([]int, 0, len(raw))
	for _, n := range raw {
		ids = append(ids, n.ID)
	}
	order := stableTopoOrder(ids, row, rawCols)
	if err := detectCycles(order, nextByID); err != nil {
		return nil, err
	}

	for _, n := range raw {
		nt, err := nodeType(n.Type)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", n.ID, err)
		}
		entries, err := buildEntries(n)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", n.ID, err)
		}
		maxRanks := nodeMaxRanks(nt, entries)

		reqPoints := n.ReqPoints
		if n.FreeNode || n.EntryNode {
			reqPoints = 0
		}

		nodes = append(nodes, &tree.Node{
			ID:        n.ID,
			Type:      nt,
			Entries:   entries,
			MaxRanks:  maxRanks,
			Next:      nextByID[n.ID],
			Prev:      prevByID[n.ID],
			Row:       row[n.ID],
			Col:       rawCols[n.ID],
			ReqPoints: reqPoints,
			FreeNode:  n.FreeNode,
			EntryNode: n.EntryNode,
			SubTreeID: subTreeID,
		})
	}

	gates := deriveGates(nodes)

	t, err := tree.NewTalentTree(typ, nodes, gates, budget)
	if err != nil {
		return nil, err
	}
	t.SubTreeID = subTreeID
	t.SubTreeName = subTreeName
	return t, nil
}

// discardInvalid drops raw nodes with no name and no usable entry; such
// records appear in exported data as placeholder/removed-content rows.
func discardInvalid(raw []RawNode) []RawNode {
	out := raw[:0:0]
	for _, n := range raw {
		if n.Name == "" && len(n.Entries) == 0 {
			continue
		}
		out = append(out, n)
	}
	return out
}

func nodeType(s string) (tree.NodeType, error) {
	switch s {
	case "single", "":
		return tree.Single, nil
	case "choice":
		return tree.Choice, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownNodeType, s)
	}
}

func buildEntries(n RawNode) ([]tree.Entry, error) {
	if len(n.Entries) == 0 {
		return nil, ErrNoEntries
	}
	out := make([]tree.Entry, 0, len(n.Entries))
	for _, e := range n.Entries {
		name := e.Name
		if name == "" {
			name = n.Name
		}
		out = append(out, tree.Entry{
			ID:       e.ID,
			Name:     name,
			MaxRanks: maxInt(e.MaxRanks, 1),
			Index:    e.Index,
			SpellID:  e.SpellID,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

func nodeMaxRanks(t tree.NodeType, entries []tree.Entry) int {
	switch t {
	case tree.Single:
		return entries[0].MaxRanks
	default: // Choice: exposure is the costliest entry
		m := entries[0].MaxRanks
		for _, e := range entries[1:] {
			if e.MaxRanks > m {
				m = e.MaxRanks
			}
		}
		return m
	}
}

// deriveGates collects the distinct nonzero ReqPoints thresholds present on
// nodes, pairing each with the lowest row at which it appears.
func deriveGates(nodes []*tree.Node) []tree.Gate {
	rowFor := make(map[int]int)
	for _, n := range nodes {
		if n.ReqPoints == 0 {
			continue
		}
		if r, ok := rowFor[n.ReqPoints]; !ok || n.Row < r {
			rowFor[n.ReqPoints] = n.Row
		}
	}
	gates := make([]tree.Gate, 0, len(rowFor))
	for req, row := range rowFor {
		gates = append(gates, tree.Gate{Row: row, RequiredPoints: req})
	}
	sort.Slice(gates, func(i, j int) bool { return gates[i].RequiredPoints < gates[j].RequiredPoints })
	return gates
}

// markApex flags hero-tree nodes with no outgoing edges as IsApex.
func markApex(t *tree.TalentTree) {
	for _, n := range t.Nodes {
		if len(n.Next) == 0 {
			n.IsApex = true
		}
	}
}

func quantize(v float64) int {
	return int(math.Round(v / gridUnit))
}

// densify maps each node's raw quantized row to a dense, zero-based index,
// preserving ascending order of the distinct raw values.
func densify(raw map[int]int) map[int]int {
	distinct := make([]int, 0, len(raw))
	seen := make(map[int]bool)
	for _, v := range raw {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	sort.Ints(distinct)
	rank := make(map[int]int, len(distinct))
	for i, v := range distinct {
		rank[v] = i
	}
	out := make(map[int]int, len(raw))
	for id, v := range raw {
		out[id] = rank[v]
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
