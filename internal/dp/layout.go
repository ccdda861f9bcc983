package dp

import (
	"math/bits"
	"sort"

	"github.com/talentdag/engine/constraint"
	"github.com/talentdag/engine/tree"
)

// Rule is one conditional constraint resolved against Layout's bit
// assignment: Bit[TargetNodeID] is set in the bitmap once the target node
// is selected, and Expr is evaluated with every TalentSelected clause
// resolved against Bit.
type Rule struct {
	TargetNodeID int
	Expr         constraint.BooleanExpr
}

// Layout is the node order, bit assignment, and per-step bookkeeping shared
// by counter.CountTreeBuilds and unrank.GenerateTreeBuilds. Build it once
// per (TalentTree, constraint.Store) pair and reuse it for both engines so
// their bitmaps agree bit-for-bit.
type Layout struct {
	Order   []*tree.Node
	IndexOf map[int]int // node ID -> position in Order

	Bit map[int]int // node ID -> assigned bitmap bit, only for tracked nodes

	retireAt map[int][]int   // order index -> bits to clear after this step
	enforce  map[int][]Rule  // order index -> conditionals to check after this step
	never    map[int]bool
	always   map[int]bool

	NumBits int

	// UnresolvedTargets lists conditional-constraint target node IDs whose
	// expression referenced no node present in the tree; such constraints
	// are dropped from enforcement entirely (treated as unconstrained).
	UnresolvedTargets []int
}

// BuildLayout computes the processing order and bit assignment for t under
// store. Nodes are ordered by (ReqPoints, Row, ID) ascending, which
// respects every forward edge because catalog.Parse never emits an edge
// whose target has an equal-or-lower row than its source.
func BuildLayout(t *tree.TalentTree, store constraint.Store) *Layout {
	order := make([]*tree.Node, len(t.Nodes))
	copy(order, t.Nodes)
	sort.Slice(order, func(i, j int) bool {
		if order[i].ReqPoints != order[j].ReqPoints {
			return order[i].ReqPoints < order[j].ReqPoints
		}
		if order[i].Row != order[j].Row {
			return order[i].Row < order[j].Row
		}
		return order[i].ID < order[j].ID
	})

	indexOf := make(map[int]int, len(order))
	for i, n := range order {
		indexOf[n.ID] = i
	}

	l := &Layout{
		Order:    order,
		IndexOf:  indexOf,
		Bit:      make(map[int]int),
		retireAt: make(map[int][]int),
		enforce:  make(map[int][]Rule),
		never:    constraint.NeverNodes(store),
		always:   constraint.AlwaysNodes(store),
	}

	lastConsumer := make(map[int]int) // node ID -> last order-index needing this node's bit

	markTracked := func(nodeID, untilIdx int) {
		if cur, ok := lastConsumer[nodeID]; !ok || untilIdx > cur {
			lastConsumer[nodeID] = untilIdx
		}
	}

	// Ancestors: every element of prev(n) for a non-free, non-entry node
	// with a nonempty prev list needs its selection bit known at n's index.
	for _, n := range order {
		if n.FreeNode || n.EntryNode || len(n.Prev) == 0 {
			continue
		}
		idx := indexOf[n.ID]
		for _, p := range n.Prev {
			markTracked(p, idx)
		}
	}

	// Conditionals: every trigger and the target itself need a bit alive
	// through the index where the condition is enforced (max of target's
	// and every trigger's own index).
	for nodeID, c := range store {
		if c.Kind != constraint.Conditional || c.Condition == nil {
			continue
		}
		targetIdx, ok := indexOf[nodeID]
		if !ok {
			continue
		}
		triggers := constraint.Triggers(c.Condition)
		enforceIdx := targetIdx
		resolved := 0
		for _, trigID := range triggers {
			if tIdx, ok := indexOf[trigID]; ok {
				resolved++
				if tIdx > enforceIdx {
					enforceIdx = tIdx
				}
			}
		}
		if resolved == 0 && len(triggers) > 0 {
			l.UnresolvedTargets = append(l.UnresolvedTargets, nodeID)
			continue
		}
		markTracked(nodeID, enforceIdx)
		for _, trigID := range triggers {
			if _, ok := indexOf[trigID]; ok {
				markTracked(trigID, enforceIdx)
			}
		}
		l.enforce[enforceIdx] = append(l.enforce[enforceIdx], Rule{TargetNodeID: nodeID, Expr: c.Condition})
	}

	// Assign bits with a free-list: claim the lowest free bit the first
	// time a node is seen as tracked, retire it right after its last
	// consumer's index.
	var free []int
	nextBit := 0
	claim := func() int {
		if len(free) > 0 {
			sort.Ints(free)
			b := free[0]
			free = free[1:]
			return b
		}
		b := nextBit
		nextBit++
		return b
	}

	for i, n := range order {
		if i > 0 {
			// Bits retired after the previous step are clear in every
			// bitmap from here on and may be handed out again.
			free = append(free, l.retireAt[i-1]...)
		}
		if until, ok := lastConsumer[n.ID]; ok {
			if _, assigned := l.Bit[n.ID]; !assigned {
				l.Bit[n.ID] = claim()
			}
			l.retireAt[until] = append(l.retireAt[until], l.Bit[n.ID])
		}
	}
	l.NumBits = nextBit
	return l
}

// Accessible reports whether n can be purchased given bitmap: true when n
// has no tracked prerequisites (entry/free nodes, or nodes with an empty
// Prev list), or when at least one of n.Prev's bits is set (any-of
// semantics: multiple incoming edges represent alternative unlock paths).
func (l *Layout) Accessible(n *tree.Node, bitmap uint64) bool {
	if n.EntryNode || n.FreeNode || len(n.Prev) == 0 {
		return true
	}
	for _, p := range n.Prev {
		if b, ok := l.Bit[p]; ok && bitmap&(1<<uint(b)) != 0 {
			return true
		}
	}
	return false
}

// Advance applies bit retirement and conditional enforcement for the node
// at order index idx, given the bitmap that results from that node's
// skip/select transition. It returns ok=false when a conditional rule
// enforced at this step is violated, meaning this branch is dead.
func (l *Layout) Advance(idx int, bitmap uint64) (uint64, bool) {
	for _, rule := range l.enforce[idx] {
		targetBit, ok := l.Bit[rule.TargetNodeID]
		if !ok {
			continue
		}
		targetSelected := bitmap&(1<<uint(targetBit)) != 0
		if !targetSelected {
			continue
		}
		if !evaluate(rule.Expr, l.Bit, bitmap) {
			return 0, false
		}
	}
	for _, b := range l.retireAt[idx] {
		bitmap &^= 1 << uint(b)
	}
	return bitmap, true
}

// evaluate resolves a BooleanExpr against bitmap using bitOf to find each
// TalentSelected clause's bit. A clause with MinRank > 1 is conservatively
// false: Layout never tracks exact rank, only rank >= 1.
func evaluate(e constraint.BooleanExpr, bitOf map[int]int, bitmap uint64) bool {
	switch v := e.(type) {
	case constraint.TalentSelected:
		if v.MinRank > 1 {
			return false
		}
		b, ok := bitOf[v.NodeID]
		if !ok {
			return false
		}
		return bitmap&(1<<uint(b)) != 0
	case constraint.And:
		for _, c := range v.Children {
			if !evaluate(c, bitOf, bitmap) {
				return false
			}
		}
		return true
	case constraint.Or:
		for _, c := range v.Children {
			if evaluate(c, bitOf, bitmap) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// PopCount is exposed for callers that want to report bitmap cardinality
// (e.g. diagnostics); the DP engines themselves do not call it.
func PopCount(bitmap uint64) int {
	return bits.OnesCount64(bitmap)
}

func (l *Layout) NeverNode(id int) bool  { return l.never[id] }
func (l *Layout) AlwaysNode(id int) bool { return l.always[id] }
