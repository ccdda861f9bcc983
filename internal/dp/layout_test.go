package dp

import (
	"testing"

	"github.com/talentdag/engine/constraint"
	"github.com/talentdag/engine/tree"
)

func buildChain(t *testing.T) *tree.TalentTree {
	t.Helper()
	n1 := &tree.Node{ID: 1, Type: tree.Single, Entries: []tree.Entry{{MaxRanks: 1}}, MaxRanks: 1, Next: []int{2}, EntryNode: true}
	n2 := &tree.Node{ID: 2, Type: tree.Single, Entries: []tree.Entry{{MaxRanks: 2}}, MaxRanks: 2, Prev: []int{1}, Next: []int{3}, Row: 1}
	n3 := &tree.Node{ID: 3, Type: tree.Choice, Entries: []tree.Entry{{MaxRanks: 1, Index: 0}, {MaxRanks: 2, Index: 1}}, MaxRanks: 2, Prev: []int{2}, Row: 2}
	tr, err := tree.NewTalentTree(tree.ClassTree, []*tree.Node{n1, n2, n3}, nil, 10)
	if err != nil {
		t.Fatalf("NewTalentTree: %v", err)
	}
	return tr
}

func TestBuildLayoutTracksAncestors(t *testing.T) {
	tr := buildChain(t)
	l := BuildLayout(tr, constraint.Store{})
	if _, ok := l.Bit[1]; !ok {
		t.Fatal("node 1 is an ancestor of node 2 and should be tracked")
	}
	if _, ok := l.Bit[2]; !ok {
		t.Fatal("node 2 is an ancestor of node 3 and should be tracked")
	}
}

func TestAccessibleEntryNode(t *testing.T) {
	tr := buildChain(t)
	l := BuildLayout(tr, constraint.Store{})
	n1, _ := tr.NodeByID(1)
	if !l.Accessible(n1, 0) {
		t.Fatal("entry node should always be accessible")
	}
	n2, _ := tr.NodeByID(2)
	if l.Accessible(n2, 0) {
		t.Fatal("node 2 should be inaccessible when node 1's bit is unset")
	}
	bit1 := l.Bit[1]
	if !l.Accessible(n2, 1<<uint(bit1)) {
		t.Fatal("node 2 should be accessible once node 1's bit is set")
	}
}

func TestBranchesSingleNode(t *testing.T) {
	tr := buildChain(t)
	n2, _ := tr.NodeByID(2)
	bs := Branches(n2, constraint.Constraint{}, false, false)
	if !bs.SkipAllowed {
		t.Fatal("unconstrained single node should be skippable")
	}
	if len(bs.Selects) != 2 {
		t.Fatalf("got %d selects, want 2 (rank 1 and rank 2)", len(bs.Selects))
	}
}

func TestBranchesChoiceNodeWithEntryConstraint(t *testing.T) {
	tr := buildChain(t)
	n3, _ := tr.NodeByID(3)
	idx := 1
	c := constraint.Constraint{NodeID: 3, Kind: constraint.Conditional, EntryIndex: &idx}
	bs := Branches(n3, c, true, false)
	if len(bs.Selects) != 1 || bs.Selects[0].EntryIndex != 1 {
		t.Fatalf("expected exactly entry 1, got %+v", bs.Selects)
	}
}

func TestBranchesAlwaysNodeNotSkippable(t *testing.T) {
	tr := buildChain(t)
	n1, _ := tr.NodeByID(1)
	c := constraint.Constraint{NodeID: 1, Kind: constraint.Always}
	bs := Branches(n1, c, true, false)
	if bs.SkipAllowed {
		t.Fatal("an always-constrained node must not be skippable")
	}
}

func TestBranchesNeverNode(t *testing.T) {
	tr := buildChain(t)
	n2, _ := tr.NodeByID(2)
	bs := Branches(n2, constraint.Constraint{}, false, true)
	if !bs.SkipAllowed || len(bs.Selects) != 0 {
		t.Fatal("a never-constrained node must be skip-only")
	}
}

func TestAdvanceRetiresBits(t *testing.T) {
	tr := buildChain(t)
	l := BuildLayout(tr, constraint.Store{})
	bit1 := l.Bit[1]
	idx1 := l.IndexOf[1]
	// node 1's last consumer is node 2 at index 1, so its bit should
	// still be set right after index 0 and cleared only after index 1.
	bm, ok := l.Advance(idx1, 1<<uint(bit1))
	if !ok {
		t.Fatal("Advance should not reject an unconditioned step")
	}
	if bm&(1<<uint(bit1)) == 0 {
		t.Fatalf("bit should survive past node 1's own index if not yet its last consumer")
	}
	bm, ok = l.Advance(l.IndexOf[2], bm)
	if !ok {
		t.Fatal("Advance should not reject an unconditioned step")
	}
	if bm&(1<<uint(bit1)) != 0 {
		t.Fatalf("bit should be cleared after node 2, its last consumer")
	}
}
