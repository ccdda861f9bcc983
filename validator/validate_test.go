package validator

import (
	"testing"

	"github.com/talentdag/engine/constraint"
	"github.com/talentdag/engine/tree"
)

func chainTree(t *testing.T, budget int) *tree.TalentTree {
	t.Helper()
	n1 := &tree.Node{ID: 1, Type: tree.Single, Entries: []tree.Entry{{MaxRanks: 1}}, MaxRanks: 1, Next: []int{2}, EntryNode: true}
	n2 := &tree.Node{ID: 2, Type: tree.Single, Entries: []tree.Entry{{MaxRanks: 1}}, MaxRanks: 1, Prev: []int{1}, ReqPoints: 1}
	tr, err := tree.NewTalentTree(tree.ClassTree, []*tree.Node{n1, n2}, []tree.Gate{{Row: 1, RequiredPoints: 1}}, budget)
	if err != nil {
		t.Fatalf("NewTalentTree: %v", err)
	}
	return tr
}

func TestValidateCleanTree(t *testing.T) {
	tr := chainTree(t, 2)
	res := Validate(tr, constraint.Store{})
	if res.HasError() {
		t.Fatalf("unexpected error warnings: %+v", res.Warnings)
	}
}

func TestValidateLoneAlwaysIsNoConflict(t *testing.T) {
	tr := chainTree(t, 2)
	store := constraint.Store{1: {NodeID: 1, Kind: constraint.Always}}
	store2 := constraint.Store{1: {NodeID: 1, Kind: constraint.Never}}
	// simulate a merged store carrying a conflict by hand since Store holds
	// one Constraint per node; HasConflict is exercised directly elsewhere.
	_ = store2
	res := Validate(tr, store)
	if res.HasError() {
		t.Fatalf("a lone always constraint should not error: %+v", res.Warnings)
	}
}

func TestValidateUnreachableAlways(t *testing.T) {
	n1 := &tree.Node{ID: 1, Type: tree.Single, Entries: []tree.Entry{{MaxRanks: 1}}, MaxRanks: 1, EntryNode: true}
	n2 := &tree.Node{ID: 2, Type: tree.Single, Entries: []tree.Entry{{MaxRanks: 1}}, MaxRanks: 1, Prev: []int{99}}
	tr, err := tree.NewTalentTree(tree.ClassTree, []*tree.Node{n1, n2}, nil, 5)
	if err != nil {
		t.Fatalf("NewTalentTree: %v", err)
	}
	store := constraint.Store{2: {NodeID: 2, Kind: constraint.Always}}
	res := Validate(tr, store)
	if !res.HasError() {
		t.Fatal("expected an error: node 2 has no real entry path and no always-node marks it reachable")
	}
}

func TestValidateGateInfeasible(t *testing.T) {
	n1 := &tree.Node{ID: 1, Type: tree.Single, Entries: []tree.Entry{{MaxRanks: 1}}, MaxRanks: 1, EntryNode: true, Row: 0}
	n2 := &tree.Node{ID: 2, Type: tree.Single, Entries: []tree.Entry{{MaxRanks: 1}}, MaxRanks: 1, Row: 1, ReqPoints: 10}
	tr, err := tree.NewTalentTree(tree.ClassTree, []*tree.Node{n1, n2}, []tree.Gate{{Row: 1, RequiredPoints: 10}}, 20)
	if err != nil {
		t.Fatalf("NewTalentTree: %v", err)
	}
	res := Validate(tr, constraint.Store{})
	if !res.HasError() {
		t.Fatal("gate requiring 10 points with only 1 point available below it should be infeasible")
	}
}
