package tree

import (
	"errors"
	"testing"
)

func singleNode(id int, maxRanks int, free bool) *Node {
	return &Node{
		ID:       id,
		Type:     Single,
		Entries:  []Entry{{ID: id*10 + 1, Name: "entry", MaxRanks: maxRanks, Index: 0}},
		MaxRanks: maxRanks,
		FreeNode: free,
	}
}

func TestNewTalentTreeMaxPoints(t *testing.T) {
	nodes := []*Node{
		singleNode(1, 1, false),
		singleNode(2, 3, false),
		singleNode(3, 2, true), // free, excluded from MaxPoints
	}
	tr, err := NewTalentTree(ClassTree, nodes, nil, 10)
	if err != nil {
		t.Fatalf("NewTalentTree: %v", err)
	}
	if tr.MaxPoints != 4 {
		t.Fatalf("MaxPoints = %d, want 4", tr.MaxPoints)
	}
}

func TestNewTalentTreeDuplicateID(t *testing.T) {
	nodes := []*Node{singleNode(1, 1, false), singleNode(1, 2, false)}
	_, err := NewTalentTree(ClassTree, nodes, nil, 10)
	if !errors.Is(err, ErrDuplicateNodeID) {
		t.Fatalf("err = %v, want ErrDuplicateNodeID", err)
	}
}

func TestNewTalentTreeEmptyEntries(t *testing.T) {
	nodes := []*Node{{ID: 1, Type: Single}}
	_, err := NewTalentTree(ClassTree, nodes, nil, 10)
	if !errors.Is(err, ErrEmptyEntries) {
		t.Fatalf("err = %v, want ErrEmptyEntries", err)
	}
}

func TestNodeByID(t *testing.T) {
	nodes := []*Node{singleNode(1, 1, false)}
	tr, err := NewTalentTree(ClassTree, nodes, nil, 10)
	if err != nil {
		t.Fatalf("NewTalentTree: %v", err)
	}
	if _, err := tr.NodeByID(1); err != nil {
		t.Fatalf("NodeByID(1): %v", err)
	}
	if _, err := tr.NodeByID(99); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("NodeByID(99) err = %v, want ErrNodeNotFound", err)
	}
}

func TestEntryCostFreeNode(t *testing.T) {
	n := singleNode(1, 5, true)
	if c := n.EntryCost(0); c != 0 {
		t.Fatalf("EntryCost = %d, want 0 for free node", c)
	}
}

func TestSortedGatesOrder(t *testing.T) {
	tr := &TalentTree{Gates: []Gate{{Row: 3, RequiredPoints: 20}, {Row: 1, RequiredPoints: 0}, {Row: 2, RequiredPoints: 10}}}
	sorted := tr.SortedGates()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].RequiredPoints > sorted[i].RequiredPoints {
			t.Fatalf("gates not sorted: %+v", sorted)
		}
	}
}
