package unrank

import (
	"math/big"
	"testing"

	"github.com/talentdag/engine/constraint"
	"github.com/talentdag/engine/counter"
	"github.com/talentdag/engine/tree"
)

func threeIndependentNodes(t *testing.T, budget int) *tree.TalentTree {
	t.Helper()
	n1 := &tree.Node{ID: 1, Type: tree.Single, Entries: []tree.Entry{{MaxRanks: 1}}, MaxRanks: 1, EntryNode: true}
	n2 := &tree.Node{ID: 2, Type: tree.Single, Entries: []tree.Entry{{MaxRanks: 1}}, MaxRanks: 1, EntryNode: true}
	n3 := &tree.Node{ID: 3, Type: tree.Single, Entries: []tree.Entry{{MaxRanks: 1}}, MaxRanks: 1, EntryNode: true}
	tr, err := tree.NewTalentTree(tree.ClassTree, []*tree.Node{n1, n2, n3}, nil, budget)
	if err != nil {
		t.Fatalf("NewTalentTree: %v", err)
	}
	return tr
}

func TestTotalMatchesCounter(t *testing.T) {
	tr := threeIndependentNodes(t, 3)
	store := constraint.Store{}

	wantRes, err := counter.CountTreeBuilds(tr, store)
	if err != nil {
		t.Fatalf("CountTreeBuilds: %v", err)
	}

	tb := buildTables(tr, store)
	got := tb.Total()
	if got.Cmp(wantRes.Count) != 0 {
		t.Fatalf("Total() = %s, want %s", got.String(), wantRes.Count.String())
	}
}

// A valid build spends exactly the budget (spec §3, §4.4), so at budget 2
// only the three 2-of-3 subsets of the independent nodes qualify: C(3,2) = 3.
func TestGenerateAllBuildsAreDistinct(t *testing.T) {
	tr := threeIndependentNodes(t, 2)
	store := constraint.Store{}

	builds, _, err := GenerateTreeBuilds(tr, store, 100)
	if err != nil {
		t.Fatalf("GenerateTreeBuilds: %v", err)
	}
	if len(builds) != 3 {
		t.Fatalf("got %d builds, want 3", len(builds))
	}

	seen := make(map[string]bool)
	for _, b := range builds {
		key := buildKey(b)
		if seen[key] {
			t.Fatalf("duplicate build: %s", key)
		}
		seen[key] = true
	}
}

func TestGenerateBuildAtOutOfRange(t *testing.T) {
	tr := threeIndependentNodes(t, 2)
	store := constraint.Store{}
	_, err := GenerateBuildAt(tr, store, big.NewInt(3))
	if err != ErrIndexOutOfRange {
		t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestGenerateRespectsConditional(t *testing.T) {
	n1 := &tree.Node{ID: 1, Type: tree.Single, Entries: []tree.Entry{{MaxRanks: 1}}, MaxRanks: 1, EntryNode: true}
	n3 := &tree.Node{ID: 3, Type: tree.Single, Entries: []tree.Entry{{MaxRanks: 1}}, MaxRanks: 1, EntryNode: true}
	tr, err := tree.NewTalentTree(tree.ClassTree, []*tree.Node{n1, n3}, nil, 2)
	if err != nil {
		t.Fatalf("NewTalentTree: %v", err)
	}
	store := constraint.Store{
		3: {NodeID: 3, Kind: constraint.Conditional, Condition: constraint.TalentSelected{NodeID: 1, MinRank: 1}},
	}
	builds, _, err := GenerateTreeBuilds(tr, store, 100)
	if err != nil {
		t.Fatalf("GenerateTreeBuilds: %v", err)
	}
	for _, b := range builds {
		if b.Entries[3].Selected && !b.Entries[1].Selected {
			t.Fatalf("found a build selecting node 3 without node 1: %+v", b)
		}
	}
}

func buildKey(b Build) string {
	key := ""
	for id := 1; id <= 8; id++ {
		e := b.Entries[id]
		if e.Selected {
			key += "1"
		} else {
			key += "0"
		}
	}
	return key
}
