package constraint

import (
	"reflect"
	"testing"

	"github.com/talentdag/engine/tree"
)

func TestTriggersDedup(t *testing.T) {
	e := Or{Children: []BooleanExpr{
		TalentSelected{NodeID: 1},
		And{Children: []BooleanExpr{TalentSelected{NodeID: 2}, TalentSelected{NodeID: 1}}},
	}}
	got := Triggers(e)
	want := []int{1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Triggers = %v, want %v", got, want)
	}
}

func TestEvaluateMinRankAboveOneIsFalse(t *testing.T) {
	e := TalentSelected{NodeID: 1, MinRank: 2}
	rankOf := func(id int) int { return 5 }
	if Evaluate(e, rankOf) {
		t.Fatal("MinRank > 1 must evaluate conservatively false")
	}
}

func TestEvaluateAndOr(t *testing.T) {
	rankOf := func(id int) int {
		if id == 1 {
			return 1
		}
		return 0
	}
	and := And{Children: []BooleanExpr{TalentSelected{NodeID: 1}, TalentSelected{NodeID: 2}}}
	if Evaluate(and, rankOf) {
		t.Fatal("And should be false when one child is false")
	}
	or := Or{Children: []BooleanExpr{TalentSelected{NodeID: 1}, TalentSelected{NodeID: 2}}}
	if !Evaluate(or, rankOf) {
		t.Fatal("Or should be true when one child is true")
	}
}

func TestValidateEntryIndexOnSingle(t *testing.T) {
	n := &tree.Node{Type: tree.Single, Entries: []tree.Entry{{MaxRanks: 1}}, MaxRanks: 1}
	idx := 0
	c := Constraint{NodeID: 1, Kind: Conditional, EntryIndex: &idx}
	if err := Validate(c, n); err != ErrEntryIndexOnSingle {
		t.Fatalf("err = %v, want ErrEntryIndexOnSingle", err)
	}
}

func TestValidateExactRankOutOfRange(t *testing.T) {
	n := &tree.Node{Type: tree.Single, Entries: []tree.Entry{{MaxRanks: 3}}, MaxRanks: 3}
	rank := 9
	c := Constraint{NodeID: 1, Kind: Always, ExactRank: &rank}
	if err := Validate(c, n); err != ErrExactRankOutOfRange {
		t.Fatalf("err = %v, want ErrExactRankOutOfRange", err)
	}
}

func TestHasConflict(t *testing.T) {
	always := map[int]bool{1: true, 2: true}
	never := map[int]bool{2: true, 3: true}
	got := HasConflict(always, never)
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("HasConflict = %v, want [2]", got)
	}
}
