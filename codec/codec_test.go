package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentdag/engine/tree"
)

func mustLookupTree(t *testing.T) *tree.TalentTree {
	t.Helper()
	nodes := []*tree.Node{
		{
			ID:       1,
			Type:     tree.Single,
			Entries:  []tree.Entry{{MaxRanks: 3}},
			MaxRanks: 3,
		},
		{
			ID:   2,
			Type: tree.Choice,
			Entries: []tree.Entry{
				{MaxRanks: 1, Index: 0},
				{MaxRanks: 1, Index: 1},
				{MaxRanks: 1, Index: 2},
			},
			MaxRanks: 1,
			Prev:     []int{1},
		},
	}
	tt, err := tree.NewTalentTree(tree.ClassTree, nodes, nil, 10)
	require.NoError(t, err)
	return tt
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tt := mustLookupTree(t)
	lookup := BuildEntryLookup(tt)

	selections := map[int]Selection{
		1: {NodeID: 1, Rank: 2},
		2: {NodeID: 2, EntryIndex: 1},
	}

	hash, err := EncodeTalentHash(lookup, selections)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	decoded, err := DecodeTalentHash(hash, lookup)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, 2, decoded[1].Rank)
	assert.Equal(t, 1, decoded[2].EntryIndex)
}

func TestEncodeEmptySelectionProducesEmptyString(t *testing.T) {
	tt := mustLookupTree(t)
	lookup := BuildEntryLookup(tt)

	hash, err := EncodeTalentHash(lookup, nil)
	require.NoError(t, err)
	assert.Empty(t, hash)
}

func TestDecodeEmptyStringIsNilNil(t *testing.T) {
	tt := mustLookupTree(t)
	lookup := BuildEntryLookup(tt)

	decoded, err := DecodeTalentHash("", lookup)
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestEncodeUnknownNodeErrors(t *testing.T) {
	tt := mustLookupTree(t)
	lookup := BuildEntryLookup(tt)

	_, err := EncodeTalentHash(lookup, map[int]Selection{99: {NodeID: 99, Rank: 1}})
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestEncodeRankOutOfRangeErrors(t *testing.T) {
	tt := mustLookupTree(t)
	lookup := BuildEntryLookup(tt)

	_, err := EncodeTalentHash(lookup, map[int]Selection{1: {NodeID: 1, Rank: 9}})
	assert.ErrorIs(t, err, ErrRankOutOfRange)
}

func TestDecodeUnsupportedVersionErrors(t *testing.T) {
	tt := mustLookupTree(t)
	lookup := BuildEntryLookup(tt)

	w := NewBitWriter()
	w.WriteBits(99, 8)
	for range lookup.Nodes {
		w.WriteBits(0, 1)
	}
	hash := encodeBits(w.BitLen(), w.Bytes())

	_, err := DecodeTalentHash(hash, lookup)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestDecodeInvalidCharErrors(t *testing.T) {
	tt := mustLookupTree(t)
	lookup := BuildEntryLookup(tt)

	_, err := DecodeTalentHash("!!!", lookup)
	assert.ErrorIs(t, err, ErrInvalidChar)
}
