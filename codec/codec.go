package codec

import (
	"sort"
)

// Selection is one node's resolved purchase, as passed to EncodeTalentHash.
// EntryIndex is meaningful only for Choice nodes, Rank only for Single
// nodes; the unused field is ignored by the encoder.
type Selection struct {
	NodeID     int
	EntryIndex int
	Rank       int
}

// EncodeTalentHash packs selections into a short string against lookup's
// canonical node ordering. Nodes absent from selections are encoded as
// unselected. An empty selections map (or nil) produces the empty string.
func EncodeTalentHash(lookup EntryLookup, selections map[int]Selection) (string, error) {
	if len(selections) == 0 {
		return "", nil
	}
	for id := range selections {
		if !hasNode(lookup, id) {
			return "", ErrUnknownNode
		}
	}

	w := NewBitWriter()
	w.WriteBits(uint64(CurrentVersion), 8)

	for _, n := range lookup.Nodes {
		sel, ok := selections[n.NodeID]
		if !ok {
			w.WriteBits(0, 1)
			continue
		}
		w.WriteBits(1, 1)
		width := n.fieldWidth()
		if width == 0 {
			continue
		}
		if n.IsChoice {
			if sel.EntryIndex < 0 || sel.EntryIndex >= n.NumEntries {
				return "", ErrEntryIndexOutOfRange
			}
			w.WriteBits(uint64(sel.EntryIndex), width)
		} else {
			if sel.Rank < 1 || sel.Rank > n.MaxRanks {
				return "", ErrRankOutOfRange
			}
			w.WriteBits(uint64(sel.Rank), width)
		}
	}

	return encodeBits(w.BitLen(), w.Bytes()), nil
}

// DecodeTalentHash unpacks a hash produced by EncodeTalentHash against the
// same EntryLookup. An empty string decodes to (nil, nil): "nothing
// selected" is a valid build, not a malformed one.
func DecodeTalentHash(s string, lookup EntryLookup) (map[int]Selection, error) {
	if s == "" {
		return nil, nil
	}

	headerWriter, err := decodeBits(s, 8)
	if err != nil {
		return nil, err
	}
	header := NewBitReader(headerWriter.Bytes())
	version, _ := header.ReadBits(8)
	if !SupportedVersions[int(version)] {
		return nil, ErrUnsupportedVersion
	}

	totalBits := 8
	for _, n := range lookup.Nodes {
		totalBits += 1 + n.fieldWidth()
	}

	w, err := decodeBits(s, totalBits)
	if err != nil {
		return nil, err
	}
	r := NewBitReader(w.Bytes())
	if _, ok := r.ReadBits(8); !ok {
		return nil, ErrTruncated
	}

	out := make(map[int]Selection)
	for _, n := range lookup.Nodes {
		flag, ok := r.ReadBits(1)
		if !ok {
			return nil, ErrTruncated
		}
		if flag == 0 {
			continue
		}
		width := n.fieldWidth()
		var field uint64
		if width > 0 {
			field, ok = r.ReadBits(width)
			if !ok {
				return nil, ErrTruncated
			}
		}
		sel := Selection{NodeID: n.NodeID}
		if n.IsChoice {
			sel.EntryIndex = int(field)
		} else {
			sel.Rank = int(field)
			if sel.Rank == 0 {
				sel.Rank = 1
			}
		}
		out[n.NodeID] = sel
	}

	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func hasNode(lookup EntryLookup, id int) bool {
	i := sort.Search(len(lookup.Nodes), func(i int) bool { return lookup.Nodes[i].NodeID >= id })
	return i < len(lookup.Nodes) && lookup.Nodes[i].NodeID == id
}
