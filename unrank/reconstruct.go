package unrank

import (
	"math/big"

	"github.com/talentdag/engine/internal/dp"
)

// reconstruct walks tb.layout.Order once, consuming digits of k against the
// suffix completion tables to decide, at every node, whether to skip or
// which entry/rank to select.
func reconstruct(tb *tables, k *big.Int) (Build, error) {
	total := tb.Total()
	if k.Sign() < 0 || k.Cmp(total) >= 0 {
		return Build{}, ErrIndexOutOfRange
	}

	remaining := big.NewInt(0).Set(k)
	bitmap := uint64(0)
	spendable := tb.budget
	entries := make(map[int]BuildEntry)
	base := basePoly(tb.budget)

	for idx, n := range tb.layout.Order {
		c, hasConstraint := tb.storeEntry(n.ID)
		never := tb.layout.NeverNode(n.ID)
		always := tb.layout.AlwaysNode(n.ID)
		branches := dp.Branches(n, c, hasConstraint, never)
		accessible := tb.layout.Accessible(n, bitmap)
		eff := dp.Effective(n, branches, accessible, always)

		committed := false

		if eff.SkipAllowed {
			nb, ok := tb.layout.Advance(idx, bitmap)
			if ok {
				count := suffixAt(tb.suffix, base, idx+1, nb)[spendable]
				countBig := big.NewInt(count)
				if remaining.Cmp(countBig) < 0 {
					bitmap = nb
					committed = true
				} else {
					remaining.Sub(remaining, countBig)
				}
			}
		}

		if !committed && len(eff.Selects) > 0 {
			spentSoFar := tb.budget - spendable
			gateOK := n.ReqPoints <= 0 || spentSoFar >= n.ReqPoints
			if gateOK {
				for _, sel := range eff.Selects {
					if sel.Cost > spendable {
						continue
					}
					nb0 := bitmap
					if bit, tracked := tb.layout.Bit[n.ID]; tracked {
						nb0 |= 1 << uint(bit)
					}
					nb, ok := tb.layout.Advance(idx, nb0)
					if !ok {
						continue
					}
					count := suffixAt(tb.suffix, base, idx+1, nb)[spendable-sel.Cost]
					countBig := big.NewInt(count)
					if remaining.Cmp(countBig) < 0 {
						bitmap = nb
						spendable -= sel.Cost
						entries[n.ID] = BuildEntry{Selected: true, EntryIndex: sel.EntryIndex, Rank: sel.Rank}
						committed = true
						break
					}
					remaining.Sub(remaining, countBig)
				}
			}
		}

		if !committed {
			return Build{}, ErrIndexOutOfRange
		}
	}

	return Build{Entries: entries}, nil
}
