package unrank

import (
	"math/big"

	"github.com/talentdag/engine/constraint"
	"github.com/talentdag/engine/internal/dp"
	"github.com/talentdag/engine/tree"
	"github.com/talentdag/engine/validator"
)

// GenerateBuildAt returns the k-th build of t under store, in canonical
// order (node Order index, then skip-before-select, then ascending
// EntryIndex, then ascending Rank). k must satisfy 0 <= k < Total(t, store).
func GenerateBuildAt(t *tree.TalentTree, store constraint.Store, k *big.Int) (Build, error) {
	vr := validator.Validate(t, store)
	if vr.HasError() {
		return Build{}, ErrIndexOutOfRange
	}
	tb := buildTables(t, store)
	return reconstruct(tb, k)
}

// GenerateTreeBuilds returns up to limit builds of t under store. If the
// tree's total build count is <= limit, every build is returned, in
// canonical order. Otherwise limit builds are returned, their indices
// spaced as evenly as possible across [0, Total) so the sample represents
// the full space rather than only its lexicographically first slice.
func GenerateTreeBuilds(t *tree.TalentTree, store constraint.Store, limit int) ([]Build, []validator.Warning, error) {
	if limit <= 0 {
		return nil, nil, ErrLimitNonPositive
	}
	vr := validator.Validate(t, store)
	if vr.HasError() {
		return nil, vr.Warnings, nil
	}

	layout := dp.BuildLayout(t, store)
	var warnings []validator.Warning
	warnings = append(warnings, vr.Warnings...)
	for _, nodeID := range layout.UnresolvedTargets {
		warnings = append(warnings, validator.Warning{
			Severity: validator.SeverityWarning,
			Check:    "unresolvable-conditional",
			Message:  "conditional constraint references no node present in this tree; treated as unconstrained",
			NodeIDs:  []int{nodeID},
		})
	}

	tb := buildTables(t, store)
	total := tb.Total()
	limitBig := big.NewInt(int64(limit))

	var indices []*big.Int
	if total.Cmp(limitBig) <= 0 {
		n := total.Int64()
		indices = make([]*big.Int, n)
		for i := range indices {
			indices[i] = big.NewInt(int64(i))
		}
	} else {
		indices = make([]*big.Int, limit)
		for i := 0; i < limit; i++ {
			// idx = floor(i * total / limit), evenly spacing limit samples
			// across the full index range.
			num := new(big.Int).Mul(big.NewInt(int64(i)), total)
			idx := new(big.Int).Div(num, limitBig)
			indices[i] = idx
		}
	}

	builds := make([]Build, 0, len(indices))
	for _, idx := range indices {
		b, err := reconstruct(tb, idx)
		if err != nil {
			return nil, warnings, err
		}
		builds = append(builds, b)
	}
	return builds, warnings, nil
}
