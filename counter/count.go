package counter

import (
	"math/big"
	"time"

	"github.com/talentdag/engine/constraint"
	"github.com/talentdag/engine/internal/dp"
	"github.com/talentdag/engine/tree"
	"github.com/talentdag/engine/validator"
)

// CountTreeBuilds returns the exact number of distinct builds of t that
// respect store's constraints. Validate runs first; any SeverityError
// finding short-circuits the count to 0 without attempting the DP sweep.
func CountTreeBuilds(t *tree.TalentTree, store constraint.Store) (Result, error) {
	start := time.Now()
	vr := validator.Validate(t, store)
	if vr.HasError() {
		return Result{Count: big.NewInt(0), DurationMs: elapsedMs(start), Warnings: vr.Warnings}, nil
	}

	layout := dp.BuildLayout(t, store)
	warnings := append([]validator.Warning(nil), vr.Warnings...)
	for _, nodeID := range layout.UnresolvedTargets {
		warnings = append(warnings, validator.Warning{
			Severity: validator.SeverityWarning,
			Check:    "unresolvable-conditional",
			Message:  "conditional constraint references no node present in this tree; treated as unconstrained",
			NodeIDs:  []int{nodeID},
		})
	}

	budget := t.PointBudget
	states := map[uint64]Polynomial{0: basePolynomial(budget)}

	for idx, n := range layout.Order {
		c, hasConstraint := store[n.ID]
		never := layout.NeverNode(n.ID)
		always := layout.AlwaysNode(n.ID)
		branches := dp.Branches(n, c, hasConstraint, never)

		next := make(map[uint64]Polynomial)
		for bitmap, poly := range states {
			if poly.isZero() {
				continue
			}
			accessible := layout.Accessible(n, bitmap)
			eff := dp.Effective(n, branches, accessible, always)

			if eff.SkipAllowed {
				nb, ok := layout.Advance(idx, bitmap)
				if ok {
					mergeInto(next, budget, nb, poly)
				}
			}
			if len(eff.Selects) > 0 {
				gated := applyGateFloor(poly, n.ReqPoints, budget)
				if !gated.isZero() {
					for _, sel := range eff.Selects {
						nb0 := bitmap
						if bit, tracked := layout.Bit[n.ID]; tracked {
							nb0 |= 1 << uint(bit)
						}
						nb, ok := layout.Advance(idx, nb0)
						if !ok {
							continue
						}
						shifted := newPolynomial(budget)
						addShifted(shifted, gated, sel.Cost)
						mergeInto(next, budget, nb, shifted)
					}
				}
			}
		}
		states = next
	}

	// A valid build spends exactly budget points (spec §3, §4.4): only the
	// coefficient at index == budget counts.
	total := big.NewInt(0)
	for _, poly := range states {
		if budget < len(poly) {
			total.Add(total, big.NewInt(poly[budget]))
		}
	}

	return Result{Count: total, DurationMs: elapsedMs(start), Warnings: warnings}, nil
}

func basePolynomial(budget int) Polynomial {
	p := newPolynomial(budget)
	p[0] = 1
	return p
}

func mergeInto(states map[uint64]Polynomial, budget int, bitmap uint64, contribution Polynomial) {
	existing, ok := states[bitmap]
	if !ok {
		existing = newPolynomial(budget)
		states[bitmap] = existing
	}
	addInto(existing, contribution)
}

// applyGateFloor zeroes out coefficients at indices below reqPoints: a
// node behind a row gate cannot be selected by a state that has not yet
// spent at least reqPoints elsewhere in the tree.
func applyGateFloor(p Polynomial, reqPoints, budget int) Polynomial {
	if reqPoints <= 0 {
		return p
	}
	out := newPolynomial(budget)
	for i := reqPoints; i < len(p) && i <= budget; i++ {
		out[i] = p[i]
	}
	return out
}

func elapsedMs(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
