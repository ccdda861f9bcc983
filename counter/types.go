package counter

import (
	"math/big"

	"github.com/talentdag/engine/validator"
)

// Result is the outcome of CountTreeBuilds. Count is arbitrary precision
// for the final sum across states; internally the DP sweep keeps
// per-state coefficients as int64 and does not check them for overflow.
type Result struct {
	Count      *big.Int
	DurationMs int64
	Warnings   []validator.Warning
}
