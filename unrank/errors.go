package unrank

import "errors"

// ErrIndexOutOfRange is returned when k (or a sampled index) falls outside
// [0, N) where N is the tree's total build count.
var ErrIndexOutOfRange = errors.New("unrank: index out of range")

// ErrLimitNonPositive is returned when GenerateTreeBuilds is asked for a
// non-positive number of samples.
var ErrLimitNonPositive = errors.New("unrank: limit must be positive")
