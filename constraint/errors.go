package constraint

import "errors"

var (
	ErrAlwaysNeverConflict  = errors.New("constraint: node marked both always and never")
	ErrEntryIndexOnSingle   = errors.New("constraint: entry index set on single node")
	ErrExactRankOnChoice    = errors.New("constraint: exact rank set on choice node")
	ErrExactRankOutOfRange  = errors.New("constraint: exact rank out of range")
	ErrEntryIndexOutOfRange = errors.New("constraint: entry index out of range")
	ErrEmptyChildren        = errors.New("constraint: boolean expression has no children")
)
