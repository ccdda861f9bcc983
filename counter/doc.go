// Package counter computes the exact number of distinct, rule-respecting
// builds of a TalentTree by sweeping internal/dp's processing order once,
// carrying a map of bitmap -> Polynomial (coefficient i = number of ways to
// reach this bitmap having spent exactly i points so far), trimming
// infeasible prefixes at each gate, and retiring bits as soon as their last
// consumer has been processed.
//
// Complexity: O(nodes * liveStates * budget), where liveStates is the
// number of distinct bitmaps simultaneously alive, bounded by 2^NumBits but
// in practice far smaller because most nodes are never referenced by a
// later accessibility check or conditional constraint.
package counter
