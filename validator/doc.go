// Package validator runs the fixed sequence of structural checks over a
// TalentTree and a constraint.Store before the DP engines in counter and
// unrank are allowed to run: always/never collisions, reachability under
// the never-set, total-selectable-versus-budget, minimum forced cost, and
// per-gate feasibility.
//
// Checks run in order and all results are collected into a Result; a
// Result with any Severity == SeverityError warning means the tree's
// build count is 0 and counter/unrank must not attempt the DP at all.
package validator
