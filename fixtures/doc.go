// Package fixtures builds synthetic TalentTree topologies for tests,
// examples, and benchmarks: a linear prerequisite Chain, an orthogonal
// Grid, a single-hub Hub, and a randomly edged layered DAG.
//
// Every constructor follows the same contract: validate the size
// parameters first, build nodes in deterministic ascending-ID order, then
// wire forward edges (lower row to higher row) so the result always
// satisfies tree.NewTalentTree's invariants. Stochastic constructors take
// a FixtureOption-supplied *rand.Rand; the same seed and size always
// produce the same tree.
package fixtures
