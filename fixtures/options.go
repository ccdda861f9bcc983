package fixtures

import "math/rand"

// FixtureOption customizes a fixture constructor by mutating a
// fixtureConfig before node generation begins.
type FixtureOption func(*fixtureConfig)

// fixtureConfig holds the knobs shared across constructors. Not safe for
// concurrent mutation; each constructor call builds its own.
type fixtureConfig struct {
	rng         *rand.Rand
	budget      int
	gateEvery   int // insert a row gate every N rows; 0 disables gating
	gateCost    int // RequiredPoints for each inserted gate
	choiceEvery int // every Nth node is a Choice node instead of Single
	choiceArity int // number of entries on a Choice node
	maxRanks    int // MaxRanks for Single nodes and each Choice entry
	edgeProb    float64
}

func newFixtureConfig(opts ...FixtureOption) *fixtureConfig {
	cfg := &fixtureConfig{
		budget:      0, // 0 means "derive from MaxPoints", resolved by the caller
		gateEvery:   0,
		gateCost:    0,
		choiceEvery: 0,
		choiceArity: 2,
		maxRanks:    1,
		edgeProb:    0.5,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds the constructor's RNG for reproducible stochastic layouts.
func WithSeed(seed int64) FixtureOption {
	return func(c *fixtureConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG; nil is a no-op.
func WithRand(r *rand.Rand) FixtureOption {
	return func(c *fixtureConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithBudget overrides the tree's PointBudget. When unset, constructors
// default the budget to the tree's full MaxPoints (every node purchasable).
func WithBudget(points int) FixtureOption {
	return func(c *fixtureConfig) {
		c.budget = points
	}
}

// WithGate inserts a row gate every `every` rows requiring `cost` points
// spent below it. every <= 0 disables gating.
func WithGate(every, cost int) FixtureOption {
	return func(c *fixtureConfig) {
		c.gateEvery = every
		c.gateCost = cost
	}
}

// WithChoiceNodes makes every `every`th node (by build order) a Choice
// node with `arity` entries instead of a Single node. every <= 0 disables
// Choice generation entirely.
func WithChoiceNodes(every, arity int) FixtureOption {
	return func(c *fixtureConfig) {
		c.choiceEvery = every
		if arity >= 2 {
			c.choiceArity = arity
		}
	}
}

// WithMaxRanks sets the MaxRanks of Single nodes and of each Choice entry.
func WithMaxRanks(n int) FixtureOption {
	return func(c *fixtureConfig) {
		if n >= 1 {
			c.maxRanks = n
		}
	}
}

// WithEdgeProbability sets the inclusion probability for RandomLayeredDAG's
// inter-layer edges.
func WithEdgeProbability(p float64) FixtureOption {
	return func(c *fixtureConfig) {
		c.edgeProb = p
	}
}
