package tree

// NodeType distinguishes a single-track talent from a choice among
// mutually-exclusive entries.
type NodeType int

const (
	// Single nodes have exactly one Entry and are purchased rank by rank.
	Single NodeType = iota
	// Choice nodes have two or more Entries; selecting one excludes the rest.
	Choice
)

func (t NodeType) String() string {
	switch t {
	case Single:
		return "single"
	case Choice:
		return "choice"
	default:
		return "unknown"
	}
}

// TreeType distinguishes the three catalog tree kinds.
type TreeType int

const (
	ClassTree TreeType = iota
	SpecTree
	HeroTree
)

func (t TreeType) String() string {
	switch t {
	case ClassTree:
		return "class"
	case SpecTree:
		return "spec"
	case HeroTree:
		return "hero"
	default:
		return "unknown"
	}
}

// Entry is one purchasable alternative within a Node. Single nodes carry
// exactly one Entry; Choice nodes carry two or more.
type Entry struct {
	ID       int
	Name     string
	MaxRanks int // cost of fully purchasing this entry
	Index    int // position among siblings, used for canonical ordering
	SpellID  int // 0 when the catalog did not supply one
}

// Node is a single talent in a TalentTree: a row/column position, a set of
// forward/backward edges (by node ID, not pointer), and the purchase rules
// that govern it.
type Node struct {
	ID        int
	Type      NodeType
	Entries   []Entry
	MaxRanks  int // authoritative per-node cost exposure; see catalog.Parse
	Next      []int
	Prev      []int
	Row       int
	Col       int
	ReqPoints int // row gate threshold this node sits behind
	FreeNode  bool
	EntryNode bool
	IsApex    bool
	SubTreeID *int // non-nil only for hero-tree nodes
}

// Gate is a row threshold: nodes at or above Row become purchasable only
// once RequiredPoints have been spent elsewhere in the tree.
type Gate struct {
	Row            int
	RequiredPoints int
}

// TalentTree is one fully parsed class, spec, or hero tree.
type TalentTree struct {
	Type        TreeType
	Nodes       []*Node
	Gates       []Gate
	PointBudget int
	MaxPoints   int // sum of MaxRanks over non-free nodes
	SubTreeID   *int
	SubTreeName string

	byID map[int]*Node
}

// NewTalentTree builds a TalentTree and its node index. MaxPoints is
// derived, not supplied, so callers never have to keep it in sync by hand.
func NewTalentTree(typ TreeType, nodes []*Node, gates []Gate, pointBudget int) (*TalentTree, error) {
	byID := make(map[int]*Node, len(nodes))
	maxPoints := 0
	for _, n := range nodes {
		if _, dup := byID[n.ID]; dup {
			return nil, ErrDuplicateNodeID
		}
		byID[n.ID] = n
		if len(n.Entries) == 0 {
			return nil, ErrEmptyEntries
		}
		if n.Type != Single && n.Type != Choice {
			return nil, ErrInvalidNodeType
		}
		if !n.FreeNode {
			maxPoints += n.MaxRanks
		}
	}
	return &TalentTree{
		Type:        typ,
		Nodes:       nodes,
		Gates:       gates,
		PointBudget: pointBudget,
		MaxPoints:   maxPoints,
		byID:        byID,
	}, nil
}

// Specialization groups one class tree, one spec tree, and zero or more
// hero trees unlocked by that spec.
type Specialization struct {
	ClassName string
	SpecName  string
	ClassTree *TalentTree
	SpecTree  *TalentTree
	HeroTrees []*TalentTree
}
