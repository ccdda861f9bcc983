package catalog

// RawEntry is one entry as it appears in an exported catalog record.
type RawEntry struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	MaxRanks int    `json:"maxRanks"`
	Index    int    `json:"index"`
	SpellID  int    `json:"spellId"`
}

// RawNode is one node as it appears in an exported catalog record. PosX and
// PosY are raw layout coordinates in the client's grid units; Parse
// quantizes and densifies them into Node.Row/Node.Col.
type RawNode struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"` // "single" or "choice"
	Entries   []RawEntry `json:"entries"`
	Next      []int      `json:"next"`
	PosX      float64    `json:"posX"`
	PosY      float64    `json:"posY"`
	FreeNode  bool       `json:"freeNode"`
	EntryNode bool       `json:"entryNode"`
	ReqPoints int        `json:"reqPoints"` // row gate threshold, 0 if ungated
	SubTreeID *int       `json:"subTreeId,omitempty"`
}

// RawSubTreeMeta names a hero sub-tree referenced by RawNode.SubTreeID.
type RawSubTreeMeta struct {
	SubTreeID int    `json:"subTreeId"`
	Name      string `json:"name"`
}

// RawCatalogRecord is one class+specialization's full exported data: the
// class tree's nodes, the spec tree's nodes, and every hero node reachable
// from that spec, tagged with a SubTreeID grouping them into hero trees.
type RawCatalogRecord struct {
	ClassName string           `json:"className"`
	SpecName  string           `json:"specName"`
	ClassNodes []RawNode       `json:"classNodes"`
	SpecNodes  []RawNode       `json:"specNodes"`
	HeroNodes  []RawNode       `json:"heroNodes"`
	SubTrees   []RawSubTreeMeta `json:"subTrees"`
}

// Budgets supplies the per-tree-type point budget Parse assigns.
// DefaultBudgets returns the conventional values.
type Budgets struct {
	Class int
	Spec  int
	Hero  int
}

// DefaultBudgets returns the conventional point budgets used across
// current-era talent trees.
func DefaultBudgets() Budgets {
	return Budgets{Class: 34, Spec: 34, Hero: 13}
}

const gridUnit = 300.0
