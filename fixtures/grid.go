package fixtures

import (
	"fmt"

	"github.com/talentdag/engine/tree"
)

const minGridDim = 1

// Grid builds a rows x cols orthogonal grid: node (r,c) requires the node
// directly above it, (r-1,c), and (for c>0) also lists (r-1,c-1) as a
// prerequisite, giving interior nodes two alternative unlock paths (either
// predecessor suffices, per the any-of accessibility rule). Row 0 nodes are
// entry nodes.
//
// Node IDs are assigned row-major: id = r*cols + c.
func Grid(rows, cols int, opts ...FixtureOption) (*tree.TalentTree, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("fixtures.Grid: rows=%d, cols=%d (each must be >= %d): %w",
			rows, cols, minGridDim, ErrTooFewNodes)
	}
	cfg := newFixtureConfig(opts...)

	nodes := make([]*tree.Node, 0, rows*cols)
	total := 0
	idx := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			var prev []int
			if r > 0 {
				prev = append(prev, (r-1)*cols+c)
				if c > 0 {
					prev = append(prev, (r-1)*cols+c-1)
				}
			}
			node := makeNode(cfg, id, r, c, prev, idx)
			nodes = append(nodes, node)
			total += node.MaxRanks
			idx++
		}
	}
	linkNext(nodes)

	gates := deriveGates(cfg, rows-1)
	budget := resolveBudget(cfg, total)

	return tree.NewTalentTree(tree.ClassTree, nodes, gates, budget)
}
