package validator

import "github.com/talentdag/engine/tree"

// ComputeReachable performs a multi-source breadth-first search over t's
// forward edges, seeded at every entry/free node, skipping any node in
// never. It mirrors lvlath's bfs.BFS walker shape (a visited set plus an
// explicit queue) but seeds from many sources at once and filters
// neighbors against never instead of a single FilterNeighbor hook.
func ComputeReachable(t *tree.TalentTree, never map[int]bool) map[int]bool {
	visited := make(map[int]bool, len(t.Nodes))
	queue := make([]int, 0, len(t.Nodes))

	for _, n := range t.Nodes {
		if never[n.ID] {
			continue
		}
		if n.EntryNode || n.FreeNode || len(n.Prev) == 0 {
			if !visited[n.ID] {
				visited[n.ID] = true
				queue = append(queue, n.ID)
			}
		}
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		n, err := t.NodeByID(id)
		if err != nil {
			continue
		}
		for _, nb := range n.Next {
			if never[nb] || visited[nb] {
				continue
			}
			visited[nb] = true
			queue = append(queue, nb)
		}
	}
	return visited
}
