package palindrome

import "github.com/suvi-lang/palindron/internal/container/priorityqueue"

// calculateDistances finds, for every node reachable from the terminal node
// by walking edges backwards, the minimum number of forward edges needed to
// reach the terminal node. Nodes with no entry in the result are
// unreachable and get pruned by the caller.
//
// All edges are unit weight, so a priority queue ordered by distance behaves
// identically to a plain FIFO queue here; it is kept because it is the
// generic container the package's reusable data structures already
// provide.
func calculateDistances(edges []Edge) map[Node]int {
	fromNodesByTo := make(map[Node][]Node)
	for _, e := range edges {
		fromNodesByTo[e.To] = append(fromNodesByTo[e.To], e.From)
	}

	distances := map[Node]int{Terminal: 0}

	queue := priorityqueue.NewBinaryHeapWithComparator(func(a, b prioritized[Node]) bool {
		return a.less(b)
	})
	queue.Add(prioritized[Node]{priority: 0, item: Terminal})

	for !queue.IsEmpty() {
		current, err := queue.Poll()
		if err != nil {
			break
		}
		nextDistance := current.priority + 1

		for _, from := range fromNodesByTo[current.item] {
			if d, ok := distances[from]; !ok || d > nextDistance {
				distances[from] = nextDistance
				queue.Add(prioritized[Node]{priority: nextDistance, item: from})
			}
		}
	}

	return distances
}
