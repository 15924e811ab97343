package palindrome

import (
	"fmt"
	"strings"

	"github.com/suvi-lang/palindron/internal/container/treemap"
)

// Graph is the palindrome state graph: to build a palindrome, start with a
// start edge and follow edges until reaching the terminal node, prepending
// or appending each edge's word depending on which side the current node's
// tail overhangs. Built once by NewGraph and never mutated afterward, so it
// is safe to share by pointer across enumeration goroutines.
type Graph struct {
	StartEdges    []StartEdge
	EdgesFromNode map[Node][]Edge
	Distances     map[Node]int
}

// NewGraph builds the full palindrome graph from a word list: start edges,
// the reachability-closure of forward edges, and the distance-to-terminal
// oracle, then prunes anything the oracle marks unreachable.
func NewGraph(words []string) *Graph {
	startEdges := getStartEdges(words)
	edges := getEdges(startEdges, words)
	distances := calculateDistances(edges)

	g := &Graph{
		EdgesFromNode: make(map[Node][]Edge),
		Distances:     distances,
	}

	for _, se := range startEdges {
		if _, reachable := distances[se.To]; reachable {
			g.StartEdges = append(g.StartEdges, se)
		}
	}

	for _, e := range edges {
		if _, reachable := distances[e.To]; reachable {
			g.EdgesFromNode[e.From] = append(g.EdgesFromNode[e.From], e)
		}
	}

	return g
}

// nodeKey produces an ordering key for Dump's deterministic rendering: tail
// first, then offset, so fragments with the same letters but different
// overhang sides sort next to each other.
func nodeKey(n Node) string {
	return fmt.Sprintf("%s\x00%+d", n.Tail, n.Offset)
}

// Dump renders the graph's nodes, their distance to the terminal, and their
// outgoing edges in a deterministic, sorted order - useful for debugging and
// for tests that want a stable textual snapshot of a small graph. Sorting is
// done with treemap.TreeMap rather than sort.Slice so the ordering logic
// lives in the same generic, reusable container the rest of the package
// builds on.
func (g *Graph) Dump() string {
	index := treemap.NewTreeMap[string, Node]()
	for node := range g.EdgesFromNode {
		index.Put(nodeKey(node), node)
	}
	for node := range g.Distances {
		index.Put(nodeKey(node), node)
	}

	var b strings.Builder
	for _, key := range index.Keys() {
		node, _ := index.Get(key)
		dist, reachable := g.Distances[node]
		if reachable {
			fmt.Fprintf(&b, "%s [dist=%d]\n", node, dist)
		} else {
			fmt.Fprintf(&b, "%s [unreachable]\n", node)
		}
		for _, e := range g.EdgesFromNode[node] {
			fmt.Fprintf(&b, "  (%s)-> %s\n", e.Word, e.To)
		}
	}
	return b.String()
}
