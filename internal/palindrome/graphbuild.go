package palindrome

import (
	"github.com/suvi-lang/palindron/internal/container/set"
	"github.com/suvi-lang/palindron/internal/container/stack"
)

// getStartEdges enumerates every (word, offset) split of every word in the
// dictionary and keeps those whose matching part is itself palindromic.
// Offset ranges over [-L, L) for a word of length L: -L makes the
// whole word the unmatched tail with nothing to match yet (later words are
// prepended on its left), L-1 overlaps a single
// trailing letter on the right.
func getStartEdges(words []string) []StartEdge {
	var edges []StartEdge
	for _, word := range words {
		caseless := foldCase(word)
		length := len(caseless)
		for offset := -length; offset < length; offset++ {
			if to, ok := tryCreateStartNode(caseless, offset); ok {
				edges = append(edges, StartEdge{Word: word, To: to})
			}
		}
	}
	return edges
}

// getEdges performs the reachability traversal: starting from every
// start edge's target node, try every dictionary word against the current
// node and follow any edge it produces, until the frontier is exhausted.
// The frontier is a stack (the source pops from the end of a Python list,
// which is LIFO), so this is a depth-first rather than breadth-first walk -
// traversal order doesn't matter for reachability, only for which edges get
// discovered, which is order-independent since every word is tried at every
// node regardless of discovery order.
func getEdges(startEdges []StartEdge, words []string) []Edge {
	visited := set.NewUnorderedSet[Node]()
	frontier := stack.NewStack[Node]()

	for _, se := range startEdges {
		if visited.Insert(se.To) {
			_, _ = frontier.Push(se.To)
		}
	}

	var edges []Edge
	for !frontier.IsEmpty() {
		from, err := frontier.Pop()
		if err != nil {
			break
		}

		for _, word := range words {
			caseless := foldCase(word)
			to, ok := tryCreateNextNode(from, caseless)
			if !ok {
				continue
			}
			edges = append(edges, Edge{From: from, Word: word, To: to})
			if visited.Insert(to) {
				_, _ = frontier.Push(to)
			}
		}
	}
	return edges
}
