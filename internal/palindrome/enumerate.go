package palindrome

import "github.com/suvi-lang/palindron/internal/container/stack"

// frame is one entry of the enumerator's DFS stack: the node reached so far,
// how many more words the budget allows, and the palindrome text assembled
// up to this point.
type frame struct {
	node      Node
	wordsLeft int
	words     string
}

// enumerateFromStart runs the bounded DFS starting from a single start
// edge, returning every complete palindrome reachable within maxWordCount
// words. The DFS stack is the package's generic Stack[T] container,
// matching its documented "Depth-first search (DFS) in graphs" use case.
//
// New words are appended on the right when the current node's tail
// overhangs the left (offset >= 0) and prepended on the left otherwise,
// so the assembled string always reads as the palindrome growing from the
// outside in.
func enumerateFromStart(start StartEdge, g *Graph, maxWordCount int) []string {
	var palindromes []string

	frames := stack.NewStack[frame]()
	_, _ = frames.Push(frame{node: start.To, wordsLeft: maxWordCount - 1, words: start.Word})

	for !frames.IsEmpty() {
		f, err := frames.Pop()
		if err != nil {
			break
		}

		distance, reachable := g.Distances[f.node]
		if !reachable || distance > f.wordsLeft {
			continue
		}

		if distance == 0 {
			palindromes = append(palindromes, f.words)
		}

		if f.wordsLeft == 0 {
			continue
		}

		for _, e := range g.EdgesFromNode[f.node] {
			var words string
			if f.node.Offset >= 0 {
				words = f.words + " " + e.Word
			} else {
				words = e.Word + " " + f.words
			}
			_, _ = frames.Push(frame{node: e.To, wordsLeft: f.wordsLeft - 1, words: words})
		}
	}

	return palindromes
}
