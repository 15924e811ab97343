package palindrome

import "context"

// minWordCountForParallel is the pragmatic threshold below which
// single-threaded enumeration finishes before a worker pool would even spin
// up, so the driver skips the pool entirely.
const minWordCountForParallel = 7

// Generator produces every palindrome reachable in a graph within a word
// count bound, picking a serial or parallel strategy depending on the bound.
type Generator struct {
	graph *Graph
}

// NewGenerator builds the palindrome graph for words and returns a Generator
// ready to enumerate it repeatedly for different bounds.
func NewGenerator(words []string) *Generator {
	return &Generator{graph: NewGraph(words)}
}

// Graph exposes the built graph, mainly so callers can call Graph.Dump for
// diagnostics without re-building it.
func (g *Generator) Graph() *Graph {
	return g.graph
}

// Generate returns every palindrome with between 1 and maxWordCount words
// (inclusive). maxWordCount <= 0 yields an empty, non-nil slice.
//
// Generate is purely CPU-bound; ctx is only consulted between start-edge
// partitions in the parallel path so a caller can cancel a long-running
// enumeration for a large maxWordCount.
func (g *Generator) Generate(ctx context.Context, maxWordCount int) ([]string, error) {
	return g.GenerateStreaming(ctx, maxWordCount, nil)
}

// GenerateStreaming behaves like Generate, but additionally invokes onFound
// for every palindrome as it is discovered (in addition to collecting the
// full result). onFound may be nil, in which case this is equivalent to
// Generate. This is the optional streaming callback, an alternative to
// materializing the whole result set.
func (g *Generator) GenerateStreaming(ctx context.Context, maxWordCount int, onFound func(string)) ([]string, error) {
	if maxWordCount <= 0 {
		return []string{}, nil
	}

	emit := func(results []string) []string {
		if onFound != nil {
			for _, r := range results {
				onFound(r)
			}
		}
		return results
	}

	if maxWordCount < minWordCountForParallel {
		var all []string
		for _, se := range g.graph.StartEdges {
			all = append(all, emit(enumerateFromStart(se, g.graph, maxWordCount))...)
		}
		return all, nil
	}

	return generateParallel(ctx, g.graph, maxWordCount, onFound)
}
