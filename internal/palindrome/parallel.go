package palindrome

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/suvi-lang/palindron/internal/container/deque"
)

// generateParallel partitions work by start edge: each start edge induces
// an independent sub-enumeration, so the driver hands start edges out to a
// worker pool sized to the available hardware parallelism and concatenates
// whatever each worker finds. Merge order across workers is unspecified;
// callers requiring a stable order must sort afterward.
//
// Work is handed out through a shared deque rather than a static per-worker
// slice: each worker pulls one start edge at a time from the front, so a
// worker that lands a run of high-out-degree nodes doesn't stall the ones
// that finished their share early.
func generateParallel(ctx context.Context, g *Graph, maxWordCount int, onFound func(string)) ([]string, error) {
	work := deque.NewDeque[StartEdge]()
	for _, se := range g.StartEdges {
		_, _ = work.OfferLast(se)
	}

	workerCount := runtime.GOMAXPROCS(0)
	if workerCount > len(g.StartEdges) {
		workerCount = len(g.StartEdges)
	}
	if workerCount < 1 {
		return []string{}, nil
	}

	var mu sync.Mutex
	var results []string

	group, groupCtx := errgroup.WithContext(ctx)
	for i := 0; i < workerCount; i++ {
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					if ie, ok := r.(*InternalError); ok {
						err = ie
						return
					}
					panic(r)
				}
			}()

			for {
				if err := groupCtx.Err(); err != nil {
					return err
				}

				se, pollErr := work.PollFirst()
				if pollErr != nil {
					return nil
				}

				found := enumerateFromStart(se, g, maxWordCount)
				if onFound != nil {
					for _, r := range found {
						onFound(r)
					}
				}

				mu.Lock()
				results = append(results, found...)
				mu.Unlock()
			}
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
