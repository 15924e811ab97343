package palindrome

import (
	"context"
	"testing"
)

func TestGenerateParallelMatchesSerial(t *testing.T) {
	words := []string{"a", "ala", "alasa", "kala", "la", "pu", "sapala"}
	g := NewGraph(words)

	var serial []string
	for _, se := range g.StartEdges {
		serial = append(serial, enumerateFromStart(se, g, minWordCountForParallel)...)
	}

	parallelResult, err := generateParallel(context.Background(), g, minWordCountForParallel, nil)
	if err != nil {
		t.Fatalf("generateParallel error: %v", err)
	}

	assertSameSet(t, parallelResult, serial)
}

func TestGenerateParallelHonorsCancellation(t *testing.T) {
	words := []string{"a", "ala", "alasa", "kala", "la", "pu", "sapala"}
	g := NewGraph(words)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := generateParallel(ctx, g, minWordCountForParallel, nil); err == nil {
		t.Fatal("expected an error from a pre-cancelled context")
	}
}
