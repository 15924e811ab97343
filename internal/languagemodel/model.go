// Package languagemodel scores sentences with a small bigram language
// model, used only as an optional sort key. Reimplementers are told not to
// reproduce the original scorer's numeric outputs bit-exactly; this package
// only needs to produce a stable relative ordering, not matching scores.
package languagemodel

import (
	"math"
	"strings"

	"github.com/suvi-lang/palindron/internal/corpus"
)

const boundary = "\x00"

// Model is a Laplace-smoothed bigram model over word tokens. The zero value
// is not usable; construct with Train or New.
type Model struct {
	unigrams   map[string]int
	bigrams    map[string]int
	vocabulary map[string]struct{}
	totalWords int
}

// New trains a Model on the package's built-in corpus of valid sentences.
func New() *Model {
	return Train(corpus.ValidSentences())
}

// Train builds a Model from an arbitrary slice of training sentences,
// mainly exposed so tests can train on a small synthetic corpus instead of
// the built-in one.
func Train(sentences []string) *Model {
	m := &Model{
		unigrams:   make(map[string]int),
		bigrams:    make(map[string]int),
		vocabulary: make(map[string]struct{}),
	}
	for _, sentence := range sentences {
		tokens := tokenize(sentence)
		prev := boundary
		for _, tok := range tokens {
			m.unigrams[prev]++
			m.bigrams[prev+"\x01"+tok]++
			m.vocabulary[tok] = struct{}{}
			m.totalWords++
			prev = tok
		}
		m.unigrams[prev]++
		m.bigrams[prev+"\x01"+boundary]++
	}
	m.vocabulary[boundary] = struct{}{}
	return m
}

// Score returns the total negative log-likelihood of sentence under the
// model: lower is "more like the training corpus", matching the driver's
// ascending sort order for the "lm" sort key.
func (m *Model) Score(sentence string) float64 {
	tokens := tokenize(sentence)
	vocabSize := float64(len(m.vocabulary))

	prev := boundary
	total := 0.0
	for _, tok := range append(tokens, boundary) {
		count := float64(m.bigrams[prev+"\x01"+tok])
		denom := float64(m.unigrams[prev]) + vocabSize
		prob := (count + 1) / denom
		total -= math.Log(prob)
		prev = tok
	}
	return total
}

func tokenize(sentence string) []string {
	return strings.Fields(strings.ToLower(sentence))
}
