// Package grammar implements the optional sentence-validity predicate used
// to filter generated palindromes down to ones that additionally parse as
// sentences of a small constructed language.
//
// The grammar is intentionally shallow: a sentence is a non-empty sequence
// of words, each belonging to one of a handful of lexical categories
// (pronoun, particle, content word), arranged according to a small set of
// sentence shapes. It is stricter than a full natural-language grammar and
// will reject some sentences a linguist would accept; per the design notes
// this is taken as given rather than re-derived.
package grammar

import (
	"strings"

	"github.com/suvi-lang/palindron/internal/container/trie"
)

// Grammar holds the lexical categories as trie indexes and exposes IsValid,
// the predicate the enumeration driver filters palindromes through.
type Grammar struct {
	pronouns *trie.Trie
	particle *trie.Trie
	content  *trie.Trie
}

// New builds a Grammar from the built-in lexical categories.
func New() *Grammar {
	g := &Grammar{
		pronouns: trie.NewTrie(),
		particle: trie.NewTrie(),
		content:  trie.NewTrie(),
	}
	for _, w := range pronounWords {
		g.pronouns.Insert(w)
	}
	for _, w := range particleWords {
		g.particle.Insert(w)
	}
	for _, w := range contentWords {
		g.content.Insert(w)
	}
	return g
}

// category classifies a single case-folded word, or reports ok=false if it
// belongs to none of the known lexical categories.
func (g *Grammar) category(word string) (kind string, ok bool) {
	switch {
	case g.pronouns.Search(word):
		return "pronoun", true
	case g.particle.Search(word):
		return "particle", true
	case g.content.Search(word):
		return "content", true
	default:
		return "", false
	}
}

// IsValid reports whether sentence parses as a sentence of the grammar:
// every word must belong to a known lexical category, and the sequence of
// categories must match one of the sentence shapes in shapes. Matching is
// case-insensitive; punctuation is not handled, matching the enumerator's
// output format (space-separated words, no trailing punctuation).
//
// IsValid is deterministic and side-effect free, satisfying the purity
// contract the driver requires of the filter predicate.
func (g *Grammar) IsValid(sentence string) bool {
	words := strings.Fields(sentence)
	if len(words) == 0 {
		return false
	}

	kinds := make([]string, len(words))
	for i, w := range words {
		kind, ok := g.category(strings.ToLower(w))
		if !ok {
			return false
		}
		kinds[i] = kind
	}

	for _, shape := range shapes {
		if shape.matches(kinds) {
			return true
		}
	}
	return false
}
