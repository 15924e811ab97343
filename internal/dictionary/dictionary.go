// Package dictionary provides the built-in word lists the engine searches
// for palindromes, and a trie-backed membership index over each one.
//
// The three lists form nested supersets, smallest first: Pu is contained in
// KuSuli, which is contained in KuLili. The names echo the source
// conlang's own words for "small set"/"medium set"/"large set", used here
// only as level tags, not as entries in the lists themselves.
package dictionary

import "github.com/suvi-lang/palindron/internal/container/trie"

// Level selects which built-in word list a Dictionary is built from.
type Level string

const (
	Pu     Level = "pu"
	KuSuli Level = "ku-suli"
	KuLili Level = "ku-lili"
)

// Dictionary is an ordered word list paired with a trie for O(len) membership
// checks. Words are kept in their original casing; the trie is keyed on the
// case-folded form so lookups are case-insensitive while Words() preserves
// casing for output.
type Dictionary struct {
	words []string
	index *trie.Trie
}

// New builds a Dictionary for the given level. Unknown levels return an
// error rather than panicking, since the level typically comes straight
// from a user-supplied CLI flag.
func New(level Level) (*Dictionary, error) {
	words, ok := wordLists[level]
	if !ok {
		return nil, &UnknownLevelError{Level: level}
	}
	return newFromWords(words), nil
}

func newFromWords(words []string) *Dictionary {
	d := &Dictionary{words: words, index: trie.NewTrie()}
	for _, w := range words {
		d.index.Insert(foldCase(w))
	}
	return d
}

// Words returns the dictionary's words in declaration order, original casing
// preserved.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// Contains reports whether word is present in the dictionary, ignoring case.
func (d *Dictionary) Contains(word string) bool {
	return d.index.Search(foldCase(word))
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.words)
}

func foldCase(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// UnknownLevelError reports a dictionary level that does not match any of
// the three built-in tags.
type UnknownLevelError struct {
	Level Level
}

func (e *UnknownLevelError) Error() string {
	return "dictionary: unknown level " + string(e.Level)
}
