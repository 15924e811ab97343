// Package output implements the post-enumeration sort keys and the output
// sink (stdout or a file) that the CLI driver writes the final palindrome
// list through.
package output

import (
	"sort"
	"strings"
)

// SortKey selects one of the four sort orders the CLI accepts via -s/--sort.
type SortKey string

const (
	Alphabetical  SortKey = "a"
	Length        SortKey = "l"
	WordCount     SortKey = "w"
	LanguageModel SortKey = "lm"
)

// Scorer scores a sentence for the LanguageModel sort key. Implemented by
// *languagemodel.Model; declared here as an interface so this package does
// not need to import the model package just to sort by it.
type Scorer interface {
	Score(sentence string) float64
}

// Sort orders palindromes in place according to key. All orders are stable:
// equal keys preserve the enumerator's original relative order,
// which in turn is deterministic but otherwise unspecified across workers.
//
// scorer is only consulted when key is LanguageModel; it may be nil for
// every other key.
func Sort(palindromes []string, key SortKey, scorer Scorer) error {
	switch key {
	case Alphabetical:
		sort.SliceStable(palindromes, func(i, j int) bool {
			return palindromes[i] < palindromes[j]
		})
	case Length:
		sort.SliceStable(palindromes, func(i, j int) bool {
			return len(palindromes[i]) < len(palindromes[j])
		})
	case WordCount:
		sort.SliceStable(palindromes, func(i, j int) bool {
			return wordCount(palindromes[i]) < wordCount(palindromes[j])
		})
	case LanguageModel:
		if scorer == nil {
			return &UnknownSortKeyError{Key: key}
		}
		scores := make(map[string]float64, len(palindromes))
		for _, p := range palindromes {
			if _, cached := scores[p]; !cached {
				scores[p] = scorer.Score(p)
			}
		}
		sort.SliceStable(palindromes, func(i, j int) bool {
			return scores[palindromes[i]] < scores[palindromes[j]]
		})
	default:
		return &UnknownSortKeyError{Key: key}
	}
	return nil
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// UnknownSortKeyError reports a -s/--sort value that matches none of the
// four known sort keys, or the LanguageModel key when no scorer is given.
type UnknownSortKeyError struct {
	Key SortKey
}

func (e *UnknownSortKeyError) Error() string {
	return "output: unknown sort key " + string(e.Key)
}
