// Package corpus embeds a small example-sentence corpus used as the
// training data for the language model's bigram statistics.
//
// It generalizes the original file-scanning corpus loader into a single
// embedded filesystem, so the binary carries its own training data with no
// external files to ship alongside it.
package corpus

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed data/valid.txt data/invalid.txt
var files embed.FS

// ValidSentences returns the corpus of sentences that parse under the
// built-in grammar.
func ValidSentences() []string {
	return mustReadLines("data/valid.txt")
}

// InvalidSentences returns the corpus of sentences that do not parse under
// the built-in grammar.
func InvalidSentences() []string {
	return mustReadLines("data/invalid.txt")
}

func mustReadLines(name string) []string {
	f, err := files.Open(name)
	if err != nil {
		// The corpus is embedded at build time; a missing file here is a
		// build-time packaging bug, not a runtime condition callers can
		// meaningfully recover from.
		panic("corpus: " + err.Error())
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
