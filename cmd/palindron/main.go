// Command palindron enumerates every palindrome of bounded word count that
// can be built from a built-in word list, optionally filtering by grammar
// and sorting the result.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/suvi-lang/palindron/internal/clilog"
	"github.com/suvi-lang/palindron/internal/container/queue"
	"github.com/suvi-lang/palindron/internal/dictionary"
	"github.com/suvi-lang/palindron/internal/grammar"
	"github.com/suvi-lang/palindron/internal/languagemodel"
	"github.com/suvi-lang/palindron/internal/output"
	"github.com/suvi-lang/palindron/internal/palindrome"
)

// ArgumentError reports a malformed or unknown CLI argument. The CLI maps
// it to exit code 1.
type ArgumentError struct {
	msg string
}

func (e *ArgumentError) Error() string { return e.msg }

func argErrorf(format string, args ...any) *ArgumentError {
	return &ArgumentError{msg: fmt.Sprintf(format, args...)}
}

func main() {
	app := &cli.App{
		Name:      "palindron",
		Usage:     "enumerate multi-word palindromes from a built-in word list",
		ArgsUsage: "MAX_WORD_COUNT",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "words",
				Aliases: []string{"w"},
				Value:   string(dictionary.Pu),
				Usage:   "word list to use: pu, ku-suli, or ku-lili",
			},
			&cli.BoolFlag{
				Name:    "grammar",
				Aliases: []string{"g"},
				Usage:   "discard palindromes that do not also parse as sentences",
			},
			&cli.StringFlag{
				Name:    "sort",
				Aliases: []string{"s"},
				Usage:   "sort order: a (alphabetical), l (length), w (word count), lm (language model)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file; defaults to stdout",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log phase timing and progress to stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		var argErr *ArgumentError
		var writeErr *output.WriteError
		var internalErr *palindrome.InternalError
		switch {
		case errors.As(err, &argErr):
			fmt.Fprintln(os.Stderr, argErr)
			os.Exit(1)
		case errors.As(err, &writeErr):
			fmt.Fprintln(os.Stderr, writeErr)
			os.Exit(2)
		case errors.As(err, &internalErr):
			fmt.Fprintln(os.Stderr, internalErr)
			os.Exit(3)
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func run(c *cli.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*palindrome.InternalError); ok {
				fmt.Fprintln(os.Stderr, ie)
				os.Exit(3)
			}
			panic(r)
		}
	}()

	maxWordCount, parseErr := parseMaxWordCount(c.Args().First())
	if parseErr != nil {
		return parseErr
	}

	level := dictionary.Level(c.String("words"))
	dict, err := dictionary.New(level)
	if err != nil {
		return argErrorf("invalid -w/--words value: %v", err)
	}

	sortKey, sortErr := parseSortKey(c.String("sort"))
	if sortErr != nil {
		return sortErr
	}

	log := clilog.NewDefault(c.Bool("verbose"))
	timing := clilog.NewTiming(log)

	generator := palindrome.NewGenerator(dict.Words())
	timing.Mark("build-graph")

	// Palindromes are streamed into a buffer as workers find them rather
	// than handed back only as one final slice, so a future progress
	// reporter could drain the buffer while enumeration is still running.
	found := queue.NewQueue[string]()
	_, genErr := generator.GenerateStreaming(context.Background(), maxWordCount, func(s string) {
		found.Enqueue(s)
	})
	if genErr != nil {
		return genErr
	}
	palindromes := make([]string, 0, found.Size())
	for !found.IsEmpty() {
		s, err := found.Dequeue()
		if err != nil {
			break
		}
		palindromes = append(palindromes, s)
	}
	timing.Mark("enumerate")

	if c.Bool("grammar") {
		g := grammar.New()
		palindromes = filterValid(palindromes, g.IsValid)
	}
	timing.Mark("filter")

	var scorer output.Scorer
	if sortKey == output.LanguageModel {
		scorer = languagemodel.New()
	}
	if sortKey != "" {
		if err := output.Sort(palindromes, sortKey, scorer); err != nil {
			return argErrorf("invalid -s/--sort value: %v", err)
		}
	}
	timing.Mark("sort")

	if err := output.WriteLines(c.String("output"), palindromes); err != nil {
		return err
	}
	timing.Finish()

	return nil
}

func parseMaxWordCount(raw string) (int, error) {
	if raw == "" {
		return 0, argErrorf("MAX_WORD_COUNT is required")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, argErrorf("MAX_WORD_COUNT must be an integer, got %q", raw)
	}
	if n < 0 {
		return 0, argErrorf("MAX_WORD_COUNT must be non-negative, got %d", n)
	}
	return n, nil
}

func parseSortKey(raw string) (output.SortKey, error) {
	if raw == "" {
		return "", nil
	}
	switch output.SortKey(raw) {
	case output.Alphabetical, output.Length, output.WordCount, output.LanguageModel:
		return output.SortKey(raw), nil
	default:
		return "", argErrorf("unknown sort key %q", raw)
	}
}

func filterValid(sentences []string, isValid func(string) bool) []string {
	kept := sentences[:0]
	for _, s := range sentences {
		if isValid(s) {
			kept = append(kept, s)
		}
	}
	return kept
}
