package grammar

// sentenceShape recognizes one surface pattern of lexical categories.
type sentenceShape struct {
	name    string
	matches func(kinds []string) bool
}

// shapes enumerates every recognized sentence pattern. A sentence is valid
// if it matches any one of them.
var shapes = []sentenceShape{
	{
		// A single content word: the minimal complete utterance.
		name: "bare-topic",
		matches: func(kinds []string) bool {
			return len(kinds) == 1 && kinds[0] == "content"
		},
	},
	{
		// A pronoun acting alone as subject, followed by one or more
		// content words as its predicate: "mi ala olo".
		name: "pronoun-predicate",
		matches: func(kinds []string) bool {
			return len(kinds) >= 2 && kinds[0] == "pronoun" && allContent(kinds[1:])
		},
	},
	{
		// A content-word subject, the particle li, then a content-word
		// predicate: "ala li olo".
		name: "subject-li-predicate",
		matches: matchesSubjectParticlePredicate,
	},
	{
		// Two content words joined directly, treated as a compact
		// topic-comment pair: "ala olo".
		name: "topic-comment",
		matches: func(kinds []string) bool {
			return len(kinds) == 2 && kinds[0] == "content" && kinds[1] == "content"
		},
	},
}

func allContent(kinds []string) bool {
	for _, k := range kinds {
		if k != "content" {
			return false
		}
	}
	return true
}

func matchesSubjectParticlePredicate(kinds []string) bool {
	if len(kinds) < 3 {
		return false
	}
	splitAt := -1
	for i, k := range kinds {
		if k == "particle" {
			splitAt = i
			break
		}
	}
	if splitAt <= 0 || splitAt == len(kinds)-1 {
		return false
	}
	return allContent(kinds[:splitAt]) && allContent(kinds[splitAt+1:])
}
