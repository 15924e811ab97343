package palindrome

import "strings"

// sign returns +1 for non-negative i, -1 otherwise. Matches the source's
// convention that offset 0 (the terminal node) is treated as the positive
// side for the purposes of computing a prospective offset.
func sign(i int) int {
	if i >= 0 {
		return 1
	}
	return -1
}

// reverseString returns s with its bytes reversed. Tails and matching parts
// are always ASCII-folded before this is called, so byte-reversal and
// rune-reversal agree.
func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// sliceByOffset splits s at the signed offset o, returning (residual,
// matching) in the order the caller expects to interpret them:
//
//	o >= 0:  (s[o:], s[:o])
//	o <  0:  (s[:len(s)+o], s[len(s)+o:])
func sliceByOffset(s string, o int) (string, string) {
	if o >= 0 {
		return s[o:], s[:o]
	}
	return s[:len(s)+o], s[len(s)+o:]
}

// tryCreateStartNode checks whether starting a palindrome with caselessWord
// at the given signed split offset is viable: the matching part carved out
// by offset must itself be palindromic. On success it returns the node
// reached by consuming the rest of the word as the new tail.
func tryCreateStartNode(caselessWord string, offset int) (Node, bool) {
	matchingPart, tail := sliceByOffset(caselessWord, offset)
	if reverseString(matchingPart) != matchingPart {
		return Node{}, false
	}
	return NewNode(tail, offset), true
}

// tryCreateNextNode applies the matching rule: does appending
// caselessWord to a fragment in from's equivalence class land in some valid
// node? The word is always added on the side opposite from's current tail.
func tryCreateNextNode(from Node, caselessWord string) (Node, bool) {
	wordLength := len(caselessWord)
	toOffset := from.Offset - sign(from.Offset)*wordLength
	wordOffset := -sign(toOffset) * wordLength

	var toTail, tailMatchingPart, wordMatchingPart string
	if sign(from.Offset) == sign(toOffset) {
		// No crossing: the new word is entirely consumed by the existing tail.
		toTail, tailMatchingPart = sliceByOffset(from.Tail, wordOffset)
		wordMatchingPart = caselessWord
	} else {
		// Crossing: the new word consumes the whole tail and flips sides.
		toTail, wordMatchingPart = sliceByOffset(caselessWord, from.Offset)
		tailMatchingPart = from.Tail
	}

	if reverseString(tailMatchingPart) != wordMatchingPart {
		return Node{}, false
	}
	return NewNode(toTail, toOffset), true
}

// foldCase lowercases a word for matching purposes while leaving the
// original casing untouched for output (see Edge.Word / StartEdge.Word).
func foldCase(word string) string {
	return strings.ToLower(word)
}
