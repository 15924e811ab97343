package palindrome

// StartEdge is an edge from the virtual start state to a graph node, labeled
// with the single word that begins the palindrome. The edge exists iff Word's
// internal structure lets it reach To directly (see tryCreateStartNode).
type StartEdge struct {
	Word string
	To   Node
}

func (e StartEdge) String() string {
	return "(" + e.Word + ")-> " + e.To.String()
}

// Edge connects two graph nodes, labeled with the word that was appended to
// reach To from From. Word preserves its original casing so output can
// reproduce it; matching itself is done case-folded (see match.go).
type Edge struct {
	From Node
	Word string
	To   Node
}

func (e Edge) String() string {
	return e.From.String() + " (" + e.Word + ")-> " + e.To.String()
}
