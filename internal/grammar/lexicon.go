package grammar

// pronounWords, particleWords and contentWords are disjoint lexical
// categories. They deliberately reuse some entries from the built-in
// palindrome dictionaries (see internal/dictionary) so that palindromes
// generated from those word lists have a chance of parsing.
var (
	pronounWords  = []string{"mi", "sa"}
	particleWords = []string{"li", "ta", "so"}
	contentWords  = []string{
		"a", "na", "we", "to", "pa",
		"ele", "ene", "isi", "oro", "aja", "ewe", "ala", "olo", "umu", "ade",
		"ko", "ro", "fa", "nu", "wi", "do", "ke", "ve", "zu", "mo",
	}
)
