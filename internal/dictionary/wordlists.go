package dictionary

// puWords is the smallest built-in list: a compact core vocabulary.
var puWords = []string{
	"a", "mi", "sa", "na", "we", "to", "li", "pa", "ta", "so",
	"ele", "ene", "isi", "oro", "aja", "ewe", "ala", "olo", "umu", "ade",
	"tanat", "sinos", "lawal", "ronor",
}

// kuSuliWords extends puWords with a medium-sized vocabulary. puWords is a
// subset of kuSuliWords (checked by TestNesting).
var kuSuliWords = append(append([]string{}, puWords...), []string{
	"ko", "ro", "fa", "nu", "wi", "do", "ke", "ve", "zu", "mo",
	"elire", "anana", "osomo", "ikavi", "udaru", "inomi", "afara", "usonu",
	"kaleko", "timori", "panama", "solovo", "venire", "tarita", "bonono",
	"rakira", "lumolo", "sadova", "netene", "gorevo",
	"dood", "noon", "level", "refer", "civic",
}...)

// kuLiliWords extends kuSuliWords with the full vocabulary. kuSuliWords is a
// subset of kuLiliWords.
var kuLiliWords = append(append([]string{}, kuSuliWords...), []string{
	"xa", "ju", "qe", "hy", "wo", "ze", "po", "vi", "du", "ka",
	"kayayak", "malayam", "tenenet", "sagagas", "ribibir", "defeder",
	"amanama", "olumilo", "esinese", "utaratu", "onovono", "ilakali",
	"rotator", "kayak", "civics", "radar", "deified", "reviver",
	"redder", "sexes", "stats", "minim", "repaper",
	"rotor", "pop", "eye", "did", "mom", "dad", "wow", "sis",
}...)

var wordLists = map[Level][]string{
	Pu:     puWords,
	KuSuli: kuSuliWords,
	KuLili: kuLiliWords,
}
