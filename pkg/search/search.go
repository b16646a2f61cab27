package search

// Searcher finds a pattern in a text. Every implementation reports matches
// at 0-based offsets in increasing order, overlapping matches included, and
// an empty pattern matches nowhere.
type Searcher interface {
	String() string
	FindIndex(text, pattern []byte) int
	FindIndexString(text, pattern string) int
	FindAll(text, pattern []byte) []int
	FindAllString(text, pattern string) []int
}

// Searchers returns one of each Searcher in this package.
func Searchers() []Searcher {
	return []Searcher{
		NewFJS(),
		NewKnuthMorrisPratt(),
		NewRabinKarp(),
		NewBruteForce(),
	}
}

// Boyer-Moore:
// Works by pre-analyzing the pattern and comparing from right-to-left. If a mismatch occurs, the
// initial analysis is used to determine how far the pattern can be shifted w.r.t. the  text being
// searched. This works particularly well for long search patterns. In particular, it can be
// sublinear, as you do not need to read every single character of your text.

// Knuth-Morris-Pratt:
// Also works by pre-analyzing the pattern, but tries to re-use whatever was already matched in the
// initial part of the pattern to avoid having to rematch that. This can work quite well, if your
// alphabet is small (f.ex. DNA bases), as you get a higher chance that your search patterns
// contain re-usable sub-patterns. KMP is best suited for searching texts that have a lot of tight
// repetition.

// Rabin-Karp:
// Works by utilizing efficient computation of hash values of the successive substrings of the text,
// which it then uses for comparing matches. It is best on large text in which you are finding multiple
// pattern matches, like detecting plagiarism.

// Franek-Jennings-Smyth:
// A hybrid of the two above. While nothing is partially matched it compares the last pattern symbol
// and skips ahead Sunday style, using the symbol just past the window to pick the shift. Once the
// last symbol lines up it confirms left to right and, on a partial match, falls back KMP style so no
// text symbol is read twice. Sublinear on typical input, linear in the worst case.
