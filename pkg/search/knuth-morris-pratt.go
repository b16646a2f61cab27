package search

// KnuthMorrisPratt algorithm is oftentimes only the best performing when it's used on shorter texts or
// if you are pre-computing the search tables beforehand. Otherwise, Boyer-Moore (and even Rabin-Karp) will
// beat it almost out most of the time.
type KnuthMorrisPratt struct{}

func NewKnuthMorrisPratt() *KnuthMorrisPratt {
	return new(KnuthMorrisPratt)
}

func (kmp *KnuthMorrisPratt) String() string {
	return "KNUTH-MORRIS-PRATT"
}

func (kmp *KnuthMorrisPratt) FindIndex(text, pattern []byte) int {
	idx := -1
	kmpFinder(text, pattern, func(pos int) bool {
		idx = pos
		return false
	})
	return idx
}

func (kmp *KnuthMorrisPratt) FindIndexString(text, pattern string) int {
	return kmp.FindIndex([]byte(text), []byte(pattern))
}

func (kmp *KnuthMorrisPratt) FindAll(text, pattern []byte) []int {
	var ret []int
	kmpFinder(text, pattern, func(pos int) bool {
		ret = append(ret, pos)
		return true
	})
	return ret
}

func (kmp *KnuthMorrisPratt) FindAllString(text, pattern string) []int {
	return kmp.FindAll([]byte(text), []byte(pattern))
}

// kmpFinder runs the classic KMP scan over s using the same optimized
// failure function FJS falls back on, so the two share makeBetap.
func kmpFinder(s, sub []byte, yield func(int) bool) {
	m, n := len(sub), len(s)
	// got zero target or want, or want bigger than target
	if m == 0 || n < m {
		return
	}
	next := makeBetap(sub)
	i, j := 0, 0
	for j < n {
		for i > -1 && sub[i] != s[j] {
			i = next[i]
		}
		i++
		j++
		if i >= m {
			if !yield(j - i) {
				return
			}
			i = next[i]
		}
	}
}
