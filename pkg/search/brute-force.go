package search

// BruteForce tries every alignment of the pattern against the text. It runs
// in O(m*n) and is kept as the reference the other searchers are checked
// against.
type BruteForce struct{}

func NewBruteForce() *BruteForce {
	return new(BruteForce)
}

func (bf *BruteForce) String() string {
	return "BRUTE-FORCE"
}

func (bf *BruteForce) FindIndex(text, pattern []byte) int {
	idx := -1
	bruteForceFinder(text, pattern, func(pos int) bool {
		idx = pos
		return false
	})
	return idx
}

func (bf *BruteForce) FindIndexString(text, pattern string) int {
	return bf.FindIndex([]byte(text), []byte(pattern))
}

func (bf *BruteForce) FindAll(text, pattern []byte) []int {
	var ret []int
	bruteForceFinder(text, pattern, func(pos int) bool {
		ret = append(ret, pos)
		return true
	})
	return ret
}

func (bf *BruteForce) FindAllString(text, pattern string) []int {
	return bf.FindAll([]byte(text), []byte(pattern))
}

func bruteForceFinder(x, p []byte, yield func(int) bool) {
	m, n := len(p), len(x)
	if m == 0 {
		return
	}
	for j := 0; j <= n-m; j++ {
		i := 0
		for i < m && p[i] == x[i+j] {
			i++
		}
		if i == m && !yield(j) {
			return
		}
	}
}
