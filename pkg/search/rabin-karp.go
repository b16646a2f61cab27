package search

import "bytes"

// RabinKarp algorithm is inferior for single pattern searching to Knuth–Morris–Pratt algorithm or the
// Boyer–Moore string search algorithm (and other faster single pattern string searching algorithms) because
// of its slow worst case behavior. However, it is a useful algorithm for multiple pattern searches.
type RabinKarp struct{}

func NewRabinKarp() *RabinKarp {
	return new(RabinKarp)
}

func (rk *RabinKarp) String() string {
	return "RABIN-KARP"
}

func (rk *RabinKarp) FindIndex(text, pattern []byte) int {
	idx := -1
	rabinKarpFinder(text, pattern, func(pos int) bool {
		idx = pos
		return false
	})
	return idx
}

func (rk *RabinKarp) FindIndexString(text, pattern string) int {
	return rk.FindIndex([]byte(text), []byte(pattern))
}

func (rk *RabinKarp) FindAll(text, pattern []byte) []int {
	var ret []int
	rabinKarpFinder(text, pattern, func(pos int) bool {
		ret = append(ret, pos)
		return true
	})
	return ret
}

func (rk *RabinKarp) FindAllString(text, pattern string) []int {
	return rk.FindAll([]byte(text), []byte(pattern))
}

// PrimeRK is the prime base used in Rabin-Karp algorithm.
const PrimeRK = 16777619

// rabinKarpFinder uses a rolling hash over every window of len(sep) bytes in
// s and confirms each hash hit with bytes.Equal before yielding it.
func rabinKarpFinder(s, sep []byte, yield func(int) bool) {
	n := len(sep)
	if n == 0 || len(s) < n {
		return
	}
	hashsep, pow := hashBytes(sep)
	var h uint32
	for i := 0; i < n; i++ {
		h = h*PrimeRK + uint32(s[i])
	}
	if h == hashsep && bytes.Equal(s[:n], sep) {
		if !yield(0) {
			return
		}
	}
	for i := n; i < len(s); {
		h *= PrimeRK
		h += uint32(s[i])
		h -= pow * uint32(s[i-n])
		i++
		if h == hashsep && bytes.Equal(s[i-n:i], sep) {
			if !yield(i - n) {
				return
			}
		}
	}
}

// hashBytes returns the hash and the appropriate multiplicative
// factor for use in Rabin-Karp algorithm.
func hashBytes(sep []byte) (uint32, uint32) {
	hash := uint32(0)
	for i := 0; i < len(sep); i++ {
		hash = hash*PrimeRK + uint32(sep[i])
	}
	var pow, sq uint32 = 1, PrimeRK
	for i := len(sep); i > 0; i >>= 1 {
		if i&1 != 0 {
			pow *= sq
		}
		sq *= sq
	}
	return hash, pow
}
