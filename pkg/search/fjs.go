package search

import (
	"iter"
	"math"
)

// MatchFunc is called once for every match with the offset in the text
// where the match begins.
type MatchFunc func(pos int)

// Pattern holds a search pattern and the two tables FJS derives from it.
// A Pattern is read only once compiled and is safe for concurrent use.
type Pattern struct {
	pat   []byte
	mask  int
	delta []int // shift table, indexed by symbol&mask
	beta  []int // optimized failure function, len(pat)+1 entries
}

// Compile builds a Pattern using the default configuration.
func Compile(pattern []byte) (*Pattern, error) {
	return defaultConfig.Compile(pattern)
}

// Search reports every match of pattern in text to fn using the default
// configuration. An empty pattern never matches.
func Search(pattern, text []byte, fn MatchFunc) error {
	return defaultConfig.Search(pattern, text, fn)
}

func compile(pattern []byte, alphabet int) *Pattern {
	p := &Pattern{
		pat:  pattern,
		mask: alphabet - 1,
	}
	if len(pattern) == 0 {
		return p
	}
	p.delta = makeDelta(pattern, alphabet)
	p.beta = makeBetap(pattern)
	return p
}

// makeDelta builds the shift table. Every slot starts at m+1, the skip used
// for symbols that do not occur in the pattern. Each occurrence at i lowers
// its slot to m-i, so with a full alphabet a slot holds the distance from the
// rightmost occurrence to the end of the pattern.
func makeDelta(p []byte, alphabet int) []int {
	m, mask := len(p), alphabet-1
	delta := make([]int, alphabet)
	for i := range delta {
		delta[i] = m + 1
	}
	for i := 0; i < m; i++ {
		slot := int(p[i]) & mask
		if jump := m - i; jump < delta[slot] {
			delta[slot] = jump
		}
	}
	return delta
}

// makeBetap builds the KMP failure function with the optimization that a
// fallback never lands on a position holding the same symbol that just
// mismatched. betap[0] is -1.
func makeBetap(p []byte) []int {
	m := len(p)
	betap := make([]int, m+1)
	i, j := 0, -1
	betap[0] = -1
	for i < m {
		for j > -1 && p[i] != p[j] {
			j = betap[j]
		}
		i++
		j++
		if i < m && p[i] == p[j] {
			betap[i] = betap[j]
		} else {
			betap[i] = j
		}
	}
	return betap
}

// Len returns the pattern length.
func (p *Pattern) Len() int {
	return len(p.pat)
}

// Bytes returns the pattern. The caller must not modify it.
func (p *Pattern) Bytes() []byte {
	return p.pat
}

// Search reports every match in text to fn, in increasing order.
func (p *Pattern) Search(text []byte, fn MatchFunc) {
	p.scan(text, func(pos int) bool {
		fn(pos)
		return true
	})
}

// FindAll returns the offsets of every match in text.
func (p *Pattern) FindAll(text []byte) []int {
	var ret []int
	p.scan(text, func(pos int) bool {
		ret = append(ret, pos)
		return true
	})
	return ret
}

// FindIndex returns the offset of the first match in text, or -1.
func (p *Pattern) FindIndex(text []byte) int {
	idx := -1
	p.scan(text, func(pos int) bool {
		idx = pos
		return false
	})
	return idx
}

// Count returns the number of matches in text, overlapping ones included.
func (p *Pattern) Count(text []byte) int {
	var n int
	p.scan(text, func(int) bool {
		n++
		return true
	})
	return n
}

// All returns an iterator over the offsets of every match in text. The scan
// stops as soon as the loop body breaks.
func (p *Pattern) All(text []byte) iter.Seq[int] {
	return func(yield func(int) bool) {
		p.scan(text, yield)
	}
}

// scan is the FJS main loop. ip is the text position that the last pattern
// symbol is predicted to align with; j counts the pattern symbols already
// matched ending at i-1. With j <= 0 there is no partial match and the loop
// skips ahead on the shift table, otherwise it extends the partial match and
// falls back on the failure function.
func (p *Pattern) scan(x []byte, yield func(int) bool) {
	pat, delta, beta, mask := p.pat, p.delta, p.beta, p.mask
	m, n := len(pat), len(x)
	if m < 1 {
		return
	}
	mp := m - 1
	i, j, ip := 0, 0, mp
	for ip < n {
		if j <= 0 {
			for pat[mp] != x[ip] {
				// nothing to look ahead at means no alignment is left
				if ip+1 >= n {
					return
				}
				ip += delta[int(x[ip+1])&mask]
				if ip >= n {
					return
				}
			}
			j = 0
			i = ip - mp
			for j < mp && x[i] == pat[j] {
				i++
				j++
			}
			if j == mp {
				if !yield(i - mp) {
					return
				}
				i++
				j++
			}
			if j <= 0 {
				i++
			} else {
				j = beta[j]
			}
		} else {
			for j < m && x[i] == pat[j] {
				i++
				j++
			}
			if j == m {
				if !yield(i - m) {
					return
				}
			}
			j = beta[j]
		}
		ip = i + mp - j
	}
}

// FJS implements Searcher with the Franek-Jennings-Smyth algorithm. It
// places no cap on pattern length; use a Config to enforce one.
type FJS struct {
	conf *Config
}

// NewFJS returns an FJS searcher with a full 256 entry shift table. Unlike
// Compile, it places no cap on pattern length.
func NewFJS() *FJS {
	return &FJS{
		conf: &Config{
			AlphabetSize:     AlphabetSize,
			MaxPatternLength: math.MaxInt,
		},
	}
}

func (f *FJS) String() string {
	return "FRANEK-JENNINGS-SMYTH"
}

// FindIndex returns the offset of the first match, or -1.
func (f *FJS) FindIndex(text, pattern []byte) int {
	p, err := f.conf.Compile(pattern)
	if err != nil {
		return -1
	}
	return p.FindIndex(text)
}

func (f *FJS) FindIndexString(text, pattern string) int {
	return f.FindIndex([]byte(text), []byte(pattern))
}

// FindAll returns every match offset in increasing order, overlaps
// included. An empty pattern matches nowhere.
func (f *FJS) FindAll(text, pattern []byte) []int {
	p, err := f.conf.Compile(pattern)
	if err != nil {
		return nil
	}
	return p.FindAll(text)
}

func (f *FJS) FindAllString(text, pattern string) []int {
	return f.FindAll([]byte(text), []byte(pattern))
}
