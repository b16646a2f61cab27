package util

import (
	"math/rand"
	"strings"
)

const (
	letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// SmallAlphabet makes random texts rich in partial matches.
	SmallAlphabet = "abc"
)

// NewRand returns a deterministic source so generated inputs repeat between
// runs.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandStringFrom returns n symbols drawn uniformly from alphabet.
func RandStringFrom(r *rand.Rand, n int, alphabet string) string {
	if alphabet == "" {
		alphabet = letterBytes
	}
	sb := strings.Builder{}
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[r.Intn(len(alphabet))])
	}
	return sb.String()
}

// RandBytesFrom is RandStringFrom returning a byte slice.
func RandBytesFrom(r *rand.Rand, n int, alphabet string) []byte {
	return []byte(RandStringFrom(r, n, alphabet))
}

// Fibonacci returns the Fibonacci word of the given order: "b", "a", "ab",
// "aba", "abaab", ... Each order rewrites a to ab and b to a. These words are
// full of overlapping borders, which makes them hard inputs for searchers
// that fall back on a failure function.
func Fibonacci(order int) string {
	word := "b"
	for k := 0; k < order; k++ {
		sb := strings.Builder{}
		sb.Grow(len(word) * 2)
		for i := 0; i < len(word); i++ {
			switch word[i] {
			case 'a':
				sb.WriteString("ab")
			case 'b':
				sb.WriteByte('a')
			}
		}
		word = sb.String()
	}
	return word
}
