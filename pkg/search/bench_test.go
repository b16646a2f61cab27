package search

import (
	"bytes"
	"testing"

	"github.com/scottcagno/fjs/pkg/util"
)

var benchText = util.RandBytesFrom(util.NewRand(1), 1<<20, "")

var benchPatterns = []struct {
	name    string
	pattern []byte
}{
	{"short", []byte("zQx")},
	{"medium", []byte("pocketlessUndrape")},
	{"long", util.RandBytesFrom(util.NewRand(2), 64, "")},
}

func BenchmarkSearchers(b *testing.B) {
	for _, s := range Searchers() {
		if _, ok := s.(*BruteForce); ok {
			continue
		}
		for _, bp := range benchPatterns {
			b.Run(s.String()+"/"+bp.name, func(b *testing.B) {
				b.SetBytes(int64(len(benchText)))
				for i := 0; i < b.N; i++ {
					s.FindAll(benchText, bp.pattern)
				}
			})
		}
	}
}

func BenchmarkPattern_Count(b *testing.B) {
	for _, bp := range benchPatterns {
		p, err := Compile(bp.pattern)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(bp.name, func(b *testing.B) {
			b.SetBytes(int64(len(benchText)))
			for i := 0; i < b.N; i++ {
				p.Count(benchText)
			}
		})
	}
}

func BenchmarkBytesCount(b *testing.B) {
	for _, bp := range benchPatterns {
		b.Run(bp.name, func(b *testing.B) {
			b.SetBytes(int64(len(benchText)))
			for i := 0; i < b.N; i++ {
				bytes.Count(benchText, bp.pattern)
			}
		})
	}
}

func BenchmarkFibonacci(b *testing.B) {
	text := []byte(util.Fibonacci(25))
	pattern := []byte(util.Fibonacci(8))
	for _, s := range []Searcher{NewFJS(), NewKnuthMorrisPratt()} {
		b.Run(s.String(), func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				s.FindAll(text, pattern)
			}
		})
	}
}
