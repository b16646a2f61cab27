package search_test

import (
	"fmt"

	"github.com/scottcagno/fjs/pkg/search"
)

func ExampleSearch() {
	var n int
	err := search.Search([]byte("aa"), []byte("aaaa"), func(pos int) {
		n++
		fmt.Printf("match %d found at position %d\n", n, pos)
	})
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	// match 1 found at position 0
	// match 2 found at position 1
	// match 3 found at position 2
}

func ExamplePattern_All() {
	p, err := search.Compile([]byte("abab"))
	if err != nil {
		panic(err)
	}
	for pos := range p.All([]byte("ababababab")) {
		fmt.Println(pos)
	}
	// Output:
	// 0
	// 2
	// 4
	// 6
}
