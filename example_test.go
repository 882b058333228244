package segtree_test

import (
	"errors"
	"fmt"
	"math"

	segtree "github.com/caio/go-segtree"
)

func ExampleNewSum() {
	tree, _ := segtree.NewSumFrom([]int{24, 1, 34, 4, 3})

	sum, _ := tree.Query(1, 5)
	fmt.Println(sum)

	tree.Set(1, 100)
	sum, _ = tree.Query(0, 2)
	fmt.Println(sum)
	// Output:
	// 42
	// 124
}

func ExampleNew() {
	tree, _ := segtree.New(5, math.MaxInt, func(a, b int) int { return min(a, b) })
	for i, x := range []int{24, 1, 34, 4, 3} {
		tree.Set(i, x)
	}

	lowest, _ := tree.Query(0, 2)
	empty, _ := tree.Query(1, 1)
	fmt.Println(lowest, empty == math.MaxInt)
	// Output: 1 true
}

func ExampleTree_Query() {
	tree, _ := segtree.NewFrom([]string{"a", "b", "c", "d"}, "", func(a, b string) string { return a + b })

	s, _ := tree.Query(1, 4)
	fmt.Println(s)

	_, err := tree.Query(3, 1)
	fmt.Println(errors.Is(err, segtree.ErrInvalidRange))
	// Output:
	// bcd
	// true
}
