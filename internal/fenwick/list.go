// Package fenwick provides a list data structure supporting prefix sums.
//
// A Fenwick tree, or binary indexed tree, keeps partial sums of an
// implicit array so that both a point update and a prefix sum take
// O(log n) time while using the same amount of memory as the array.
//
// It only works for groups (it subtracts), which is why it is kept as an
// independent cross-check for summing segment trees rather than as a
// layout of its own.
package fenwick

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// List represents a list of numbers with support for efficient
// prefix sum computation. The zero value is an empty list.
type List[T Number] struct {
	// tree[k] holds the sum of t[k&(k+1)] … t[k] of the underlying
	// array t. The prefix sum of the first k elements visits one slot per
	// 1 bit of k: for k = 13 = 1101₂ those are slots 12, 11 and 7, holding
	// t[12], t[8]+…+t[11] and t[0]+…+t[7].
	tree []T
}

// New creates a new list with the given elements.
func New[T Number](xs ...T) *List[T] {
	n := len(xs)
	t := make([]T, n)
	copy(t, xs)
	for i := range t {
		if j := i | (i + 1); j < n {
			t[j] += t[i]
		}
	}
	return &List[T]{tree: t}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return len(l.tree)
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) T {
	sum := l.tree[i]
	j := i + 1
	j -= j & -j
	for i > j {
		sum -= l.tree[i-1]
		i -= i & -i
	}
	return sum
}

// Set sets the element at index i to x.
func (l *List[T]) Set(i int, x T) {
	l.Add(i, x-l.Get(i))
}

// Add adds x to the element at index i.
func (l *List[T]) Add(i int, x T) {
	for n := len(l.tree); i < n; i |= i + 1 {
		l.tree[i] += x
	}
}

// Sum returns the sum of the elements from index 0 to index i-1.
func (l *List[T]) Sum(i int) T {
	var sum T
	for i > 0 {
		sum += l.tree[i-1]
		i -= i & -i
	}
	return sum
}

// SumRange returns the sum of the elements from index i to index j-1.
func (l *List[T]) SumRange(i, j int) T {
	var sum T
	for j > i {
		sum += l.tree[j-1]
		j -= j & -j
	}
	for i > j {
		sum -= l.tree[i-1]
		i -= i & -i
	}
	return sum
}

// Append appends a new element to the end of the list.
func (l *List[T]) Append(x T) {
	i := len(l.tree)
	l.tree = append(l.tree, 0)
	l.tree[i] = x - l.Get(i)
}
