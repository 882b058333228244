// Package segtree provides a segment tree: a fixed-size sequence that
// answers range aggregate queries and accepts point updates, both in
// O(log n) time.
//
// The aggregate is defined by a combine function and its identity
// element. Combine must be associative but need not be commutative:
// Query always folds elements strictly from left to right, so string
// concatenation or matrix products work as well as sums and minimums.
//
//	t, _ := segtree.New(5, math.MaxInt, func(a, b int) int { return min(a, b) })
//	t.Set(2, 7)
//	lowest, _ := t.Query(0, 5)
//
// A Tree is not safe for concurrent use. Callers that share one between
// goroutines must provide their own locking around Set and Query.
package segtree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// CombineFunc merges two adjacent aggregates, a covering the elements to
// the left of those covered by b.
type CombineFunc[T any] func(a, b T) T

// Number is the set of element types NewSum accepts.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

type Tree[T any] struct {
	n        int
	identity T
	combine  CombineFunc[T]
	layout   NodeLayout
	nodes    nodeStore[T]
}

// New creates a tree of n elements, all set to identity.
//
// identity must be neutral for combine, i.e. combine(identity, x) and
// combine(x, identity) both equal x. It is what Query returns for an
// empty range.
func New[T any](n int, identity T, combine CombineFunc[T], options ...treeOption) (*Tree[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	if combine == nil {
		return nil, ErrNilCombine
	}

	cfg := defaultConfig()
	for _, option := range options {
		if err := option(&cfg); err != nil {
			return nil, err
		}
	}

	return &Tree[T]{
		n:        n,
		identity: identity,
		combine:  combine,
		layout:   cfg.layout,
		nodes:    newNodeStore(cfg.layout, n, identity, combine),
	}, nil
}

// NewFrom creates a tree holding a copy of values. It runs in O(n),
// which beats n calls to Set.
func NewFrom[T any](values []T, identity T, combine CombineFunc[T], options ...treeOption) (*Tree[T], error) {
	t, err := New(len(values), identity, combine, options...)
	if err != nil {
		return nil, err
	}
	if len(values) > 0 {
		t.nodes.build(values)
	}
	return t, nil
}

// NewSum creates a tree of n zeroes that sums ranges.
func NewSum[T Number](n int, options ...treeOption) (*Tree[T], error) {
	var zero T
	return New(n, zero, add[T], options...)
}

// NewSumFrom is the summing counterpart of NewFrom.
func NewSumFrom[T Number](values []T, options ...treeOption) (*Tree[T], error) {
	var zero T
	return NewFrom(values, zero, add[T], options...)
}

func add[T Number](a, b T) T {
	return a + b
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	return t.n
}

// Identity returns the identity element the tree was created with.
func (t *Tree[T]) Identity() T {
	return t.identity
}

// Get returns the element at index i.
func (t *Tree[T]) Get(i int) (T, error) {
	if i < 0 || i >= t.n {
		var zero T
		return zero, t.indexError(i)
	}
	return t.nodes.get(i), nil
}

// Set replaces the element at index i with v and recomputes every
// aggregate above it.
//
// Compound updates are left to the caller, using the element type's own
// arithmetic:
//
//	x, _ := t.Get(i)
//	t.Set(i, x-10)
func (t *Tree[T]) Set(i int, v T) error {
	if i < 0 || i >= t.n {
		return t.indexError(i)
	}
	t.nodes.set(i, v)
	return nil
}

// Query returns the left-to-right fold of the elements in [l, r).
// An empty range (l == r) yields the identity. Bounds must satisfy
// 0 <= l <= r <= Len(); anything else is ErrInvalidRange.
func (t *Tree[T]) Query(l, r int) (T, error) {
	if l < 0 || r > t.n || l > r {
		var zero T
		return zero, fmt.Errorf("%w: [%d, %d) with length %d", ErrInvalidRange, l, r, t.n)
	}
	if l == r {
		return t.identity, nil
	}
	return t.nodes.query(l, r), nil
}

// All returns the fold of every element, same as Query(0, Len()).
func (t *Tree[T]) All() T {
	if t.n == 0 {
		return t.identity
	}
	return t.nodes.query(0, t.n)
}

// Values returns a copy of the elements in order.
func (t *Tree[T]) Values() []T {
	values := make([]T, t.n)
	for i := range values {
		values[i] = t.nodes.get(i)
	}
	return values
}

// Reset sets every element back to the identity.
func (t *Tree[T]) Reset() {
	t.nodes.fill(t.identity)
}

func (t *Tree[T]) String() string {
	return fmt.Sprintf("ST<n=%d, layout=%s>", t.n, t.layout)
}

func (t *Tree[T]) indexError(i int) error {
	return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, t.n)
}
