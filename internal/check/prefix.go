package check

import "github.com/caio/go-segtree/internal/fenwick"

// Prefix answers range sums through a Fenwick list, independently of
// both the segment tree and Reference.
type Prefix[T fenwick.Number] struct {
	list *fenwick.List[T]
}

func NewPrefix[T fenwick.Number](values []T) *Prefix[T] {
	return &Prefix[T]{list: fenwick.New(values...)}
}

func (p *Prefix[T]) Set(i int, v T) {
	p.list.Set(i, v)
}

func (p *Prefix[T]) Sum(l, r int) T {
	return p.list.SumRange(l, r)
}

// Prefix returns the sum of the first i elements.
func (p *Prefix[T]) Prefix(i int) T {
	return p.list.Sum(i)
}

// Append adds v after the last element.
func (p *Prefix[T]) Append(v T) {
	p.list.Append(v)
}

func (p *Prefix[T]) Len() int {
	return p.list.Len()
}
