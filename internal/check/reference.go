package check

// Reference mirrors a range tree with a plain slice and answers queries
// by brute force.
type Reference[T any] struct {
	values   []T
	identity T
	combine  func(a, b T) T
}

func NewReference[T any](values []T, identity T, combine func(a, b T) T) *Reference[T] {
	v := make([]T, len(values))
	copy(v, values)
	return &Reference[T]{values: v, identity: identity, combine: combine}
}

func (r *Reference[T]) Len() int {
	return len(r.values)
}

func (r *Reference[T]) Get(i int) T {
	return r.values[i]
}

func (r *Reference[T]) Set(i int, v T) {
	r.values[i] = v
}

// Fold combines values[l:r] strictly left to right, starting from the
// identity.
func (r *Reference[T]) Fold(l, h int) T {
	acc := r.identity
	for _, v := range r.values[l:h] {
		acc = r.combine(acc, v)
	}
	return acc
}
