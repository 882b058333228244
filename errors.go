package segtree

import "errors"

var (
	ErrNegativeSize    = errors.New("segtree: negative size")
	ErrNilCombine      = errors.New("segtree: nil combine function")
	ErrInvalidOption   = errors.New("segtree: invalid option")
	ErrIndexOutOfRange = errors.New("segtree: index out of range")

	// ErrInvalidRange is returned by Query when l > r or when either
	// bound falls outside [0, Len()]. Bounds are never swapped.
	ErrInvalidRange = errors.New("segtree: invalid range")
)
