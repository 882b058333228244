package segtree

import "fmt"

type treeOption func(*config) error

type config struct {
	layout NodeLayout
}

func defaultConfig() config {
	return config{layout: MidpointLayout}
}

// Layout selects how nodes are arranged in the backing slice.
//
// MidpointLayout (the default) splits every range at its midpoint and
// stores exactly 2n-1 nodes, so there is no padding to reason about.
// PowerOfTwoLayout rounds the leaf count up to the next power of two and
// walks the tree bottom-up, which avoids recursion at the cost of up to
// twice the memory.
//
// Passing any other value makes the constructor fail with
// ErrInvalidOption.
func Layout(l NodeLayout) treeOption {
	return func(c *config) error {
		switch l {
		case MidpointLayout, PowerOfTwoLayout:
			c.layout = l
			return nil
		}
		return fmt.Errorf("%w: unknown layout %d", ErrInvalidOption, int(l))
	}
}
