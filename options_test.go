package segtree

import (
	"errors"
	"testing"
)

func TestDefaults(t *testing.T) {
	tree, err := NewSum[int](4)

	if err != nil {
		t.Errorf("Creating a default tree should never error out. Got %s", err)
	}

	if tree.layout != MidpointLayout {
		t.Errorf("The default layout should be %s, got %s", MidpointLayout, tree.layout)
	}
}

func TestLayoutOption(t *testing.T) {
	tree, _ := NewSum[int](4, Layout(PowerOfTwoLayout))
	if tree.layout != PowerOfTwoLayout {
		t.Errorf("The layout option should change the new tree layout")
	}

	if _, ok := tree.nodes.(*pow2Nodes[int]); !ok {
		t.Errorf("Expected pow2 nodes, got %T", tree.nodes)
	}

	tree, err := NewSum[int](4, Layout(NodeLayout(-1)))
	if !errors.Is(err, ErrInvalidOption) || tree != nil {
		t.Errorf("Trying to create a tree with a bad layout should give an error")
	}
}

func TestLayoutStorage(t *testing.T) {
	for _, c := range []struct{ n, midpoint, pow2 int }{
		{0, 0, 2},
		{1, 1, 2},
		{5, 9, 16},
		{8, 15, 16},
		{9, 17, 32},
	} {
		mid := newMidpointNodes(c.n, 0, add[int])
		if len(mid.nodes) != c.midpoint {
			t.Errorf("midpoint layout over %d leaves should hold %d nodes, got %d", c.n, c.midpoint, len(mid.nodes))
		}
		pow := newPow2Nodes(c.n, 0, add[int])
		if len(pow.nodes) != c.pow2 {
			t.Errorf("pow2 layout over %d leaves should hold %d nodes, got %d", c.n, c.pow2, len(pow.nodes))
		}
	}
}

func TestPaddingHoldsIdentity(t *testing.T) {
	tree, _ := NewFrom([]int{5, 6, 7}, -1, func(a, b int) int {
		// -1 is neutral for this max-like combine
		if a > b {
			return a
		}
		return b
	}, Layout(PowerOfTwoLayout))

	nodes := tree.nodes.(*pow2Nodes[int])
	if nodes.nodes[nodes.size+3] != -1 {
		t.Errorf("Padding leaf should hold the identity, got %d", nodes.nodes[nodes.size+3])
	}

	tree.Reset()
	if nodes.nodes[nodes.size+3] != -1 || nodes.nodes[1] != -1 {
		t.Errorf("Reset should leave every node at the identity")
	}
}
