package segtree

// NodeLayout describes how a Tree arranges its nodes in memory.
type NodeLayout int

const (
	MidpointLayout NodeLayout = iota
	PowerOfTwoLayout
)

func (l NodeLayout) String() string {
	switch l {
	case MidpointLayout:
		return "midpoint"
	case PowerOfTwoLayout:
		return "pow2"
	default:
		return "unknown"
	}
}

// nodeStore is implemented by each layout. Callers validate indices;
// query is only called with 0 <= l < r <= n.
type nodeStore[T any] interface {
	build(values []T)
	get(i int) T
	set(i int, v T)
	query(l, r int) T
	fill(v T)
}

func newNodeStore[T any](l NodeLayout, n int, identity T, combine CombineFunc[T]) nodeStore[T] {
	if l == PowerOfTwoLayout {
		return newPow2Nodes(n, identity, combine)
	}
	return newMidpointNodes(n, identity, combine)
}

// midpointNodes stores a tree over exactly n leaves in pre-order.
//
// The node covering [lo, hi) sits at index v. Its left child covers
// [lo, mid) at v+1 and, since a subtree over m leaves takes 2m-1 slots,
// its right child covers [mid, hi) at v+2*(mid-lo).
type midpointNodes[T any] struct {
	n       int
	nodes   []T
	combine CombineFunc[T]
}

func newMidpointNodes[T any](n int, identity T, combine CombineFunc[T]) *midpointNodes[T] {
	size := 0
	if n > 0 {
		size = 2*n - 1
	}
	m := &midpointNodes[T]{
		n:       n,
		nodes:   make([]T, size),
		combine: combine,
	}
	m.fill(identity)
	return m
}

func split(lo, hi int) int {
	return lo + (hi-lo)/2
}

func (m *midpointNodes[T]) fill(v T) {
	if m.n == 0 {
		return
	}
	leaves := make([]T, m.n)
	for i := range leaves {
		leaves[i] = v
	}
	m.build(leaves)
}

func (m *midpointNodes[T]) build(values []T) {
	if m.n > 0 {
		m.buildNode(0, 0, m.n, values)
	}
}

func (m *midpointNodes[T]) buildNode(v, lo, hi int, values []T) {
	if hi-lo == 1 {
		m.nodes[v] = values[lo]
		return
	}
	mid := split(lo, hi)
	left, right := v+1, v+2*(mid-lo)
	m.buildNode(left, lo, mid, values)
	m.buildNode(right, mid, hi, values)
	m.nodes[v] = m.combine(m.nodes[left], m.nodes[right])
}

func (m *midpointNodes[T]) get(i int) T {
	v, lo, hi := 0, 0, m.n
	for hi-lo > 1 {
		mid := split(lo, hi)
		if i < mid {
			v, hi = v+1, mid
		} else {
			v, lo = v+2*(mid-lo), mid
		}
	}
	return m.nodes[v]
}

func (m *midpointNodes[T]) set(i int, x T) {
	m.setNode(0, 0, m.n, i, x)
}

func (m *midpointNodes[T]) setNode(v, lo, hi, i int, x T) {
	if hi-lo == 1 {
		m.nodes[v] = x
		return
	}
	mid := split(lo, hi)
	left, right := v+1, v+2*(mid-lo)
	if i < mid {
		m.setNode(left, lo, mid, i, x)
	} else {
		m.setNode(right, mid, hi, i, x)
	}
	m.nodes[v] = m.combine(m.nodes[left], m.nodes[right])
}

func (m *midpointNodes[T]) query(l, r int) T {
	return m.queryNode(0, 0, m.n, l, r)
}

// queryNode folds [l, r) ∩ [lo, hi). The intersection is never empty.
func (m *midpointNodes[T]) queryNode(v, lo, hi, l, r int) T {
	if l <= lo && hi <= r {
		return m.nodes[v]
	}
	mid := split(lo, hi)
	left, right := v+1, v+2*(mid-lo)
	switch {
	case r <= mid:
		return m.queryNode(left, lo, mid, l, r)
	case l >= mid:
		return m.queryNode(right, mid, hi, l, r)
	}
	return m.combine(
		m.queryNode(left, lo, mid, l, r),
		m.queryNode(right, mid, hi, l, r),
	)
}

// pow2Nodes is the classic bottom-up heap layout. Node 1 is the root,
// node k has children 2k and 2k+1 and leaf i lives at size+i. Leaves in
// [n, size) are padding and always hold the identity.
type pow2Nodes[T any] struct {
	n        int
	size     int
	nodes    []T
	identity T
	combine  CombineFunc[T]
}

func newPow2Nodes[T any](n int, identity T, combine CombineFunc[T]) *pow2Nodes[T] {
	size := 1
	for size < n {
		size <<= 1
	}
	p := &pow2Nodes[T]{
		n:        n,
		size:     size,
		nodes:    make([]T, 2*size),
		identity: identity,
		combine:  combine,
	}
	p.fill(identity)
	return p
}

func (p *pow2Nodes[T]) fill(v T) {
	leaves := make([]T, p.n)
	for i := range leaves {
		leaves[i] = v
	}
	p.build(leaves)
}

func (p *pow2Nodes[T]) build(values []T) {
	copy(p.nodes[p.size:], values)
	for i := p.size + len(values); i < 2*p.size; i++ {
		p.nodes[i] = p.identity
	}
	for k := p.size - 1; k > 0; k-- {
		p.nodes[k] = p.combine(p.nodes[2*k], p.nodes[2*k+1])
	}
}

func (p *pow2Nodes[T]) get(i int) T {
	return p.nodes[p.size+i]
}

func (p *pow2Nodes[T]) set(i int, x T) {
	k := p.size + i
	p.nodes[k] = x
	for k > 1 {
		k >>= 1
		p.nodes[k] = p.combine(p.nodes[2*k], p.nodes[2*k+1])
	}
}

func (p *pow2Nodes[T]) query(l, r int) T {
	// Nodes taken from the left end are appended to acc, nodes taken from
	// the right end are prepended to racc, so the fold stays left-to-right.
	acc, racc := p.identity, p.identity
	l += p.size
	r += p.size
	for l < r {
		if l&1 == 1 {
			acc = p.combine(acc, p.nodes[l])
			l++
		}
		if r&1 == 1 {
			r--
			racc = p.combine(p.nodes[r], racc)
		}
		l >>= 1
		r >>= 1
	}
	return p.combine(acc, racc)
}
