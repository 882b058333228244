// Package check drives range trees through random workloads and compares
// every answer against a brute-force Reference.
package check

import "fmt"

// RangeTree is the surface a tree under test has to expose.
type RangeTree[T any] interface {
	Len() int
	Get(i int) (T, error)
	Set(i int, v T) error
	Query(l, r int) (T, error)
}

type OpKind int

const (
	OpSet OpKind = iota
	OpGet
	OpQuery
)

func (k OpKind) String() string {
	switch k {
	case OpSet:
		return "Set"
	case OpGet:
		return "Get"
	case OpQuery:
		return "Query"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

type Op[T any] struct {
	Kind  OpKind
	Index int // Set and Get
	Value T   // Set
	Left  int // Query
	Right int // Query
}

func (o Op[T]) String() string {
	switch o.Kind {
	case OpSet:
		return fmt.Sprintf("Set(%d, %v)", o.Index, o.Value)
	case OpGet:
		return fmt.Sprintf("Get(%d)", o.Index)
	default:
		return fmt.Sprintf("Query(%d, %d)", o.Left, o.Right)
	}
}

// Workload generates random operations over n positions.
type Workload[T any] struct {
	N     int
	RNG   RNG
	Value func(RNG) T
}

// Ops returns count operations, roughly a third of each kind. Query
// bounds are drawn independently from [0, N] and swapped when out of
// order, so empty and full ranges both show up. Set and Get are skipped
// when N is 0.
func (w Workload[T]) Ops(count int) []Op[T] {
	ops := make([]Op[T], 0, count)
	for len(ops) < count {
		kind := OpKind(w.RNG.Intn(3))
		if w.N == 0 && kind != OpQuery {
			kind = OpQuery
		}
		switch kind {
		case OpSet:
			ops = append(ops, Op[T]{Kind: OpSet, Index: w.RNG.Intn(w.N), Value: w.Value(w.RNG)})
		case OpGet:
			ops = append(ops, Op[T]{Kind: OpGet, Index: w.RNG.Intn(w.N)})
		default:
			l, r := w.RNG.Intn(w.N+1), w.RNG.Intn(w.N+1)
			if r < l {
				l, r = r, l
			}
			ops = append(ops, Op[T]{Kind: OpQuery, Left: l, Right: r})
		}
	}
	return ops
}

// Replay applies ops to both tree and ref and returns an error describing
// the first operation whose results differ.
func Replay[T any](tree RangeTree[T], ref *Reference[T], ops []Op[T], equal func(a, b T) bool) error {
	if tree.Len() != ref.Len() {
		return fmt.Errorf("length mismatch: tree %d, reference %d", tree.Len(), ref.Len())
	}
	for step, op := range ops {
		switch op.Kind {
		case OpSet:
			if err := tree.Set(op.Index, op.Value); err != nil {
				return fmt.Errorf("step %d %s: %w", step, op, err)
			}
			ref.Set(op.Index, op.Value)
		case OpGet:
			got, err := tree.Get(op.Index)
			if err != nil {
				return fmt.Errorf("step %d %s: %w", step, op, err)
			}
			if want := ref.Get(op.Index); !equal(got, want) {
				return fmt.Errorf("step %d %s = %v, want %v", step, op, got, want)
			}
		case OpQuery:
			got, err := tree.Query(op.Left, op.Right)
			if err != nil {
				return fmt.Errorf("step %d %s: %w", step, op, err)
			}
			if want := ref.Fold(op.Left, op.Right); !equal(got, want) {
				return fmt.Errorf("step %d %s = %v, want %v", step, op, got, want)
			}
		default:
			return fmt.Errorf("step %d: unknown op %s", step, op.Kind)
		}
	}
	return nil
}
