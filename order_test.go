package segtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func concat(a, b string) string {
	return a + b
}

func TestConcatenationKeepsOrder(t *testing.T) {
	t.Parallel()

	letters := strings.Split("abcdefghijklm", "")

	for _, layout := range layouts {
		tree, err := NewFrom(letters, "", concat, Layout(layout))
		require.NoError(t, err)

		for l := 0; l <= len(letters); l++ {
			for r := l; r <= len(letters); r++ {
				got, err := tree.Query(l, r)
				require.NoError(t, err)
				assert.Equal(t, strings.Join(letters[l:r], ""), got, "%s: Query(%d, %d)", tree, l, r)
			}
		}

		require.NoError(t, tree.Set(6, "XY"))
		got, err := tree.Query(4, 9)
		require.NoError(t, err)
		assert.Equal(t, "efXYhi", got, "%s", tree)
	}
}

func matrix(a, b, c, d float64) *mat.Dense {
	return mat.NewDense(2, 2, []float64{a, b, c, d})
}

func mul(a, b *mat.Dense) *mat.Dense {
	var c mat.Dense
	c.Mul(a, b)
	return &c
}

func product(ms []*mat.Dense) *mat.Dense {
	acc := matrix(1, 0, 0, 1)
	for _, m := range ms {
		acc = mul(acc, m)
	}
	return acc
}

func TestMatrixProductKeepsOrder(t *testing.T) {
	t.Parallel()

	ms := []*mat.Dense{
		matrix(1, 1, 0, 1),
		matrix(0, 1, 1, 0),
		matrix(2, 0, 1, 1),
		matrix(1, 0, 3, 1),
		matrix(1, 2, 0, 1),
		matrix(0, 1, 1, 1),
		matrix(1, 0, 1, 2),
	}

	// operands that do not commute, so a reversed fold would be caught
	require.False(t, mat.Equal(mul(ms[0], ms[1]), mul(ms[1], ms[0])))

	for _, layout := range layouts {
		tree, err := NewFrom(ms, matrix(1, 0, 0, 1), mul, Layout(layout))
		require.NoError(t, err)

		for l := 0; l <= len(ms); l++ {
			for r := l; r <= len(ms); r++ {
				got, err := tree.Query(l, r)
				require.NoError(t, err)
				assert.True(t, mat.Equal(product(ms[l:r]), got),
					"%s: Query(%d, %d) = %v", tree, l, r, mat.Formatted(got))
			}
		}

		swap := matrix(0, 1, 1, 0)
		require.NoError(t, tree.Set(3, swap))
		want := product([]*mat.Dense{ms[2], swap, ms[4]})
		got, err := tree.Query(2, 5)
		require.NoError(t, err)
		assert.True(t, mat.Equal(want, got), "%s: Query(2, 5) after Set(3)", tree)
	}
}
