package check

import "gonum.org/v1/gonum/floats/scalar"

const (
	absTol = 1e-6
	relTol = 1e-9
)

// ApproxEqual reports whether two float sums agree up to rounding. Sums
// folded in a different grouping are not bit-identical.
func ApproxEqual(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, absTol, relTol)
}
