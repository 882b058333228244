package check

import (
	"math/rand"

	rng "github.com/leesper/go_rng"
)

// RNG is the source of randomness used to generate workloads.
type RNG interface {
	Float64() float64
	Intn(int) int
}

// GlobalRNG draws from the math/rand global source.
func GlobalRNG() RNG {
	return &globalRNG{}
}

type globalRNG struct{}

func (r *globalRNG) Float64() float64 {
	return rand.Float64()
}

func (r *globalRNG) Intn(i int) int {
	return rand.Intn(i)
}

// LocalRNG returns a seeded generator so that a failing workload can be
// replayed exactly.
func LocalRNG(seed int64) RNG {
	return &localRNG{
		uniform: rng.NewUniformGenerator(seed),
	}
}

type localRNG struct {
	uniform *rng.UniformGenerator
}

func (r *localRNG) Float64() float64 {
	return r.uniform.Float64()
}

func (r *localRNG) Intn(i int) int {
	return int(r.uniform.Int64n(int64(i)))
}

// Gaussian returns a generator of normally distributed values.
func Gaussian(seed int64, mean, stddev float64) func() float64 {
	g := rng.NewGaussianGenerator(seed)
	return func() float64 {
		return g.Gaussian(mean, stddev)
	}
}
