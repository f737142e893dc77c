package testutil

import "github.com/XiaoConstantine/dtlz-go/pkg/core"

// Filled returns a decision vector of length n with every component set to v.
func Filled(n int, v float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = v
	}
	return x
}

// FilledPopulation returns a population of size vectors, each of length dim
// with every component set to v.
func FilledPopulation(size, dim int, v float64) core.Population {
	pop := make(core.Population, size)
	for i := range pop {
		pop[i] = Filled(dim, v)
	}
	return pop
}
