package core

// Problem represents a box-constrained, continuous multi-objective benchmark
// problem. Implementations are immutable after construction and safe for
// concurrent use.
type Problem interface {
	// Evaluate computes the objective vector for a decision vector.
	// The decision vector must have length Dimension(); this is a
	// documented precondition and is not re-checked per call.
	Evaluate(x []float64) []float64

	// ObjectiveCount returns the length of the objective vectors produced
	// by Evaluate.
	ObjectiveCount() int

	// Dimension returns the required length of decision vectors.
	Dimension() int

	// Bounds returns the lower and upper box bounds of the decision space,
	// each of length Dimension().
	Bounds() (lower, upper []float64)

	// Name returns a human-readable problem name.
	Name() string
}

// ConvergenceMeter measures how far a decision vector lies from the true
// Pareto-optimal front, without needing to precompute that front. A value of
// zero means the vector is exactly on the optimal front.
type ConvergenceMeter interface {
	// Convergence returns the convergence metric for a decision vector.
	// Unlike Problem.Evaluate, the vector length is validated and a
	// mismatch yields an InvalidArgument error.
	Convergence(x []float64) (float64, error)
}

// Population is a collection of decision vectors.
type Population [][]float64

// Size returns the number of decision vectors in the population.
func (p Population) Size() int {
	return len(p)
}
