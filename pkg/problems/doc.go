// Package problems provides scalable multi-objective benchmark problems used
// to exercise multi-objective optimization algorithms.
//
// The package currently implements the seven-member DTLZ suite (Deb, Thiele,
// Laumanns, Zitzler: "Scalable test problems for evolutionary multiobjective
// optimization"). Each problem is a pure function from a decision vector in
// the unit box to an objective vector, plus an analytical convergence metric
// that reads 0 exactly on the true Pareto-optimal front.
package problems
