// Package dtlz is a Go implementation of the DTLZ test suite: seven scalable
// multi-objective benchmark problems used to evaluate multi-objective
// optimization algorithms.
//
// The library is a pure evaluation engine. Given a problem id, a decision
// space dimension and an objective count, it maps decision vectors in the
// unit box to objective vectors and measures analytical convergence toward
// the true Pareto-optimal front.
//
// Key Components:
//
//   - Core: the Problem and ConvergenceMeter interfaces and the Population
//     type shared by the packages below.
//
//   - Problems: the DTLZ evaluator itself. Each suite member combines a
//     distance function over the trailing "distance" components with a shape
//     function over the leading "position" components:
//     * DTLZ1: linear Pareto front on the hyperplane sum(f) = 0.5
//     * DTLZ2/DTLZ3: spherical fronts, DTLZ3 with a highly multimodal
//     distance landscape
//     * DTLZ4: spherical front with solution density biased by a shape
//     exponent
//     * DTLZ5/DTLZ6: degenerate curve fronts via meta-variable transformation
//     * DTLZ7: disconnected Pareto-optimal regions
//
//   - Metrics: population-level convergence, sequential or with a bounded
//     goroutine pool.
//
//   - Config: YAML/JSON persistence of the four configuration fields that
//     fully determine an evaluator.
//
// Simple Example:
//
//	import (
//	    "fmt"
//
//	    "github.com/XiaoConstantine/dtlz-go/pkg/problems"
//	)
//
//	func main() {
//	    problem, err := problems.New(1, 7, 3)
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    x := []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}
//	    fmt.Println(problem.Name(), problem.Evaluate(x))
//	}
//
// Evaluators are immutable after construction and safe for concurrent use
// from any number of goroutines.
package dtlz
