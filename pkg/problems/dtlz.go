package problems

import (
	"fmt"
	"math"
	"strconv"

	"github.com/XiaoConstantine/dtlz-go/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// gFunc reduces the distance components x_M to a scalar. Its minimum value is
// 0 for every problem in the suite, reached on the optimal front.
type gFunc func(xM []float64) float64

// shapeFunc synthesizes the full objective vector from the decision vector
// and the precomputed g value.
type shapeFunc func(x []float64, g float64) []float64

// Dimensions are capped well below the representable maximum so the index
// arithmetic inside the shape loops cannot overflow.
const maxParamSize = math.MaxInt / 3

// DefaultAlpha is the shape exponent used by DTLZ4 unless overridden
// with WithAlpha.
const DefaultAlpha = 100

// DTLZ evaluates one problem of the DTLZ test suite.
//
// This widespread test suite was conceived for multi-objective problems with
// scalable fitness dimensions and takes its name from its authors Deb,
// Thiele, Laumanns and Zitzler. All seven problems are box-constrained
// continuous n-dimensional multi-objective problems: DTLZ1 has a linear
// Pareto front, DTLZ2-4 spherical fronts of varying difficulty and solution
// density, DTLZ5-6 degenerate curve fronts, and DTLZ7 a disconnected front.
//
// A DTLZ value is immutable after construction and holds no mutable state,
// so a single instance may be shared across goroutines without
// synchronization. Each Evaluate call allocates a fresh objective vector.
type DTLZ struct {
	probID int
	alpha  int
	dim    int
	fdim   int

	// Kernels resolved once at construction; no per-call dispatch.
	g     gFunc
	shape shapeFunc
}

// Option configures optional DTLZ parameters.
type Option func(*DTLZ)

// WithAlpha sets the shape exponent controlling solution density.
// Only DTLZ4 uses it; other problems ignore the value.
func WithAlpha(alpha int) Option {
	return func(d *DTLZ) {
		d.alpha = alpha
	}
}

// New constructs a DTLZ problem.
//
// probID selects the suite member in [1, 7], dim is the decision vector
// length and fdim the number of objectives. It returns an InvalidArgument
// error if probID is out of range, fdim is below 2, dim does not exceed
// fdim, or either size exceeds the internal cap.
func New(probID, dim, fdim int, opts ...Option) (*DTLZ, error) {
	if probID < 1 || probID > 7 {
		return nil, errors.WithFields(
			errors.New(errors.InvalidArgument,
				fmt.Sprintf("DTLZ test suite contains seven problems (prob_id = [1 ... 7]), prob_id=%d was detected", probID)),
			errors.Fields{"prob_id": probID})
	}
	if fdim < 2 {
		return nil, errors.WithFields(
			errors.New(errors.InvalidArgument,
				fmt.Sprintf("DTLZ test problems have a minimum of 2 objectives: fdim=%d was detected", fdim)),
			errors.Fields{"fdim": fdim})
	}
	if fdim > maxParamSize {
		return nil, errors.WithFields(
			errors.New(errors.InvalidArgument, "the number of objectives is too large"),
			errors.Fields{"fdim": fdim})
	}
	if dim > maxParamSize {
		return nil, errors.WithFields(
			errors.New(errors.InvalidArgument, "the problem dimension is too large"),
			errors.Fields{"dim": dim})
	}
	if dim <= fdim {
		return nil, errors.WithFields(
			errors.New(errors.InvalidArgument,
				fmt.Sprintf("the problem dimension has to be larger than the number of objectives: dim=%d, fdim=%d", dim, fdim)),
			errors.Fields{"dim": dim, "fdim": fdim})
	}

	d := &DTLZ{
		probID: probID,
		alpha:  DefaultAlpha,
		dim:    dim,
		fdim:   fdim,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.g = distanceKernel(probID)
	d.shape = d.shapeKernel(probID)
	return d, nil
}

// Evaluate computes the objective vector for the decision vector x.
//
// Precondition: len(x) == Dimension(). The length is not re-checked here;
// callers are responsible for supplying correctly sized vectors.
func (d *DTLZ) Evaluate(x []float64) []float64 {
	return d.shape(x, d.g(x[d.fdim-1:]))
}

// ObjectiveCount returns the number of objectives.
func (d *DTLZ) ObjectiveCount() int {
	return d.fdim
}

// Dimension returns the decision vector length.
func (d *DTLZ) Dimension() int {
	return d.dim
}

// ProblemID returns the suite member id in [1, 7].
func (d *DTLZ) ProblemID() int {
	return d.probID
}

// Alpha returns the shape exponent used by DTLZ4.
func (d *DTLZ) Alpha() int {
	return d.alpha
}

// Bounds returns the box bounds of the decision space: all zeros below,
// all ones above. Fresh slices are returned on every call.
func (d *DTLZ) Bounds() (lower, upper []float64) {
	lower = make([]float64, d.dim)
	upper = make([]float64, d.dim)
	for i := range upper {
		upper[i] = 1.0
	}
	return lower, upper
}

// Name returns the problem name, e.g. "DTLZ3".
func (d *DTLZ) Name() string {
	return "DTLZ" + strconv.Itoa(d.probID)
}

// Convergence returns the distance-function value of x's distance
// components. Introduced by Märtens and Izzo, this metric measures a
// distance of any point from the Pareto front analytically, without the need
// to precompute the front; 0 means x lies exactly on the optimal front.
//
// Returns an InvalidArgument error if len(x) != Dimension().
func (d *DTLZ) Convergence(x []float64) (float64, error) {
	if len(x) != d.dim {
		return 0, errors.WithFields(
			errors.New(errors.InvalidArgument,
				fmt.Sprintf("the size of the decision vector should be %d while %d was detected", d.dim, len(x))),
			errors.Fields{"expected": d.dim, "actual": len(x)})
	}
	return d.g(x[d.fdim-1:]), nil
}

// distanceKernel maps a problem id to its g-function.
func distanceKernel(probID int) gFunc {
	switch probID {
	case 6:
		return g6
	case 7:
		return g7
	case 1, 3:
		return g13
	default: // 2, 4, 5
		return g245
	}
}

func g13(xM []float64) float64 {
	y := 0.0
	for _, xi := range xM {
		y += (xi-0.5)*(xi-0.5) - math.Cos(20.0*math.Pi*(xi-0.5))
	}
	return 100.0 * (y + float64(len(xM)))
}

func g245(xM []float64) float64 {
	y := 0.0
	for _, xi := range xM {
		y += (xi - 0.5) * (xi - 0.5)
	}
	return y
}

func g6(xM []float64) float64 {
	y := 0.0
	for _, xi := range xM {
		y += math.Pow(xi, 0.1)
	}
	return y
}

// g7 drops the "+1" offset of the literature definition so that the minimum
// sits at 0 and the convergence metric keeps its 0-is-optimal convention
// across the whole suite.
func g7(xM []float64) float64 {
	return (9.0 / float64(len(xM))) * floats.Sum(xM)
}

// shapeKernel maps a problem id to its shape function.
func (d *DTLZ) shapeKernel(probID int) shapeFunc {
	switch probID {
	case 1:
		return d.linearShape
	case 2, 3:
		return d.sphericalShape
	case 4:
		return d.biasedShape
	case 5, 6:
		return d.curveShape
	default: // 7
		return d.disconnectedShape
	}
}

// linearShape produces the DTLZ1 objectives, whose optimal front lies on the
// hyperplane sum(f) = 0.5.
func (d *DTLZ) linearShape(x []float64, g float64) []float64 {
	f := make([]float64, d.fdim)

	f[0] = 0.5 * (1.0 + g)
	for i := 0; i < d.fdim-1; i++ {
		f[0] *= x[i]
	}

	for i := 1; i < d.fdim-1; i++ {
		f[i] = 0.5 * (1.0 + g)
		for j := 0; j < d.fdim-(i+1); j++ {
			f[i] *= x[j]
		}
		f[i] *= 1.0 - x[d.fdim-(i+1)]
	}

	f[d.fdim-1] = 0.5 * (1.0 - x[0]) * (1.0 + g)
	return f
}

// spherical assembles the concentric shape shared by DTLZ2-6 from the
// angle-like terms t. Only t[0 .. fdim-2] are read.
func (d *DTLZ) spherical(t []float64, g float64) []float64 {
	f := make([]float64, d.fdim)

	f[0] = 1.0 + g
	for i := 0; i < d.fdim-1; i++ {
		f[0] *= math.Cos(t[i] * math.Pi / 2.0)
	}

	for i := 1; i < d.fdim-1; i++ {
		f[i] = 1.0 + g
		for j := 0; j < d.fdim-(i+1); j++ {
			f[i] *= math.Cos(t[j] * math.Pi / 2.0)
		}
		f[i] *= math.Sin(t[d.fdim-(i+1)] * math.Pi / 2.0)
	}

	f[d.fdim-1] = (1.0 + g) * math.Sin(t[0]*math.Pi/2.0)
	return f
}

// sphericalShape produces the DTLZ2 and DTLZ3 objectives directly from the
// position components.
func (d *DTLZ) sphericalShape(x []float64, g float64) []float64 {
	return d.spherical(x, g)
}

// biasedShape produces the DTLZ4 objectives. Raising each position component
// to alpha biases solution density toward the f_M/f_1 plane.
func (d *DTLZ) biasedShape(x []float64, g float64) []float64 {
	t := make([]float64, d.fdim-1)
	for i := range t {
		t[i] = math.Pow(x[i], float64(d.alpha))
	}
	return d.spherical(t, g)
}

// curveShape produces the DTLZ5 and DTLZ6 objectives. The position
// components are first mapped to meta-variables theta, which degenerates the
// front to a curve.
func (d *DTLZ) curveShape(x []float64, g float64) []float64 {
	theta := make([]float64, d.fdim-1)
	theta[0] = x[0]

	t := 1.0 / (2.0 * (1.0 + g))
	for i := 1; i < d.fdim-1; i++ {
		theta[i] = t + (g*x[i])/(1.0+g)
	}

	return d.spherical(theta, g)
}

// disconnectedShape produces the DTLZ7 objectives. The first fdim-1 entries
// copy the position components untouched; the last is synthesized by the
// distribution function, which splits the front into disconnected regions.
func (d *DTLZ) disconnectedShape(x []float64, g float64) []float64 {
	f := make([]float64, d.fdim)

	// +1 restores the original definition of the DTLZ7 g-function.
	gp := 1.0 + g

	for i := 0; i < d.fdim-1; i++ {
		f[i] = x[i]
	}

	f[d.fdim-1] = (1.0 + gp) * d.distribution(f, gp)
	return f
}

// distribution implements the DTLZ7 h-function. The last element of f is
// intentionally left out of the sum.
func (d *DTLZ) distribution(f []float64, g float64) float64 {
	y := 0.0
	for i := 0; i < len(f)-1; i++ {
		y += (f[i] / (1.0 + g)) * (1.0 + math.Sin(3.0*math.Pi*f[i]))
	}
	return float64(d.fdim) - y
}
