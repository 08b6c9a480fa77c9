package lanczos

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/krylov/ortho"
)

// Epsilon is the float64 machine epsilon (2⁻⁵²). A residual norm below
// this value means the Krylov subspace is numerically invariant and the
// sequence terminates normally.
const Epsilon = 0x1p-52

// Sentinel errors returned by the lanczos package.
var (
	// ErrNilOperator indicates that NewIterator received a nil operator.
	ErrNilOperator = errors.New("lanczos: operator is nil")

	// ErrZeroStart indicates that the starting vector is empty or has
	// zero norm; it cannot seed a Krylov subspace.
	ErrZeroStart = errors.New("lanczos: starting vector has zero norm")

	// ErrRetentionConflict indicates that a reorthogonalizing strategy
	// was combined with KeepVectors=false. Reorthogonalization sweeps the
	// whole basis history, so the two settings are incompatible.
	ErrRetentionConflict = errors.New("lanczos: reorthogonalizing strategy requires vector retention")

	// ErrNonHermitian indicates that a computed diagonal coefficient had
	// an imaginary part beyond the scale-relative tolerance: the supplied
	// operator is not (numerically) Hermitian. Not recoverable — retrying
	// repeats the same computation on the same operator.
	ErrNonHermitian = errors.New("lanczos: operator is not hermitian within tolerance")

	// ErrNotRetained indicates that Basis or Shrink was called on a
	// factorization that discarded old basis vectors (KeepVectors=false).
	ErrNotRetained = errors.New("lanczos: basis vectors were not retained")

	// ErrBreakdown indicates that Expand was called while the residual
	// norm is exactly zero; there is no next Krylov direction to expand
	// into. The Sequence driver terminates before this can happen.
	ErrBreakdown = errors.New("lanczos: residual norm is zero, subspace is invariant")

	// ErrBadDimension indicates a Shrink target below 1.
	ErrBadDimension = errors.New("lanczos: target dimension must be ≥ 1")
)

// Panic messages for programmer errors in operator adapters.
const (
	panicNonSquare   = "lanczos: operator matrix must be square"
	panicDimMismatch = "lanczos: vector length does not match operator dimension"
)

// Operator applies a Hermitian linear map to a vector: dst ← A·src.
// dst and src have equal length and never alias; implementations must
// not retain or mutate src beyond the call.
type Operator interface {
	Apply(dst, src []complex128)
}

// OperatorFunc adapts a plain function to the Operator interface.
type OperatorFunc func(dst, src []complex128)

// Apply calls f(dst, src).
func (f OperatorFunc) Apply(dst, src []complex128) { f(dst, src) }

// MatrixOperator adapts a real square gonum matrix into an Operator
// acting entrywise on complex vectors. Panics if a is not square.
func MatrixOperator(a mat.Matrix) Operator {
	r, c := a.Dims()
	if r != c {
		panic(panicNonSquare)
	}

	return matrixOperator{a: a, n: r}
}

type matrixOperator struct {
	a mat.Matrix
	n int
}

func (m matrixOperator) Apply(dst, src []complex128) {
	if len(dst) != m.n || len(src) != m.n {
		panic(panicDimMismatch)
	}
	for i := 0; i < m.n; i++ {
		var sum complex128
		for j := 0; j < m.n; j++ {
			if aij := m.a.At(i, j); aij != 0 {
				sum += complex(aij, 0) * src[j]
			}
		}
		dst[i] = sum
	}
}

// Options configures an Iterator.
//
// Strategy    – orthogonalization policy for every expansion step.
// KeepVectors – whether the full basis history is retained. When false,
// only the two newest vectors survive (enough for the bare three-term
// recurrence); Basis and Shrink then fail with ErrNotRetained, and any
// reorthogonalizing strategy is rejected at construction.
type Options struct {
	Strategy    ortho.Strategy
	KeepVectors bool
}

// Option is a functional setter for Options.
type Option func(*Options)

// WithStrategy selects the orthogonalization strategy.
// Panics on nil (programmer error).
func WithStrategy(s ortho.Strategy) Option {
	if s == nil {
		panic("lanczos: WithStrategy: strategy is nil")
	}

	return func(o *Options) { o.Strategy = s }
}

// WithoutRetention discards basis vectors that the bare three-term
// recurrence no longer needs, keeping a two-vector sliding window.
// Incompatible with reorthogonalizing strategies.
func WithoutRetention() Option {
	return func(o *Options) { o.KeepVectors = false }
}

// DefaultOptions returns the documented defaults: twice-applied modified
// Gram-Schmidt with full vector retention.
func DefaultOptions() Options {
	return Options{
		Strategy:    ortho.ModifiedGS2{},
		KeepVectors: true,
	}
}

// ulp returns the distance from |x| to the next larger float64, i.e. the
// unit in the last place at magnitude x.
func ulp(x float64) float64 {
	ax := math.Abs(x)

	return math.Nextafter(ax, math.Inf(1)) - ax
}
