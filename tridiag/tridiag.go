package tridiag

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the tridiag package.
var (
	// ErrBadShape indicates that the diagonal is empty or the off-diagonal
	// length is not exactly one less than the diagonal length.
	ErrBadShape = errors.New("tridiag: off-diagonal length must be len(diagonal)-1")

	// ErrNaNInf indicates a NaN or ±Inf coefficient where finite values
	// are required.
	ErrNaNInf = errors.New("tridiag: NaN or Inf coefficient")

	// ErrEigenFailed indicates that the symmetric eigendecomposition did
	// not converge.
	ErrEigenFailed = errors.New("tridiag: eigendecomposition failed")
)

// Panic message for out-of-range indexing (programmer error, matching
// the behavior of gonum's own matrix types).
const panicOutOfRange = "tridiag: index out of range"

// Matrix is an n×n real symmetric tridiagonal matrix held as its
// diagonal d (length n) and off-diagonal e (length n-1). It implements
// mat.Symmetric. The zero value is not usable; call New.
type Matrix struct {
	d []float64
	e []float64
}

// New builds a Matrix from a diagonal and an off-diagonal, copying both.
// Returns ErrBadShape unless len(d) ≥ 1 and len(e) == len(d)-1, and
// ErrNaNInf when any coefficient is non-finite.
func New(d, e []float64) (*Matrix, error) {
	if len(d) == 0 || len(e) != len(d)-1 {
		return nil, ErrBadShape
	}
	for _, x := range d {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, ErrNaNInf
		}
	}
	for _, x := range e {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, ErrNaNInf
		}
	}

	t := &Matrix{
		d: make([]float64, len(d)),
		e: make([]float64, len(e)),
	}
	copy(t.d, d)
	copy(t.e, e)

	return t, nil
}

// Dims returns the matrix dimensions (n, n).
func (t *Matrix) Dims() (r, c int) { return len(t.d), len(t.d) }

// SymmetricDim returns the order n of the matrix.
func (t *Matrix) SymmetricDim() int { return len(t.d) }

// T returns the transpose, which is the matrix itself.
func (t *Matrix) T() mat.Matrix { return t }

// At returns the element at row i, column j; zero outside the three
// central diagonals. Panics when the indices are out of range.
func (t *Matrix) At(i, j int) float64 {
	n := len(t.d)
	if i < 0 || i >= n || j < 0 || j >= n {
		panic(panicOutOfRange)
	}
	switch {
	case i == j:
		return t.d[i]
	case i == j+1:
		return t.e[j]
	case j == i+1:
		return t.e[i]
	default:
		return 0
	}
}

// Diag returns a copy of the main diagonal.
func (t *Matrix) Diag() []float64 {
	out := make([]float64, len(t.d))
	copy(out, t.d)

	return out
}

// OffDiag returns a copy of the sub/super-diagonal.
func (t *Matrix) OffDiag() []float64 {
	out := make([]float64, len(t.e))
	copy(out, t.e)

	return out
}

// Dense exports the matrix as a gonum SymDense.
func (t *Matrix) Dense() *mat.SymDense {
	n := len(t.d)
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetSym(i, i, t.d[i])
		if i+1 < n {
			out.SetSym(i, i+1, t.e[i])
		}
	}

	return out
}

// Eigenvalues returns the eigenvalues in ascending order via gonum's
// symmetric eigensolver. Returns ErrEigenFailed when the decomposition
// does not converge.
func (t *Matrix) Eigenvalues() ([]float64, error) {
	var es mat.EigenSym
	if !es.Factorize(t, false) {
		return nil, ErrEigenFailed
	}

	return es.Values(nil), nil
}
