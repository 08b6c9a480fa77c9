package vec

import "gonum.org/v1/gonum/blas/cblas128"

// Panic messages for programmer errors (length mismatches, bad shapes).
const (
	panicLenMismatch = "vec: operand lengths differ"
	panicEmpty       = "vec: empty vector"
)

// blasVec adapts a unit-stride slice to the cblas128 vector header.
func blasVec(v []complex128) cblas128.Vector {
	return cblas128.Vector{N: len(v), Inc: 1, Data: v}
}

// Norm returns the Euclidean norm ‖v‖₂.
func Norm(v []complex128) float64 {
	if len(v) == 0 {
		return 0
	}

	return cblas128.Nrm2(blasVec(v))
}

// Dot returns the conjugated inner product ⟨x, y⟩ = xᴴ·y.
// Panics if the operands have different lengths.
func Dot(x, y []complex128) complex128 {
	if len(x) != len(y) {
		panic(panicLenMismatch)
	}
	if len(x) == 0 {
		return 0
	}

	return cblas128.Dotc(blasVec(x), blasVec(y))
}

// Axpy performs the scaled accumulate y ← y + alpha·x in place.
// Panics if the operands have different lengths.
func Axpy(alpha complex128, x, y []complex128) {
	if len(x) != len(y) {
		panic(panicLenMismatch)
	}
	if len(x) == 0 || alpha == 0 {
		return
	}

	cblas128.Axpy(alpha, blasVec(x), blasVec(y))
}

// Scale rescales v ← alpha·v in place.
func Scale(alpha complex128, v []complex128) {
	if len(v) == 0 {
		return
	}

	cblas128.Scal(alpha, blasVec(v))
}

// Clone returns a fresh copy of v.
func Clone(v []complex128) []complex128 {
	out := make([]complex128, len(v))
	copy(out, v)

	return out
}

// Scaled returns a fresh copy of v rescaled by alpha, leaving v intact.
func Scaled(alpha complex128, v []complex128) []complex128 {
	out := Clone(v)
	Scale(alpha, out)

	return out
}

// FromReal widens a real vector into a complex one (zero imaginary parts).
// Panics on an empty input: a zero-length vector cannot seed a Krylov
// subspace and its appearance indicates a caller bug.
func FromReal(x []float64) []complex128 {
	if len(x) == 0 {
		panic(panicEmpty)
	}
	out := make([]complex128, len(x))
	for i, r := range x {
		out[i] = complex(r, 0)
	}

	return out
}
