package lanczos

import (
	"github.com/katalvlaran/krylov/basis"
	"github.com/katalvlaran/krylov/tridiag"
	"github.com/katalvlaran/krylov/vec"
)

// Factorization is the mutable state of a Lanczos iteration at dimension
// k: the orthonormal basis v₁..v_k, the tridiagonal coefficients, and
// the unnormalized residual r whose norm is β_k. It satisfies
//
//	A·v_k = β_{k-1}·v_{k-1} + α_k·v_k + r,   ‖r‖ = β_k,
//
// at every dimension. A Factorization exclusively owns its basis,
// coefficient slices, and residual; it is created by
// Iterator.Initialize, advanced by Iterator.Expand, reset by
// Iterator.InitializeInto, and truncated by Shrink.
type Factorization struct {
	k      int
	basis  *basis.Basis
	alphas []float64
	betas  []float64
	r      []complex128
}

// Len returns the current subspace dimension k.
func (f *Factorization) Len() int { return f.k }

// NormRes returns β_k, the norm of the current residual.
func (f *Factorization) NormRes() float64 { return f.betas[f.k-1] }

// Residual returns the raw unnormalized residual vector. The slice is
// shared with the factorization and must be treated as read-only.
func (f *Factorization) Residual() []complex128 { return f.r }

// Basis returns the full orthonormal basis v₁..v_k, oldest first. The
// returned slice is fresh but the vectors are shared and must be treated
// as read-only. Returns ErrNotRetained when old vectors were discarded.
func (f *Factorization) Basis() ([][]complex128, error) {
	if f.basis.Len() != f.k {
		return nil, ErrNotRetained
	}

	return f.basis.Vectors(), nil
}

// RayleighQuotient returns the k×k symmetric tridiagonal matrix built
// from the current coefficients. The matrix is a snapshot: later Expand
// or Shrink calls do not affect it.
func (f *Factorization) RayleighQuotient() (*tridiag.Matrix, error) {
	return tridiag.New(f.alphas[:f.k], f.betas[:f.k-1])
}

// Clone returns an independent copy of the factorization. Coefficients
// and the residual are deep-copied; basis vectors are shared, which is
// safe because stored vectors are never mutated afterwards. Clone is the
// pure counterpart of the in-place mutators: derive a copy, advance one,
// keep the other.
func (f *Factorization) Clone() *Factorization {
	out := &Factorization{
		k:      f.k,
		basis:  basis.New(f.basis.Window()),
		alphas: append([]float64(nil), f.alphas...),
		betas:  append([]float64(nil), f.betas...),
		r:      vec.Clone(f.r),
	}
	for _, v := range f.basis.Vectors() {
		out.basis.Append(v)
	}

	return out
}

// Shrink truncates the factorization in place to dimension k < Len():
// basis vectors beyond k are discarded, the (k+1)-th vector rescaled by
// β_k becomes the new residual, and the coefficient slices are resized.
// A target ≥ Len() is a no-op. Returns ErrBadDimension when k < 1 and
// ErrNotRetained when old basis vectors were discarded.
func (f *Factorization) Shrink(k int) error {
	if k < 1 {
		return ErrBadDimension
	}
	if k >= f.k {
		return nil
	}
	if f.basis.Len() != f.k {
		return ErrNotRetained
	}

	for f.basis.Len() > k+1 {
		f.basis.PopNewest()
	}
	next := f.basis.PopNewest() // v_{k+1}, the direction the residual pointed along
	f.alphas = f.alphas[:k]
	f.betas = f.betas[:k]
	f.r = vec.Scaled(complex(f.betas[k-1], 0), next)
	f.k = k

	return nil
}
