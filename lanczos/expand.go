package lanczos

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/krylov/basis"
	"github.com/katalvlaran/krylov/ortho"
	"github.com/katalvlaran/krylov/vec"
)

// Expand advances f from dimension k to k+1 in place: the residual is
// normalized into basis vector v_{k+1}, the three-term recurrence
// produces the next residual and the coefficients α_{k+1}, β_{k+1}, and
// the hermiticity of α_{k+1} is verified. With KeepVectors=false the
// basis window drops the oldest stored vector automatically.
//
// Returns ErrBreakdown when the current residual norm is exactly zero
// (the subspace is invariant; the Sequence driver terminates before
// reaching this state) and ErrNonHermitian when the new diagonal
// coefficient fails the hermiticity check — in that case f is left
// unchanged at dimension k.
func (it *Iterator) Expand(f *Factorization) error {
	betaOld := f.betas[f.k-1]
	if betaOld == 0 {
		return ErrBreakdown
	}

	f.basis.Append(vec.Scaled(complex(1/betaOld, 0), f.r))
	r, a, beta := it.recurrence(f, betaOld)

	scale := math.Hypot(cmplx.Abs(a), math.Hypot(beta, betaOld))
	alpha, err := checkHermitian(a, scale)
	if err != nil {
		f.basis.PopNewest()

		return err
	}

	f.alphas = append(f.alphas, alpha)
	f.betas = append(f.betas, beta)
	f.r = r
	f.k++

	return nil
}

// recurrence computes one step of the three-term Lanczos recurrence for
// the newest basis vector, using the strategy-specific orthogonalization
// policy. The common skeleton is
//
//	w ← A·v_{k+1}
//	w ← w − β_k·v_k          (hermiticity: one back-reference suffices)
//	orthogonalize w against v_{k+1} → α
//	strategy-specific refinement, accumulating into α
//	β ← ‖w‖
//
// and the variants differ only in step four: the single-pass strategies
// stop after the diagonal projection, the twice-applied ones run one
// unconditional full-basis pass, and the IR ones loop full-basis passes
// until the η-ratio criterion stalls.
func (it *Iterator) recurrence(f *Factorization, betaOld float64) (r []complex128, a complex128, beta float64) {
	b := f.basis
	v := b.Last()
	prev := b.At(b.Len() - 2)

	w := make([]complex128, len(v))
	it.op.Apply(w, v)
	vec.Axpy(complex(-betaOld, 0), prev, w)

	switch s := it.opts.Strategy.(type) {
	case ortho.ClassicalGS, ortho.ModifiedGS:
		a = ortho.Project(w, v)
		beta = vec.Norm(w)
	case ortho.ClassicalGS2:
		a = ortho.Project(w, v)
		c := ortho.ClassicalPass(w, b)
		a += c[len(c)-1]
		beta = vec.Norm(w)
	case ortho.ModifiedGS2:
		a = ortho.Project(w, v)
		c := ortho.ModifiedPass(w, b)
		a += c[len(c)-1]
		beta = vec.Norm(w)
	case ortho.ClassicalGSIR:
		a, beta = refine(w, v, b, s.Eta, ortho.ClassicalPass)
	case ortho.ModifiedGSIR:
		a, beta = refine(w, v, b, s.Eta, ortho.ModifiedPass)
	}

	return w, a, beta
}

// refine performs the diagonal projection and then repeats full-basis
// passes while each pass still shrinks the residual norm below eta times
// the previous estimate, accumulating the diagonal coefficient.
func refine(w, v []complex128, b *basis.Basis, eta float64, pass func([]complex128, *basis.Basis) []complex128) (a complex128, beta float64) {
	nold := vec.Norm(w)
	a = ortho.Project(w, v)
	beta = vec.Norm(w)
	for beta < eta*nold {
		nold = beta
		c := pass(w, b)
		a += c[len(c)-1]
		beta = vec.Norm(w)
	}

	return a, beta
}

// checkHermitian verifies that a computed diagonal coefficient is real
// up to the scale-relative tolerance √max(ulp(scale), ulp(1)) and
// returns its real part. A violation means the operator is not
// Hermitian; it is fatal, not recoverable.
func checkHermitian(a complex128, scale float64) (float64, error) {
	tol := math.Sqrt(math.Max(ulp(scale), ulp(1)))
	if math.Abs(imag(a)) > tol {
		return 0, fmt.Errorf("imag(α)=%.3e exceeds %.3e: %w", imag(a), tol, ErrNonHermitian)
	}

	return real(a), nil
}
