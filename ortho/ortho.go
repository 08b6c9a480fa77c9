package ortho

import (
	"github.com/katalvlaran/krylov/basis"
	"github.com/katalvlaran/krylov/vec"
)

// Project removes the component of w along the unit vector v, in place,
// and returns the projection coefficient ⟨v, w⟩. v is never mutated.
func Project(w, v []complex128) complex128 {
	c := vec.Dot(v, w)
	vec.Axpy(-c, v, w)

	return c
}

// ClassicalPass performs one classical Gram-Schmidt sweep of w against
// every vector in b: all coefficients are taken from w as it stood on
// entry, then subtracted together. Returns one coefficient per basis
// vector, oldest first. The basis is never mutated.
func ClassicalPass(w []complex128, b *basis.Basis) []complex128 {
	n := b.Len()
	coeffs := make([]complex128, n)
	for i := 0; i < n; i++ {
		coeffs[i] = vec.Dot(b.At(i), w)
	}
	for i := 0; i < n; i++ {
		vec.Axpy(-coeffs[i], b.At(i), w)
	}

	return coeffs
}

// ModifiedPass performs one modified Gram-Schmidt sweep of w against
// every vector in b: each coefficient is taken from w after the previous
// subtraction already happened. Returns one coefficient per basis
// vector, oldest first. The basis is never mutated.
func ModifiedPass(w []complex128, b *basis.Basis) []complex128 {
	n := b.Len()
	coeffs := make([]complex128, n)
	for i := 0; i < n; i++ {
		coeffs[i] = Project(w, b.At(i))
	}

	return coeffs
}

// Orthogonalize removes the components of w along every vector in b
// according to strategy s, mutating w in place. It returns the
// accumulated projection coefficients (one per basis vector, summed over
// passes) and the Euclidean norm of the orthogonalized w.
//
// For the IR variants the pass is repeated while the residual norm keeps
// shrinking below Eta times the previous estimate, so near-singular
// inputs automatically receive extra refinement.
func Orthogonalize(w []complex128, b *basis.Basis, s Strategy) ([]complex128, float64) {
	switch st := s.(type) {
	case ClassicalGS:
		c := ClassicalPass(w, b)

		return c, vec.Norm(w)
	case ModifiedGS:
		c := ModifiedPass(w, b)

		return c, vec.Norm(w)
	case ClassicalGS2:
		c := ClassicalPass(w, b)
		accumulate(c, ClassicalPass(w, b))

		return c, vec.Norm(w)
	case ModifiedGS2:
		c := ModifiedPass(w, b)
		accumulate(c, ModifiedPass(w, b))

		return c, vec.Norm(w)
	case ClassicalGSIR:
		return refine(w, b, st.Eta, ClassicalPass)
	case ModifiedGSIR:
		return refine(w, b, st.Eta, ModifiedPass)
	default:
		// The Strategy set is closed; an unknown dynamic type means a
		// forged implementation outside this package.
		panic("ortho: unknown strategy")
	}
}

// refine runs pass once, then repeats it while the norm keeps dropping
// below eta times the previous estimate.
func refine(w []complex128, b *basis.Basis, eta float64, pass func([]complex128, *basis.Basis) []complex128) ([]complex128, float64) {
	nold := vec.Norm(w)
	coeffs := pass(w, b)
	nnew := vec.Norm(w)
	for nnew < eta*nold {
		nold = nnew
		accumulate(coeffs, pass(w, b))
		nnew = vec.Norm(w)
	}

	return coeffs, nnew
}

// accumulate adds the coefficients of a later pass into the running sum.
func accumulate(dst, src []complex128) {
	for i := range dst {
		dst[i] += src[i]
	}
}
