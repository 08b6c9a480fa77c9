// Package lanczos implements the Lanczos iteration: an incremental
// factorization that builds an orthonormal basis of a growing Krylov
// subspace of a Hermitian operator together with the real symmetric
// tridiagonal matrix representing the operator on that subspace.
//
// 🚀 What it is for:
//
//	Large or implicit Hermitian operators where forming a dense matrix
//	is infeasible: iterative eigenvalue/eigenvector solvers, spectral
//	bounds, and Krylov linear-system methods are all built on top of
//	this factorization.
//
// ✨ Key features:
//   - restartable pull-based driver (Sequence) yielding one snapshot per
//     subspace dimension, terminating once the residual norm drops below
//     machine epsilon (an exact invariant subspace)
//   - six orthogonalization strategies from package ortho, selected per
//     iterator, trading stability against cost
//   - optional discarding of old basis vectors (two-vector window) for
//     the single-pass strategies, cutting memory to O(2·n)
//   - in-place reset (InitializeInto) and truncation (Shrink) to reuse
//     storage across restarted runs
//   - a built-in hermiticity guard: a computed diagonal coefficient with
//     a non-negligible imaginary part fails the step with ErrNonHermitian
//
// ⚙️ Usage:
//
//	op := lanczos.MatrixOperator(a)            // a is a gonum mat.Matrix
//	it, err := lanczos.NewIterator(op, start)  // start: []complex128
//	if err != nil { ... }
//	seq := it.Sequence()
//	for seq.Next() {
//	    f := seq.Factorization()
//	    t, _ := f.RayleighQuotient()
//	    _ = t // feed to tridiag.Eigenvalues, inspect f.NormRes(), ...
//	}
//	if err = seq.Err(); err != nil { ... }
//
// The operator must be Hermitian with respect to the standard inner
// product; this is checked approximately at every step, not enforced
// structurally.
package lanczos
