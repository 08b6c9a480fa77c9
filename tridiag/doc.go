// Package tridiag provides a real symmetric tridiagonal matrix type,
// the natural representation of the Rayleigh quotient produced by a
// Lanczos factorization.
//
// Matrix satisfies gonum's mat.Symmetric interface, so it can be handed
// directly to mat.EigenSym (or any other gonum routine accepting a
// symmetric operand) without densification; Eigenvalues wraps exactly
// that round trip, and Dense exports a mat.SymDense when a dense copy
// is genuinely needed.
package tridiag
