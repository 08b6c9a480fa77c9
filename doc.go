// Package krylov is an incremental Krylov-subspace toolkit built around
// the Lanczos factorization of Hermitian linear operators.
//
// 🚀 What is krylov?
//
//	A small, composable library that brings together:
//		• Lanczos engine: restartable factorizations with five
//		  orthogonalization policies and an ε-terminating driver
//		• Orthogonalization: classical & modified Gram-Schmidt, their
//		  twice-applied variants, and iterative refinement
//		• Rayleigh quotient: a symmetric tridiagonal matrix that plugs
//		  straight into gonum's symmetric eigensolvers
//		• Vector kernels: complex BLAS-backed norm/dot/axpy primitives
//
// ✨ Why choose krylov?
//
//   - Matrix-free – operators are callbacks; never densify a large map
//   - Predictable – sentinel errors, deterministic arithmetic, no globals
//   - gonum-native – the tridiagonal view satisfies mat.Symmetric
//   - Frugal – optional two-vector window cuts basis memory to O(2·n)
//
// Everything is organized under five subpackages:
//
//	lanczos/ — iterator, factorization state, expansion, shrink, driver
//	ortho/   — orthogonalization strategies & Gram-Schmidt primitives
//	basis/   — ordered basis container (unbounded or sliding window)
//	tridiag/ — symmetric tridiagonal matrix + gonum eigen bridge
//	vec/     — elementary complex vector kernels over cblas128
//
// Start with the example in lanczos and the package docs of ortho.
//
//	go get github.com/katalvlaran/krylov/lanczos
package krylov
