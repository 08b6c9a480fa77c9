// Package vec provides the elementary complex-vector kernels the Krylov
// machinery is built on: Euclidean norm, conjugated dot product, scaled
// accumulate, in-place scaling, copying, and real→complex widening.
//
// All kernels are thin wrappers over gonum's cblas128 layer, so they
// inherit its numerical behavior (and any registered BLAS backend).
// Vectors are plain []complex128 slices with unit stride.
//
// Length mismatches between operands are programmer errors and panic
// with a stable message; there is no silent truncation.
package vec
