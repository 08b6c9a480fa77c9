// Package basis implements the ordered container of orthonormal Krylov
// basis vectors.
//
// A Basis is an append-only sequence of []complex128 vectors with two
// retention modes fixed at construction:
//
//   - Unbounded — every appended vector is kept. Required by any
//     orthogonalization strategy that revisits the full history.
//   - Windowed  — only the w most recent vectors are kept; appending
//     beyond capacity silently evicts the oldest. The bare three-term
//     Lanczos recurrence only ever touches the two newest vectors, so
//     w = 2 suffices there.
//
// The container stores vector references, never copies; ownership of the
// stored slices rests with the caller that appended them.
package basis
