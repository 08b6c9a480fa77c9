// Package ortho defines the orthogonalization strategies used by the
// Lanczos machinery and the Gram-Schmidt primitives they are built from.
//
// 🧭 Strategy overview:
//
//	Strategy is a closed set of six variants trading numerical stability
//	against cost:
//	  • ClassicalGS   — one classical pass; cheapest, least stable.
//	  • ModifiedGS    — one modified pass; same cost order, more stable.
//	  • ClassicalGS2  — classical pass applied twice; the second pass
//	    sweeps the whole basis to clean accumulated rounding error.
//	  • ModifiedGS2   — modified analogue of ClassicalGS2.
//	  • ClassicalGSIR — classical passes repeated until the residual norm
//	    stops shrinking by at least the factor Eta ∈ (0,1).
//	  • ModifiedGSIR  — modified analogue of ClassicalGSIR.
//
//	The last four are Reorthogonalizers: they revisit the entire basis
//	history and therefore require full vector retention upstream.
//
// 🔬 Primitives:
//
//	Project removes the component of w along a single unit vector;
//	ClassicalPass and ModifiedPass sweep a whole basis; Orthogonalize
//	composes them according to a Strategy, including the iterative
//	refinement loop for the IR variants.
//
// Coefficients are conjugated inner products (vᴴ·w), so the package is
// correct for complex vectors; for real data the imaginary parts are
// identically zero.
package ortho
