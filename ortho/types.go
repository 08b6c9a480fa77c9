package ortho

// Panic messages for invalid strategy construction (programmer error).
const panicBadEta = "ortho: refinement threshold Eta must lie in (0,1)"

// DefaultEta is the refinement threshold used by DefaultIR constructors:
// a pass is repeated only while it shrinks the residual norm below
// DefaultEta times the previous estimate. 1/√2 is the classical choice.
const DefaultEta = 0.7071067811865476

// Strategy selects how a candidate vector is orthogonalized against one
// reference vector or a whole basis. The set of implementations is
// closed: exactly the six variants declared in this file.
type Strategy interface {
	strategy()
}

// Reorthogonalizer marks the strategies that sweep the full basis
// history and therefore require every basis vector to remain available.
type Reorthogonalizer interface {
	Strategy
	reorthogonalizes()
}

// ClassicalGS is a single classical Gram-Schmidt pass: all projection
// coefficients are computed from the original vector before any
// subtraction. Cheapest variant, weakest orthogonality guarantee.
type ClassicalGS struct{}

// ModifiedGS is a single modified Gram-Schmidt pass: the vector is
// updated after each projection, which bounds the error growth much
// better than the classical ordering at identical asymptotic cost.
type ModifiedGS struct{}

// ClassicalGS2 applies classical Gram-Schmidt twice; the second pass
// runs against the entire basis and its coefficients accumulate into
// the first pass's by addition ("twice is enough").
type ClassicalGS2 struct{}

// ModifiedGS2 applies modified Gram-Schmidt twice, the second pass
// against every basis vector. Default strategy of the lanczos package.
type ModifiedGS2 struct{}

// ClassicalGSIR repeats classical full-basis passes until the residual
// norm stops shrinking relative to the previous estimate by at least the
// factor Eta. Construct with NewClassicalGSIR to get Eta validated.
type ClassicalGSIR struct {
	Eta float64
}

// ModifiedGSIR is the modified analogue of ClassicalGSIR.
// Construct with NewModifiedGSIR to get Eta validated.
type ModifiedGSIR struct {
	Eta float64
}

func (ClassicalGS) strategy()   {}
func (ModifiedGS) strategy()    {}
func (ClassicalGS2) strategy()  {}
func (ModifiedGS2) strategy()   {}
func (ClassicalGSIR) strategy() {}
func (ModifiedGSIR) strategy()  {}

func (ClassicalGS2) reorthogonalizes()  {}
func (ModifiedGS2) reorthogonalizes()   {}
func (ClassicalGSIR) reorthogonalizes() {}
func (ModifiedGSIR) reorthogonalizes()  {}

// NewClassicalGSIR builds a ClassicalGSIR strategy, panicking when eta
// lies outside (0,1): a threshold ≥ 1 would loop forever and ≤ 0 would
// never refine, both programmer errors.
func NewClassicalGSIR(eta float64) ClassicalGSIR {
	if !(eta > 0 && eta < 1) {
		panic(panicBadEta)
	}

	return ClassicalGSIR{Eta: eta}
}

// NewModifiedGSIR builds a ModifiedGSIR strategy with the same Eta
// validation as NewClassicalGSIR.
func NewModifiedGSIR(eta float64) ModifiedGSIR {
	if !(eta > 0 && eta < 1) {
		panic(panicBadEta)
	}

	return ModifiedGSIR{Eta: eta}
}

// Reorthogonalizes reports whether s needs the full basis history.
func Reorthogonalizes(s Strategy) bool {
	_, ok := s.(Reorthogonalizer)

	return ok
}
