package lanczos

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/krylov/basis"
	"github.com/katalvlaran/krylov/ortho"
	"github.com/katalvlaran/krylov/vec"
)

// Iterator is the immutable configuration of a Lanczos run: the
// operator, the starting vector (copied, never mutated), the
// orthogonalization strategy, and the vector-retention policy. One
// Iterator can drive any number of independent factorizations.
type Iterator struct {
	op    Operator
	start []complex128
	opts  Options
}

// NewIterator validates the configuration and returns an Iterator.
// Returns ErrNilOperator for a nil operator, ErrZeroStart for an empty
// starting vector, and ErrRetentionConflict when a reorthogonalizing
// strategy is combined with WithoutRetention.
func NewIterator(op Operator, start []complex128, opts ...Option) (*Iterator, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	if len(start) == 0 {
		return nil, ErrZeroStart
	}

	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}
	if o.Strategy == nil {
		o.Strategy = DefaultOptions().Strategy
	}
	if !o.KeepVectors && ortho.Reorthogonalizes(o.Strategy) {
		return nil, ErrRetentionConflict
	}

	return &Iterator{
		op:    op,
		start: vec.Clone(start),
		opts:  o,
	}, nil
}

// Options returns the effective configuration of the iterator.
func (it *Iterator) Options() Options { return it.opts }

// Initialize builds a fresh dimension-1 factorization: the starting
// vector is normalized, the operator applied once, and α₁, β₁ derived by
// orthogonalizing against the normalized start. Returns ErrZeroStart for
// a zero-norm start and ErrNonHermitian when α₁ fails the hermiticity
// check.
func (it *Iterator) Initialize() (*Factorization, error) {
	f := &Factorization{}
	if err := it.InitializeInto(f); err != nil {
		return nil, err
	}

	return f, nil
}

// InitializeInto resets f in place to the dimension-1 state Initialize
// produces, reusing f's allocated storage where possible. Any additional
// basis vectors and coefficients from a previous run are discarded.
func (it *Iterator) InitializeInto(f *Factorization) error {
	n := vec.Norm(it.start)
	if n == 0 {
		return ErrZeroStart
	}

	v := vec.Scaled(complex(1/n, 0), it.start)
	w := make([]complex128, len(v))
	it.op.Apply(w, v)

	a := ortho.Project(w, v)
	b := vec.Norm(w)
	alpha, err := checkHermitian(a, math.Hypot(cmplx.Abs(a), b))
	if err != nil {
		return err
	}

	window := basis.Unbounded
	if !it.opts.KeepVectors {
		window = 2
	}
	if f.basis != nil && f.basis.Window() == window {
		f.basis.Reset()
	} else {
		f.basis = basis.New(window)
	}
	f.basis.Append(v)
	f.alphas = append(f.alphas[:0], alpha)
	f.betas = append(f.betas[:0], b)
	f.r = w
	f.k = 1

	return nil
}

// Sequence returns a fresh pull-based cursor over the snapshots of a new
// factorization driven by this iterator: dimension 1, 2, … until the
// residual norm drops below Epsilon (normal end of sequence) or a step
// fails. Every call starts an independent run from the starting vector;
// there is no mid-sequence checkpointing beyond what the factorization
// itself retains.
func (it *Iterator) Sequence() *Sequence {
	return &Sequence{it: it}
}

// Sequence is a single-consumer cursor in the bufio.Scanner style:
//
//	seq := it.Sequence()
//	for seq.Next() {
//	    f := seq.Factorization()
//	    ...
//	}
//	if err := seq.Err(); err != nil { ... }
//
// Each Next advances the factorization by one dimension synchronously;
// there is no background work and no internal scheduling.
type Sequence struct {
	it      *Iterator
	f       *Factorization
	err     error
	started bool
	done    bool
}

// Next advances to the next subspace dimension. It returns false once
// the residual norm falls below Epsilon (successful termination,
// Err() == nil) or when a step fails (Err() reports the cause). The
// factorization remains inspectable at its last valid dimension either
// way.
func (s *Sequence) Next() bool {
	if s.done || s.err != nil {
		return false
	}
	if !s.started {
		s.started = true
		s.f, s.err = s.it.Initialize()

		return s.err == nil
	}
	if s.f.NormRes() < Epsilon {
		s.done = true

		return false
	}
	s.err = s.it.Expand(s.f)

	return s.err == nil
}

// Factorization returns the factorization at the dimension the last
// successful Next reached, or nil before the first Next.
func (s *Sequence) Factorization() *Factorization { return s.f }

// Err returns the first error encountered, or nil after a normal
// termination.
func (s *Sequence) Err() error { return s.err }
