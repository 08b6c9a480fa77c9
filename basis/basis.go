package basis

// Unbounded selects the retain-everything mode in New.
const Unbounded = 0

// Panic messages for programmer errors.
const (
	panicBadWindow  = "basis: window must be Unbounded or ≥ 2"
	panicOutOfRange = "basis: index out of range"
	panicEmpty      = "basis: container is empty"
)

// Basis is an ordered sequence of basis vectors with a retention mode
// chosen at construction. The zero value is not usable; call New.
type Basis struct {
	vecs   [][]complex128
	window int // Unbounded, or the max number of retained vectors
}

// New returns an empty Basis. window selects the retention mode:
// Unbounded keeps every vector; a value ≥ 2 keeps only the window most
// recent ones (appending beyond capacity evicts the oldest). A window of
// 1 cannot serve a three-term recurrence and panics.
func New(window int) *Basis {
	if window != Unbounded && window < 2 {
		panic(panicBadWindow)
	}

	return &Basis{window: window}
}

// Len reports how many vectors are currently stored.
func (b *Basis) Len() int { return len(b.vecs) }

// Window reports the retention mode given to New.
func (b *Basis) Window() int { return b.window }

// At returns the i-th stored vector (0-based, oldest first).
// Panics if i is out of range.
func (b *Basis) At(i int) []complex128 {
	if i < 0 || i >= len(b.vecs) {
		panic(panicOutOfRange)
	}

	return b.vecs[i]
}

// Last returns the most recently appended vector.
// Panics if the container is empty.
func (b *Basis) Last() []complex128 {
	if len(b.vecs) == 0 {
		panic(panicEmpty)
	}

	return b.vecs[len(b.vecs)-1]
}

// Append adds v as the newest vector, evicting the oldest one first when
// a window is configured and full.
func (b *Basis) Append(v []complex128) {
	if b.window != Unbounded && len(b.vecs) == b.window {
		b.PopOldest()
	}
	b.vecs = append(b.vecs, v)
}

// PopOldest removes and returns the oldest stored vector.
// Panics if the container is empty.
func (b *Basis) PopOldest() []complex128 {
	if len(b.vecs) == 0 {
		panic(panicEmpty)
	}
	v := b.vecs[0]
	// Shift references down; the window is tiny in windowed mode and the
	// unbounded mode only pops during shrink, so O(n) moves are fine.
	copy(b.vecs, b.vecs[1:])
	b.vecs[len(b.vecs)-1] = nil
	b.vecs = b.vecs[:len(b.vecs)-1]

	return v
}

// PopNewest removes and returns the most recently appended vector.
// Panics if the container is empty.
func (b *Basis) PopNewest() []complex128 {
	if len(b.vecs) == 0 {
		panic(panicEmpty)
	}
	v := b.vecs[len(b.vecs)-1]
	b.vecs[len(b.vecs)-1] = nil
	b.vecs = b.vecs[:len(b.vecs)-1]

	return v
}

// Reset empties the container, retaining allocated capacity and mode.
func (b *Basis) Reset() {
	for i := range b.vecs {
		b.vecs[i] = nil
	}
	b.vecs = b.vecs[:0]
}

// Vectors returns a fresh slice holding references to the stored vectors
// in order, oldest first. The referenced vectors are shared, not copied.
func (b *Basis) Vectors() [][]complex128 {
	out := make([][]complex128, len(b.vecs))
	copy(out, b.vecs)

	return out
}
