package kahan

// Float is the numeric parameter of an [Accumulator]: any type whose
// underlying type is an IEEE 754 binary32 or binary64 float.
type Float interface {
	~float32 | ~float64
}

// Accumulator holds a compensated running sum. The zero value is an empty
// accumulator, equivalent to [New]. Accumulators are plain values: copy as
// needed, but do not mutate the same instance from multiple goroutines.
type Accumulator[T Float] struct {
	sum T // best current estimate of the total
	err T // low-order bits lost by prior additions; exact total is sum - err
}

// New returns an empty accumulator with sum and err both zero.
func New[T Float]() Accumulator[T] {
	return Accumulator[T]{}
}

// NewWithValue returns an accumulator seeded with initial. The seed is
// taken as exact, so err starts at zero.
func NewWithValue[T Float](initial T) Accumulator[T] {
	return Accumulator[T]{sum: initial}
}

// Sum returns the current running sum.
func (a Accumulator[T]) Sum() T {
	return a.sum
}

// Err returns the current compensation term. The refined total is
// Sum() - Err(); the next [Accumulator.Add] folds it back in.
func (a Accumulator[T]) Err() T {
	return a.err
}

// Add folds term into the running sum with error compensation.
//
// The operand of larger magnitude becomes the base of the update, so the
// compensation stays meaningful even when term dominates the running sum.
// Infinities and NaNs pass through ordinary IEEE 754 arithmetic.
func (a *Accumulator[T]) Add(term T) {
	if abs(a.sum) < abs(term) {
		a.sum, term = term, a.sum
	}

	y := term - a.err
	sum := a.sum + y
	// The rounding of a.sum + y determines which bits of y were dropped.
	a.err = (sum - a.sum) - y
	a.sum = sum
}

// Plus returns a copy of a with term folded in, leaving a unchanged.
// It produces bit-identical results to [Accumulator.Add] for identical
// inputs.
func (a Accumulator[T]) Plus(term T) Accumulator[T] {
	a.Add(term)
	return a
}

// Reset clears the accumulator to the empty state, allowing it to be
// reused.
func (a *Accumulator[T]) Reset() {
	*a = Accumulator[T]{}
}

// abs is math.Abs for any Float. NaN compares false and passes through.
func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
