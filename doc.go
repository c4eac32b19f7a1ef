// Package kahan provides compensated (Kahan) summation for floating-point
// values: a running-sum accumulator that tracks the low-order bits lost to
// rounding, and reducers that fold slices and lazy sequences through it.
//
// Naive sequential addition loses precision whenever a small term is added
// to a much larger running sum. The compensated update keeps a second
// error term that recovers those lost bits on the next addition:
//
//	var acc kahan.Accumulator[float32]
//	acc.Add(10000.0)
//	acc.Add(3.14159)
//	// acc.Sum() == 10003.142, acc.Err() == 0.000011444092
//
// The update orders its operands by magnitude before compensating, which
// keeps the error term meaningful even when the incoming term dominates
// the running sum (the plain textbook update discards the sum's low-order
// bits in that case).
//
// Properties:
//
//   - The fold is left-to-right in input order; results are bit-for-bit
//     reproducible for a given input order, but different orders may give
//     slightly different (sum, err) pairs.
//   - The refined total is Sum() - Err(); it is at least as close to the
//     exact total as Sum() alone.
//   - Infinities and NaNs propagate through ordinary IEEE 754 arithmetic;
//     nothing validates, rejects, or panics.
//   - Accumulators are plain values. Copy them freely; do not mutate one
//     from multiple goroutines.
package kahan
