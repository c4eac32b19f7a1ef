package kahan

import "iter"

// SumSlice folds values left-to-right through a fresh [Accumulator].
// An empty slice returns an accumulator equal to [New].
func SumSlice[S ~[]T, T Float](values S) Accumulator[T] {
	var acc Accumulator[T]
	for _, v := range values {
		acc.Add(v)
	}

	return acc
}

// SumSeq folds a finite sequence left-to-right through a fresh
// [Accumulator]. The sequence is consumed at most once, in its own yield
// order, which fixes the numeric result for a given input order.
func SumSeq[T Float](seq iter.Seq[T]) Accumulator[T] {
	var acc Accumulator[T]
	for v := range seq {
		acc.Add(v)
	}

	return acc
}

// SumSeqFunc folds a finite sequence of arbitrary elements, viewing each
// element as a summand through view. This sums fields of larger values
// without materializing an intermediate slice:
//
//	total := kahan.SumSeqFunc(slices.Values(samples), func(s Sample) float64 {
//	    return s.Amplitude
//	})
func SumSeqFunc[V any, T Float](seq iter.Seq[V], view func(V) T) Accumulator[T] {
	var acc Accumulator[T]
	for v := range seq {
		acc.Add(view(v))
	}

	return acc
}
