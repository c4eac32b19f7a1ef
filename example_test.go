package kahan_test

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-kahan"
)

func ExampleAccumulator() {
	var acc kahan.Accumulator[float32]
	acc.Add(10000.0)
	acc.Add(3.14159)
	fmt.Printf("sum=%v err=%v\n", acc.Sum(), acc.Err())

	// Output:
	// sum=10003.142 err=1.1444092e-05
}

func ExampleAccumulator_Plus() {
	acc := kahan.NewWithValue(10000.0).Plus(3.14159).Plus(2.71828)
	fmt.Printf("sum=%.5f\n", acc.Sum())

	// Output:
	// sum=10005.85987
}

func ExampleSumSlice() {
	summands := []float32{10000.0, 3.14159, 2.71828, 3.14159, 2.71828, 3.14159, 2.71828}
	acc := kahan.SumSlice(summands)
	fmt.Printf("sum=%v\n", acc.Sum())

	// Output:
	// sum=10017.58
}

func ExampleSumSeqFunc() {
	type sample struct {
		weight float64
	}

	samples := []sample{{0.5}, {0.25}, {0.25}}
	acc := kahan.SumSeqFunc(slices.Values(samples), func(s sample) float64 {
		return s.weight
	})
	fmt.Println(acc.Sum())

	// Output:
	// 1
}
