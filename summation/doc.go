// Package summation provides interchangeable strategies for reducing a float32
// sequence to a single sum.
//
// # Strategies
//
//   - Reference: float64 accumulation, used as ground truth
//   - Naive: float32 left-to-right accumulation
//   - Compensated: float32 accumulation with a running correction term (Kahan)
//   - Sorted: float32 accumulation over an ascending copy of the input
//
// Every strategy implements Algorithm, so experiments treat them uniformly:
//
//	ref, refTime := summation.Timed(summation.Reference{}, xs)
//	for _, alg := range summation.Candidates() {
//	    sum, elapsed := summation.Timed(alg, xs)
//	    fmt.Println(alg.Name(), summation.AbsError(sum, ref), elapsed)
//	}
package summation
