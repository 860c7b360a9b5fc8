// Package lvlstat is a tiny companion library of numeric aggregation
// primitives over finite float64 sequences.
//
// 🚀 What is lvlstat?
//
//	A deliberately small set of total functions for summarizing a slice
//	of numbers:
//		• Sum     — left-to-right summation in encounter order
//		• Average — arithmetic mean, defined via Sum
//
// ✨ Why choose lvlstat?
//
//   - Total by construction – nil and empty inputs yield 0.0, never an error
//   - Deterministic – strict left-fold accumulation, bit-stable across calls
//   - Pure Go – no cgo, no hidden deps, no retained references
//   - Trivially composable – no state, no options, nothing to configure
//
// Everything lives in one subpackage:
//
//	aggregate/ — Sum and Average over []float64
//
// Quick example:
//
//	scores := []float64{85.5, 92.0, 78.5}
//	total := aggregate.Sum(scores)
//	mean := aggregate.Average(scores)
//
// See examples/ for runnable programs and the aggregate package docs for
// the full contract, including the degenerate-input policy.
//
//	go get github.com/katalvlaran/lvlstat/aggregate
package lvlstat
