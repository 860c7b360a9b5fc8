// Package aggregate provides summation and arithmetic mean over finite
// float64 sequences.
//
// What:
//
//   - Sum(values) — the sum of all elements, accumulated strictly
//     left-to-right in encounter order.
//   - Average(values) — Sum(values) divided by the element count.
//
// Why:
//
//   - Sensor batches: totals and means of readings.
//   - Scoring: averaging test scores, ratings, prices.
//   - Building block: a deterministic fold other layers can rely on.
//
// Degenerate policy:
//
//   - A nil or empty slice yields exactly 0.0 from both functions.
//     Average short-circuits before dividing, so an empty input never
//     produces NaN. This is a deliberate sentinel, not an error.
//
// Determinism:
//
//   - Accumulation is a strict left fold with plain IEEE-754 addition:
//     no reordering, no compensated (Kahan) summation. The rounding of
//     every intermediate step is therefore fixed by element order, and
//     repeated calls on the same slice return identical bits.
//   - NaN and ±Inf elements propagate per IEEE-754; no element is
//     required to be finite.
//
// Complexity:
//
//   - Sum:     O(n) time, O(1) memory.
//   - Average: O(n) time, O(1) memory.
//
// Errors:
//
//   - None. Both functions are total over their domain, have no side
//     effects, and never retain or mutate the input slice. They are safe
//     to call concurrently on shared read-only data.
package aggregate
