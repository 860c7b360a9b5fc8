package aggregate

// Sum returns the sum of all elements in values, accumulated in
// encounter order with standard floating-point addition.
//
// A nil or empty slice yields exactly 0.0. The slice is never mutated
// or retained; NaN and ±Inf propagate per IEEE-754.
//
// Example:
//
//	total := aggregate.Sum([]float64{1, 2, 3, 4, 5}) // 15.0
func Sum(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	// Strict left fold; element order fixes every intermediate rounding.
	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum
}

// Average returns the arithmetic mean of values, computed as
// Sum(values) divided by the element count.
//
// A nil or empty slice yields exactly 0.0: the degenerate case is
// short-circuited before the division, so it never produces NaN.
//
// Example:
//
//	mean := aggregate.Average([]float64{1, 2, 3, 4, 5}) // 3.0
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	return Sum(values) / float64(len(values))
}
