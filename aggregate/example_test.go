package aggregate_test

import (
	"fmt"

	"github.com/katalvlaran/lvlstat/aggregate"
)

// ExampleSum demonstrates summing a short sequence of test scores.
func ExampleSum() {
	scores := []float64{85.5, 92.0, 78.5, 95.0, 88.5, 91.0, 83.0}

	fmt.Printf("Sum: %.2f\n", aggregate.Sum(scores))
	// Output:
	// Sum: 613.50
}

// ExampleAverage demonstrates averaging the same scores.
func ExampleAverage() {
	scores := []float64{85.5, 92.0, 78.5, 95.0, 88.5, 91.0, 83.0}

	fmt.Printf("Average: %.2f\n", aggregate.Average(scores))
	// Output:
	// Average: 87.64
}

// ExampleAverage_empty demonstrates the degenerate-input policy:
// an empty sequence yields 0.0, never NaN.
func ExampleAverage_empty() {
	fmt.Printf("Average: %.2f\n", aggregate.Average(nil))
	// Output:
	// Average: 0.00
}
