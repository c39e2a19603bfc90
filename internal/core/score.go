// ABOUTME: Placeholder nutritional score, not a nutrition model
// ABOUTME: Constants stand in until real per-meal analysis exists
package core

// NutritionalScore returns a fixed placeholder score for any meal.
// The macro constants are stand-ins; every meal scores the same.
func NutritionalScore(meal string) int {
	protein := 15
	fat := 10
	carbs := 30
	return 100 - abs(50-protein) - abs(50-carbs) - abs(50-fat)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
