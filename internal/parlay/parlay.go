// Package parlay combines the fair odds of independent legs into a single
// multi-leg price and win probability.
package parlay

import (
	"fmt"

	"github.com/yourusername/ev-calculator/internal/odds"
)

// Custom errors
var (
	ErrNoLegs = fmt.Errorf("%w: parlay needs at least one leg", odds.ErrInvalidOdds)
)

// CombineDecimal multiplies the decimal odds of every leg together.
func CombineDecimal(fairAmerican []int) (float64, error) {
	if len(fairAmerican) == 0 {
		return 0, ErrNoLegs
	}
	product := 1.0
	for _, american := range fairAmerican {
		decimal, err := odds.AmericanToDecimal(american)
		if err != nil {
			return 0, fmt.Errorf("leg with odds %d: %w", american, err)
		}
		product *= decimal
	}
	return product, nil
}

// Combine converts each leg's fair American odds to decimal, multiplies
// them together and converts the product back to American odds.
func Combine(fairAmerican []int) (int, error) {
	product, err := CombineDecimal(fairAmerican)
	if err != nil {
		return 0, err
	}
	return odds.DecimalToAmerican(product), nil
}

// CombinedProbability multiplies the fair win probabilities of independent
// legs. This is the canonical win probability for a parlay; it is never
// re-derived from the combined American odds, whose truncation would
// introduce drift.
func CombinedProbability(legProbs []float64) float64 {
	product := 1.0
	for _, p := range legProbs {
		product *= p
	}
	return product
}
