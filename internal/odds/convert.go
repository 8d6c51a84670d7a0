// Package odds provides conversions between American odds, decimal odds
// and implied probabilities.
package odds

import (
	"fmt"
	"math"
)

// AmericanToDecimal converts American odds to decimal odds.
// Example: -150 → 1.6667, +150 → 2.5
func AmericanToDecimal(american int) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("%w: american odds of 0 have no decimal equivalent", ErrInvalidOdds)
	}
	if american > 0 {
		return float64(american)/100 + 1, nil
	}
	return 100/math.Abs(float64(american)) + 1, nil
}

// DecimalToAmerican converts decimal odds back to American odds.
// The fractional part is truncated toward zero, matching integer
// conversion semantics. Callers that want display rounding should
// re-round with RoundToNearest.
func DecimalToAmerican(decimal float64) int {
	if decimal == 1 {
		return 0
	}
	if decimal >= 2 {
		return int((decimal - 1) * 100)
	}
	return int(-100 / (decimal - 1))
}

// ImpliedProbability returns the probability implied by American odds,
// vig included.
// Example: -150 → 0.6, +150 → 0.4
func ImpliedProbability(american int) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("%w: american odds of 0 imply no probability", ErrInvalidOdds)
	}
	if american < 0 {
		abs := math.Abs(float64(american))
		return abs / (abs + 100), nil
	}
	return 100 / (float64(american) + 100), nil
}

// ProbabilityToAmerican returns the American odds whose implied
// probability equals p. Inverse of ImpliedProbability up to truncation.
func ProbabilityToAmerican(p float64) (int, error) {
	if p <= 0 || p > 1 {
		return 0, fmt.Errorf("%w: probability %v outside (0,1]", ErrInvalidOdds, p)
	}
	return DecimalToAmerican(1 / p), nil
}

// RoundToNearest rounds n to the nearest multiple of step, ties away
// from zero. A step of 0 or less returns n unchanged.
func RoundToNearest(n, step int) int {
	if step <= 0 {
		return n
	}
	return int(math.Round(float64(n)/float64(step))) * step
}
