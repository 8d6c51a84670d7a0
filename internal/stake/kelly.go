// Package stake computes expected value and fractional-Kelly stake sizes.
package stake

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/yourusername/ev-calculator/internal/odds"
)

// Custom errors
var (
	ErrInvalidKellyType = errors.New("unknown kelly type")
)

// KellyType is a named fraction applied to the raw Kelly stake.
type KellyType struct {
	Name     string
	Fraction float64
}

// Named Kelly fractions
var (
	FullKelly    = KellyType{Name: "FK", Fraction: 1}
	HalfKelly    = KellyType{Name: "HK", Fraction: 0.5}
	QuarterKelly = KellyType{Name: "QK", Fraction: 0.25}
	EighthKelly  = KellyType{Name: "EK", Fraction: 0.125}
)

// ParseKellyType resolves a Kelly type name (FK, HK, QK, EK).
func ParseKellyType(name string) (KellyType, error) {
	switch name {
	case "FK":
		return FullKelly, nil
	case "HK":
		return HalfKelly, nil
	case "QK":
		return QuarterKelly, nil
	case "EK":
		return EighthKelly, nil
	default:
		return KellyType{}, fmt.Errorf("%w: %q (valid: FK, HK, QK, EK)", ErrInvalidKellyType, name)
	}
}

// ExpectedValue returns the mean profit per unit staked:
// winProb * decimal(betOdds) - 1.
func ExpectedValue(winProb float64, betOdds int) (float64, error) {
	decimalOdds, err := odds.AmericanToDecimal(betOdds)
	if err != nil {
		return 0, err
	}
	return winProb*decimalOdds - 1, nil
}

// KellyFraction returns the raw Kelly stake fraction
// (winProb*d - 1) / (d - 1), floored at zero. Returns 0 when the decimal
// odds are 1 or the win probability is 1, guarding the division.
func KellyFraction(winProb float64, betOdds int) (float64, error) {
	decimalOdds, err := odds.AmericanToDecimal(betOdds)
	if err != nil {
		return 0, err
	}
	if decimalOdds == 1 || winProb == 1 {
		return 0, nil
	}
	return math.Max(0, (winProb*decimalOdds-1)/(decimalOdds-1)), nil
}

// Wager returns the currency amount to stake: the raw Kelly fraction scaled
// by the Kelly type and multiplied by the bankroll, rounded to cents.
func Wager(winProb float64, betOdds int, kt KellyType, bankroll decimal.Decimal) (decimal.Decimal, error) {
	raw, err := KellyFraction(winProb, betOdds)
	if err != nil {
		return decimal.Zero, err
	}
	fraction := decimal.NewFromFloat(raw * kt.Fraction)
	return bankroll.Mul(fraction).Round(2), nil
}
