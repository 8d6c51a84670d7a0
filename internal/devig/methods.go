package devig

import (
	"fmt"
	"math"

	"github.com/yourusername/ev-calculator/internal/mathutil"
	"github.com/yourusername/ev-calculator/internal/odds"
)

const (
	powerIterations = 100
	powerTolerance  = 1e-10
)

func impliedProbabilities(american []int) ([]float64, error) {
	probs := make([]float64, len(american))
	for i, o := range american {
		p, err := odds.ImpliedProbability(o)
		if err != nil {
			return nil, err
		}
		probs[i] = p
	}
	return probs, nil
}

// WorstCaseMethod normalizes raw implied probabilities by their sum.
func WorstCaseMethod(american []int) ([]float64, error) {
	if len(american) < 2 {
		return nil, fmt.Errorf("%w: worst-case method needs at least 2 outcomes, got %d", ErrInvalidInput, len(american))
	}
	probs, err := impliedProbabilities(american)
	if err != nil {
		return nil, err
	}
	total := 0.0
	for _, p := range probs {
		total += p
	}
	fair := make([]float64, len(probs))
	for i, p := range probs {
		fair[i] = p / total
	}
	return fair, nil
}

// PowerMethod raises each implied probability to a shared exponent k,
// rescaling k until the exponentiated probabilities sum to one. The loop is
// bounded at 100 iterations with an early stop at 1e-10; the final output is
// renormalized.
func PowerMethod(american []int) ([]float64, error) {
	if len(american) < 2 {
		return nil, fmt.Errorf("%w: power method needs at least 2 outcomes, got %d", ErrInvalidInput, len(american))
	}
	probs, err := impliedProbabilities(american)
	if err != nil {
		return nil, err
	}

	k := 1.0
	n := float64(len(probs))
	for i := 0; i < powerIterations; i++ {
		total := 0.0
		for _, p := range probs {
			total += math.Pow(p, k)
		}
		if math.Abs(total-1) < powerTolerance {
			break
		}
		k *= math.Pow(1/total, 1/n)
	}

	total := 0.0
	for _, p := range probs {
		total += math.Pow(p, k)
	}
	fair := make([]float64, len(probs))
	for i, p := range probs {
		fair[i] = math.Pow(p, k) / total
	}
	return fair, nil
}

// ProbitMethod maps implied probabilities to z-scores, subtracts the mean
// z-score as a shared bias correction, and maps back through the normal CDF.
func ProbitMethod(american []int) ([]float64, error) {
	if len(american) < 2 {
		return nil, fmt.Errorf("%w: probit method needs at least 2 outcomes, got %d", ErrInvalidInput, len(american))
	}
	probs, err := impliedProbabilities(american)
	if err != nil {
		return nil, err
	}

	zScores := make([]float64, len(probs))
	mean := 0.0
	for i, p := range probs {
		if p <= 0 || p >= 1 {
			return nil, fmt.Errorf("%w: probability %v outside the probit domain (0,1)", ErrInvalidInput, p)
		}
		zScores[i] = mathutil.NormalInvCDF(p)
		mean += zScores[i]
	}
	mean /= float64(len(zScores))

	fair := make([]float64, len(zScores))
	for i, z := range zScores {
		fair[i] = mathutil.NormalCDF(z - mean)
	}
	return fair, nil
}

// TKOMethod computes fair probabilities for a two-outcome market from the
// odds ratio b0 = ln(p2/(1-p1)) / ln(p1/(1-p2)).
func TKOMethod(american []int) ([]float64, error) {
	if len(american) != 2 {
		return nil, fmt.Errorf("%w: tko method works for exactly 2 outcomes, got %d", ErrInvalidInput, len(american))
	}
	probs, err := impliedProbabilities(american)
	if err != nil {
		return nil, err
	}
	p1, p2 := probs[0], probs[1]
	q1, q2 := 1-p1, 1-p2

	b0 := math.Log(p2/q1) / math.Log(p1/q2)
	p := b0 / (1 + b0)
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return nil, fmt.Errorf("%w: tko odds ratio is undefined for probabilities %v and %v", ErrInvalidInput, p1, p2)
	}
	return []float64{p, 1 - p}, nil
}

// GotoOptions holds the tunable parameters of the goto conversion.
type GotoOptions struct {
	Total float64
	Alpha float64
	Beta  float64
	Eps   float64
}

// DefaultGotoOptions returns the published parameter defaults.
func DefaultGotoOptions() GotoOptions {
	return GotoOptions{Total: 1, Alpha: 1, Beta: 1, Eps: 1e-6}
}

// GotoConversion removes vig from decimal odds by shifting each raw
// probability proportionally to its standard error, clipping to
// [eps, 1-eps] and renormalizing.
func GotoConversion(decimalOdds []float64, opts GotoOptions) ([]float64, error) {
	if len(decimalOdds) < 2 {
		return nil, fmt.Errorf("%w: goto conversion needs at least 2 outcomes, got %d", ErrInvalidInput, len(decimalOdds))
	}
	for _, d := range decimalOdds {
		if d < 1 {
			return nil, fmt.Errorf("%w: goto conversion requires decimal odds >= 1, got %v", ErrInvalidInput, d)
		}
	}

	n := len(decimalOdds)
	probs := make([]float64, n)
	se := make([]float64, n)
	sumProbs, sumSE := 0.0, 0.0
	for i, d := range decimalOdds {
		p := 1 / d
		probs[i] = p
		se[i] = math.Sqrt((p - p*p) / (math.Pow(p, opts.Alpha) / opts.Beta))
		sumProbs += p
		sumSE += se[i]
	}

	step := (sumProbs - opts.Total) / sumSE
	out := make([]float64, n)
	total := 0.0
	for i, p := range probs {
		shifted := p - se[i]*step
		shifted = math.Min(math.Max(shifted, opts.Eps), 1-opts.Eps)
		out[i] = shifted
		total += shifted
	}
	for i := range out {
		out[i] /= total
	}
	return out, nil
}

// GotoMethod runs the goto conversion on American odds with default
// parameters.
func GotoMethod(american []int) ([]float64, error) {
	decimals := make([]float64, len(american))
	for i, o := range american {
		d, err := odds.AmericanToDecimal(o)
		if err != nil {
			return nil, err
		}
		decimals[i] = d
	}
	return GotoConversion(decimals, DefaultGotoOptions())
}
