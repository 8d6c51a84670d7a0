package devig

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/ev-calculator/internal/metrics"
)

// sumTolerance is the allowed drift of a fair probability set from 1.
const sumTolerance = 1e-6

var methodFuncs = map[Method]func([]int) ([]float64, error){
	WorstCase: WorstCaseMethod,
	Power:     PowerMethod,
	Probit:    ProbitMethod,
	TKO:       TKOMethod,
	Goto:      GotoMethod,
}

// Devigger dispatches to the configured vig-removal method and recovers
// per-method failures by falling back to the worst-case result.
type Devigger struct {
	logger *logrus.Logger
}

// NewDevigger creates a new devigger.
func NewDevigger(logger *logrus.Logger) *Devigger {
	return &Devigger{logger: logger}
}

// Devig returns fair probabilities for the given American odds, one per
// outcome, in input order.
//
// A failure inside the selected method, or a result whose probabilities do
// not sum to 1 within tolerance, is recovered by re-running the worst-case
// method and logging a warning naming the failed method. Unknown methods and
// inputs with fewer than 2 outcomes surface as errors.
func (d *Devigger) Devig(american []int, method Method) ([]float64, error) {
	if len(american) < 2 {
		return nil, fmt.Errorf("%w: devigging needs at least 2 outcomes, got %d", ErrInvalidInput, len(american))
	}

	fn, ok := methodFuncs[method]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMethod, method)
	}

	fair, err := fn(american)
	if err == nil {
		sum, valid := validateProbabilities(fair)
		if valid {
			return fair, nil
		}
		err = fmt.Errorf("%w: probabilities sum to %v, want 1 within %v", ErrInvalidInput, sum, sumTolerance)
	}

	d.logger.WithFields(logrus.Fields{
		"method": method.String(),
		"odds":   american,
		"error":  err.Error(),
	}).Warn("Devig method failed, falling back to worst-case")
	metrics.RecordDevigFallback(method.String())

	return WorstCaseMethod(american)
}

// validateProbabilities reports the sum of the set and whether every value
// is a finite probability with the set summing to 1 within tolerance.
func validateProbabilities(probs []float64) (float64, bool) {
	sum := 0.0
	for _, p := range probs {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
			return sum, false
		}
		sum += p
	}
	return sum, math.Abs(sum-1) <= sumTolerance
}
