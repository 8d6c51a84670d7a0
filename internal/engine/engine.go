// Package engine orchestrates the calculator pipeline: parse an odds
// expression, devig multi-way legs, combine legs into a parlay and size the
// stake. It consolidates the feature superset of the legacy command
// variants behind a single entry point; callers pick a feature subset
// through Options.
package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/ev-calculator/internal/devig"
	"github.com/yourusername/ev-calculator/internal/metrics"
	"github.com/yourusername/ev-calculator/internal/odds"
	"github.com/yourusername/ev-calculator/internal/parlay"
	"github.com/yourusername/ev-calculator/internal/parser"
	"github.com/yourusername/ev-calculator/internal/stake"
)

// Options selects the evaluation features. All values come from the caller;
// the engine holds no per-user state.
type Options struct {
	// Method is the devig method for multi-way legs.
	Method devig.Method
	// Kelly scales the raw Kelly fraction. Zero value means quarter Kelly.
	Kelly stake.KellyType
	// BetOdds overrides the expression's ":betOdds" suffix.
	BetOdds *int
	// Bankroll enables wager sizing when non-nil.
	Bankroll *decimal.Decimal
}

// Outcome is one side of a leg with its fair price.
type Outcome struct {
	MarketOdds int
	FairProb   float64
	FairOdds   int
}

// Leg is one wagering event of the evaluated expression. The first outcome
// is the side being wagered.
type Leg struct {
	Outcomes []Outcome
	WinProb  float64
	FairOdds int
	Devigged bool
}

// Evaluation is the numeric result of an evaluated expression. Formatting
// is left entirely to callers.
type Evaluation struct {
	Legs             []Leg
	CombinedFairOdds int
	CombinedWinProb  float64
	BetOdds          int
	EV               float64
	// KellyStake is the fraction of bankroll to wager after Kelly type
	// scaling.
	KellyStake float64
	// Wager is the currency amount to stake; nil when no bankroll was
	// supplied.
	Wager *decimal.Decimal
}

// Calculator evaluates odds expressions.
type Calculator struct {
	logger   *logrus.Logger
	devigger *devig.Devigger
}

// NewCalculator creates a new calculator.
func NewCalculator(logger *logrus.Logger) *Calculator {
	return &Calculator{
		logger:   logger,
		devigger: devig.NewDevigger(logger),
	}
}

// Evaluate parses and evaluates an odds expression.
func (c *Calculator) Evaluate(text string, opts Options) (*Evaluation, error) {
	start := time.Now()

	expr, err := parser.ParseExpression(text)
	if err != nil {
		metrics.RecordParseError()
		metrics.RecordEvaluationError()
		return nil, err
	}

	eval, err := c.EvaluateExpression(expr, opts)
	if err != nil {
		metrics.RecordEvaluationError()
		return nil, err
	}

	metrics.RecordEvaluation(time.Since(start).Seconds())
	c.logger.WithFields(logrus.Fields{
		"legs":     len(eval.Legs),
		"method":   opts.Method.String(),
		"bet_odds": eval.BetOdds,
		"win_prob": eval.CombinedWinProb,
		"ev":       eval.EV,
	}).Debug("Evaluated odds expression")

	return eval, nil
}

// EvaluateExpression evaluates an already-parsed expression.
func (c *Calculator) EvaluateExpression(expr parser.Expression, opts Options) (*Evaluation, error) {
	if opts.Kelly.Fraction == 0 {
		opts.Kelly = stake.QuarterKelly
	}

	legs := make([]Leg, 0, len(expr.Legs))
	legFairOdds := make([]int, 0, len(expr.Legs))
	legWinProbs := make([]float64, 0, len(expr.Legs))

	for i, sides := range expr.Legs {
		leg, err := c.evaluateLeg(sides, opts.Method)
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", i+1, err)
		}
		legs = append(legs, leg)
		legFairOdds = append(legFairOdds, leg.FairOdds)
		legWinProbs = append(legWinProbs, leg.WinProb)
	}

	combinedFairOdds, err := parlay.Combine(legFairOdds)
	if err != nil {
		return nil, err
	}
	combinedWinProb := parlay.CombinedProbability(legWinProbs)

	betOdds := resolveBetOdds(expr, opts, legs, combinedFairOdds)

	ev, err := stake.ExpectedValue(combinedWinProb, betOdds)
	if err != nil {
		return nil, err
	}
	rawKelly, err := stake.KellyFraction(combinedWinProb, betOdds)
	if err != nil {
		return nil, err
	}

	eval := &Evaluation{
		Legs:             legs,
		CombinedFairOdds: combinedFairOdds,
		CombinedWinProb:  combinedWinProb,
		BetOdds:          betOdds,
		EV:               ev,
		KellyStake:       rawKelly * opts.Kelly.Fraction,
	}

	if opts.Bankroll != nil {
		wager, err := stake.Wager(combinedWinProb, betOdds, opts.Kelly, *opts.Bankroll)
		if err != nil {
			return nil, err
		}
		eval.Wager = &wager
	}

	return eval, nil
}

// evaluateLeg computes fair probabilities for one leg. Single-sided legs
// are taken at face value; multi-way legs are devigged.
func (c *Calculator) evaluateLeg(sides []int, method devig.Method) (Leg, error) {
	if len(sides) == 1 {
		p, err := odds.ImpliedProbability(sides[0])
		if err != nil {
			return Leg{}, err
		}
		return Leg{
			Outcomes: []Outcome{{MarketOdds: sides[0], FairProb: p, FairOdds: sides[0]}},
			WinProb:  p,
			FairOdds: sides[0],
		}, nil
	}

	fair, err := c.devigger.Devig(sides, method)
	if err != nil {
		return Leg{}, err
	}

	outcomes := make([]Outcome, len(sides))
	for i, marketOdds := range sides {
		fairOdds, err := odds.ProbabilityToAmerican(fair[i])
		if err != nil {
			return Leg{}, err
		}
		outcomes[i] = Outcome{MarketOdds: marketOdds, FairProb: fair[i], FairOdds: fairOdds}
	}

	return Leg{
		Outcomes: outcomes,
		WinProb:  fair[0],
		FairOdds: outcomes[0].FairOdds,
		Devigged: true,
	}, nil
}

// resolveBetOdds picks the odds the bet pays out at: an explicit override
// wins, then the expression suffix, then the fair odds themselves (the
// single leg's, or the combined parlay price).
func resolveBetOdds(expr parser.Expression, opts Options, legs []Leg, combinedFairOdds int) int {
	if opts.BetOdds != nil {
		return *opts.BetOdds
	}
	if expr.BetOdds != nil {
		return *expr.BetOdds
	}
	if len(legs) == 1 {
		return legs[0].FairOdds
	}
	return combinedFairOdds
}
