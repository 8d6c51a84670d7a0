package engine

import (
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/ev-calculator/internal/devig"
	"github.com/yourusername/ev-calculator/internal/odds"
	"github.com/yourusername/ev-calculator/internal/parser"
	"github.com/yourusername/ev-calculator/internal/stake"
)

func newTestCalculator() *Calculator {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewCalculator(logger)
}

func TestEvaluateSingleLegWithBetOdds(t *testing.T) {
	c := newTestCalculator()
	bankroll := decimal.NewFromInt(1000)

	eval, err := c.Evaluate("+150:+200", Options{Bankroll: &bankroll})
	require.NoError(t, err)

	assert.InDelta(t, 0.4, eval.CombinedWinProb, 1e-9)
	assert.Equal(t, 200, eval.BetOdds)
	assert.InDelta(t, 0.2, eval.EV, 1e-9)
	// Quarter Kelly is the default: raw 0.1 scaled to 0.025
	assert.InDelta(t, 0.025, eval.KellyStake, 1e-9)
	require.NotNil(t, eval.Wager)
	assert.True(t, eval.Wager.Equal(decimal.NewFromInt(25)), "got %s", eval.Wager)
}

func TestEvaluateParlay(t *testing.T) {
	c := newTestCalculator()

	eval, err := c.Evaluate("-110,+150", Options{})
	require.NoError(t, err)

	require.Len(t, eval.Legs, 2)
	assert.InDelta(t, float64(377), float64(eval.CombinedFairOdds), 1)
	assert.InDelta(t, 0.2095238, eval.CombinedWinProb, 1e-6)
	// No suffix and no override: the bet pays the combined fair odds.
	assert.Equal(t, eval.CombinedFairOdds, eval.BetOdds)
	assert.Nil(t, eval.Wager)
}

func TestEvaluateTwoWayLegIsDevigged(t *testing.T) {
	c := newTestCalculator()

	eval, err := c.Evaluate("150/-180", Options{Method: devig.WorstCase})
	require.NoError(t, err)

	require.Len(t, eval.Legs, 1)
	leg := eval.Legs[0]
	assert.True(t, leg.Devigged)
	require.Len(t, leg.Outcomes, 2)
	assert.InDelta(t, 0.383562, leg.Outcomes[0].FairProb, 1e-5)
	assert.InDelta(t, 0.616438, leg.Outcomes[1].FairProb, 1e-5)
	assert.Equal(t, 160, leg.FairOdds)

	// Betting a single leg at its own fair odds carries no edge beyond
	// truncation drift.
	assert.InDelta(t, 0.0, eval.EV, 0.01)
}

func TestEvaluateFullKellyOverride(t *testing.T) {
	c := newTestCalculator()
	bankroll := decimal.NewFromInt(1000)

	eval, err := c.Evaluate("+150:+200", Options{Kelly: stake.FullKelly, Bankroll: &bankroll})
	require.NoError(t, err)

	assert.InDelta(t, 0.1, eval.KellyStake, 1e-9)
	require.NotNil(t, eval.Wager)
	assert.True(t, eval.Wager.Equal(decimal.NewFromInt(100)), "got %s", eval.Wager)
}

func TestEvaluateBetOddsPrecedence(t *testing.T) {
	c := newTestCalculator()
	override := 300

	eval, err := c.Evaluate("+150:+200", Options{BetOdds: &override})
	require.NoError(t, err)
	assert.Equal(t, 300, eval.BetOdds)
}

func TestEvaluateParseFailure(t *testing.T) {
	c := newTestCalculator()

	_, err := c.Evaluate("avg(-110", Options{})
	assert.ErrorIs(t, err, parser.ErrInvalidFormat)
}

func TestEvaluateZeroOddsLeg(t *testing.T) {
	c := newTestCalculator()

	_, err := c.Evaluate("0", Options{})
	assert.ErrorIs(t, err, odds.ErrInvalidOdds)
}

func TestEvaluateExpressionStateless(t *testing.T) {
	c := newTestCalculator()
	expr, err := parser.ParseExpression("-110,+150")
	require.NoError(t, err)

	first, err := c.EvaluateExpression(expr, Options{})
	require.NoError(t, err)
	second, err := c.EvaluateExpression(expr, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
