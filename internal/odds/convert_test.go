package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmericanToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		american int
		expected float64
	}{
		{"even money favorite", -100, 2.0},
		{"standard favorite", -110, 1.9090909090909092},
		{"heavy favorite", -400, 1.25},
		{"even money underdog", 100, 2.0},
		{"standard underdog", 150, 2.5},
		{"longshot", 900, 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decimal, err := AmericanToDecimal(tt.american)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, decimal, 1e-9)
		})
	}
}

func TestAmericanToDecimalZero(t *testing.T) {
	_, err := AmericanToDecimal(0)
	assert.ErrorIs(t, err, ErrInvalidOdds)
}

func TestDecimalToAmerican(t *testing.T) {
	tests := []struct {
		name     string
		decimal  float64
		expected int
	}{
		{"certain outcome", 1.0, 0},
		{"even money", 2.0, 100},
		{"underdog", 2.5, 150},
		{"favorite", 1.25, -400},
		{"truncates toward zero", 4.7727, 377},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecimalToAmerican(tt.decimal))
		})
	}
}

// Round-trip law: american → decimal → american reproduces the original
// odds within truncation error.
func TestConversionRoundTrip(t *testing.T) {
	for _, american := range []int{-10000, -500, -110, -101, -100, 100, 101, 110, 150, 500, 10000} {
		decimal, err := AmericanToDecimal(american)
		require.NoError(t, err)
		assert.InDelta(t, float64(american), float64(DecimalToAmerican(decimal)), 1, "round trip for %d", american)
	}
}

func TestImpliedProbability(t *testing.T) {
	tests := []struct {
		name     string
		american int
		expected float64
	}{
		{"favorite", -150, 0.6},
		{"underdog", 150, 0.4},
		{"even favorite", -100, 0.5},
		{"even underdog", 100, 0.5},
		{"heavy favorite", -900, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ImpliedProbability(tt.american)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, p, 1e-9)
		})
	}
}

func TestImpliedProbabilityRange(t *testing.T) {
	for _, american := range []int{-100000, -250, -110, -100, 100, 110, 250, 100000} {
		p, err := ImpliedProbability(american)
		require.NoError(t, err)
		assert.Greater(t, p, 0.0)
		assert.Less(t, p, 1.0)
	}
}

func TestImpliedProbabilityZero(t *testing.T) {
	_, err := ImpliedProbability(0)
	assert.ErrorIs(t, err, ErrInvalidOdds)
}

func TestProbabilityToAmerican(t *testing.T) {
	got, err := ProbabilityToAmerican(0.6)
	require.NoError(t, err)
	assert.Equal(t, -150, got)

	got, err = ProbabilityToAmerican(0.4)
	require.NoError(t, err)
	assert.Equal(t, 150, got)

	_, err = ProbabilityToAmerican(0)
	assert.ErrorIs(t, err, ErrInvalidOdds)
	_, err = ProbabilityToAmerican(1.5)
	assert.ErrorIs(t, err, ErrInvalidOdds)
}

func TestRoundToNearest(t *testing.T) {
	tests := []struct {
		n, step, expected int
	}{
		{377, 5, 375},
		{378, 5, 380},
		{-112, 5, -110},
		{-113, 5, -115},
		{377, 10, 380},
		{377, 0, 377},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RoundToNearest(tt.n, tt.step), "RoundToNearest(%d, %d)", tt.n, tt.step)
	}
}
