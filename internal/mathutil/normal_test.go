package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalCDF(t *testing.T) {
	tests := []struct {
		z        float64
		expected float64
	}{
		{0, 0.5},
		{1, 0.8413},
		{-1, 0.1587},
		{2, 0.9772},
		{-2, 0.0228},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, NormalCDF(tt.z), 0.001, "NormalCDF(%v)", tt.z)
	}
}

func TestNormalInvCDF(t *testing.T) {
	tests := []struct {
		p        float64
		expected float64
	}{
		{0.5, 0},
		{0.8413, 1.0},
		{0.1587, -1.0},
		{0.9772, 2.0},
		{0.0228, -2.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, NormalInvCDF(tt.p), 0.01, "NormalInvCDF(%v)", tt.p)
	}
}

func TestNormalInvCDFClamped(t *testing.T) {
	assert.Equal(t, -10.0, NormalInvCDF(0))
	assert.Equal(t, 10.0, NormalInvCDF(1))
	assert.Equal(t, -10.0, NormalInvCDF(-0.5))
	assert.Equal(t, 10.0, NormalInvCDF(1.5))
}

func TestNormalRoundTrip(t *testing.T) {
	for _, p := range []float64{0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99} {
		assert.InDelta(t, p, NormalCDF(NormalInvCDF(p)), 1e-6, "round trip for p=%v", p)
	}
}
