package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/ev-calculator/internal/devig"
)

func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "ev-calculator", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "HK", cfg.Calculator.KellyType)
	assert.Equal(t, "power", cfg.Calculator.DevigMethod)
	assert.Equal(t, 2500.0, cfg.Calculator.Bankroll)
	assert.True(t, cfg.Calculator.BankrollEnabled)
	assert.Equal(t, 5, cfg.Calculator.RoundingStep)
}

func TestLoadConfigFileNotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent_config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadConfigEnvExpansion(t *testing.T) {
	t.Setenv("TEST_KELLY_TYPE", "EK")

	cfg, err := Load("testdata/expansion_config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "EK", cfg.Calculator.KellyType)
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))

	assert.Equal(t, "QK", cfg.Calculator.KellyType)
	assert.Equal(t, "wc", cfg.Calculator.DevigMethod)
	assert.False(t, cfg.Calculator.BankrollEnabled)
}

func TestValidateRejectsUnknownKellyType(t *testing.T) {
	cfg := Default()
	cfg.Calculator.KellyType = "XK"
	assert.Error(t, Validate(cfg))
}

func TestValidateRejectsUnknownDevigMethod(t *testing.T) {
	cfg := Default()
	cfg.Calculator.DevigMethod = "martingale"
	assert.Error(t, Validate(cfg))
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := Default()
	cfg.App.LogLevel = "verbose"
	assert.Error(t, Validate(cfg))
}

func TestCalculatorConfigHelpers(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	require.NoError(t, err)

	kt, err := cfg.Calculator.Kelly()
	require.NoError(t, err)
	assert.Equal(t, 0.5, kt.Fraction)

	method, err := cfg.Calculator.Method()
	require.NoError(t, err)
	assert.Equal(t, devig.Power, method)

	bankroll := cfg.Calculator.BankrollAmount()
	require.NotNil(t, bankroll)
	assert.Equal(t, "2500", bankroll.String())
}

func TestBankrollAmountDisabled(t *testing.T) {
	cfg := Default()
	cfg.Calculator.Bankroll = 1000
	cfg.Calculator.BankrollEnabled = false
	assert.Nil(t, cfg.Calculator.BankrollAmount())
}
