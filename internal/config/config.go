// Package config provides configuration management for the EV calculator.
package config

import (
	"github.com/shopspring/decimal"

	"github.com/yourusername/ev-calculator/internal/devig"
	"github.com/yourusername/ev-calculator/internal/stake"
)

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Calculator CalculatorConfig `mapstructure:"calculator" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// CalculatorConfig holds the calculation defaults that the legacy per-user
// settings store used to carry. The engine itself never reads them; callers
// pass them in as parameters.
type CalculatorConfig struct {
	KellyType       string  `mapstructure:"kelly_type" validate:"required,kellytype"`
	DevigMethod     string  `mapstructure:"devig_method" validate:"required,devigmethod"`
	Bankroll        float64 `mapstructure:"bankroll" validate:"gte=0"`
	BankrollEnabled bool    `mapstructure:"bankroll_enabled"`
	RoundingStep    int     `mapstructure:"rounding_step" validate:"gte=0"`
}

// Kelly returns the configured Kelly type.
func (c *CalculatorConfig) Kelly() (stake.KellyType, error) {
	return stake.ParseKellyType(c.KellyType)
}

// Method returns the configured devig method.
func (c *CalculatorConfig) Method() (devig.Method, error) {
	return devig.ParseMethod(c.DevigMethod)
}

// BankrollAmount returns the bankroll as a currency amount, or nil when
// bankroll calculations are disabled.
func (c *CalculatorConfig) BankrollAmount() *decimal.Decimal {
	if !c.BankrollEnabled || c.Bankroll <= 0 {
		return nil
	}
	amount := decimal.NewFromFloat(c.Bankroll)
	return &amount
}
