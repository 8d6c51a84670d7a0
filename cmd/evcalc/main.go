// Package main provides the EV calculator CLI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/ev-calculator/internal/config"
	"github.com/yourusername/ev-calculator/internal/devig"
	"github.com/yourusername/ev-calculator/internal/engine"
	"github.com/yourusername/ev-calculator/internal/logger"
	"github.com/yourusername/ev-calculator/internal/metrics"
	"github.com/yourusername/ev-calculator/internal/odds"
	"github.com/yourusername/ev-calculator/internal/stake"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile   string
	kellyName    string
	devigName    string
	betOddsFlag  int
	bankrollFlag float64
	noBankroll   bool

	cfg *config.Config
	lg  *logrus.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
	rootCmd.Flags().StringVar(&kellyName, "kelly", "", "Kelly type override (FK, HK, QK, EK)")
	rootCmd.Flags().StringVar(&devigName, "devig", "", "Devig method override (wc, power, probit, tko, goto)")
	rootCmd.Flags().IntVar(&betOddsFlag, "bet-odds", 0, "Bet odds override in American odds")
	rootCmd.Flags().Float64Var(&bankrollFlag, "bankroll", 0, "Bankroll override")
	rootCmd.Flags().BoolVar(&noBankroll, "no-bankroll", false, "Disable wager sizing for this run")
}

var rootCmd = &cobra.Command{
	Use:   "evcalc [flags] EXPRESSION",
	Short: "EV calculator and devigger",
	Long: `Evaluates a betting odds expression: devigs multi-way markets, combines
parlay legs and sizes a fractional-Kelly stake.

Expressions are comma-separated legs with an optional ":betOdds" suffix:
  evcalc -- -110
  evcalc -- "150/-180"
  evcalc -- "avg(-110,-120),+150:-200"`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		lg = logger.NewLogger(cfg.App.LogLevel)
		metrics.InitRegistry()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	if configFile == "" {
		cfg = config.Default()
		return config.Validate(cfg)
	}
	loaded, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := config.Validate(loaded); err != nil {
		return err
	}
	cfg = loaded
	return nil
}

func run(expression string) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}

	runLog := lg.WithFields(logrus.Fields{
		"request_id": uuid.New().String(),
		"expression": expression,
	})
	runLog.Debug("Evaluating expression")

	calc := engine.NewCalculator(lg)
	eval, err := calc.Evaluate(expression, opts)
	if err != nil {
		runLog.WithError(err).Error("Evaluation failed")
		return err
	}

	printEvaluation(eval)
	return nil
}

func buildOptions() (engine.Options, error) {
	kelly, err := cfg.Calculator.Kelly()
	if err != nil {
		return engine.Options{}, err
	}
	if kellyName != "" {
		if kelly, err = stake.ParseKellyType(kellyName); err != nil {
			return engine.Options{}, err
		}
	}

	method, err := cfg.Calculator.Method()
	if err != nil {
		return engine.Options{}, err
	}
	if devigName != "" {
		if method, err = devig.ParseMethod(devigName); err != nil {
			return engine.Options{}, err
		}
	}

	opts := engine.Options{Method: method, Kelly: kelly}

	if betOddsFlag != 0 {
		betOdds := betOddsFlag
		opts.BetOdds = &betOdds
	}

	if !noBankroll {
		if bankrollFlag > 0 {
			amount := decimal.NewFromFloat(bankrollFlag)
			opts.Bankroll = &amount
		} else {
			opts.Bankroll = cfg.Calculator.BankrollAmount()
		}
	}

	return opts, nil
}

func printEvaluation(eval *engine.Evaluation) {
	fmt.Fprintf(os.Stdout, "Bet Odds:  %s\n", formatOdds(eval.BetOdds))
	fmt.Fprintf(os.Stdout, "Fair Odds: %s\n", formatOdds(displayOdds(eval.CombinedFairOdds)))
	fmt.Fprintf(os.Stdout, "Win:       %.2f%%\n", eval.CombinedWinProb*100)
	fmt.Fprintf(os.Stdout, "EV:        %.2f%%\n", eval.EV*100)
	fmt.Fprintf(os.Stdout, "Kelly:     %.2f%%\n", eval.KellyStake*100)
	if eval.Wager != nil {
		fmt.Fprintf(os.Stdout, "Wager:     $%s\n", eval.Wager.StringFixed(2))
	}

	if len(eval.Legs) > 1 || eval.Legs[0].Devigged {
		for i, leg := range eval.Legs {
			fmt.Fprintf(os.Stdout, "Leg %d:\n", i+1)
			for _, outcome := range leg.Outcomes {
				fmt.Fprintf(os.Stdout, "  %s -> %s (%.2f%%)\n",
					formatOdds(outcome.MarketOdds),
					formatOdds(displayOdds(outcome.FairOdds)),
					outcome.FairProb*100)
			}
		}
	}
}

// displayOdds applies the configured display rounding step.
func displayOdds(american int) int {
	return odds.RoundToNearest(american, cfg.Calculator.RoundingStep)
}

func formatOdds(american int) string {
	if american > 0 {
		return fmt.Sprintf("+%d", american)
	}
	return fmt.Sprintf("%d", american)
}
