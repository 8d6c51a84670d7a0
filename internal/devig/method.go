// Package devig removes bookmaker margin from quoted odds, recovering fair
// win probabilities for the outcomes of a market.
package devig

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	ErrInvalidMethod = errors.New("unknown devig method")
	ErrInvalidInput  = errors.New("invalid devig input")
)

// Method selects one of the supported vig-removal algorithms.
type Method int

const (
	// WorstCase normalizes implied probabilities by their sum. Always
	// defined; used as the fallback for every other method.
	WorstCase Method = iota
	// Power raises implied probabilities to a shared exponent until they
	// sum to one.
	Power
	// Probit applies a shared bias correction in z-score space.
	Probit
	// TKO solves the two-outcome odds-ratio model of Shin/TKO pricing.
	TKO
	// Goto shifts probabilities proportionally to their standard error.
	Goto
)

var methodNames = map[Method]string{
	WorstCase: "wc",
	Power:     "power",
	Probit:    "probit",
	TKO:       "tko",
	Goto:      "goto",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod resolves a method name as entered by a user. "wc" and
// "worst-case" are synonyms.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "wc", "worst-case":
		return WorstCase, nil
	case "power":
		return Power, nil
	case "probit":
		return Probit, nil
	case "tko":
		return TKO, nil
	case "goto":
		return Goto, nil
	default:
		return WorstCase, fmt.Errorf("%w: %q (valid: wc, power, probit, tko, goto)", ErrInvalidMethod, name)
	}
}
