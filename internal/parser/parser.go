// Package parser parses the calculator's free-text odds syntax into
// structured legs.
//
// An expression is a comma-separated list of legs with an optional
// ":betOdds" suffix. Each leg is a slash-separated list of sides, and each
// side is either an integer in American odds or an "avg(n1, n2, ...)" group
// that averages the listed values.
//
//	-110                 single-sided leg
//	150/-180             two-way market
//	-120/250/400         three-way market
//	avg(-110,-120),+150  two legs, first averaged
//	-110,+150:-200       two legs with bet odds -200
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Custom errors
var (
	ErrInvalidFormat = errors.New("invalid odds format")
)

// Expression is the structured form of an odds expression.
type Expression struct {
	// Legs holds one entry per wagering event; each entry lists the
	// American odds of that leg's outcomes in input order.
	Legs [][]int
	// BetOdds is the optional ":betOdds" suffix.
	BetOdds *int
}

// ParseExpression parses an odds expression into legs and optional bet odds.
func ParseExpression(text string) (Expression, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Expression{}, fmt.Errorf("%w: empty expression", ErrInvalidFormat)
	}

	body, betOdds, err := splitBetOdds(text)
	if err != nil {
		return Expression{}, err
	}

	legTokens, err := splitTopLevel(body, ',')
	if err != nil {
		return Expression{}, err
	}

	legs := make([][]int, 0, len(legTokens))
	for _, token := range legTokens {
		leg, err := parseLeg(token)
		if err != nil {
			return Expression{}, err
		}
		legs = append(legs, leg)
	}

	return Expression{Legs: legs, BetOdds: betOdds}, nil
}

// ParseTwoWay parses a slash-delimited two-way market, requiring exactly two
// sides.
func ParseTwoWay(text string) (int, int, error) {
	sides := strings.Split(text, "/")
	if len(sides) != 2 {
		return 0, 0, fmt.Errorf("%w: two-way odds need exactly 2 sides, got %d in %q", ErrInvalidFormat, len(sides), text)
	}
	first, err := parseSide(sides[0])
	if err != nil {
		return 0, 0, err
	}
	second, err := parseSide(sides[1])
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}

// splitBetOdds splits an optional ":betOdds" suffix off the expression.
func splitBetOdds(text string) (string, *int, error) {
	parts := strings.Split(text, ":")
	switch len(parts) {
	case 1:
		return parts[0], nil, nil
	case 2:
		betOdds, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return "", nil, fmt.Errorf("%w: bet odds %q is not an integer", ErrInvalidFormat, parts[1])
		}
		return parts[0], &betOdds, nil
	default:
		return "", nil, fmt.Errorf("%w: expected at most one ':' in %q", ErrInvalidFormat, text)
	}
}

// splitTopLevel splits on sep, ignoring separators inside parentheses.
func splitTopLevel(text string, sep rune) ([]string, error) {
	var tokens []string
	var current strings.Builder
	depth := 0

	for _, r := range text {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unmatched ')' in %q", ErrInvalidFormat, text)
			}
			current.WriteRune(r)
		case r == sep && depth == 0:
			tokens = append(tokens, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unmatched '(' in %q", ErrInvalidFormat, text)
	}
	tokens = append(tokens, current.String())
	return tokens, nil
}

// parseLeg parses one leg into the American odds of its sides.
func parseLeg(token string) ([]int, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty leg", ErrInvalidFormat)
	}

	sideTokens, err := splitTopLevel(token, '/')
	if err != nil {
		return nil, err
	}

	sides := make([]int, 0, len(sideTokens))
	for _, s := range sideTokens {
		side, err := parseSide(s)
		if err != nil {
			return nil, err
		}
		sides = append(sides, side)
	}
	return sides, nil
}

// parseSide parses a single odds value: an integer or an avg(...) group.
func parseSide(token string) (int, error) {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "avg(") && strings.HasSuffix(token, ")") {
		return parseAverage(token)
	}
	odds, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: odds %q is not an integer", ErrInvalidFormat, token)
	}
	return odds, nil
}

// parseAverage averages the values of an avg(...) group, truncating the
// result toward zero.
func parseAverage(token string) (int, error) {
	inner := token[len("avg(") : len(token)-1]
	values := strings.Split(inner, ",")
	if len(values) == 0 || strings.TrimSpace(inner) == "" {
		return 0, fmt.Errorf("%w: empty avg group %q", ErrInvalidFormat, token)
	}

	sum := 0.0
	for _, v := range values {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: avg value %q is not a number", ErrInvalidFormat, v)
		}
		sum += f
	}
	return int(sum / float64(len(values))), nil
}
