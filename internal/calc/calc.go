// Package calc evaluates arithmetic expressions over exact fractions.
//
// Expressions are written in prefix (Polish) notation, with tokens
// separated by white space:
//
//	* 10 + 1.23 4.56
//	/ 1 + x 1/3
//	^ 2/3 -2
//
// Operands are decimal literals ("1.23"), ratio literals ("1/3") or
// variable names. The exponent of "^" must be an integer.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/govalues/fraction"
)

var (
	// ErrNoTokens is returned for an empty expression.
	ErrNoTokens = errors.New("no tokens")
	// ErrStack is returned when operators and operands do not balance.
	ErrStack = errors.New("unbalanced expression")
	// ErrUnknownVariable is returned when an operand is neither a literal
	// nor a known variable.
	ErrUnknownVariable = errors.New("unknown variable")
	// ErrExponent is returned when the exponent of "^" is not a small integer.
	ErrExponent = errors.New("exponent must be an integer")
)

// Evaluator evaluates prefix expressions.
// It is safe for concurrent use by multiple goroutines.
type Evaluator struct {
	logger zerolog.Logger
	vars   map[string]fraction.Fraction
}

// New returns an evaluator that resolves variable names using vars.
// The map is copied.
func New(logger zerolog.Logger, vars map[string]fraction.Fraction) *Evaluator {
	v := make(map[string]fraction.Fraction, len(vars))
	for name, f := range vars {
		v[name] = f
	}
	return &Evaluator{
		logger: logger.With().Str("module", "calc").Logger(),
		vars:   v,
	}
}

// Eval evaluates the expression and returns its exact value.
func (e *Evaluator) Eval(expr string) (fraction.Fraction, error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return fraction.Fraction{}, ErrNoTokens
	}
	stack, err := e.processTokens(tokens)
	if err != nil {
		return fraction.Fraction{}, err
	}
	if len(stack) != 1 {
		return fraction.Fraction{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item: %w", stack, ErrStack)
	}
	e.logger.Debug().Str("expr", expr).Stringer("result", stack[0]).Msg("evaluated")
	return stack[0], nil
}

func (e *Evaluator) processTokens(tokens []string) ([]fraction.Fraction, error) {
	stack := make([]fraction.Fraction, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/", "^":
			stack, err = e.processOperator(stack, token)
		default:
			stack, err = e.processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func (e *Evaluator) processOperator(stack []fraction.Fraction, token string) ([]fraction.Fraction, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands: %w", ErrStack)
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result fraction.Fraction
	var err error
	switch token {
	case "+":
		result, err = left.Add(right)
	case "-":
		result, err = left.Sub(right)
	case "*":
		result, err = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	case "^":
		result, err = pow(left, right)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, err)
	}
	e.logger.Debug().Object("step", step{op: token, left: left, right: right, result: result}).Msg("reduced")
	return append(stack, result), nil
}

func pow(base, exp fraction.Fraction) (fraction.Fraction, error) {
	if !exp.IsInt() {
		return fraction.Fraction{}, ErrExponent
	}
	n := exp.Num()
	if n < math.MinInt32 || n > math.MaxInt32 {
		return fraction.Fraction{}, ErrExponent
	}
	return base.Pow(int(n))
}

func (e *Evaluator) processOperand(stack []fraction.Fraction, token string) ([]fraction.Fraction, error) {
	f, err := e.operand(token)
	if err != nil {
		return nil, err
	}
	return append(stack, f), nil
}

// operand resolves a literal or a variable name.
func (e *Evaluator) operand(token string) (fraction.Fraction, error) {
	switch c := token[0]; {
	case strings.IndexByte(token, '/') >= 0:
		return fraction.ParseRatio(token)
	case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
		return fraction.Parse(token)
	}
	f, ok := e.vars[token]
	if !ok {
		return fraction.Fraction{}, fmt.Errorf("%q: %w", token, ErrUnknownVariable)
	}
	return f, nil
}

// step is a single reduction of the expression.
type step struct {
	op                  string
	left, right, result fraction.Fraction
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (s step) MarshalZerologObject(e *zerolog.Event) {
	e.Str("op", s.op)
	e.Stringer("left", s.left)
	e.Stringer("right", s.right)
	e.Stringer("result", s.result)
}
