// Package rpn evaluates arithmetic expressions written in postfix
// (reverse Polish) notation over arbitrary-precision integers and decimals.
package rpn

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/zeebo/errs"

	"github.com/govalues/bignum"
)

// Error is the class of all evaluation errors.
var Error = errs.Class("rpn")

// Mode selects the number type of an evaluation.
type Mode int

const (
	// ModeDecimal evaluates operands as decimals.
	ModeDecimal Mode = iota
	// ModeInt evaluates operands as integers.
	ModeInt
)

// ParseMode maps a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "decimal", "dec":
		return ModeDecimal, nil
	case "int", "integer":
		return ModeInt, nil
	}
	return 0, Error.New("invalid mode %q: expected decimal or int", s)
}

func (m Mode) String() string {
	switch m {
	case ModeDecimal:
		return "decimal"
	case ModeInt:
		return "int"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Options configures an evaluation.
type Options struct {
	// Mode selects integer or decimal arithmetic.
	Mode Mode
	// Scale is the number of digits after the decimal point kept by
	// decimal division.
	Scale int
	// Round makes decimal division round half away from zero instead of
	// truncating.
	Round bool
	// Logger receives a debug record for every applied operator.
	// A nil Logger discards them.
	Logger *slog.Logger
}

// Result is the value left on the stack by a successful evaluation.
type Result struct {
	Mode    Mode
	Int     bignum.Int
	Decimal bignum.Decimal
}

func (r Result) String() string {
	if r.Mode == ModeInt {
		return r.Int.String()
	}
	return r.Decimal.String()
}

// Eval evaluates a whitespace separated postfix expression.
// The supported binary operators are + - * / % ^, and the unary
// operators are neg and abs.
// In decimal mode / divides to opts.Scale digits and % is rejected;
// in integer mode / truncates toward zero and % takes the remainder.
// The right operand of ^ must be a non-negative integer.
// Cancellation of ctx is observed between tokens and between the squaring
// steps of ^.
func Eval(ctx context.Context, expr string, opts Options) (Result, error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return Result{}, Error.New("empty expression")
	}
	if opts.Scale < 0 {
		return Result{}, Error.New("negative scale %d", opts.Scale)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	switch opts.Mode {
	case ModeInt:
		x, err := evaluate(ctx, tokens, intArith, logger)
		if err != nil {
			return Result{}, err
		}
		return Result{Mode: ModeInt, Int: x}, nil
	case ModeDecimal:
		d, err := evaluate(ctx, tokens, decimalArith(opts.Scale, opts.Round), logger)
		if err != nil {
			return Result{}, err
		}
		return Result{Mode: ModeDecimal, Decimal: d}, nil
	}
	return Result{}, Error.New("unsupported mode %v", opts.Mode)
}

// number is the arithmetic common to bignum.Int and bignum.Decimal.
type number[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	Abs() T
	IsZero() bool
	String() string
}

// arith holds the operations that differ between number types.
type arith[T number[T]] struct {
	parse func(string) (T, error)
	quo   func(x, y T) T
	rem   func(x, y T) (T, error)
	pow   func(ctx context.Context, x, y T) (T, error)
}

var intArith = arith[bignum.Int]{
	parse: bignum.ParseInt,
	quo:   bignum.Int.Quo,
	rem: func(x, y bignum.Int) (bignum.Int, error) {
		return x.Rem(y), nil
	},
	pow: func(ctx context.Context, x, y bignum.Int) (bignum.Int, error) {
		return power(ctx, x, y, bignum.NewInt(1))
	},
}

func decimalArith(scale int, round bool) arith[bignum.Decimal] {
	return arith[bignum.Decimal]{
		parse: bignum.ParseDecimal,
		quo: func(x, y bignum.Decimal) bignum.Decimal {
			if round {
				return x.DivRound(y, scale)
			}
			return x.Div(y, scale)
		},
		rem: func(x, y bignum.Decimal) (bignum.Decimal, error) {
			return bignum.Decimal{}, Error.New("remainder is not defined for decimals")
		},
		pow: func(ctx context.Context, x, y bignum.Decimal) (bignum.Decimal, error) {
			if !y.IsInt() {
				return bignum.Decimal{}, Error.New("exponent %v is not an integer", y)
			}
			e := y.IntegerPart()
			// 10^exp carries the exponent of x, so its power fails fast
			// when the exponent of the result leaves int32.
			if _, err := bignum.MustNewDecimal(bignum.NewInt(1), x.Exp()).Pow(e); err != nil {
				return bignum.Decimal{}, err
			}
			return power(ctx, x, e, bignum.NewDecimalFromInt64(1))
		},
	}
}

// power computes x^e by binary exponentiation, checking ctx before every
// squaring step.
func power[T number[T]](ctx context.Context, x T, e bignum.Int, one T) (T, error) {
	var zero T
	if e.IsNeg() {
		return zero, bignum.ExponentError.New("negative exponent %v", e)
	}
	two := bignum.NewInt(2)
	z := one
	for !e.IsZero() {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		if e.IsOdd() {
			z = z.Mul(x)
		}
		e = e.Quo(two)
		if !e.IsZero() {
			x = x.Mul(x)
		}
	}
	return z, nil
}

func evaluate[T number[T]](ctx context.Context, tokens []string, a arith[T], logger *slog.Logger) (T, error) {
	var zero T
	stack := make([]T, 0, len(tokens))
	for i, token := range tokens {
		if err := ctx.Err(); err != nil {
			return zero, Error.Wrap(err)
		}
		var err error
		switch token {
		case "+", "-", "*", "/", "%", "^":
			stack, err = applyBinary(ctx, stack, token, a, logger)
		case "neg", "abs":
			stack, err = applyUnary(ctx, stack, token, logger)
		default:
			var x T
			x, err = a.parse(token)
			if err == nil {
				stack = append(stack, x)
			}
		}
		if err != nil {
			return zero, Error.Wrap(fmt.Errorf("token %d %q: %w", i+1, token, err))
		}
	}
	if len(stack) != 1 {
		return zero, Error.New("expression leaves %d values on the stack, want 1", len(stack))
	}
	return stack[0], nil
}

func applyUnary[T number[T]](ctx context.Context, stack []T, token string, logger *slog.Logger) ([]T, error) {
	if len(stack) < 1 {
		return nil, Error.New("stack underflow")
	}
	x := stack[len(stack)-1]
	var z T
	switch token {
	case "neg":
		z = x.Neg()
	case "abs":
		z = x.Abs()
	}
	logger.DebugContext(ctx, "applied operator", "op", token, "arg", x.String(), "result", z.String())
	stack[len(stack)-1] = z
	return stack, nil
}

func applyBinary[T number[T]](ctx context.Context, stack []T, token string, a arith[T], logger *slog.Logger) ([]T, error) {
	if len(stack) < 2 {
		return nil, Error.New("stack underflow")
	}
	left := stack[len(stack)-2]
	right := stack[len(stack)-1]
	stack = stack[:len(stack)-2]

	var (
		z   T
		err error
	)
	switch token {
	case "+":
		z = left.Add(right)
	case "-":
		z = left.Sub(right)
	case "*":
		z = left.Mul(right)
	case "/":
		if right.IsZero() {
			return nil, Error.New("division by zero")
		}
		z = a.quo(left, right)
	case "%":
		if right.IsZero() {
			return nil, Error.New("division by zero")
		}
		z, err = a.rem(left, right)
	case "^":
		z, err = a.pow(ctx, left, right)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, err)
	}
	logger.DebugContext(ctx, "applied operator", "op", token, "left", left.String(), "right", right.String(), "result", z.String())
	return append(stack, z), nil
}
