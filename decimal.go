package bignum

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Decimal type is a representation of an arbitrary-precision decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal is a pair of two parameters:
//
//   - Mantissa: an arbitrary-precision integer holding all the significant digits.
//   - Exponent: a power of ten by which the mantissa is multiplied.
//
// For example, a decimal with a mantissa of 12345 and an exponent of -2
// represents the value 123.45.
//
// Decimals are always kept normalized: the mantissa of a nonzero decimal is
// never divisible by 10, and zero always has an exponent of 0.
// As a consequence, 1.23 and 1.230 are not only equal but indistinguishable,
// and the string representation of a decimal never has trailing fractional zeros.
type Decimal struct {
	mant Int   // the significant digits
	exp  int32 // the power of ten
}

// DefaultScale is the number of digits after the decimal point
// produced by [Decimal.Quo].
const DefaultScale = 10

var (
	decOne  = Decimal{mant: intOne}
	intTen  = NewInt(10)
	intFive = NewInt(5)
)

// newDecimal returns mant * 10^exp in normalized form.
func newDecimal(mant Int, exp int64) (Decimal, error) {
	if mant.IsZero() {
		return Decimal{}, nil
	}

	// Normalization
	if n := mant.trailingZeros(); n > 0 {
		mant = mant.rsh10(n)
		exp += int64(n)
	}

	if exp < math.MinInt32 || exp > math.MaxInt32 {
		return Decimal{}, ExponentError.New("%v: %v", exp, errExponentRange)
	}
	return Decimal{mant: mant, exp: int32(exp)}, nil
}

// NewDecimal returns a decimal equal to mant * 10^exp.
// NewDecimal returns an [ExponentError] if the exponent of the normalized
// result is outside the range of int32.
func NewDecimal(mant Int, exp int) (Decimal, error) {
	return newDecimal(mant, int64(exp))
}

// NewDecimalFromInt returns a decimal equal to x.
func NewDecimalFromInt(x Int) Decimal {
	d, err := newDecimal(x, 0)
	if err != nil {
		panic(fmt.Sprintf("NewDecimalFromInt(%v) failed: %v", x, err))
	}
	return d
}

// NewDecimalFromInt64 returns a decimal equal to v.
func NewDecimalFromInt64(v int64) Decimal {
	return NewDecimalFromInt(NewInt(v))
}

// ParseDecimal converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	.5
//	1.83e5
//	0.22E-9
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// Unlike some other formats, "5." is rejected: a decimal point must be
// followed by at least one digit.
//
// ParseDecimal returns a [ParseError] if the string does not match the grammar,
// and an [ExponentError] if the exponent of the result is outside the range of int32.
func ParseDecimal(s string) (Decimal, error) {
	var (
		pos       int
		width     int
		neg       bool
		intStart  int
		intEnd    int
		fracStart int
		fracEnd   int
		eneg      bool
		exp       int64
		hasexp    bool
		hase      bool
	)

	width = len(s)
	if width == 0 {
		return Decimal{}, ParseError.New("empty string")
	}

	// Sign
	switch s[pos] {
	case '-':
		neg = true
		pos++
	case '+':
		pos++
	}
	if pos == width {
		return Decimal{}, ParseError.New("no digits in %q", s)
	}

	// Integer
	intStart = pos
	for pos < width && isDigit(s[pos]) {
		pos++
	}
	intEnd = pos

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		fracStart = pos
		for pos < width && isDigit(s[pos]) {
			pos++
		}
		fracEnd = pos
		if fracStart == fracEnd {
			return Decimal{}, ParseError.New("decimal point without fractional digits in %q", s)
		}
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hase = true
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		// Integer
		for pos < width && isDigit(s[pos]) {
			// Saturate, newDecimal rejects anything this large
			if exp < maxParseExp {
				exp = exp*10 + int64(s[pos]-'0')
			}
			hasexp = true
			pos++
		}
	}

	switch {
	case pos != width && s[pos] == '.':
		return Decimal{}, ParseError.New("multiple decimal points in %q", s)
	case pos != width:
		return Decimal{}, ParseError.New("invalid character %q in %q", s[pos], s)
	case intStart == intEnd && fracStart == fracEnd:
		return Decimal{}, ParseError.New("no digits in %q", s)
	case hase && !hasexp:
		return Decimal{}, ParseError.New("no exponent digits in %q", s)
	}

	if eneg {
		exp = -exp
	}
	exp -= int64(fracEnd - fracStart)

	digits := strings.TrimLeft(s[intStart:intEnd]+s[fracStart:fracEnd], "0")
	d, err := newDecimal(newInt(neg, parseMag(digits)), exp)
	if err != nil {
		return Decimal{}, ExponentError.New("exponent in %q: %v", s, errExponentRange)
	}
	return d, nil
}

// maxParseExp bounds the literal exponent accumulated by [ParseDecimal],
// far above the int32 range and far below overflow of int64.
const maxParseExp = 1 << 59

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a decimal value.
// The returned string does not use scientific or engineering notation and is
// formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	var (
		b      strings.Builder
		digits string
		exp    int
	)

	digits = d.mant.Abs().String()
	exp = int(d.exp)

	// Sign
	if d.IsNeg() {
		b.WriteByte('-')
	}

	switch {
	// Integer
	case exp >= 0:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", exp))
	// Decimal point inside the digits
	case -exp < len(digits):
		p := len(digits) + exp
		b.WriteString(digits[:p])
		b.WriteByte('.')
		b.WriteString(digits[p:])
	// Leading zeros
	default:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -exp-len(digits)))
		b.WriteString(digits)
	}

	return b.String()
}

// Mant returns the mantissa of d.
func (d Decimal) Mant() Int {
	return d.mant
}

// Exp returns the exponent of d.
func (d Decimal) Exp() int {
	return int(d.exp)
}

// Prec returns the number of digits in the mantissa.
func (d Decimal) Prec() int {
	return d.mant.digits()
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	return d.mant.Sign()
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.mant.IsZero()
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.mant.IsNeg()
}

// IsInt returns true if the fractional part of d is zero.
func (d Decimal) IsInt() bool {
	return d.exp >= 0
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	return Decimal{mant: d.mant.Neg(), exp: d.exp}
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	return Decimal{mant: d.mant.Abs(), exp: d.exp}
}

// align returns the mantissas of d and e rescaled to their smaller exponent.
func align(d, e Decimal) (dmant, emant Int, exp int64) {
	switch {
	case d.exp < e.exp:
		return d.mant, e.mant.lsh10(int(e.exp - d.exp)), int64(d.exp)
	case e.exp < d.exp:
		return d.mant.lsh10(int(d.exp - e.exp)), e.mant, int64(e.exp)
	}
	return d.mant, e.mant, int64(d.exp)
}

// Cmp compares decimals and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	}

	// General case
	dmant, emant, _ := align(d, e)
	return dmant.Cmp(emant)
}

// Equal returns true if d == e.
func (d Decimal) Equal(e Decimal) bool {
	// Normalized decimals are equal only if their parts are equal
	return d.exp == e.exp && d.mant.Equal(e.mant)
}

// Less returns true if d < e.
func (d Decimal) Less(e Decimal) bool {
	return d.Cmp(e) < 0
}

// Add returns the exact sum of d and e.
//
// Add panics if the exponent of the result is outside the range of int32.
func (d Decimal) Add(e Decimal) Decimal {
	dmant, emant, exp := align(d, e)
	f, err := newDecimal(dmant.Add(emant), exp)
	if err != nil {
		panic(fmt.Sprintf("%v.Add(%v) failed: %v", d, e, err))
	}
	return f
}

// Sub returns the exact difference of d and e.
//
// Sub panics if the exponent of the result is outside the range of int32.
func (d Decimal) Sub(e Decimal) Decimal {
	dmant, emant, exp := align(d, e)
	f, err := newDecimal(dmant.Sub(emant), exp)
	if err != nil {
		panic(fmt.Sprintf("%v.Sub(%v) failed: %v", d, e, err))
	}
	return f
}

// Mul returns the exact product of d and e.
//
// Mul panics if the exponent of the result is outside the range of int32.
func (d Decimal) Mul(e Decimal) Decimal {
	f, err := newDecimal(d.mant.Mul(e.mant), int64(d.exp)+int64(e.exp))
	if err != nil {
		panic(fmt.Sprintf("%v.Mul(%v) failed: %v", d, e, err))
	}
	return f
}

// Div returns d / e truncated toward zero to n digits after the decimal point.
// The result is normalized, so trailing zeros are not kept.
// Also see methods [Decimal.Quo] and [Decimal.DivRound].
//
// Div panics if:
//   - e is zero;
//   - n is negative or greater than [math.MaxInt32];
//   - the exponent of the result is outside the range of int32.
func (d Decimal) Div(e Decimal, n int) Decimal {
	f, err := d.div(e, n)
	if err != nil {
		panic(fmt.Sprintf("%v.Div(%v, %v) failed: %v", d, e, n, err))
	}
	return f
}

// div computes trunc(d / e * 10^n) * 10^-n without aligning the operands,
// which gives the same quotient as dividing the aligned mantissas.
func (d Decimal) div(e Decimal, n int) (Decimal, error) {
	switch {
	case e.IsZero():
		return Decimal{}, errDivisionByZero
	case n < 0:
		return Decimal{}, errNegativeScale
	case n > math.MaxInt32:
		return Decimal{}, errExponentRange
	}

	var q Int
	shift := int64(d.exp) - int64(e.exp) + int64(n)
	if shift >= 0 {
		q = d.mant.lsh10(int(shift)).Quo(e.mant)
	} else {
		q = d.mant.Quo(e.mant.lsh10(int(-shift)))
	}
	return newDecimal(q, -int64(n))
}

// Quo returns d / e truncated to [DefaultScale] digits after the decimal point.
//
// Quo panics if e is zero.
func (d Decimal) Quo(e Decimal) Decimal {
	f, err := d.div(e, DefaultScale)
	if err != nil {
		panic(fmt.Sprintf("%v.Quo(%v) failed: %v", d, e, err))
	}
	return f
}

// DivRound returns d / e rounded to n digits after the decimal point.
// Halves are rounded away from zero, so 0.05 rounds to 0.1 and -0.05 to -0.1.
// Also see method [Decimal.Div].
//
// DivRound panics if:
//   - e is zero;
//   - n is negative or not less than [math.MaxInt32];
//   - the exponent of the result is outside the range of int32.
func (d Decimal) DivRound(e Decimal, n int) Decimal {
	f, err := d.divRound(e, n)
	if err != nil {
		panic(fmt.Sprintf("%v.DivRound(%v, %v) failed: %v", d, e, n, err))
	}
	return f
}

func (d Decimal) divRound(e Decimal, n int) (Decimal, error) {
	if n >= math.MaxInt32 {
		return Decimal{}, errExponentRange
	}

	// One extra digit decides the rounding
	f, err := d.div(e, n+1)
	if err != nil {
		return Decimal{}, err
	}
	q, r := f.mant.lsh10(int(f.exp)+n+1).QuoRem(intTen)

	// Half-up on the magnitude
	if r.Abs().Cmp(intFive) >= 0 {
		if r.IsNeg() {
			q = q.Sub(intOne)
		} else {
			q = q.Add(intOne)
		}
	}
	return newDecimal(q, -int64(n))
}

// Pow returns d raised to the power of e.
// Any value raised to the power of 0, including 0 itself, is 1.
//
// Pow returns an [ExponentError] if e is negative or if the exponent of
// the result is outside the range of int32.
func (d Decimal) Pow(e Int) (Decimal, error) {
	switch {
	case e.IsNeg():
		return Decimal{}, ExponentError.New("negative exponent %v", e)
	case e.IsZero():
		return decOne, nil
	case d.IsZero():
		return Decimal{}, nil
	}

	// Exponent range
	// The mantissa is not divisible by 10 and neither is its power,
	// so the exponent of the result is exactly d.exp * e.
	var exp int64
	if d.exp != 0 {
		k, err := e.Int64()
		if err != nil || k > math.MaxInt32 {
			return Decimal{}, ExponentError.New("%v.Pow(%v): %v", d, e, errExponentRange)
		}
		exp = int64(d.exp) * k
		if exp < math.MinInt32 || exp > math.MaxInt32 {
			return Decimal{}, ExponentError.New("%v.Pow(%v): %v", d, e, errExponentRange)
		}
	}

	return newDecimal(d.mant.powUnsigned(e), exp)
}

// IntegerPart returns the integer part of d truncated toward zero.
func (d Decimal) IntegerPart() Int {
	if d.exp >= 0 {
		return d.mant.lsh10(int(d.exp))
	}
	return d.mant.rsh10(int(-d.exp))
}

// fracDigits returns the number of digits after the decimal point.
func (d Decimal) fracDigits() int {
	if d.exp >= 0 {
		return 0
	}
	return int(-d.exp)
}

// WeakEqual returns true if d and e have equal integer parts and
// their fractional parts agree in the first n digits after the decimal point.
// The fractional parts are truncated, not rounded, so 1.2345 and 1.2346
// are weakly equal for n = 3 but not for n = 4.
//
// WeakEqual returns false if n is negative.
func (d Decimal) WeakEqual(e Decimal, n int) bool {
	switch {
	case n < 0:
		return false
	case d.Equal(e):
		return true
	}

	// Integer parts
	di, ei := d.IntegerPart(), e.IntegerPart()
	if !di.Equal(ei) {
		return false
	}

	// Fractional parts
	df := d.Sub(NewDecimalFromInt(di))
	ef := e.Sub(NewDecimalFromInt(ei))
	if n >= max(df.fracDigits(), ef.fracDigits()) {
		return df.Equal(ef)
	}
	return df.shift(n).IntegerPart().Equal(ef.shift(n).IntegerPart())
}

// shift returns d * 10^n as a decimal, n must keep the exponent within int32.
func (d Decimal) shift(n int) Decimal {
	return Decimal{mant: d.mant, exp: d.exp + int32(n)}
}

// AddInt returns d + x.
func (d Decimal) AddInt(x Int) Decimal {
	return d.Add(NewDecimalFromInt(x))
}

// SubInt returns d - x.
func (d Decimal) SubInt(x Int) Decimal {
	return d.Sub(NewDecimalFromInt(x))
}

// MulInt returns d * x.
func (d Decimal) MulInt(x Int) Decimal {
	return d.Mul(NewDecimalFromInt(x))
}

// QuoInt returns d / x truncated to [DefaultScale] digits after the decimal point.
//
// QuoInt panics if x is zero.
func (d Decimal) QuoInt(x Int) Decimal {
	return d.Quo(NewDecimalFromInt(x))
}

// Float64 returns the nearest float64 value for d.
// The result is false if d is too large to be represented by float64.
func (d Decimal) Float64() (float64, bool) {
	f, _ := strconv.ParseFloat(d.mant.String()+"e"+strconv.Itoa(int(d.exp)), 64)
	return f, !math.IsInf(f, 0)
}

// Hash returns a hash of d computed from the string forms of
// its mantissa and exponent.
// Equal decimals have equal hashes.
func (d Decimal) Hash() uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(d.mant.String())
	_, _ = h.WriteString("e")
	_, _ = h.WriteString(strconv.Itoa(int(d.exp)))
	return h.Sum64()
}
