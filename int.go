package bignum

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/govalues/bignum/internal/limb"
)

// Int represents an arbitrary-precision signed integer.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines,
// every operation returns a new value and never modifies its operands.
//
// There is no negative zero: the sign is always cleared when the magnitude is zero.
type Int struct {
	neg bool     // indicates whether the integer is negative
	mag limb.Nat // the magnitude in base 10^9 limbs, nil for zero
}

var (
	intOne = NewInt(1)
	intTwo = NewInt(2)
)

func newInt(neg bool, mag limb.Nat) Int {
	if mag.IsZero() {
		return Int{}
	}
	return Int{neg: neg, mag: mag}
}

// NewInt returns an integer equal to v.
func NewInt(v int64) Int {
	if v == math.MinInt64 {
		return newInt(true, limb.FromUint64(1<<63))
	}
	if v < 0 {
		return newInt(true, limb.FromUint64(uint64(-v)))
	}
	return newInt(false, limb.FromUint64(uint64(v)))
}

// NewIntFromUint64 returns an integer equal to v.
func NewIntFromUint64(v uint64) Int {
	return newInt(false, limb.FromUint64(v))
}

// ParseInt converts a string to an integer.
// The input string must match the following grammar:
//
//	digits  ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	integer ::= ['-'] digits
//
// Leading zeros are ignored and "-0" is parsed as 0.
// ParseInt returns a [ParseError] if the string is empty, has no digits
// after the sign, or contains any other character.
func ParseInt(s string) (Int, error) {
	var (
		pos   int
		width int
		neg   bool
	)

	width = len(s)
	if width == 0 {
		return Int{}, ParseError.New("empty string")
	}

	// Sign
	if s[pos] == '-' {
		neg = true
		pos++
	}
	if pos == width {
		return Int{}, ParseError.New("no digits in %q", s)
	}

	// Digits
	for i := pos; i < width; i++ {
		if s[i] < '0' || s[i] > '9' {
			return Int{}, ParseError.New("invalid digit %q in %q", s[i], s)
		}
	}

	// Leading zeros
	for pos < width-1 && s[pos] == '0' {
		pos++
	}

	return newInt(neg, parseMag(s[pos:])), nil
}

// parseMag converts a string of decimal digits to a magnitude,
// taking up to 9 digits per limb starting from the least significant end.
func parseMag(digits string) limb.Nat {
	mag := make(limb.Nat, 0, (len(digits)+limb.Digits-1)/limb.Digits)
	for end := len(digits); end > 0; end -= limb.Digits {
		start := max(end-limb.Digits, 0)
		var w uint32
		for i := start; i < end; i++ {
			w = w*10 + uint32(digits[i]-'0')
		}
		mag = append(mag, w)
	}
	return limb.Trim(mag)
}

// String method implements the [fmt.Stringer] interface and returns
// the canonical decimal representation of x, with a leading '-' for
// negative values and without leading zeros.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	if x.neg {
		return "-" + x.mag.String()
	}
	return x.mag.String()
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x = 0
//	+1 if x > 0
func (x Int) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.mag.IsZero():
		return 0
	}
	return 1
}

// IsZero returns true if x == 0.
func (x Int) IsZero() bool {
	return x.mag.IsZero()
}

// IsNeg returns true if x < 0.
func (x Int) IsNeg() bool {
	return x.neg
}

// IsOdd returns true if x is not divisible by 2.
func (x Int) IsOdd() bool {
	return x.mag.IsOdd()
}

// Neg returns -x.
func (x Int) Neg() Int {
	return newInt(!x.neg, x.mag)
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return newInt(false, x.mag)
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x = y
//	+1 if x > y
func (x Int) Cmp(y Int) int {
	// Special case: different signs
	switch {
	case y.Sign() < x.Sign():
		return 1
	case x.Sign() < y.Sign():
		return -1
	}

	// General case
	r := limb.Cmp(x.mag, y.mag)
	if x.neg {
		return -r
	}
	return r
}

// Equal returns true if x == y.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Less returns true if x < y.
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return newInt(x.neg, limb.Add(x.mag, y.mag))
	}
	switch limb.Cmp(x.mag, y.mag) {
	case 1:
		return newInt(x.neg, limb.Sub(x.mag, y.mag))
	case -1:
		return newInt(y.neg, limb.Sub(y.mag, x.mag))
	}
	return Int{}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return newInt(x.neg != y.neg, limb.Mul(x.mag, y.mag))
}

// QuoRem returns the quotient and remainder of x / y.
// The quotient is truncated toward zero and the remainder has the sign of x,
// so that q * y + r == x and |r| < |y|.
//
// QuoRem panics if y is zero.
func (x Int) QuoRem(y Int) (q, r Int) {
	if y.IsZero() {
		panic(fmt.Sprintf("%v.QuoRem(%v) failed: %v", x, y, errDivisionByZero))
	}
	return x.quoRem(y)
}

func (x Int) quoRem(y Int) (q, r Int) {
	qmag, rmag := limb.DivMod(x.mag, y.mag)
	return newInt(x.neg != y.neg, qmag), newInt(x.neg, rmag)
}

// Quo returns x / y truncated toward zero.
// Also see method [Int.QuoRem].
//
// Quo panics if y is zero.
func (x Int) Quo(y Int) Int {
	if y.IsZero() {
		panic(fmt.Sprintf("%v.Quo(%v) failed: %v", x, y, errDivisionByZero))
	}
	q, _ := x.quoRem(y)
	return q
}

// Rem returns the remainder of x / y, which has the sign of x.
// Also see method [Int.QuoRem].
//
// Rem panics if y is zero.
func (x Int) Rem(y Int) Int {
	if y.IsZero() {
		panic(fmt.Sprintf("%v.Rem(%v) failed: %v", x, y, errDivisionByZero))
	}
	_, r := x.quoRem(y)
	return r
}

// Pow returns x raised to the power of e.
// Any value raised to the power of 0, including 0 itself, is 1.
//
// Pow returns an [ExponentError] if e is negative.
func (x Int) Pow(e Int) (Int, error) {
	switch {
	case e.neg:
		return Int{}, ExponentError.New("negative exponent %v", e)
	case e.IsZero():
		return intOne, nil
	case x.IsZero():
		return Int{}, nil
	}
	return x.powUnsigned(e), nil
}

// powUnsigned computes x^e by binary exponentiation.
// It panics if e is negative.
func (x Int) powUnsigned(e Int) Int {
	if e.neg {
		panic(fmt.Sprintf("%v.powUnsigned(%v) failed: negative exponent", x, e))
	}
	z, b := intOne, x
	for !e.IsZero() {
		if e.IsOdd() {
			z = z.Mul(b)
		}
		e = e.Quo(intTwo)
		if !e.IsZero() {
			b = b.Mul(b)
		}
	}
	return z
}

// Uint64 returns x as uint64.
// Uint64 returns a [RangeError] if x is negative or greater than [math.MaxUint64].
func (x Int) Uint64() (uint64, error) {
	if x.neg {
		return 0, RangeError.New("%v is negative", x)
	}
	u, ok := x.mag.Uint64()
	if !ok {
		return 0, RangeError.New("%v overflows uint64", x)
	}
	return u, nil
}

// Int64 returns x as int64.
// Int64 returns a [RangeError] if x is outside the range of int64.
func (x Int) Int64() (int64, error) {
	u, ok := x.mag.Uint64()
	switch {
	case !ok:
		return 0, RangeError.New("%v overflows int64", x)
	case x.neg && u == 1<<63:
		return math.MinInt64, nil
	case u > math.MaxInt64:
		return 0, RangeError.New("%v overflows int64", x)
	case x.neg:
		return -int64(u), nil
	}
	return int64(u), nil
}

// Float64 returns the nearest float64 value for x.
// The result is false if x is too large to be represented by float64.
func (x Int) Float64() (float64, bool) {
	f, _ := strconv.ParseFloat(x.String(), 64)
	return f, !math.IsInf(f, 0)
}

// Hash returns a hash of x.
// Equal integers have equal hashes.
func (x Int) Hash() uint64 {
	return xxhash.Sum64String(x.String())
}

// digits returns the number of decimal digits in |x|.
func (x Int) digits() int {
	return x.mag.Digits()
}

// lsh10 returns x * 10^n.
func (x Int) lsh10(n int) Int {
	return newInt(x.neg, limb.Lsh10(x.mag, n))
}

// rsh10 returns x / 10^n truncated toward zero.
func (x Int) rsh10(n int) Int {
	return newInt(x.neg, limb.Rsh10(x.mag, n))
}

// trailingZeros returns the number of trailing decimal zeros in x.
func (x Int) trailingZeros() int {
	return limb.TrailingZeros(x.mag)
}
