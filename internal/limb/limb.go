// Package limb implements unsigned arithmetic on magnitudes stored as
// little-endian sequences of base 10^9 limbs.
//
// Every function accepts a nil or empty Nat as zero and returns a trimmed,
// freshly allocated result that never aliases its arguments.
package limb

import (
	"math"
	"strconv"
	"strings"
)

const (
	// Radix is the base of a single limb.
	Radix = 1_000_000_000
	// Digits is the number of decimal digits held by a full limb.
	Digits = 9
)

// Nat is an unsigned magnitude, least significant limb first.
// In trimmed form the most significant limb is nonzero, except for zero,
// which is exactly one zero limb.
type Nat []uint32

// pow10 is a cache of powers of 10 that fit in a limb, where pow10[x] = 10^x.
var pow10 = [Digits + 1]uint32{
	1,             // 10^0
	10,            // 10^1
	100,           // 10^2
	1_000,         // 10^3
	10_000,        // 10^4
	100_000,       // 10^5
	1_000_000,     // 10^6
	10_000_000,    // 10^7
	100_000_000,   // 10^8
	1_000_000_000, // 10^9
}

// FromUint64 returns the magnitude of x.
func FromUint64(x uint64) Nat {
	if x == 0 {
		return Nat{0}
	}
	z := make(Nat, 0, 3)
	for x > 0 {
		z = append(z, uint32(x%Radix))
		x /= Radix
	}
	return z
}

// Trim removes most significant zero limbs from a copy of x.
// The result always has at least one limb.
func Trim(x Nat) Nat {
	n := len(x)
	for n > 1 && x[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Nat{0}
	}
	z := make(Nat, n)
	copy(z, x[:n])
	return z
}

// norm returns x without most significant zero limbs, sharing storage.
func norm(x Nat) Nat {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

// IsZero reports whether x is zero.
func (x Nat) IsZero() bool {
	return len(norm(x)) == 0
}

// IsOdd reports whether x is odd.
// Radix is even, so the parity of x is the parity of its lowest limb.
func (x Nat) IsOdd() bool {
	return len(x) > 0 && x[0]&1 == 1
}

// Uint64 returns x as uint64.
// The result is false if x does not fit.
func (x Nat) Uint64() (uint64, bool) {
	x = norm(x)
	if len(x) > 3 {
		return 0, false
	}
	var z uint64
	for i := len(x) - 1; i >= 0; i-- {
		// z * Radix + x[i] <= MaxUint64
		if z > (math.MaxUint64-uint64(x[i]))/Radix {
			return 0, false
		}
		z = z*Radix + uint64(x[i])
	}
	return z, true
}

// Digits returns the number of decimal digits in x.
// Zero has one digit.
func (x Nat) Digits() int {
	x = norm(x)
	if len(x) == 0 {
		return 1
	}
	top := x[len(x)-1]
	n := 1
	for n < Digits && top >= pow10[n] {
		n++
	}
	return (len(x)-1)*Digits + n
}

// String returns the decimal digits of x without leading zeros.
func (x Nat) String() string {
	x = norm(x)
	if len(x) == 0 {
		return "0"
	}
	var b strings.Builder
	b.Grow(len(x) * Digits)
	b.WriteString(strconv.FormatUint(uint64(x[len(x)-1]), 10))
	var buf [Digits]byte
	for i := len(x) - 2; i >= 0; i-- {
		v := x[i]
		for j := Digits - 1; j >= 0; j-- {
			buf[j] = byte('0' + v%10)
			v /= 10
		}
		b.Write(buf[:])
	}
	return b.String()
}

// Cmp compares x and y and returns -1, 0 or +1.
func Cmp(x, y Nat) int {
	x, y = norm(x), norm(y)
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// Add calculates x + y.
func Add(x, y Nat) Nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(Nat, len(x)+1)
	var carry uint32
	for i := range x {
		s := x[i] + carry
		if i < len(y) {
			s += y[i]
		}
		if s >= Radix {
			s -= Radix
			carry = 1
		} else {
			carry = 0
		}
		z[i] = s
	}
	z[len(x)] = carry
	return Trim(z)
}

// Sub calculates x - y.
// It panics if x < y.
func Sub(x, y Nat) Nat {
	x, y = norm(x), norm(y)
	if len(x) < len(y) {
		panic("limb: Sub underflow")
	}
	z := make(Nat, len(x))
	var borrow int64
	for i := range x {
		d := int64(x[i]) - borrow
		if i < len(y) {
			d -= int64(y[i])
		}
		if d < 0 {
			d += Radix
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = uint32(d)
	}
	if borrow != 0 {
		panic("limb: Sub underflow")
	}
	return Trim(z)
}

// Mul calculates x * y.
func Mul(x, y Nat) Nat {
	x, y = norm(x), norm(y)
	if len(x) == 0 || len(y) == 0 {
		return Nat{0}
	}
	z := make(Nat, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y {
			// (Radix-1)^2 + 2*(Radix-1) < Radix^2 < 2^64
			t := uint64(xi)*uint64(yj) + uint64(z[i+j]) + carry
			z[i+j] = uint32(t % Radix)
			carry = t / Radix
		}
		for k := i + len(y); carry > 0; k++ {
			t := uint64(z[k]) + carry
			z[k] = uint32(t % Radix)
			carry = t / Radix
		}
	}
	return Trim(z)
}

// MulWord calculates x * w.
func MulWord(x Nat, w uint32) Nat {
	return Trim(mulWord(x, w))
}

// mulWord calculates x * w keeping one extra limb for the carry.
// The result is not trimmed.
func mulWord(x Nat, w uint32) Nat {
	z := make(Nat, len(x)+1)
	var carry uint64
	for i, xi := range x {
		t := uint64(xi)*uint64(w) + carry
		z[i] = uint32(t % Radix)
		carry = t / Radix
	}
	z[len(x)] = uint32(carry)
	return z
}

// DivWord calculates x / w and x % w.
// It panics if w is zero.
func DivWord(x Nat, w uint32) (Nat, uint32) {
	if w == 0 {
		panic("limb: division by zero")
	}
	x = norm(x)
	if len(x) == 0 {
		return Nat{0}, 0
	}
	q := make(Nat, len(x))
	var r uint64
	for i := len(x) - 1; i >= 0; i-- {
		r = r*Radix + uint64(x[i])
		q[i] = uint32(r / uint64(w))
		r %= uint64(w)
	}
	return Trim(q), uint32(r)
}

// DivMod calculates x / y and x % y using Knuth's algorithm D.
// It panics if y is zero.
func DivMod(x, y Nat) (q, r Nat) {
	u, v := norm(x), norm(y)
	switch {
	case len(v) == 0:
		panic("limb: division by zero")
	case Cmp(u, v) < 0:
		return Nat{0}, Trim(u)
	case len(v) == 1:
		q, w := DivWord(u, v[0])
		return q, Nat{w}
	}

	n := len(v)
	m := len(u) - n

	// Normalization
	d := uint32(Radix / (uint64(v[n-1]) + 1))
	un := mulWord(u, d)
	vn := mulWord(v, d)[:n]
	vTop, vNext := uint64(vn[n-1]), uint64(vn[n-2])

	q = make(Nat, m+1)
	for j := m; j >= 0; j-- {
		// Trial quotient digit
		num := uint64(un[j+n])*Radix + uint64(un[j+n-1])
		qhat, rhat := num/vTop, num%vTop
		for qhat >= Radix || qhat*vNext > rhat*Radix+uint64(un[j+n-2]) {
			qhat--
			rhat += vTop
			if rhat >= Radix {
				break
			}
		}

		// Multiply and subtract
		var carry uint64
		var borrow int64
		for i := 0; i < n; i++ {
			p := qhat*uint64(vn[i]) + carry
			carry = p / Radix
			t := int64(un[i+j]) - int64(p%Radix) - borrow
			if t < 0 {
				t += Radix
				borrow = 1
			} else {
				borrow = 0
			}
			un[i+j] = uint32(t)
		}
		t := int64(un[j+n]) - int64(carry) - borrow

		// Add back
		if t < 0 {
			un[j+n] = uint32(t + Radix)
			qhat--
			carry = 0
			for i := 0; i < n; i++ {
				s := uint64(un[i+j]) + uint64(vn[i]) + carry
				un[i+j] = uint32(s % Radix)
				carry = s / Radix
			}
			un[j+n] = uint32((uint64(un[j+n]) + carry) % Radix)
		} else {
			un[j+n] = uint32(t)
		}
		q[j] = uint32(qhat)
	}

	// Denormalization
	r, _ = DivWord(un[:n], d)
	return Trim(q), r
}

// Pow10 returns 10^n.
func Pow10(n int) Nat {
	return Lsh10(Nat{1}, n)
}

// Lsh10 calculates x * 10^n.
// It panics if n is negative.
func Lsh10(x Nat, n int) Nat {
	if n < 0 {
		panic("limb: negative shift")
	}
	x = norm(x)
	if len(x) == 0 {
		return Nat{0}
	}
	z := make(Nat, n/Digits, n/Digits+len(x)+1)
	z = append(z, mulWord(x, pow10[n%Digits])...)
	return Trim(z)
}

// Rsh10 calculates x / 10^n, truncating the result.
// It panics if n is negative.
func Rsh10(x Nat, n int) Nat {
	if n < 0 {
		panic("limb: negative shift")
	}
	x = norm(x)
	if n/Digits >= len(x) {
		return Nat{0}
	}
	q, _ := DivWord(x[n/Digits:], pow10[n%Digits])
	return q
}

// TrailingZeros returns the number of trailing decimal zeros in x.
// Zero has no trailing zeros.
func TrailingZeros(x Nat) int {
	x = norm(x)
	if len(x) == 0 {
		return 0
	}
	n := 0
	i := 0
	for x[i] == 0 {
		n += Digits
		i++
	}
	for w := x[i]; w%10 == 0; w /= 10 {
		n++
	}
	return n
}
