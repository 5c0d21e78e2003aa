package bignum

import "fmt"

// MustParseInt is like [ParseInt] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParseInt(s string) Int {
	x, err := ParseInt(s)
	if err != nil {
		panic(fmt.Sprintf("ParseInt(%q) failed: %v", s, err))
	}
	return x
}

// MustParseDecimal is like [ParseDecimal] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(fmt.Sprintf("ParseDecimal(%q) failed: %v", s, err))
	}
	return d
}

// MustNewDecimal is like [NewDecimal] but panics if the exponent is out of range.
func MustNewDecimal(mant Int, exp int) Decimal {
	d, err := NewDecimal(mant, exp)
	if err != nil {
		panic(fmt.Sprintf("NewDecimal(%v, %v) failed: %v", mant, exp, err))
	}
	return d
}

// MustPow is like [Int.Pow] but panics if computing error.
func (x Int) MustPow(e Int) Int {
	z, err := x.Pow(e)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", x, err))
	}
	return z
}

// MustPow is like [Decimal.Pow] but panics if computing error.
func (d Decimal) MustPow(e Int) Decimal {
	f, err := d.Pow(e)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", d, err))
	}
	return f
}
