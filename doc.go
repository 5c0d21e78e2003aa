/*
Package bignum implements immutable arbitrary-precision integers and
decimal numbers with exact arithmetic.

# Representation

[Int] is a sign and a magnitude stored as a sequence of base 10^9 limbs,
least significant limb first.
Base 10^9 makes conversion to and from decimal strings a matter of
splitting digits into groups of nine, and a product of two limbs still
fits in 64 bits.
There is no negative zero.

[Decimal] is a pair of an [Int] mantissa and an int32 exponent, and its
numerical value is calculated as:

  - Mantissa * 10^Exponent

Decimals are always normalized: trailing zeros of the mantissa are moved
into the exponent, and zero has an exponent of 0.
For example, 1, 1.0, and 1.00 all have the same representation with a
mantissa of 1 and an exponent of 0.

# Operations

Addition, subtraction and multiplication are exact for both types.

[Int.Quo] and [Int.Rem] truncate toward zero, so the remainder has the sign
of the dividend and (x / y) * y + x % y == x holds for every nonzero y:

	 7 /  2 =  3,   7 %  2 =  1
	-7 /  2 = -3,  -7 %  2 = -1
	 7 / -2 = -3,   7 % -2 =  1

Decimal division cannot be exact in general, so it takes the number of
digits after the decimal point:

  - [Decimal.Div] truncates toward zero.
  - [Decimal.DivRound] rounds half away from zero.
  - [Decimal.Quo] truncates to [DefaultScale] digits.

# Errors

Malformed input and values outside a requested range are reported as errors
of the classes [ParseError], [RangeError] and [ExponentError].
Use the Has method of a class to check the kind of an error:

	if bignum.ParseError.Has(err) {
		...
	}

Division by zero and a negative number of fractional digits are programming
errors, and the corresponding methods panic.
*/
package bignum
