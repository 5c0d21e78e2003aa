package bignum

import (
	"errors"

	"github.com/zeebo/errs"
)

var (
	// ParseError is the class of errors returned for malformed literals.
	ParseError = errs.Class("parse")
	// RangeError is the class of errors returned when a value does not fit
	// the requested machine type.
	RangeError = errs.Class("range")
	// ExponentError is the class of errors returned for negative powers and
	// for decimal exponents outside the int32 range.
	ExponentError = errs.Class("exponent")
)

var (
	errDivisionByZero = errors.New("division by zero")
	errNegativeScale  = errors.New("negative scale")
	errExponentRange  = errors.New("exponent out of range")
)
