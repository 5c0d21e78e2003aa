package bignum

import (
	"bytes"
	"database/sql/driver"
	"strconv"
)

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [ParseDecimal].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = ParseDecimal(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON implements [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers are accepted, null leaves d unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	return d.UnmarshalText(unquote(data))
}

// MarshalBinary implements [encoding.BinaryMarshaler] interface.
// The encoding is the binary form of the mantissa, followed by the binary
// form of the exponent, followed by a single byte with the length of the
// exponent block.
// Also see method [Int.MarshalBinary].
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (d Decimal) MarshalBinary() ([]byte, error) {
	mant, err := d.mant.MarshalBinary()
	if err != nil {
		return nil, err
	}
	exp, err := NewInt(int64(d.exp)).MarshalBinary()
	if err != nil {
		return nil, err
	}
	data := make([]byte, 0, len(mant)+len(exp)+1)
	data = append(data, mant...)
	data = append(data, exp...)
	data = append(data, byte(len(exp)))
	return data, nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler] interface.
// Also see method [Decimal.MarshalBinary].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (d *Decimal) UnmarshalBinary(data []byte) error {
	if len(data) < 3 {
		return ParseError.New("binary decimal too short: %d bytes", len(data))
	}
	n := int(data[len(data)-1])
	if n < 1 || n > 5 || len(data) < n+2 {
		return ParseError.New("invalid exponent length %d", n)
	}
	split := len(data) - 1 - n

	var mant, exp Int
	if err := mant.UnmarshalBinary(data[:split]); err != nil {
		return err
	}
	if err := exp.UnmarshalBinary(data[split : len(data)-1]); err != nil {
		return err
	}
	e, err := exp.Int64()
	if err != nil {
		return ExponentError.Wrap(err)
	}

	*d, err = newDecimal(mant, e)
	return err
}

// Scan implements the [sql.Scanner] interface.
// It accepts string, []byte, int64 and float64 values.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = ParseDecimal(value)
	case []byte:
		*d, err = ParseDecimal(string(bytes.TrimSpace(value)))
	case int64:
		*d = NewDecimalFromInt64(value)
	case float64:
		*d, err = ParseDecimal(strconv.FormatFloat(value, 'g', -1, 64))
	default:
		err = ParseError.New("cannot scan %T into Decimal", value)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}
