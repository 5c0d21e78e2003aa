package bignum

import (
	"bytes"
	"database/sql/driver"
	"math/big"
)

// NewIntFromBig returns an integer equal to b.
func NewIntFromBig(b *big.Int) Int {
	if b == nil || b.Sign() == 0 {
		return Int{}
	}
	return newInt(b.Sign() < 0, parseMag(new(big.Int).Abs(b).String()))
}

// Big returns x as [big.Int].
func (x Int) Big() *big.Int {
	z, _ := new(big.Int).SetString(x.String(), 10)
	return z
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [ParseInt].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Int) UnmarshalText(text []byte) error {
	var err error
	*x, err = ParseInt(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Int.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalJSON implements [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers are accepted, null leaves x unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (x *Int) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	return x.UnmarshalText(unquote(data))
}

// unquote removes the surrounding double quotes of a JSON string, if any.
func unquote(data []byte) []byte {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		return data[1 : len(data)-1]
	}
	return data
}

// MarshalBinary implements [encoding.BinaryMarshaler] interface.
// The magnitude is encoded as big-endian bytes shifted left by one bit,
// with the lowest bit holding the sign.
// Zero is encoded as a single zero byte.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (x Int) MarshalBinary() ([]byte, error) {
	i := new(big.Int).Abs(x.Big())

	i.Lsh(i, 1)
	if x.neg {
		i.SetBit(i, 0, 1)
	}

	data := i.Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}
	return data, nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler] interface.
// Also see method [Int.MarshalBinary].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (x *Int) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return ParseError.New("empty binary integer")
	}
	i := new(big.Int).SetBytes(data)

	neg := i.Bit(0) == 1
	i.Rsh(i, 1)
	if neg && i.Sign() == 0 {
		return ParseError.New("negative zero in binary integer")
	}

	*x = newInt(neg, parseMag(i.String()))
	return nil
}

// Scan implements the [sql.Scanner] interface.
// It accepts string, []byte, int64 and uint64 values.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (x *Int) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*x, err = ParseInt(value)
	case []byte:
		*x, err = ParseInt(string(bytes.TrimSpace(value)))
	case int64:
		*x = NewInt(value)
	case uint64:
		*x = NewIntFromUint64(value)
	default:
		err = ParseError.New("cannot scan %T into Int", value)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (x Int) Value() (driver.Value, error) {
	return x.String(), nil
}
