package bignum_test

import (
	"encoding/json"
	"fmt"

	"github.com/govalues/bignum"
)

func factorial(n int64) bignum.Int {
	f := bignum.NewInt(1)
	for i := int64(2); i <= n; i++ {
		f = f.Mul(bignum.NewInt(i))
	}
	return f
}

// This example computes a factorial far outside the range of machine integers.
func Example_factorial() {
	fmt.Println(factorial(30))
	// Output:
	// 265252859812191058636308480000000
}

func ExampleParseInt() {
	x, err := bignum.ParseInt("-000123")
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	_, err = bignum.ParseInt("12a")
	fmt.Println(bignum.ParseError.Has(err))
	// Output:
	// -123
	// true
}

func ExampleMustParseInt() {
	fmt.Println(bignum.MustParseInt("123456789012345678901234567890"))
	// Output: 123456789012345678901234567890
}

func ExampleInt_Mul() {
	x := bignum.MustParseInt("123456789")
	y := bignum.MustParseInt("987654321")
	fmt.Println(x.Mul(y))
	// Output: 121932631112635269
}

func ExampleInt_Quo() {
	fmt.Println(bignum.NewInt(1000).Quo(bignum.NewInt(3)))
	fmt.Println(bignum.NewInt(-7).Quo(bignum.NewInt(2)))
	// Output:
	// 333
	// -3
}

func ExampleInt_Rem() {
	fmt.Println(bignum.NewInt(1000).Rem(bignum.NewInt(3)))
	fmt.Println(bignum.NewInt(-7).Rem(bignum.NewInt(2)))
	fmt.Println(bignum.NewInt(7).Rem(bignum.NewInt(-2)))
	// Output:
	// 1
	// -1
	// 1
}

func ExampleInt_Pow() {
	x, err := bignum.NewInt(-2).Pow(bignum.NewInt(3))
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	fmt.Println(bignum.NewInt(2).MustPow(bignum.NewInt(100)))
	_, err = bignum.NewInt(2).Pow(bignum.NewInt(-1))
	fmt.Println(bignum.ExponentError.Has(err))
	// Output:
	// -8
	// 1267650600228229401496703205376
	// true
}

func ExampleInt_Int64() {
	x := bignum.MustParseInt("-9223372036854775808")
	fmt.Println(x.Int64())
	_, err := x.Sub(bignum.NewInt(1)).Int64()
	fmt.Println(bignum.RangeError.Has(err))
	// Output:
	// -9223372036854775808 <nil>
	// true
}

func ExampleParseDecimal() {
	for _, s := range []string{"123.45", "-0.00123", "1e-3", "1.230", "1.5e3", ".5"} {
		d, err := bignum.ParseDecimal(s)
		if err != nil {
			panic(err)
		}
		fmt.Println(d)
	}
	// Output:
	// 123.45
	// -0.00123
	// 0.001
	// 1.23
	// 1500
	// 0.5
}

func ExampleDecimal_Mant() {
	d := bignum.MustParseDecimal("123.4500")
	fmt.Println(d.Mant(), d.Exp())
	// Output: 12345 -2
}

func ExampleDecimal_Add() {
	d := bignum.MustParseDecimal("1.23")
	e := bignum.MustParseDecimal("4.56")
	fmt.Println(d.Add(e))
	fmt.Println(d.Neg().Add(d))
	// Output:
	// 5.79
	// 0
}

func ExampleDecimal_Sub() {
	d := bignum.MustParseDecimal("5.67")
	e := bignum.MustParseDecimal("1.23")
	fmt.Println(d.Sub(e))
	fmt.Println(e.Sub(d))
	// Output:
	// 4.44
	// -4.44
}

func ExampleDecimal_Mul() {
	fmt.Println(bignum.MustParseDecimal("1.2").Mul(bignum.MustParseDecimal("3.4")))
	fmt.Println(bignum.MustParseDecimal("2.5").Mul(bignum.MustParseDecimal("-0.5")))
	// Output:
	// 4.08
	// -1.25
}

func ExampleDecimal_Quo() {
	d := bignum.NewDecimalFromInt64(10)
	e := bignum.NewDecimalFromInt64(3)
	fmt.Println(d.Quo(e))
	// Output: 3.3333333333
}

func ExampleDecimal_Div() {
	d := bignum.NewDecimalFromInt64(10)
	e := bignum.NewDecimalFromInt64(3)
	fmt.Println(d.Div(e, 2))
	fmt.Println(d.Neg().Div(e, 2))
	fmt.Println(bignum.MustParseDecimal("1").Div(bignum.MustParseDecimal("4"), 5))
	// Output:
	// 3.33
	// -3.33
	// 0.25
}

func ExampleDecimal_DivRound() {
	d := bignum.NewDecimalFromInt64(2)
	e := bignum.NewDecimalFromInt64(3)
	fmt.Println(d.DivRound(e, 2))
	fmt.Println(bignum.NewDecimalFromInt64(10).DivRound(e, 0))
	fmt.Println(bignum.NewDecimalFromInt64(-1).DivRound(bignum.NewDecimalFromInt64(20), 1))
	// Output:
	// 0.67
	// 3
	// -0.1
}

func ExampleDecimal_Pow() {
	d := bignum.MustParseDecimal("1.5")
	fmt.Println(d.MustPow(bignum.NewInt(3)))
	fmt.Println(d.Neg().MustPow(bignum.NewInt(3)))
	fmt.Println(d.MustPow(bignum.NewInt(0)))
	// Output:
	// 3.375
	// -3.375
	// 1
}

func ExampleDecimal_IntegerPart() {
	fmt.Println(bignum.MustParseDecimal("123.456").IntegerPart())
	fmt.Println(bignum.MustParseDecimal("-0.789").IntegerPart())
	fmt.Println(bignum.MustParseDecimal("-12.9").IntegerPart())
	fmt.Println(bignum.MustParseDecimal("1.2e3").IntegerPart())
	// Output:
	// 123
	// 0
	// -12
	// 1200
}

func ExampleDecimal_WeakEqual() {
	d := bignum.MustParseDecimal("1.2345")
	e := bignum.MustParseDecimal("1.2346")
	fmt.Println(d.WeakEqual(e, 3))
	fmt.Println(d.WeakEqual(e, 4))
	// Output:
	// true
	// false
}

func ExampleDecimal_Cmp() {
	d := bignum.MustParseDecimal("1.23")
	e := bignum.MustParseDecimal("1.230")
	f := bignum.MustParseDecimal("-1.5")
	fmt.Println(d.Cmp(e))
	fmt.Println(d.Cmp(f))
	fmt.Println(f.Cmp(d))
	// Output:
	// 0
	// 1
	// -1
}

func ExampleDecimal_Hash() {
	d := bignum.MustParseDecimal("1.5")
	e := bignum.MustParseDecimal("15e-1")
	fmt.Println(d.Hash() == e.Hash())
	// Output: true
}

func ExampleDecimal_MarshalText() {
	type Payment struct {
		Amount bignum.Decimal `json:"amount"`
		Units  bignum.Int     `json:"units"`
	}
	data, err := json.Marshal(Payment{
		Amount: bignum.MustParseDecimal("12.50"),
		Units:  bignum.NewInt(3),
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output: {"amount":"12.5","units":"3"}
}

func ExampleDecimal_UnmarshalJSON() {
	var p struct {
		Amount bignum.Decimal `json:"amount"`
		Rate   bignum.Decimal `json:"rate"`
	}
	err := json.Unmarshal([]byte(`{"amount":"12.50","rate":0.035}`), &p)
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Amount, p.Rate)
	// Output: 12.5 0.035
}

func ExampleDecimal_Scan() {
	var d bignum.Decimal
	if err := d.Scan(0.1); err != nil {
		panic(err)
	}
	fmt.Println(d)
	if err := d.Scan([]byte("-7.250")); err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output:
	// 0.1
	// -7.25
}
