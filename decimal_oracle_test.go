package bignum_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/govalues/bignum"
)

// oracle operands cover mixed signs, exponents and mantissa lengths
// spanning several limbs.
var oracle = []string{
	"1",
	"-1",
	"3",
	"-7",
	"0.5",
	"-0.05",
	"2.25",
	"10",
	"12345.6789",
	"-0.000123",
	"999999999.999999999",
	"123456789012345678901234567890",
	"-98765432109876543210.0123456789",
	"1e-15",
	"7e12",
}

func oracleEqual(t *testing.T, op string, got bignum.Decimal, want decimal.Decimal) {
	t.Helper()
	w, err := bignum.ParseDecimal(want.String())
	if err != nil {
		t.Fatalf("ParseDecimal(%q) failed: %v", want.String(), err)
	}
	if !got.Equal(w) {
		t.Errorf("%v = %q, want %q", op, got, want)
	}
}

func TestDecimal_Oracle(t *testing.T) {
	for _, ds := range oracle {
		for _, es := range oracle {
			d, e := bignum.MustParseDecimal(ds), bignum.MustParseDecimal(es)
			sd, se := decimal.RequireFromString(ds), decimal.RequireFromString(es)

			oracleEqual(t, ds+" + "+es, d.Add(e), sd.Add(se))
			oracleEqual(t, ds+" - "+es, d.Sub(e), sd.Sub(se))
			oracleEqual(t, ds+" * "+es, d.Mul(e), sd.Mul(se))

			if got, want := d.Cmp(e), sd.Cmp(se); got != want {
				t.Errorf("%v.Cmp(%v) = %v, want %v", ds, es, got, want)
			}

			for _, n := range []int{0, 1, 2, 5, 10, 20} {
				q, _ := sd.QuoRem(se, int32(n))
				oracleEqual(t, ds+" div "+es, d.Div(e, n), q)
				oracleEqual(t, ds+" divround "+es, d.DivRound(e, n), sd.DivRound(se, int32(n)))
			}
		}
	}
}

func TestDecimal_OraclePow(t *testing.T) {
	for _, ds := range []string{"1.5", "-1.5", "0.01", "-3", "12.345"} {
		d := bignum.MustParseDecimal(ds)
		sd := decimal.RequireFromString(ds)
		for k := int64(0); k <= 12; k++ {
			got := d.MustPow(bignum.NewInt(k))
			want := sd.Pow(decimal.NewFromInt(k))
			oracleEqual(t, ds+" ^ "+decimal.NewFromInt(k).String(), got, want)
		}
	}
}
