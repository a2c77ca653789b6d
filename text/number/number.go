// Package number defines the numeric value types shared by the decimal
// formatting pipeline, the RBNF interpreter, and the locale-aware parser:
// [Integer], [Float], and [Decimal].
//
// See [github.com/tawesoft/cldr/text/number/format] for the formatting
// pipeline itself and [github.com/tawesoft/cldr/text/number/rbnf] for
// rule-based number formatting.
package number

import (
    "fmt"
    "math"
    "math/big"

    "github.com/cockroachdb/apd/v3"
)

// Kind discriminates the three representations a [Number] may hold.
type Kind uint8

const (
    KindInteger Kind = iota
    KindFloat
    KindDecimal
)

// Number is a tagged union of the three numeric representations the
// formatting pipeline accepts: an arbitrary-precision integer, an IEEE-754
// double, or an arbitrary-precision decimal ({sign, coefficient, exponent}).
//
// The zero value is the integer zero.
type Number struct {
    kind    Kind
    integer *big.Int
    float   float64
    decimal apd.Decimal
}

// FromInt64 returns a Number backed by an arbitrary-precision integer
// initialised from i.
func FromInt64(i int64) Number {
    return Number{kind: KindInteger, integer: big.NewInt(i)}
}

// FromBigInt returns a Number backed by an arbitrary-precision integer.
// The big.Int is not copied; callers must not mutate it afterwards.
func FromBigInt(i *big.Int) Number {
    return Number{kind: KindInteger, integer: i}
}

// FromFloat64 returns a Number backed by an IEEE-754 double.
func FromFloat64(f float64) Number {
    return Number{kind: KindFloat, float: f}
}

// FromDecimal returns a Number backed by an arbitrary-precision decimal.
// A Decimal with a negative sign and a zero coefficient is equivalent to
// positive zero (spec invariant: -0 formats identically to +0).
func FromDecimal(d apd.Decimal) Number {
    return Number{kind: KindDecimal, decimal: d}
}

// ParseDecimal parses s (an ASCII decimal literal, optionally signed, with an
// optional exponent) into a Decimal-backed Number.
func ParseDecimal(s string) (Number, error) {
    d, _, err := apd.NewFromString(s)
    if err != nil {
        return Number{}, fmt.Errorf("number: invalid decimal literal %q: %w", s, err)
    }
    return FromDecimal(*d), nil
}

// Kind reports which representation n holds.
func (n Number) Kind() Kind {
    if n.kind == KindInteger && n.integer == nil {
        return KindInteger // zero value
    }
    return n.kind
}

// IsNegative reports whether n's sign bit is set. For Decimal, this honours
// a signed zero (Decimal{sign: -1, coef: 0}), even though such a value
// formats identically to positive zero.
func (n Number) IsNegative() bool {
    switch n.Kind() {
        case KindInteger:
            if n.integer == nil { return false }
            return n.integer.Sign() < 0
        case KindFloat:
            return math.Signbit(n.float) || n.float < 0
        case KindDecimal:
            return n.decimal.Negative
        default:
            return false
    }
}

// IsZero reports whether n is numerically zero, treating Decimal{-,0,e} as
// zero regardless of sign or exponent.
func (n Number) IsZero() bool {
    switch n.Kind() {
        case KindInteger:
            return n.integer == nil || n.integer.Sign() == 0
        case KindFloat:
            return n.float == 0
        case KindDecimal:
            return n.decimal.IsZero()
        default:
            return true
    }
}

// IsSpecial reports whether n is NaN or infinite (only possible for Float and
// Decimal; Integer is always finite).
func (n Number) IsSpecial() bool {
    switch n.Kind() {
        case KindFloat:
            return math.IsNaN(n.float) || math.IsInf(n.float, 0)
        case KindDecimal:
            return n.decimal.Form != apd.Finite
        default:
            return false
    }
}

// IsNaN reports whether n is a NaN sentinel.
func (n Number) IsNaN() bool {
    switch n.Kind() {
        case KindFloat:
            return math.IsNaN(n.float)
        case KindDecimal:
            return n.decimal.Form == apd.NaN || n.decimal.Form == apd.NaNSignaling
        default:
            return false
    }
}

// IsInf reports whether n is an infinity sentinel.
func (n Number) IsInf() bool {
    switch n.Kind() {
        case KindFloat:
            return math.IsInf(n.float, 0)
        case KindDecimal:
            return n.decimal.Form == apd.Infinite
        default:
            return false
    }
}

// AsDecimal converts n to its apd.Decimal representation, losslessly for
// Integer and Decimal, and via apd's float conversion for Float.
func (n Number) AsDecimal() (apd.Decimal, error) {
    switch n.Kind() {
        case KindInteger:
            var d apd.Decimal
            if n.integer == nil {
                d.SetInt64(0)
                return d, nil
            }
            d.Coeff.Abs(n.integer)
            d.Negative = n.integer.Sign() < 0
            return d, nil
        case KindFloat:
            d, err := new(apd.Decimal).SetFloat64(n.float)
            if err != nil {
                return apd.Decimal{}, fmt.Errorf("number: cannot convert float %v to decimal: %w", n.float, err)
            }
            return *d, nil
        case KindDecimal:
            return n.decimal, nil
        default:
            return apd.Decimal{}, fmt.Errorf("number: unknown kind %d", n.kind)
    }
}

// Abs returns a copy of n with its sign cleared.
func (n Number) Abs() Number {
    switch n.Kind() {
        case KindInteger:
            if n.integer == nil { return n }
            r := new(big.Int).Abs(n.integer)
            return Number{kind: KindInteger, integer: r}
        case KindFloat:
            return Number{kind: KindFloat, float: math.Abs(n.float)}
        case KindDecimal:
            d := n.decimal
            d.Negative = false
            return Number{kind: KindDecimal, decimal: d}
        default:
            return n
        }
}

// String renders n using Go's default %v formatting for its underlying type;
// this is a diagnostic aid, not a locale-aware presentation. Use the
// [github.com/tawesoft/cldr/text/number/format] package to produce a localized string.
func (n Number) String() string {
    switch n.Kind() {
        case KindInteger:
            if n.integer == nil { return "0" }
            return n.integer.String()
        case KindFloat:
            return fmt.Sprintf("%v", n.float)
        case KindDecimal:
            return n.decimal.String()
        default:
            return "<invalid number>"
    }
}
