package format

import (
    "testing"

    "github.com/cockroachdb/apd/v3"

    "github.com/tawesoft/cldr/text/number"
)

// TestDigitsOf checks spec.md §4.2's digit-decomposition for a range of
// exponent placements: positive exponent (trailing zeros), negative exponent
// shorter than the coefficient (a genuine fraction), and negative exponent
// longer than the coefficient (leading fraction zeros).
func TestDigitsOf(t *testing.T) {
    rows := []struct {
        in           string
        wantInteger  string
        wantFraction string
        wantNegative bool
    }{
        {"123", "123", "", false},
        {"12300", "12300", "", false},
        {"1.23", "1", "23", false},
        {"0.00123", "0", "00123", false},
        {"-4.5", "4", "5", true},
        {"-0", "0", "", false}, // literal negative zero suppresses the sign
    }
    for _, row := range rows {
        d, _, err := apd.NewFromString(row.in)
        if err != nil {
            t.Fatalf("apd.NewFromString(%q): %v", row.in, err)
        }
        nwd := digitsOf(*d)
        if string(nwd.integer) != row.wantInteger || string(nwd.fraction) != row.wantFraction || nwd.negative != row.wantNegative {
            t.Errorf("digitsOf(%s) = {integer:%q fraction:%q negative:%v}, want {%q %q %v}",
                row.in, nwd.integer, nwd.fraction, nwd.negative, row.wantInteger, row.wantFraction, row.wantNegative)
        }
    }
}

// TestDecompose_percentMultiplier checks spec.md §4.2's multiplier step: a
// "%"-bearing pattern multiplies the value by 100 before digit splitting.
func TestDecompose_percentMultiplier(t *testing.T) {
    meta, err := Compile("#,##0%")
    if err != nil {
        t.Fatalf("Compile: %v", err)
    }
    n := number.FromFloat64(0.0925)
    nwd, err := decompose(meta, n, RoundHalfEven)
    if err != nil {
        t.Fatalf("decompose: %v", err)
    }
    if string(nwd.integer) != "9" {
        t.Errorf("decompose(0.0925%%).integer = %q, want \"9\"", nwd.integer)
    }
}

// TestDecompose_fractionRounding checks that decompose rounds to the
// pattern's own FractionalDigits.Max when no other rounding rule applies.
func TestDecompose_fractionRounding(t *testing.T) {
    meta, err := Compile("#,##0.00")
    if err != nil {
        t.Fatalf("Compile: %v", err)
    }
    n := number.FromFloat64(3.14159)
    nwd, err := decompose(meta, n, RoundHalfEven)
    if err != nil {
        t.Fatalf("decompose: %v", err)
    }
    if string(nwd.integer) != "3" || string(nwd.fraction) != "14" {
        t.Errorf("decompose(3.14159) = {integer:%q fraction:%q}, want {3 14}", nwd.integer, nwd.fraction)
    }
}
