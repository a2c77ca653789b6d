package format

import (
    "testing"

    "github.com/cockroachdb/apd/v3"
)

func mustDecimal(t *testing.T, s string) *apd.Decimal {
    t.Helper()
    d, _, err := apd.NewFromString(s)
    if err != nil {
        t.Fatalf("apd.NewFromString(%q): %v", s, err)
    }
    return d
}

// TestRoundToFractionDigits checks spec.md §4.3's half-even default and a
// couple of the other named rounding modes against the classic banker's-
// rounding boundary case (2.5 -> 2, 3.5 -> 4).
func TestRoundToFractionDigits(t *testing.T) {
    rows := []struct {
        in   string
        frac int
        mode RoundingMode
        want string
    }{
        {"2.5", 0, RoundHalfEven, "2"},
        {"3.5", 0, RoundHalfEven, "4"},
        {"1.005", 2, RoundHalfEven, "1.00"},
        {"1.25", 1, RoundHalfUp, "1.3"},
        {"-1.25", 1, RoundHalfUp, "-1.3"},
        {"1.21", 0, RoundUp, "2"},
        {"1.99", 0, RoundDown, "1"},
        {"1.1", 0, RoundCeiling, "2"},
        {"-1.1", 0, RoundCeiling, "-1"},
        {"1.9", 0, RoundFloor, "1"},
        {"-1.1", 0, RoundFloor, "-2"},
    }
    for _, row := range rows {
        got, err := roundToFractionDigits(mustDecimal(t, row.in), row.frac, row.mode)
        if err != nil {
            t.Fatalf("roundToFractionDigits(%s, %d, %v): %v", row.in, row.frac, row.mode, err)
        }
        if got.String() != row.want {
            t.Errorf("roundToFractionDigits(%s, %d, %v) = %s, want %s", row.in, row.frac, row.mode, got.String(), row.want)
        }
    }
}

// TestRoundToSignificantDigits checks spec.md §4.3's significant-digit
// rounding.
func TestRoundToSignificantDigits(t *testing.T) {
    rows := []struct {
        in   string
        sig  int
        want string
    }{
        {"12345", 3, "1.23E+4"},
        {"0.001234", 2, "0.0012"},
        {"100", 0, "100"},
    }
    for _, row := range rows {
        got, err := roundToSignificantDigits(mustDecimal(t, row.in), row.sig, RoundHalfEven)
        if err != nil {
            t.Fatalf("roundToSignificantDigits(%s, %d): %v", row.in, row.sig, err)
        }
        f, _ := got.Float64()
        wantF := mustFloat(t, row.want)
        if f != wantF {
            t.Errorf("roundToSignificantDigits(%s, %d) = %v (%s), want %v", row.in, row.sig, f, got.String(), wantF)
        }
    }
}

func mustFloat(t *testing.T, s string) float64 {
    t.Helper()
    d := mustDecimal(t, s)
    f, err := d.Float64()
    if err != nil {
        t.Fatalf("Float64(%q): %v", s, err)
    }
    return f
}

// TestRoundToNearest checks spec.md §4.3's nearest-increment rounding, e.g.
// the "round to nearest nickel" pattern several currencies use.
func TestRoundToNearest(t *testing.T) {
    rows := []struct {
        in        string
        increment float64
        want      string
    }{
        {"1.03", 0.05, "1.05"},
        {"1.02", 0.05, "1.00"},
        {"1.025", 0.05, "1.00"}, // half-even: quotient 20.5 rounds to 20
        {"0", 0.05, "0.00"},
    }
    for _, row := range rows {
        got, err := roundToNearest(mustDecimal(t, row.in), row.increment, RoundHalfEven)
        if err != nil {
            t.Fatalf("roundToNearest(%s, %v): %v", row.in, row.increment, err)
        }
        gotF, _ := got.Float64()
        wantF := mustFloat(t, row.want)
        if gotF != wantF {
            t.Errorf("roundToNearest(%s, %v) = %v (%s), want %v", row.in, row.increment, gotF, got.String(), wantF)
        }
    }
}
