package format

import (
    "strconv"

    "github.com/cockroachdb/apd/v3"
)

// roundingContext returns an apd.Context configured for one TR35 rounding
// mode, with an otherwise generous precision: callers constrain the result
// afterwards via Quantize/Round to the digit counts a [FormatMeta] specifies
// (spec §4.3).
func roundingContext(mode RoundingMode) *apd.Context {
    ctx := apd.BaseContext.WithPrecision(200)
    ctx.Rounding = roundingModeRounder(mode)
    return ctx
}

// roundingModeRounder maps the seven TR35 rounding modes (spec §4.3) onto
// apd's Rounder constants.
func roundingModeRounder(mode RoundingMode) string {
    switch mode {
        case RoundDown:
            return apd.RoundDown
        case RoundHalfUp:
            return apd.RoundHalfUp
        case RoundCeiling:
            return apd.RoundCeiling
        case RoundFloor:
            return apd.RoundFloor
        case RoundHalfDown:
            return apd.RoundHalfDown
        case RoundUp:
            return apd.RoundUp
        default:
            return apd.RoundHalfEven
    }
}

// roundToFractionDigits rounds d to have exactly maxFrac digits after the
// decimal point (spec §4.3, "fraction digit rounding"), i.e. to exponent
// -maxFrac, using the given mode.
func roundToFractionDigits(d *apd.Decimal, maxFrac int, mode RoundingMode) (apd.Decimal, error) {
    ctx := roundingContext(mode)
    var result apd.Decimal
    _, err := ctx.Quantize(&result, d, int32(-maxFrac))
    if err != nil {
        return apd.Decimal{}, err
    }
    return result, nil
}

// roundToSignificantDigits rounds d to have exactly sig significant digits
// (spec §4.3, "significant digit rounding"), using the given mode.
func roundToSignificantDigits(d *apd.Decimal, sig int, mode RoundingMode) (apd.Decimal, error) {
    if sig <= 0 {
        return *d, nil
    }
    ctx := apd.BaseContext.WithPrecision(uint32(sig))
    ctx.Rounding = roundingModeRounder(mode)
    var result apd.Decimal
    _, err := ctx.Round(&result, d)
    if err != nil {
        return apd.Decimal{}, err
    }
    return result, nil
}

// roundToNearest rounds d to the nearest multiple of increment (spec §4.3,
// "rounding increment"; e.g. a "#,##0.05" pattern rounds to the nearest
// 0.05). It divides by the increment, rounds the quotient to an integer
// using mode, then multiplies back.
func roundToNearest(d *apd.Decimal, increment float64, mode RoundingMode) (apd.Decimal, error) {
    if increment <= 0 {
        return *d, nil
    }
    incDec, _, err := apd.NewFromString(formatFloatLiteral(increment))
    if err != nil {
        return apd.Decimal{}, err
    }

    ctx := roundingContext(mode)
    var quotient apd.Decimal
    if _, err := ctx.Quo(&quotient, d, incDec); err != nil {
        return apd.Decimal{}, err
    }

    // Quantize to exponent 0 gives the integer nearest the quotient under
    // the configured rounding mode; Quo's own result keeps its fractional
    // digits.
    var integerQuotient apd.Decimal
    if _, err := ctx.Quantize(&integerQuotient, &quotient, 0); err != nil {
        return apd.Decimal{}, err
    }

    var result apd.Decimal
    if _, err := ctx.Mul(&result, &integerQuotient, incDec); err != nil {
        return apd.Decimal{}, err
    }
    return result, nil
}

// formatFloatLiteral renders f as a plain decimal literal suitable for
// apd.Decimal.SetString, avoiding %v's occasional scientific notation for
// small values like 0.05.
func formatFloatLiteral(f float64) string {
    return strconv.FormatFloat(f, 'f', -1, 64)
}
