package format

import (
    "strconv"

    "github.com/cockroachdb/apd/v3"

    "github.com/tawesoft/cldr/text/number"
)

// decompose applies a [FormatMeta]'s multiplier and rounding rules to n and
// splits the result into ASCII integer/fraction digit runs (spec §4.2, the
// Digit Decomposer). It is the bridge between the Rounding Engine and the
// Grouping Engine/Assembler.
func decompose(meta *FormatMeta, n number.Number, mode RoundingMode) (numberWithDigits, error) {
    if n.IsSpecial() {
        return numberWithDigits{negative: n.IsNegative()}, nil
    }

    d, err := n.AsDecimal()
    if err != nil {
        return numberWithDigits{}, err
    }

    if meta.Multiplier > 1 {
        ctx := apd.BaseContext.WithPrecision(200)
        var scaled apd.Decimal
        mult := apd.New(int64(meta.Multiplier), 0)
        if _, err := ctx.Mul(&scaled, &d, mult); err != nil {
            return numberWithDigits{}, err
        }
        d = scaled
    }

    switch {
        case meta.ExponentDigits > 0:
            sig := meta.ScientificRounding
            if sig <= 0 {
                sig = meta.IntegerDigits.Max + meta.FractionalDigits.Max
            }
            d, err = roundToSignificantDigits(&d, sig, mode)
        case meta.RoundNearest > 0:
            d, err = roundToNearest(&d, meta.RoundNearest, mode)
        case meta.SignificantDigits.Max > 0:
            d, err = roundToSignificantDigits(&d, meta.SignificantDigits.Max, mode)
        default:
            d, err = roundToFractionDigits(&d, meta.FractionalDigits.Max, mode)
    }
    if err != nil {
        return numberWithDigits{}, err
    }

    if meta.ExponentDigits > 0 {
        return scientificDigitsOf(d, meta.ExponentDigits), nil
    }
    return digitsOf(d), nil
}

// scientificDigitsOf normalizes a rounded apd.Decimal to a single leading
// mantissa digit plus a base-10 exponent (spec §4.1's "E" exponent
// notation). Engineering-notation exponent grouping, where the exponent is
// constrained to a multiple of three, is out of scope.
func scientificDigitsOf(d apd.Decimal, minExpDigits int) numberWithDigits {
    if d.Coeff.Sign() == 0 {
        return numberWithDigits{
            integer:  []byte("0"),
            exponent: []byte(zeros(minExpDigits)),
        }
    }

    digits := d.Coeff.String()
    sciExponent := int(d.Exponent) + len(digits) - 1

    expNeg := sciExponent < 0
    if expNeg {
        sciExponent = -sciExponent
    }
    expDigits := strconv.Itoa(sciExponent)
    if len(expDigits) < minExpDigits {
        expDigits = zeros(minExpDigits-len(expDigits)) + expDigits
    }

    nwd := numberWithDigits{
        negative: d.Negative,
        integer:  []byte(digits[:1]),
        expNeg:   expNeg,
        exponent: []byte(expDigits),
    }
    if len(digits) > 1 {
        nwd.fraction = []byte(digits[1:])
    }
    return nwd
}

// digitsOf splits a finite apd.Decimal into most-significant-first ASCII
// integer and fraction digit runs (spec §4.2).
func digitsOf(d apd.Decimal) numberWithDigits {
    coeff := d.Coeff.String()
    exponent := int(d.Exponent)

    var integerPart, fractionPart string
    switch {
        case exponent >= 0:
            integerPart = coeff + zeros(exponent)
            fractionPart = ""
        case -exponent >= len(coeff):
            integerPart = "0"
            fractionPart = zeros(-exponent-len(coeff)) + coeff
        default:
            split := len(coeff) + exponent
            integerPart = coeff[:split]
            fractionPart = coeff[split:]
    }

    return numberWithDigits{
        negative: d.Negative && !d.IsZero(),
        integer:  []byte(integerPart),
        fraction: []byte(fractionPart),
    }
}

// zeros returns a run of n ASCII '0' bytes.
func zeros(n int) string {
    if n <= 0 {
        return ""
    }
    b := make([]byte, n)
    for i := range b {
        b[i] = '0'
    }
    return string(b)
}
