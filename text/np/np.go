// Package np provides a way to query the Numeric Properties of a Unicode
// code point. This allows, for example, parsing the value of digits and
// numerals in other languages.
package np

import "unicode"

// Type classifies a numeral codepoint.
//
//   - Decimal is a numeral in a decimal-radix number system, such as the
//     ASCII digits 0-9, Devanagari digits, Arabic digits, etc: a codepoint
//     belonging to Unicode's Nd (decimal number) category.
type Type int

const (
    None    = Type(0)
    Decimal = Type(1)
)

// Fraction is a numeral's value expressed as Numerator/Denominator.
type Fraction struct {
    Numerator   int64
    Denominator int64
}

// Get returns codepoint x's Type and value. If x is not a recognised
// numeral, Type is None.
//
// Only Unicode's Nd (decimal number) category is recognised here: CLDR's
// typographic-digit (superscript, circled) and non-decimal numeral data
// (Roman numerals, Tamil numerals, fractions) requires a generated
// per-codepoint database this package does not carry, so Get reports None
// for those rather than guessing. Every Nd codepoint belongs to a
// contiguous run of exactly ten codepoints valued 0 through 9 in order —
// the same assumption ICU's own digit-value lookup relies on — so a
// codepoint's offset from the start of its Nd range is its digit value.
func Get(x rune) (Type, Fraction) {
    if !unicode.Is(unicode.Nd, x) {
        return None, Fraction{}
    }

    for _, r := range unicode.Nd.R16 {
        if uint16(x) < r.Lo || uint16(x) > r.Hi || r.Stride == 0 {
            continue
        }
        if (uint16(x)-r.Lo)%r.Stride != 0 {
            continue
        }
        offset := int64((uint16(x) - r.Lo) / r.Stride % 10)
        return Decimal, Fraction{Numerator: offset, Denominator: 1}
    }
    for _, r := range unicode.Nd.R32 {
        if uint32(x) < r.Lo || uint32(x) > r.Hi || r.Stride == 0 {
            continue
        }
        if (uint32(x)-r.Lo)%r.Stride != 0 {
            continue
        }
        offset := int64((uint32(x) - r.Lo) / r.Stride % 10)
        return Decimal, Fraction{Numerator: offset, Denominator: 1}
    }
    return None, Fraction{}
}
