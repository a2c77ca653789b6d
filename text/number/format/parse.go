package format

import (
    "fmt"
    "strings"
    "unicode"

    "github.com/tawesoft/cldr/text/np"
    "github.com/tawesoft/cldr/text/number"
)

// scan normalizes a localized numeric string to a plain ASCII decimal
// literal: lenient-parse equivalence classes (spec §4.9) map alternative
// Unicode plus/minus/group/decimal graphemes onto '+'/'-'/','/'.', and
// locale digit graphemes map onto ASCII '0'-'9'. It does not validate that
// the result is a well-formed number; [Parse] does that via apd.
//
// Digits from ns's own repertoire are recognised first; a digit from some
// other decimal-radix number system (e.g. parsing Devanagari digits against
// an "arab" NumberSystem) still scans correctly via [np.Get], since CLDR's
// lenient parsing allows mixed-script numeral input.
func scan(s string, ns NumberSystem, lenient LenientParseMaps) string {
    digits := []rune(ns.Digits)
    digitIndex := map[rune]byte{}
    if len(digits) == 10 {
        for i, d := range digits {
            digitIndex[d] = byte('0' + i)
        }
    }

    var b strings.Builder
    for _, r := range s {
        if r >= '0' && r <= '9' {
            b.WriteRune(r)
            continue
        }
        if ascii, ok := digitIndex[r]; ok {
            b.WriteByte(ascii)
            continue
        }
        if ty, v := np.Get(r); ty == np.Decimal {
            b.WriteByte(byte('0' + v.Numerator))
            continue
        }
        switch {
            case lenient.Plus[r]:
                b.WriteRune('+')
            case lenient.Minus[r]:
                b.WriteRune('-')
            case lenient.Decimal[r]:
                b.WriteRune('.')
            case lenient.Group[r]:
                // group separators carry no value; drop them
            case isIncidentalSpace(r):
                // ignore incidental whitespace (no-break and narrow
                // no-break spaces CLDR otherwise uses as group separators)
            case r == '_':
                // spec §4.9 parse step 1: "strip `_`" (a digit-grouping
                // convention some callers accept alongside locale separators)
            default:
                b.WriteRune(r)
        }
    }
    return b.String()
}

// isIncidentalSpace reports whether r is a space character not already
// claimed by lenient.Group: the plain ASCII space, tab and newline, the
// no-break space (U+00A0), and the narrow no-break space (U+202F).
func isIncidentalSpace(r rune) bool {
    switch r {
        case ' ', '\u00a0', '\u202f', '\t', '\n':
            return true
        default:
            return false
    }
}

// Parse scans s against ns/lenient and parses the result as a [number.Number]
// (spec §4.9's "parse" operation), returning [ErrParse] on failure.
func Parse(s string, ns NumberSystem, lenient LenientParseMaps) (number.Number, error) {
    literal := scan(s, ns, lenient)
    if literal == "" {
        return number.Number{}, fmt.Errorf("%w: empty input", ErrParse)
    }
    n, err := number.ParseDecimal(literal)
    if err != nil {
        return number.Number{}, fmt.Errorf("%w: %v", ErrParse, err)
    }
    return n, nil
}

// ResolveCurrency maps a display string (symbol, ISO code, or localized
// name) to a currency code (spec §4.9's "resolve_currency"). It first tries
// an exact lookup; failing that, and only when fuzzy is in (0, 1], it falls
// back to the best Jaro match at or above that threshold against the
// longest alphabetic run anchored at either edge of s (spec §4.9 step 2's
// "find and replace"-style haystack parsing: a currency name is expected to
// sit at one edge of the input, not buried inside an unrelated numeric
// literal like the "100 " in "100 eurosports"). fuzzy <= 0 disables fuzzy
// matching entirely, per spec §4.9 step 3 making it conditional on the
// caller supplying a threshold.
func ResolveCurrency(s string, resolver CurrencyResolver, locale string, filter CurrencyFilter, fuzzy float64) (string, error) {
    displayStrings := resolver.CurrencyStrings(locale, filter)
    if code, ok := displayStrings[s]; ok {
        return code, nil
    }
    if fuzzy <= 0 {
        return "", fmt.Errorf("%w: %q", ErrNoMatch, s)
    }
    if fuzzy > 1 {
        fuzzy = 1
    }

    candidates := boundaryTokens(s)
    best := ""
    bestScore := 0.0
    for display, code := range displayStrings {
        for _, candidate := range candidates {
            if candidate == "" {
                continue
            }
            score := jaroSimilarity(candidate, display)
            if score > bestScore {
                bestScore = score
                best = code
            }
        }
    }
    if bestScore >= fuzzy {
        return best, nil
    }
    return "", fmt.Errorf("%w: %q", ErrNoMatch, s)
}

// boundaryTokens extracts s's leading and trailing maximal runs of Unicode
// letters, skipping any adjacent digits, punctuation, or whitespace (spec
// §4.9 step 2). "100 eurosports" yields just ["eurosports"]; a string with
// distinct leading and trailing words yields both, since either edge is a
// candidate position for a currency name.
func boundaryTokens(s string) []string {
    runes := []rune(s)
    n := len(runes)

    i := 0
    for i < n && !unicode.IsLetter(runes[i]) {
        i++
    }
    j := i
    for j < n && unicode.IsLetter(runes[j]) {
        j++
    }
    lead := string(runes[i:j])

    k := n
    for k > 0 && !unicode.IsLetter(runes[k-1]) {
        k--
    }
    l := k
    for l > 0 && unicode.IsLetter(runes[l-1]) {
        l--
    }
    trail := string(runes[l:k])

    if lead == "" && trail == "" {
        return []string{s}
    }
    if lead == trail {
        return []string{lead}
    }
    return []string{lead, trail}
}

// ResolveCurrencies resolves each item of list to a currency code, passing
// through any entry with no match unchanged (spec §4.9's
// "resolve_currencies(list, options) -> Sequence<CurrencyCode | String>").
// fuzzy is forwarded to [ResolveCurrency] for each item.
func ResolveCurrencies(list []string, resolver CurrencyResolver, locale string, filter CurrencyFilter, fuzzy float64) []string {
    out := make([]string, len(list))
    for i, s := range list {
        if code, err := ResolveCurrency(s, resolver, locale, filter, fuzzy); err == nil {
            out[i] = code
        } else {
            out[i] = s
        }
    }
    return out
}

// ResolvePer splits a CLDR compound unit identifier of the form
// "numerator-per-denominator" (e.g. "kilometer-per-hour") into its two
// parts (spec §4.9's "resolve_per"). It reports ok=false for an identifier
// with no "-per-" separator.
func ResolvePer(unitIdentifier string) (numerator, denominator string, ok bool) {
    const sep = "-per-"
    i := strings.Index(unitIdentifier, sep)
    if i < 0 {
        return "", "", false
    }
    return unitIdentifier[:i], unitIdentifier[i+len(sep):], true
}

// Token is one element of a [Scan] result (spec §4.9's "scan" operation):
// either a literal run of text, or a run recognized and parsed as a number.
type Token struct {
    Text     string
    Number   number.Number
    IsNumber bool
}

// Scan splits s into an alternating sequence of text and number tokens
// (spec §4.9's "scan" operation, and spec §8's "scan partition" property:
// concatenating a Scan result's tokens back together, with numbers
// restringified, reproduces s up to separator normalization). A run of
// digits (from ns's own repertoire, any other decimal-radix number system,
// or ASCII), optionally preceded by a sign and interspersed with group or
// decimal separators recognised by lenient, is greedily captured and parsed
// via [Parse]; anything else is literal text.
func Scan(s string, ns NumberSystem, lenient LenientParseMaps) []Token {
    runes := []rune(s)
    n := len(runes)

    isDigit := func(r rune) bool {
        if r >= '0' && r <= '9' {
            return true
        }
        for _, d := range ns.Digits {
            if d == r {
                return true
            }
        }
        if ty, _ := np.Get(r); ty == np.Decimal {
            return true
        }
        return false
    }
    isNumberPunct := func(r rune) bool {
        return lenient.Plus[r] || lenient.Minus[r] || lenient.Decimal[r] ||
            lenient.Group[r] || isIncidentalSpace(r) || r == '_'
    }

    var tokens []Token
    var text strings.Builder
    flushText := func() {
        if text.Len() > 0 {
            tokens = append(tokens, Token{Text: text.String()})
            text.Reset()
        }
    }

    i := 0
    for i < n {
        r := runes[i]
        startsNumber := isDigit(r) || ((lenient.Plus[r] || lenient.Minus[r]) && i+1 < n && isDigit(runes[i+1]))
        if !startsNumber {
            text.WriteRune(r)
            i++
            continue
        }

        j := i + 1
        for j < n && (isDigit(runes[j]) || isNumberPunct(runes[j])) {
            j++
        }
        // Trailing punctuation (a group/decimal separator or stray sign)
        // that isn't followed by another digit belongs to the surrounding
        // text, not the number.
        for j > i && !isDigit(runes[j-1]) {
            j--
        }

        raw := string(runes[i:j])
        parsed, err := Parse(raw, ns, lenient)
        if err != nil {
            text.WriteRune(r)
            i++
            continue
        }

        flushText()
        tokens = append(tokens, Token{Number: parsed, IsNumber: true})
        i = j
    }
    flushText()

    return tokens
}
