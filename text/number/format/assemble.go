package format

import (
    "strings"
    "unicode"
    "unicode/utf8"

    "github.com/tawesoft/cldr/text/number"
)

// AssembleInput bundles everything the Assembler needs to render one
// [FormatMeta] against one value: the compiled pattern, the value itself,
// the rounding mode, and the locale collaborators the core never implements
// on its own (spec §6).
type AssembleInput struct {
    Meta         *FormatMeta
    Number       number.Number
    Mode         RoundingMode
    Symbols      Symbols
    NumberSystem NumberSystem

    MinimumGroupingDigits int

    // Currency is nil for non-currency formats. When set, OpCurrency ops
    // render Currency.Symbol/NarrowSymbol/Code/PluralNames per
    // CurrencyWidth, and CurrencySpacingBefore/After apply around it
    // (spec §4.5).
    Currency              *Currency
    CurrencySpacingBefore CurrencySpacing
    CurrencySpacingAfter  CurrencySpacing
}

// Assemble renders in.Number through in.Meta's compiled operation list,
// producing the final localized string (spec §4.5, the Assembler). It
// performs digit decomposition and rounding, grouping, padding, currency
// spacing, and transliteration, in that order.
func Assemble(in AssembleInput) (string, error) {
    meta := in.Meta

    if in.Number.IsSpecial() {
        return assembleSpecial(in), nil
    }

    nwd, err := decompose(meta, in.Number, in.Mode)
    if err != nil {
        return "", err
    }

    ops := meta.Positive
    if nwd.negative {
        ops = meta.Negative
    }

    numberStr := formatDigits(meta, nwd, in.MinimumGroupingDigits)

    var b strings.Builder
    for _, op := range ops {
        switch op.Type {
            case OpLiteral:
                b.WriteString(op.Literal)
            case OpQuotedChar:
                b.WriteString(op.Literal)
            case OpFormatNumber:
                b.WriteString(numberStr)
            case OpCurrency:
                writeCurrency(&b, in, op.CurrencyWidth)
            case OpPlus:
                b.WriteString(in.Symbols.Plus)
            case OpMinus:
                // spec §4.5: the minus sign is suppressed when the
                // assembled number string is literally "0" (this is also
                // what makes Decimal{-,0,e} format identically to +0).
                if numberStr != "0" {
                    b.WriteString(in.Symbols.Minus)
                }
            case OpPercent:
                b.WriteString(in.Symbols.Percent)
            case OpPermille:
                b.WriteString(in.Symbols.PerMille)
            case OpPad:
                // Padding width is applied after assembly, below; the
                // directive itself contributes no text.
        }
    }

    result := b.String()
    result = applyPadding(result, meta)
    result = applyCurrencySpacing(result, ops, in)
    return transliterate(result, in.NumberSystem, in.Symbols), nil
}

// assembleSpecial renders NaN/Infinity, which bypass digit decomposition,
// rounding, and grouping entirely (spec §4.2).
func assembleSpecial(in AssembleInput) string {
    sym := in.Symbols
    if in.Number.IsNaN() {
        return sym.NaN
    }
    sign := ""
    if in.Number.IsNegative() {
        sign = sym.Minus
    }
    return sign + sym.Infinity
}

// formatDigits renders a decomposed number's digits (grouped, zero-padded,
// with exponent if any) as an ASCII string still carrying groupMarker
// placeholders for transliterate to resolve (spec §4.2, §4.4).
func formatDigits(meta *FormatMeta, nwd numberWithDigits, minGroupingDigits int) string {
    integer := groupIntegerDigits(nwd.integer, meta.IntegerDigits.Min, meta.Grouping.Integer, minGroupingDigits)

    fraction := trimTrailingZeros(nwd.fraction, meta.FractionalDigits.Min)
    fraction = groupFractionDigits(fraction, meta.FractionalDigits.Min, meta.Grouping.Fraction)

    var b strings.Builder
    b.WriteString(integer)
    if len(fraction) > 0 {
        b.WriteByte('.')
        b.WriteString(fraction)
    }

    if meta.ExponentDigits > 0 {
        b.WriteByte('E')
        if meta.ExponentSign && !nwd.expNeg {
            b.WriteByte('+')
        }
        if nwd.expNeg {
            b.WriteByte('-')
        }
        b.Write(nwd.exponent)
    }

    return b.String()
}

// trimTrailingZeros removes trailing '0' bytes from digits down to a floor
// of min bytes (spec §4.1: fraction digits between FractionalDigits.Min and
// .Max are shown; trailing zeros beyond Min are dropped).
func trimTrailingZeros(digits []byte, min int) []byte {
    end := len(digits)
    for end > min && digits[end-1] == '0' {
        end--
    }
    return digits[:end]
}

// writeCurrency renders an OpCurrency op per its width (spec §4.5: 1=symbol,
// 2=ISO code, 3=long name, 4=narrow symbol).
func writeCurrency(b *strings.Builder, in AssembleInput, width int) {
    if in.Currency == nil {
        return
    }
    c := *in.Currency
    switch width {
        case 2:
            b.WriteString(c.ISOCode)
        case 3:
            name, ok := c.PluralNames[PluralOther]
            if !ok {
                name = c.Code
            }
            b.WriteString(name)
        case 4:
            if c.NarrowSymbol != "" {
                b.WriteString(c.NarrowSymbol)
            } else {
                b.WriteString(c.Symbol)
            }
        default:
            b.WriteString(c.Symbol)
    }
}

// applyPadding inserts copies of meta.PaddingChar, if any, so the result
// reaches meta.PaddingLength runes, per the '*' pad directive (spec §4.1,
// §4.5). The insertion point is approximated as immediately after any
// sign/currency prefix and before the number, which covers the common
// "*x#,##0" and "¤*x#,##0" pad placements.
func applyPadding(result string, meta *FormatMeta) string {
    if meta.PaddingLength <= 0 {
        return result
    }
    have := utf8.RuneCountInString(result)
    if have >= meta.PaddingLength {
        return result
    }
    pad := strings.Repeat(string(meta.PaddingChar), meta.PaddingLength-have)

    insertAt := 0
    for i, r := range result {
        if unicode.IsDigit(r) {
            insertAt = i
            break
        }
        insertAt = i + utf8.RuneLen(r)
    }
    return result[:insertAt] + pad + result[insertAt:]
}

// applyCurrencySpacing inserts the TR35 currency-spacing separator between a
// rendered currency symbol and an adjacent digit, if the surrounding
// characters' classes require it and the pattern does not already carry a
// literal separator there (spec §4.5).
func applyCurrencySpacing(result string, ops []Op, in AssembleInput) string {
    hasCurrency := false
    for _, op := range ops {
        if op.Type == OpCurrency {
            hasCurrency = true
            break
        }
    }
    if !hasCurrency || in.Currency == nil {
        return result
    }

    runes := []rune(result)
    for i := 1; i < len(runes); i++ {
        if isCurrencyRune(runes[i-1], *in.Currency) && unicode.IsDigit(runes[i]) {
            spacing := in.CurrencySpacingBefore
            if spacing.InsertBetween != "" &&
                spacing.CurrencyMatch != nil && spacing.CurrencyMatch(runes[i-1]) &&
                spacing.SurroundingMatch != nil && spacing.SurroundingMatch(runes[i]) {
                return string(runes[:i]) + spacing.InsertBetween + string(runes[i:])
            }
        }
        if unicode.IsDigit(runes[i-1]) && isCurrencyRune(runes[i], *in.Currency) {
            spacing := in.CurrencySpacingAfter
            if spacing.InsertBetween != "" &&
                spacing.CurrencyMatch != nil && spacing.CurrencyMatch(runes[i]) &&
                spacing.SurroundingMatch != nil && spacing.SurroundingMatch(runes[i-1]) {
                return string(runes[:i]) + spacing.InsertBetween + string(runes[i:])
            }
        }
    }
    return result
}

// isCurrencyRune reports whether r is (the start of) the rendered currency
// text for c, used to locate the symbol/digit boundary for currency
// spacing.
func isCurrencyRune(r rune, c Currency) bool {
    for _, s := range []string{c.Symbol, c.NarrowSymbol, c.ISOCode} {
        if strings.ContainsRune(s, r) {
            return true
        }
    }
    return false
}
