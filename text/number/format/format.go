package format

import (
    "fmt"
    "math"
    "strings"

    "github.com/cockroachdb/apd/v3"

    "github.com/tawesoft/cldr/text/number"
)

// ToString formats n for locale using opts (spec §6, the package's main
// entry point). It resolves the locale's data via store, looks up the named
// pattern for opts.Style (or compiles opts.Pattern directly when Style is a
// literal pattern), applies opts on top of the compiled pattern, and
// assembles the final localized string. RBNF-backed styles ("spellout",
// "ordinal", "roman", ...) bypass the pattern pipeline entirely and dispatch
// to store.RBNFRuleSet instead (spec §4.8).
func ToString(store LocaleStore, plurals PluralSelector, currencies CurrencyResolver, n number.Number, opts ResolvedOptions) (string, error) {
    if category, ruleset, ok := rbnfTargetFor(opts.Style); ok {
        return formatRBNF(store, n, opts, category, ruleset)
    }

    data, err := store.GetLocale(opts.Locale, opts.NumberSystem)
    if err != nil {
        return "", fmt.Errorf("%w: %v", ErrUnknownLocale, err)
    }

    if key, isCurrency, wrapSymbol, ok := compactTargetFor(opts.Style); ok {
        return toCompactString(store, plurals, currencies, data, n, opts, key, isCurrency, wrapSymbol)
    }

    pattern := opts.Pattern
    if pattern == "" {
        formatName := namedFormatFor(opts)
        p, ok := data.NumberFormats[formatName]
        if !ok {
            return "", fmt.Errorf("%w: %q", ErrUnknownFormat, formatName)
        }
        pattern = p
    }

    meta, err := compileTable.Compile(pattern)
    if err != nil {
        return "", err
    }
    resolved := opts.ApplyTo(*meta)

    var currency *Currency
    if isCurrencyStyle(opts.Style) {
        c, ok := currencies.CurrencyForCode(opts.CurrencyCode, opts.Locale)
        if !ok {
            return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, opts.CurrencyCode)
        }
        currency = &c
        if opts.MaximumFractionDigits == 0 {
            // Caller didn't ask for an explicit fraction count; fall back
            // to the currency's own minor-unit digit count (spec §4.5).
            resolved.FractionalDigits = DigitRange{Min: c.Digits, Max: c.Digits}
        }
    }

    // TODO: :unit style needs the plural category (plurals.Select) to pick
    // between singular/plural unit patterns; NumberFormats has no per-unit
    // entries yet to select among.

    return Assemble(AssembleInput{
        Meta:                  &resolved,
        Number:                n,
        Mode:                  opts.RoundingMode,
        Symbols:               data.Symbols,
        NumberSystem:          data.NumberSystem,
        MinimumGroupingDigits: data.MinimumGroupingDigits,
        Currency:              currency,
        CurrencySpacingBefore: data.CurrencySpacingBefore,
        CurrencySpacingAfter:  data.CurrencySpacingAfter,
    })
}

// compileTable is the process-wide precompilation cache spec §4.1 requires
// ("a pattern string is compiled once and its dispatch table reused");
// ToString and toCompactString route every pattern through it instead of
// calling [Compile] directly.
var compileTable Table

// namedFormatFor maps a ResolvedOptions.Style onto a LocaleData.NumberFormats
// key (spec §3's named-format table). Only called once compactTargetFor and
// rbnfTargetFor have ruled out their own styles, so it never sees a compact
// or RBNF-backed style.
func namedFormatFor(opts ResolvedOptions) string {
    switch opts.Style {
        case "percent":
            return "percent"
        case "currency":
            return "currency"
        case "accounting":
            return "accounting"
        case "unit":
            return "unit"
        case "scientific":
            return "scientific"
        default:
            return "standard"
    }
}

// isCurrencyStyle reports whether style requires a currency lookup via
// CurrencyResolver before assembly (spec §6's format table: every style
// built on a currency pattern, not just the plain "currency" style).
func isCurrencyStyle(style string) bool {
    switch style {
        case "currency", "accounting", "currency_short", "currency_long", "currency_long_with_symbol":
            return true
        default:
            return false
    }
}

// compactTargetFor maps a ResolvedOptions.Style onto the LocaleData.CompactFormats
// key it selects from, whether that key's templates need a resolved
// Currency, and whether the result should additionally be wrapped in the
// locale's CurrencyLongPattern to prepend a bare currency symbol (spec §6's
// "currency_long_with_symbol", as distinct from plain "currency_long").
func compactTargetFor(style string) (key string, isCurrency bool, wrapSymbol bool, ok bool) {
    switch style {
        case "compact-short", "decimal_short", "short":
            return "decimal_short", false, false, true
        case "compact-long", "decimal_long", "long":
            return "decimal_long", false, false, true
        case "currency_short":
            return "currency_short", true, false, true
        case "currency_long":
            return "currency_long", true, false, true
        case "currency_long_with_symbol":
            return "currency_long", true, true, true
        default:
            return "", false, false, false
    }
}

// rbnfTargetFor maps a ResolvedOptions.Style onto the (category, ruleset)
// pair store.RBNFRuleSet and RBNFGroup.FormatNumber need (spec §4.8's RBNF
// categories: "SpelloutRules", "OrdinalRules", "NumberingSystemRules"). The
// ruleset names follow the conventional CLDR/ICU public-ruleset naming for
// each category.
func rbnfTargetFor(style string) (category, ruleset string, ok bool) {
    switch style {
        case "spellout":
            return "SpelloutRules", "%spellout-numbering", true
        case "spellout_verbose":
            return "SpelloutRules", "%spellout-numbering-verbose", true
        case "spellout_year":
            return "SpelloutRules", "%spellout-numbering-year", true
        case "ordinal":
            return "OrdinalRules", "%digits-ordinal", true
        case "roman":
            return "NumberingSystemRules", "%roman-upper", true
        case "roman_lower":
            return "NumberingSystemRules", "%roman-lower", true
        default:
            return "", "", false
    }
}

// formatRBNF looks up locale's rule group for category and formats n with
// ruleset, wrapping a missing-data error as [ErrRbnfNoRule] (spec §4.8).
func formatRBNF(store LocaleStore, n number.Number, opts ResolvedOptions, category, ruleset string) (string, error) {
    group, err := store.RBNFRuleSet(opts.Locale, category)
    if err != nil {
        return "", fmt.Errorf("%w: %v", ErrRbnfNoRule, err)
    }
    if group == nil || *group == nil {
        return "", fmt.Errorf("%w: locale %q has no %s rules", ErrRbnfNoRule, opts.Locale, category)
    }
    return (*group).FormatNumber(ruleset, n)
}

// ToAtLeastString formats n and wraps it in the locale's "at least" affix
// template (spec §4 supplement: "{0}+"-shaped placeholder substitution).
func ToAtLeastString(store LocaleStore, plurals PluralSelector, currencies CurrencyResolver, n number.Number, opts ResolvedOptions) (string, error) {
    return wrapWithTemplate(store, plurals, currencies, n, opts, func(d LocaleData) string { return d.AtLeastPattern })
}

// ToAtMostString formats n and wraps it in the locale's "at most" affix
// template.
func ToAtMostString(store LocaleStore, plurals PluralSelector, currencies CurrencyResolver, n number.Number, opts ResolvedOptions) (string, error) {
    return wrapWithTemplate(store, plurals, currencies, n, opts, func(d LocaleData) string { return d.AtMostPattern })
}

// ToApproxString formats n and wraps it in the locale's "approximately"
// affix template.
func ToApproxString(store LocaleStore, plurals PluralSelector, currencies CurrencyResolver, n number.Number, opts ResolvedOptions) (string, error) {
    return wrapWithTemplate(store, plurals, currencies, n, opts, func(d LocaleData) string { return d.ApproximatelyPattern })
}

// wrapWithTemplate formats n via ToString, then substitutes the "{0}"
// placeholder in the locale template that pick selects with the formatted
// string.
func wrapWithTemplate(store LocaleStore, plurals PluralSelector, currencies CurrencyResolver, n number.Number, opts ResolvedOptions, pick func(LocaleData) string) (string, error) {
    data, err := store.GetLocale(opts.Locale, opts.NumberSystem)
    if err != nil {
        return "", fmt.Errorf("%w: %v", ErrUnknownLocale, err)
    }
    formatted, err := ToString(store, plurals, currencies, n, opts)
    if err != nil {
        return "", err
    }
    template := pick(data)
    if template == "" {
        return formatted, nil
    }
    return strings.ReplaceAll(template, "{0}", formatted), nil
}

// ToRangeString formats lo and hi and wraps them in the locale's range
// template, which carries both a "{0}" and a "{1}" placeholder (spec §4
// supplement).
func ToRangeString(store LocaleStore, plurals PluralSelector, currencies CurrencyResolver, lo, hi number.Number, opts ResolvedOptions) (string, error) {
    data, err := store.GetLocale(opts.Locale, opts.NumberSystem)
    if err != nil {
        return "", fmt.Errorf("%w: %v", ErrUnknownLocale, err)
    }
    loStr, err := ToString(store, plurals, currencies, lo, opts)
    if err != nil {
        return "", err
    }
    hiStr, err := ToString(store, plurals, currencies, hi, opts)
    if err != nil {
        return "", err
    }
    template := data.RangePattern
    if template == "" {
        return loStr + "–" + hiStr, nil
    }
    r := strings.NewReplacer("{0}", loStr, "{1}", hiStr)
    return r.Replace(template), nil
}

// ToNumberSystem converts n directly to target's string representation,
// bypassing locale format lookup entirely (spec §6). For an algorithmic
// number system, this dispatches to its RBNFGroup via ruleset
// target.RBNFRuleset; for a numeric number system, it renders n as a plain
// integer string transliterated to target's digit graphemes.
func ToNumberSystem(n number.Number, target NumberSystem, rbnf RBNFGroup) (string, error) {
    if target.Kind == NumberSystemAlgorithmic {
        if rbnf == nil {
            return "", fmt.Errorf("%w: algorithmic number system %q requires an RBNF rule group", ErrUnknownNumberSystem, target.Name)
        }
        return rbnf.FormatNumber(target.RBNFRuleset, n)
    }

    d, err := n.AsDecimal()
    if err != nil {
        return "", err
    }
    if d.Exponent != 0 {
        return "", fmt.Errorf("%w: %v is not an integer", ErrArgument, n)
    }

    digits := d.Coeff.String()
    sign := ""
    if d.Negative {
        sign = "-"
    }

    sym := Symbols{Minus: "-"}
    literal := sign + digits
    return transliterate(literal, target, sym), nil
}

// toCompactString implements the Short-Format Selector (spec §4.7) for the
// compact-template-backed styles compactTargetFor recognizes: fall through
// to the equivalent non-compact format below 1000, else pick a
// magnitude-and-plural-appropriate template and delegate to the decimal
// pipeline with the number normalized to the template's display magnitude.
// When isCurrency is set, key's templates are resolved against
// opts.CurrencyCode; when wrapSymbol is also set ("currency_long_with_symbol"),
// the result is further wrapped in data.CurrencyLongPattern to prepend the
// bare currency symbol that plain "currency_long" templates omit.
func toCompactString(store LocaleStore, plurals PluralSelector, currencies CurrencyResolver, data LocaleData, n number.Number, opts ResolvedOptions, key string, isCurrency bool, wrapSymbol bool) (string, error) {
    var currency *Currency
    if isCurrency {
        c, ok := currencies.CurrencyForCode(opts.CurrencyCode, opts.Locale)
        if !ok {
            return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, opts.CurrencyCode)
        }
        currency = &c
    }

    d, err := n.AsDecimal()
    if err != nil {
        return "", err
    }
    f, err := d.Float64()
    if err != nil {
        return "", err
    }
    absVal := math.Abs(f)

    fallbackToStandard := func() (string, error) {
        standard := opts
        if isCurrency {
            standard.Style = "currency"
        } else {
            standard.Style = "decimal"
        }
        return ToString(store, plurals, currencies, n, standard)
    }

    if n.IsZero() || absVal < 1000 {
        return fallbackToStandard()
    }

    magnitude := magnitudeOf(absVal)
    if magnitude <= 0 {
        return fallbackToStandard()
    }

    // First pass: approximate the displayed magnitude using the bare
    // power-of-ten divisor to pick a plural category (spec §4.7 step 3);
    // the exact divisor (which may differ slightly by template) is applied
    // only once the template itself is known.
    category := compactPluralCategory(plurals, absVal/float64(magnitude), opts.Locale)

    rules := data.CompactFormats[key]
    sel, ok := SelectCompact(rules, magnitude, category)
    if !ok {
        return fallbackToStandard()
    }

    meta, err := compileTable.Compile(sel.Template)
    if err != nil {
        return "", err
    }
    resolved := opts.ApplyTo(*meta)

    normalized, err := divideByFloat(&d, sel.Divisor)
    if err != nil {
        return "", err
    }

    result, err := Assemble(AssembleInput{
        Meta:                  &resolved,
        Number:                number.FromDecimal(normalized),
        Mode:                  opts.RoundingMode,
        Symbols:               data.Symbols,
        NumberSystem:          data.NumberSystem,
        MinimumGroupingDigits: data.MinimumGroupingDigits,
        Currency:              currency,
        CurrencySpacingBefore: data.CurrencySpacingBefore,
        CurrencySpacingAfter:  data.CurrencySpacingAfter,
    })
    if err != nil {
        return "", err
    }

    if wrapSymbol && currency != nil && data.CurrencyLongPattern != "" {
        symbol := currency.Symbol
        if symbol == "" {
            symbol = currency.Code
        }
        return strings.NewReplacer("{0}", symbol, "{1}", result).Replace(data.CurrencyLongPattern), nil
    }
    return result, nil
}

// compactPluralCategory selects the plural category used to pick a compact
// template (spec §4.7 step 3): if the displayed value rounds to an exact
// integer, use that integer as the plural key; otherwise use the rounded
// value plus 0.1, so that CLDR's exact-integer-only plural rules (e.g.
// "one" matching only the literal integer 1) are not falsely triggered by a
// value that will actually render with a fractional part.
func compactPluralCategory(plurals PluralSelector, displayValue float64, locale string) PluralCategory {
    rounded := math.Round(displayValue)
    var key number.Number
    if rounded == displayValue {
        key = number.FromInt64(int64(rounded))
    } else {
        key = number.FromFloat64(rounded + 0.1)
    }
    return plurals.Select(PluralCardinal, key, locale)
}

// divideByFloat divides d by a plain float64 divisor (a compact template's
// normalization factor), preserving d's sign.
func divideByFloat(d *apd.Decimal, divisor float64) (apd.Decimal, error) {
    if divisor == 0 {
        return *d, nil
    }
    divisorDec, _, err := apd.NewFromString(formatFloatLiteral(divisor))
    if err != nil {
        return apd.Decimal{}, err
    }
    ctx := apd.BaseContext.WithPrecision(50)
    var result apd.Decimal
    if _, err := ctx.Quo(&result, d, divisorDec); err != nil {
        return apd.Decimal{}, err
    }
    return result, nil
}

