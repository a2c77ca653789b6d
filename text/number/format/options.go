package format

import "fmt"

// ResolvedOptions is the validated, typed form of a caller's raw option map
// (spec §3, §6). [ResolveOptions] is the only place that turns loosely-typed
// input into this struct; once constructed, a ResolvedOptions is immutable.
type ResolvedOptions struct {
    Locale       string
    NumberSystem string // "" means "use the locale's default"

    // Style selects which named pattern family to use: "decimal" (default),
    // "percent", "currency", "accounting", "unit", "scientific",
    // "compact-short"/"compact-long" (aliases of "decimal_short"/
    // "decimal_long"; "short"/"long" are shorter aliases of the same two),
    // "currency_short", "currency_long", "currency_long_with_symbol",
    // "spellout", "spellout_verbose", "spellout_year", "ordinal", "roman",
    // "roman_lower", or a literal pattern string (spec §6's format option
    // table), in which case Pattern carries the same value.
    Style string

    // Pattern is set when Style is itself a literal pattern string rather
    // than one of the named styles above; ToString compiles it directly in
    // place of a LocaleData.NumberFormats lookup.
    Pattern string

    CurrencyCode    string
    CurrencyDisplay string // "symbol" (default), "narrowSymbol", "code", "name"

    RoundingMode RoundingMode

    MinimumIntegerDigits    int
    MinimumFractionDigits   int
    MaximumFractionDigits   int
    MinimumSignificantDigits int
    MaximumSignificantDigits int
    UseGrouping              bool

    // RoundingIncrement overrides a pattern's own nearest-increment
    // rounding (spec §4.3), when non-zero.
    RoundingIncrement float64
}

// RawOptions is the loosely-typed input [ResolveOptions] validates: the
// shape a caller building options from, say, a config file or a dynamic
// language binding would naturally produce.
type RawOptions struct {
    Locale       string
    NumberSystem string
    Style        string

    CurrencyCode    string
    CurrencyDisplay string

    RoundingMode string // "halfEven" (default), "halfUp", "halfDown", "up", "down", "ceiling", "floor"

    MinimumIntegerDigits     *int
    MinimumFractionDigits    *int
    MaximumFractionDigits    *int
    MinimumSignificantDigits *int
    MaximumSignificantDigits *int
    UseGrouping              *bool

    RoundingIncrement float64
}

var roundingModeNames = map[string]RoundingMode{
    "":         RoundHalfEven,
    "halfEven": RoundHalfEven,
    "halfUp":   RoundHalfUp,
    "halfDown": RoundHalfDown,
    "up":       RoundUp,
    "down":     RoundDown,
    "ceiling":  RoundCeiling,
    "floor":    RoundFloor,
}

// ResolveOptions validates raw and fills in spec-mandated defaults,
// returning [ErrArgument] (spec §7) wrapped with detail on the first
// violation found.
func ResolveOptions(raw RawOptions) (ResolvedOptions, error) {
    if raw.Locale == "" {
        return ResolvedOptions{}, fmt.Errorf("%w: locale is required", ErrArgument)
    }

    mode, ok := roundingModeNames[raw.RoundingMode]
    if !ok {
        return ResolvedOptions{}, fmt.Errorf("%w: unknown rounding mode %q", ErrArgument, raw.RoundingMode)
    }

    style := raw.Style
    if style == "" {
        style = "decimal"
    }
    pattern := ""
    switch style {
        case "decimal", "percent", "currency", "unit",
            "accounting", "scientific",
            "compact-short", "compact-long", "decimal_short", "decimal_long", "short", "long",
            "currency_short", "currency_long", "currency_long_with_symbol",
            "spellout", "spellout_verbose", "spellout_year", "ordinal",
            "roman", "roman_lower":
            // recognized keyword
        default:
            if !looksLikePattern(style) {
                return ResolvedOptions{}, fmt.Errorf("%w: unknown style %q", ErrArgument, style)
            }
            pattern = style
    }

    if isCurrencyStyle(style) && raw.CurrencyCode == "" {
        return ResolvedOptions{}, fmt.Errorf("%w: currency style requires a currency code", ErrArgument)
    }

    currencyDisplay := raw.CurrencyDisplay
    if currencyDisplay == "" {
        currencyDisplay = "symbol"
    }
    switch currencyDisplay {
        case "symbol", "narrowSymbol", "code", "name":
        default:
            return ResolvedOptions{}, fmt.Errorf("%w: unknown currency display %q", ErrArgument, currencyDisplay)
    }

    out := ResolvedOptions{
        Locale:          raw.Locale,
        NumberSystem:    raw.NumberSystem,
        Style:           style,
        Pattern:         pattern,
        CurrencyCode:    raw.CurrencyCode,
        CurrencyDisplay: currencyDisplay,
        RoundingMode:    mode,
        UseGrouping:     true,
        RoundingIncrement: raw.RoundingIncrement,
    }

    if raw.UseGrouping != nil {
        out.UseGrouping = *raw.UseGrouping
    }
    if raw.MinimumIntegerDigits != nil {
        if *raw.MinimumIntegerDigits < 1 {
            return ResolvedOptions{}, fmt.Errorf("%w: minimumIntegerDigits must be >= 1", ErrArgument)
        }
        out.MinimumIntegerDigits = *raw.MinimumIntegerDigits
    } else {
        out.MinimumIntegerDigits = 1
    }
    if raw.MinimumFractionDigits != nil {
        out.MinimumFractionDigits = *raw.MinimumFractionDigits
    }
    if raw.MaximumFractionDigits != nil {
        out.MaximumFractionDigits = *raw.MaximumFractionDigits
    }
    // else: leave at zero, meaning "not explicitly set" (spec §6's
    // fractional_digits option only overrides min/max when the caller
    // supplies it; otherwise the compiled pattern's own digit counts, or
    // the currency's own minor-unit digit count, govern — see ApplyTo and
    // ToString's currency_digits fallback).
    if out.MaximumFractionDigits > 0 && out.MaximumFractionDigits < out.MinimumFractionDigits {
        return ResolvedOptions{}, fmt.Errorf("%w: maximumFractionDigits must be >= minimumFractionDigits", ErrArgument)
    }
    if raw.MinimumSignificantDigits != nil {
        out.MinimumSignificantDigits = *raw.MinimumSignificantDigits
    }
    if raw.MaximumSignificantDigits != nil {
        out.MaximumSignificantDigits = *raw.MaximumSignificantDigits
    }
    if out.MaximumSignificantDigits > 0 && out.MaximumSignificantDigits < out.MinimumSignificantDigits {
        return ResolvedOptions{}, fmt.Errorf("%w: maximumSignificantDigits must be >= minimumSignificantDigits", ErrArgument)
    }

    return out, nil
}

// ApplyTo overrides a compiled pattern's own digit-count and rounding
// fields with any explicit options a caller set, per spec §6's "options
// take precedence over the pattern's own digit counts" rule. The returned
// FormatMeta is a copy; meta itself is never mutated.
func (o ResolvedOptions) ApplyTo(meta FormatMeta) FormatMeta {
    if o.MinimumIntegerDigits > 0 {
        meta.IntegerDigits.Min = o.MinimumIntegerDigits
    }
    switch {
        case o.MaximumFractionDigits > 0 && o.MinimumFractionDigits > 0:
            meta.FractionalDigits = DigitRange{Min: o.MinimumFractionDigits, Max: o.MaximumFractionDigits}
        case o.MaximumFractionDigits > 0:
            meta.FractionalDigits.Max = o.MaximumFractionDigits
            if meta.FractionalDigits.Min > meta.FractionalDigits.Max {
                meta.FractionalDigits.Min = meta.FractionalDigits.Max
            }
        case o.MinimumFractionDigits > 0:
            meta.FractionalDigits.Min = o.MinimumFractionDigits
            if meta.FractionalDigits.Max < meta.FractionalDigits.Min {
                meta.FractionalDigits.Max = meta.FractionalDigits.Min
            }
    }
    if o.MaximumSignificantDigits > 0 {
        meta.SignificantDigits = DigitRange{Min: o.MinimumSignificantDigits, Max: o.MaximumSignificantDigits}
    }
    if !o.UseGrouping {
        meta.Grouping = Grouping{}
    }
    if o.RoundingIncrement > 0 {
        meta.RoundNearest = o.RoundingIncrement
    }
    return meta
}

// looksLikePattern reports whether s contains any pattern-special
// character the compiler recognizes, distinguishing a literal format
// pattern (spec §6's format option accepting a raw pattern string, e.g.
// "#E0") from an unrecognized keyword.
func looksLikePattern(s string) bool {
    for _, r := range s {
        switch r {
            case '#', '0', '@', '¤', '%', '‰':
                return true
        }
    }
    return false
}
