// Package cldrdata is a small, self-contained implementation of the
// format.LocaleStore, format.PluralSelector, and format.CurrencyResolver
// collaborator interfaces, covering exactly four locales (English, French,
// German, Arabic) end to end. It is not a CLDR data loader: the core
// formatting pipeline never implements these interfaces with real locale
// data, by design, so this package exists only to exercise that pipeline
// against something other than a test double.
package cldrdata

import (
    "fmt"
    "strings"

    "golang.org/x/text/language"

    "github.com/tawesoft/cldr/internal/unicode/ldml"
    "github.com/tawesoft/cldr/must"
    "github.com/tawesoft/cldr/text/number"
    "github.com/tawesoft/cldr/text/number/algorithmic"
    "github.com/tawesoft/cldr/text/number/format"
    "github.com/tawesoft/cldr/text/number/plurals"
)

// ldmlFixtures holds a minimal identity+symbols LDML document per locale,
// in the same shape internal/unicode/ldml/testdata/en.xml uses, parsed with
// ldml.Parse at init time rather than hand-assembling format.Symbols.
var ldmlFixtures = map[string]string{
    "en": `<ldml>
        <identity><language type="en"/></identity>
        <numbers><symbols numberSystem="latn">
            <decimal>.</decimal><group>,</group><percentSign>%</percentSign>
            <plusSign>+</plusSign><minusSign>-</minusSign>
            <perMille>‰</perMille><infinity>∞</infinity><nan>NaN</nan>
            <exponential>E</exponential>
        </symbols></numbers>
    </ldml>`,
    "fr": `<ldml>
        <identity><language type="fr"/></identity>
        <numbers><symbols numberSystem="latn">
            <decimal>,</decimal><group> </group><percentSign>%</percentSign>
            <plusSign>+</plusSign><minusSign>-</minusSign>
            <perMille>‰</perMille><infinity>∞</infinity><nan>NaN</nan>
            <exponential>E</exponential>
        </symbols></numbers>
    </ldml>`,
    "de": `<ldml>
        <identity><language type="de"/></identity>
        <numbers><symbols numberSystem="latn">
            <decimal>,</decimal><group>.</group><percentSign>%</percentSign>
            <plusSign>+</plusSign><minusSign>-</minusSign>
            <perMille>‰</perMille><infinity>∞</infinity><nan>NaN</nan>
            <exponential>E</exponential>
        </symbols></numbers>
    </ldml>`,
    "ar": `<ldml>
        <identity><language type="ar"/></identity>
        <numbers><symbols numberSystem="arab">
            <decimal>٫</decimal><group>٬</group><percentSign>٪</percentSign>
            <plusSign>‎+</plusSign><minusSign>‎-</minusSign>
            <perMille>؉</perMille><infinity>∞</infinity><nan>NaN</nan>
            <exponential>اس</exponential>
        </symbols></numbers>
    </ldml>`,
}

func parseSymbols(locale string) format.Symbols {
    doc := must.Result(ldml.Parse([]byte(ldmlFixtures[locale])))
    if len(doc.Ldml.Numbers.Symbols) == 0 {
        return format.Symbols{}
    }
    s := doc.Ldml.Numbers.Symbols[0]
    return format.Symbols{
        Decimal:     s.Decimal,
        Group:       s.Group,
        Plus:        s.PlusSign,
        Minus:       s.MinusSign,
        Percent:     s.PercentSign,
        PerMille:    s.PerMille,
        Exponential: s.Exponential,
        Infinity:    s.Infinity,
        NaN:         s.NaN,
    }
}

// arabDigits is the "arab" numbering system's ten digit graphemes, U+0660
// through U+0669.
const arabDigits = "٠١٢٣٤٥٦٧٨٩"

func numberSystemFor(locale string) format.NumberSystem {
    if locale == "ar" {
        return format.NumberSystem{Name: "arab", Kind: format.NumberSystemNumeric, Digits: arabDigits}
    }
    return format.NumberSystem{Name: "latn", Kind: format.NumberSystemNumeric, Digits: "0123456789"}
}

func lenientParseMaps(sym format.Symbols) format.LenientParseMaps {
    m := format.LenientParseMaps{
        Plus:    map[rune]bool{'+': true},
        Minus:   map[rune]bool{'-': true, '−': true},
        Group:   map[rune]bool{',': true, '.': true, ' ': true, ' ': true, ' ': true},
        Decimal: map[rune]bool{'.': true, ',': true},
    }
    for _, r := range sym.Plus {
        m.Plus[r] = true
    }
    for _, r := range sym.Minus {
        m.Minus[r] = true
    }
    for _, r := range sym.Group {
        m.Group[r] = true
    }
    for _, r := range sym.Decimal {
        m.Decimal[r] = true
    }
    return m
}

// compactFormatsFor returns the magnitude-keyed template rules for the
// "decimal_short"/"decimal_long" compact styles (spec §4.7), for the
// locales that define them. Rules below 1 million are omitted from locales
// this demo store doesn't otherwise exercise at that magnitude, following
// CLDR's own sparse-table convention (an absent magnitude falls through to
// the next-lower rule that is present via [SelectCompact]).
func compactFormatsFor(locale string) map[string][]format.CompactFormatRule {
    switch locale {
        case "en":
            return map[string][]format.CompactFormatRule{
                "decimal_short": {
                    {Magnitude: 1000, Templates: map[format.PluralCategory]format.CompactTemplate{
                        format.PluralOther: {Template: "0K", Zeros: 1},
                    }},
                    {Magnitude: 10000, Templates: map[format.PluralCategory]format.CompactTemplate{
                        format.PluralOther: {Template: "00K", Zeros: 2},
                    }},
                    {Magnitude: 100000, Templates: map[format.PluralCategory]format.CompactTemplate{
                        format.PluralOther: {Template: "000K", Zeros: 3},
                    }},
                    {Magnitude: 1000000, Templates: map[format.PluralCategory]format.CompactTemplate{
                        format.PluralOther: {Template: "0M", Zeros: 1},
                    }},
                    {Magnitude: 1000000000, Templates: map[format.PluralCategory]format.CompactTemplate{
                        format.PluralOther: {Template: "0B", Zeros: 1},
                    }},
                },
                "decimal_long": {
                    {Magnitude: 1000, Templates: map[format.PluralCategory]format.CompactTemplate{
                        format.PluralOne:   {Template: "0 thousand", Zeros: 1},
                        format.PluralOther: {Template: "0 thousand", Zeros: 1},
                    }},
                    {Magnitude: 1000000, Templates: map[format.PluralCategory]format.CompactTemplate{
                        format.PluralOne:   {Template: "0 million", Zeros: 1},
                        format.PluralOther: {Template: "0 million", Zeros: 1},
                    }},
                    {Magnitude: 1000000000, Templates: map[format.PluralCategory]format.CompactTemplate{
                        format.PluralOne:   {Template: "0 billion", Zeros: 1},
                        format.PluralOther: {Template: "0 billion", Zeros: 1},
                    }},
                },
                "currency_short": {
                    {Magnitude: 1000, Templates: map[format.PluralCategory]format.CompactTemplate{
                        format.PluralOther: {Template: "¤0K", Zeros: 1},
                    }},
                    {Magnitude: 1000000, Templates: map[format.PluralCategory]format.CompactTemplate{
                        format.PluralOther: {Template: "¤0M", Zeros: 1},
                    }},
                },
                "currency_long": {
                    {Magnitude: 1000, Templates: map[format.PluralCategory]format.CompactTemplate{
                        format.PluralOne:   {Template: "0 thousand", Zeros: 1},
                        format.PluralOther: {Template: "0 thousand", Zeros: 1},
                    }},
                    {Magnitude: 1000000, Templates: map[format.PluralCategory]format.CompactTemplate{
                        format.PluralOne:   {Template: "0 million", Zeros: 1},
                        format.PluralOther: {Template: "0 million", Zeros: 1},
                    }},
                },
            }
        default:
            return nil
    }
}

func buildLocaleData(locale string) format.LocaleData {
    sym := parseSymbols(locale)
    return format.LocaleData{
        Symbols:      sym,
        NumberSystem: numberSystemFor(locale),
        NumberFormats: map[string]string{
            "standard":   "#,##0.###",
            "percent":    "#,##0%",
            "currency":   "¤#,##0.00",
            "accounting": "¤#,##0.00;(¤#,##0.00)",
            "scientific": "#E0",
        },
        CompactFormats:        compactFormatsFor(locale),
        MinimumGroupingDigits: 1,
        LenientParse:          lenientParseMaps(sym),
        AtLeastPattern:        "{0}+",
        AtMostPattern:         "≤{0}",
        ApproximatelyPattern:  "~{0}",
        RangePattern:          "{0}–{1}",
        CurrencyLongPattern:   "{0} {1}",
    }
}

// currencyByLocale maps each demo locale to the currency it displays by
// default, and the display strings resolve_currency/resolve_currencies can
// match against (code, symbol, and a localized name).
var currencyByLocale = map[string]format.Currency{
    "en": {Code: "USD", Symbol: "$", NarrowSymbol: "$", ISOCode: "USD", Digits: 2},
    "fr": {Code: "EUR", Symbol: "€", NarrowSymbol: "€", ISOCode: "EUR", Digits: 2},
    "de": {Code: "EUR", Symbol: "€", NarrowSymbol: "€", ISOCode: "EUR", Digits: 2},
    "ar": {Code: "SAR", Symbol: "ر.س", NarrowSymbol: "ر.س", ISOCode: "SAR", Digits: 2},
}

var currencyNames = map[string]map[string]string{
    "en": {"$": "USD", "USD": "USD", "US dollar": "USD", "dollar": "USD"},
    "fr": {"€": "EUR", "EUR": "EUR", "euro": "EUR"},
    "de": {"€": "EUR", "EUR": "EUR", "Euro": "EUR"},
    "ar": {"ر.س": "SAR", "SAR": "SAR", "ريال سعودي": "SAR"},
}

// Store implements format.LocaleStore, format.PluralSelector, and
// format.CurrencyResolver over the fixed locale set above.
type Store struct{}

// New returns a Store ready to use; it holds no mutable state.
func New() *Store { return &Store{} }

func normalize(locale string) (string, bool) {
    l := strings.ToLower(locale)
    if i := strings.IndexAny(l, "-_"); i >= 0 {
        l = l[:i]
    }
    _, ok := currencyByLocale[l]
    return l, ok
}

// GetLocale implements format.LocaleStore.
func (s *Store) GetLocale(locale string, numberSystem string) (format.LocaleData, error) {
    l, ok := normalize(locale)
    if !ok {
        return format.LocaleData{}, fmt.Errorf("cldrdata: unknown locale %q", locale)
    }
    data := buildLocaleData(l)
    if numberSystem != "" && numberSystem != data.NumberSystem.Name {
        return format.LocaleData{}, fmt.Errorf("cldrdata: locale %q has no numbering system %q", locale, numberSystem)
    }
    return data, nil
}

// RBNFRuleSet implements format.LocaleStore. "NumberingSystemRules" is
// backed by the real root-locale rule data in
// [github.com/tawesoft/cldr/text/number/algorithmic] (shared by every
// locale, per CLDR's root.xml); "SpelloutRules"/"OrdinalRules" have no rule
// data in this demo store, so those report not-found.
func (s *Store) RBNFRuleSet(locale string, category string) (*format.RBNFGroup, error) {
    if category == "NumberingSystemRules" {
        var g format.RBNFGroup = algorithmic.Group()
        return &g, nil
    }
    return nil, fmt.Errorf("cldrdata: no RBNF rules for locale %q category %q", locale, category)
}

// Select implements format.PluralSelector, delegating to
// [github.com/tawesoft/cldr/text/number/plurals] (spec §6).
func (s *Store) Select(kind format.PluralRuleType, n number.Number, locale string) format.PluralCategory {
    l, ok := normalize(locale)
    if !ok {
        l = "en"
    }
    tag := language.MustParse(l)
    rules := plurals.New(tag)
    digits := n.Abs().String()

    var f plurals.Form
    if kind == format.PluralOrdinal {
        f = rules.Ordinal(digits)
    } else {
        f = rules.Cardinal(digits)
    }
    switch f {
        case plurals.Zero:
            return format.PluralZero
        case plurals.One:
            return format.PluralOne
        case plurals.Two:
            return format.PluralTwo
        case plurals.Few:
            return format.PluralFew
        case plurals.Many:
            return format.PluralMany
        default:
            return format.PluralOther
    }
}

// CurrencyForCode implements format.CurrencyResolver.
func (s *Store) CurrencyForCode(code string, locale string) (format.Currency, bool) {
    l, ok := normalize(locale)
    if !ok {
        return format.Currency{}, false
    }
    c := currencyByLocale[l]
    if !strings.EqualFold(c.Code, code) {
        return format.Currency{}, false
    }
    return c, true
}

// CurrencyStrings implements format.CurrencyResolver. filter is ignored in
// this demo store: none of its four locales carry more than one currency.
func (s *Store) CurrencyStrings(locale string, filter format.CurrencyFilter) map[string]string {
    l, ok := normalize(locale)
    if !ok {
        return nil
    }
    out := make(map[string]string, len(currencyNames[l]))
    for display, code := range currencyNames[l] {
        out[display] = code
    }
    return out
}
