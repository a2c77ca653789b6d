package format

import "github.com/tawesoft/cldr/text/number"

// This file defines the external collaborator interfaces the core consumes
// (spec §6). The core never implements these with real CLDR data; it only
// calls them. github.com/tawesoft/cldr/internal/cldrdata provides a small demo
// implementation used by this package's own tests.

// Symbols holds the per-(locale, number system) graphemes used to render a
// compiled format (spec §3, "NumberSymbols").
type Symbols struct {
    Decimal                string
    Group                  string
    Plus                   string
    Minus                  string
    Percent                string
    PerMille               string
    Exponential            string
    Infinity               string
    NaN                    string
    SuperscriptingExponent string

    // CurrencyDecimal/CurrencyGroup override Decimal/Group for currency
    // formats when non-empty.
    CurrencyDecimal string
    CurrencyGroup   string
}

// NumberSystemKind discriminates numeric (ten-digit) from algorithmic
// (RBNF-rule-backed) number systems (spec §3).
type NumberSystemKind uint8

const (
    NumberSystemNumeric NumberSystemKind = iota
    NumberSystemAlgorithmic
)

// NumberSystem describes a CLDR numbering system (spec §3).
type NumberSystem struct {
    Name string
    Kind NumberSystemKind

    // Digits is a 10-grapheme string ("0".."9" equivalents); only meaningful
    // when Kind == NumberSystemNumeric.
    Digits string

    // RBNFRuleset, when Kind == NumberSystemAlgorithmic, is the ruleset name
    // (e.g. "%roman-upper") used to format via the RBNF interpreter.
    RBNFRuleset string
}

// IsLikeLatin reports whether this number system produces the same digit
// bytes and canonical separators as ASCII/Latin, allowing the Transliterator
// to short-circuit (spec §4.6).
func (ns NumberSystem) IsLikeLatin() bool {
    return ns.Kind == NumberSystemNumeric && (ns.Digits == "" || ns.Digits == "0123456789")
}

// CurrencySpacing describes the TR35 currency-spacing rule for one side
// (before or after) of a currency symbol (spec §4.5).
type CurrencySpacing struct {
    // CurrencyMatch and SurroundingMatch are single-character-class
    // predicates: CurrencyMatch tests the currency-symbol-adjacent
    // character, SurroundingMatch tests the digit-adjacent character.
    CurrencyMatch     func(rune) bool
    SurroundingMatch  func(rune) bool
    InsertBetween     string
}

// PluralCategory is one of the six CLDR plural categories.
type PluralCategory uint8

const (
    PluralOther PluralCategory = iota
    PluralZero
    PluralOne
    PluralTwo
    PluralFew
    PluralMany
)

// PluralRuleType selects cardinal or ordinal plural rule evaluation.
type PluralRuleType uint8

const (
    PluralCardinal PluralRuleType = iota
    PluralOrdinal
)

// PluralSelector evaluates CLDR plural rules for a locale (spec §6).
type PluralSelector interface {
    Select(kind PluralRuleType, n number.Number, locale string) PluralCategory
}

// CompactFormatRule is one magnitude-range entry of a short/long compact
// format rule list (spec §4.7).
type CompactFormatRule struct {
    Magnitude int64 // the R in spec §4.7 ("[R, {plural -> template}]")
    Templates map[PluralCategory]CompactTemplate
}

// CompactTemplate is one plural-category entry: the template string and the
// count of zeros it contains (used to compute the normalization divisor).
type CompactTemplate struct {
    Template string
    Zeros    int
}

// Currency is the resolved currency/digital-token metadata the core needs to
// assemble a currency-format string (spec §3).
type Currency struct {
    Code         string
    Symbol       string
    NarrowSymbol string
    ISOCode      string
    Digits       int
    Rounding     float64
    CashDigits   int
    CashRounding float64
    ISODigits    int
    PluralNames  map[PluralCategory]string

    // IsDigitalToken is true for ISO-24165 digital/crypto tokens, which are
    // resolved via DigitalTokenRegistry rather than ordinary currency data.
    IsDigitalToken bool
}

// CurrencyFilter narrows resolve_currencies/resolve_currency lookups
// (spec §4.9).
type CurrencyFilter struct {
    Only   []string // category names or explicit codes; empty means "all"
    Except []string
}

// CurrencyResolver resolves currency codes/strings to metadata (spec §6).
type CurrencyResolver interface {
    CurrencyForCode(code string, locale string) (Currency, bool)

    // CurrencyStrings returns a map from canonical display string (symbol,
    // name, or code, in any language) to ISO code, for lenient parsing and
    // resolve_currency/resolve_currencies.
    CurrencyStrings(locale string, filter CurrencyFilter) map[string]string
}

// DigitalTokenRegistry resolves ISO-24165 digital/crypto token identifiers
// (spec §3, §4.5.1).
type DigitalTokenRegistry interface {
    LongName(id string) (string, bool)
    Symbol(id string, narrow bool) (string, bool)
}

// LenientParseMaps holds the locale-derived equivalence classes used by the
// Parser/Scanner to recognize alternative Unicode forms of '+', '-', group,
// and decimal separators, and percent/permille markers (spec §4.9).
type LenientParseMaps struct {
    Plus, Minus, Group, Decimal map[rune]bool
    Percent, PerMille           map[string]bool
}

// LocaleData is everything a LocaleStore returns for one (locale, number
// system) pair (spec §6, "LocaleStore").
type LocaleData struct {
    Symbols                 Symbols
    NumberSystem             NumberSystem
    NumberFormats            map[string]string // named format -> pattern string, e.g. "standard" -> "#,##0.###"
    CompactFormats           map[string][]CompactFormatRule // "decimal_short", "decimal_long", "currency_short"
    MinimumGroupingDigits    int
    CurrencySpacingBefore    CurrencySpacing
    CurrencySpacingAfter     CurrencySpacing
    LenientParse             LenientParseMaps
    AtLeastPattern           string // carries "{0}+"-shaped placeholder
    AtMostPattern            string
    ApproximatelyPattern     string
    RangePattern             string // carries "{0}-{1}"-shaped placeholder
    CurrencyLongPattern      string // "{0} {1}" for :currency_long
}

// LocaleStore resolves locale names plus an optional number-system override
// to the data the formatting pipeline needs (spec §6).
type LocaleStore interface {
    GetLocale(locale string, numberSystem string) (LocaleData, error)

    // RBNFRuleSet returns the parsed RBNF rule-set group for a locale and
    // category ("SpelloutRules", "OrdinalRules", "NumberingSystemRules"),
    // falling back to the root locale per spec §4.8/§7.
    RBNFRuleSet(locale string, category string) (*RBNFGroup, error)
}

// RBNFGroup is the subset of github.com/tawesoft/cldr/text/number/rbnf.Group's surface the
// formatting pipeline needs; kept as an interface here to avoid an import
// cycle between format and rbnf (rbnf rule bodies can embed "#,##0"-style
// decimal formats that re-enter this package).
type RBNFGroup interface {
    FormatInteger(ruleset string, v int64) (string, error)
    FormatNumber(ruleset string, n number.Number) (string, error)
    RulesetNames() []string
}
