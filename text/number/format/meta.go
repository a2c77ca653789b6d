// Package format implements the core of the TR35 decimal number formatting
// pipeline: the pattern compiler, the rounding, grouping, and transliteration
// stages, the assembler, the compact-format selector, and the locale-aware
// parser/scanner.
//
// This package is a pure function library. It does not load CLDR data itself;
// callers supply [LocaleStore], [PluralSelector], and [CurrencyResolver]
// implementations (see collaborators.go). The demo implementation in
// github.com/tawesoft/cldr/internal/cldrdata is for tests and examples only.
package format

import (
    "github.com/tawesoft/cldr/text/number"
)

// OpType tags one operation in a compiled format's operation list.
type OpType uint8

const (
    OpLiteral OpType = iota
    OpFormatNumber
    OpCurrency
    OpPlus
    OpMinus
    OpPercent
    OpPermille
    OpPad
    OpQuote
    OpQuotedChar
)

// Op is one tagged operation in a [FormatMeta]'s positive or negative
// operation list, per spec §4.5.
type Op struct {
    Type OpType

    // Literal holds the text for OpLiteral, or the single quoted character
    // for OpQuotedChar.
    Literal string

    // CurrencyWidth holds 1..4 for OpCurrency (symbol/ISO/long-name/narrow).
    CurrencyWidth int

    // PadChar holds the pad grapheme for OpPad.
    PadChar rune
}

// DigitRange is an inclusive {min, max} digit-count constraint.
type DigitRange struct {
    Min, Max int
}

// GroupSizes describes where group separators are inserted, counted from a
// reference point (the decimal point, for both integer and fraction
// grouping; see spec §4.4).
type GroupSizes struct {
    First int // distance from the reference point to the first separator
    Rest  int // distance between subsequent separators
}

// Grouping holds the integer- and fraction-part group sizes compiled from a
// pattern's ',' positions. {0,0} means "no grouping" for that part.
type Grouping struct {
    Integer  GroupSizes
    Fraction GroupSizes
}

// FormatMeta is the immutable, compiled form of a TR35 pattern string: the
// output of the Pattern Compiler (spec §4.1).
type FormatMeta struct {
    IntegerDigits    DigitRange
    FractionalDigits DigitRange
    SignificantDigits DigitRange // {0,0} means unused

    ExponentDigits int
    ExponentSign   bool
    ScientificRounding int

    // Multiplier is one of {1, 100, 1000} (none, percent, permille).
    Multiplier int

    // RoundNearest is the nearest-increment rounding value; 0 means none.
    RoundNearest float64

    PaddingLength int
    PaddingChar   rune

    Grouping Grouping

    Positive []Op
    Negative []Op

    // Source is the original pattern string this FormatMeta was compiled
    // from, kept for diagnostics and dispatch-table keys.
    Source string
}

// padPosition records where, relative to prefix/suffix, a '*' pad directive
// appeared in the source pattern.
type padPosition uint8

const (
    padNone padPosition = iota
    padBeforePrefix
    padAfterPrefix
    padBeforeSuffix
    padAfterSuffix
)

// RoundingMode enumerates the TR35 rounding modes (spec §4.3). The zero value
// is HalfEven, the TR35 default.
type RoundingMode uint8

const (
    RoundHalfEven RoundingMode = iota
    RoundDown
    RoundHalfUp
    RoundCeiling
    RoundFloor
    RoundHalfDown
    RoundUp
)

// numberWithDigits is the output of the Digit Decomposer (spec §4.2): a
// number broken into its constituent ASCII-digit sequences, ready for
// grouping and assembly.
type numberWithDigits struct {
    negative bool
    integer  []byte // most-significant first, ASCII '0'..'9'
    fraction []byte // most-significant first, ASCII '0'..'9'
    expNeg   bool
    exponent []byte // ASCII '0'..'9', empty if no exponent
}
