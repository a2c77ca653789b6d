package format

import (
    "fmt"
    "strings"
)

// Compile lexes and parses a TR35 pattern string into a [FormatMeta]
// (spec §4.1). It is deterministic and side-effect free; callers that want
// the precompilation/dispatch-table behaviour of spec §4.1's "Precompilation
// contract" should use [Table].
func Compile(pattern string) (*FormatMeta, error) {
    c := &compiler{src: []rune(pattern)}
    return c.run()
}

type compiler struct {
    src []rune
}

func (c *compiler) errf(format string, args ...interface{}) error {
    return fmt.Errorf("%w: %s", ErrPatternSyntax, fmt.Sprintf(format, args...))
}

func (c *compiler) run() (meta *FormatMeta, err error) {
    defer func() {
        if r := recover(); r != nil {
            if e, ok := r.(error); ok {
                err = c.errf("%v", e)
            } else {
                err = c.errf("%v", r)
            }
            meta = nil
        }
    }()

    posStr, negStr, hasNeg := splitTopLevelSemicolon(c.src)

    pos := parseSubpattern(posStr)
    meta = &FormatMeta{Source: string(c.src)}
    applyNumberPart(meta, pos.number)
    meta.Positive = assembleOps(pos)
    meta.Multiplier = multiplierOf(meta.Positive)
    if pos.number.hasExponent {
        meta.ScientificRounding = meta.SignificantDigits.Max
    }

    if padChar, _, ok := findPad(pos.prefix, pos.suffix); ok {
        meta.PaddingChar = padChar
        meta.PaddingLength = len(posStr) - 2 // drop the '*' and pad char themselves
    }

    if hasNeg {
        neg := parseSubpattern(negStr)
        // The negative subpattern's number part must agree with the
        // positive one; spec §4.1 treats the positive subpattern's digit
        // layout as authoritative, so we only take the negative prefix/
        // suffix/sign here.
        meta.Negative = assembleOps(neg)
    } else {
        // "If no negative subpattern is supplied, the negative format is
        // the positive format with a prepended minus symbol." (spec §4.1)
        meta.Negative = append([]Op{{Type: OpMinus}}, meta.Positive...)
    }

    if meta.IntegerDigits.Min < 1 && meta.SignificantDigits.Max == 0 {
        meta.IntegerDigits.Min = 1
    }

    return meta, nil
}

// splitTopLevelSemicolon splits a pattern into positive and (optional)
// negative subpatterns at the first ';' that is not inside a '...' quoted
// run.
func splitTopLevelSemicolon(src []rune) (pos, neg []rune, hasNeg bool) {
    inQuote := false
    for i := 0; i < len(src); i++ {
        r := src[i]
        if r == '\'' {
            inQuote = !inQuote
            continue
        }
        if r == ';' && !inQuote {
            return src[:i], src[i+1:], true
        }
    }
    return src, nil, false
}

// subpatternInfo is the intermediate result of parsing one subpattern
// (positive or negative) before it is flattened into an Op list.
type subpatternInfo struct {
    prefix []Op
    number numberPartInfo
    suffix []Op
}

// numberPartInfo is the result of lexing the digit/placeholder portion of a
// subpattern, prior to being folded into FormatMeta (spec §4.1).
type numberPartInfo struct {
    integerMinDigits int // count of '0'
    integerMaxDigits int // count of '0' or '#' (informational; unbounded unless significant digits used)
    hasExplicitIntegerPlaceholder bool

    fractionMinDigits int // count of '0' after '.'
    fractionMaxDigits int // count of '0' or '#' after '.'
    hasDecimalPoint   bool

    sigMinDigits int // count of '@'
    sigMaxDigits int // count of '@' plus trailing '#'

    // groupCommaDigitsBefore[i] is the count of integer-part digit
    // placeholders scanned before the i-th ',', in left-to-right source
    // order. Converted to {First, Rest} group sizes once the total integer
    // digit count is known (see groupSizesFromCommas).
    groupCommaDigitsBefore []int
    integerTotalDigits     int

    // integerLiteral/fractionLiteral reconstruct the pattern's digit run with
    // '#'/'0' read as '0' and '@' ignored, so that a literal 1-9 digit
    // anywhere in the pattern (e.g. "#,##0.05", "500") yields the TR35
    // nearest-rounding-increment value once parsed as a decimal (spec §4.1,
    // §4.3 "Rounding increment").
    integerLiteral  strings.Builder
    fractionLiteral strings.Builder
    hasNonZeroDigit bool

    exponentDigits int
    exponentSign   bool
    hasExponent    bool
}

// multiplierOf scans an Op list for a Percent or Permille marker and returns
// the corresponding multiplier (spec §4.1: "Presence of % or ‰ sets
// multiplier to 100 or 1000").
func multiplierOf(ops []Op) int {
    for _, op := range ops {
        switch op.Type {
            case OpPermille:
                return 1000
            case OpPercent:
                return 100
        }
    }
    return 1
}

// parseSubpattern scans one TR35 subpattern into prefix ops, a number-part
// descriptor, and suffix ops (spec §4.1: "prefix? number_part suffix?").
func parseSubpattern(src []rune) subpatternInfo {
    i := 0
    prefix, i := parseAffix(src, i, true)
    number, i := parseNumberPart(src, i)
    suffix, _ := parseAffix(src, i, false)
    return subpatternInfo{prefix: prefix, number: number, suffix: suffix}
}

// isNumberPartStart reports whether r can begin the number part.
func isNumberPartStart(r rune) bool {
    switch r {
        case '#', '0', '@', '1', '2', '3', '4', '5', '6', '7', '8', '9':
            return true
        default:
            return false
    }
}

// parseAffix consumes a prefix (isPrefix=true) or suffix (isPrefix=false),
// producing literal/currency/sign/percent/pad ops, stopping (for a prefix)
// at the first rune that can start the number part.
func parseAffix(src []rune, i int, isPrefix bool) ([]Op, int) {
    var ops []Op
    var literal strings.Builder

    flush := func() {
        if literal.Len() > 0 {
            ops = append(ops, Op{Type: OpLiteral, Literal: literal.String()})
            literal.Reset()
        }
    }

    for i < len(src) {
        r := src[i]
        if isPrefix && isNumberPartStart(r) {
            break
        }
        switch r {
            case '\'':
                i++
                if i < len(src) && src[i] == '\'' {
                    literal.WriteRune('\'')
                    i++
                } else {
                    for i < len(src) && src[i] != '\'' {
                        literal.WriteRune(src[i])
                        i++
                    }
                    if i >= len(src) {
                        panic(fmt.Errorf("unterminated quote in pattern"))
                    }
                    i++ // consume closing quote
                }
            case '¤':
                flush()
                width := 1
                for width < 4 && i+width < len(src) && src[i+width] == '¤' {
                    width++
                }
                ops = append(ops, Op{Type: OpCurrency, CurrencyWidth: width})
                i += width
            case '%':
                flush()
                ops = append(ops, Op{Type: OpPercent})
                i++
            case '‰':
                flush()
                ops = append(ops, Op{Type: OpPermille})
                i++
            case '+':
                flush()
                ops = append(ops, Op{Type: OpPlus})
                i++
            case '-':
                flush()
                ops = append(ops, Op{Type: OpMinus})
                i++
            case '*':
                flush()
                i++
                if i >= len(src) {
                    panic(fmt.Errorf("expected pad character after '*'"))
                }
                ops = append(ops, Op{Type: OpPad, PadChar: src[i]})
                i++
            default:
                literal.WriteRune(r)
                i++
        }
    }
    flush()
    return ops, i
}

// parseNumberPart scans the digit/placeholder portion of a subpattern
// starting at i (spec §4.1's "number_part").
func parseNumberPart(src []rune, i int) (numberPartInfo, int) {
    var n numberPartInfo

    // integer part, scanned left to right; track ',' distance from the
    // (eventual) decimal point by recording the count of digit-placeholders
    // seen so far at each comma.
    digitsSinceStart := 0
    for i < len(src) {
        r := src[i]
        switch {
            case r == '#':
                n.hasExplicitIntegerPlaceholder = true
                digitsSinceStart++
                n.integerMaxDigits++
                n.integerLiteral.WriteByte('0')
                i++
            case r == '0':
                n.hasExplicitIntegerPlaceholder = true
                digitsSinceStart++
                n.integerMinDigits++
                n.integerMaxDigits++
                n.integerLiteral.WriteByte('0')
                i++
            case r == '@':
                digitsSinceStart++
                n.sigMinDigits++
                n.sigMaxDigits++
                i++
            case r >= '1' && r <= '9':
                n.hasExplicitIntegerPlaceholder = true
                digitsSinceStart++
                n.integerMinDigits++
                n.integerMaxDigits++
                n.integerLiteral.WriteRune(r)
                n.hasNonZeroDigit = true
                i++
            case r == ',':
                n.groupCommaDigitsBefore = append(n.groupCommaDigitsBefore, digitsSinceStart)
                i++
            default:
                goto doneInteger
        }
    }
    doneInteger:
    n.integerTotalDigits = digitsSinceStart

    if i < len(src) && src[i] == '.' {
        n.hasDecimalPoint = true
        i++
        // trailing '#' after '@@@' count toward significant-digit max
        sawSig := n.sigMinDigits > 0
        for i < len(src) {
            r := src[i]
            switch {
                case r == '0':
                    n.fractionMinDigits++
                    n.fractionMaxDigits++
                    n.fractionLiteral.WriteByte('0')
                    i++
                case r >= '1' && r <= '9':
                    // a literal non-zero fraction digit, e.g. the "5" in
                    // "#,##0.05" (spec §4.3's nearest-rounding-increment
                    // rule): counts as a present fraction digit and
                    // contributes its own value to RoundNearest below.
                    n.fractionMinDigits++
                    n.fractionMaxDigits++
                    n.fractionLiteral.WriteRune(r)
                    n.hasNonZeroDigit = true
                    i++
                case r == '#':
                    n.fractionMaxDigits++
                    if sawSig {
                        n.sigMaxDigits++
                    }
                    n.fractionLiteral.WriteByte('0')
                    i++
                case r == '@':
                    sawSig = true
                    n.sigMinDigits++
                    n.sigMaxDigits++
                    i++
                case r == ',':
                    i++ // fractional grouping commas: rare, position tracked implicitly
                default:
                    goto doneFraction
            }
        }
        doneFraction:
    }

    if i < len(src) && src[i] == 'E' {
        n.hasExponent = true
        i++
        if i < len(src) && src[i] == '+' {
            n.exponentSign = true
            i++
        }
        for i < len(src) && src[i] == '0' {
            n.exponentDigits++
            i++
        }
    }

    return n, i
}

// applyNumberPart folds a parsed numberPartInfo into a FormatMeta (spec §4.1
// rules for #/0/1-9/@/,/E).
func applyNumberPart(meta *FormatMeta, n numberPartInfo) {
    meta.IntegerDigits = DigitRange{Min: n.integerMinDigits, Max: n.integerMaxDigits}
    meta.FractionalDigits = DigitRange{Min: n.fractionMinDigits, Max: n.fractionMaxDigits}
    meta.SignificantDigits = DigitRange{Min: n.sigMinDigits, Max: n.sigMaxDigits}

    meta.Grouping = Grouping{Integer: groupSizesFromCommas(n.groupCommaDigitsBefore, n.integerTotalDigits)}

    meta.ExponentDigits = n.exponentDigits
    meta.ExponentSign = n.exponentSign

    if n.hasNonZeroDigit {
        intStr := n.integerLiteral.String()
        if intStr == "" {
            intStr = "0"
        }
        literal := intStr
        if fracStr := n.fractionLiteral.String(); fracStr != "" {
            literal += "." + fracStr
        }
        var v float64
        fmt.Sscanf(literal, "%f", &v)
        meta.RoundNearest = v
    }
}

// groupSizesFromCommas converts the digit-count-before-each-comma list
// (scanned left to right) plus the total integer digit count into
// {First, Rest} group sizes (spec §4.1, §4.4): First is the distance from
// the decimal point to the nearest comma, Rest is the distance between that
// comma and the next one out (or equal to First if there is only one).
func groupSizesFromCommas(commaDigitsBefore []int, totalDigits int) GroupSizes {
    n := len(commaDigitsBefore)
    if n == 0 {
        return GroupSizes{}
    }
    first := totalDigits - commaDigitsBefore[n-1]
    rest := first
    if n >= 2 {
        rest = commaDigitsBefore[n-1] - commaDigitsBefore[n-2]
    }
    return GroupSizes{First: first, Rest: rest}
}

// findPad locates a '*'-introduced pad directive among a subpattern's prefix
// and suffix ops (spec §4.1/§4.5: at most one pad directive per subpattern).
// It reports the pad character and its position relative to the other affix
// ops; the Assembler uses the Op list itself (OpPad keeps its source
// position) to decide where to insert padding, so the padPosition returned
// here is informational rather than load-bearing.
func findPad(prefix, suffix []Op) (rune, padPosition, bool) {
    for idx, op := range prefix {
        if op.Type == OpPad {
            if idx == 0 {
                return op.PadChar, padBeforePrefix, true
            }
            return op.PadChar, padAfterPrefix, true
        }
    }
    for idx, op := range suffix {
        if op.Type == OpPad {
            if idx == 0 {
                return op.PadChar, padBeforeSuffix, true
            }
            return op.PadChar, padAfterSuffix, true
        }
    }
    return 0, padNone, false
}

// assembleOps flattens a parsed subpattern into a single Op list in source
// order: prefix ops, then a single OpFormatNumber standing in for the
// digit/placeholder run, then suffix ops.
func assembleOps(s subpatternInfo) []Op {
    ops := make([]Op, 0, len(s.prefix)+1+len(s.suffix))
    ops = append(ops, s.prefix...)
    ops = append(ops, Op{Type: OpFormatNumber})
    ops = append(ops, s.suffix...)
    return ops
}
