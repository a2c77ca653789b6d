package format

import "strings"

// groupMarker stands in for a group separator grapheme in an intermediate
// digit string; transliteration replaces it with the locale's actual
// Symbols.Group in the same pass that maps the digits (spec §4.4, §4.6 run
// in that order).
const groupMarker = '\x00'

// groupIntegerDigits pads digits on the left to minDigits and inserts
// groupMarker at the integer-part group boundaries g describes, honoring
// minGroupingDigits: CLDR's rule that the primary (leftmost-most, i.e. the
// boundary nearest the start of the number) separator is suppressed unless
// at least minGroupingDigits digits precede it (spec §4.4).
func groupIntegerDigits(digits []byte, minDigits int, g GroupSizes, minGroupingDigits int) string {
    if len(digits) < minDigits {
        digits = append(zerosBytes(minDigits-len(digits)), digits...)
    }
    if g.First <= 0 || g.Rest <= 0 || len(digits) <= g.First {
        return string(digits)
    }

    var positions []int
    for pos := len(digits) - g.First; pos > 0; pos -= g.Rest {
        positions = append(positions, pos)
    }
    // positions was built right-to-left; reverse so it is ascending, then
    // apply the minimum-grouping-digits rule to the leftmost boundary.
    reverseInts(positions)
    if minGroupingDigits > 1 && len(positions) > 0 && positions[0] < minGroupingDigits {
        positions = positions[1:]
    }

    var b strings.Builder
    set := make(map[int]bool, len(positions))
    for _, p := range positions {
        set[p] = true
    }
    for i, ch := range digits {
        if set[i] {
            b.WriteByte(groupMarker)
        }
        b.WriteByte(ch)
    }
    return b.String()
}

// groupFractionDigits pads digits on the right to minDigits and inserts
// groupMarker at fraction-part group boundaries counted outward from the
// decimal point (spec §4.4; fraction grouping is rare but the grammar
// permits it).
func groupFractionDigits(digits []byte, minDigits int, g GroupSizes) string {
    if len(digits) < minDigits {
        digits = append(digits, zerosBytes(minDigits-len(digits))...)
    }
    if g.First <= 0 || g.Rest <= 0 || len(digits) <= g.First {
        return string(digits)
    }

    set := make(map[int]bool)
    for pos := g.First; pos < len(digits); pos += g.Rest {
        set[pos] = true
    }

    var b strings.Builder
    for i, ch := range digits {
        if set[i] {
            b.WriteByte(groupMarker)
        }
        b.WriteByte(ch)
    }
    return b.String()
}

func zerosBytes(n int) []byte {
    if n <= 0 {
        return nil
    }
    b := make([]byte, n)
    for i := range b {
        b[i] = '0'
    }
    return b
}

func reverseInts(s []int) {
    for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
        s[i], s[j] = s[j], s[i]
    }
}
