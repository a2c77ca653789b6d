package format

import "testing"

// TestGroupIntegerDigits checks spec.md §4.4's group-separator placement and
// the minimum-grouping-digits suppression rule.
func TestGroupIntegerDigits(t *testing.T) {
    m := string(groupMarker)

    rows := []struct {
        digits            string
        minDigits         int
        g                 GroupSizes
        minGroupingDigits int
        want              string
    }{
        {"1234567", 1, GroupSizes{3, 3}, 1, "1" + m + "234" + m + "567"},
        {"1234", 1, GroupSizes{3, 3}, 1, "1" + m + "234"},
        {"123", 1, GroupSizes{3, 3}, 1, "123"},
        // minGroupingDigits=2 suppresses the leftmost separator when fewer
        // than 2 digits would precede it.
        {"1234", 1, GroupSizes{3, 3}, 2, "1234"},
        {"12345", 1, GroupSizes{3, 3}, 2, "12" + m + "345"},
        {"7", 3, GroupSizes{}, 1, "007"},
    }
    for _, row := range rows {
        got := groupIntegerDigits([]byte(row.digits), row.minDigits, row.g, row.minGroupingDigits)
        if got != row.want {
            t.Errorf("groupIntegerDigits(%q, %d, %+v, %d) = %q, want %q", row.digits, row.minDigits, row.g, row.minGroupingDigits, got, row.want)
        }
    }
}

// TestGroupFractionDigits checks fraction-part grouping and right-padding to
// a minimum digit count.
func TestGroupFractionDigits(t *testing.T) {
    rows := []struct {
        digits    string
        minDigits int
        g         GroupSizes
        want      string
    }{
        {"5", 2, GroupSizes{}, "50"},
        {"123456", 0, GroupSizes{3, 3}, "123" + string(groupMarker) + "456"},
        {"", 0, GroupSizes{}, ""},
    }
    for _, row := range rows {
        got := groupFractionDigits([]byte(row.digits), row.minDigits, row.g)
        if got != row.want {
            t.Errorf("groupFractionDigits(%q, %d, %+v) = %q, want %q", row.digits, row.minDigits, row.g, got, row.want)
        }
    }
}

// TestTransliterate_latin checks the Latin-like short-circuit path (spec
// §4.6): only group/decimal markers are substituted.
func TestTransliterate_latin(t *testing.T) {
    ns := NumberSystem{Name: "latn", Kind: NumberSystemNumeric, Digits: "0123456789"}
    sym := Symbols{Group: ",", Decimal: "."}
    in := "1" + string(groupMarker) + "234.56"
    want := "1,234.56"
    if got := transliterate(in, ns, sym); got != want {
        t.Errorf("transliterate(%q) = %q, want %q", in, got, want)
    }
}

// TestTransliterate_nonLatin checks digit-by-digit substitution for a
// non-Latin number system (spec §4.6), using Arabic-Indic digits.
func TestTransliterate_nonLatin(t *testing.T) {
    ns := NumberSystem{Name: "arab", Kind: NumberSystemNumeric, Digits: "٠١٢٣٤٥٦٧٨٩"}
    sym := Symbols{Group: "٬", Decimal: "٫"}
    in := "1" + string(groupMarker) + "234.56"
    want := "١٬٢٣٤٫٥٦"
    if got := transliterate(in, ns, sym); got != want {
        t.Errorf("transliterate(%q) = %q, want %q", in, got, want)
    }
}
