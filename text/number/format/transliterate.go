package format

import (
    "log"
    "os"
    "strings"
    "sync"
)

// Logger receives the one diagnostic this package emits on its own
// initiative: a warning, printed at most once per distinct number-system
// name, when [transliterate] is asked for digits a [NumberSystem] cannot
// supply (spec §5). Callers may replace it; the default writes to
// os.Stderr, matching the standard library's default log.Logger.
var Logger = log.New(os.Stderr, "cldr/format: ", log.LstdFlags)

var warnedNumberSystems sync.Map // map[string]struct{}, guards Logger calls

func warnOnce(numberSystem string, msg string) {
    if _, loaded := warnedNumberSystems.LoadOrStore(numberSystem, struct{}{}); loaded {
        return
    }
    Logger.Printf("number system %q: %s", numberSystem, msg)
}

// transliterate rewrites an already-assembled ASCII digit run (which may
// still contain groupMarker placeholders and a literal '.' decimal point) to
// a target number system's graphemes (spec §4.6). Sign, currency, and
// literal affix text are never passed through here: the Assembler supplies
// those directly from [Symbols] in the correct script.
//
// If ns is Latin-like (the overwhelmingly common case), only the group and
// decimal markers are substituted: this is the short-circuit spec §4.6
// requires so that ordinary formatting never walks the string rune by rune
// looking up a digit table.
func transliterate(s string, ns NumberSystem, sym Symbols) string {
    if ns.IsLikeLatin() {
        return strings.NewReplacer(
            string(groupMarker), sym.Group,
            ".", sym.Decimal,
        ).Replace(s)
    }

    digits := []rune(ns.Digits)
    if len(digits) != 10 {
        warnOnce(ns.Name, "number system has no 10-digit grapheme table; falling back to ASCII digits")
        digits = []rune("0123456789")
    }

    var b strings.Builder
    b.Grow(len(s))
    for _, r := range s {
        switch {
            case r >= '0' && r <= '9':
                b.WriteRune(digits[r-'0'])
            case r == groupMarker:
                b.WriteString(sym.Group)
            case r == '.':
                b.WriteString(sym.Decimal)
            default:
                b.WriteRune(r)
        }
    }
    return b.String()
}
