package format

import (
    "math"
    "sort"

    "github.com/tawesoft/cldr/numbers"
)

// CompactSelection is the result of choosing a compact-format template for a
// magnitude and plural category (spec §4.7).
type CompactSelection struct {
    Template string
    Divisor  float64
}

// SelectCompact picks the template among rules whose Magnitude threshold is
// the largest one not exceeding magnitude, then the category's (falling
// back to [PluralOther]) template within it (spec §4.7). It reports ok=false
// when no rule applies, or the selected template is the literal "0"
// sentinel CLDR uses to mean "format this range with the standard pattern
// instead of a compact one."
func SelectCompact(rules []CompactFormatRule, magnitude int64, category PluralCategory) (CompactSelection, bool) {
    if len(rules) == 0 || magnitude <= 0 {
        return CompactSelection{}, false
    }

    sorted := make([]CompactFormatRule, len(rules))
    copy(sorted, rules)
    sort.Slice(sorted, func(i, j int) bool { return sorted[i].Magnitude < sorted[j].Magnitude })

    idx := -1
    for i, r := range sorted {
        if r.Magnitude <= magnitude {
            idx = i
        } else {
            break
        }
    }
    if idx < 0 {
        return CompactSelection{}, false
    }
    rule := sorted[idx]

    tmpl, ok := rule.Templates[category]
    if !ok {
        tmpl, ok = rule.Templates[PluralOther]
    }
    if !ok || tmpl.Template == "0" {
        return CompactSelection{}, false
    }

    divisor := 1.0
    if tmpl.Zeros > 1 {
        divisor = float64(rule.Magnitude) / math.Pow(10, float64(tmpl.Zeros-1))
    } else {
        divisor = float64(rule.Magnitude)
    }
    if divisor <= 0 {
        divisor = 1
    }

    return CompactSelection{Template: tmpl.Template, Divisor: divisor}, true
}

// magnitudeOf returns the power-of-ten magnitude threshold a value falls
// into for compact-format selection: the largest 10^k not exceeding |v|,
// expressed as that power of ten (spec §4.7; e.g. 12345 -> 10000).
func magnitudeOf(absValue float64) int64 {
    if absValue < 1 {
        return 0
    }
    k := math.Floor(math.Log10(absValue))
    pow := math.Pow(10, k)
    if pow >= float64(numbers.Max[int64]()) {
        return numbers.Max[int64]()
    }
    return int64(pow)
}
