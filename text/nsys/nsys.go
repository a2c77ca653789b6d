// Package nsys resolves Unicode numbering systems: the mapping from a CLDR
// numbering system identifier (or a locale's default) to the decimal digit
// repertoire it uses, or to the fact that it has no decimal digit repertoire
// at all and is formatted algorithmically (e.g. Roman numerals).
//
// This is a narrower concern than [github.com/tawesoft/cldr/text/number/format]'s
// own NumberSystem type, which already carries a resolved digit string for
// the formatting pipeline: this package is the piece
// that turns a bare locale tag into the name of the numbering system that
// locale uses by default, for a LocaleStore implementation to then resolve
// into the formatting pipeline's own representation.
package nsys

import (
    "strings"

    "golang.org/x/text/language"
)

// Kind discriminates a numeral system with ten contiguous decimal digit
// graphemes from one (such as Roman numerals) that has none and must be
// spelled out algorithmically.
type Kind int

const (
    KindDecimal Kind = iota
    KindAlgorithmic
)

// System describes one Unicode numbering system (CLDR's numberingSystems.xml
// entries, e.g. "latn", "arab", "deva", "roman").
type System struct {
    Name   string
    Kind   Kind
    Digits string // ten digit graphemes "0".."9", in order; empty if Kind is KindAlgorithmic
}

// IsDecimal reports whether s has a contiguous ten-digit decimal repertoire.
func (s System) IsDecimal() bool {
    return s.Kind == KindDecimal
}

// builtin is the subset of CLDR's numberingSystems.xml needed to exercise
// the locale-aware digit transliteration spec.md §4.4/§5 describes; it is
// not the complete registry (CLDR lists several dozen), since only these
// appear in the retrieval pack's example locale data.
var builtin = map[string]System{
    "latn":    {Name: "latn", Kind: KindDecimal, Digits: "0123456789"},
    "arab":    {Name: "arab", Kind: KindDecimal, Digits: "٠١٢٣٤٥٦٧٨٩"},
    "arabext": {Name: "arabext", Kind: KindDecimal, Digits: "۰۱۲۳۴۵۶۷۸۹"},
    "deva":    {Name: "deva", Kind: KindDecimal, Digits: "०१२३४५६७८९"},
    "beng":    {Name: "beng", Kind: KindDecimal, Digits: "০১২৩৪৫৬৭৮৯"},
    "thai":    {Name: "thai", Kind: KindDecimal, Digits: "๐๑๒๓๔๕๖๗๘๙"},
    "fullwide": {Name: "fullwide", Kind: KindDecimal, Digits: "０１２３４５６７８９"},
    "hanidec": {Name: "hanidec", Kind: KindDecimal, Digits: "〇一二三四五六七八九"},
    "roman":      {Name: "roman", Kind: KindAlgorithmic},
    "romanlow":   {Name: "romanlow", Kind: KindAlgorithmic},
    "hebr":       {Name: "hebr", Kind: KindAlgorithmic},
}

// defaultByRegion maps a CLDR region subtag onto the numbering system name
// locales in that region use unless the locale tag says otherwise with a
// "-u-nu-" extension. Most of the world uses "latn"; this table only lists
// the exceptions the retrieval pack's example locale data exercises.
var defaultByRegion = map[string]string{
    "SA": "arab", "AE": "arab", "EG": "arabext",
    "IN": "deva", "BD": "beng",
    "TH": "thai",
}

// New looks up a numbering system by its CLDR identifier (e.g. "latn",
// "arab"), reporting ok=false for a name this package does not recognise.
func New(name string) (System, bool) {
    s, ok := builtin[strings.ToLower(name)]
    return s, ok
}

// NewFromTag resolves tag's default numbering system: an explicit "nu"
// Unicode extension keyword if tag carries one, else a region-specific
// default, else "latn".
func NewFromTag(tag language.Tag) System {
    if nu := tag.TypeForKey("nu"); nu != "" {
        if s, ok := builtin[nu]; ok {
            return s
        }
    }
    region, _ := tag.Region()
    if name, ok := defaultByRegion[region.String()]; ok {
        if s, ok := builtin[name]; ok {
            return s
        }
    }
    return builtin["latn"]
}
