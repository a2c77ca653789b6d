// Package algorithmic implements formatting of the non-decimal numbering
// systems the format package's :roman and :roman_lower styles dispatch to:
// "roman-upper" and "roman-lower".
//
// These correspond to CLDR 41.0's root "NumberingSystemRules" RBNF rule
// group (rbnf/root.xml's "%roman-upper"/"%roman-lower" rulesets). Unlike the
// root.xml this is drawn from, this package does not carry the non-Latin
// algorithmic systems (armenian, cyrillic, ethiopic, georgian, greek,
// hebrew) also defined there; only the two Roman-numeral rulesets spec §6's
// format table names are reproduced.
package algorithmic

import (
    _ "embed"
    "sort"
    "strings"

    "github.com/tawesoft/cldr/must"
    "github.com/tawesoft/cldr/text/number/rbnf"
)

//go:embed rules-cldr-41.0.txt
var rules string

var group = must.Result(rbnf.New(nil, rules))

// Group returns the underlying [rbnf.Group] backing this package's
// rulesets, for a caller that needs to satisfy an RBNFGroup-shaped
// collaborator interface (such as format.LocaleStore.RBNFRuleSet) with real
// rule data rather than a test double.
func Group() *rbnf.Group { return group }

// RulesetNames is a slice of all algorithmic rulesets implemented by this package.
var RulesetNames = func() []string {
    xs := group.RulesetNames()
    sort.Strings(xs)
    return xs
}()

// Formatter returns a new [rbnf.Formatter] for a given algorithmic ruleset
// such as "roman-upper".
func Formatter(name string) (rbnf.Formatter, bool) {
    if !strings.HasPrefix(name, "%") { name = "%" + name }
    return group.Formatter(name)
}

// Format formats a number using a given algorithmic ruleset such as
// "roman-upper".
func Format(name string, number int64) (string, error) {
    if !strings.HasPrefix(name, "%") { name = "%" + name }
    return group.FormatInteger(name, number)
}
