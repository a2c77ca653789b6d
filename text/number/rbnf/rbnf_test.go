package rbnf

import (
    "testing"

    "github.com/tawesoft/cldr/must"
    "github.com/tawesoft/cldr/text/number"
    "github.com/tawesoft/cldr/text/number/plurals"
    "golang.org/x/text/language"
)

// chainedRules exercises cross-ruleset substitution ("→%%ones→" resolves at
// parse time to an index into g.rulesets rather than a byte length), and a
// %main ruleset that is not the first one defined, in a single group.
const chainedRules = `
    %%ones:
        0: zero;
        1: one;
        2: two;
        3: three;
    %main:
        0: zero;
        10: ten[ →%%ones→];
`

func TestFormatInteger_chainedRulesets(t *testing.T) {
    g := must.Result(New(nil, chainedRules))

    rows := []struct {
        in   int64
        want string
    }{
        {0, "zero"},
        {2, "two"},
        {10, "ten"},
        {11, "ten one"},
        {13, "ten three"},
    }
    for _, row := range rows {
        got, err := g.FormatInteger("%main", row.in)
        if err != nil {
            t.Fatalf("FormatInteger(%d): %v", row.in, err)
        }
        if got != row.want {
            t.Errorf("FormatInteger(%d): got %q, want %q", row.in, got, row.want)
        }
    }
}

const pluralRules = `
    %main:
        0: $(cardinal,one{one cat}other{# cats})$;
`

func TestFormatInteger_pluralSubstitution(t *testing.T) {
    g := must.Result(New(plurals.New(language.MustParse("en")), pluralRules))

    rows := []struct {
        in   int64
        want string
    }{
        {1, "one cat"},
        {2, "# cats"},
        {0, "# cats"},
    }
    for _, row := range rows {
        got, err := g.FormatInteger("%main", row.in)
        if err != nil {
            t.Fatalf("FormatInteger(%d): %v", row.in, err)
        }
        if got != row.want {
            t.Errorf("FormatInteger(%d): got %q, want %q", row.in, got, row.want)
        }
    }
}

func TestFormatter(t *testing.T) {
    g := must.Result(New(nil, chainedRules))
    f, ok := g.Formatter("%main")
    if !ok {
        t.Fatal("Formatter(%main): not found")
    }
    got, err := f(11)
    if err != nil {
        t.Fatalf("f(11): %v", err)
    }
    if got != "ten one" {
        t.Errorf("f(11): got %q, want %q", got, "ten one")
    }
}

func TestFormatNumber(t *testing.T) {
    g := must.Result(New(nil, chainedRules))
    got, err := g.FormatNumber("%main", number.FromInt64(12))
    if err != nil {
        t.Fatalf("FormatNumber: %v", err)
    }
    if got != "ten two" {
        t.Errorf("FormatNumber: got %q, want %q", got, "ten two")
    }
}

func TestRulesetNames(t *testing.T) {
    g := must.Result(New(nil, chainedRules))
    names := g.RulesetNames()
    if len(names) != 2 {
        t.Fatalf("RulesetNames: got %d names, want 2: %v", len(names), names)
    }
}
