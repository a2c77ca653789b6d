package format

import "testing"

// TestCompile_basicPatterns checks spec.md §4.1's digit-placeholder,
// grouping-comma, and decimal-point parsing for common TR35 patterns.
func TestCompile_basicPatterns(t *testing.T) {
    rows := []struct {
        pattern          string
        wantIntegerMin   int
        wantFractionMin  int
        wantFractionMax  int
        wantGroupFirst   int
        wantGroupRest    int
        wantMultiplier   int
    }{
        {"#,##0.###", 1, 0, 3, 3, 3, 1},
        {"#,##0.00", 1, 2, 2, 3, 3, 1},
        {"0", 1, 0, 0, 0, 0, 1},
        {"#,##0%", 1, 0, 0, 3, 3, 100},
        {"#,##0‰", 1, 0, 0, 3, 3, 1000},
    }
    for _, row := range rows {
        meta, err := Compile(row.pattern)
        if err != nil {
            t.Fatalf("Compile(%q): %v", row.pattern, err)
        }
        if meta.IntegerDigits.Min != row.wantIntegerMin {
            t.Errorf("Compile(%q).IntegerDigits.Min = %d, want %d", row.pattern, meta.IntegerDigits.Min, row.wantIntegerMin)
        }
        if meta.FractionalDigits.Min != row.wantFractionMin || meta.FractionalDigits.Max != row.wantFractionMax {
            t.Errorf("Compile(%q).FractionalDigits = %+v, want {%d %d}", row.pattern, meta.FractionalDigits, row.wantFractionMin, row.wantFractionMax)
        }
        if meta.Grouping.Integer.First != row.wantGroupFirst || meta.Grouping.Integer.Rest != row.wantGroupRest {
            t.Errorf("Compile(%q).Grouping.Integer = %+v, want {%d %d}", row.pattern, meta.Grouping.Integer, row.wantGroupFirst, row.wantGroupRest)
        }
        if meta.Multiplier != row.wantMultiplier {
            t.Errorf("Compile(%q).Multiplier = %d, want %d", row.pattern, meta.Multiplier, row.wantMultiplier)
        }
    }
}

// TestCompile_negativeSubpattern checks spec.md §4.1's implicit-minus rule
// (no ';' present) and explicit negative-subpattern override.
func TestCompile_negativeSubpattern(t *testing.T) {
    meta, err := Compile("#,##0.00")
    if err != nil {
        t.Fatalf("Compile: %v", err)
    }
    if len(meta.Negative) != len(meta.Positive)+1 || meta.Negative[0].Type != OpMinus {
        t.Errorf("implicit negative subpattern = %+v, want [Minus, ...positive]", meta.Negative)
    }

    meta, err = Compile("#,##0.00;(#,##0.00)")
    if err != nil {
        t.Fatalf("Compile: %v", err)
    }
    if len(meta.Negative) != 3 {
        t.Fatalf("explicit negative subpattern = %+v, want 3 ops", meta.Negative)
    }
    if meta.Negative[0].Type != OpLiteral || meta.Negative[0].Literal != "(" {
        t.Errorf("negative prefix = %+v, want literal \"(\"", meta.Negative[0])
    }
    if meta.Negative[2].Type != OpLiteral || meta.Negative[2].Literal != ")" {
        t.Errorf("negative suffix = %+v, want literal \")\"", meta.Negative[2])
    }
}

// TestCompile_currencyAndSuffixLiteral checks a currency prefix and a
// compact-style trailing literal (no special TR35 punctuation after the
// digit placeholder), per spec.md §4.1/§4.7.
func TestCompile_currencyAndSuffixLiteral(t *testing.T) {
    meta, err := Compile("¤#,##0.00")
    if err != nil {
        t.Fatalf("Compile: %v", err)
    }
    if len(meta.Positive) < 2 || meta.Positive[0].Type != OpCurrency || meta.Positive[0].CurrencyWidth != 1 {
        t.Errorf("Compile(¤#,##0.00).Positive = %+v, want leading OpCurrency width 1", meta.Positive)
    }

    meta, err = Compile("0 thousand")
    if err != nil {
        t.Fatalf("Compile: %v", err)
    }
    if len(meta.Positive) != 2 {
        t.Fatalf("Compile(\"0 thousand\").Positive = %+v, want 2 ops", meta.Positive)
    }
    if meta.Positive[1].Type != OpLiteral || meta.Positive[1].Literal != " thousand" {
        t.Errorf("Compile(\"0 thousand\").Positive[1] = %+v, want literal \" thousand\"", meta.Positive[1])
    }
    if meta.IntegerDigits.Min != 1 {
        t.Errorf("Compile(\"0 thousand\").IntegerDigits.Min = %d, want 1", meta.IntegerDigits.Min)
    }
}

// TestCompile_roundingIncrement checks spec.md §4.3's literal-digit nearest-
// increment rule: a pattern with a non-zero literal digit (e.g. "#,##0.05")
// sets FormatMeta.RoundNearest to that literal value.
func TestCompile_roundingIncrement(t *testing.T) {
    meta, err := Compile("#,##0.05")
    if err != nil {
        t.Fatalf("Compile: %v", err)
    }
    if meta.RoundNearest != 0.05 {
        t.Errorf("Compile(\"#,##0.05\").RoundNearest = %v, want 0.05", meta.RoundNearest)
    }

    meta, err = Compile("#,##0.00")
    if err != nil {
        t.Fatalf("Compile: %v", err)
    }
    if meta.RoundNearest != 0 {
        t.Errorf("Compile(\"#,##0.00\").RoundNearest = %v, want 0", meta.RoundNearest)
    }
}

// TestCompile_padDirective checks the '*' pad directive's width computation.
func TestCompile_padDirective(t *testing.T) {
    meta, err := Compile("*x#,##0.00")
    if err != nil {
        t.Fatalf("Compile: %v", err)
    }
    if meta.PaddingChar != 'x' {
        t.Errorf("Compile(\"*x#,##0.00\").PaddingChar = %q, want 'x'", meta.PaddingChar)
    }
    if meta.PaddingLength != len("*x#,##0.00")-2 {
        t.Errorf("Compile(\"*x#,##0.00\").PaddingLength = %d, want %d", meta.PaddingLength, len("*x#,##0.00")-2)
    }
}

// TestCompile_quotedLiteral checks TR35 quoting: a doubled quote is a literal
// quote character, and a quoted run passes its contents through verbatim.
func TestCompile_quotedLiteral(t *testing.T) {
    meta, err := Compile("'#'#,##0")
    if err != nil {
        t.Fatalf("Compile: %v", err)
    }
    if len(meta.Positive) < 1 || meta.Positive[0].Type != OpLiteral || meta.Positive[0].Literal != "#" {
        t.Errorf("Compile(\"'#'#,##0\").Positive = %+v, want leading literal \"#\"", meta.Positive)
    }
}

// TestCompile_invalidPattern checks that an unterminated quote is reported
// as ErrPatternSyntax rather than panicking.
func TestCompile_invalidPattern(t *testing.T) {
    _, err := Compile("'unterminated")
    if err == nil {
        t.Fatal("Compile(\"'unterminated\"): want error, got nil")
    }
}
