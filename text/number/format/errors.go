package format

import "errors"

// Error kinds returned by this package's operations, per spec §7. Each is a
// distinct sentinel so callers can use errors.Is; operations wrap these with
// additional context via fmt.Errorf("...: %w", ...).
var (
    ErrPatternSyntax    = errors.New("format: pattern syntax error")
    ErrUnknownLocale    = errors.New("format: unknown locale")
    ErrInvalidLanguage  = errors.New("format: invalid language")
    ErrUnknownNumberSystem = errors.New("format: unknown number system")
    ErrUnknownFormat    = errors.New("format: unknown named format")
    ErrUnknownCurrency  = errors.New("format: unknown currency")
    ErrRbnfNoRule       = errors.New("format: no matching rbnf rule")
    ErrParse            = errors.New("format: could not parse input as a number")
    ErrArgument         = errors.New("format: invalid option value")
    ErrNoMatch          = errors.New("format: no currency match")
)
