// Package errcode enumerates the failures dispatch can raise and carries the
// tokens that caused them up to the translation boundary.
package errcode

import (
	"fmt"
	"strings"

	"github.com/toejough/argrouter/internal/token"
)

// Exported constants.
const (
	UnknownArgument Code = iota + 1
	UnknownArgumentWithSuggestion
	UnhandledArguments
	AlreadySet
	FailedToParse
	NoArgumentsPassed
	MinValueNotReached
	MaxValueExceeded
	MinCountNotReached
	MaxCountExceeded
	ModeRequiresArguments
	MissingRequired
	AliasTooFewValues
	DependentMissing
	OneOfMismatch
	MissingValueSeparator
	MissingValueAfterSeparator
)

// Code identifies one kind of parse failure.
// A Code is itself an error so it can be matched with errors.Is.
type Code int

// Error implements error.
func (c Code) Error() string {
	return c.String()
}

// String returns the code's identifier.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}

	return fmt.Sprintf("Code(%d)", int(c))
}

// Error is a dispatch failure: a code, the tokens responsible, and an
// optional underlying cause.
type Error struct {
	Code   Code
	Tokens []token.Token
	Cause  error
}

// Error implements error with an untranslated rendering.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.Code.String())

	if len(e.Tokens) > 0 {
		b.WriteString(": ")
		b.WriteString(token.Join(e.Tokens, ", "))
	}

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

// Unwrap exposes the code and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Code}
	}

	return []error{e.Code, e.Cause}
}

// All returns every defined code in declaration order.
func All() []Code {
	codes := make([]Code, 0, len(codeNames))
	for c := UnknownArgument; c <= MissingValueAfterSeparator; c++ {
		codes = append(codes, c)
	}

	return codes
}

// New returns an Error for code and tokens.
func New(code Code, tokens ...token.Token) *Error {
	return &Error{Code: code, Tokens: tokens}
}

// Parse looks a code up by its identifier.
func Parse(name string) (Code, bool) {
	for c, n := range codeNames {
		if n == name {
			return c, true
		}
	}

	return 0, false
}

// Wrap returns an Error for code and tokens caused by err.
func Wrap(code Code, err error, tokens ...token.Token) *Error {
	return &Error{Code: code, Tokens: tokens, Cause: err}
}

// unexported variables.
var (
	//nolint:gochecknoglobals // fixed lookup table
	codeNames = map[Code]string{
		UnknownArgument:               "UnknownArgument",
		UnknownArgumentWithSuggestion: "UnknownArgumentWithSuggestion",
		UnhandledArguments:            "UnhandledArguments",
		AlreadySet:                    "AlreadySet",
		FailedToParse:                 "FailedToParse",
		NoArgumentsPassed:             "NoArgumentsPassed",
		MinValueNotReached:            "MinValueNotReached",
		MaxValueExceeded:              "MaxValueExceeded",
		MinCountNotReached:            "MinCountNotReached",
		MaxCountExceeded:              "MaxCountExceeded",
		ModeRequiresArguments:         "ModeRequiresArguments",
		MissingRequired:               "MissingRequired",
		AliasTooFewValues:             "AliasTooFewValues",
		DependentMissing:              "DependentMissing",
		OneOfMismatch:                 "OneOfMismatch",
		MissingValueSeparator:         "MissingValueSeparator",
		MissingValueAfterSeparator:    "MissingValueAfterSeparator",
	}
)
