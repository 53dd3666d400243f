// Package translate turns error codes and their tokens into display strings.
package translate

import (
	"fmt"
	"strings"

	"github.com/toejough/argrouter/internal/errcode"
	"github.com/toejough/argrouter/internal/token"
)

// Chain is a Translator that consults its tables in order and falls back to
// a generic "Untranslated error code (N)" message.
type Chain struct {
	tables   []Table
	prefixes token.Prefixes
}

// Table maps error codes to message templates.
type Table map[errcode.Code]string

// Translator maps an error code and its tokens to a display string.
type Translator interface {
	Translate(code errcode.Code, tokens []token.Token) string
}

// Translate implements Translator.
func (c *Chain) Translate(code errcode.Code, tokens []token.Token) string {
	for _, table := range c.tables {
		if tmpl, ok := table[code]; ok {
			return Format(tmpl, tokens, c.prefixes)
		}
	}

	return Format(fmt.Sprintf("Untranslated error code (%d)", int(code)), tokens, c.prefixes)
}

// WithPrefixes returns a copy of the chain that renders tokens with p.
func (c *Chain) WithPrefixes(p token.Prefixes) *Chain {
	return &Chain{tables: c.tables, prefixes: p}
}

// English returns the built-in English templates.
func English() Table {
	return Table{
		errcode.UnknownArgument:               "Unknown argument",
		errcode.UnknownArgumentWithSuggestion: "Unknown argument: {}. Did you mean { }?",
		errcode.UnhandledArguments:            "Unhandled arguments",
		errcode.AlreadySet:                    "Argument has already been set",
		errcode.FailedToParse:                 "Failed to parse",
		errcode.NoArgumentsPassed:             "No arguments passed",
		errcode.MinValueNotReached:            "Minimum value not reached",
		errcode.MaxValueExceeded:              "Maximum value exceeded",
		errcode.MinCountNotReached:            "Minimum count not reached",
		errcode.MaxCountExceeded:              "Maximum count exceeded",
		errcode.ModeRequiresArguments:         "Mode requires arguments",
		errcode.MissingRequired:               "Missing required argument",
		errcode.AliasTooFewValues:             "Too few values for alias",
		errcode.DependentMissing: "Dependent argument missing " +
			"(needs to be before the requiring token on the command line)",
		errcode.OneOfMismatch:              `Only one argument from a "One Of" can be used at once`,
		errcode.MissingValueSeparator:      `Expected to find value separator '{}' in "{}"`,
		errcode.MissingValueAfterSeparator: "Unable to find value after separator",
	}
}

// Format substitutes tokens into tmpl.
//
// "{}" takes the next token. "{sep}" takes the next token and then every
// remaining token, each preceded by sep. Placeholders left without a token
// render empty. A template with no placeholders gets ": {, }" appended when
// there are tokens to show.
func Format(tmpl string, tokens []token.Token, p token.Prefixes) string {
	holes := placeholders(tmpl)
	if len(holes) == 0 {
		if len(tokens) == 0 {
			return tmpl
		}

		tmpl += ": {, }"
		holes = placeholders(tmpl)
	}

	var b strings.Builder

	last := 0
	next := 0

	for _, h := range holes {
		b.WriteString(tmpl[last:h.start])
		last = h.end

		if next >= len(tokens) {
			continue
		}

		b.WriteString(p.Format(tokens[next]))
		next++

		if h.joining == "" {
			continue
		}

		for ; next < len(tokens); next++ {
			b.WriteString(h.joining)
			b.WriteString(p.Format(tokens[next]))
		}
	}

	b.WriteString(tmpl[last:])

	return b.String()
}

// New returns a chain over tables, consulted in order.
func New(tables ...Table) *Chain {
	return &Chain{tables: tables, prefixes: token.DefaultPrefixes()}
}

type placeholder struct {
	start   int
	end     int
	joining string
}

// checkTemplate rejects templates with more than one greedy placeholder or a
// greedy placeholder that is not last.
func checkTemplate(tmpl string) error {
	holes := placeholders(tmpl)
	for i, h := range holes {
		if h.joining != "" && i != len(holes)-1 {
			return fmt.Errorf("%w: %q", errGreedyNotLast, tmpl)
		}
	}

	return nil
}

func placeholders(s string) []placeholder {
	var out []placeholder

	for i := 0; i < len(s); {
		open := strings.IndexByte(s[i:], '{')
		if open < 0 {
			break
		}

		open += i

		closing := strings.IndexByte(s[open+1:], '}')
		if closing < 0 {
			break
		}

		closing += open + 1
		out = append(out, placeholder{start: open, end: closing + 1, joining: s[open+1 : closing]})
		i = closing + 1
	}

	return out
}
