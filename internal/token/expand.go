package token

import (
	"strings"
	"unicode/utf8"
)

// Expand classifies raw arguments into a flat token list.
//
// A short token naming several characters is split into one short token per
// character when every character satisfies clusterable, so "-abc" becomes
// "-a -b -c" when a, b and c are all flag short names. Anything else passes
// through unchanged; unknown tokens are left for dispatch to report.
func Expand(args []string, p Prefixes, clusterable func(r rune) bool) []Token {
	out := make([]Token, 0, len(args))

	for _, arg := range args {
		t := p.Classify(arg)
		if t.Prefix != Short || utf8.RuneCountInString(t.Name) <= 1 || clusterable == nil {
			out = append(out, t)
			continue
		}

		if strings.IndexFunc(t.Name, func(r rune) bool { return !clusterable(r) }) >= 0 {
			out = append(out, t)
			continue
		}

		out = append(out, SplitShort(t)...)
	}

	return out
}

// SplitSeparator splits t at the first occurrence of sep into a name token
// with t's prefix and a None value token. found is false when t has no prefix
// or does not contain sep.
func SplitSeparator(t Token, sep string) (Token, Token, bool) {
	if t.Prefix == None || sep == "" {
		return t, Token{}, false
	}

	name, value, found := strings.Cut(t.Name, sep)
	if !found {
		return t, Token{}, false
	}

	return Token{Prefix: t.Prefix, Name: name}, Token{Prefix: None, Name: value}, true
}

// SplitShort splits a short token into one short token per character.
func SplitShort(t Token) []Token {
	if t.Prefix != Short {
		return []Token{t}
	}

	out := make([]Token, 0, utf8.RuneCountInString(t.Name))
	for _, r := range t.Name {
		out = append(out, Token{Prefix: Short, Name: string(r)})
	}

	return out
}
