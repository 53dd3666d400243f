// Package token models classified command-line tokens and the stream the
// dispatcher consumes them from.
package token

import "strings"

// Exported constants.
const (
	None Prefix = iota
	Long
	Short
)

// Prefix identifies how a token was introduced on the command line.
type Prefix int

// String returns a readable name for the prefix kind.
func (p Prefix) String() string {
	switch p {
	case Long:
		return "long"
	case Short:
		return "short"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

// Token is one classified command-line argument.
// Name never includes the prefix characters.
type Token struct {
	Prefix Prefix
	Name   string
}

// New returns a token with the given prefix kind and name.
func New(prefix Prefix, name string) Token {
	return Token{Prefix: prefix, Name: name}
}

// String renders the token with the default prefixes.
func (t Token) String() string {
	return DefaultPrefixes().Format(t)
}

// Join renders tokens with the default prefixes, separated by sep.
func Join(tokens []Token, sep string) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, t.String())
	}

	return strings.Join(parts, sep)
}

// Strings renders each token with the default prefixes.
func Strings(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.String())
	}

	return out
}
