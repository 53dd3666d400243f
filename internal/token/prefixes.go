package token

import "strings"

// Prefixes holds the long and short prefix strings used to classify raw
// arguments.
type Prefixes struct {
	Long  string
	Short string
}

// Classify turns a raw argument into a token.
// A bare prefix (such as "--" or "-") is not a name and classifies as None.
func (p Prefixes) Classify(arg string) Token {
	if p.Long != "" && strings.HasPrefix(arg, p.Long) {
		if len(arg) == len(p.Long) {
			return Token{Prefix: None, Name: arg}
		}

		return Token{Prefix: Long, Name: arg[len(p.Long):]}
	}

	if p.Short != "" && strings.HasPrefix(arg, p.Short) && len(arg) > len(p.Short) {
		return Token{Prefix: Short, Name: arg[len(p.Short):]}
	}

	return Token{Prefix: None, Name: arg}
}

// Format renders a token with these prefixes.
func (p Prefixes) Format(t Token) string {
	switch t.Prefix {
	case Long:
		return p.Long + t.Name
	case Short:
		return p.Short + t.Name
	case None:
		return t.Name
	default:
		return t.Name
	}
}

// DefaultPrefixes returns the conventional "--" and "-" prefixes.
func DefaultPrefixes() Prefixes {
	return Prefixes{Long: "--", Short: "-"}
}
