package value

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob is a doublestar path pattern, validated when parsed from a token.
type Glob string

// Match reports whether name matches the pattern.
func (g Glob) Match(name string) bool {
	ok, err := doublestar.Match(string(g), name)

	return err == nil && ok
}

// UnmarshalText validates and stores the pattern.
func (g *Glob) UnmarshalText(text []byte) error {
	if !doublestar.ValidatePattern(string(text)) {
		return fmt.Errorf("%w: %q", errInvalidGlob, text)
	}

	*g = Glob(text)

	return nil
}

// unexported variables.
var (
	errInvalidGlob = errors.New("invalid glob pattern")
)
