// Package suggest finds the declared name closest to an unrecognised token.
package suggest

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/toejough/argrouter/internal/token"
)

// Candidate is a name a user could have typed: the token itself and the mode
// names that must precede it.
type Candidate struct {
	Path  []token.Token
	Token token.Token
}

// Tokens returns the path followed by the candidate token.
func (c Candidate) Tokens() []token.Token {
	out := make([]token.Token, 0, len(c.Path)+1)
	out = append(out, c.Path...)

	return append(out, c.Token)
}

// Closest returns the candidate whose name has the smallest edit distance to
// name. Ties keep the earliest candidate. ok is false when there are no
// candidates.
func Closest(name string, candidates []Candidate) (Candidate, bool) {
	best := -1
	bestScore := 0

	for i, c := range candidates {
		score := Distance(name, c.Token.Name)
		if best < 0 || score < bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 {
		return Candidate{}, false
	}

	return candidates[best], true
}

// Distance returns the Levenshtein distance between a and b, counted in code
// points rather than bytes.
func Distance(a, b string) int {
	return fuzzy.LevenshteinDistance(a, b)
}
