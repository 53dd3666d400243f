package core

import (
	"slices"

	"github.com/toejough/argrouter/internal/errcode"
	"github.com/toejough/argrouter/internal/suggest"
	"github.com/toejough/argrouter/internal/token"
)

// candidates lists every enabled name reachable below n, depth first in
// declaration order. Named modes contribute their name and extend the path
// of everything beneath them.
func candidates(n Node, path []token.Token) []suggest.Candidate {
	var out []suggest.Candidate

	for _, child := range n.Meta().children {
		cm := child.Meta()
		if !cm.enabledNow() {
			continue
		}

		switch cm.kind {
		case KindMode:
			if cm.none == "" {
				out = append(out, candidates(child, path)...)
				continue
			}

			name := token.New(token.None, cm.none)
			out = append(out, suggest.Candidate{Path: slices.Clone(path), Token: name})
			out = append(out, candidates(child, append(slices.Clone(path), name))...)
		case KindAliasGroup, KindOneOf:
			out = append(out, candidates(child, path)...)
		default:
			for _, name := range cm.names() {
				out = append(out, suggest.Candidate{Path: slices.Clone(path), Token: name})
			}
		}
	}

	return out
}

// unknownArgument reports tok as unrecognised below n, with the closest
// declared name when there is one.
func unknownArgument(n Node, tok token.Token) error {
	best, ok := suggest.Closest(tok.Name, candidates(n, nil))
	if !ok {
		return errcode.New(errcode.UnknownArgument, tok)
	}

	return errcode.New(errcode.UnknownArgumentWithSuggestion, append([]token.Token{tok}, best.Tokens()...)...)
}
