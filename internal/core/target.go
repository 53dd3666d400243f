package core

import (
	"github.com/rs/zerolog"

	"github.com/toejough/argrouter/internal/token"
)

// Target is a deferred parse produced by a successful pre-parse.
//
// It records the tokens its node claimed and the targets of matched children
// in consumption order. Invoking it runs the parse, validation and routing
// phases, in that order, exactly once.
type Target struct {
	node     Node
	index    int
	tokens   []token.Token
	subs     []*Target
	anc      Ancestors
	prefixes token.Prefixes
	log      zerolog.Logger
	run      func(t *Target) (any, error)
	invoked  bool
}

// Index returns the position of the target's node among its parent's
// children, or -1 when it has no parent.
func (t *Target) Index() int {
	return t.index
}

// Invoke runs the target. A second call is a programming error and panics.
func (t *Target) Invoke() (any, error) {
	if t.invoked {
		panic(errTargetInvoked)
	}

	t.invoked = true

	return t.run(t)
}

// Node returns the node that produced the target.
func (t *Target) Node() Node {
	return t.node
}

// SubTargets returns the targets of matched children in consumption order.
func (t *Target) SubTargets() []*Target {
	return t.subs
}

// Tokens returns the tokens the node claimed.
func (t *Target) Tokens() []token.Token {
	return t.tokens
}

// raw renders a claimed token for value conversion.
func (t *Target) raw(tok token.Token) string {
	return t.prefixes.Format(tok)
}
