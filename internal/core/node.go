package core

import (
	"github.com/rs/zerolog"

	"github.com/toejough/argrouter/internal/token"
)

// Ancestors is the path from a node's parent up to the root, nearest first.
// It is passed down each dispatch frame and never stored by nodes.
type Ancestors []Node

// Parent returns the nearest ancestor, or nil at the top of the tree.
func (a Ancestors) Parent() Node {
	if len(a) == 0 {
		return nil
	}

	return a[0]
}

// Container returns the nearest ancestor that is not a group: the mode or
// root whose namespace a node's names belong to.
func (a Ancestors) Container() Node {
	for _, n := range a {
		if !isGroup(n.Meta()) {
			return n
		}
	}

	return nil
}

// Push returns the path as seen by a child of n.
func (a Ancestors) Push(n Node) Ancestors {
	out := make(Ancestors, 0, len(a)+1)
	out = append(out, n)

	return append(out, a...)
}

// Gate is the runtime validator consulted before a node may claim tokens.
type Gate func(n Node, anc Ancestors) bool

// Input is the per-parse state shared by every pre-parse call.
type Input struct {
	Tokens   *token.List
	Prefixes token.Prefixes
	Gate     Gate
	Log      zerolog.Logger
}

// Node is one element of a parse tree.
//
// PreParse decides whether the node can claim the leading pending tokens. On
// a match it consumes them and returns a Target; otherwise it returns nil and
// leaves the tokens as they were.
type Node interface {
	Meta() *Meta
	PreParse(in *Input, anc Ancestors) (*Target, error)
}

// RouteFunc receives the parsed values of a node or mode.
type RouteFunc func(values Values) error

// merger is a producer whose value accumulates over several matches.
// Validation of a merged value runs in finish, after the last merge.
type merger interface {
	producer
	merge(acc any, set bool, sub *Target, v any) (any, error)
	finish(acc any) (any, error)
}

// producer is a node that contributes a value to its parent's router.
type producer interface {
	Node
	// missing returns the value to use when the node never matched.
	missing() (any, error)
	// zero returns the zero value of the node's value type.
	zero() any
}

// allowed reports whether n may take part in this dispatch.
func (in *Input) allowed(n Node, anc Ancestors) bool {
	if !n.Meta().enabledNow() {
		return false
	}

	return in.Gate == nil || in.Gate(n, anc)
}

func (in *Input) newTarget(n Node, tokens []token.Token, anc Ancestors, run func(*Target) (any, error)) *Target {
	return &Target{
		node:     n,
		index:    -1,
		tokens:   tokens,
		anc:      anc,
		prefixes: in.Prefixes,
		log:      in.Log,
		run:      run,
	}
}

// flatChildren returns nodes with every group replaced by its children,
// which share the group's namespace.
func flatChildren(nodes []Node) []Node {
	var out []Node

	for _, n := range nodes {
		if isGroup(n.Meta()) {
			out = append(out, flatChildren(n.Meta().children)...)
			continue
		}

		out = append(out, n)
	}

	return out
}

func isGroup(m *Meta) bool {
	return m.kind == KindAliasGroup || m.kind == KindOneOf
}

func isMultiStage(n Node) bool {
	_, ok := n.(merger)
	return ok
}

// producesValue reports whether n is parsed and validated as a value of its
// parent mode. Aliasing nodes only rewrite the command line.
func producesValue(n Node) bool {
	if _, ok := n.(producer); !ok {
		return false
	}

	return len(n.Meta().aliases) == 0
}
