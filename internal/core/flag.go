package core

import (
	"github.com/toejough/argrouter/internal/token"
)

// CountingFlag is a repeatable flag whose value is the number of times it
// appeared.
type CountingFlag struct {
	leaf[int]
}

// NewCountingFlag returns a counting flag configured by opts.
func NewCountingFlag(opts ...Option) *CountingFlag {
	f := &CountingFlag{leaf: leaf[int]{meta: newMeta(KindCountingFlag, opts)}}
	f.meta.minCount, f.meta.maxCount = 0, 0
	f.init()

	return f
}

// PreParse implements Node. Inside a mode each occurrence is its own target
// and the mode merges them. A routed counting flag has no mode to merge for
// it, so it claims every consecutive occurrence itself.
func (f *CountingFlag) PreParse(in *Input, anc Ancestors) (*Target, error) {
	if f.meta.router == nil {
		return preParseSwitch(f, in, anc, func(*Target) (any, error) { return 1, nil })
	}

	t, err := preParseSwitch(f, in, anc, f.run)
	if err != nil || t == nil || len(f.meta.aliases) > 0 {
		return t, err
	}

	for {
		tok, ok := claimName(&f.meta, in.Tokens, true)
		if !ok {
			return t, nil
		}

		t.tokens = append(t.tokens, tok)
	}
}

// run validates and routes the count of a routed counting flag.
func (f *CountingFlag) run(t *Target) (any, error) {
	v, err := f.finish(len(t.tokens))
	if err != nil {
		return nil, err
	}

	err = f.route(v)
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (f *CountingFlag) finish(acc any) (any, error) {
	n, _ := acc.(int)

	err := f.validate(n)
	if err != nil {
		return nil, err
	}

	return n, nil
}

// merge adds one occurrence to the running count.
func (f *CountingFlag) merge(acc any, set bool, _ *Target, _ any) (any, error) {
	if !set {
		return 1, nil
	}

	n, _ := acc.(int)

	return n + 1, nil
}

// Flag is a boolean switch: true when present, false when absent.
type Flag struct {
	leaf[bool]
}

// NewFlag returns a flag configured by opts.
func NewFlag(opts ...Option) *Flag {
	f := &Flag{leaf: leaf[bool]{meta: newMeta(KindFlag, opts)}}
	f.meta.minCount, f.meta.maxCount = 0, 0
	f.init()

	return f
}

// PreParse implements Node.
func (f *Flag) PreParse(in *Input, anc Ancestors) (*Target, error) {
	return preParseSwitch(f, in, anc, func(*Target) (any, error) {
		err := f.route(true)
		if err != nil {
			return nil, err
		}

		return true, nil
	})
}

// preParseSwitch claims a flag-like node's name, splitting short clusters.
func preParseSwitch(n Node, in *Input, anc Ancestors, run func(*Target) (any, error)) (*Target, error) {
	if !in.allowed(n, anc) {
		return nil, nil
	}

	m := n.Meta()

	tok, ok := claimName(m, in.Tokens, true)
	if !ok {
		return nil, nil
	}

	err := checkDepends(m, in, anc)
	if err != nil {
		return nil, err
	}

	if len(m.aliases) > 0 {
		injectAliases(m, in, tok, nil)
		return aliasTarget(in, n, []token.Token{tok}, anc), nil
	}

	return in.newTarget(n, []token.Token{tok}, anc, run), nil
}
