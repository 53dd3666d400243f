package core

// ForwardingArg hands everything after its name to another program, verbatim.
type ForwardingArg struct {
	leaf[[]string]
}

// NewForwardingArg returns a forwarding arg triggered by its none name.
func NewForwardingArg(opts ...Option) *ForwardingArg {
	f := &ForwardingArg{leaf: leaf[[]string]{meta: newMeta(KindForwarding, opts)}}
	f.meta.minCount, f.meta.maxCount = 0, Unbounded
	f.init()

	return f
}

// PreParse implements Node.
func (f *ForwardingArg) PreParse(in *Input, anc Ancestors) (*Target, error) {
	if !in.allowed(f, anc) {
		return nil, nil
	}

	front, ok := in.Tokens.Front()
	if !ok || !f.meta.matchesToken(front) {
		return nil, nil
	}

	err := checkDepends(&f.meta, in, anc)
	if err != nil {
		return nil, err
	}

	return in.newTarget(f, in.Tokens.Consume(in.Tokens.Len()), anc, f.run), nil
}

func (f *ForwardingArg) run(t *Target) (any, error) {
	out := make([]string, 0, len(t.tokens)-1)
	for _, tok := range t.tokens[1:] {
		out = append(out, t.raw(tok))
	}

	err := f.route(out)
	if err != nil {
		return nil, err
	}

	return out, nil
}
