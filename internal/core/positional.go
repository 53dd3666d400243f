package core

import (
	"reflect"

	"github.com/toejough/argrouter/internal/token"
)

// Positional is an unnamed node matched by position. A scalar T takes exactly
// one token; a slice T takes any number unless a count policy says otherwise.
type Positional[T any] struct {
	leaf[T]

	many bool
}

// NewPositional returns a positional arg configured by opts. Its none name is
// the label shown in messages.
func NewPositional[T any](opts ...Option) *Positional[T] {
	p := &Positional[T]{leaf: leaf[T]{meta: newMeta(KindPositional, opts)}}
	p.many = reflect.TypeFor[T]().Kind() == reflect.Slice

	switch {
	case p.meta.countSet:
	case p.many:
		p.meta.minCount, p.meta.maxCount = 0, Unbounded
	default:
		p.meta.minCount, p.meta.maxCount = 1, 1
	}

	p.init()

	return p
}

// PreParse implements Node. Only unprefixed tokens are absorbed, so a
// positional never swallows a following flag unless an end marker is used.
func (p *Positional[T]) PreParse(in *Input, anc Ancestors) (*Target, error) {
	if !in.allowed(p, anc) {
		return nil, nil
	}

	front, ok := in.Tokens.Front()
	if !ok || front.Prefix != token.None {
		return nil, nil
	}

	err := checkDepends(&p.meta, in, anc)
	if err != nil {
		return nil, err
	}

	values, err := collectValues(&p.meta, in, p.meta.Token())
	if err != nil {
		return nil, err
	}

	return in.newTarget(p, values, anc, p.run), nil
}

func (p *Positional[T]) run(t *Target) (any, error) {
	var (
		v   T
		err error
	)

	switch {
	case p.many:
		v, err = p.parseMany(t, t.tokens)
	case len(t.tokens) > 0:
		v, err = p.parseOne(t, t.tokens[0])
	default:
		v = p.def
	}

	if err != nil {
		return nil, err
	}

	err = p.validate(v)
	if err != nil {
		return nil, err
	}

	err = p.route(v)
	if err != nil {
		return nil, err
	}

	return v, nil
}
