package core

import (
	"fmt"
	"reflect"

	"github.com/toejough/argrouter/internal/errcode"
	"github.com/toejough/argrouter/internal/token"
)

// AliasGroup merges the values of several named children into one slot of
// type T, e.g. --count N together with a counting -a.
type AliasGroup[T any] struct {
	meta Meta
	def  T
}

// NewAliasGroup returns an alias group over the children given with the
// Children option.
func NewAliasGroup[T any](opts ...Option) *AliasGroup[T] {
	g := &AliasGroup[T]{meta: newMeta(KindAliasGroup, opts)}

	for _, child := range g.meta.children {
		p, ok := child.(producer)
		if !ok || reflect.TypeOf(p.zero()) != reflect.TypeFor[T]() || len(child.Meta().names()) == 0 {
			g.meta.errs = append(g.meta.errs, fmt.Errorf("%w: %s", errAliasGroupChild, child.Meta().Label()))
			continue
		}

		// A merged child is never finished on its own, so its range would
		// go unchecked; the group's range covers the merged value.
		if isMultiStage(child) && child.Meta().checkRange != nil {
			g.meta.errs = append(g.meta.errs, fmt.Errorf("%w: %s", errAliasGroupChildRange, child.Meta().Label()))
		}
	}

	g.def, g.meta.errs = groupDefault[T](g.meta)

	return g
}

// Meta implements Node.
func (g *AliasGroup[T]) Meta() *Meta {
	return &g.meta
}

// PreParse implements Node.
func (g *AliasGroup[T]) PreParse(in *Input, anc Ancestors) (*Target, error) {
	return preParseGroup(g, in, anc)
}

func (g *AliasGroup[T]) finish(acc any) (any, error) {
	err := checkRange(&g.meta, acc)
	if err != nil {
		return nil, err
	}

	return acc, nil
}

// merge folds one child's contribution into the slot. Multi-stage children
// accumulate; anything else may only fill an empty slot.
func (g *AliasGroup[T]) merge(acc any, set bool, sub *Target, v any) (any, error) {
	child := sub.subs[0]

	if m, ok := child.node.(merger); ok {
		return m.merge(acc, set, child, v)
	}

	if set {
		return nil, errcode.New(errcode.AlreadySet, child.tokens[0])
	}

	return v, nil
}

func (g *AliasGroup[T]) missing() (any, error) {
	return missingGroup(&g.meta, g.def)
}

func (g *AliasGroup[T]) zero() any {
	var z T
	return z
}

// OneOf accepts exactly one of its children. Its value is the value of
// whichever child matched.
type OneOf struct {
	meta Meta
}

// NewOneOf returns a one-of over the children given with the Children option.
func NewOneOf(opts ...Option) *OneOf {
	o := &OneOf{meta: newMeta(KindOneOf, opts)}

	for _, child := range o.meta.children {
		if _, ok := child.(producer); !ok {
			o.meta.errs = append(o.meta.errs, fmt.Errorf("%w: %s", errOneOfChild, child.Meta().Label()))
		}
	}

	if !o.meta.required && !o.meta.hasDefault {
		o.meta.errs = append(o.meta.errs, errOneOfDefault)
	}

	return o
}

// Meta implements Node.
func (o *OneOf) Meta() *Meta {
	return &o.meta
}

// PreParse implements Node.
func (o *OneOf) PreParse(in *Input, anc Ancestors) (*Target, error) {
	return preParseGroup(o, in, anc)
}

// choice is a one-of's accumulator: which child contributed, and its value.
type choice struct {
	index int
	value any
}

func (o *OneOf) finish(acc any) (any, error) {
	c, _ := acc.(choice)

	if m, ok := o.meta.children[c.index].(merger); ok {
		v, err := m.finish(c.value)
		if err != nil {
			return nil, err
		}

		c.value = v
	}

	err := checkRange(&o.meta, c.value)
	if err != nil {
		return nil, err
	}

	return c.value, nil
}

func (o *OneOf) merge(acc any, set bool, sub *Target, v any) (any, error) {
	child := sub.subs[0]

	if !set {
		if m, ok := child.node.(merger); ok {
			first, err := m.merge(nil, false, child, v)
			if err != nil {
				return nil, err
			}

			v = first
		}

		return choice{index: child.index, value: v}, nil
	}

	prev, _ := acc.(choice)
	if prev.index != child.index {
		return nil, errcode.New(errcode.OneOfMismatch, child.tokens[0])
	}

	m, ok := child.node.(merger)
	if !ok {
		return nil, errcode.New(errcode.AlreadySet, child.tokens[0])
	}

	next, err := m.merge(prev.value, true, child, v)
	if err != nil {
		return nil, err
	}

	return choice{index: prev.index, value: next}, nil
}

func (o *OneOf) missing() (any, error) {
	return missingGroup(&o.meta, o.meta.def)
}

func (o *OneOf) zero() any {
	return nil
}

// groupDefault resolves a typed group default, recording a mismatch.
func groupDefault[T any](m Meta) (T, []error) {
	var def T

	if !m.hasDefault {
		return def, m.errs
	}

	def, ok := m.def.(T)
	if !ok {
		return def, append(m.errs, fmt.Errorf("%w: %s", errDefaultType, m.Label()))
	}

	return def, m.errs
}

// groupTokens returns the name tokens of every child, for messages about the
// group as a whole.
func groupTokens(m *Meta) []token.Token {
	var out []token.Token

	for _, child := range m.children {
		if tok := child.Meta().Token(); tok.Name != "" {
			out = append(out, tok)
		}
	}

	return out
}

func missingGroup(m *Meta, def any) (any, error) {
	if m.requiredNow() {
		return nil, errcode.New(errcode.MissingRequired, groupTokens(m)...)
	}

	err := checkRange(m, def)
	if err != nil {
		return nil, err
	}

	return def, nil
}

// preParseGroup offers the pending tokens to each child in order; the first
// match is wrapped in a target for the group.
func preParseGroup(g Node, in *Input, anc Ancestors) (*Target, error) {
	if !in.allowed(g, anc) {
		return nil, nil
	}

	inner := anc.Push(g)

	for i, child := range g.Meta().children {
		sub, err := child.PreParse(in, inner)
		if err != nil {
			return nil, err
		}

		if sub == nil {
			continue
		}

		sub.index = i

		t := in.newTarget(g, sub.tokens, anc, func(t *Target) (any, error) {
			return t.subs[0].Invoke()
		})
		t.subs = []*Target{sub}

		return t, nil
	}

	return nil, nil
}
