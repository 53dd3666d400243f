package core

import (
	"fmt"
	"reflect"

	"github.com/toejough/argrouter/internal/errcode"
	"github.com/toejough/argrouter/internal/token"
)

// Arg is a named node taking exactly one value: --name value, or
// --name=value when a value separator is configured.
type Arg[T any] struct {
	leaf[T]
}

// NewArg returns an arg configured by opts.
func NewArg[T any](opts ...Option) *Arg[T] {
	a := &Arg[T]{leaf: leaf[T]{meta: newMeta(KindArg, opts)}}
	a.meta.minCount, a.meta.maxCount = 1, 1
	a.init()

	return a
}

// PreParse implements Node.
func (a *Arg[T]) PreParse(in *Input, anc Ancestors) (*Target, error) {
	if !in.allowed(a, anc) {
		return nil, nil
	}

	front, ok := in.Tokens.Front()
	if !ok {
		return nil, nil
	}

	matched, err := claimSeparated(&a.meta, in, front)
	if err != nil || !matched {
		return nil, err
	}

	err = checkDepends(&a.meta, in, anc)
	if err != nil {
		return nil, err
	}

	if in.Tokens.Len() < 2 {
		if len(a.meta.aliases) > 0 {
			return nil, errcode.New(errcode.AliasTooFewValues, front)
		}

		return nil, errcode.New(errcode.MinCountNotReached, a.meta.Token())
	}

	claimed := in.Tokens.Consume(2)

	if len(a.meta.aliases) > 0 {
		injectAliases(&a.meta, in, claimed[0], claimed[1:])
		return aliasTarget(in, a, claimed, anc), nil
	}

	return in.newTarget(a, claimed, anc, a.run), nil
}

func (a *Arg[T]) run(t *Target) (any, error) {
	v, err := a.parseOne(t, t.tokens[1])
	if err != nil {
		return nil, err
	}

	err = a.validate(v)
	if err != nil {
		return nil, err
	}

	err = a.route(v)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// MultiArg is a named node taking one or more value tokens, collected into a
// slice-typed T.
type MultiArg[T any] struct {
	leaf[T]
}

// NewMultiArg returns a multi arg configured by opts. Without a count policy
// it takes at least one value and has no maximum.
func NewMultiArg[T any](opts ...Option) *MultiArg[T] {
	a := &MultiArg[T]{leaf: leaf[T]{meta: newMeta(KindMultiArg, opts)}}
	if !a.meta.countSet {
		a.meta.minCount, a.meta.maxCount = 1, Unbounded
	}

	if reflect.TypeFor[T]().Kind() != reflect.Slice {
		a.meta.errs = append(a.meta.errs,
			fmt.Errorf("%w: %s must collect into a slice", errUnsupportedValueType, a.meta.Label()))
	}

	a.init()

	return a
}

// PreParse implements Node.
func (a *MultiArg[T]) PreParse(in *Input, anc Ancestors) (*Target, error) {
	if !in.allowed(a, anc) {
		return nil, nil
	}

	name, ok := claimName(&a.meta, in.Tokens, false)
	if !ok {
		return nil, nil
	}

	err := checkDepends(&a.meta, in, anc)
	if err != nil {
		return nil, err
	}

	values, err := collectValues(&a.meta, in, a.meta.Token())
	if err != nil {
		return nil, err
	}

	claimed := append([]token.Token{name}, values...)

	if len(a.meta.aliases) > 0 {
		injectAliases(&a.meta, in, name, values)
		return aliasTarget(in, a, claimed, anc), nil
	}

	return in.newTarget(a, claimed, anc, a.run), nil
}

func (a *MultiArg[T]) run(t *Target) (any, error) {
	v, err := a.parseMany(t, t.tokens[1:])
	if err != nil {
		return nil, err
	}

	err = a.validate(v)
	if err != nil {
		return nil, err
	}

	err = a.route(v)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// claimSeparated matches the front token against an arg's name. With a value
// separator configured the value must be attached, and the token is split
// into a name token and a value token.
func claimSeparated(m *Meta, in *Input, front token.Token) (bool, error) {
	if m.separator == "" {
		return m.matchesToken(front), nil
	}

	name, val, found := token.SplitSeparator(front, m.separator)

	switch {
	case found && m.matchesToken(name):
		if val.Name == "" {
			return false, errcode.New(errcode.MissingValueAfterSeparator, front)
		}

		in.Tokens.ReplaceFront(name, val)

		return true, nil
	case m.matchesToken(front):
		return false, errcode.New(errcode.MissingValueSeparator, token.New(token.None, m.separator), front)
	default:
		return false, nil
	}
}
