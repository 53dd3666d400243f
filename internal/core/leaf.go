package core

import (
	"fmt"
	"reflect"
	"slices"
	"unicode/utf8"

	"github.com/toejough/argrouter/internal/errcode"
	"github.com/toejough/argrouter/internal/token"
	"github.com/toejough/argrouter/internal/value"
)

// leaf holds the state shared by every value-producing node of type T.
type leaf[T any] struct {
	meta  Meta
	parse func(raw string) (T, error)
	def   T
}

// Meta implements Node.
func (l *leaf[T]) Meta() *Meta {
	return &l.meta
}

// init resolves the typed policies; mismatches become construction errors
// reported by NewRoot.
func (l *leaf[T]) init() {
	l.parse = value.Parse[T]

	if !value.Supported(reflect.TypeFor[T]()) && l.meta.parser == nil {
		l.meta.errs = append(l.meta.errs,
			fmt.Errorf("%w: %s %s", errUnsupportedValueType, l.meta.Label(), reflect.TypeFor[T]()))
	}

	if l.meta.parser != nil {
		fn, ok := l.meta.parser.(func(string) (T, error))
		if ok {
			l.parse = fn
		} else {
			l.meta.errs = append(l.meta.errs, fmt.Errorf("%w: %s", errParserType, l.meta.Label()))
		}
	}

	if l.meta.hasDefault {
		def, ok := l.meta.def.(T)
		if ok {
			l.def = def
		} else {
			l.meta.errs = append(l.meta.errs, fmt.Errorf("%w: %s", errDefaultType, l.meta.Label()))
		}
	}

	if l.meta.checkRange != nil {
		var zero T
		if _, ok := l.meta.checkRange(zero); !ok {
			l.meta.errs = append(l.meta.errs, fmt.Errorf("%w: %s", errRangeType, l.meta.Label()))
		}
	}
}

// missing implements producer: a required node is an error, otherwise the
// default (or zero value) is validated and used.
func (l *leaf[T]) missing() (any, error) {
	if l.meta.requiredNow() {
		return nil, errcode.New(errcode.MissingRequired, l.meta.Token())
	}

	err := l.validate(l.def)
	if err != nil {
		return nil, err
	}

	return l.def, nil
}

// parseMany converts value tokens into a slice-typed T, one element per token.
func (l *leaf[T]) parseMany(t *Target, values []token.Token) (T, error) {
	var out T

	dest := reflect.ValueOf(&out).Elem()

	for _, tok := range values {
		if l.meta.parser == nil {
			err := value.Set(dest, t.raw(tok))
			if err != nil {
				var zero T
				return zero, errcode.Wrap(errcode.FailedToParse, err, tok)
			}

			continue
		}

		part, err := l.parse(t.raw(tok))
		if err != nil {
			var zero T
			return zero, errcode.Wrap(errcode.FailedToParse, err, tok)
		}

		dest.Set(reflect.AppendSlice(dest, reflect.ValueOf(part)))
	}

	return out, nil
}

// parseOne converts a single value token.
func (l *leaf[T]) parseOne(t *Target, tok token.Token) (T, error) {
	v, err := l.parse(t.raw(tok))
	if err != nil {
		var zero T
		return zero, errcode.Wrap(errcode.FailedToParse, err, tok)
	}

	return v, nil
}

// route calls the node's router, if any, with v.
func (l *leaf[T]) route(v any) error {
	if l.meta.router == nil {
		return nil
	}

	return l.meta.router(Values{v})
}

// validate applies the value range.
func (l *leaf[T]) validate(v T) error {
	return checkRange(&l.meta, v)
}

// zero implements producer.
func (l *leaf[T]) zero() any {
	var z T
	return z
}

// checkDepends fails when a sibling this node depends on has not been seen
// before it on the command line.
func checkDepends(m *Meta, in *Input, anc Ancestors) error {
	if len(m.depends) == 0 {
		return nil
	}

	var siblings []Node
	if container := anc.Container(); container != nil {
		siblings = flatChildren(container.Meta().children)
	}

	processed := in.Tokens.Processed()

	for _, dep := range m.depends {
		names := []token.Token{dep}

		for _, sibling := range siblings {
			if sibling.Meta().matchesToken(dep) {
				names = sibling.Meta().names()
				break
			}
		}

		seen := slices.ContainsFunc(processed, func(p token.Token) bool {
			return slices.Contains(names, p)
		})
		if !seen {
			return errcode.New(errcode.DependentMissing, dep)
		}
	}

	return nil
}

// checkRange applies a node's MinMaxValue policy to v.
func checkRange(m *Meta, v any) error {
	if m.checkRange == nil {
		return nil
	}

	code, _ := m.checkRange(v)
	if code != 0 {
		return errcode.New(code, m.Token())
	}

	return nil
}

// claimName consumes the front token if it names m. When expand is set, a
// short cluster whose first character is m's short name is split first, as
// in -abc matching -a and leaving -b -c pending.
func claimName(m *Meta, tokens *token.List, expand bool) (token.Token, bool) {
	front, ok := tokens.Front()
	if !ok {
		return token.Token{}, false
	}

	if m.matchesToken(front) {
		return tokens.Consume(1)[0], true
	}

	short, hasShort := m.shortRune()
	if !expand || !hasShort || front.Prefix != token.Short || utf8.RuneCountInString(front.Name) <= 1 {
		return token.Token{}, false
	}

	first, _ := utf8.DecodeRuneInString(front.Name)
	if first != short {
		return token.Token{}, false
	}

	tokens.ReplaceFront(token.SplitShort(front)...)

	return tokens.Consume(1)[0], true
}

// collectValues consumes the value tokens of a variable-length node: every
// token up to the end marker when one is configured and present, else
// unprefixed tokens up to the maximum count.
func collectValues(m *Meta, in *Input, owner token.Token) ([]token.Token, error) {
	if m.endMarker != "" {
		idx := in.Tokens.Index(func(t token.Token) bool { return in.Prefixes.Format(t) == m.endMarker })
		if idx >= 0 {
			if idx > m.maxCount {
				return nil, errcode.New(errcode.MaxCountExceeded, owner)
			}

			values := in.Tokens.Consume(idx)
			in.Tokens.Erase(0)

			if len(values) < m.minCount {
				return nil, errcode.New(errcode.MinCountNotReached, owner)
			}

			return values, nil
		}
	}

	n := 0
	for _, t := range in.Tokens.Pending() {
		if n >= m.maxCount || t.Prefix != token.None {
			break
		}

		n++
	}

	if n < m.minCount {
		return nil, errcode.New(errcode.MinCountNotReached, owner)
	}

	return in.Tokens.Consume(n), nil
}

// injectAliases replaces an aliasing node's claimed tokens with the aliased
// names, each followed by a copy of the value tokens.
func injectAliases(m *Meta, in *Input, name token.Token, values []token.Token) {
	injected := make([]token.Token, 0, len(m.aliases)*(len(values)+1))
	for _, alias := range m.aliases {
		injected = append(injected, alias)
		injected = append(injected, values...)
	}

	in.Tokens.InsertFront(injected...)
	in.Log.Debug().
		Str("alias", in.Prefixes.Format(name)).
		Strs("tokens", token.Strings(injected)).
		Msg("alias expanded")
}

// aliasTarget is the value-less target of an aliasing node.
func aliasTarget(in *Input, n Node, tokens []token.Token, anc Ancestors) *Target {
	return in.newTarget(n, tokens, anc, func(*Target) (any, error) { return nil, nil })
}
