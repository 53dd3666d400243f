package core

import (
	"cmp"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/toejough/argrouter/internal/errcode"
	"github.com/toejough/argrouter/internal/token"
)

// Exported constants.
const (
	KindFlag Kind = iota
	KindCountingFlag
	KindArg
	KindMultiArg
	KindPositional
	KindForwarding
	KindMode
	KindAliasGroup
	KindOneOf
	KindRoot
)

// Unbounded is the maximum count of a node that accepts any number of values.
const Unbounded = math.MaxInt

// Kind identifies a node variant.
type Kind int

// String returns the kind's display name.
func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindCountingFlag:
		return "counting flag"
	case KindArg:
		return "arg"
	case KindMultiArg:
		return "multi arg"
	case KindPositional:
		return "positional arg"
	case KindForwarding:
		return "forwarding arg"
	case KindMode:
		return "mode"
	case KindAliasGroup:
		return "alias group"
	case KindOneOf:
		return "one of"
	case KindRoot:
		return "root"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Meta is the immutable description of a node: its names, arity, policies and
// children. It is built from Options when the node is constructed.
type Meta struct {
	kind            Kind
	long            string
	short           string
	none            string
	display         string
	description     string
	minCount        int
	maxCount        int
	countSet        bool
	required        bool
	def             any
	hasDefault      bool
	separator       string
	endMarker       string
	parser          any
	router          RouteFunc
	aliases         []token.Token
	depends         []token.Token
	enabled         func() bool
	enabledRequired bool
	noResult        bool
	checkRange      func(v any) (errcode.Code, bool)
	children        []Node
	errs            []error
}

// Children returns the node's children in declaration order.
func (m *Meta) Children() []Node {
	return m.children
}

// Description returns the node's description.
func (m *Meta) Description() string {
	return m.description
}

// Display returns the display name, falling back to the none name.
func (m *Meta) Display() string {
	if m.display != "" {
		return m.display
	}

	return m.none
}

// Kind returns the node variant.
func (m *Meta) Kind() Kind {
	return m.kind
}

// Label renders the node's names for messages, e.g. "--force,-f".
func (m *Meta) Label() string {
	var names []string

	if m.long != "" {
		names = append(names, token.New(token.Long, m.long).String())
	}

	if m.short != "" {
		names = append(names, token.New(token.Short, m.short).String())
	}

	if len(names) == 0 {
		if d := m.Display(); d != "" {
			return d
		}

		return m.kind.String()
	}

	return strings.Join(names, ",")
}

// Long returns the long name.
func (m *Meta) Long() string {
	return m.long
}

// MaxCount returns the maximum number of value tokens.
func (m *Meta) MaxCount() int {
	return m.maxCount
}

// MinCount returns the minimum number of value tokens.
func (m *Meta) MinCount() int {
	return m.minCount
}

// None returns the none name (the mode name, or a positional's label).
func (m *Meta) None() string {
	return m.none
}

// Required reports whether the node must appear on the command line.
func (m *Meta) Required() bool {
	return m.required
}

// Short returns the short name.
func (m *Meta) Short() string {
	return m.short
}

// Token returns the token that identifies the node in error messages.
func (m *Meta) Token() token.Token {
	switch {
	case m.long != "":
		return token.New(token.Long, m.long)
	case m.short != "":
		return token.New(token.Short, m.short)
	default:
		return token.New(token.None, m.Display())
	}
}

// Option configures a node at construction.
type Option func(m *Meta)

// Alias makes the node stand in for other named nodes: when it matches, the
// aliased names are placed back on the command line, each followed by the
// node's own value tokens.
func Alias(names ...string) Option {
	return func(m *Meta) {
		for _, name := range names {
			m.aliases = append(m.aliases, token.DefaultPrefixes().Classify(name))
		}
	}
}

// Children adds child nodes in declaration order.
func Children(nodes ...Node) Option {
	return func(m *Meta) {
		m.children = append(m.children, nodes...)
	}
}

// Default sets the value used when the node never matches.
func Default[T any](v T) Option {
	return func(m *Meta) {
		m.def = v
		m.hasDefault = true
	}
}

// Depends requires the named sibling nodes to appear earlier on the command
// line than this node.
func Depends(names ...string) Option {
	return func(m *Meta) {
		for _, name := range names {
			m.depends = append(m.depends, token.DefaultPrefixes().Classify(name))
		}
	}
}

// Description sets the help description.
func Description(text string) Option {
	return func(m *Meta) {
		m.description = text
	}
}

// DisplayName sets the label used for unnamed nodes in messages.
func DisplayName(name string) Option {
	return func(m *Meta) {
		m.display = name
	}
}

// EndMarker terminates a variable-length node's value tokens at marker.
func EndMarker(marker string) Option {
	return func(m *Meta) {
		m.endMarker = marker
	}
}

// FixedCount requires exactly n value tokens.
func FixedCount(n int) Option {
	return MinMaxCount(n, n)
}

// LongName sets the long name, without prefix.
func LongName(name string) Option {
	return func(m *Meta) {
		m.long = name
	}
}

// MaxCount bounds the number of value tokens from above.
func MaxCount(n int) Option {
	return MinMaxCount(0, n)
}

// MinCount bounds the number of value tokens from below, leaving the maximum
// unbounded.
func MinCount(n int) Option {
	return MinMaxCount(n, Unbounded)
}

// MinMaxCount bounds the number of value tokens.
func MinMaxCount(lo, hi int) Option {
	return func(m *Meta) {
		m.minCount = lo
		m.maxCount = hi
		m.countSet = true
	}
}

// MinMaxValue bounds parsed values, inclusive. For slice values each element
// is checked.
func MinMaxValue[T cmp.Ordered](lo, hi T) Option {
	return func(m *Meta) {
		m.checkRange = func(v any) (errcode.Code, bool) {
			switch typed := v.(type) {
			case T:
				return rangeCode(typed, lo, hi), true
			case []T:
				for _, elem := range typed {
					if code := rangeCode(elem, lo, hi); code != 0 {
						return code, true
					}
				}

				return 0, true
			default:
				return 0, false
			}
		}
	}
}

// NoneName sets the unprefixed name: a mode's name, a positional's label or a
// forwarding arg's trigger token.
func NoneName(name string) Option {
	return func(m *Meta) {
		m.none = name
	}
}

// NoResult keeps the node's value out of its mode's router values. The node
// is still parsed and validated.
func NoResult() Option {
	return func(m *Meta) {
		m.noResult = true
	}
}

// Parser replaces the global value parser for one node.
func Parser[T any](fn func(raw string) (T, error)) Option {
	return func(m *Meta) {
		m.parser = fn
	}
}

// Required makes the node mandatory.
func Required() Option {
	return func(m *Meta) {
		m.required = true
	}
}

// Router sets the callback invoked with the node's parsed values.
func Router(fn RouteFunc) Option {
	return func(m *Meta) {
		m.router = fn
	}
}

// RuntimeEnable makes the node invisible to parsing while enabled reports
// false.
func RuntimeEnable(enabled func() bool) Option {
	return func(m *Meta) {
		m.enabled = enabled
	}
}

// RuntimeEnableRequired is RuntimeEnable for a node that is required only
// while it is enabled.
func RuntimeEnableRequired(enabled func() bool) Option {
	return func(m *Meta) {
		m.enabled = enabled
		m.enabledRequired = true
	}
}

// ShortName sets the single-character short name.
func ShortName(r rune) Option {
	return func(m *Meta) {
		m.short = string(r)
	}
}

// ValueSeparator requires the value to be attached to the name, as in
// --name=value.
func ValueSeparator(sep rune) Option {
	return func(m *Meta) {
		m.separator = string(sep)
	}
}

// enabledNow reports whether the node currently takes part in parsing.
func (m *Meta) enabledNow() bool {
	return m.enabled == nil || m.enabled()
}

// matchesName reports whether tok names this node, including the name part
// of a separator-joined token.
func (m *Meta) matchesName(tok token.Token) bool {
	if m.matchesToken(tok) {
		return true
	}

	name, _, found := token.SplitSeparator(tok, m.separator)

	return found && m.matchesToken(name)
}

func (m *Meta) matchesToken(tok token.Token) bool {
	switch tok.Prefix {
	case token.Long:
		return m.long != "" && tok.Name == m.long
	case token.Short:
		return m.short != "" && tok.Name == m.short
	case token.None:
		return m.none != "" && m.kind != KindPositional && tok.Name == m.none
	default:
		return false
	}
}

// requiredNow reports whether a missing node is an error at this moment.
func (m *Meta) requiredNow() bool {
	if m.enabledRequired {
		return m.enabledNow()
	}

	return m.required && m.enabledNow()
}

// names returns every name token the node declares.
func (m *Meta) names() []token.Token {
	var out []token.Token

	if m.long != "" {
		out = append(out, token.New(token.Long, m.long))
	}

	if m.short != "" {
		out = append(out, token.New(token.Short, m.short))
	}

	if m.none != "" && m.kind != KindPositional {
		out = append(out, token.New(token.None, m.none))
	}

	return out
}

// shortRune returns the short name as a rune.
func (m *Meta) shortRune() (rune, bool) {
	if m.short == "" {
		return 0, false
	}

	r, _ := utf8.DecodeRuneInString(m.short)

	return r, true
}

func newMeta(kind Kind, opts []Option) Meta {
	m := Meta{kind: kind}
	for _, opt := range opts {
		opt(&m)
	}

	return m
}

func rangeCode[T cmp.Ordered](v, lo, hi T) errcode.Code {
	switch {
	case v < lo:
		return errcode.MinValueNotReached
	case v > hi:
		return errcode.MaxValueExceeded
	default:
		return 0
	}
}
