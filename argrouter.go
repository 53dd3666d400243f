package argrouter

import (
	"cmp"
	"io"

	"github.com/rs/zerolog"

	"github.com/toejough/argrouter/internal/core"
	"github.com/toejough/argrouter/internal/display"
	"github.com/toejough/argrouter/internal/errcode"
	"github.com/toejough/argrouter/internal/token"
	"github.com/toejough/argrouter/internal/translate"
	"github.com/toejough/argrouter/internal/value"
)

// Error codes, for use with errors.Is.
const (
	ErrUnknownArgument               = errcode.UnknownArgument
	ErrUnknownArgumentWithSuggestion = errcode.UnknownArgumentWithSuggestion
	ErrUnhandledArguments            = errcode.UnhandledArguments
	ErrAlreadySet                    = errcode.AlreadySet
	ErrFailedToParse                 = errcode.FailedToParse
	ErrNoArgumentsPassed             = errcode.NoArgumentsPassed
	ErrMinValueNotReached            = errcode.MinValueNotReached
	ErrMaxValueExceeded              = errcode.MaxValueExceeded
	ErrMinCountNotReached            = errcode.MinCountNotReached
	ErrMaxCountExceeded              = errcode.MaxCountExceeded
	ErrModeRequiresArguments         = errcode.ModeRequiresArguments
	ErrMissingRequired               = errcode.MissingRequired
	ErrAliasTooFewValues             = errcode.AliasTooFewValues
	ErrDependentMissing              = errcode.DependentMissing
	ErrOneOfMismatch                 = errcode.OneOfMismatch
	ErrMissingValueSeparator         = errcode.MissingValueSeparator
	ErrMissingValueAfterSeparator    = errcode.MissingValueAfterSeparator
)

// Unbounded is the maximum count of a node that accepts any number of values.
const Unbounded = core.Unbounded

// --- Re-exported types ---

// Ancestors is the path from a node's parent up to the root, nearest first.
type Ancestors = core.Ancestors

// Catalog is a translation table for one language, loaded from a file.
type Catalog = translate.Catalog

// Code identifies one kind of parse failure.
type Code = errcode.Code

// Gate decides at parse time whether a node may claim tokens.
type Gate = core.Gate

// Glob is a path pattern value, validated when parsed.
type Glob = value.Glob

// Node is one element of a parse tree.
type Node = core.Node

// Option configures a node.
type Option = core.Option

// ParseError is a parse failure with its translated message.
type ParseError = core.ParseError

// Root is a validated parse tree.
type Root = core.Root

// RootOption configures a Root.
type RootOption = core.RootOption

// RouteFunc receives the parsed values of a node or mode.
type RouteFunc = core.RouteFunc

// Styles controls how Run renders failures.
type Styles = display.Styles

// Table maps error codes to message templates.
type Table = translate.Table

// Token is a classified command-line argument.
type Token = token.Token

// Translator renders an error code and its tokens as a message.
type Translator = translate.Translator

// Values holds a router's inputs in declaration order.
type Values = core.Values

// --- Node constructors ---

// AliasGroup merges several named children into one value of type T.
func AliasGroup[T any](opts ...Option) *core.AliasGroup[T] {
	return core.NewAliasGroup[T](opts...)
}

// Arg is a named node taking one value.
func Arg[T any](opts ...Option) *core.Arg[T] {
	return core.NewArg[T](opts...)
}

// CountingFlag is a repeatable flag whose value is how often it appeared.
func CountingFlag(opts ...Option) *core.CountingFlag {
	return core.NewCountingFlag(opts...)
}

// Flag is a boolean switch.
func Flag(opts ...Option) *core.Flag {
	return core.NewFlag(opts...)
}

// ForwardingArg passes every token after its name through untouched.
func ForwardingArg(opts ...Option) *core.ForwardingArg {
	return core.NewForwardingArg(opts...)
}

// Mode groups children under a name. Without a name it is the root's
// anonymous mode, used when no other child matches.
func Mode(opts ...Option) *core.Mode {
	return core.NewMode(opts...)
}

// MultiArg is a named node taking one or more values into a slice.
func MultiArg[T any](opts ...Option) *core.MultiArg[T] {
	return core.NewMultiArg[T](opts...)
}

// NewRoot validates a tree and returns its root.
func NewRoot(children []Node, opts ...RootOption) (*Root, error) {
	return core.NewRoot(children, opts...)
}

// OneOf accepts exactly one of its children.
func OneOf(opts ...Option) *core.OneOf {
	return core.NewOneOf(opts...)
}

// Positional is an unnamed node matched by position.
func Positional[T any](opts ...Option) *core.Positional[T] {
	return core.NewPositional[T](opts...)
}

// --- Node options ---

// Alias makes a node stand in for other named nodes.
func Alias(names ...string) Option { return core.Alias(names...) }

// Children adds child nodes in declaration order.
func Children(nodes ...Node) Option { return core.Children(nodes...) }

// Default sets the value used when a node never matches.
func Default[T any](v T) Option { return core.Default(v) }

// Depends requires the named siblings to appear before the node.
func Depends(names ...string) Option { return core.Depends(names...) }

// Description sets the help description.
func Description(text string) Option { return core.Description(text) }

// Display sets the label of an unnamed node in messages.
func Display(name string) Option { return core.DisplayName(name) }

// EndMarker ends a variable-length node's values at marker.
func EndMarker(marker string) Option { return core.EndMarker(marker) }

// FixedCount requires exactly n values.
func FixedCount(n int) Option { return core.FixedCount(n) }

// Long sets the long name, without prefix.
func Long(name string) Option { return core.LongName(name) }

// MaxCount bounds the number of values from above.
func MaxCount(n int) Option { return core.MaxCount(n) }

// MinCount bounds the number of values from below.
func MinCount(n int) Option { return core.MinCount(n) }

// MinMaxCount bounds the number of values.
func MinMaxCount(lo, hi int) Option { return core.MinMaxCount(lo, hi) }

// MinMaxValue bounds parsed values, inclusive.
func MinMaxValue[T cmp.Ordered](lo, hi T) Option { return core.MinMaxValue(lo, hi) }

// Name sets the unprefixed name: a mode's name or a positional's label.
func Name(name string) Option { return core.NoneName(name) }

// NoResult keeps a node's value out of its mode's router values.
func NoResult() Option { return core.NoResult() }

// Parser replaces the value parser for one node.
func Parser[T any](fn func(raw string) (T, error)) Option { return core.Parser(fn) }

// Required makes a node mandatory.
func Required() Option { return core.Required() }

// Router sets the callback that receives a node's values.
func Router(fn RouteFunc) Option { return core.Router(fn) }

// RuntimeEnable hides a node from parsing while enabled reports false.
func RuntimeEnable(enabled func() bool) Option { return core.RuntimeEnable(enabled) }

// RuntimeEnableRequired is RuntimeEnable for a node required while enabled.
func RuntimeEnableRequired(enabled func() bool) Option { return core.RuntimeEnableRequired(enabled) }

// Short sets the one-character short name.
func Short(r rune) Option { return core.ShortName(r) }

// ValueSeparator requires the value attached to the name, as in --name=value.
func ValueSeparator(sep rune) Option { return core.ValueSeparator(sep) }

// --- Root options ---

// WithLogger traces dispatch to log.
func WithLogger(log zerolog.Logger) RootOption { return core.WithLogger(log) }

// WithOutput sets where Run writes failures.
func WithOutput(w io.Writer) RootOption { return core.WithOutput(w) }

// WithPrefixes replaces the "--" and "-" name prefixes.
func WithPrefixes(long, short string) RootOption { return core.WithPrefixes(long, short) }

// WithStyles sets the styles Run renders failures with.
func WithStyles(s Styles) RootOption { return core.WithStyles(s) }

// WithTranslator replaces the English messages.
func WithTranslator(t Translator) RootOption { return core.WithTranslator(t) }

// WithValidator installs a gate consulted before any node claims tokens.
func WithValidator(gate Gate) RootOption { return core.WithValidator(gate) }

// --- Values ---

// Get returns the value at i as a T.
func Get[T any](v Values, i int) (T, error) {
	return core.Get[T](v, i)
}

// MustGet is Get that panics on a mismatch.
func MustGet[T any](v Values, i int) T {
	return core.MustGet[T](v, i)
}

// --- Translation and display ---

// DefaultStyles returns the colored styles for stdout.
func DefaultStyles() Styles {
	return display.DefaultStyles()
}

// English returns the built-in English message templates.
func English() Table {
	return translate.English()
}

// LoadTOML reads a translation catalog from TOML.
func LoadTOML(r io.Reader) (Catalog, error) {
	return translate.LoadTOML(r)
}

// LoadYAML reads a translation catalog from YAML.
func LoadYAML(r io.Reader) (Catalog, error) {
	return translate.LoadYAML(r)
}

// PlainStyles returns styles that add no escape codes.
func PlainStyles() Styles {
	return display.PlainStyles()
}

// StylesFor returns the styles Run uses by default for output written to w:
// colored on a terminal, plain otherwise.
func StylesFor(w io.Writer) Styles {
	return display.StylesFor(w)
}

// Translations consults tables in order and falls back to a generic message.
func Translations(tables ...Table) Translator {
	return translate.New(tables...)
}
