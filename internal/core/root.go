package core

import (
	"errors"
	"io"
	"os"
	"slices"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/toejough/argrouter/internal/display"
	"github.com/toejough/argrouter/internal/errcode"
	"github.com/toejough/argrouter/internal/token"
	"github.com/toejough/argrouter/internal/translate"
)

// ParseError is a dispatch failure translated for display.
type ParseError struct {
	Code    errcode.Code
	Tokens  []token.Token
	Message string

	cause *errcode.Error
}

// Error returns the translated message.
func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap exposes the code and any underlying parse error.
func (e *ParseError) Unwrap() error {
	return e.cause
}

// Root is the top of a parse tree. Exactly one of its children handles each
// parse.
type Root struct {
	meta       Meta
	prefixes   token.Prefixes
	translator translate.Translator
	gate       Gate
	log        zerolog.Logger
	out        io.Writer
	styles     display.Styles
	styled     bool
	shorts     map[rune]bool
}

// RootOption configures a Root.
type RootOption func(r *Root)

// NewRoot builds and validates a tree. Every structural problem is reported
// in the returned error.
func NewRoot(children []Node, opts ...RootOption) (*Root, error) {
	r := &Root{
		meta:     newMeta(KindRoot, []Option{Children(children...)}),
		prefixes: token.DefaultPrefixes(),
		log:      zerolog.Nop(),
		out:      os.Stderr,
		shorts:   map[rune]bool{},
	}

	for _, opt := range opts {
		opt(r)
	}

	if !r.styled {
		r.styles = display.StylesFor(r.out)
	}

	switch tr := r.translator.(type) {
	case nil:
		r.translator = translate.New(translate.English()).WithPrefixes(r.prefixes)
	case *translate.Chain:
		r.translator = tr.WithPrefixes(r.prefixes)
	}

	err := validateTree(r)
	if err != nil {
		return nil, err
	}

	collectShorts(r.shorts, r.meta.children)

	return r, nil
}

// WithLogger sets the logger for dispatch tracing. The default discards.
func WithLogger(log zerolog.Logger) RootOption {
	return func(r *Root) {
		r.log = log
	}
}

// WithOutput sets where Run writes failures. The default is stderr.
func WithOutput(w io.Writer) RootOption {
	return func(r *Root) {
		r.out = w
	}
}

// WithPrefixes replaces the long and short name prefixes.
func WithPrefixes(long, short string) RootOption {
	return func(r *Root) {
		r.prefixes = token.Prefixes{Long: long, Short: short}
	}
}

// WithStyles sets the styles Run uses for failures. By default they follow
// the output: colored on a terminal, plain otherwise.
func WithStyles(s display.Styles) RootOption {
	return func(r *Root) {
		r.styles = s
		r.styled = true
	}
}

// WithTranslator replaces the English messages.
func WithTranslator(t translate.Translator) RootOption {
	return func(r *Root) {
		r.translator = t
	}
}

// WithValidator installs a gate consulted before any node may claim tokens.
func WithValidator(gate Gate) RootOption {
	return func(r *Root) {
		r.gate = gate
	}
}

// Meta implements Node.
func (r *Root) Meta() *Meta {
	return &r.meta
}

// Parse expands args, dispatches them and runs the matched routers. Dispatch
// failures are returned as *ParseError; router errors are returned unchanged.
func (r *Root) Parse(args []string) error {
	in := &Input{
		Tokens:   token.NewList(token.Expand(args, r.prefixes, r.clusterable)...),
		Prefixes: r.prefixes,
		Gate:     r.gate,
		Log:      r.log,
	}

	t, err := r.PreParse(in, nil)
	if err == nil {
		_, err = t.Invoke()
	}

	return r.translate(err)
}

// PreParse implements Node. Children are tried in declaration order and the
// first to match wins; a failing child is remembered and the next one tried.
func (r *Root) PreParse(in *Input, _ Ancestors) (*Target, error) {
	anc := Ancestors{r}
	snap := in.Tokens.Snapshot()
	empty := in.Tokens.Empty()

	var first error

	for i, child := range r.meta.children {
		sub, err := child.PreParse(in, anc)

		if err == nil && sub != nil && !in.Tokens.Empty() {
			err = errcode.New(errcode.UnhandledArguments, slices.Clone(in.Tokens.Pending())...)
		}

		if err != nil {
			if first == nil {
				first = err
			}

			in.Tokens.Restore(snap)

			continue
		}

		if sub == nil {
			continue
		}

		sub.index = i

		in.Log.Debug().Str("node", child.Meta().Label()).Msg("root matched")

		return sub, nil
	}

	switch {
	case first != nil:
		return nil, first
	case empty:
		return nil, errcode.New(errcode.NoArgumentsPassed)
	default:
		front, _ := in.Tokens.Front()
		return nil, unknownArgument(r, front)
	}
}

// Run parses args and returns a process exit code: 0 on success, 2 for a
// parse failure and 1 for a router error. Failures are written to the output.
func (r *Root) Run(args []string) int {
	err := r.Parse(args)
	if err == nil {
		return 0
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		_ = display.Error(r.out, r.styles, parseErr.Code.String(), parseErr.Message)
		return exitParse
	}

	_ = display.Error(r.out, r.styles, "", err.Error())

	return exitRouter
}

// clusterable reports whether c is the short name of a flag somewhere in the
// tree, which is what lets -abc expand into -a -b -c.
func (r *Root) clusterable(c rune) bool {
	return r.shorts[c]
}

func (r *Root) translate(err error) error {
	coded, ok := err.(*errcode.Error) //nolint:errorlint // dispatch errors are never wrapped; router errors pass through
	if !ok {
		return err
	}

	r.log.Debug().Stringer("code", coded.Code).Strs("tokens", token.Strings(coded.Tokens)).Msg("parse failed")

	return &ParseError{
		Code:    coded.Code,
		Tokens:  coded.Tokens,
		Message: r.translator.Translate(coded.Code, coded.Tokens),
		cause:   coded,
	}
}

// unexported constants.
const (
	exitParse  = 2
	exitRouter = 1
)

func collectShorts(into map[rune]bool, nodes []Node) {
	for _, n := range nodes {
		m := n.Meta()

		if r, ok := m.shortRune(); ok && (m.kind == KindFlag || m.kind == KindCountingFlag) {
			if utf8.RuneCountInString(m.short) == 1 {
				into[r] = true
			}
		}

		collectShorts(into, m.children)
	}
}
