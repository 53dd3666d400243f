package core

import (
	"github.com/rs/zerolog"

	"github.com/toejough/argrouter/internal/token"
)

// Exported variables.
var (
	ErrAliasGroupChildForTest      = errAliasGroupChild
	ErrAliasGroupChildRangeForTest = errAliasGroupChildRange
	ErrAnonymousModeNestedForTest  = errAnonymousModeNested
	ErrDuplicateAnonymousForTest   = errDuplicateAnonymous
	ErrDuplicateNameForTest        = errDuplicateName
	ErrLeafRouterPlacementForTest  = errLeafRouterPlacement
	ErrModeChildModesForTest       = errModeChildModes
	ErrModeNoChildrenForTest       = errModeNoChildren
	ErrMultiArgCountForTest        = errMultiArgCount
	ErrNeedsNameForTest            = errNeedsName
	ErrNoParserAllowedForTest      = errNoParserAllowed
	ErrOneOfDefaultForTest         = errOneOfDefault
	ErrParserTypeForTest           = errParserType
	ErrPositionalNameForTest       = errPositionalName
	ErrRootNoChildrenForTest       = errRootNoChildren
	ErrSeparatorPlacementForTest   = errSeparatorPlacement
	ErrTargetInvokedForTest        = errTargetInvoked
	ErrTopLevelRouterForTest       = errTopLevelRouter
	ErrUnsupportedValueTypeForTest = errUnsupportedValueType
	ErrValueIndexForTest           = errValueIndex
	ErrValueTypeForTest            = errValueType
)

// CandidatesForTest renders the suggestion candidates below n, each as its
// path followed by the name, space separated.
func CandidatesForTest(n Node) []string {
	found := candidates(n, nil)
	out := make([]string, 0, len(found))

	for _, c := range found {
		out = append(out, token.Join(c.Tokens(), " "))
	}

	return out
}

// PreParseForTest runs n's pre-parse over args with default prefixes and
// returns the target along with the tokens left pending.
func PreParseForTest(n Node, args ...string) (*Target, []string, error) {
	p := token.DefaultPrefixes()
	in := &Input{Tokens: token.NewList(token.Expand(args, p, nil)...), Prefixes: p, Log: zerolog.Nop()}

	t, err := n.PreParse(in, nil)

	return t, token.Strings(in.Tokens.Pending()), err
}
