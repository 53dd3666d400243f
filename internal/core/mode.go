package core

import (
	"slices"

	"github.com/toejough/argrouter/internal/errcode"
	"github.com/toejough/argrouter/internal/token"
)

// Mode is a composite node. A named mode is selected by its none name; an
// anonymous mode (root only) matches without consuming a name. Its children
// claim the remaining tokens and its router receives their values.
type Mode struct {
	meta Meta
}

// NewMode returns a mode configured by opts.
func NewMode(opts ...Option) *Mode {
	return &Mode{meta: newMeta(KindMode, opts)}
}

// Meta implements Node.
func (m *Mode) Meta() *Meta {
	return &m.meta
}

// PreParse implements Node. On error the tokens are restored to their state
// before the call.
func (m *Mode) PreParse(in *Input, anc Ancestors) (*Target, error) {
	if !in.allowed(m, anc) {
		return nil, nil
	}

	var claimed []token.Token

	if m.meta.none != "" {
		front, ok := in.Tokens.Front()
		if !ok || !m.meta.matchesToken(front) {
			return nil, nil
		}

		claimed = []token.Token{front}
	}

	snap := in.Tokens.Snapshot()
	in.Tokens.Consume(len(claimed))

	t, err := m.dispatch(in, anc, claimed)
	if err != nil {
		in.Tokens.Restore(snap)
		return nil, err
	}

	return t, nil
}

// claim offers the front token to each non-mode child in declaration order.
// A child that already matched is skipped unless it accumulates; naming it
// again is an error.
func (m *Mode) claim(in *Input, inner Ancestors, hit []bool) (*Target, error) {
	front, _ := in.Tokens.Front()

	for i, child := range m.meta.children {
		if child.Meta().kind == KindMode {
			continue
		}

		if hit[i] && !isMultiStage(child) {
			if child.Meta().matchesName(front) {
				return nil, errcode.New(errcode.AlreadySet, front)
			}

			in.Log.Debug().Str("node", child.Meta().Label()).Msg("skipped, already set")

			continue
		}

		sub, err := child.PreParse(in, inner)
		if err != nil {
			return nil, err
		}

		if sub == nil {
			continue
		}

		sub.index = i
		hit[i] = true

		in.Log.Debug().
			Str("mode", m.meta.Label()).
			Str("node", child.Meta().Label()).
			Strs("tokens", token.Strings(sub.tokens)).
			Msg("matched")

		return sub, nil
	}

	return nil, nil
}

// delegate hands the tokens to the first child mode whose name matches.
func (m *Mode) delegate(in *Input, anc Ancestors, claimed []token.Token) (*Target, error) {
	inner := anc.Push(m)

	for i, child := range m.meta.children {
		if child.Meta().kind != KindMode {
			continue
		}

		sub, err := child.PreParse(in, inner)
		if err != nil {
			return nil, err
		}

		if sub == nil {
			continue
		}

		sub.index = i

		t := in.newTarget(m, claimed, anc, func(t *Target) (any, error) {
			return t.subs[0].Invoke()
		})
		t.subs = []*Target{sub}

		return t, nil
	}

	return nil, nil
}

func (m *Mode) dispatch(in *Input, anc Ancestors, claimed []token.Token) (*Target, error) {
	delegated, err := m.delegate(in, anc, claimed)
	if err != nil || delegated != nil {
		return delegated, err
	}

	if m.meta.router == nil && in.Tokens.Empty() {
		return nil, errcode.New(errcode.ModeRequiresArguments, m.meta.Token())
	}

	inner := anc.Push(m)
	hit := make([]bool, len(m.meta.children))
	t := in.newTarget(m, claimed, anc, m.run)

	for !in.Tokens.Empty() {
		sub, err := m.claim(in, inner, hit)
		if err != nil {
			return nil, err
		}

		if sub == nil {
			return nil, m.unmatched(in, hit)
		}

		t.subs = append(t.subs, sub)
	}

	return t, nil
}

// run invokes the matched children in consumption order, fills the slots of
// children that never matched, and routes the values.
func (m *Mode) run(t *Target) (any, error) {
	children := m.meta.children
	slots := make([]any, len(children))
	set := make([]bool, len(children))

	for _, sub := range t.subs {
		v, err := sub.Invoke()
		if err != nil {
			return nil, err
		}

		i := sub.index

		if mg, ok := children[i].(merger); ok {
			v, err = mg.merge(slots[i], set[i], sub, v)
			if err != nil {
				return nil, err
			}
		}

		slots[i], set[i] = v, true
	}

	values := make(Values, 0, len(children))

	for i, child := range children {
		if !producesValue(child) {
			continue
		}

		v, err := m.slotValue(child, slots[i], set[i], t)
		if err != nil {
			return nil, err
		}

		if child.Meta().noResult {
			continue
		}

		values = append(values, v)
	}

	if m.meta.router == nil {
		return values, nil
	}

	t.log.Debug().Str("mode", m.meta.Label()).Int("values", len(values)).Msg("routing")

	err := m.meta.router(values)
	if err != nil {
		return nil, err
	}

	return values, nil
}

func (m *Mode) slotValue(child Node, slot any, set bool, t *Target) (any, error) {
	if !set {
		t.log.Debug().Str("node", child.Meta().Label()).Msg("default applied")

		p, _ := child.(producer)

		return p.missing()
	}

	if mg, ok := child.(merger); ok {
		return mg.finish(slot)
	}

	return slot, nil
}

// unmatched explains why the front token was not claimed: leftovers once every
// single-use child has matched, otherwise an unknown argument.
func (m *Mode) unmatched(in *Input, hit []bool) error {
	singles := 0
	allHit := true

	for i, child := range m.meta.children {
		if child.Meta().kind == KindMode || isMultiStage(child) || !child.Meta().enabledNow() {
			continue
		}

		singles++

		if !hit[i] {
			allHit = false
		}
	}

	if singles > 0 && allHit {
		return errcode.New(errcode.UnhandledArguments, slices.Clone(in.Tokens.Pending())...)
	}

	front, _ := in.Tokens.Front()

	return unknownArgument(m, front)
}
