package core_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/argrouter/internal/core"
	"github.com/toejough/argrouter/internal/errcode"
)

func TestCandidatesFollowModes(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := copyMoveRoot(t, new(copyMove))

	g.Expect(core.CandidatesForTest(root)).To(Equal([]string{
		"copy", "copy --force", "copy -f",
		"move", "move --force", "move -f",
	}))
}

func TestCandidatesSkipDisabledAndFlattenGroups(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mode := core.NewMode(
		core.Router(func(core.Values) error { return nil }),
		core.Children(
			core.NewFlag(core.LongName("hidden"), core.RuntimeEnable(func() bool { return false })),
			core.NewAliasGroup[int](core.Children(
				core.NewArg[int](core.LongName("count")),
				core.NewCountingFlag(core.ShortName('a')),
			)),
			core.NewPositional[string](core.NoneName("FILE")),
		),
	)

	g.Expect(core.CandidatesForTest(mode)).To(Equal([]string{"--count", "-a"}))
}

func TestSuggestionAtRoot(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := copyMoveRoot(t, new(copyMove))

	err := root.Parse([]string{"cpy", "a"})
	g.Expect(err).To(MatchError(errcode.UnknownArgumentWithSuggestion))
	g.Expect(err).To(MatchError("Unknown argument: cpy. Did you mean copy?"))
}

func TestSuggestionInsideMode(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := copyMoveRoot(t, new(copyMove))

	err := root.Parse([]string{"copy", "--forc", "dst"})
	g.Expect(err).To(MatchError(errcode.UnknownArgumentWithSuggestion))
	g.Expect(err).To(MatchError("Unknown argument: --forc. Did you mean --force?"))
}

func TestSuggestionNamesThePathToNestedModes(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := mustRoot(t, core.NewMode(
		core.NoneName("remote"),
		core.Children(core.NewMode(
			core.NoneName("add"),
			core.Router(func(core.Values) error { return nil }),
			core.Children(core.NewFlag(core.LongName("fetch"))),
		)),
	))

	err := root.Parse([]string{"--fetc"})
	g.Expect(err).To(MatchError("Unknown argument: --fetc. Did you mean remote add --fetch?"))
}

func TestUnknownArgumentWithoutCandidates(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := mustRoot(t, core.NewMode(
		core.Router(func(core.Values) error { return nil }),
		core.Children(core.NewPositional[string](core.NoneName("FILE"))),
	))

	err := root.Parse([]string{"--what"})
	g.Expect(err).To(MatchError(errcode.UnknownArgument))
	g.Expect(err).To(MatchError("Unknown argument: --what"))
}

func TestDisabledNodeIsUnknown(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	enabled := false

	root := mustRoot(t, core.NewMode(
		core.Router(func(core.Values) error { return nil }),
		core.Children(
			core.NewFlag(core.LongName("x"), core.RuntimeEnable(func() bool { return enabled })),
			core.NewFlag(core.LongName("y")),
			core.NewArg[string](core.LongName("token"), core.RuntimeEnableRequired(func() bool { return enabled })),
		),
	))

	err := root.Parse([]string{"--x"})
	g.Expect(err).To(MatchError("Unknown argument: --x. Did you mean --y?"))
	g.Expect(root.Parse([]string{"--y"})).To(Succeed())

	enabled = true

	g.Expect(root.Parse([]string{"--x"})).To(MatchError("Missing required argument: --token"))
	g.Expect(root.Parse([]string{"--x", "--token", "t"})).To(Succeed())
}
