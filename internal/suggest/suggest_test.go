package suggest_test

import (
	"testing"
	"unicode/utf8"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/argrouter/internal/suggest"
	"github.com/toejough/argrouter/internal/token"
)

func TestProperty_Distance(t *testing.T) {
	t.Parallel()

	t.Run("ZeroOnlyForEqualStrings", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(t *rapid.T) {
			g := NewWithT(t)
			a := rapid.StringMatching(`[a-zé]{0,6}`).Draw(t, "a")
			b := rapid.StringMatching(`[a-zé]{0,6}`).Draw(t, "b")

			g.Expect(suggest.Distance(a, b) == 0).To(Equal(a == b))
		})
	})

	t.Run("Symmetric", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(t *rapid.T) {
			g := NewWithT(t)
			a := rapid.StringMatching(`[a-zé]{0,6}`).Draw(t, "a")
			b := rapid.StringMatching(`[a-zé]{0,6}`).Draw(t, "b")

			g.Expect(suggest.Distance(a, b)).To(Equal(suggest.Distance(b, a)))
		})
	})

	t.Run("EmptyIsCodePointCount", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(t *rapid.T) {
			g := NewWithT(t)
			a := rapid.StringMatching(`[a-zéß日本]{0,6}`).Draw(t, "a")

			g.Expect(suggest.Distance(a, "")).To(Equal(utf8.RuneCountInString(a)))
		})
	})

	t.Run("BoundedByLongerLength", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(t *rapid.T) {
			g := NewWithT(t)
			a := rapid.StringMatching(`[a-z日]{0,6}`).Draw(t, "a")
			b := rapid.StringMatching(`[a-z日]{0,6}`).Draw(t, "b")

			longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
			g.Expect(suggest.Distance(a, b)).To(BeNumerically("<=", longest))
		})
	})

	t.Run("KnownDistances", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		g.Expect(suggest.Distance("kitten", "sitting")).To(Equal(3))
		g.Expect(suggest.Distance("日本語", "日本")).To(Equal(1))
		g.Expect(suggest.Distance("", "abc")).To(Equal(3))
	})
}

func TestClosestPrefersNearestName(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	candidates := []suggest.Candidate{
		{Token: token.New(token.Short, "l")},
		{Token: token.New(token.Long, "hello")},
	}

	got, ok := suggest.Closest("hellp", candidates)

	g.Expect(ok).To(BeTrue())
	g.Expect(got.Token).To(Equal(token.New(token.Long, "hello")))
}

func TestClosestGoodbyeSuggestsHello(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	candidates := []suggest.Candidate{
		{Token: token.New(token.Long, "hello")},
		{Token: token.New(token.Short, "l")},
	}

	got, ok := suggest.Closest("goodbye", candidates)

	g.Expect(ok).To(BeTrue())
	g.Expect(got.Token).To(Equal(token.New(token.Long, "hello")))
}

func TestClosestKeepsFirstOnTie(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	candidates := []suggest.Candidate{
		{Token: token.New(token.Short, "a")},
		{Token: token.New(token.Short, "b")},
	}

	got, ok := suggest.Closest("c", candidates)

	g.Expect(ok).To(BeTrue())
	g.Expect(got.Token.Name).To(Equal("a"))
}

func TestClosestWithoutCandidates(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, ok := suggest.Closest("x", nil)
	g.Expect(ok).To(BeFalse())
}

func TestCandidateTokensIncludePath(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	c := suggest.Candidate{
		Path:  []token.Token{token.New(token.None, "my-mode")},
		Token: token.New(token.Long, "flag1"),
	}

	g.Expect(token.Join(c.Tokens(), " ")).To(Equal("my-mode --flag1"))
}
