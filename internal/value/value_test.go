package value_test

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/argrouter/internal/value"
)

type level int

func (l *level) Set(s string) error {
	switch s {
	case "low":
		*l = 1
	case "high":
		*l = 2
	default:
		return errBadLevel
	}

	return nil
}

var errBadLevel = errors.New("bad level")

func TestParseIntegers(t *testing.T) {
	t.Parallel()

	t.Run("RoundTrip", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(t *rapid.T) {
			g := NewWithT(t)
			n := rapid.Int64().Draw(t, "n")

			got, err := value.Parse[int64](strconv.FormatInt(n, 10))

			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(got).To(Equal(n))
		})
	})

	t.Run("OverflowFails", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		_, err := value.Parse[int8]("300")
		g.Expect(err).To(MatchError(strconv.ErrRange))

		_, err = value.Parse[uint16](strconv.Itoa(math.MaxUint16 + 1))
		g.Expect(err).To(MatchError(strconv.ErrRange))
	})

	t.Run("SyntaxFails", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		_, err := value.Parse[int]("three")
		g.Expect(err).To(MatchError(strconv.ErrSyntax))
		g.Expect(err.Error()).To(ContainSubstring(`parsing int "three"`))
	})
}

func TestParseScalars(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	f, err := value.Parse[float64]("3.14")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(f).To(BeNumerically("~", 3.14))

	b, err := value.Parse[bool]("true")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(b).To(BeTrue())

	s, err := value.Parse[string]("-x")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(s).To(Equal("-x"))

	d, err := value.Parse[time.Duration]("1m30s")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(d).To(Equal(90 * time.Second))
}

func TestParseCustomSetters(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	l, err := value.Parse[level]("high")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(l).To(Equal(level(2)))

	_, err = value.Parse[level]("medium")
	g.Expect(err).To(MatchError(errBadLevel))
}

func TestSetAppendsToSlices(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var out []int

	dest := reflect.ValueOf(&out).Elem()
	g.Expect(value.Set(dest, "1")).To(Succeed())
	g.Expect(value.Set(dest, "2")).To(Succeed())
	g.Expect(out).To(Equal([]int{1, 2}))
	g.Expect(value.Set(dest, "x")).NotTo(Succeed())
	g.Expect(out).To(Equal([]int{1, 2}))
}

func TestSupported(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(value.Supported(reflect.TypeFor[[]string]())).To(BeTrue())
	g.Expect(value.Supported(reflect.TypeFor[level]())).To(BeTrue())
	g.Expect(value.Supported(reflect.TypeFor[value.Glob]())).To(BeTrue())
	g.Expect(value.Supported(reflect.TypeFor[map[string]int]())).To(BeFalse())
	g.Expect(value.Supported(reflect.TypeFor[struct{}]())).To(BeFalse())
}

func TestGlob(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	pattern, err := value.Parse[value.Glob]("src/**/*.go")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(pattern.Match("src/a/b/c.go")).To(BeTrue())
	g.Expect(pattern.Match("src/a/b/c.txt")).To(BeFalse())

	_, err = value.Parse[value.Glob]("src/[a")
	g.Expect(err).To(MatchError(ContainSubstring("invalid glob pattern")))
}
