package core_test

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/toejough/argrouter/internal/core"
	"github.com/toejough/argrouter/internal/display"
	"github.com/toejough/argrouter/internal/errcode"
	"github.com/toejough/argrouter/internal/translate"
)

func TestCustomPrefixes(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var got core.Values

	root, err := core.NewRoot([]core.Node{core.NewMode(
		core.Router(capture(&got)),
		core.Children(
			core.NewFlag(core.LongName("force"), core.ShortName('f')),
			core.NewArg[int](core.LongName("n")),
		),
	)}, core.WithPrefixes("++", "+"))
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(root.Parse([]string{"+f", "++n", "-3"})).To(Succeed())
	g.Expect(got).To(Equal(core.Values{true, -3}))

	g.Expect(root.Parse([]string{"++forc"})).To(MatchError("Unknown argument: ++forc. Did you mean ++force?"))
}

func TestCustomTranslator(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	french := translate.Table{errcode.NoArgumentsPassed: "Aucun argument"}

	root, err := core.NewRoot(
		[]core.Node{core.NewMode(core.NoneName("x"), core.Router(func(core.Values) error { return nil }),
			core.Children(core.NewFlag(core.LongName("y"))))},
		core.WithTranslator(translate.New(french, translate.English())),
	)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(root.Parse(nil)).To(MatchError("Aucun argument"))
	g.Expect(root.Parse([]string{"x", "x"})).To(MatchError("Unknown argument: x. Did you mean --y?"))
}

func TestLoggerTracesDispatch(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var buf bytes.Buffer

	root, err := core.NewRoot([]core.Node{core.NewMode(
		core.Router(func(core.Values) error { return nil }),
		core.Children(core.NewFlag(core.LongName("force"))),
	)}, core.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(root.Parse([]string{"--force"})).To(Succeed())
	g.Expect(buf.String()).To(ContainSubstring(`"message":"matched"`))
	g.Expect(buf.String()).To(ContainSubstring(`"node":"--force"`))

	buf.Reset()

	g.Expect(root.Parse([]string{"--bogus"})).NotTo(Succeed())
	g.Expect(buf.String()).To(ContainSubstring(`"code":"UnknownArgumentWithSuggestion"`))
}

func TestRunExitCodes(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var out bytes.Buffer

	root, err := core.NewRoot([]core.Node{
		core.NewMode(core.NoneName("ok"), core.Router(func(core.Values) error { return nil }),
			core.Children(core.NewFlag(core.LongName("x")))),
		core.NewMode(core.NoneName("fail"), core.Router(func(core.Values) error { return errBoom }),
			core.Children(core.NewFlag(core.LongName("x")))),
	}, core.WithOutput(&out), core.WithStyles(display.PlainStyles()))
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(root.Run([]string{"ok"})).To(Equal(0))
	g.Expect(out.String()).To(BeEmpty())

	g.Expect(root.Run(nil)).To(Equal(2))
	g.Expect(out.String()).To(Equal("error[NoArgumentsPassed]: No arguments passed\n"))

	out.Reset()

	g.Expect(root.Run([]string{"fail"})).To(Equal(1))
	g.Expect(out.String()).To(Equal("error: boom\n"))
}

func TestRunFollowsOutputForStyles(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var out bytes.Buffer

	root, err := core.NewRoot([]core.Node{core.NewMode(
		core.NoneName("ok"),
		core.Router(func(core.Values) error { return nil }),
		core.Children(core.NewFlag(core.LongName("x"))),
	)}, core.WithOutput(&out))
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(root.Run([]string{"ok", "--y"})).To(Equal(2))
	g.Expect(out.String()).To(Equal("error[UnknownArgumentWithSuggestion]: Unknown argument: --y. Did you mean --x?\n"))
}

func TestConcurrentParsesShareATree(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var total atomic.Int64

	root, err := core.NewRoot([]core.Node{core.NewMode(
		core.Router(func(v core.Values) error {
			n := core.MustGet[int](v, 0) * core.MustGet[int](v, 1)
			total.Add(int64(n))

			return nil
		}),
		core.Children(
			core.NewArg[int](core.LongName("n")),
			core.NewCountingFlag(core.ShortName('v')),
		),
	)})
	g.Expect(err).NotTo(HaveOccurred())

	const (
		workers = 8
		parses  = 100
	)

	var wg sync.WaitGroup

	errs := make([]error, workers)

	for w := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range parses {
				err := root.Parse([]string{"-vv", "--n", strconv.Itoa(i), "-v"})
				if err != nil {
					errs[w] = fmt.Errorf("parse %d: %w", i, err)
					return
				}
			}
		}()
	}

	wg.Wait()

	for _, err := range errs {
		g.Expect(err).NotTo(HaveOccurred())
	}

	// each parse routes 3*i; summed over i in [0, parses) and every worker.
	g.Expect(total.Load()).To(Equal(int64(workers * 3 * parses * (parses - 1) / 2)))
}

func TestTargetInvokesOnce(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	target, pending, err := core.PreParseForTest(core.NewFlag(core.LongName("x")), "--x", "rest")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(pending).To(Equal([]string{"rest"}))
	g.Expect(target.Index()).To(Equal(-1))
	g.Expect(target.SubTargets()).To(BeEmpty())

	v, err := target.Invoke()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(v).To(BeTrue())
	g.Expect(func() { _, _ = target.Invoke() }).To(PanicWith(core.ErrTargetInvokedForTest))
}

func TestPreParseLeavesTokensOnMiss(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	target, pending, err := core.PreParseForTest(core.NewArg[int](core.LongName("n")), "--m", "1")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(target).To(BeNil())
	g.Expect(pending).To(Equal([]string{"--m", "1"}))
}

func TestValidatorGatesNodes(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root, err := core.NewRoot([]core.Node{core.NewMode(
		core.Router(func(core.Values) error { return nil }),
		core.Children(
			core.NewFlag(core.LongName("force")),
			core.NewFlag(core.LongName("dry")),
		),
	)}, core.WithValidator(func(n core.Node, anc core.Ancestors) bool {
		return n.Meta().Long() != "force" || anc.Parent() == nil
	}))
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(root.Parse([]string{"--dry"})).To(Succeed())

	err = root.Parse([]string{"--force"})
	g.Expect(err).To(MatchError(errcode.UnknownArgumentWithSuggestion))
	g.Expect(strings.HasPrefix(err.Error(), "Unknown argument: --force.")).To(BeTrue())
}

func TestValuesGet(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	v := core.Values{1, "two"}

	n, err := core.Get[int](v, 0)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(n).To(Equal(1))

	_, err = core.Get[int](v, 1)
	g.Expect(err).To(MatchError(core.ErrValueTypeForTest))

	_, err = core.Get[int](v, 2)
	g.Expect(err).To(MatchError(core.ErrValueIndexForTest))

	g.Expect(func() { core.MustGet[string](v, 0) }).To(Panic())
}
