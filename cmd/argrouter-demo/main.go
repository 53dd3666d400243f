// Package main is a dry-run copy/move tool built on argrouter. It prints the
// file operations it would perform.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/toejough/argrouter"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// unexported constants.
const (
	version = "0.1.0"
)

// plan is what a copy or move router decided from its values.
type plan struct {
	mode    string
	force   bool
	verbose int
	include argrouter.Glob
	dst     string
	src     []string
}

// fileMode builds the copy or move mode. Both take the same arguments.
func fileMode(name string, out io.Writer, log zerolog.Logger) argrouter.Node {
	return argrouter.Mode(
		argrouter.Name(name),
		argrouter.Description(name+" files into a directory"),
		argrouter.Router(func(v argrouter.Values) error {
			p := plan{
				mode:    name,
				force:   argrouter.MustGet[bool](v, 0),
				verbose: argrouter.MustGet[int](v, 1),
				include: argrouter.MustGet[argrouter.Glob](v, 2),
				dst:     argrouter.MustGet[string](v, 3),
				src:     argrouter.MustGet[[]string](v, 4),
			}

			return p.print(out, log)
		}),
		argrouter.Children(
			argrouter.Flag(argrouter.Long("force"), argrouter.Short('f'),
				argrouter.Description("overwrite existing files")),
			argrouter.CountingFlag(argrouter.Long("verbose"), argrouter.Short('v'),
				argrouter.Description("log more; repeat for more detail")),
			argrouter.Arg[argrouter.Glob](argrouter.Long("include"), argrouter.ValueSeparator('='),
				argrouter.Default(argrouter.Glob("**")),
				argrouter.Description("only act on sources matching this pattern")),
			argrouter.Positional[string](argrouter.Name("DST"), argrouter.Required()),
			argrouter.Positional[[]string](argrouter.Name("SRC"), argrouter.Required()),
		),
	)
}

func (p plan) print(out io.Writer, log zerolog.Logger) error {
	if p.verbose > 0 {
		log = log.Level(zerolog.DebugLevel)
	}

	log.Debug().
		Str("mode", p.mode).
		Bool("force", p.force).
		Str("include", string(p.include)).
		Msg("planning")

	for _, src := range p.src {
		if !p.include.Match(src) {
			log.Debug().Str("src", src).Msg("excluded")
			continue
		}

		target := filepath.Join(p.dst, filepath.Base(src))

		_, err := fmt.Fprintf(out, "%s %s -> %s\n", p.mode, src, target)
		if err != nil {
			return fmt.Errorf("writing plan: %w", err)
		}
	}

	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).Level(zerolog.WarnLevel)

	root, err := argrouter.NewRoot([]argrouter.Node{
		argrouter.Flag(argrouter.Long("version"), argrouter.Router(func(argrouter.Values) error {
			_, err := fmt.Fprintln(stdout, "argrouter-demo", version)
			return err
		})),
		fileMode("copy", stdout, log),
		fileMode("move", stdout, log),
	}, argrouter.WithOutput(stderr), argrouter.WithLogger(log))
	if err != nil {
		log.Error().Err(err).Msg("invalid command tree")
		return 1
	}

	return root.Run(args)
}
