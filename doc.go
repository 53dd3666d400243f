// Package argrouter parses command lines into typed values and routes them to
// functions.
//
// A program describes its command line as a tree of nodes and hands it to
// NewRoot, which checks the tree once:
//
//	root, err := argrouter.NewRoot([]argrouter.Node{
//		argrouter.Mode(
//			argrouter.Name("copy"),
//			argrouter.Router(func(v argrouter.Values) error {
//				force := argrouter.MustGet[bool](v, 0)
//				dst := argrouter.MustGet[string](v, 1)
//				src := argrouter.MustGet[[]string](v, 2)
//				return copyFiles(force, dst, src)
//			}),
//			argrouter.Children(
//				argrouter.Flag(argrouter.Long("force"), argrouter.Short('f')),
//				argrouter.Positional[string](argrouter.Name("DST"), argrouter.Required()),
//				argrouter.Positional[[]string](argrouter.Name("SRC"), argrouter.MinCount(1)),
//			),
//		),
//	})
//
// Parse then matches arguments against the tree. Exactly one top-level child
// handles each call; its router receives one value per value-producing child,
// in declaration order. Parse failures come back as *ParseError carrying an
// error code (match with errors.Is and the Err constants), the offending
// tokens and a translated message, including a "did you mean" suggestion for
// unknown names. Run does the same and prints failures, returning an exit code.
package argrouter
