// Package core implements parse trees and their dispatch.
//
// A tree is built from nodes: leaves (flags, counting flags, args, multi
// args, positionals, forwarding args), groups that merge several leaves into
// one value (alias groups, one-ofs), and modes that select a set of children
// by name. A Root validates the tree once and then parses argument lists.
//
// Parsing runs in two phases. PreParse walks the tree and claims tokens,
// producing a Target for every node that matched; nothing is converted yet.
// Invoking the root Target then converts values, applies defaults and ranges,
// and calls routers, children before parents.
package core
