package parser

import (
	"fmt"
	"io"

	"github.com/apoorva106/compiler-project/grammar"
)

// Traverse performs the in-order (leftmost) emission of spec §4.8: for
// each node, recursively visit the first child, emit the node itself,
// then recursively visit the remaining children in order. It is for
// inspection only and has no semantic role in the parse itself.
func Traverse(root *Node, emit func(n *Node)) {
	if root == nil {
		return
	}
	if root.IsLeaf || len(root.Children) == 0 {
		emit(root)
		return
	}
	Traverse(root.Children[0], emit)
	emit(root)
	for _, c := range root.Children[1:] {
		Traverse(c, emit)
	}
}

// WriteTree renders root as the flat four-column in-order listing
// described in SPEC_FULL.md (expanding spec §6's three-column "Token/
// Non-Terminal, Line Number, Lexeme/Type" format with the parent
// non-terminal name, matching the original's parserVisualize.c
// printParseTree). The parent name is reconstructed during the walk
// rather than stored permanently on the node, per spec §9.
func WriteTree(w io.Writer, g *grammar.Grammar, root *Node) error {
	var walkErr error
	var visit func(n *Node, parent string)
	visit = func(n *Node, parent string) {
		if walkErr != nil || n == nil {
			return
		}
		if n.IsLeaf {
			if _, err := fmt.Fprintf(w, "%-12s\t%-6d\t%-15s\t%s\n", n.Kind, n.Line, n.Lexeme, parent); err != nil {
				walkErr = err
			}
			return
		}
		name := g.NonTerminals[n.NonTerminal]
		if len(n.Children) == 0 {
			// Never expanded: a synch-popped or still-pending non-terminal
			// in a partial tree left behind by panic-mode recovery.
			if _, err := fmt.Fprintf(w, "%-12s\t%-6s\t%-15s\t%s\n", name, "---", "unexpanded", parent); err != nil {
				walkErr = err
			}
			return
		}
		visit(n.Children[0], name)
		if _, err := fmt.Fprintf(w, "%-12s\t%-6s\t%-15s\t%s\n", name, "---", "internal", parent); err != nil {
			walkErr = err
			return
		}
		for _, c := range n.Children[1:] {
			visit(c, name)
		}
	}
	visit(root, "")
	return walkErr
}
