package parser

import "github.com/apoorva106/compiler-project/token"

// Node is a parse-tree node, per spec §3: a tagged variant of leaf or
// internal node. Sibling order is modeled as an ordered Children slice
// rather than the original's first-child/next-sibling pointers, and no
// parent back-reference is retained past construction (spec §9) — the
// stack element that built a node carries any transient parent context
// the driver needs.
type Node struct {
	IsLeaf bool

	// Leaf fields, valid when IsLeaf is true. Kind is the matched
	// terminal's token kind, or token.Eps for an epsilon expansion.
	Kind    token.Kind
	Lexeme  string
	Line    int
	IntVal  int64
	RealVal float64

	// Internal-node fields, valid when IsLeaf is false.
	NonTerminal int   // non-terminal index this node expands
	Rule        int   // rule number applied to produce Children; 0 before expansion
	Children    []*Node
}

// leafFromToken builds a leaf node from a matched token.
func leafFromToken(t token.Token) *Node {
	return &Node{
		IsLeaf:  true,
		Kind:    t.Kind,
		Lexeme:  t.Lexeme,
		Line:    t.Line,
		IntVal:  t.IntVal,
		RealVal: t.RealVal,
	}
}

// epsilonLeaf builds the single child of an epsilon expansion, carrying
// the line number of the lookahead token at expansion time (spec §3).
func epsilonLeaf(line int) *Node {
	return &Node{IsLeaf: true, Kind: token.Eps, Line: line}
}
