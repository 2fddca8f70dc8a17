// Package parsetable builds the dense LL(1) parse table described in
// spec §4.6: a (non-terminal, terminal) -> {rule | error | synch} matrix
// derived from a grammar.Grammar's rules plus its computed FIRST/FOLLOW
// sets. The cell representation follows spec §9's "either representation
// is acceptable" note: a tagged Cell, flat-array backed, rather than the
// original's -1/-2 int sentinels.
package parsetable

import (
	"github.com/apoorva106/compiler-project/firstfollow"
	"github.com/apoorva106/compiler-project/grammar"
)

// CellKind tags a Table cell.
type CellKind int

const (
	// Error is the zero value: no rule applies and the terminal is not
	// in FOLLOW of the cell's non-terminal.
	Error CellKind = iota
	Rule
	Synch
)

func (k CellKind) String() string {
	switch k {
	case Rule:
		return "rule"
	case Synch:
		return "synch"
	default:
		return "error"
	}
}

// Cell is one entry of the parse table.
type Cell struct {
	Kind CellKind
	Rule int // valid, and >= 1, when Kind == Rule
}

// Table is the dense (non-terminal, terminal) -> Cell matrix, backed by
// a flat slice indexed by nt*numTerminals + t (spec §9).
type Table struct {
	g     *grammar.Grammar
	cells []Cell
	nt    int // number of non-terminals
	nTerm int // number of terminals
}

// Get returns the cell for non-terminal a and terminal t.
func (tb *Table) Get(a, t int) Cell {
	return tb.cells[a*tb.nTerm+t]
}

func (tb *Table) set(a, t int, c Cell) {
	// Last writer wins on a cell overwrite, per spec §4.6: "A grammar
	// that produces a cell overwrite during this process is not LL(1);
	// the builder need not diagnose this, but its behavior (last writer
	// wins) must be documented." Rules are applied in ascending rule
	// number order (see Build), so a conflict is resolved deterministically
	// in favor of the higher-numbered rule.
	tb.cells[a*tb.nTerm+t] = c
}

// Build constructs the parse table for g using the already-computed
// FIRST/FOLLOW sets ff.
func Build(g *grammar.Grammar, ff *firstfollow.Sets) *Table {
	tb := &Table{
		g:     g,
		nt:    len(g.NonTerminals),
		nTerm: len(g.Terminals),
	}
	tb.cells = make([]Cell, tb.nt*tb.nTerm)

	for _, r := range g.Rules {
		firstAlpha, alphaEps := ff.FirstOfSequence(r.RHS)
		for _, t := range firstAlpha.Terminals() {
			tb.set(r.LHS, t, Cell{Kind: Rule, Rule: r.Number})
		}
		if alphaEps {
			for _, t := range ff.Follow[r.LHS].Terminals() {
				tb.set(r.LHS, t, Cell{Kind: Rule, Rule: r.Number})
			}
		}
	}

	// Upgrade untouched (Error) cells to Synch wherever the terminal is
	// in FOLLOW(A), per spec §4.6's second pass. This must run after
	// every rule has been placed, since an Error cell for (A, t) could
	// still be overwritten with a Rule by a later rule in the loop
	// above.
	for a := 0; a < tb.nt; a++ {
		for _, t := range ff.Follow[a].Terminals() {
			if tb.Get(a, t).Kind == Error {
				tb.set(a, t, Cell{Kind: Synch})
			}
		}
	}

	return tb
}
