// Package grammar loads the text grammar format described in spec
// §4.4 into a dense, index-based representation: terminals and
// non-terminals are assigned integer indices in first-seen order, and
// rules reference those indices directly rather than symbol names, so
// that firstfollow and parsetable can use plain slices/bitsets instead
// of maps.
package grammar

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// SymbolKind tags a Symbol as a terminal, a non-terminal, or the
// grammar-only epsilon marker.
type SymbolKind int

const (
	Terminal SymbolKind = iota
	NonTerminal
	Epsilon
)

func (k SymbolKind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case NonTerminal:
		return "non-terminal"
	case Epsilon:
		return "epsilon"
	default:
		return fmt.Sprintf("SymbolKind(%d)", int(k))
	}
}

// Symbol is one element of a rule's right-hand side (or the sole
// element of an epsilon production). Index is meaningless when Kind
// is Epsilon.
type Symbol struct {
	Kind  SymbolKind
	Index int
}

func (s Symbol) String() string {
	if s.Kind == Epsilon {
		return "TK_EPS"
	}
	return fmt.Sprintf("%s#%d", s.Kind, s.Index)
}

// IsEpsilonRHS reports whether rhs is the single-symbol epsilon
// production (the only shape epsilon is ever allowed to take, per
// spec §3/§4.4).
func IsEpsilonRHS(rhs []Symbol) bool {
	return len(rhs) == 1 && rhs[0].Kind == Epsilon
}

// Rule is a numbered production, LHS -> RHS. Rule numbers start at 1;
// number 0 is reserved ("none", spec §3) and never appears in
// Grammar.Rules.
type Rule struct {
	Number int
	LHS    int // non-terminal index
	RHS    []Symbol
}

// Grammar is the fully indexed result of loading a grammar file.
type Grammar struct {
	Terminals    []string // dense index -> name, e.g. Terminals[0] == "TK_a"
	NonTerminals []string
	Rules        []Rule // Rules[i] has Number == i+1
	Start        int    // non-terminal index of the start symbol
	Dollar       int    // terminal index of the synthetic TK_DOLLAR
}

const (
	dollarName = "TK_DOLLAR"
	epsName    = "TK_EPS"
	tkPrefix   = "TK_"
)

type loader struct {
	termIdx map[string]int
	ntIdx   map[string]int
	g       *Grammar
}

// Load parses a grammar file: one rule per line, whitespace-separated
// tokens, the first token on a line the LHS non-terminal, the rest the
// RHS. Blank lines and lines with fewer than two tokens are ignored.
// The first LHS encountered becomes the start symbol.
func Load(r io.Reader) (*Grammar, error) {
	l := &loader{
		termIdx: make(map[string]int),
		ntIdx:   make(map[string]int),
		g:       &Grammar{Start: -1},
	}

	sc := bufio.NewScanner(r)
	ruleNum := 0
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		lhs := l.nonTerminal(fields[0])
		if l.g.Start < 0 {
			l.g.Start = lhs
		}
		rhs := make([]Symbol, 0, len(fields)-1)
		for _, tok := range fields[1:] {
			rhs = append(rhs, l.symbol(tok))
		}
		ruleNum++
		l.g.Rules = append(l.g.Rules, Rule{Number: ruleNum, LHS: lhs, RHS: rhs})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grammar: reading grammar: %w", err)
	}
	if l.g.Start < 0 {
		return nil, fmt.Errorf("grammar: no rules found")
	}
	l.g.Dollar = l.terminal(dollarName)
	return l.g, nil
}

func (l *loader) nonTerminal(name string) int {
	if i, ok := l.ntIdx[name]; ok {
		return i
	}
	i := len(l.g.NonTerminals)
	l.ntIdx[name] = i
	l.g.NonTerminals = append(l.g.NonTerminals, name)
	return i
}

func (l *loader) terminal(name string) int {
	if i, ok := l.termIdx[name]; ok {
		return i
	}
	i := len(l.g.Terminals)
	l.termIdx[name] = i
	l.g.Terminals = append(l.g.Terminals, name)
	return i
}

func (l *loader) symbol(tok string) Symbol {
	switch {
	case tok == epsName:
		return Symbol{Kind: Epsilon}
	case strings.HasPrefix(tok, tkPrefix):
		return Symbol{Kind: Terminal, Index: l.terminal(tok)}
	default:
		return Symbol{Kind: NonTerminal, Index: l.nonTerminal(tok)}
	}
}
