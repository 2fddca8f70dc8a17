// Package firstfollow computes FIRST and FOLLOW sets over a
// grammar.Grammar by the iterative fixpoint procedure described in spec
// §4.5. Terminal sets are represented as fixed-size bitsets (a slice of
// uint64 words plus a separate epsilon flag per non-terminal, matching
// spec §3's invariant that epsilon is never itself a set bit) rather
// than as maps, the way db47h/lex's own small fixed-size types (e.g.
// lex.go's internal queue) are hand-rolled slices instead of reaching
// for a container library.
package firstfollow

import (
	"math/bits"

	"github.com/apoorva106/compiler-project/grammar"
)

const wordBits = 64

// Set is a bitset over terminal indices.
type Set struct {
	words []uint64
	n     int // number of terminals this set ranges over
}

func newSet(n int) *Set {
	return &Set{words: make([]uint64, (n+wordBits-1)/wordBits), n: n}
}

// Add sets terminal t in s, reporting whether this changed the set.
func (s *Set) Add(t int) bool {
	w, b := t/wordBits, uint(t%wordBits)
	mask := uint64(1) << b
	if s.words[w]&mask != 0 {
		return false
	}
	s.words[w] |= mask
	return true
}

// Has reports whether terminal t is in s.
func (s *Set) Has(t int) bool {
	w, b := t/wordBits, uint(t%wordBits)
	return s.words[w]&(uint64(1)<<b) != 0
}

// Union adds every terminal of other into s, reporting whether this
// changed s.
func (s *Set) Union(other *Set) bool {
	changed := false
	for i, w := range other.words {
		if w&^s.words[i] != 0 {
			s.words[i] |= w
			changed = true
		}
	}
	return changed
}

// Terminals returns the terminal indices present in s, in ascending
// order.
func (s *Set) Terminals() []int {
	var out []int
	for i, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, i*wordBits+b)
			w &^= uint64(1) << uint(b)
		}
	}
	return out
}

// Len reports the number of terminals in s.
func (s *Set) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Sets holds the computed FIRST and FOLLOW tables for a grammar, indexed
// by non-terminal index.
type Sets struct {
	g        *grammar.Grammar
	First    []*Set
	FirstEps []bool // FirstEps[A] == epsilon in FIRST(A), per spec §3's invariant
	Follow   []*Set
}

// Compute runs the FIRST and FOLLOW fixpoints over g and returns the
// resulting Sets.
func Compute(g *grammar.Grammar) *Sets {
	s := &Sets{
		g:        g,
		First:    make([]*Set, len(g.NonTerminals)),
		FirstEps: make([]bool, len(g.NonTerminals)),
		Follow:   make([]*Set, len(g.NonTerminals)),
	}
	nt := len(g.Terminals)
	for i := range s.First {
		s.First[i] = newSet(nt)
		s.Follow[i] = newSet(nt)
	}
	s.computeFirst()
	s.computeFollow()
	return s
}

// computeFirst runs the repeat-until-stable fixpoint of spec §4.5:
// for each rule A -> X1 X2 ... Xn, accumulate FIRST(X1) into FIRST(A);
// continue accumulating FIRST(Xi+1) only while every symbol consumed so
// far derives epsilon; if every symbol in the RHS derives epsilon, set
// FirstEps(A).
func (s *Sets) computeFirst() {
	for {
		changed := false
		for _, r := range s.g.Rules {
			if grammar.IsEpsilonRHS(r.RHS) {
				if !s.FirstEps[r.LHS] {
					s.FirstEps[r.LHS] = true
					changed = true
				}
				continue
			}
			allEps := true
			for _, sym := range r.RHS {
				if sym.Kind == grammar.Terminal {
					if s.First[r.LHS].Add(sym.Index) {
						changed = true
					}
					allEps = false
					break
				}
				// Non-terminal.
				if s.First[r.LHS].Union(s.First[sym.Index]) {
					changed = true
				}
				if !s.FirstEps[sym.Index] {
					allEps = false
					break
				}
			}
			if allEps && !s.FirstEps[r.LHS] {
				s.FirstEps[r.LHS] = true
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

// FirstOfSequence computes FIRST(beta) for an arbitrary symbol sequence
// beta (used by FOLLOW and by parsetable, which both need FIRST of a
// rule's full RHS rather than of a single non-terminal). It returns the
// set of terminals and whether beta derives epsilon.
func (s *Sets) FirstOfSequence(beta []grammar.Symbol) (*Set, bool) {
	out := newSet(len(s.g.Terminals))
	if grammar.IsEpsilonRHS(beta) {
		return out, true
	}
	for _, sym := range beta {
		if sym.Kind == grammar.Terminal {
			out.Add(sym.Index)
			return out, false
		}
		out.Union(s.First[sym.Index])
		if !s.FirstEps[sym.Index] {
			return out, false
		}
	}
	return out, true
}

// computeFollow runs the repeat-until-stable fixpoint of spec §4.5:
// DOLLAR in FOLLOW(start); for each rule A -> alpha B beta with B a
// non-terminal, add FIRST(beta)\{eps} to FOLLOW(B), and if beta derives
// epsilon (or is empty), add FOLLOW(A) to FOLLOW(B). Epsilon is never
// itself added to a FOLLOW set (the bitset has no epsilon bit to begin
// with, so this holds by construction).
func (s *Sets) computeFollow() {
	s.Follow[s.g.Start].Add(s.g.Dollar)
	for {
		changed := false
		for _, r := range s.g.Rules {
			for i, sym := range r.RHS {
				if sym.Kind != grammar.NonTerminal {
					continue
				}
				beta := r.RHS[i+1:]
				firstBeta, betaEps := s.FirstOfSequence(beta)
				if s.Follow[sym.Index].Union(firstBeta) {
					changed = true
				}
				if betaEps {
					if s.Follow[sym.Index].Union(s.Follow[r.LHS]) {
						changed = true
					}
				}
			}
		}
		if !changed {
			return
		}
	}
}
