package firstfollow_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apoorva106/compiler-project/firstfollow"
	"github.com/apoorva106/compiler-project/grammar"
)

// scenarioSixGrammar is spec §8's worked example.
const scenarioSixGrammar = `
S TK_a A
A TK_b
A TK_EPS
`

func load(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := grammar.Load(strings.NewReader(scenarioSixGrammar))
	require.NoError(t, err)
	return g
}

func TestFirstAndFollowScenarioSix(t *testing.T) {
	g := load(t)
	ff := firstfollow.Compute(g)

	a := indexOf(g.Terminals, "TK_a")
	b := indexOf(g.Terminals, "TK_b")
	dollar := g.Dollar

	sIdx := indexOf(g.NonTerminals, "S")
	aIdx := indexOf(g.NonTerminals, "A")

	// FIRST(S) = {TK_a}
	require.Equal(t, []int{a}, ff.First[sIdx].Terminals())
	require.False(t, ff.FirstEps[sIdx])

	// FIRST(A) = {TK_b}, epsilon in FIRST(A)
	require.Equal(t, []int{b}, ff.First[aIdx].Terminals())
	require.True(t, ff.FirstEps[aIdx])

	// FOLLOW(A) = {TK_DOLLAR}
	require.Equal(t, []int{dollar}, ff.Follow[aIdx].Terminals())

	// FOLLOW(S) = {TK_DOLLAR} (start symbol)
	require.Equal(t, []int{dollar}, ff.Follow[sIdx].Terminals())
}

func TestFirstOfSequenceEpsilonOnly(t *testing.T) {
	g := load(t)
	ff := firstfollow.Compute(g)

	set, eps := ff.FirstOfSequence([]grammar.Symbol{{Kind: grammar.Epsilon}})
	require.True(t, eps)
	require.Equal(t, 0, set.Len())
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
