package grammar_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apoorva106/compiler-project/grammar"
)

// scenarioSixGrammar is spec §8's worked example: S -> TK_a A, A -> TK_b,
// A -> TK_EPS.
const scenarioSixGrammar = `
S TK_a A
A TK_b
A TK_EPS
`

func TestLoadAssignsIndicesInFirstSeenOrder(t *testing.T) {
	g, err := grammar.Load(strings.NewReader(scenarioSixGrammar))
	require.NoError(t, err)

	require.Equal(t, []string{"S", "A"}, g.NonTerminals)
	require.Equal(t, []string{"TK_a", "TK_b", "TK_DOLLAR"}, g.Terminals)
	require.Equal(t, 0, g.Start)
	require.Len(t, g.Rules, 3)

	require.Equal(t, grammar.Rule{Number: 1, LHS: 0, RHS: []grammar.Symbol{
		{Kind: grammar.Terminal, Index: 0},
		{Kind: grammar.NonTerminal, Index: 1},
	}}, g.Rules[0])
	require.Equal(t, grammar.Rule{Number: 2, LHS: 1, RHS: []grammar.Symbol{
		{Kind: grammar.Terminal, Index: 1},
	}}, g.Rules[1])
	require.True(t, grammar.IsEpsilonRHS(g.Rules[2].RHS))
}

func TestLoadSkipsBlankAndShortLines(t *testing.T) {
	g, err := grammar.Load(strings.NewReader("\nS TK_a\n \nA\n"))
	require.NoError(t, err)
	require.Len(t, g.Rules, 1)
}

func TestLoadExistingDollarIsNotDuplicated(t *testing.T) {
	g, err := grammar.Load(strings.NewReader("S TK_DOLLAR\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"TK_DOLLAR"}, g.Terminals)
	require.Equal(t, 0, g.Dollar)
}

func TestLoadNoRulesIsError(t *testing.T) {
	_, err := grammar.Load(strings.NewReader("\n\n"))
	require.Error(t, err)
}
