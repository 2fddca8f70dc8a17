package parsetable_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apoorva106/compiler-project/firstfollow"
	"github.com/apoorva106/compiler-project/grammar"
	"github.com/apoorva106/compiler-project/parsetable"
)

const scenarioSixGrammar = `
S TK_a A
A TK_b
A TK_EPS
`

func TestBuildScenarioSix(t *testing.T) {
	g, err := grammar.Load(strings.NewReader(scenarioSixGrammar))
	require.NoError(t, err)
	ff := firstfollow.Compute(g)
	tbl := parsetable.Build(g, ff)

	a := indexOf(g.Terminals, "TK_a")
	b := indexOf(g.Terminals, "TK_b")
	dollar := g.Dollar
	sIdx := indexOf(g.NonTerminals, "S")
	aIdx := indexOf(g.NonTerminals, "A")

	require.Equal(t, parsetable.Cell{Kind: parsetable.Rule, Rule: 1}, tbl.Get(sIdx, a))
	require.Equal(t, parsetable.Cell{Kind: parsetable.Synch}, tbl.Get(sIdx, dollar))
	require.Equal(t, parsetable.Cell{Kind: parsetable.Error}, tbl.Get(sIdx, b))

	require.Equal(t, parsetable.Cell{Kind: parsetable.Rule, Rule: 2}, tbl.Get(aIdx, b))
	require.Equal(t, parsetable.Cell{Kind: parsetable.Rule, Rule: 3}, tbl.Get(aIdx, dollar))
	require.Equal(t, parsetable.Cell{Kind: parsetable.Error}, tbl.Get(aIdx, a))
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
