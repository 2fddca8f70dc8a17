package parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/require"

	"github.com/apoorva106/compiler-project/firstfollow"
	"github.com/apoorva106/compiler-project/grammar"
	"github.com/apoorva106/compiler-project/parser"
	"github.com/apoorva106/compiler-project/parsetable"
	"github.com/apoorva106/compiler-project/token"
)

// scenarioSixGrammar restates spec §8's worked example (S -> TK_a A,
// A -> TK_b | TK_EPS) using two real token kinds standing in for the
// abstract TK_a/TK_b terminals, so the predictive driver (which binds
// grammar terminals to token.Kind by name) can drive it directly.
const scenarioSixGrammar = `
S TK_PLUS A
A TK_MINUS
A TK_EPS
`

func TestParseTreeShapeMatchesScenarioSix(t *testing.T) {
	g, err := grammar.Load(strings.NewReader(scenarioSixGrammar))
	require.NoError(t, err)
	ff := firstfollow.Compute(g)
	tbl := parsetable.Build(g, ff)
	b := parser.NewBinding(g, tbl)

	toks := []token.Token{
		{Kind: token.Plus, Lexeme: "+", Line: 1},
		{Kind: token.Minus, Lexeme: "-", Line: 1},
		{Kind: token.EOF, Line: 1},
	}
	res := parser.Parse(b, toks)
	require.False(t, res.AnyError)
	require.Empty(t, res.Diagnostics)

	aIdx := indexOf(g.NonTerminals, "A")
	sIdx := indexOf(g.NonTerminals, "S")
	want := &parser.Node{
		NonTerminal: sIdx,
		Rule:        1,
		Children: []*parser.Node{
			{IsLeaf: true, Kind: token.Plus, Lexeme: "+", Line: 1},
			{
				NonTerminal: aIdx,
				Rule:        2,
				Children: []*parser.Node{
					{IsLeaf: true, Kind: token.Minus, Lexeme: "-", Line: 1},
				},
			},
		},
	}

	if diff := cmp.Diff(want, res.Tree, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s\npretty diff:\n%s", diff, pretty.Compare(want, res.Tree))
	}
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
