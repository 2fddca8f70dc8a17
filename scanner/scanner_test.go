package scanner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apoorva106/compiler-project/scanner"
	"github.com/apoorva106/compiler-project/source"
	"github.com/apoorva106/compiler-project/token"
)

func scanAll(t *testing.T, input string) []token.Token {
	t.Helper()
	f := token.NewFile("test.in")
	src := source.New(strings.NewReader(input), f)
	sc := scanner.New(src)
	toks := scanner.All(sc)
	require.NotEmpty(t, toks)
	require.Equal(t, token.EOF, toks[len(toks)-1].Kind)
	return toks[:len(toks)-1]
}

func TestScanConcreteScenarioOne(t *testing.T) {
	toks := scanAll(t, "a <--- 3 + b2222 ;")

	want := []token.Token{
		{Kind: token.FieldID, Lexeme: "a", Line: 1},
		{Kind: token.Assign, Lexeme: "<---", Line: 1},
		{Kind: token.Int, Lexeme: "3", Line: 1, IntVal: 3},
		{Kind: token.Plus, Lexeme: "+", Line: 1},
		{Kind: token.ID, Lexeme: "b2222", Line: 1},
		{Kind: token.Semi, Lexeme: ";", Line: 1},
	}
	require.Equal(t, want, toks)
}

func TestScanRealWithExponent(t *testing.T) {
	toks := scanAll(t, "12.34E+05")
	require.Len(t, toks, 1)
	require.Equal(t, token.Real, toks[0].Kind)
	require.Equal(t, "12.34E+05", toks[0].Lexeme)
	require.InDelta(t, 12.34e5, toks[0].RealVal, 1e-9)
}

func TestScanRealMalformedSingleFractionDigit(t *testing.T) {
	toks := scanAll(t, "12.3")
	require.Len(t, toks, 1)
	require.Equal(t, token.Error, toks[0].Kind)
	require.Equal(t, token.ErrMalformedPattern, toks[0].ErrKind)
	require.Equal(t, "12.3", toks[0].Lexeme)
}

func TestScanRealExponentMissingSecondDigitIsError(t *testing.T) {
	// Once 'E' is seen the scanner commits to an exponent; a single
	// trailing digit with nothing after it is a malformed pattern over
	// the whole lexeme, not a real plus a separate integer.
	toks := scanAll(t, "12.34E5")
	require.Len(t, toks, 1)
	require.Equal(t, token.Error, toks[0].Kind)
	require.Equal(t, token.ErrMalformedPattern, toks[0].ErrKind)
	require.Equal(t, "12.34E5", toks[0].Lexeme)
}

func TestScanRealExponentNonDigitAfterMarkerIsError(t *testing.T) {
	toks := scanAll(t, "12.34Ex")
	require.Len(t, toks, 2)
	require.Equal(t, token.Error, toks[0].Kind)
	require.Equal(t, token.ErrMalformedPattern, toks[0].ErrKind)
	require.Equal(t, "12.34E", toks[0].Lexeme)
	require.Equal(t, token.FieldID, toks[1].Kind)
	require.Equal(t, "x", toks[1].Lexeme)
}

func TestScanLtDisambiguation(t *testing.T) {
	toks := scanAll(t, "< <= <---")
	require.Equal(t, []token.Kind{token.Lt, token.Le, token.Assign}, []token.Kind{toks[0].Kind, toks[1].Kind, toks[2].Kind})
}

func TestScanLtFollowedByBareDash(t *testing.T) {
	toks := scanAll(t, "<- x")
	require.Equal(t, token.Lt, toks[0].Kind)
	require.Equal(t, token.Minus, toks[1].Kind)
	require.Equal(t, token.FieldID, toks[2].Kind)
}

func TestScanFunIDAndMain(t *testing.T) {
	toks := scanAll(t, "_main _foo1")
	require.Equal(t, token.KwMain, toks[0].Kind)
	require.Equal(t, "_main", toks[0].Lexeme)
	require.Equal(t, token.FunID, toks[1].Kind)
	require.Equal(t, "_foo1", toks[1].Lexeme)
}

func TestScanRecordIDAndKeyword(t *testing.T) {
	toks := scanAll(t, "#record #employee")
	require.Equal(t, token.KwRecord, toks[0].Kind)
	require.Equal(t, token.RecordID, toks[1].Kind)
	require.Equal(t, "#employee", toks[1].Lexeme)
}

func TestScanKeywordVsFieldID(t *testing.T) {
	toks := scanAll(t, "call calling")
	require.Equal(t, token.KwCall, toks[0].Kind)
	require.Equal(t, token.FieldID, toks[1].Kind)
	require.Equal(t, "calling", toks[1].Lexeme)
}

func TestScanPlainIDFallsThroughToFieldID(t *testing.T) {
	// "bad" starts with 'b' in [b-d], but 'a' breaks the plain-id
	// shape (it's not in [b-d] and no digit run ever started), so the
	// whole word falls through to field-id/keyword lookup.
	toks := scanAll(t, "bad")
	require.Equal(t, token.FieldID, toks[0].Kind)
	require.Equal(t, "bad", toks[0].Lexeme)
}

func TestScanPlainIDTooLong(t *testing.T) {
	toks := scanAll(t, "bbbbbbbbbbbbbbbbbbbb22222") // 20 b's + digits, > 20 total
	require.Equal(t, token.Error, toks[0].Kind)
	require.Equal(t, token.ErrIdentifierTooLong, toks[0].ErrKind)
}

func TestScanCommentSkippedToNewline(t *testing.T) {
	toks := scanAll(t, "a % a trailing remark\nb22")
	require.Equal(t, token.FieldID, toks[0].Kind)
	require.Equal(t, token.Comment, toks[1].Kind)
	require.Equal(t, "% a trailing remark", toks[1].Lexeme)
	require.Equal(t, token.ID, toks[2].Kind)
	require.Equal(t, 2, toks[2].Line)
}

func TestScanAndOrTriples(t *testing.T) {
	toks := scanAll(t, "&&& @@@")
	require.Equal(t, token.And, toks[0].Kind)
	require.Equal(t, token.Or, toks[1].Kind)
}

func TestScanLoneAmpersandIsUnknownSymbol(t *testing.T) {
	// "&&" falls one byte short of the "&&&" triple, so scanTriple
	// retracts and reports its leading byte alone as unknown — and
	// since the second '&' is retracted whole, the next NextToken call
	// dispatches fresh on it and repeats the same failed match, so two
	// single-byte Error tokens precede the field id.
	toks := scanAll(t, "&& x")
	require.Equal(t, token.Error, toks[0].Kind)
	require.Equal(t, token.ErrUnknownSymbol, toks[0].ErrKind)
	require.Equal(t, "&", toks[0].Lexeme)
	require.Equal(t, token.Error, toks[1].Kind)
	require.Equal(t, token.ErrUnknownSymbol, toks[1].ErrKind)
	require.Equal(t, "&", toks[1].Lexeme)
	require.Equal(t, token.FieldID, toks[2].Kind)
}

func TestScanStrayEqualsIsError(t *testing.T) {
	toks := scanAll(t, "= x")
	require.Equal(t, token.Error, toks[0].Kind)
	require.Equal(t, token.ErrUnknownSymbol, toks[0].ErrKind)
}

func TestScanLineNumbersAcrossNewlines(t *testing.T) {
	toks := scanAll(t, "a\nb\n\nc22")
	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 2, toks[1].Line)
	require.Equal(t, 4, toks[2].Line)
}
