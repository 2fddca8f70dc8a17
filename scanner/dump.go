package scanner

import (
	"fmt"
	"io"

	"github.com/apoorva106/compiler-project/token"
)

// WriteTokens renders a token stream one line per token, in the
// "Line no. N Lexeme L Token TK_..." shape the original driver printed
// one token at a time as it scanned.
func WriteTokens(w io.Writer, toks []token.Token) error {
	for _, t := range toks {
		var err error
		if t.Kind == token.Error {
			_, err = fmt.Fprintf(w, "Line no. %d: Error: %s <%s>\n", t.Line, t.ErrKind, t.Lexeme)
		} else {
			_, err = fmt.Fprintf(w, "Line no. %d\tLexeme %s\tToken TK_%s\n", t.Line, t.Lexeme, t.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// All scans src to exhaustion and returns every token produced,
// including the terminal token.EOF.
func All(sc *Scanner) []token.Token {
	var toks []token.Token
	for {
		t := sc.NextToken()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}
