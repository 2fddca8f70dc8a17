// Package scanner turns a byte source into the fixed token alphabet
// described in spec §4.2/§4.3: a keyword table plus a hand-written DFA
// covering identifiers, numeric literals, operators and punctuation.
//
// The scanner is pull-based, mirroring the teacher's StateFn-driven
// lexer: callers repeatedly call NextToken until they see a token.EOF
// (which, once reached, is returned on every subsequent call).
package scanner

import (
	"strconv"

	"github.com/apoorva106/compiler-project/source"
	"github.com/apoorva106/compiler-project/token"
)

// Scanner produces a sequence of token.Token from a source.Source.
type Scanner struct {
	src *source.Source
}

// New wraps src in a Scanner.
func New(src *source.Source) *Scanner {
	return &Scanner{src: src}
}

// NextToken returns the next token in the stream, skipping whitespace
// and comments are returned as token.Comment (callers that want them
// filtered do so themselves; see WriteTokens for a dump that keeps
// them).
func (sc *Scanner) NextToken() token.Token {
	for {
		sc.src.Commit()
		c := sc.src.NextChar()
		switch c {
		case source.EOF:
			return token.Token{Kind: token.EOF, Line: sc.src.Line()}
		case ' ', '\t', '\r', '\n':
			continue
		}
		line := sc.src.Line()
		switch {
		case c == '%':
			return sc.scanComment(line)
		case c == '+':
			return sc.emit(token.Plus, line)
		case c == '-':
			return sc.emit(token.Minus, line)
		case c == '*':
			return sc.emit(token.Star, line)
		case c == '/':
			return sc.emit(token.Slash, line)
		case c == '(':
			return sc.emit(token.LParen, line)
		case c == ')':
			return sc.emit(token.RParen, line)
		case c == '[':
			return sc.emit(token.LBracket, line)
		case c == ']':
			return sc.emit(token.RBracket, line)
		case c == ',':
			return sc.emit(token.Comma, line)
		case c == ';':
			return sc.emit(token.Semi, line)
		case c == ':':
			return sc.emit(token.Colon, line)
		case c == '.':
			return sc.emit(token.Dot, line)
		case c == '~':
			return sc.emit(token.Not, line)
		case c == '<':
			return sc.scanLt(line)
		case c == '>':
			return sc.scanGt(line)
		case c == '=':
			return sc.scanEq(line)
		case c == '!':
			return sc.scanBang(line)
		case c == '&':
			return sc.scanTriple(token.And, '&', line)
		case c == '@':
			return sc.scanTriple(token.Or, '@', line)
		case c == '#':
			return sc.scanRecordID(line)
		case c == '_':
			return sc.scanFunID(line)
		case c >= '0' && c <= '9':
			return sc.scanNumber(line)
		case c >= 'a' && c <= 'z':
			return sc.scanLowerAlpha(byte(c), line)
		default:
			return sc.unknownSymbol(line)
		}
	}
}

// emit returns a single-character token already consumed into the
// current lexeme.
func (sc *Scanner) emit(kind token.Kind, line int) token.Token {
	return token.Token{Kind: kind, Lexeme: string(sc.src.Lexeme()), Line: line}
}

func (sc *Scanner) unknownSymbol(line int) token.Token {
	return token.Token{Kind: token.Error, Lexeme: string(sc.src.Lexeme()), Line: line, ErrKind: token.ErrUnknownSymbol}
}

func (sc *Scanner) malformed(line int) token.Token {
	return token.Token{Kind: token.Error, Lexeme: string(sc.src.Lexeme()), Line: line, ErrKind: token.ErrMalformedPattern}
}

func (sc *Scanner) tooLong(line int) token.Token {
	return token.Token{Kind: token.Error, Lexeme: string(sc.src.Lexeme()), Line: line, ErrKind: token.ErrIdentifierTooLong}
}

// retractReal puts c back if it was an actual byte read (not the EOF
// sentinel, which never advances the source's cursor).
func retractReal(src *source.Source, c int) {
	if c != source.EOF {
		src.Retract(1)
	}
}

func isDigit(c int) bool      { return c >= '0' && c <= '9' }
func isLowerAlpha(c int) bool { return c >= 'a' && c <= 'z' }
func isAlpha(c int) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isAlnum(c int) bool { return isAlpha(c) || isDigit(c) }

// scanComment consumes a '%' line comment up to but not including the
// terminating newline or end of input.
func (sc *Scanner) scanComment(line int) token.Token {
	for {
		c := sc.src.NextChar()
		if c == '\n' || c == source.EOF {
			retractReal(sc.src, c)
			break
		}
	}
	return token.Token{Kind: token.Comment, Lexeme: string(sc.src.Lexeme()), Line: line}
}

// scanLt disambiguates '<', "<=" and "<---" with up to three
// characters of lookahead.
func (sc *Scanner) scanLt(line int) token.Token {
	c1 := sc.src.NextChar()
	if c1 == '=' {
		return sc.emit(token.Le, line)
	}
	if c1 == '-' {
		c2 := sc.src.NextChar()
		if c2 == '-' {
			c3 := sc.src.NextChar()
			if c3 == '-' {
				return sc.emit(token.Assign, line)
			}
			retractReal(sc.src, c3)
			retractReal(sc.src, c2)
			retractReal(sc.src, c1)
			return sc.emit(token.Lt, line)
		}
		retractReal(sc.src, c2)
		retractReal(sc.src, c1)
		return sc.emit(token.Lt, line)
	}
	retractReal(sc.src, c1)
	return sc.emit(token.Lt, line)
}

func (sc *Scanner) scanGt(line int) token.Token {
	c := sc.src.NextChar()
	if c == '=' {
		return sc.emit(token.Ge, line)
	}
	retractReal(sc.src, c)
	return sc.emit(token.Gt, line)
}

func (sc *Scanner) scanEq(line int) token.Token {
	c := sc.src.NextChar()
	if c == '=' {
		return sc.emit(token.Eq, line)
	}
	retractReal(sc.src, c)
	return sc.unknownSymbol(line)
}

func (sc *Scanner) scanBang(line int) token.Token {
	c := sc.src.NextChar()
	if c == '=' {
		return sc.emit(token.Ne, line)
	}
	retractReal(sc.src, c)
	return sc.unknownSymbol(line)
}

// scanTriple matches a fixed three-character lexeme made of the same
// byte repeated ("&&&", "@@@"). Anything short of that is retracted
// and the leading byte alone is reported as an unknown symbol.
func (sc *Scanner) scanTriple(kind token.Kind, ch byte, line int) token.Token {
	n := 0
	c1 := sc.src.NextChar()
	if c1 != source.EOF {
		n++
	}
	if byte(c1) == ch {
		c2 := sc.src.NextChar()
		if c2 != source.EOF {
			n++
		}
		if byte(c2) == ch {
			return sc.emit(kind, line)
		}
	}
	sc.src.Retract(n)
	return sc.unknownSymbol(line)
}

// scanRecordID handles '#' followed by one or more lowercase letters.
// "#record" is the RECORD keyword; every other such lexeme is a
// user-defined-type identifier.
func (sc *Scanner) scanRecordID(line int) token.Token {
	n := 0
	for {
		c := sc.src.NextChar()
		if isLowerAlpha(c) {
			n++
			continue
		}
		retractReal(sc.src, c)
		break
	}
	if n == 0 {
		return sc.malformed(line)
	}
	lexeme := string(sc.src.Lexeme())
	if lexeme == "#record" {
		return token.Token{Kind: token.KwRecord, Lexeme: lexeme, Line: line}
	}
	return token.Token{Kind: token.RecordID, Lexeme: lexeme, Line: line}
}

// scanFunID handles '_' followed by a letter then zero or more
// alphanumerics, with the literal lexeme "_main" recognized as the
// MAIN keyword.
func (sc *Scanner) scanFunID(line int) token.Token {
	c := sc.src.NextChar()
	if !isAlpha(c) {
		retractReal(sc.src, c)
		return sc.malformed(line)
	}
	for {
		c = sc.src.NextChar()
		if isAlnum(c) {
			continue
		}
		retractReal(sc.src, c)
		break
	}
	lexeme := string(sc.src.Lexeme())
	if lexeme == "_main" {
		return token.Token{Kind: token.KwMain, Lexeme: lexeme, Line: line}
	}
	if len(lexeme) > 30 {
		return sc.tooLong(line)
	}
	return token.Token{Kind: token.FunID, Lexeme: lexeme, Line: line}
}

// scanLowerAlpha dispatches a lowercase-starting word. Letters in
// [b-d] first attempt the plain-identifier shape ([b-d]+[2-7]+);
// anything else, and any [b-d] run that fails that shape, falls
// through to field-id/keyword scanning (see DESIGN.md's Open
// Questions for why the shape is "one or more, not two or more").
func (sc *Scanner) scanLowerAlpha(c0 byte, line int) token.Token {
	if c0 >= 'b' && c0 <= 'd' {
		return sc.scanMaybePlainID(line)
	}
	return sc.scanFieldIDRest(line)
}

func (sc *Scanner) scanMaybePlainID(line int) token.Token {
	for {
		c := sc.src.NextChar()
		switch {
		case c >= 'b' && c <= 'd':
			continue
		case c >= '2' && c <= '7':
			return sc.scanPlainIDDigits(line)
		case isLowerAlpha(c):
			return sc.scanFieldIDRest(line)
		default:
			retractReal(sc.src, c)
			return sc.finishFieldOrKeyword(line)
		}
	}
}

func (sc *Scanner) scanPlainIDDigits(line int) token.Token {
	for {
		c := sc.src.NextChar()
		if c >= '2' && c <= '7' {
			continue
		}
		retractReal(sc.src, c)
		break
	}
	lexeme := string(sc.src.Lexeme())
	if len(lexeme) > 20 {
		return sc.tooLong(line)
	}
	return token.Token{Kind: token.ID, Lexeme: lexeme, Line: line}
}

// scanFieldIDRest consumes the remaining run of [a-z] letters (the
// caller has already consumed at least the first one) and classifies
// the accumulated lexeme.
func (sc *Scanner) scanFieldIDRest(line int) token.Token {
	for {
		c := sc.src.NextChar()
		if isLowerAlpha(c) {
			continue
		}
		retractReal(sc.src, c)
		break
	}
	return sc.finishFieldOrKeyword(line)
}

func (sc *Scanner) finishFieldOrKeyword(line int) token.Token {
	lexeme := string(sc.src.Lexeme())
	if kind, ok := lookupKeyword(lexeme); ok {
		return token.Token{Kind: kind, Lexeme: lexeme, Line: line}
	}
	return token.Token{Kind: token.FieldID, Lexeme: lexeme, Line: line}
}

// scanNumber handles an integer, or a real if a '.' follows the
// integer part.
func (sc *Scanner) scanNumber(line int) token.Token {
	for {
		c := sc.src.NextChar()
		if isDigit(c) {
			continue
		}
		if c == '.' {
			return sc.scanReal(line)
		}
		retractReal(sc.src, c)
		break
	}
	lexeme := string(sc.src.Lexeme())
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return sc.malformed(line)
	}
	return token.Token{Kind: token.Int, Lexeme: lexeme, Line: line, IntVal: v}
}

// scanReal is entered with the '.' already consumed. It requires
// exactly two fractional digits, then an optional exponent ('E'|'e',
// optional sign, exactly two digits). Once the exponent marker is
// seen the original scanner commits to it: a malformed exponent is a
// lexical error over the whole lexeme rather than something to
// retract and rescan, matching the original's exponent-state
// handling (no backing out once 'E' has been consumed).
func (sc *Scanner) scanReal(line int) token.Token {
	d1 := sc.src.NextChar()
	if !isDigit(d1) {
		retractReal(sc.src, d1)
		return sc.malformed(line)
	}
	d2 := sc.src.NextChar()
	if !isDigit(d2) {
		retractReal(sc.src, d2)
		return sc.malformed(line)
	}
	c := sc.src.NextChar()
	if c == 'E' || c == 'e' {
		return sc.scanExponentOrError(line)
	}
	retractReal(sc.src, c)
	return sc.emitReal(line)
}

// scanExponentOrError is entered with 'E'/'e' already consumed.
func (sc *Scanner) scanExponentOrError(line int) token.Token {
	c := sc.src.NextChar()
	if c == '+' || c == '-' {
		c = sc.src.NextChar()
	}
	if !isDigit(c) {
		retractReal(sc.src, c)
		return sc.malformed(line)
	}
	d2 := sc.src.NextChar()
	if !isDigit(d2) {
		retractReal(sc.src, d2)
		return sc.malformed(line)
	}
	return sc.emitReal(line)
}

func (sc *Scanner) emitReal(line int) token.Token {
	lexeme := string(sc.src.Lexeme())
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return sc.malformed(line)
	}
	return token.Token{Kind: token.Real, Lexeme: lexeme, Line: line, RealVal: v}
}
