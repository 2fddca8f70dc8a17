// Package token defines the fixed token alphabet produced by the scanner
// and a File type used to map byte offsets back to 1-based line numbers.
package token

import "fmt"

// Kind represents a token's category. The zero value, Invalid, is never
// emitted by the scanner.
type Kind int

// Reserved, non-keyword, non-operator kinds.
const (
	Invalid Kind = iota // zero value; never emitted
	EOF                 // DOLLAR sentinel ending the stream; returned on every call once reached
	Eps                 // epsilon marker; a grammar-only symbol, never scanned
	Error               // lexical error; ErrKind on the Token identifies the sub-kind
	Comment             // a % ... line comment

	FieldID  // lowercase-letter field identifier, or any non-keyword [a-z]+ word
	ID       // plain identifier: [b-d]+[2-7]+
	FunID    // function identifier: _ letter alnum*
	RecordID // # followed by one or more lowercase letters, excluding "#record"

	Int  // integer literal
	Real // real literal, possibly with exponent

	// Keywords (fixed lexemes, see the scanner package's keyword table).
	KwCall
	KwElse
	KwEnd
	KwEndIf
	KwEndRecord
	KwEndUnion
	KwGlobal
	KwIf
	KwInput
	KwInt
	KwList
	KwMain // the exact lexeme "_main"
	KwOutput
	KwParameter
	KwParameters
	KwRead
	KwReal
	KwRecord // "record" keyword, or "#record"
	KwReturn
	KwThen
	KwType
	KwUnion
	KwWith
	KwWrite

	// Operators and punctuation (fixed lexemes).
	Assign // <---
	Le     // <=
	Ge     // >=
	Eq     // ==
	Ne     // !=
	Lt     // <
	Gt     // >
	Plus   // +
	Minus  // -
	Star   // *
	Slash  // /
	LParen // (
	RParen // )
	LBracket
	RBracket
	Comma
	Semi
	Colon
	Dot
	Not // ~
	And // &&&
	Or  // @@@
)

var kindNames = map[Kind]string{
	Invalid:      "INVALID",
	EOF:          "DOLLAR",
	Eps:          "EPS",
	Error:        "ERROR",
	Comment:      "COMMENT",
	FieldID:      "FIELDID",
	ID:           "ID",
	FunID:        "FUNID",
	RecordID:     "RECORDID",
	Int:          "NUM",
	Real:         "RNUM",
	KwCall:       "CALL",
	KwElse:       "ELSE",
	KwEnd:        "END",
	KwEndIf:      "ENDIF",
	KwEndRecord:  "ENDRECORD",
	KwEndUnion:   "ENDUNION",
	KwGlobal:     "GLOBAL",
	KwIf:         "IF",
	KwInput:      "INPUT",
	KwInt:        "INT",
	KwList:       "LIST",
	KwMain:       "MAIN",
	KwOutput:     "OUTPUT",
	KwParameter:  "PARAMETER",
	KwParameters: "PARAMETERS",
	KwRead:       "READ",
	KwReal:       "REAL",
	KwRecord:     "RECORD",
	KwReturn:     "RETURN",
	KwThen:       "THEN",
	KwType:       "TYPE",
	KwUnion:      "UNION",
	KwWith:       "WITH",
	KwWrite:      "WRITE",
	Assign:       "ASSIGNOP",
	Le:           "LE",
	Ge:           "GE",
	Eq:           "EQ",
	Ne:           "NE",
	Lt:           "LT",
	Gt:           "GT",
	Plus:         "PLUS",
	Minus:        "MINUS",
	Star:         "MUL",
	Slash:        "DIV",
	LParen:       "OP",
	RParen:       "CL",
	LBracket:     "SQL",
	RBracket:     "SQR",
	Comma:        "COMMA",
	Semi:         "SEM",
	Colon:        "COLON",
	Dot:          "DOT",
	Not:          "NOT",
	And:          "AND",
	Or:           "OR",
}

// String returns the canonical name for k, e.g. "ASSIGNOP".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var namesToKind = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// KindByName returns the Kind whose String() form is name, e.g.
// KindByName("PLUS") == Plus. This is the inverse of Kind.String, used
// by the parser package to bind a grammar's TK_-prefixed terminal names
// (stripped of the prefix) back to the scanner's own Kind values.
func KindByName(name string) (Kind, bool) {
	k, ok := namesToKind[name]
	return k, ok
}

// ErrorKind identifies the sub-kind of a lexical error token.
type ErrorKind int

const (
	// NoError is the zero value; valid only on non-Error tokens.
	NoError ErrorKind = iota
	ErrIdentifierTooLong
	ErrUnknownSymbol
	ErrMalformedPattern
)

func (e ErrorKind) String() string {
	switch e {
	case ErrIdentifierTooLong:
		return "identifier too long"
	case ErrUnknownSymbol:
		return "unknown symbol"
	case ErrMalformedPattern:
		return "malformed pattern"
	default:
		return "no error"
	}
}

// Token is a single classified lexeme with its source line and, where
// applicable, its decoded numeric value or error sub-kind.
//
// Lexeme is owned by the Token: it never aliases the scanner's internal
// buffer past the call that produced it.
type Token struct {
	Kind    Kind
	Lexeme  string
	Line    int
	IntVal  int64     // valid when Kind == Int
	RealVal float64   // valid when Kind == Real
	ErrKind ErrorKind // valid when Kind == Error
}

// IsKeyword reports whether k is one of the fixed keyword kinds.
func (k Kind) IsKeyword() bool {
	return k >= KwCall && k <= KwWrite
}

// String renders a Token for diagnostics/dumps, not for machine parsing.
func (t Token) String() string {
	if t.Kind == Error {
		return fmt.Sprintf("%d:%s %q (%s)", t.Line, t.Kind, t.Lexeme, t.ErrKind)
	}
	return fmt.Sprintf("%d:%s %q", t.Line, t.Kind, t.Lexeme)
}
