package scanner

import "github.com/apoorva106/compiler-project/token"

// keywords is the fixed lexeme-to-kind table consulted once a field-id
// candidate lexeme has been fully accumulated. "_main" is handled
// separately in scanFunID since it lives in the '_'-prefixed alphabet,
// not here; "#record" is handled in scanRecordID for the same reason.
var keywords = map[string]token.Kind{
	"call":         token.KwCall,
	"else":         token.KwElse,
	"end":          token.KwEnd,
	"endif":        token.KwEndIf,
	"endrecord":    token.KwEndRecord,
	"endunion":     token.KwEndUnion,
	"global":       token.KwGlobal,
	"if":           token.KwIf,
	"input":        token.KwInput,
	"int":          token.KwInt,
	"list":         token.KwList,
	"output":       token.KwOutput,
	"parameter":    token.KwParameter,
	"parameters":   token.KwParameters,
	"read":         token.KwRead,
	"real":         token.KwReal,
	"record":       token.KwRecord,
	"return":       token.KwReturn,
	"then":         token.KwThen,
	"type":         token.KwType,
	"union":        token.KwUnion,
	"with":         token.KwWith,
	"write":        token.KwWrite,
}

// lookupKeyword reports the keyword kind for lexeme, if any.
func lookupKeyword(lexeme string) (token.Kind, bool) {
	k, ok := keywords[lexeme]
	return k, ok
}
