package nook

import (
	"fmt"
	"strconv"
	"strings"
)

// errorExpected reports msg together with the token actually found.
func (p *parser) errorExpected(tok Token, msg string) *Error {
	return p.errorAt(tok, fmt.Sprintf("%s, found %s", msg, tokenLabel(tok)))
}

func (p *parser) errorAt(tok Token, msg string) *Error {
	return &Error{Kind: ErrorSyntax, Message: msg, Fragment: tok.Literal, Pos: tok.Pos}
}

func tokenLabel(tok Token) string {
	switch tok.Type {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier " + tok.Literal
	case TokenInt, TokenFloat:
		return "number " + tok.Literal
	case TokenString:
		return "string " + strconv.Quote(tok.Literal)
	case TokenFormString:
		return "form string " + strconv.Quote(tok.Literal)
	case TokenChar:
		return "char '" + tok.Literal + "'"
	default:
		if tok.Type.IsKeyword() {
			return "'" + strings.ToLower(string(tok.Type)) + "'"
		}
		return "'" + string(tok.Type) + "'"
	}
}
