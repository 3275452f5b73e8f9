package nook

import "sort"

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	TokenEOF TokenType = "EOF"

	// Single-char punctuation.
	TokenHash       TokenType = "#"
	TokenDollar     TokenType = "$"
	TokenLParen     TokenType = "("
	TokenRParen     TokenType = ")"
	TokenLBracket   TokenType = "["
	TokenRBracket   TokenType = "]"
	TokenLBrace     TokenType = "{"
	TokenRBrace     TokenType = "}"
	TokenComma      TokenType = ","
	TokenQuestion   TokenType = "?"
	TokenUnderscore TokenType = "_"
	TokenSemicolon  TokenType = ";"
	TokenDot        TokenType = "."

	// One or two chars, resolved by maximal munch.
	TokenBang       TokenType = "!"
	TokenBangEq     TokenType = "!="
	TokenPercent    TokenType = "%"
	TokenPercentEq  TokenType = "%="
	TokenAmp        TokenType = "&"
	TokenAmpAmp     TokenType = "&&"
	TokenAmpEq      TokenType = "&="
	TokenStar       TokenType = "*"
	TokenStarEq     TokenType = "*="
	TokenPlus       TokenType = "+"
	TokenPlusEq     TokenType = "+="
	TokenMinus      TokenType = "-"
	TokenMinusEq    TokenType = "-="
	TokenArrow      TokenType = "->"
	TokenSlash      TokenType = "/"
	TokenSlashEq    TokenType = "/="
	TokenColon      TokenType = ":"
	TokenColonColon TokenType = "::"
	TokenAssign     TokenType = "="
	TokenEq         TokenType = "=="
	TokenCaret      TokenType = "^"
	TokenCaretEq    TokenType = "^="
	TokenPipe       TokenType = "|"
	TokenPipeEq     TokenType = "|="
	TokenPipePipe   TokenType = "||"
	TokenTilde      TokenType = "~"
	TokenTildeEq    TokenType = "~="

	// One, two or three chars.
	TokenLT    TokenType = "<"
	TokenShl   TokenType = "<<"
	TokenLTE   TokenType = "<="
	TokenShlEq TokenType = "<<="
	TokenGT    TokenType = ">"
	TokenGTE   TokenType = ">="
	TokenShr   TokenType = ">>"
	TokenShrEq TokenType = ">>="

	// Literals.
	TokenIdent      TokenType = "IDENT"
	TokenString     TokenType = "STRING"
	TokenFormString TokenType = "FSTRING"
	TokenChar       TokenType = "CHAR"
	TokenInt        TokenType = "INT"
	TokenFloat      TokenType = "FLOAT"
	TokenTrue       TokenType = "TRUE"
	TokenFalse      TokenType = "FALSE"
	TokenNil        TokenType = "NIL"
	TokenNone       TokenType = "NONE"

	// Flow control.
	TokenIf       TokenType = "IF"
	TokenElse     TokenType = "ELSE"
	TokenEval     TokenType = "EVAL"
	TokenLoop     TokenType = "LOOP"
	TokenReturn   TokenType = "RETURN"
	TokenContinue TokenType = "CONTINUE"
	TokenBreak    TokenType = "BREAK"

	// Declarations.
	TokenPkg    TokenType = "PKG"
	TokenStruct TokenType = "STRUCT"
	TokenVar    TokenType = "VAR"
	TokenConst  TokenType = "CONST"
	TokenStatic TokenType = "STATIC"
	TokenDyn    TokenType = "DYN"
	TokenMtd    TokenType = "MTD"
	TokenOwn    TokenType = "OWN"
	TokenRef    TokenType = "REF"

	// Builtins.
	TokenNew   TokenType = "NEW"
	TokenDrop  TokenType = "DROP"
	TokenCopy  TokenType = "COPY"
	TokenClone TokenType = "CLONE"
	TokenPrint TokenType = "PRINT"
)

// Token captures lexical information for the parser.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position identifies a 1-based line and column (counted in runes).
type Position struct {
	Line   int
	Column int
}

// operators maps every operator and punctuation spelling to its type.
// No spelling is longer than maxOperatorLen.
var operators = map[string]TokenType{
	"#": TokenHash,
	"$": TokenDollar,
	"(": TokenLParen,
	")": TokenRParen,
	"[": TokenLBracket,
	"]": TokenRBracket,
	"{": TokenLBrace,
	"}": TokenRBrace,
	",": TokenComma,
	"?": TokenQuestion,
	"_": TokenUnderscore,
	";": TokenSemicolon,
	".": TokenDot,

	"!":  TokenBang,
	"!=": TokenBangEq,
	"%":  TokenPercent,
	"%=": TokenPercentEq,
	"&":  TokenAmp,
	"&&": TokenAmpAmp,
	"&=": TokenAmpEq,
	"*":  TokenStar,
	"*=": TokenStarEq,
	"+":  TokenPlus,
	"+=": TokenPlusEq,
	"-":  TokenMinus,
	"-=": TokenMinusEq,
	"->": TokenArrow,
	"/":  TokenSlash,
	"/=": TokenSlashEq,
	":":  TokenColon,
	"::": TokenColonColon,
	"=":  TokenAssign,
	"==": TokenEq,
	"^":  TokenCaret,
	"^=": TokenCaretEq,
	"|":  TokenPipe,
	"|=": TokenPipeEq,
	"||": TokenPipePipe,
	"~":  TokenTilde,
	"~=": TokenTildeEq,

	"<":   TokenLT,
	"<<":  TokenShl,
	"<=":  TokenLTE,
	"<<=": TokenShlEq,
	">":   TokenGT,
	">=":  TokenGTE,
	">>":  TokenShr,
	">>=": TokenShrEq,
}

const maxOperatorLen = 3

var keywords = map[string]TokenType{
	"true":  TokenTrue,
	"false": TokenFalse,
	"nil":   TokenNil,
	"none":  TokenNone,

	"if":       TokenIf,
	"else":     TokenElse,
	"eval":     TokenEval,
	"loop":     TokenLoop,
	"return":   TokenReturn,
	"continue": TokenContinue,
	"break":    TokenBreak,

	"pkg":    TokenPkg,
	"struct": TokenStruct,
	"var":    TokenVar,
	"const":  TokenConst,
	"static": TokenStatic,
	"dyn":    TokenDyn,
	"mtd":    TokenMtd,
	"own":    TokenOwn,
	"ref":    TokenRef,

	"new":   TokenNew,
	"drop":  TokenDrop,
	"copy":  TokenCopy,
	"clone": TokenClone,
	"print": TokenPrint,
}

// LookupIdent classifies a word as a keyword or a plain identifier.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return TokenIdent
}

// LookupOperator returns the type of an exact operator spelling.
func LookupOperator(op string) (TokenType, bool) {
	tt, ok := operators[op]
	return tt, ok
}

// Keywords lists every reserved word in sorted order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// IsKeyword reports whether tt is one of the reserved-word types.
func (tt TokenType) IsKeyword() bool {
	for _, kw := range keywords {
		if kw == tt {
			return true
		}
	}
	return false
}
