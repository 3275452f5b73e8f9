package nook

import (
	"reflect"
	"strings"
	"testing"
)

func scanTypes(t *testing.T, source string) []TokenType {
	t.Helper()
	tokens, err := Scan(source)
	if err != nil {
		t.Fatalf("scan %q: %v", source, err)
	}
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestScanOperatorsUseMaximalMunch(t *testing.T) {
	cases := []struct {
		source string
		want   []TokenType
	}{
		{"<<=", []TokenType{TokenShlEq, TokenEOF}},
		{"<<<", []TokenType{TokenShl, TokenLT, TokenEOF}},
		{"<<==", []TokenType{TokenShlEq, TokenAssign, TokenEOF}},
		{">>= >> >= >", []TokenType{TokenShrEq, TokenShr, TokenGTE, TokenGT, TokenEOF}},
		{"!= ! == =", []TokenType{TokenBangEq, TokenBang, TokenEq, TokenAssign, TokenEOF}},
		{"-> -= - ::", []TokenType{TokenArrow, TokenMinusEq, TokenMinus, TokenColonColon, TokenEOF}},
		{"&&& ||=", []TokenType{TokenAmpAmp, TokenAmp, TokenPipePipe, TokenAssign, TokenEOF}},
		{"~= ^= %= *= += /=", []TokenType{TokenTildeEq, TokenCaretEq, TokenPercentEq, TokenStarEq, TokenPlusEq, TokenSlashEq, TokenEOF}},
		{"#$()[]{},?_;.", []TokenType{
			TokenHash, TokenDollar, TokenLParen, TokenRParen, TokenLBracket, TokenRBracket,
			TokenLBrace, TokenRBrace, TokenComma, TokenQuestion, TokenUnderscore, TokenSemicolon, TokenDot, TokenEOF,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.source, func(t *testing.T) {
			if got := scanTypes(t, tc.source); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	source := "if else eval loop return continue break pkg struct var const static dyn mtd own ref new drop copy clone print true false nil none ifx Print café foo_bar"
	want := []TokenType{
		TokenIf, TokenElse, TokenEval, TokenLoop, TokenReturn, TokenContinue, TokenBreak,
		TokenPkg, TokenStruct, TokenVar, TokenConst, TokenStatic, TokenDyn, TokenMtd, TokenOwn, TokenRef,
		TokenNew, TokenDrop, TokenCopy, TokenClone, TokenPrint,
		TokenTrue, TokenFalse, TokenNil, TokenNone,
		TokenIdent, TokenIdent, TokenIdent, TokenIdent, TokenEOF,
	}
	if got := scanTypes(t, source); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestScanUnderscoreIsPunctuation(t *testing.T) {
	tokens, err := Scan("_x")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if tokens[0].Type != TokenUnderscore || tokens[1].Type != TokenIdent || tokens[1].Literal != "x" {
		t.Fatalf("unexpected tokens %#v", tokens)
	}
}

func TestScanTracksLineAndColumn(t *testing.T) {
	tokens, err := Scan("var x = 1;\n  print x;")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	want := []struct {
		tt      TokenType
		literal string
		line    int
		col     int
	}{
		{TokenVar, "var", 1, 1},
		{TokenIdent, "x", 1, 5},
		{TokenAssign, "=", 1, 7},
		{TokenInt, "1", 1, 9},
		{TokenSemicolon, ";", 1, 10},
		{TokenPrint, "print", 2, 3},
		{TokenIdent, "x", 2, 9},
		{TokenSemicolon, ";", 2, 10},
		{TokenEOF, "", 2, 11},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %#v", len(want), len(tokens), tokens)
	}
	for i, w := range want {
		tok := tokens[i]
		if tok.Type != w.tt || tok.Literal != w.literal || tok.Pos.Line != w.line || tok.Pos.Column != w.col {
			t.Fatalf("token %d: expected %s %q at %d:%d, got %s %q at %d:%d",
				i, w.tt, w.literal, w.line, w.col, tok.Type, tok.Literal, tok.Pos.Line, tok.Pos.Column)
		}
	}
}

func TestScanCountsColumnsInRunes(t *testing.T) {
	tokens, err := Scan("é = 'ü';")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if tokens[1].Pos.Column != 3 {
		t.Fatalf("expected '=' at column 3, got %d", tokens[1].Pos.Column)
	}
	if tokens[2].Type != TokenChar || tokens[2].Literal != "ü" || tokens[2].Pos.Column != 5 {
		t.Fatalf("unexpected char token %#v", tokens[2])
	}
}

func TestScanDiscardsComments(t *testing.T) {
	tokens, err := Scan("1 // one / two\n2 / 3 //")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	got := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		got = append(got, string(tok.Type)+":"+tok.Literal)
	}
	want := []string{"INT:1", "INT:2", "/:/", "INT:3", "EOF:"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if tokens[1].Pos.Line != 2 || tokens[1].Pos.Column != 1 {
		t.Fatalf("expected second literal at 2:1, got %+v", tokens[1].Pos)
	}
}

func TestScanNumbers(t *testing.T) {
	tokens, err := Scan("42 3.14 0.5 007")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := []Token{
		{Type: TokenInt, Literal: "42"},
		{Type: TokenFloat, Literal: "3.14"},
		{Type: TokenFloat, Literal: "0.5"},
		{Type: TokenInt, Literal: "007"},
	}
	for i, w := range want {
		if tokens[i].Type != w.Type || tokens[i].Literal != w.Literal {
			t.Fatalf("token %d: expected %s %q, got %s %q", i, w.Type, w.Literal, tokens[i].Type, tokens[i].Literal)
		}
	}
}

func TestScanRejectsMalformedNumbers(t *testing.T) {
	for _, source := range []string{"1.2.3", "7.", "1..2", "print 10.;"} {
		t.Run(source, func(t *testing.T) {
			tokens, err := Scan(source)
			if err == nil {
				t.Fatalf("expected lexical error, got tokens %#v", tokens)
			}
			if tokens != nil {
				t.Fatalf("expected no tokens on failure, got %#v", tokens)
			}
			if kind, ok := KindOf(err); !ok || kind != ErrorLexical {
				t.Fatalf("expected lexical error kind, got %v (%v)", kind, err)
			}
			if !strings.Contains(err.Error(), "malformed number literal") {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestScanMalformedNumberReportsFragmentAndPosition(t *testing.T) {
	_, err := Scan("var a = 1;\nvar b = 1.2.3;")
	if err == nil {
		t.Fatalf("expected lexical error")
	}
	nerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if nerr.Fragment != "1.2.3" || nerr.Pos.Line != 2 || nerr.Pos.Column != 9 {
		t.Fatalf("unexpected error details %+v", nerr)
	}
	want := `Error scanning source code at 2:9: malformed number literal "1.2.3"`
	if nerr.Error() != want {
		t.Fatalf("expected %q, got %q", want, nerr.Error())
	}
}

func TestScanStringsDecodeEscapes(t *testing.T) {
	tokens, err := Scan(`"a\nb\t\"q\"\\" f"hi {name}"`)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if tokens[0].Type != TokenString || tokens[0].Literal != "a\nb\t\"q\"\\" {
		t.Fatalf("unexpected string token %#v", tokens[0])
	}
	if tokens[1].Type != TokenFormString || tokens[1].Literal != "hi {name}" {
		t.Fatalf("unexpected form string token %#v", tokens[1])
	}
	if tokens[1].Pos.Column != 17 {
		t.Fatalf("expected form string at column 17, got %d", tokens[1].Pos.Column)
	}
}

func TestScanChars(t *testing.T) {
	tokens, err := Scan(`'x' '\n' '\''`)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	for i, want := range []string{"x", "\n", "'"} {
		if tokens[i].Type != TokenChar || tokens[i].Literal != want {
			t.Fatalf("token %d: expected char %q, got %#v", i, want, tokens[i])
		}
	}
}

func TestScanLexicalErrors(t *testing.T) {
	cases := []struct {
		name    string
		source  string
		message string
		line    int
		col     int
	}{
		{"unterminated string", `print "abc`, "unterminated string literal", 1, 7},
		{"string across lines", "\"ab\ncd\"", "unterminated string literal", 1, 1},
		{"unterminated char", "'a", "unterminated char literal", 1, 1},
		{"empty char", "''", "must contain exactly one character", 1, 1},
		{"long char", "x = 'ab';", "must contain exactly one character", 1, 5},
		{"unknown escape", `"a\qb"`, `unknown escape sequence \q`, 1, 3},
		{"dangling escape", `"a\`, "unterminated string literal", 1, 1},
		{"unexpected character", "var x = 1 @ 2;", "unexpected character '@'", 1, 11},
		{"backtick", "`", "unexpected character '`'", 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Scan(tc.source)
			if err == nil {
				t.Fatalf("expected error, got %#v", tokens)
			}
			if tokens != nil {
				t.Fatalf("expected no tokens, got %#v", tokens)
			}
			nerr, ok := err.(*Error)
			if !ok {
				t.Fatalf("expected *Error, got %T", err)
			}
			if nerr.Kind != ErrorLexical {
				t.Fatalf("expected lexical kind, got %v", nerr.Kind)
			}
			if !strings.Contains(nerr.Message, tc.message) {
				t.Fatalf("expected message containing %q, got %q", tc.message, nerr.Message)
			}
			if nerr.Pos.Line != tc.line || nerr.Pos.Column != tc.col {
				t.Fatalf("expected error at %d:%d, got %d:%d", tc.line, tc.col, nerr.Pos.Line, nerr.Pos.Column)
			}
		})
	}
}

func TestScanEmptyInputYieldsOnlyEOF(t *testing.T) {
	for _, source := range []string{"", "   \n\t", "// only a comment"} {
		tokens, err := Scan(source)
		if err != nil {
			t.Fatalf("scan %q: %v", source, err)
		}
		if len(tokens) != 1 || tokens[0].Type != TokenEOF {
			t.Fatalf("expected a single EOF for %q, got %#v", source, tokens)
		}
	}

	tokens, _ := Scan("")
	if tokens[0].Pos != (Position{Line: 1, Column: 1}) {
		t.Fatalf("expected EOF at 1:1, got %+v", tokens[0].Pos)
	}
}

func TestScanTokensReconstructSource(t *testing.T) {
	source := "var total = (a + b) * 2.5 <= limit; print total != nil;"
	tokens, err := Scan(source)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Literal)
	}
	want := strings.ReplaceAll(source, " ", "")
	if b.String() != want {
		t.Fatalf("expected %q, got %q", want, b.String())
	}
}

func TestLookupHelpers(t *testing.T) {
	if LookupIdent("struct") != TokenStruct || LookupIdent("structs") != TokenIdent {
		t.Fatalf("unexpected keyword classification")
	}
	if tt, ok := LookupOperator("<<="); !ok || tt != TokenShlEq {
		t.Fatalf("expected <<= operator, got %v %v", tt, ok)
	}
	if _, ok := LookupOperator("<<<"); ok {
		t.Fatalf("<<< is not an operator")
	}
	words := Keywords()
	if len(words) != 25 || words[0] != "break" {
		t.Fatalf("unexpected keyword list %v", words)
	}
	if !TokenVar.IsKeyword() || TokenPlus.IsKeyword() {
		t.Fatalf("unexpected IsKeyword results")
	}
}
