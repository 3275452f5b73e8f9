package nook

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// eof marks the end of input. It cannot collide with a decoded rune.
const eof rune = -1

type lexer struct {
	input string

	offset int
	width  int

	line   int
	column int

	ch rune
}

// Scan converts source into tokens terminated by a single EOF token. It
// stops at the first lexical error and then returns no tokens at all.
func Scan(source string) ([]Token, error) {
	l := newLexer(source)
	tokens := make([]Token, 0, len(source)/4+1)
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: 0}
	l.readRune()
	return l
}

// readRune moves past the current rune. line and column always describe
// the rune held in ch.
func (l *lexer) readRune() {
	switch l.ch {
	case eof:
		return
	case '\n':
		l.line++
		l.column = 1
	default:
		l.column++
	}

	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = eof
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w
	l.ch = r
}

func (l *lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

func (l *lexer) currentOffset() int {
	return l.offset - l.width
}

func (l *lexer) position() Position {
	return Position{Line: l.line, Column: l.column}
}

func (l *lexer) NextToken() (Token, error) {
	l.skipWhitespaceAndComments()

	pos := l.position()

	switch {
	case l.ch == eof:
		return Token{Type: TokenEOF, Pos: pos}, nil
	case l.ch == '"':
		return l.readString(TokenString, pos)
	case l.ch == 'f' && l.peekRune() == '"':
		l.readRune()
		return l.readString(TokenFormString, pos)
	case l.ch == '\'':
		return l.readChar(pos)
	case isIdentifierStart(l.ch):
		literal := l.readIdentifier()
		return Token{Type: LookupIdent(literal), Literal: literal, Pos: pos}, nil
	case isDigit(l.ch):
		return l.readNumber(pos)
	default:
		return l.readOperator(pos)
	}
}

func (l *lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ', l.ch == '\t', l.ch == '\r', l.ch == '\n':
			l.readRune()
		case l.ch == '/' && l.peekRune() == '/':
			l.skipComment()
		default:
			return
		}
	}
}

func (l *lexer) skipComment() {
	for l.ch != eof && l.ch != '\n' {
		l.readRune()
	}
}

func (l *lexer) readIdentifier() string {
	start := l.currentOffset()
	for isIdentifierRune(l.ch) {
		l.readRune()
	}
	return l.input[start:l.currentOffset()]
}

// readNumber consumes the maximal run of digits and dots. One inner dot
// makes a float; a trailing dot or a second dot is malformed.
func (l *lexer) readNumber(pos Position) (Token, error) {
	start := l.currentOffset()
	dots := 0
	for isDigit(l.ch) || l.ch == '.' {
		if l.ch == '.' {
			dots++
		}
		l.readRune()
	}
	literal := l.input[start:l.currentOffset()]

	switch {
	case dots == 0:
		return Token{Type: TokenInt, Literal: literal, Pos: pos}, nil
	case dots == 1 && !strings.HasSuffix(literal, "."):
		return Token{Type: TokenFloat, Literal: literal, Pos: pos}, nil
	default:
		return Token{}, newLexError(pos, literal, "malformed number literal %q", literal)
	}
}

func (l *lexer) readString(tt TokenType, pos Position) (Token, error) {
	start := l.currentOffset()
	var sb strings.Builder

	for {
		l.readRune()
		switch l.ch {
		case eof, '\n':
			return Token{}, newLexError(pos, l.input[start:l.currentOffset()], "unterminated string literal")
		case '"':
			l.readRune()
			return Token{Type: tt, Literal: sb.String(), Pos: pos}, nil
		case '\\':
			r, err := l.readEscape(pos, start, "string")
			if err != nil {
				return Token{}, err
			}
			sb.WriteRune(r)
		default:
			sb.WriteRune(l.ch)
		}
	}
}

func (l *lexer) readChar(pos Position) (Token, error) {
	start := l.currentOffset()
	var runes []rune

	for {
		l.readRune()
		switch l.ch {
		case eof, '\n':
			return Token{}, newLexError(pos, l.input[start:l.currentOffset()], "unterminated char literal")
		case '\'':
			l.readRune()
			if len(runes) != 1 {
				raw := l.input[start:l.currentOffset()]
				return Token{}, newLexError(pos, raw, "char literal %s must contain exactly one character", raw)
			}
			return Token{Type: TokenChar, Literal: string(runes[0]), Pos: pos}, nil
		case '\\':
			r, err := l.readEscape(pos, start, "char")
			if err != nil {
				return Token{}, err
			}
			runes = append(runes, r)
		default:
			runes = append(runes, l.ch)
		}
	}
}

// readEscape decodes the escape whose backslash is the current rune and
// leaves the escaped rune current.
func (l *lexer) readEscape(litPos Position, litStart int, what string) (rune, error) {
	escPos := l.position()
	l.readRune()
	switch l.ch {
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case '0':
		return 0, nil
	case '\\', '"', '\'':
		return l.ch, nil
	case eof, '\n':
		return 0, newLexError(litPos, l.input[litStart:l.currentOffset()], "unterminated %s literal", what)
	default:
		seq := `\` + string(l.ch)
		return 0, newLexError(escPos, seq, "unknown escape sequence %s", seq)
	}
}

// readOperator applies maximal munch against the operator table.
func (l *lexer) readOperator(pos Position) (Token, error) {
	start := l.currentOffset()
	for n := maxOperatorLen; n > 0; n-- {
		end := start + n
		if end > len(l.input) {
			continue
		}
		if tt, ok := operators[l.input[start:end]]; ok {
			// operator spellings are ASCII, so n bytes are n runes
			for i := 0; i < n; i++ {
				l.readRune()
			}
			return Token{Type: tt, Literal: l.input[start:end], Pos: pos}, nil
		}
	}
	return Token{}, newLexError(pos, string(l.ch), "unexpected character %q", l.ch)
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r)
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
