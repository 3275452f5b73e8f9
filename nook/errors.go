package nook

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrorKind identifies the front-end phase that produced an error.
type ErrorKind int

const (
	// ErrorIO means the source could not be read.
	ErrorIO ErrorKind = iota
	// ErrorLexical means the lexer rejected the source. Fatal.
	ErrorLexical
	// ErrorSyntax means the parser rejected a statement. Recoverable.
	ErrorSyntax
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorIO:
		return "io"
	case ErrorLexical:
		return "lexical"
	case ErrorSyntax:
		return "syntax"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) phase() string {
	switch k {
	case ErrorIO:
		return "Error reading"
	case ErrorLexical:
		return "Error scanning source code"
	default:
		return "Error parsing tokens"
	}
}

// Error is the structured error produced by every front-end phase.
type Error struct {
	Kind     ErrorKind
	Message  string
	Fragment string // offending source text, when known
	Pos      Position
	Path     string // file involved in an I/O error
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.phase())
	if e.Kind == ErrorIO && e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Pos.Line > 0 {
		fmt.Fprintf(&b, " at %d:%d", e.Pos.Line, e.Pos.Column)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Err != nil {
		if e.Message != "" {
			b.WriteString(": ")
		}
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Frame renders the code frame for the error position within source.
func (e *Error) Frame(source string) string {
	return formatCodeFrameSpan(source, e.Pos, utf8.RuneCountInString(e.Fragment))
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var nerr *Error
	if errors.As(err, &nerr) {
		return nerr.Kind, true
	}
	return 0, false
}

func newLexError(pos Position, fragment, format string, args ...any) *Error {
	return &Error{Kind: ErrorLexical, Message: fmt.Sprintf(format, args...), Fragment: fragment, Pos: pos}
}
