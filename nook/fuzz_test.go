package nook

import (
	"io"
	"testing"
)

func FuzzScanAndParseDoNotPanic(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("var x = 1;"))
	f.Add([]byte("var = 1; print 2;"))
	f.Add([]byte("print (1 + ;"))
	f.Add([]byte("a.b = f(1, 'c', \"s\\n\") || !x;"))
	f.Add([]byte("1.2.3"))
	f.Add([]byte("f\"{x}\" <<= >>= -> :: // tail"))

	f.Fuzz(func(t *testing.T, raw []byte) {
		tokens, err := Scan(string(raw))
		if err != nil {
			if tokens != nil {
				t.Fatalf("lexical failure must not return tokens")
			}
			if kind, ok := KindOf(err); !ok || kind != ErrorLexical {
				t.Fatalf("expected lexical error, got %v", err)
			}
			return
		}
		if len(tokens) == 0 || tokens[len(tokens)-1].Type != TokenEOF {
			t.Fatalf("token stream must end in EOF")
		}

		stmts, diagnostics := Parse(tokens)
		for _, d := range diagnostics {
			if d.Kind != ErrorSyntax {
				t.Fatalf("expected syntax diagnostics only, got %v", d.Kind)
			}
		}
		for _, stmt := range stmts {
			_ = stmt.String()
		}
		if err := PrintTree(io.Discard, stmts); err != nil {
			t.Fatalf("print tree: %v", err)
		}
	})
}
