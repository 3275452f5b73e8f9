package nook

import (
	"strings"
	"testing"
)

func benchmarkSource() string {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		b.WriteString("var total = (a + b) * 2.5 - f(x, \"label\\n\").field;\n")
		b.WriteString("print total >= limit || !done && 'c' == c;\n")
		b.WriteString("// trailing comment\n")
	}
	return b.String()
}

func BenchmarkScan(b *testing.B) {
	source := benchmarkSource()
	b.ReportAllocs()
	b.SetBytes(int64(len(source)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Scan(source); err != nil {
			b.Fatalf("scan failed: %v", err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	tokens, err := Scan(benchmarkSource())
	if err != nil {
		b.Fatalf("scan failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, diagnostics := Parse(tokens); len(diagnostics) != 0 {
			b.Fatalf("parse failed: %v", diagnostics)
		}
	}
}
