package nook

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProjectFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestEngineParse(t *testing.T) {
	engine := NewEngine(Config{})
	program, err := engine.Parse("var x = 1; print x;")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if program.HasErrors() {
		t.Fatalf("unexpected diagnostics %v", program.Diagnostics)
	}
	if len(program.Statements) != 2 || len(program.Tokens) != 9 {
		t.Fatalf("unexpected program: %d statements, %d tokens", len(program.Statements), len(program.Tokens))
	}
}

func TestEngineParseKeepsSyntaxErrorsAsDiagnostics(t *testing.T) {
	engine := NewEngine(Config{})
	program, err := engine.Parse("var = 1; print 2;")
	if err != nil {
		t.Fatalf("syntax errors must not abort: %v", err)
	}
	if !program.HasErrors() || len(program.Statements) != 1 {
		t.Fatalf("unexpected program %+v", program)
	}
}

func TestEngineParseReturnsLexicalError(t *testing.T) {
	engine := NewEngine(Config{})
	program, err := engine.Parse("print 1.2.3;")
	if program != nil {
		t.Fatalf("expected no program on lexical failure")
	}
	if kind, ok := KindOf(err); !ok || kind != ErrorLexical {
		t.Fatalf("expected lexical error, got %v", err)
	}
}

func TestEngineParseFileMissing(t *testing.T) {
	engine := NewEngine(Config{})
	_, err := engine.ParseFile(filepath.Join(t.TempDir(), "absent.nk"))
	if kind, ok := KindOf(err); !ok || kind != ErrorIO {
		t.Fatalf("expected io error, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped fs.ErrNotExist, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Error reading absent.nk: ") {
		t.Fatalf("unexpected error text %q", err.Error())
	}
}

func TestEngineResolveEntry(t *testing.T) {
	t.Run("without manifest", func(t *testing.T) {
		dir := t.TempDir()
		engine := NewEngine(Config{})
		entry, err := engine.ResolveEntry(dir)
		if err != nil {
			t.Fatalf("resolve entry: %v", err)
		}
		if entry != filepath.Join(dir, DefaultEntryFile) {
			t.Fatalf("unexpected entry %s", entry)
		}
	})

	t.Run("configured entry", func(t *testing.T) {
		dir := t.TempDir()
		engine := NewEngine(Config{EntryFile: "app.nk"})
		entry, err := engine.ResolveEntry(dir)
		if err != nil {
			t.Fatalf("resolve entry: %v", err)
		}
		if entry != filepath.Join(dir, "app.nk") {
			t.Fatalf("unexpected entry %s", entry)
		}
	})

	t.Run("manifest entry wins", func(t *testing.T) {
		dir := t.TempDir()
		writeProjectFile(t, dir, ManifestFile, "name = \"demo\"\nentry = \"src/main.nk\"\n")
		engine := NewEngine(Config{EntryFile: "app.nk"})
		entry, err := engine.ResolveEntry(dir)
		if err != nil {
			t.Fatalf("resolve entry: %v", err)
		}
		if entry != filepath.Join(dir, "src", "main.nk") {
			t.Fatalf("unexpected entry %s", entry)
		}
	})

	t.Run("broken manifest", func(t *testing.T) {
		dir := t.TempDir()
		writeProjectFile(t, dir, ManifestFile, "version = \"1\"\n")
		if _, err := NewEngine(Config{}).ResolveEntry(dir); err == nil {
			t.Fatalf("expected manifest validation error")
		}
	})
}

func TestEngineParseProject(t *testing.T) {
	dir := t.TempDir()
	if _, err := CreateProject(dir, "demo"); err != nil {
		t.Fatalf("create project: %v", err)
	}
	program, err := NewEngine(Config{}).ParseProject(dir)
	if err != nil {
		t.Fatalf("parse project: %v", err)
	}
	if program.Path != filepath.Join(dir, DefaultEntryFile) {
		t.Fatalf("unexpected program path %s", program.Path)
	}
	if program.HasErrors() || len(program.Statements) == 0 {
		t.Fatalf("starter project should parse cleanly: %v", program.Diagnostics)
	}
}

func TestEngineBuild(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, DefaultEntryFile, "var x = 1;\nprint x;\n")

	var out bytes.Buffer
	engine := NewEngine(Config{Logger: NewLogger(&out, nil, true)})
	program, err := engine.Build(dir)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(program.Statements) != 2 {
		t.Fatalf("unexpected statements %v", program.Statements)
	}
	if !strings.Contains(out.String(), "code generation is not implemented") {
		t.Fatalf("expected backend notice in verbose log, got %q", out.String())
	}
}

func TestEngineBuildFailsOnSyntaxErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeProjectFile(t, dir, DefaultEntryFile, "print ;\nvar = 2;\n")

	program, err := NewEngine(Config{}).Build(dir)
	if kind, ok := KindOf(err); !ok || kind != ErrorSyntax {
		t.Fatalf("expected syntax error, got %v", err)
	}
	if program == nil || len(program.Diagnostics) != 2 {
		t.Fatalf("expected the program with 2 diagnostics, got %+v", program)
	}
	if !strings.Contains(err.Error(), "2 syntax error(s) in "+path) {
		t.Fatalf("unexpected error text %q", err.Error())
	}
}
