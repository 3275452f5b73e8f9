package nook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Config controls how the engine locates sources and where it logs.
type Config struct {
	// Logger receives progress output. Nil discards it.
	Logger *Logger
	// EntryFile is used when a project has no manifest. Defaults to
	// DefaultEntryFile.
	EntryFile string
}

// Engine runs the front-end pipeline: read, scan, parse.
type Engine struct {
	config Config
	log    *Logger
}

func NewEngine(cfg Config) *Engine {
	if cfg.EntryFile == "" {
		cfg.EntryFile = DefaultEntryFile
	}
	return &Engine{config: cfg, log: cfg.Logger}
}

// Program is the result of a parse. Statements holds only the statements
// that parsed; Diagnostics lists the syntax errors in discovery order.
type Program struct {
	Path        string
	Source      string
	Tokens      []Token
	Statements  []Stmt
	Diagnostics []*Error
}

func (p *Program) HasErrors() bool {
	return len(p.Diagnostics) > 0
}

// Parse scans and parses source. Lexical errors abort and are returned;
// syntax errors are recovered and recorded on the program.
func (e *Engine) Parse(source string) (*Program, error) {
	tokens, err := Scan(source)
	if err != nil {
		return nil, err
	}
	e.log.Debugf("scanned %d tokens", len(tokens))

	stmts, diagnostics := Parse(tokens)
	e.log.Debugf("parsed %d statements with %d syntax errors", len(stmts), len(diagnostics))

	return &Program{
		Source:      source,
		Tokens:      tokens,
		Statements:  stmts,
		Diagnostics: diagnostics,
	}, nil
}

// ParseFile reads path fully and parses it.
func (e *Engine) ParseFile(path string) (*Program, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: ErrorIO, Path: filepath.Base(path), Err: err}
	}
	e.log.Debugf("read %s (%d bytes)", path, len(content))

	program, err := e.Parse(string(content))
	if err != nil {
		return nil, err
	}
	program.Path = path
	return program, nil
}

// ResolveEntry returns the entry source path of the project in dir. The
// manifest's entry wins; without a manifest the configured entry file is
// used.
func (e *Engine) ResolveEntry(dir string) (string, error) {
	manifest, err := LoadManifest(dir)
	switch {
	case err == nil:
		e.log.Debugf("loaded manifest for %s %s", manifest.Name, manifest.Version)
		return filepath.Join(dir, manifest.EntryFile()), nil
	case errors.Is(err, fs.ErrNotExist):
		return filepath.Join(dir, e.config.EntryFile), nil
	default:
		return "", err
	}
}

func (e *Engine) ParseProject(dir string) (*Program, error) {
	entry, err := e.ResolveEntry(dir)
	if err != nil {
		return nil, err
	}
	return e.ParseFile(entry)
}

// Build validates the project in dir. There is no code generator yet, so
// a clean parse is the whole build.
func (e *Engine) Build(dir string) (*Program, error) {
	program, err := e.ParseProject(dir)
	if err != nil {
		return nil, err
	}
	if program.HasErrors() {
		return program, &Error{
			Kind:    ErrorSyntax,
			Message: fmt.Sprintf("%d syntax error(s) in %s", len(program.Diagnostics), program.Path),
		}
	}
	e.log.Debugf("compile %s: code generation is not implemented yet", dir)
	return program, nil
}
