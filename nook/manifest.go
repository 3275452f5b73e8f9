package nook

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	ManifestFile     = "nook.manifest"
	DefaultEntryFile = "main.nk"
)

// Manifest describes a Nook project. It lives in ManifestFile at the
// project root.
type Manifest struct {
	Name        string   `toml:"name"`
	Version     string   `toml:"version"`
	Authors     []string `toml:"authors"`
	Description string   `toml:"description"`
	BuildTarget string   `toml:"build_target"`
	Entry       string   `toml:"entry,omitempty"`
}

func NewManifest(name string) Manifest {
	return Manifest{
		Name:        name,
		Version:     "0.1.0",
		Authors:     []string{""},
		Description: "A Nook project",
		BuildTarget: name,
	}
}

// EntryFile returns the source file parsing starts from.
func (m Manifest) EntryFile() string {
	if m.Entry != "" {
		return m.Entry
	}
	return DefaultEntryFile
}

func (m Manifest) validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("manifest name is required")
	}
	if filepath.IsAbs(m.Entry) {
		return fmt.Errorf("manifest entry %q must be relative to the project", m.Entry)
	}
	return nil
}

const starterSource = `// Entry point of the project.
var greeting = "Hello, world!";
print greeting;
`

// CreateProject writes a fresh manifest for name into dir, plus a starter
// entry file when none exists. An existing manifest is never overwritten.
func CreateProject(dir, name string) (string, error) {
	m := NewManifest(name)
	if err := m.validate(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return "", fmt.Errorf("serialize manifest: %w", err)
	}

	path := filepath.Join(dir, ManifestFile)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("manifest %s already exists", path)
		}
		return "", fmt.Errorf("write manifest file: %w", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return "", fmt.Errorf("write manifest file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write manifest file: %w", err)
	}

	entry := filepath.Join(dir, m.EntryFile())
	if _, err := os.Stat(entry); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(entry, []byte(starterSource), 0o644); err != nil {
			return "", fmt.Errorf("write entry file: %w", err)
		}
	}
	return path, nil
}

// LoadManifest reads and validates the manifest in dir. A missing file is
// reported with an error wrapping fs.ErrNotExist.
func LoadManifest(dir string) (Manifest, error) {
	var m Manifest
	path := filepath.Join(dir, ManifestFile)
	content, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read manifest file: %w", err)
	}
	md, err := toml.Decode(string(content), &m)
	if err != nil {
		return m, fmt.Errorf("deserialize manifest: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return m, fmt.Errorf("deserialize manifest: unknown key %q", undecoded[0].String())
	}
	if err := m.validate(); err != nil {
		return m, err
	}
	return m, nil
}
