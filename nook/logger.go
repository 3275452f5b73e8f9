package nook

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoColor  = lipgloss.Color("#10B981")
	debugColor = lipgloss.Color("#3B82F6")
	errorColor = lipgloss.Color("#EF4444")
)

// Logger is the diagnostics sink handed to the engine and the CLI. Each
// writer gets its own lipgloss renderer, so colour is only emitted when
// that writer is a terminal. A nil *Logger discards everything.
type Logger struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool

	infoStyle  lipgloss.Style
	debugStyle lipgloss.Style
	errorStyle lipgloss.Style
}

func NewLogger(out, errOut io.Writer, verbose bool) *Logger {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	outRenderer := lipgloss.NewRenderer(out)
	errRenderer := lipgloss.NewRenderer(errOut)
	return &Logger{
		out:        out,
		errOut:     errOut,
		verbose:    verbose,
		infoStyle:  outRenderer.NewStyle().Foreground(infoColor),
		debugStyle: outRenderer.NewStyle().Foreground(debugColor),
		errorStyle: errRenderer.NewStyle().Foreground(errorColor),
	}
}

func (l *Logger) Verbose() bool {
	return l != nil && l.verbose
}

// Infof writes to the output stream.
func (l *Logger) Infof(format string, args ...any) {
	if l == nil {
		return
	}
	l.emit(l.out, l.infoStyle, fmt.Sprintf(format, args...))
}

// Debugf writes to the output stream in verbose mode only.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.Verbose() {
		return
	}
	l.emit(l.out, l.debugStyle, fmt.Sprintf(format, args...))
}

// Errorf writes to the error stream.
func (l *Logger) Errorf(format string, args ...any) {
	if l == nil {
		return
	}
	l.emit(l.errOut, l.errorStyle, fmt.Sprintf(format, args...))
}

// emit styles line by line; lipgloss pads multi-line blocks to a common
// width otherwise.
func (l *Logger) emit(w io.Writer, style lipgloss.Style, msg string) {
	lines := strings.Split(strings.TrimRight(msg, "\n"), "\n")
	for _, line := range lines {
		fmt.Fprintln(w, style.Render(line))
	}
}
