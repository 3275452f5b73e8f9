package nook

import (
	"bytes"
	"testing"
)

func TestLoggerRoutesByLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewLogger(&out, &errOut, false)

	log.Infof("parsed %d statements", 3)
	log.Debugf("hidden")
	log.Errorf("first\nsecond")

	if out.String() != "parsed 3 statements\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	if errOut.String() != "first\nsecond\n" {
		t.Fatalf("unexpected error output %q", errOut.String())
	}
}

func TestLoggerVerbose(t *testing.T) {
	var out bytes.Buffer
	log := NewLogger(&out, nil, true)
	if !log.Verbose() {
		t.Fatalf("expected verbose logger")
	}
	log.Debugf("scanned %d tokens", 9)
	if out.String() != "scanned 9 tokens\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	log.Errorf("dropped")
}

func TestNilLoggerDiscards(t *testing.T) {
	var log *Logger
	if log.Verbose() {
		t.Fatalf("nil logger is never verbose")
	}
	log.Infof("x")
	log.Debugf("x")
	log.Errorf("x")
}
