package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vvka-141/dbgrep/pkg/dbgrep"
)

func TestConsoleLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Error("failed to read %s: %s", "app.log", "permission denied")

	got := buf.String()
	want := "Error: failed to read app.log: permission denied\n"
	if got != want {
		t.Errorf("Error output = %q, want %q", got, want)
	}
}

func TestConsoleLogger_VerboseDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Verbose("scanning %s", "app.log")

	if buf.Len() != 0 {
		t.Errorf("expected no output with verbose disabled, got %q", buf.String())
	}
}

func TestConsoleLogger_VerboseEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, true)

	logger.Verbose("scanning %s", "app.log")

	got := buf.String()
	if !strings.HasPrefix(got, "[VERBOSE] ") {
		t.Errorf("expected [VERBOSE] prefix, got %q", got)
	}
	if !strings.Contains(got, "scanning app.log") {
		t.Errorf("expected message in output, got %q", got)
	}
}

func TestConsoleLogger_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	// A message containing format verbs must pass through untouched when no
	// args are supplied.
	logger.Info("100%% done (literal: %d)")

	got := buf.String()
	want := "100%% done (literal: %d)\n"
	if got != want {
		t.Errorf("Info output = %q, want %q", got, want)
	}
}

func TestLoggersImplementInterface(t *testing.T) {
	var _ dbgrep.Logger = NewConsoleLogger(false)
	var _ dbgrep.Logger = NewNullLogger()
}
