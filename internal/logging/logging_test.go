package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, Options{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug("generated", "samples", 22050)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output %q is not json: %v", buf.String(), err)
	}
	if entry["msg"] != "generated" {
		t.Fatalf("msg = %v, want generated", entry["msg"])
	}
	if entry["samples"] != float64(22050) {
		t.Fatalf("samples = %v, want 22050", entry["samples"])
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, Options{Level: "warn", Format: "logfmt"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNewRejectsUnknown(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if _, err := New(&bytes.Buffer{}, Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
