package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"bmscap/internal/logging"
)

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	log := logging.NewComponentLogger(logger, "capture")
	log.Info("wrote CSV", logging.Int("frames", 12), logging.String("path", "/tmp/out csv"))

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, " INFO capture: wrote CSV") {
		t.Fatalf("unexpected line %q", line)
	}
	if !strings.Contains(line, "frames=12") {
		t.Fatalf("missing integer attribute in %q", line)
	}
	// Values containing spaces are quoted.
	if !strings.Contains(line, `path="/tmp/out csv"`) {
		t.Fatalf("missing quoted attribute in %q", line)
	}
}

func TestConsoleLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("skipping malformed frame",
		logging.Int(logging.FieldFrame, 7),
		logging.Error(errors.New("section Vcell: expected 14 tokens, observed 13")),
	)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["level"] != "warn" {
		t.Fatalf("level = %v", record["level"])
	}
	if record["msg"] != "skipping malformed frame" {
		t.Fatalf("msg = %v", record["msg"])
	}
	if record["frame"] != float64(7) {
		t.Fatalf("frame = %v", record["frame"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatal("missing ts key")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	log := logging.NewNop()
	log.Error("dropped", logging.String("k", "v"))
}
