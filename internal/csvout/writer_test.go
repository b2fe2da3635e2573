package csvout_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"bmscap/internal/csvout"
	"bmscap/internal/frame"
	"bmscap/internal/schema"
)

func buildSchema(t *testing.T) schema.Schema {
	t.Helper()
	s, err := schema.Build(frame.FallbackFaultNames())
	if err != nil {
		t.Fatalf("build schema: %v", err)
	}
	return s
}

func makeRow(s schema.Schema, frameIndex int) []string {
	row := make([]string, s.Len())
	row[0] = strconv.Itoa(frameIndex)
	for i := 1; i < len(row); i++ {
		row[i] = "0"
	}
	return row
}

func TestCreateWritesByteOrderMarkAndHeader(t *testing.T) {
	s := buildSchema(t)
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := csvout.Create(path, s)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("output does not start with a UTF-8 byte order mark")
	}

	records, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only, got %d records", len(records))
	}
	if len(records[0]) != s.Len() {
		t.Fatalf("header has %d columns, want %d", len(records[0]), s.Len())
	}
	if records[0][0] != "frame_index" {
		t.Fatalf("first header column = %q", records[0][0])
	}
}

func TestWriteRowAppendsInOrder(t *testing.T) {
	s := buildSchema(t)
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := csvout.Create(path, s)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	for i := 1; i <= 3; i++ {
		if err := w.WriteRow(makeRow(s, i)); err != nil {
			t.Fatalf("WriteRow %d returned error: %v", i, err)
		}
	}
	if w.Rows() != 3 {
		t.Fatalf("Rows() = %d, want 3", w.Rows())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d records", len(records))
	}
	for i := 1; i <= 3; i++ {
		if records[i][0] != strconv.Itoa(i) {
			t.Fatalf("row %d frame index = %q", i, records[i][0])
		}
	}
}

func TestWriteRowRejectsShapeMismatch(t *testing.T) {
	s := buildSchema(t)
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := csvout.Create(path, s)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	defer w.Close()

	if err := w.WriteRow([]string{"1", "2", "3"}); err == nil {
		t.Fatal("expected error for row narrower than the schema")
	}
	if w.Rows() != 0 {
		t.Fatalf("Rows() = %d after rejected write, want 0", w.Rows())
	}
}

func TestCreateMakesParentDirectories(t *testing.T) {
	s := buildSchema(t)
	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.csv")

	w, err := csvout.Create(path, s)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}
