package csvout

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"bmscap/internal/schema"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Writer emits the schema header once, then one row per accepted frame.
// Any write failure is fatal to the run, so every error it returns must
// abort processing.
type Writer struct {
	path   string
	file   *os.File
	csv    *csv.Writer
	schema schema.Schema
	rows   int
}

// Create opens the output file, writes the byte order mark, and emits the
// header row.
func Create(path string, s schema.Schema) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory %q: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	if _, err := file.Write(utf8BOM); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("write byte order mark: %w", err)
	}

	w := &Writer{path: path, file: file, csv: csv.NewWriter(file), schema: s}
	if err := w.write(s.Columns()); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	return w, nil
}

// WriteRow appends one frame row. The row must match the schema's column
// count exactly; the frame layout guarantees it, so a mismatch indicates an
// internal consistency bug rather than bad input.
func (w *Writer) WriteRow(row []string) error {
	if len(row) != w.schema.Len() {
		return fmt.Errorf("row has %d values, schema has %d columns", len(row), w.schema.Len())
	}
	if err := w.write(row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	w.rows++
	return nil
}

// write flushes per record: the emitter retains nothing, and a short write
// surfaces on the row that caused it instead of at close.
func (w *Writer) write(record []string) error {
	if err := w.csv.Write(record); err != nil {
		return err
	}
	w.csv.Flush()
	return w.csv.Error()
}

// Rows returns the number of data rows written so far, header excluded.
func (w *Writer) Rows() int {
	return w.rows
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

// Close flushes buffered output and closes the file.
func (w *Writer) Close() error {
	w.csv.Flush()
	flushErr := w.csv.Error()
	closeErr := w.file.Close()
	if flushErr != nil {
		return fmt.Errorf("flush output: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close output: %w", closeErr)
	}
	return nil
}
