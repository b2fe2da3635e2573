// Package textinput decodes captured log files written in legacy character
// encodings into UTF-8 for the frame pipeline.
package textinput

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// NewReader wraps r with a decoder for the named character encoding. An
// empty name or any UTF-8 alias returns r unchanged. Encoding names are
// resolved through the IANA registry, so values like "latin1", "ISO-8859-1",
// or "shift_jis" all work.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	trimmed := strings.TrimSpace(name)
	switch strings.ToLower(trimmed) {
	case "", "utf-8", "utf8":
		return r, nil
	}

	enc, err := ianaindex.IANA.Encoding(trimmed)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown input encoding %q", name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
