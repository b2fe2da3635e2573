package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValidationError reports why one frame was rejected. Section always names
// the first section that failed; Expected and Observed carry token counts
// when the failure is a cardinality mismatch.
type ValidationError struct {
	Section  string
	Expected int
	Observed int
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("section %s: %s", e.Section, e.Reason)
	}
	return fmt.Sprintf("section %s: expected %d tokens, observed %d", e.Section, e.Expected, e.Observed)
}

// Tokenize splits raw frame text on the field delimiter, trimming each token
// and dropping empties. The firmware pads some delimiters with spaces, and a
// BOM can lead the first token of a captured log.
func Tokenize(raw string) []string {
	raw = strings.ReplaceAll(raw, "\ufeff", "")
	parts := strings.Split(raw, ";")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Parse validates one raw frame against the fixed section layout and returns
// its structured record. Validity is a pure function of the frame's tokens;
// the first label mismatch, cardinality mismatch, or malformed numeric token
// rejects the frame with a *ValidationError.
func Parse(raw string) (*Record, error) {
	tokens := Tokenize(raw)
	rec := &Record{}

	i := 0
	for si, sec := range layout {
		if i >= len(tokens) {
			return nil, &ValidationError{
				Section:  sec.name,
				Expected: sec.count,
				Reason:   fmt.Sprintf("frame ended before label %q", sec.label),
			}
		}
		if tokens[i] != sec.label {
			return nil, &ValidationError{
				Section:  sec.name,
				Expected: sec.count,
				Reason:   fmt.Sprintf("expected label %q at token %d, found %q", sec.label, i, tokens[i]),
			}
		}
		i++

		// A section's values run until the next section's label (or the end
		// of the frame for the last section), so both missing and surplus
		// tokens surface as a count mismatch on the right section. When the
		// next label never appears the window is capped at the expected
		// count, which lets the label check report the real problem.
		end := len(tokens)
		if si+1 < len(layout) {
			next := layout[si+1].label
			found := false
			for j := i; j < len(tokens); j++ {
				if tokens[j] == next {
					end = j
					found = true
					break
				}
			}
			if !found && i+sec.count < len(tokens) {
				end = i + sec.count
			}
		}

		values := tokens[i:end]
		if len(values) != sec.count {
			return nil, &ValidationError{Section: sec.name, Expected: sec.count, Observed: len(values)}
		}
		for vi, token := range values {
			if err := checkNumeric(token, sec.kind); err != nil {
				return nil, &ValidationError{
					Section:  sec.name,
					Expected: sec.count,
					Observed: len(values),
					Reason:   fmt.Sprintf("%s[%d]: %v", sec.name, vi+1, err),
				}
			}
		}

		rec.assign(sec.name, values)
		i = end
	}

	return rec, nil
}

// checkNumeric verifies a token parses as the section's numeric kind. The
// token text itself is preserved for output, so parsing is validation only.
// Integer sections accept float text with an integral value because the
// firmware assembles some counters through float formatting.
func checkNumeric(token string, kind valueKind) error {
	switch kind {
	case kindInt:
		if _, err := strconv.ParseInt(token, 10, 64); err == nil {
			return nil
		}
		f, err := strconv.ParseFloat(token, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return fmt.Errorf("not an integer: %q", token)
		}
		return nil
	default:
		if _, err := strconv.ParseFloat(token, 64); err != nil {
			return fmt.Errorf("not a number: %q", token)
		}
		return nil
	}
}
