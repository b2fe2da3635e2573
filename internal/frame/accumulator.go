package frame

import "strings"

var newlineStripper = strings.NewReplacer("\r", "", "\n", "")

// Accumulator reassembles complete frames from arbitrarily chunked text.
// Chunks may split tokens or even the terminator itself; the accumulator
// buffers input until a terminator completes a frame. Line breaks are
// removed before scanning so a terminator split across lines is still
// recognized.
//
// The zero value is ready to use. An Accumulator performs no validation.
type Accumulator struct {
	pending string
}

// Push appends a chunk of raw input and returns every frame it completed,
// in arrival order. Text after the last terminator stays buffered for the
// next chunk.
func (a *Accumulator) Push(chunk string) []string {
	a.pending += newlineStripper.Replace(chunk)

	var frames []string
	for {
		idx := strings.Index(a.pending, Terminator)
		if idx < 0 {
			return frames
		}
		raw := strings.TrimSpace(a.pending[:idx])
		a.pending = a.pending[idx+len(Terminator):]
		if raw != "" {
			frames = append(frames, raw)
		}
	}
}

// Pending returns buffered text not yet closed by a terminator. At end of
// input a non-empty remainder is an incomplete frame and must be discarded,
// never emitted.
func (a *Accumulator) Pending() string {
	return strings.TrimSpace(a.pending)
}
