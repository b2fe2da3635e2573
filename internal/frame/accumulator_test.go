package frame_test

import (
	"fmt"
	"strings"
	"testing"

	"bmscap/internal/frame"
)

func TestAccumulatorSplitsOnTerminator(t *testing.T) {
	var acc frame.Accumulator

	frames := acc.Push("a;b;c" + frame.Terminator + "d;e;f" + frame.Terminator + "g;h")
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0] != "a;b;c" || frames[1] != "d;e;f" {
		t.Fatalf("unexpected frame content: %q", frames)
	}
	if acc.Pending() != "g;h" {
		t.Fatalf("expected pending %q, got %q", "g;h", acc.Pending())
	}
}

func TestAccumulatorChunkBoundaryIndependence(t *testing.T) {
	text := "first;frame" + frame.Terminator + "second;frame" + frame.Terminator
	want := []string{"first;frame", "second;frame"}

	for split := 0; split <= len(text); split++ {
		var acc frame.Accumulator
		var frames []string
		frames = append(frames, acc.Push(text[:split])...)
		frames = append(frames, acc.Push(text[split:])...)

		if len(frames) != len(want) {
			t.Fatalf("split %d: expected %d frames, got %d", split, len(want), len(frames))
		}
		for i := range want {
			if frames[i] != want[i] {
				t.Fatalf("split %d: frame %d = %q, want %q", split, i, frames[i], want[i])
			}
		}
		if acc.Pending() != "" {
			t.Fatalf("split %d: unexpected pending %q", split, acc.Pending())
		}
	}
}

func TestAccumulatorYieldsOneFramePerTerminator(t *testing.T) {
	const count = 7
	var text strings.Builder
	for i := 0; i < count; i++ {
		fmt.Fprintf(&text, "frame;%d%s", i, frame.Terminator)
	}

	var acc frame.Accumulator
	frames := acc.Push(text.String())
	if len(frames) != count {
		t.Fatalf("expected %d frames, got %d", count, len(frames))
	}
}

func TestAccumulatorIgnoresEmbeddedLineBreaks(t *testing.T) {
	var acc frame.Accumulator

	// The terminator itself is split across a line break.
	frames := acc.Push("a;b\r\nc;d" + frame.Terminator[:3] + "\n" + frame.Terminator[3:])
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	if frames[0] != "a;bc;d" {
		t.Fatalf("unexpected frame content %q", frames[0])
	}
}

func TestAccumulatorDiscardsIncompleteTrailingText(t *testing.T) {
	var acc frame.Accumulator

	frames := acc.Push("a;b;c")
	if len(frames) != 0 {
		t.Fatalf("expected no frames, got %d", len(frames))
	}
	if acc.Pending() != "a;b;c" {
		t.Fatalf("expected pending text to remain buffered, got %q", acc.Pending())
	}
}

func TestAccumulatorSkipsEmptyFrames(t *testing.T) {
	var acc frame.Accumulator

	frames := acc.Push(frame.Terminator + "  \n " + frame.Terminator + "a;b" + frame.Terminator)
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	if frames[0] != "a;b" {
		t.Fatalf("unexpected frame content %q", frames[0])
	}
}
