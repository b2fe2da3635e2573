package capture_test

import (
	"errors"
	"testing"
	"time"

	"bmscap/internal/capture"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		text string
		want time.Duration
	}{
		{"20s", 20 * time.Second},
		{"5m", 5 * time.Minute},
		{"4h", 4 * time.Hour},
		{"30", 30 * time.Second},
		{"1.5m", 90 * time.Second},
		{" 10 s ", 10 * time.Second},
		{"2H", 2 * time.Hour},
	}

	for _, tc := range tests {
		got, err := capture.ParseDuration(tc.text)
		if err != nil {
			t.Fatalf("ParseDuration(%q) returned error: %v", tc.text, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDuration(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestParseDurationRejectsBadInput(t *testing.T) {
	for _, text := range []string{"", "abc", "-5s", "5d", "10 minutes", "s"} {
		_, err := capture.ParseDuration(text)
		if !errors.Is(err, capture.ErrConfiguration) {
			t.Fatalf("ParseDuration(%q) = %v, want ErrConfiguration", text, err)
		}
	}
}
