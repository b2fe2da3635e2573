package capture_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bmscap/internal/capture"
)

func TestLockOutputExcludesSecondRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	lock, err := capture.LockOutput(path)
	if err != nil {
		t.Fatalf("LockOutput returned error: %v", err)
	}

	if _, err := capture.LockOutput(path); !errors.Is(err, capture.ErrOutput) {
		t.Fatalf("second lock = %v, want ErrOutput", err)
	}

	capture.ReleaseOutput(lock)
	if _, err := os.Stat(path + ".lock"); !os.IsNotExist(err) {
		t.Fatalf("lock file still present after release: %v", err)
	}

	lock, err = capture.LockOutput(path)
	if err != nil {
		t.Fatalf("relock after release returned error: %v", err)
	}
	capture.ReleaseOutput(lock)
}
