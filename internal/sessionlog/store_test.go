package sessionlog_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"bmscap/internal/sessionlog"
)

func openStore(t *testing.T) *sessionlog.Store {
	t.Helper()
	store, err := sessionlog.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBeginFinishListRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	id, err := store.Begin(ctx, "capture", "/dev/ttyUSB0", "/tmp/out.csv")
	if err != nil {
		t.Fatalf("Begin returned error: %v", err)
	}
	if id == "" {
		t.Fatal("Begin returned an empty session id")
	}

	sessions, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	got := sessions[0]
	if got.ID != id || got.Mode != "capture" || got.Source != "/dev/ttyUSB0" || got.Output != "/tmp/out.csv" {
		t.Fatalf("unexpected session: %+v", got)
	}
	if got.Status != sessionlog.StatusRunning {
		t.Fatalf("status = %q, want running", got.Status)
	}
	if got.StartedAt.IsZero() {
		t.Fatal("started time not recorded")
	}
	if !got.FinishedAt.IsZero() {
		t.Fatal("finished time set while still running")
	}

	if err := store.Finish(ctx, id, 120, 3, sessionlog.StatusCompleted); err != nil {
		t.Fatalf("Finish returned error: %v", err)
	}

	sessions, err = store.List(ctx, 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	got = sessions[0]
	if got.Status != sessionlog.StatusCompleted {
		t.Fatalf("status = %q, want completed", got.Status)
	}
	if got.Accepted != 120 || got.Skipped != 3 {
		t.Fatalf("accepted=%d skipped=%d", got.Accepted, got.Skipped)
	}
	if got.FinishedAt.IsZero() {
		t.Fatal("finished time not recorded")
	}
}

func TestFinishUnknownSession(t *testing.T) {
	store := openStore(t)

	if err := store.Finish(context.Background(), "no-such-id", 0, 0, sessionlog.StatusFailed); err == nil {
		t.Fatal("expected error for unknown session id")
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	first, err := store.Begin(ctx, "convert", "a.log", "a.csv")
	if err != nil {
		t.Fatalf("Begin returned error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := store.Begin(ctx, "convert", "b.log", "b.csv")
	if err != nil {
		t.Fatalf("Begin returned error: %v", err)
	}

	sessions, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].ID != second || sessions[1].ID != first {
		t.Fatalf("unexpected order: %s then %s", sessions[0].ID, sessions[1].ID)
	}
}

func TestListHonorsLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.Begin(ctx, "convert", "in.log", "out.csv"); err != nil {
			t.Fatalf("Begin returned error: %v", err)
		}
	}

	sessions, err := store.List(ctx, 3)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")

	store, err := sessionlog.Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	id, err := store.Begin(context.Background(), "capture", "src", "out")
	if err != nil {
		t.Fatalf("Begin returned error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	// Reopening applies migrations again without clobbering existing rows.
	store, err = sessionlog.Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer store.Close()

	sessions, err := store.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != id {
		t.Fatalf("expected session %s to survive reopen, got %+v", id, sessions)
	}
}
