package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	notemark "github.com/alnah/go-notemark"
)

func TestWatchNote(t *testing.T) {
	t.Parallel()

	dir := setupNotes(t, map[string]string{"day.md": "first **draft**"})
	path := filepath.Join(dir, "day.md")

	eng, err := notemark.NewEngine()
	if err != nil {
		t.Fatal(err)
	}

	env, stdout, stderr := newTestEnv()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchNote(ctx, eng, NoteFile{InputPath: path, Name: "day.md"}, env)
	}()

	waitFor(t, stdout, "first draft")

	if err := os.WriteFile(path, []byte("second *pass*"), 0o600); err != nil {
		t.Fatal(err)
	}
	waitFor(t, stdout, "second pass")

	if !strings.Contains(stderr.String(), "Updated day.md") {
		t.Errorf("stderr = %q, want update notice", stderr.String())
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchNote() error = %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchNote() did not return after cancel")
	}
}

// waitFor polls buf until it contains want or the deadline passes.
func waitFor(t *testing.T, buf *syncBuffer, want string) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), want) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q, got %q", want, buf.String())
}
