package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	notemark "github.com/alnah/go-notemark"
	"github.com/alnah/go-notemark/internal/config"
)

// fixedNow is the clock used by test environments.
var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// newTestEnv returns an environment writing to buffers.
func newTestEnv() (*Environment, *syncBuffer, *syncBuffer) {
	stdout, stderr := &syncBuffer{}, &syncBuffer{}
	return &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: stdout,
		Stderr: stderr,
		Config: config.DefaultConfig(),
	}, stdout, stderr
}

// syncBuffer is a bytes.Buffer safe for concurrent writers and readers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// setupNotes creates a temp directory with the given file structure.
// Files map slash-separated paths to content. Returns the directory path.
func setupNotes(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for path, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return dir
}

// mockPreviewer records inputs and returns canned results.
type mockPreviewer struct {
	mu     sync.Mutex
	inputs []notemark.Input
	err    error
	delay  time.Duration
}

func (m *mockPreviewer) Preview(ctx context.Context, input notemark.Input) (*notemark.Result, error) {
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return &notemark.Result{Output: []byte("<" + input.Text + ">")}, nil
}

func (m *mockPreviewer) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inputs)
}
