package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRunList(t *testing.T) {
	t.Parallel()

	dir := setupNotes(t, map[string]string{
		"2026/03/14.md": "Walked to the **lake** and back.\nSaw a _heron_.\n\nCooked dinner.",
		"2026/03/15.md": "Rain all day.",
	})
	modTime := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	for _, name := range []string{"14.md", "15.md"} {
		path := filepath.Join(dir, "2026", "03", name)
		if err := os.Chtimes(path, modTime, modTime); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "default summary",
			args: []string{dir},
			want: "2026/03/14.md  2026-03-14\n" +
				"  Walked to the lake and back.\n" +
				"  Saw a heron." + "…" + "\n" +
				"2026/03/15.md  2026-03-14\n" +
				"  Rain all day.\n",
		},
		{
			name: "one line with wrap and long date",
			args: []string{"-n", "1", "--width", "10", "--date-format", "long", dir},
			want: "2026/03/14.md  March 14, 2026\n" +
				"  Walked to…\n" +
				"2026/03/15.md  March 14, 2026\n" +
				"  Rain all …\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			if err := runList(context.Background(), tt.args, env); err != nil {
				t.Fatalf("runList() unexpected error: %v\nstderr: %s", err, stderr.String())
			}
			if stdout.String() != tt.want {
				t.Errorf("stdout =\n%s\nwant\n%s", stdout.String(), tt.want)
			}
		})
	}
}

func TestRunList_FrontMatter(t *testing.T) {
	t.Parallel()

	dir := setupNotes(t, map[string]string{
		"lake.md": "---\ntitle: Lake day\ndate: 2026-03-10\n---\nWalked to the **lake**.",
	})

	env, stdout, _ := newTestEnv()
	if err := runList(context.Background(), []string{dir}, env); err != nil {
		t.Fatalf("runList() unexpected error: %v", err)
	}
	want := "Lake day  2026-03-10\n  Walked to the lake.\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunList_ANSI(t *testing.T) {
	t.Parallel()

	dir := setupNotes(t, map[string]string{"day.md": "A **bold** start."})

	env, stdout, _ := newTestEnv()
	if err := runList(context.Background(), []string{"-f", "ansi", dir}, env); err != nil {
		t.Fatalf("runList() unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "\x1b[1m") {
		t.Errorf("stdout = %q, want SGR bold", stdout.String())
	}
}

func TestRunList_Errors(t *testing.T) {
	t.Parallel()

	dir := setupNotes(t, map[string]string{"day.md": "x"})

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"structured format", []string{"-f", "yaml", dir}, ErrListFormat},
		{"no notes", []string{t.TempDir()}, ErrNoNotes},
		{"bad workers", []string{"-w", "-2", dir}, ErrInvalidWorkerCount},
		{"bad flag", []string{"--lines", "many", dir}, ErrInvalidFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := newTestEnv()
			if err := runList(context.Background(), tt.args, env); !errors.Is(err, tt.wantErr) {
				t.Errorf("runList() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
