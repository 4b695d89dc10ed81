package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"render", true},
		{"list", true},
		{"completion", true},
		{"version", true},
		{"help", true},
		{"convert", false},
		{"", false},
		{"note.md", false},
		{"Render", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := isCommand(tt.input); got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"render", "-v", "note.md"}, true},
		{[]string{"list", "--verbose"}, true},
		{[]string{"render", "--version-file"}, false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestRunMain(t *testing.T) {
	t.Parallel()

	dir := setupNotes(t, map[string]string{
		"day.md": "Walked to the **lake**.",
	})
	note := filepath.Join(dir, "day.md")

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage and exits with ExitUsage",
			args:         []string{"notemark"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: notemark"},
		},
		{
			name:         "version command exits 0",
			args:         []string{"notemark", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"notemark dev"},
		},
		{
			name:         "help command exits 0",
			args:         []string{"notemark", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: notemark", "Commands:"},
		},
		{
			name:         "--help is an alias of help",
			args:         []string{"notemark", "--help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Commands:"},
		},
		{
			name:         "help render shows render help",
			args:         []string{"notemark", "help", "render"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: notemark render", "--watch"},
		},
		{
			name:         "help list shows list help",
			args:         []string{"notemark", "help", "list"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: notemark list", "--date-format"},
		},
		{
			name:         "help for unknown command exits with ExitUsage",
			args:         []string{"notemark", "help", "nope"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Unknown command: nope"},
		},
		{
			name:         "unknown command exits with ExitUsage",
			args:         []string{"notemark", "unknown"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: unknown"},
		},
		{
			name:         "render -h prints render usage",
			args:         []string{"notemark", "render", "-h"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Usage: notemark render"},
		},
		{
			name:         "render to stdout",
			args:         []string{"notemark", "render", note},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Walked to the lake."},
		},
		{
			name:         "render html to stdout",
			args:         []string{"notemark", "render", "-f", "html", note},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"<strong>lake</strong>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			code := runMain(context.Background(), tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}

func TestRunMain_ExitCodes(t *testing.T) {
	t.Parallel()

	dir := setupNotes(t, map[string]string{
		"day.md":    "hello",
		"notes.pdf": "binary",
	})

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		// ExitSuccess (0)
		{"version returns ExitSuccess", []string{"notemark", "version"}, ExitSuccess},
		{"list returns ExitSuccess", []string{"notemark", "list", dir}, ExitSuccess},

		// ExitUsage (2)
		{"unknown flag", []string{"notemark", "render", "--bogus", dir}, ExitUsage},
		{"unknown format", []string{"notemark", "render", "-f", "pdf", dir}, ExitUsage},
		{"unknown theme", []string{"notemark", "render", "-t", "no-such-theme", dir}, ExitUsage},
		{"negative lines", []string{"notemark", "render", "-n", "-1", dir}, ExitUsage},
		{"too many workers", []string{"notemark", "render", "-w", "99", dir}, ExitUsage},
		{"invalid include", []string{"notemark", "render", "--include", "[", dir}, ExitUsage},
		{"excluded explicit file", []string{"notemark", "render", filepath.Join(dir, "notes.pdf")}, ExitUsage},
		{"missing config", []string{"notemark", "render", "-c", "./missing.yaml", dir}, ExitUsage},
		{"list html", []string{"notemark", "list", "-f", "html", dir}, ExitUsage},
		{"unsupported shell", []string{"notemark", "completion", "tcsh"}, ExitUsage},
		{"watch directory", []string{"notemark", "render", "--watch", dir}, ExitUsage},

		// ExitIO (3)
		{"nonexistent file", []string{"notemark", "render", filepath.Join(dir, "missing.md")}, ExitIO},
		{"empty directory", []string{"notemark", "render", t.TempDir()}, ExitIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := newTestEnv()
			code := runMain(context.Background(), tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
		})
	}
}
