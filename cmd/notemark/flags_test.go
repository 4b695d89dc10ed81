package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	flag "github.com/spf13/pflag"
)

func TestParseRenderFlags(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	f, args, err := parseRenderFlags([]string{
		"-f", "html", "--theme", "monokai", "-n", "0",
		"-o", "out", "-w", "2", "--watch",
		"--include", "*.md,*.txt", "--exclude", "drafts/**",
		"-c", "work", "-q", "notes",
	}, &stderr)
	if err != nil {
		t.Fatalf("parseRenderFlags() unexpected error: %v", err)
	}

	want := renderFlags{
		common: commonFlags{config: "work", quiet: true},
		style: styleFlags{
			format:   "html",
			theme:    "monokai",
			lines:    0,
			linesSet: true,
		},
		discovery: discoveryFlags{
			include: []string{"*.md", "*.txt"},
			exclude: []string{"drafts/**"},
		},
		output:  "out",
		workers: 2,
		watch:   true,
	}
	opts := cmp.AllowUnexported(renderFlags{}, commonFlags{}, styleFlags{}, discoveryFlags{})
	if diff := cmp.Diff(want, *f, opts); diff != "" {
		t.Errorf("parseRenderFlags() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"notes"}, args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestParseListFlags(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	f, args, err := parseListFlags([]string{"--width", "40", "--date-format", "iso", "a", "b"}, &stderr)
	if err != nil {
		t.Fatalf("parseListFlags() unexpected error: %v", err)
	}

	if f.style.linesSet {
		t.Error("linesSet = true, want false when --lines is absent")
	}
	if !f.style.widthSet || f.style.width != 40 {
		t.Errorf("width = %d (set %v), want 40 (set true)", f.style.width, f.style.widthSet)
	}
	if f.dateFormat != "iso" {
		t.Errorf("dateFormat = %q, want %q", f.dateFormat, "iso")
	}
	if diff := cmp.Diff([]string{"a", "b"}, args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		parse   func([]string) error
		args    []string
		wantErr error
	}{
		{
			name:    "render unknown flag",
			parse:   func(a []string) error { _, _, err := parseRenderFlags(a, &bytes.Buffer{}); return err },
			args:    []string{"--nope"},
			wantErr: ErrInvalidFlag,
		},
		{
			name:    "render non-numeric lines",
			parse:   func(a []string) error { _, _, err := parseRenderFlags(a, &bytes.Buffer{}); return err },
			args:    []string{"--lines", "two"},
			wantErr: ErrInvalidFlag,
		},
		{
			name:    "list watch is render only",
			parse:   func(a []string) error { _, _, err := parseListFlags(a, &bytes.Buffer{}); return err },
			args:    []string{"--watch"},
			wantErr: ErrInvalidFlag,
		},
		{
			name:    "help passes through",
			parse:   func(a []string) error { _, _, err := parseRenderFlags(a, &bytes.Buffer{}); return err },
			args:    []string{"--help"},
			wantErr: flag.ErrHelp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.parse(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
