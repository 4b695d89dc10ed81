package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "with user config path",
			paths:    []string{"./journal.yaml", "~/.config/go-notemark/journal.yaml"},
			contains: "or create ~/.config/go-notemark/journal.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)

			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForThemeNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		available []string
		wantEmpty bool
		contains  string
	}{
		{
			name:      "empty available",
			available: []string{},
			wantEmpty: true,
		},
		{
			name:      "with themes",
			available: []string{"dracula", "github"},
			contains:  "available: dracula, github",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForThemeNotFound(tt.available)

			if tt.wantEmpty && hint != "" {
				t.Errorf("expected empty hint, got %q", hint)
			}
			if !tt.wantEmpty && !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForFormat(t *testing.T) {
	t.Parallel()

	if got := ForFormat(nil); got != "" {
		t.Errorf("ForFormat(nil) = %q, want empty", got)
	}

	hint := ForFormat([]string{"text", "html"})
	if !strings.Contains(hint, "use one of: text, html") {
		t.Errorf("ForFormat() = %q, want format list", hint)
	}
}

func TestForWorkers(t *testing.T) {
	t.Parallel()

	hint := ForWorkers(8)
	if !strings.Contains(hint, "between 1 and 8") {
		t.Errorf("ForWorkers(8) = %q, want range mention", hint)
	}
}

func TestForNoInput(t *testing.T) {
	t.Parallel()

	hint := ForNoInput()
	if !strings.Contains(hint, "input.defaultDir") {
		t.Errorf("ForNoInput() = %q, want config key mention", hint)
	}
	if strings.Count(hint, "hint:") != 1 {
		t.Errorf("ForNoInput() = %q, want hints joined on one line", hint)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	// All hints should start with newline, spaces, and "hint:"
	hints := []string{
		ForConfigNotFound(nil),
		ForOutputDirectory(),
		ForFormat([]string{"text"}),
		ForWorkers(4),
		ForNoInput(),
		ForWatch(),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}
