package main

import (
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantOK     bool
		wantStdout string
		wantStderr string
	}{
		{"no args", nil, true, "Usage: notemark <command>", ""},
		{"render", []string{"render"}, true, "--watch", ""},
		{"list", []string{"list"}, true, "--date-format", ""},
		{"completion", []string{"completion"}, true, "Supported shells:", ""},
		{"version", []string{"version"}, true, "Usage: notemark version", ""},
		{"help", []string{"help"}, true, "Usage: notemark help [command]", ""},
		{"unknown", []string{"export"}, false, "", "Unknown command: export"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			if ok := runHelp(tt.args, env); ok != tt.wantOK {
				t.Errorf("runHelp() = %v, want %v", ok, tt.wantOK)
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want substring %q", stdout.String(), tt.wantStdout)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want substring %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestNotifyContext_StopCancels(t *testing.T) {
	t.Parallel()

	ctx, stop := notifyContext(t.Context())
	select {
	case <-ctx.Done():
		t.Fatal("context should not be canceled initially")
	default:
	}

	stop()
	select {
	case <-ctx.Done():
	default:
		t.Error("stop() should cancel the context")
	}
}
