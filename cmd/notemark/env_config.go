package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-notemark/internal/config"
)

// envPrefix marks environment variables read by the CLI.
const envPrefix = "NOTEMARK_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // NOTEMARK_CONFIG: config file name or path
	Format     string // NOTEMARK_FORMAT: output format
	Theme      string // NOTEMARK_THEME: color theme
	Lines      int    // NOTEMARK_LINES: render line limit, -1 when unset
	Width      int    // NOTEMARK_WIDTH: soft wrap width, -1 when unset
	Workers    int    // NOTEMARK_WORKERS: parallel workers
	InputDir   string // NOTEMARK_INPUT_DIR: default input directory
	OutputDir  string // NOTEMARK_OUTPUT_DIR: default output directory
}

// knownEnvVars lists valid NOTEMARK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"NOTEMARK_CONFIG":     true,
	"NOTEMARK_FORMAT":     true,
	"NOTEMARK_THEME":      true,
	"NOTEMARK_LINES":      true,
	"NOTEMARK_WIDTH":      true,
	"NOTEMARK_WORKERS":    true,
	"NOTEMARK_INPUT_DIR":  true,
	"NOTEMARK_OUTPUT_DIR": true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable numbers are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("NOTEMARK_CONFIG"),
		Format:     os.Getenv("NOTEMARK_FORMAT"),
		Theme:      os.Getenv("NOTEMARK_THEME"),
		InputDir:   os.Getenv("NOTEMARK_INPUT_DIR"),
		OutputDir:  os.Getenv("NOTEMARK_OUTPUT_DIR"),
		Lines:      envInt("NOTEMARK_LINES", 0),
		Width:      envInt("NOTEMARK_WIDTH", 0),
	}

	if w := envInt("NOTEMARK_WORKERS", 1); w > 0 {
		cfg.Workers = w
	}

	return cfg
}

// envInt parses an integer variable, returning -1 when it is unset, invalid,
// or below lowest.
func envInt(name string, lowest int) int {
	v := os.Getenv(name)
	if v == "" {
		return -1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < lowest {
		return -1
	}
	return n
}

// warnUnknownEnvVars logs warnings for unrecognized NOTEMARK_* variables.
// Helps catch typos like NOTEMARK_THEMES instead of NOTEMARK_THEME.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Format != "" {
		cfg.Render.Format = env.Format
	}
	if env.Theme != "" {
		cfg.Render.Theme = env.Theme
	}
	if env.Lines >= 0 {
		cfg.Render.MaxLines = env.Lines
	}
	if env.Width >= 0 {
		cfg.Render.Width = env.Width
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
}
