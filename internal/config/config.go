package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-notemark/internal/dateutil"
	"github.com/alnah/go-notemark/internal/fileutil"
	"github.com/alnah/go-notemark/internal/format"
	"github.com/alnah/go-notemark/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// Limits for config values.
const (
	MaxThemeLength = 64   // chroma style names are short
	MaxWidth       = 1000 // columns per line in summaries
	MaxPatterns    = 64   // include/exclude patterns
)

// appDir is the directory name under the user config directory.
const appDir = "go-notemark"

// DefaultInclude selects note files during directory discovery.
var DefaultInclude = []string{"**/*.md", "**/*.markdown", "**/*.txt"}

// Config holds all configuration for note rendering.
type Config struct {
	Render  RenderConfig `yaml:"render"`
	List    ListConfig   `yaml:"list"`
	Input   InputConfig  `yaml:"input"`
	Output  OutputConfig `yaml:"output"`
	Workers int          `yaml:"workers"` // 0 = auto
}

// RenderConfig defines full-render options.
type RenderConfig struct {
	Format   string `yaml:"format"`   // text, ansi, html, json, yaml
	Theme    string `yaml:"theme"`    // chroma style name
	MaxLines int    `yaml:"maxLines"` // 0 = unbounded
	Width    int    `yaml:"width"`    // 0 = no soft wrap
}

// ListConfig defines summary rows for the list command.
type ListConfig struct {
	MaxLines   int    `yaml:"maxLines"`
	Width      int    `yaml:"width"`
	DateFormat string `yaml:"dateFormat"` // preset or tokens, see dateutil
}

// InputConfig defines note discovery options.
type InputConfig struct {
	DefaultDir string   `yaml:"defaultDir"` // used when no path is given
	Include    []string `yaml:"include"`    // doublestar patterns, relative to the input dir
	Exclude    []string `yaml:"exclude"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = stdout
}

// Validate checks value ranges and pattern syntax.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Render),
		validation.Field(&c.List),
		validation.Field(&c.Input),
		validation.Field(&c.Workers, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return nil
}

// Validate implements validation.Validatable.
func (r RenderConfig) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Format, validation.In(formatNames()...)),
		validation.Field(&r.Theme, validation.Length(0, MaxThemeLength)),
		validation.Field(&r.MaxLines, validation.Min(0)),
		validation.Field(&r.Width, validation.Min(0), validation.Max(MaxWidth)),
	)
}

// Validate implements validation.Validatable.
func (l ListConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.MaxLines, validation.Min(0)),
		validation.Field(&l.Width, validation.Min(0), validation.Max(MaxWidth)),
		validation.Field(&l.DateFormat, validation.By(dateFormat)),
	)
}

// Validate implements validation.Validatable.
func (i InputConfig) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Include, validation.Length(0, MaxPatterns), validation.Each(validation.By(globPattern))),
		validation.Field(&i.Exclude, validation.Length(0, MaxPatterns), validation.Each(validation.By(globPattern))),
	)
}

func formatNames() []any {
	names := format.Names()
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}

func dateFormat(value any) error {
	f, _ := value.(string)
	_, err := dateutil.ResolveFormat(f)
	return err
}

func globPattern(value any) error {
	p, _ := value.(string)
	if !doublestar.ValidatePattern(p) {
		return fmt.Errorf("invalid glob pattern %q", p)
	}
	return nil
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{Format: string(format.Text)},
		List:   ListConfig{MaxLines: 2, Width: 80, DateFormat: "iso"},
		Input:  InputConfig{Include: append([]string(nil), DefaultInclude...)},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values missing from the file keep their defaults. Returns error if the
// file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := fileutil.ExpandHome(nameOrPath)
	if !fileutil.IsFilePath(configPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup
// order: current directory first, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, appDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
