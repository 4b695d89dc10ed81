package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	notemark "github.com/alnah/go-notemark"
	"github.com/alnah/go-notemark/internal/config"
	"github.com/alnah/go-notemark/internal/fileutil"
	"github.com/alnah/go-notemark/internal/hints"
)

// Sentinel errors for note discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrNoNotes            = errors.New("no notes found")
	ErrInvalidExtension   = errors.New("note does not match include patterns")
	ErrInvalidPattern     = errors.New("invalid glob pattern")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// NoteFile represents a single note to process.
type NoteFile struct {
	InputPath  string
	Name       string // path relative to the input directory, slash separated
	OutputPath string // empty writes to stdout
}

// discovery selects notes with doublestar patterns matched against paths
// relative to each input directory.
type discovery struct {
	include []string
	exclude []string
}

// newDiscovery validates patterns. Empty include falls back to config.DefaultInclude.
func newDiscovery(include, exclude []string) (*discovery, error) {
	if len(include) == 0 {
		include = config.DefaultInclude
	}
	for _, p := range slices.Concat(include, exclude) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
		}
	}
	return &discovery{include: include, exclude: exclude}, nil
}

// matches reports whether a relative, slash-separated name is selected.
func (d *discovery) matches(name string) bool {
	return matchAny(d.include, name) && !matchAny(d.exclude, name)
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		// Patterns were validated, so Match cannot fail.
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

// discover expands input paths into notes, in input order with each
// directory's notes sorted by name. Explicit files must match the include
// patterns by base name; the exclude patterns only filter directory scans.
func (d *discovery) discover(inputs []string, outputDir, ext string) ([]NoteFile, error) {
	var notes []NoteFile
	seen := make(map[string]bool)
	add := func(n NoteFile) {
		if seen[n.InputPath] {
			return
		}
		seen[n.InputPath] = true
		notes = append(notes, n)
	}

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			name := filepath.Base(input)
			if !matchAny(d.include, name) {
				return nil, fmt.Errorf("%w: %s (include: %s)", ErrInvalidExtension, input, strings.Join(d.include, ", "))
			}
			add(NoteFile{InputPath: input, Name: name, OutputPath: resolveOutputPath(name, outputDir, ext)})
			continue
		}

		names, err := d.scan(input)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", input, err)
		}
		for _, name := range names {
			add(NoteFile{
				InputPath:  filepath.Join(input, filepath.FromSlash(name)),
				Name:       name,
				OutputPath: resolveOutputPath(name, outputDir, ext),
			})
		}
	}

	return notes, nil
}

// scan globs a directory with every include pattern.
func (d *discovery) scan(dir string) ([]string, error) {
	fsys := os.DirFS(dir)
	var names []string
	for _, p := range d.include {
		found, err := doublestar.Glob(fsys, p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, err
		}
		for _, name := range found {
			if !matchAny(d.exclude, name) {
				names = append(names, name)
			}
		}
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

// resolveOutputPath maps a relative note name to its output file.
// An empty output directory means stdout.
func resolveOutputPath(name, outputDir, ext string) string {
	if outputDir == "" {
		return ""
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(outputDir, filepath.FromSlash(base)+ext)
}

// resolveInputPaths returns positional args, or the configured default
// directory when none are given.
func resolveInputPaths(args []string, cfg *config.Config) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if cfg.Input.DefaultDir != "" {
		return []string{fileutil.ExpandHome(cfg.Input.DefaultDir)}, nil
	}
	return nil, fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 || n > notemark.MaxWorkers {
		return fmt.Errorf("%w: %d%s", ErrInvalidWorkerCount, n, hints.ForWorkers(notemark.MaxWorkers))
	}
	return nil
}
