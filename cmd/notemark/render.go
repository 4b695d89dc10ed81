package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	notemark "github.com/alnah/go-notemark"
	"github.com/alnah/go-notemark/internal/config"
	"github.com/alnah/go-notemark/internal/fileutil"
	"github.com/alnah/go-notemark/internal/hints"
)

// ErrWatchMultiple indicates --watch was given something other than one file.
var ErrWatchMultiple = errors.New("watch needs a single note file")

// runRender orchestrates the render command.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeStyleFlags(&flags.style, &cfg.Render.Format, &cfg.Render.Theme, &cfg.Render.MaxLines, &cfg.Render.Width)
	mergeDiscoveryFlags(&flags.discovery, cfg)
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}

	eng, err := newEngine(cfg.Render.Format, cfg.Render.Theme, notemark.LineLimit{
		MaxLines: cfg.Render.MaxLines,
		Width:    cfg.Render.Width,
	})
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	inputs, err := resolveInputPaths(positional, cfg)
	if err != nil {
		return err
	}

	d, err := newDiscovery(cfg.Input.Include, cfg.Input.Exclude)
	if err != nil {
		return err
	}

	if flags.watch {
		return startWatch(ctx, eng, inputs, d, env)
	}

	outputDir := fileutil.ExpandHome(cfg.Output.DefaultDir)
	notes, err := d.discover(inputs, outputDir, eng.Format().Extension())
	if err != nil {
		return fmt.Errorf("discovering notes: %w", err)
	}
	if len(notes) == 0 {
		return fmt.Errorf("%w in %v", ErrNoNotes, inputs)
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d, format: %s, theme: %s\n",
			min(notemark.ResolveWorkers(cfg.Workers), len(notes)), eng.Format(), eng.Theme())
	}

	results := renderBatch(ctx, eng, notes, renderParams{workers: cfg.Workers})

	failed := printRenderResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return firstFailure(results, failed)
	}
	return nil
}

// startWatch validates a --watch invocation and runs the watcher.
func startWatch(ctx context.Context, eng *notemark.Engine, inputs []string, d *discovery, env *Environment) error {
	if len(inputs) != 1 {
		return fmt.Errorf("%w: got %d paths%s", ErrWatchMultiple, len(inputs), hints.ForWatch())
	}
	info, err := os.Stat(inputs[0])
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory%s", ErrWatchMultiple, inputs[0], hints.ForWatch())
	}
	notes, err := d.discover(inputs, "", "")
	if err != nil {
		return err
	}
	return watchNote(ctx, eng, notes[0], env)
}

// loadConfig loads the config file named by flag or NOTEMARK_CONFIG and
// applies environment overrides. The result is stored in env.Config.
func loadConfig(name string, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	env.Config = cfg
	return cfg, nil
}

// validateConfig re-checks the merged config and the worker count.
func validateConfig(cfg *config.Config) error {
	if err := validateWorkers(cfg.Workers); err != nil {
		return err
	}
	return cfg.Validate()
}

// mergeStyleFlags applies presentation flags over config values (CLI wins).
func mergeStyleFlags(f *styleFlags, format, theme *string, lines, width *int) {
	if f.format != "" {
		*format = f.format
	}
	if f.theme != "" {
		*theme = f.theme
	}
	if f.linesSet {
		*lines = f.lines
	}
	if f.widthSet {
		*width = f.width
	}
}

// mergeDiscoveryFlags applies --include and --exclude over config values.
func mergeDiscoveryFlags(f *discoveryFlags, cfg *config.Config) {
	if len(f.include) > 0 {
		cfg.Input.Include = f.include
	}
	if len(f.exclude) > 0 {
		cfg.Input.Exclude = f.exclude
	}
}

// newEngine builds the preview engine, adding hints to option errors.
func newEngine(formatName, theme string, limit notemark.LineLimit) (*notemark.Engine, error) {
	f := notemark.FormatText
	if formatName != "" {
		var err error
		f, err = notemark.ParseFormat(formatName)
		if err != nil {
			return nil, fmt.Errorf("%w%s", err, hints.ForFormat(notemark.Formats()))
		}
	}

	eng, err := notemark.NewEngine(
		notemark.WithFormat(f),
		notemark.WithTheme(theme),
		notemark.WithLineLimit(limit),
	)
	if errors.Is(err, notemark.ErrUnknownTheme) {
		return nil, fmt.Errorf("%w%s", err, hints.ForThemeNotFound(notemark.Themes()))
	}
	return eng, err
}

// firstFailure summarizes a failed batch, keeping the first error in the
// chain so exit codes reflect its cause.
func firstFailure(results []RenderResult, failed int) error {
	for _, r := range results {
		if r.Err != nil {
			if failed == 1 {
				return fmt.Errorf("rendering %s: %w", r.Note.InputPath, r.Err)
			}
			return fmt.Errorf("%d note(s) failed, first: %w", failed, r.Err)
		}
	}
	return nil
}
