package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"

	notemark "github.com/alnah/go-notemark"
	"github.com/alnah/go-notemark/internal/dateutil"
)

// ErrListFormat indicates a format that cannot be shown as list rows.
var ErrListFormat = errors.New("list supports text and ansi formats only")

// listIndent prefixes summary lines under each row header.
const listIndent = "  "

// runList prints one row per note: its name and date, then its summary.
func runList(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseListFlags(args, env.Stderr)
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
	// Rows use the render format and theme with the list line limit.
	mergeStyleFlags(&flags.style, &cfg.Render.Format, &cfg.Render.Theme, &cfg.List.MaxLines, &cfg.List.Width)
	mergeDiscoveryFlags(&flags.discovery, cfg)
	if flags.dateFormat != "" {
		cfg.List.DateFormat = flags.dateFormat
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}

	eng, err := newEngine(cfg.Render.Format, cfg.Render.Theme, notemark.LineLimit{
		MaxLines: cfg.List.MaxLines,
		Width:    cfg.List.Width,
	})
	if err != nil {
		return err
	}
	if f := eng.Format(); f != notemark.FormatText && f != notemark.FormatANSI {
		return fmt.Errorf("%w: got %s", ErrListFormat, f)
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
	notes, err := d.discover(inputs, "", "")
	if err != nil {
		return fmt.Errorf("discovering notes: %w", err)
	}
	if len(notes) == 0 {
		return fmt.Errorf("%w in %v", ErrNoNotes, inputs)
	}

	results := renderBatch(ctx, eng, notes, renderParams{workers: cfg.Workers})

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Note.InputPath, r.Err)
			continue
		}
		if err := writeListRow(env, r, cfg.List.DateFormat); err != nil {
			return err
		}
	}
	if failed > 0 {
		return firstFailure(results, failed)
	}
	return nil
}

// writeListRow prints "name  date" followed by the indented summary.
// Front matter title and date take precedence over the file name and
// modification time.
func writeListRow(env *Environment, r RenderResult, dateFormat string) error {
	name, when := r.Note.Name, r.ModTime
	if r.Meta.Title != "" {
		name = r.Meta.Title
	}
	if !r.Meta.Date.IsZero() {
		when = r.Meta.Date
	}

	date, err := dateutil.FormatDate(dateFormat, when)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "%s  %s\n", name, date)

	sc := bufio.NewScanner(bytes.NewReader(r.Output))
	for sc.Scan() {
		if sc.Text() == "" {
			continue
		}
		fmt.Fprintf(env.Stdout, "%s%s\n", listIndent, sc.Text())
	}
	return sc.Err()
}
