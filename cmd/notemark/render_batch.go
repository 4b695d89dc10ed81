package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	notemark "github.com/alnah/go-notemark"
	"github.com/alnah/go-notemark/internal/fileutil"
)

// MaxNoteSize limits the size of a note file read from disk.
const MaxNoteSize = 8 << 20

// Sentinel errors for batch operations.
var (
	ErrReadNote    = errors.New("failed to read note")
	ErrWriteOutput = errors.New("failed to write output")
)

// Previewer is the interface for the preview engine.
type Previewer interface {
	Preview(ctx context.Context, input notemark.Input) (*notemark.Result, error)
}

// Compile-time interface implementation check.
var _ Previewer = (*notemark.Engine)(nil)

// RenderResult holds the outcome of a single note.
type RenderResult struct {
	Note     NoteFile
	Output   []byte // set when writing to stdout
	ModTime  time.Time
	Meta     noteMeta
	Err      error
	Duration time.Duration
}

// renderParams groups parameters shared across a batch.
type renderParams struct {
	workers int
	limit   *notemark.LineLimit // nil uses the engine limit
}

// renderBatch processes notes concurrently. Results keep input order.
func renderBatch(ctx context.Context, prev Previewer, notes []NoteFile, params renderParams) []RenderResult {
	if len(notes) == 0 {
		return nil
	}

	concurrency := min(notemark.ResolveWorkers(params.workers), len(notes))

	results := make([]RenderResult, len(notes))
	var wg sync.WaitGroup
	jobs := make(chan int, len(notes))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = RenderResult{Note: notes[idx], Err: ctx.Err()}
					continue
				}
				results[idx] = renderNote(ctx, prev, notes[idx], params)
			}
		}()
	}

	for i := range notes {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// renderNote processes a single note and returns the result.
func renderNote(ctx context.Context, prev Previewer, n NoteFile, params renderParams) RenderResult {
	start := time.Now()
	result := RenderResult{Note: n}
	done := func(err error) RenderResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	info, err := os.Stat(n.InputPath)
	if err != nil {
		return done(fmt.Errorf("%w: %w", ErrReadNote, err))
	}
	result.ModTime = info.ModTime()

	content, err := fileutil.ReadFileLimited(n.InputPath, MaxNoteSize)
	if err != nil {
		return done(fmt.Errorf("%w: %w", ErrReadNote, err))
	}

	meta, body, err := splitFrontMatter(content)
	if err != nil {
		return done(err)
	}
	result.Meta = meta

	res, err := prev.Preview(ctx, notemark.Input{Text: string(body), Limit: params.limit})
	if err != nil {
		return done(err)
	}

	if n.OutputPath == "" {
		result.Output = res.Output
		return done(nil)
	}

	if err := fileutil.WriteFile(n.OutputPath, res.Output); err != nil {
		return done(fmt.Errorf("%w: %w", ErrWriteOutput, err))
	}
	return done(nil)
}

// ResultSummary holds the count of succeeded and failed notes.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed notes.
func countResults(results []RenderResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printRenderResults writes rendered notes and status lines. Notes sent to
// stdout get a "==> name <==" header when there is more than one.
// Returns the number of failures.
func printRenderResults(results []RenderResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)
	headers := len(results) > 1

	for i, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Note.InputPath, r.Err)
			continue
		}

		if r.Note.OutputPath == "" {
			if headers {
				if i > 0 {
					fmt.Fprintln(env.Stdout)
				}
				fmt.Fprintf(env.Stdout, "==> %s <==\n", r.Note.Name)
			}
			_, _ = env.Stdout.Write(r.Output)
			if verbose {
				fmt.Fprintf(env.Stderr, "%s (%v)\n", r.Note.InputPath, r.Duration.Round(time.Microsecond))
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.Note.InputPath, r.Note.OutputPath, r.Duration.Round(time.Microsecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.Note.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		// Rendered notes own stdout, so the summary goes to stderr there.
		switch {
		case results[0].Note.OutputPath != "":
			fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
		case summary.Failed > 0:
			fmt.Fprintf(env.Stderr, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
		}
	}

	return summary.Failed
}
