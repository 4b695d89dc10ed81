// Package notemark renders the body of a journal note as a styled preview.
//
// # Quick Start
//
// Create an engine and preview a note:
//
//	eng, err := notemark.NewEngine()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := eng.Preview(ctx, notemark.Input{
//	    Text: "Walked to the **lake**.\n\nSaw a _heron_.",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.Output)
//
// The result holds the parsed paragraphs (result.Paragraphs), the abstract
// presentation model (result.Model) and the formatted bytes (result.Output).
//
// # Preview Pipeline
//
// A preview goes through these stages:
//
//  1. Line ending normalization
//  2. Paragraph segmentation on blank lines
//  3. Inline parsing of **bold**, *italic*, _underline_, `code`, ~strike~
//     and [text](url) links
//  4. Rendering of spans to styled runs
//  5. Optional line limit for summaries
//  6. Formatting to text, ANSI, HTML, JSON or YAML
//
// Links are extracted first and their text is never scanned for emphasis.
// Emphasis markers do not nest: when two candidates overlap, the one that
// starts first wins and the other is left as plain text.
//
// # Configuration
//
// Use functional options to customize the engine:
//
//	eng, err := notemark.NewEngine(
//	    notemark.WithFormat(notemark.FormatHTML),
//	    notemark.WithTheme("dracula"),
//	    notemark.WithLineLimit(notemark.LineLimit{MaxLines: 2, Width: 80}),
//	)
//
// # Pure Functions
//
// Segment, ParseInline, Render and Limit expose the pipeline stages
// directly for callers that draw the model themselves.
//
// # Concurrency
//
// An Engine is immutable after construction and safe for concurrent use.
package notemark
