// Package pipeline implements the note preview pipeline.
//
// The pipeline turns the raw body of a note into styled text in four stages:
//   - Text normalization (line endings)
//   - Paragraph segmentation on blank lines
//   - Inline parsing of **bold**, *italic*, _underline_, `code`, ~strike~
//     and [text](url) links into typed spans
//   - Rendering of spans into an abstract presentation model, optionally
//     limited to a number of display lines
//
// Every stage is a pure function over in-memory values. Output formatting
// (terminal, HTML, JSON) lives in the format package so that the pipeline
// stays independent of any display surface.
package pipeline
