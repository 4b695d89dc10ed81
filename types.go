package notemark

import (
	"github.com/alnah/go-notemark/internal/format"
	"github.com/alnah/go-notemark/internal/pipeline"
)

// Parsed note types.
type (
	// SpanKind is the inline style of a span.
	SpanKind = pipeline.SpanKind
	// Span is a run of text with one inline style.
	Span = pipeline.Span
	// Paragraph is an ordered list of spans.
	Paragraph = pipeline.Paragraph
)

// Span kinds.
const (
	Plain         = pipeline.Plain
	Bold          = pipeline.Bold
	Italic        = pipeline.Italic
	Underline     = pipeline.Underline
	Code          = pipeline.Code
	Strikethrough = pipeline.Strikethrough
	Link          = pipeline.Link
)

// Presentation model types.
type (
	Font       = pipeline.Font
	ColorToken = pipeline.ColorToken
	Style      = pipeline.Style
	Run        = pipeline.Run
	Block      = pipeline.Block
	Model      = pipeline.Model
	LineLimit  = pipeline.LineLimit
)

// Presentation constants.
const (
	FontDefault   = pipeline.FontDefault
	FontMonospace = pipeline.FontMonospace

	ColorInherit = pipeline.ColorInherit
	ColorMuted   = pipeline.ColorMuted
	ColorAccent  = pipeline.ColorAccent

	ParagraphSpacing = pipeline.ParagraphSpacing
	Ellipsis         = pipeline.Ellipsis
)

// Format is an output format name.
type Format = format.Format

// Output formats.
const (
	FormatText = format.Text
	FormatANSI = format.ANSI
	FormatHTML = format.HTML
	FormatJSON = format.JSON
	FormatYAML = format.YAML
)

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(name string) (Format, error) {
	return format.ParseFormat(name)
}

// Input contains the data for a single preview.
type Input struct {
	Text string // raw note body

	// Format overrides the engine format when set.
	Format Format

	// Limit overrides the engine line limit when non-nil.
	// A zero LineLimit forces a full render.
	Limit *LineLimit
}

// Result contains the output of a preview.
type Result struct {
	Paragraphs []Paragraph
	Model      *Model
	Output     []byte
}
