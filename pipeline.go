package notemark

import "github.com/alnah/go-notemark/internal/pipeline"

// Normalize converts CRLF and lone CR line endings to LF.
func Normalize(text string) string {
	return pipeline.Normalize(text)
}

// Segment splits raw text into paragraphs on blank lines and parses each.
// Whitespace-only input yields no paragraphs.
func Segment(raw string) []Paragraph {
	return pipeline.Segment(raw)
}

// ParseInline parses one paragraph of text into spans.
func ParseInline(text string) []Span {
	return pipeline.ParseInline(text)
}

// Render maps paragraphs to the presentation model, one block per paragraph.
func Render(paragraphs []Paragraph) *Model {
	return pipeline.Render(paragraphs)
}

// Limit cuts a rendered model to opts.MaxLines display lines.
func Limit(m *Model, opts LineLimit) *Model {
	return pipeline.Limit(m, opts)
}

// StyleFor returns the presentation style of a span.
func StyleFor(s Span) Style {
	return pipeline.StyleFor(s)
}
