package pipeline

import "strings"

// SpanKind identifies the inline style of a Span.
type SpanKind int

// Span kinds, one per recognized inline marker.
const (
	Plain SpanKind = iota
	Bold
	Italic
	Underline
	Code
	Strikethrough
	Link
)

var spanKindNames = [...]string{
	Plain:         "plain",
	Bold:          "bold",
	Italic:        "italic",
	Underline:     "underline",
	Code:          "code",
	Strikethrough: "strikethrough",
	Link:          "link",
}

// String returns the lowercase name of the kind.
func (k SpanKind) String() string {
	if k < 0 || int(k) >= len(spanKindNames) {
		return "unknown"
	}
	return spanKindNames[k]
}

// Span is one contiguous run of text carrying a single inline style.
// Content never contains the delimiters that produced the span.
// URL is only set for Link spans.
type Span struct {
	Kind    SpanKind
	Content string
	URL     string
}

// Paragraph is one blank-line-delimited block of a note.
type Paragraph struct {
	Spans []Span
}

// Text returns the visible text of the paragraph: span contents in order,
// delimiters removed and link text in place of the bracketed form.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, s := range p.Spans {
		b.WriteString(s.Content)
	}
	return b.String()
}

// match is a candidate span location found by a single pattern scan.
// start and end delimit a half-open byte range of the scanned segment.
type match struct {
	start, end int
	kind       SpanKind
	content    string
	url        string
}

func (m match) overlaps(o match) bool {
	return m.start < o.end && o.start < m.end
}

func (m match) span() Span {
	return Span{Kind: m.kind, Content: m.content, URL: m.url}
}
