package pipeline

import "strings"

// paragraphSeparator is a blank line: two consecutive newlines.
const paragraphSeparator = "\n\n"

// Segment splits raw note text into paragraphs on blank lines.
// Chunks are trimmed and whitespace-only chunks are discarded, so runs of
// three or more newlines never produce empty paragraphs. Empty input yields
// no paragraphs.
func Segment(raw string) []Paragraph {
	var paragraphs []Paragraph
	for _, chunk := range strings.Split(raw, paragraphSeparator) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		paragraphs = append(paragraphs, Paragraph{Spans: ParseInline(chunk)})
	}
	return paragraphs
}
