package pipeline

// Font selects the typeface family of a run.
type Font int

const (
	FontDefault Font = iota
	FontMonospace
)

// ColorToken names a theme color. Display layers resolve tokens to concrete
// colors through a palette.
type ColorToken int

const (
	ColorInherit ColorToken = iota
	ColorMuted
	ColorAccent
)

// ParagraphSpacing is the number of blank lines between stacked blocks.
const ParagraphSpacing = 1

// Ellipsis marks content hidden by a line limit.
const Ellipsis = "…"

// Style is the abstract presentation of a run. The zero value inherits the
// surrounding style.
type Style struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Font          Font
	Color         ColorToken
	Link          string
}

// Run is a piece of text drawn with one style.
type Run struct {
	Text  string
	Style Style
}

// Block is one paragraph drawn as a continuous styled text run.
type Block struct {
	Runs []Run
}

// Text returns the visible text of the block.
func (b Block) Text() string {
	n := 0
	for _, r := range b.Runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range b.Runs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}

// Model is the presentation of a whole note: blocks stacked vertically.
// Truncated reports that a line limit hid part of the content.
type Model struct {
	Blocks    []Block
	Truncated bool
}

// StyleFor maps a span to its presentation style. The mapping is total:
// unknown kinds render as plain text.
func StyleFor(s Span) Style {
	switch s.Kind {
	case Bold:
		return Style{Bold: true}
	case Italic:
		return Style{Italic: true}
	case Underline:
		return Style{Underline: true}
	case Code:
		return Style{Font: FontMonospace, Color: ColorMuted}
	case Strikethrough:
		return Style{Strikethrough: true}
	case Link:
		return Style{Underline: true, Color: ColorAccent, Link: s.URL}
	default:
		return Style{}
	}
}

// Render projects parsed paragraphs into a presentation model, one block
// per paragraph and one run per span, in source order. The input is not
// modified.
func Render(paragraphs []Paragraph) *Model {
	m := &Model{Blocks: make([]Block, 0, len(paragraphs))}
	for _, p := range paragraphs {
		runs := make([]Run, 0, len(p.Spans))
		for _, s := range p.Spans {
			runs = append(runs, Run{Text: s.Content, Style: StyleFor(s)})
		}
		m.Blocks = append(m.Blocks, Block{Runs: runs})
	}
	return m
}
