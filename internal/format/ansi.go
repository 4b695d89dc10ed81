package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"

	"github.com/alnah/go-notemark/internal/palette"
	"github.com/alnah/go-notemark/internal/pipeline"
)

// ANSI control sequences.
const (
	sgrReset  = "\x1b[0m"
	osc8Open  = "\x1b]8;;"
	osc8Close = "\x1b\\"
)

// ANSIFormatter writes text with SGR attributes and OSC 8 hyperlinks for
// terminals.
type ANSIFormatter struct{}

// Format writes each block as styled terminal text.
func (ANSIFormatter) Format(w io.Writer, m *pipeline.Model, p palette.Palette) error {
	var b strings.Builder
	for i, blk := range m.Blocks {
		if i > 0 {
			b.WriteString(blockSeparator)
		}
		for _, r := range blk.Runs {
			writeANSIRun(&b, r, p)
		}
	}
	if len(m.Blocks) > 0 {
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeANSIRun(b *strings.Builder, r pipeline.Run, p palette.Palette) {
	text := stripControls(r.Text)
	codes := sgrCodes(r.Style, p)
	link := stripControls(r.Style.Link)

	if link != "" {
		b.WriteString(osc8Open + link + osc8Close)
	}
	if codes != "" {
		b.WriteString("\x1b[" + codes + "m")
	}
	b.WriteString(text)
	if codes != "" {
		b.WriteString(sgrReset)
	}
	if link != "" {
		b.WriteString(osc8Open + osc8Close)
	}
}

// sgrCodes returns the ";"-joined SGR parameters for a style.
func sgrCodes(s pipeline.Style, p palette.Palette) string {
	var codes []string
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Italic {
		codes = append(codes, "3")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	if s.Strikethrough {
		codes = append(codes, "9")
	}
	if s.Color != pipeline.ColorInherit {
		if hex := p.Color(s.Color); hex != "" {
			c := chroma.ParseColour(hex)
			if c.IsSet() {
				codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.Red(), c.Green(), c.Blue()))
			}
		}
	}
	return strings.Join(codes, ";")
}

// stripControls removes C0 control characters except newline and tab so
// note content cannot inject terminal escape sequences.
func stripControls(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
