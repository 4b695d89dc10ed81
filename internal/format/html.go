package format

import (
	"io"
	"strings"

	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-notemark/internal/palette"
	"github.com/alnah/go-notemark/internal/pipeline"
)

// HTMLFormatter writes an HTML fragment: one <p> per block inside a
// container <div>. Newlines inside a block become <br /> (hard wraps).
type HTMLFormatter struct{}

// Format writes the fragment.
func (HTMLFormatter) Format(w io.Writer, m *pipeline.Model, p palette.Palette) error {
	var b strings.Builder

	b.WriteString(`<div class="notemark`)
	if m.Truncated {
		b.WriteString(` truncated`)
	}
	b.WriteByte('"')
	if css := containerCSS(p); css != "" {
		b.WriteString(` style="` + css + `"`)
	}
	b.WriteString(">\n")

	for _, blk := range m.Blocks {
		b.WriteString("<p>")
		for _, r := range blk.Runs {
			writeHTMLRun(&b, r, p)
		}
		b.WriteString("</p>\n")
	}
	b.WriteString("</div>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func containerCSS(p palette.Palette) string {
	var decls []string
	if p.Foreground != "" {
		decls = append(decls, "color:"+p.Foreground)
	}
	if p.Background != "" {
		decls = append(decls, "background-color:"+p.Background)
	}
	return strings.Join(decls, ";")
}

// writeHTMLRun nests tags in a fixed order: a, strong, em, u, s, code.
// Links are underlined by the <a> element itself.
func writeHTMLRun(b *strings.Builder, r pipeline.Run, p palette.Palette) {
	s := r.Style
	var closers []string

	colorAttr := ""
	if s.Color != pipeline.ColorInherit {
		if hex := p.Color(s.Color); hex != "" {
			colorAttr = ` style="color:` + hex + `"`
		}
	}

	if s.Link != "" {
		b.WriteString("<a")
		if !html.IsDangerousURL([]byte(s.Link)) {
			b.WriteString(` href="`)
			b.Write(util.EscapeHTML(util.URLEscape([]byte(s.Link), false)))
			b.WriteByte('"')
		}
		b.WriteString(colorAttr + ">")
		closers = append(closers, "</a>")
		colorAttr = ""
	}
	if s.Bold {
		b.WriteString("<strong>")
		closers = append(closers, "</strong>")
	}
	if s.Italic {
		b.WriteString("<em>")
		closers = append(closers, "</em>")
	}
	if s.Underline && s.Link == "" {
		b.WriteString("<u>")
		closers = append(closers, "</u>")
	}
	if s.Strikethrough {
		b.WriteString("<s>")
		closers = append(closers, "</s>")
	}
	if s.Font == pipeline.FontMonospace {
		b.WriteString("<code" + colorAttr + ">")
		closers = append(closers, "</code>")
		colorAttr = ""
	}
	if colorAttr != "" {
		b.WriteString("<span" + colorAttr + ">")
		closers = append(closers, "</span>")
	}

	escaped := string(util.EscapeHTML([]byte(r.Text)))
	b.WriteString(strings.ReplaceAll(escaped, "\n", "<br />\n"))

	for i := len(closers) - 1; i >= 0; i-- {
		b.WriteString(closers[i])
	}
}
