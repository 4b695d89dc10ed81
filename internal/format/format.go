// Package format writes rendered note models to display surfaces.
//
// Formatters receive a finished pipeline.Model and a palette; they never
// parse or reorder content. Supported surfaces: plain text, ANSI terminal,
// HTML fragments, and JSON/YAML for native UI layers.
package format

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-notemark/internal/palette"
	"github.com/alnah/go-notemark/internal/pipeline"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("unknown format")

// Format names an output surface.
type Format string

// Supported formats.
const (
	Text Format = "text"
	ANSI Format = "ansi"
	HTML Format = "html"
	JSON Format = "json"
	YAML Format = "yaml"
)

// formats lists supported formats in help order.
var formats = []Format{Text, ANSI, HTML, JSON, YAML}

// extensions maps formats to output file extensions.
var extensions = map[Format]string{
	Text: ".txt",
	ANSI: ".ans",
	HTML: ".html",
	JSON: ".json",
	YAML: ".yaml",
}

// Formatter writes a model to w using the palette for color tokens.
type Formatter interface {
	Format(w io.Writer, m *pipeline.Model, p palette.Palette) error
}

// Compile-time interface implementation checks.
var (
	_ Formatter = TextFormatter{}
	_ Formatter = ANSIFormatter{}
	_ Formatter = HTMLFormatter{}
	_ Formatter = JSONFormatter{}
	_ Formatter = YAMLFormatter{}
)

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := extensions[f]; !ok {
		return "", fmt.Errorf("%w: %q (must be one of %s)", ErrUnknownFormat, name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names returns the supported format names.
func Names() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// Extension returns the output file extension, including the dot.
func (f Format) Extension() string {
	return extensions[f]
}

// New returns the formatter for f.
func New(f Format) (Formatter, error) {
	switch f {
	case Text:
		return TextFormatter{}, nil
	case ANSI:
		return ANSIFormatter{}, nil
	case HTML:
		return HTMLFormatter{}, nil
	case JSON:
		return JSONFormatter{}, nil
	case YAML:
		return YAMLFormatter{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// blockSeparator ends one block and leaves the paragraph spacing.
var blockSeparator = strings.Repeat("\n", pipeline.ParagraphSpacing+1)

// TextFormatter writes visible text only.
type TextFormatter struct{}

// Format writes each block's text, blocks separated by a blank line.
func (TextFormatter) Format(w io.Writer, m *pipeline.Model, _ palette.Palette) error {
	var b strings.Builder
	for i, blk := range m.Blocks {
		if i > 0 {
			b.WriteString(blockSeparator)
		}
		b.WriteString(blk.Text())
	}
	if len(m.Blocks) > 0 {
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
