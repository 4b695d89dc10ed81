package format

import (
	"encoding/json"
	"io"

	"github.com/alnah/go-notemark/internal/palette"
	"github.com/alnah/go-notemark/internal/pipeline"
	"github.com/alnah/go-notemark/internal/yamlutil"
)

// document is the serialized form of a model with colors resolved, for
// native UI layers that draw runs themselves.
type document struct {
	Theme     string  `json:"theme" yaml:"theme"`
	Truncated bool    `json:"truncated" yaml:"truncated"`
	Blocks    []block `json:"blocks" yaml:"blocks"`
}

type block struct {
	Runs []run `json:"runs" yaml:"runs"`
}

type run struct {
	Text          string `json:"text" yaml:"text"`
	Bold          bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underline     bool   `json:"underline,omitempty" yaml:"underline,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty"`
	Monospace     bool   `json:"monospace,omitempty" yaml:"monospace,omitempty"`
	Color         string `json:"color,omitempty" yaml:"color,omitempty"`
	Link          string `json:"link,omitempty" yaml:"link,omitempty"`
}

func newDocument(m *pipeline.Model, p palette.Palette) document {
	doc := document{
		Theme:     p.Name,
		Truncated: m.Truncated,
		Blocks:    make([]block, 0, len(m.Blocks)),
	}
	for _, blk := range m.Blocks {
		runs := make([]run, 0, len(blk.Runs))
		for _, r := range blk.Runs {
			s := r.Style
			out := run{
				Text:          r.Text,
				Bold:          s.Bold,
				Italic:        s.Italic,
				Underline:     s.Underline,
				Strikethrough: s.Strikethrough,
				Monospace:     s.Font == pipeline.FontMonospace,
				Link:          s.Link,
			}
			if s.Color != pipeline.ColorInherit {
				out.Color = p.Color(s.Color)
			}
			runs = append(runs, out)
		}
		doc.Blocks = append(doc.Blocks, block{Runs: runs})
	}
	return doc
}

// JSONFormatter writes the model as indented JSON.
type JSONFormatter struct{}

// Format writes the JSON document followed by a newline.
func (JSONFormatter) Format(w io.Writer, m *pipeline.Model, p palette.Palette) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(m, p))
}

// YAMLFormatter writes the model as YAML.
type YAMLFormatter struct{}

// Format writes the YAML document.
func (YAMLFormatter) Format(w io.Writer, m *pipeline.Model, p palette.Palette) error {
	data, err := yamlutil.Marshal(newDocument(m, p))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
