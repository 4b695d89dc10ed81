package main

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// ErrFrontMatter indicates a note whose front matter block cannot be decoded.
var ErrFrontMatter = errors.New("invalid front matter")

// noteMeta holds the front matter fields the CLI reads. Other keys are ignored.
type noteMeta struct {
	Title string    `yaml:"title" toml:"title" json:"title"`
	Date  time.Time `yaml:"date" toml:"date" json:"date"`
}

// splitFrontMatter separates an optional YAML, TOML or JSON front matter
// block from the note body. Notes without one are returned unchanged.
func splitFrontMatter(content []byte) (noteMeta, []byte, error) {
	var meta noteMeta
	body, err := frontmatter.Parse(bytes.NewReader(content), &meta)
	if err != nil {
		return noteMeta{}, nil, fmt.Errorf("%w: %w", ErrFrontMatter, err)
	}
	return meta, body, nil
}
