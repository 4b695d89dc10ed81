// Package palette resolves abstract color tokens to concrete colors.
//
// Colors come from chroma syntax-highlighting styles so that previews share
// the look of the themes users already know from their editors.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-notemark/internal/pipeline"
)

// ErrUnknownTheme indicates the theme name is not a registered chroma style.
var ErrUnknownTheme = errors.New("unknown theme")

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "github"

// Built-in colors for styles that leave a token unset.
const (
	fallbackMuted  = "#6a737d"
	fallbackAccent = "#0366d6"
)

// Palette holds hex colors ("#rrggbb") for each color token.
// An empty Foreground or Background means the surface default.
type Palette struct {
	Name       string
	Foreground string
	Background string
	Muted      string
	Accent     string
}

// Color returns the hex color for a token, or "" to inherit.
func (p Palette) Color(token pipeline.ColorToken) string {
	switch token {
	case pipeline.ColorMuted:
		return p.Muted
	case pipeline.ColorAccent:
		return p.Accent
	default:
		return p.Foreground
	}
}

// Load resolves a chroma style by name (case-insensitive). An empty name
// loads DefaultTheme.
func Load(name string) (Palette, error) {
	if name == "" {
		name = DefaultTheme
	}
	style, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return FromStyle(style), nil
}

// FromStyle builds a palette from a chroma style.
// Muted follows comments; Accent follows function names, then keywords.
func FromStyle(style *chroma.Style) Palette {
	p := Palette{
		Name:       style.Name,
		Foreground: colour(style.Get(chroma.Text).Colour),
		Background: colour(style.Get(chroma.Background).Background),
		Muted:      colour(style.Get(chroma.Comment).Colour),
		Accent:     colour(style.Get(chroma.NameFunction).Colour),
	}
	if p.Accent == "" || p.Accent == p.Foreground {
		p.Accent = colour(style.Get(chroma.Keyword).Colour)
	}
	if p.Muted == "" {
		p.Muted = fallbackMuted
	}
	if p.Accent == "" {
		p.Accent = fallbackAccent
	}
	return p
}

// Available returns the registered theme names in sorted order.
func Available() []string {
	return styles.Names()
}

func colour(c chroma.Colour) string {
	if !c.IsSet() {
		return ""
	}
	return c.String()
}
