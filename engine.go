package notemark

import (
	"bytes"
	"context"
	"fmt"

	"github.com/alnah/go-notemark/internal/format"
	"github.com/alnah/go-notemark/internal/palette"
	"github.com/alnah/go-notemark/internal/pipeline"
)

// Engine previews notes with a fixed theme, format and default line limit.
// Create with NewEngine. An Engine is safe for concurrent use.
type Engine struct {
	cfg       engineConfig
	palette   palette.Palette
	formatter format.Formatter
}

// engineConfig holds options collected before validation.
type engineConfig struct {
	theme  string
	format Format
	limit  LineLimit
}

// Option configures an Engine.
type Option func(*engineConfig)

// WithTheme selects the color theme by name. See Themes.
func WithTheme(name string) Option {
	return func(c *engineConfig) {
		c.theme = name
	}
}

// WithFormat selects the default output format.
func WithFormat(f Format) Option {
	return func(c *engineConfig) {
		c.format = f
	}
}

// WithLineLimit sets the line limit used by Summary and by Preview when the
// input has no limit of its own.
func WithLineLimit(l LineLimit) Option {
	return func(c *engineConfig) {
		c.limit = l
	}
}

// NewEngine creates an Engine. Defaults: text format, the github theme and
// no line limit.
// Returns ErrUnknownTheme, ErrUnknownFormat or ErrInvalidLineLimit for bad options.
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := engineConfig{
		theme:  palette.DefaultTheme,
		format: FormatText,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateLimit(cfg.limit); err != nil {
		return nil, err
	}

	p, err := palette.Load(cfg.theme)
	if err != nil {
		return nil, err
	}

	f, err := format.New(cfg.format)
	if err != nil {
		return nil, err
	}

	return &Engine{cfg: cfg, palette: p, formatter: f}, nil
}

// Theme returns the resolved palette name.
func (e *Engine) Theme() string {
	return e.palette.Name
}

// Format returns the default output format.
func (e *Engine) Format() Format {
	return e.cfg.format
}

// Parse normalizes line endings and segments raw into paragraphs.
func (e *Engine) Parse(raw string) []Paragraph {
	return pipeline.Segment(pipeline.Normalize(raw))
}

// Render returns the full, unbounded model for raw.
func (e *Engine) Render(raw string) *Model {
	return pipeline.Render(e.Parse(raw))
}

// Summary returns the model for raw cut to the engine line limit.
func (e *Engine) Summary(raw string) *Model {
	return pipeline.Limit(e.Render(raw), e.cfg.limit)
}

// Preview runs the whole pipeline and formats the result.
// The context is checked between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (e *Engine) Preview(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: internal error: %v", ErrPreview, r)
		}
	}()

	limit := e.cfg.limit
	if input.Limit != nil {
		if err := validateLimit(*input.Limit); err != nil {
			return nil, err
		}
		limit = *input.Limit
	}

	formatter := e.formatter
	if input.Format != "" && input.Format != e.cfg.format {
		formatter, err = format.New(input.Format)
		if err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	paragraphs := e.Parse(input.Text)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	model := pipeline.Limit(pipeline.Render(paragraphs), limit)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, model, e.palette); err != nil {
		return nil, fmt.Errorf("%w: formatting: %v", ErrPreview, err)
	}

	return &Result{
		Paragraphs: paragraphs,
		Model:      model,
		Output:     buf.Bytes(),
	}, nil
}

func validateLimit(l LineLimit) error {
	if l.MaxLines < 0 {
		return fmt.Errorf("%w: max lines %d is negative", ErrInvalidLineLimit, l.MaxLines)
	}
	if l.Width < 0 {
		return fmt.Errorf("%w: width %d is negative", ErrInvalidLineLimit, l.Width)
	}
	return nil
}

// Themes returns the available theme names.
func Themes() []string {
	return palette.Available()
}

// Formats returns the supported output format names.
func Formats() []string {
	return format.Names()
}
