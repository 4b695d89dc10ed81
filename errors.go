package notemark

import (
	"errors"

	"github.com/alnah/go-notemark/internal/format"
	"github.com/alnah/go-notemark/internal/palette"
)

// Sentinel errors for library operations.
var (
	ErrInvalidLineLimit = errors.New("invalid line limit")
	ErrPreview          = errors.New("preview failed")

	// Re-exported from internal packages so callers can use errors.Is.
	ErrUnknownFormat = format.ErrUnknownFormat
	ErrUnknownTheme  = palette.ErrUnknownTheme
)
