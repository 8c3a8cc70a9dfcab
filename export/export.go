// Package export encodes captured signatures for storage.
//
// Every encoder takes the (usually cropped) raster buffer of a
// sigpad.Pad and writes one of the supported formats — PNG, JPEG,
// BMP, or a single-page PDF with the raster embedded — returning a
// Result receipt identifying the export.
package export

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/sigpad"
)

// ErrNilPixmap indicates an export was requested with no pixel data.
var ErrNilPixmap = errors.New("export: nil pixmap")

// Result describes one completed export.
type Result struct {
	// ID is a unique identifier for this export, usable as an audit
	// reference or a storage key.
	ID string

	// Format is the encoded format: "png", "jpeg", "bmp", or "pdf".
	Format string

	// Width and Height are the exported raster dimensions in device
	// pixels.
	Width  int
	Height int

	// CreatedAt is the time the export was produced.
	CreatedAt time.Time
}

// newResult builds the receipt for an export of pm.
func newResult(format string, pm *sigpad.Pixmap) Result {
	r := Result{
		ID:        uuid.NewString(),
		Format:    format,
		Width:     pm.Width(),
		Height:    pm.Height(),
		CreatedAt: time.Now(),
	}
	sigpad.Logger().Debug("export: encoded signature",
		slog.String("id", r.ID),
		slog.String("format", format),
		slog.Int("width", r.Width),
		slog.Int("height", r.Height))
	return r
}

// encode runs a format-specific encoder and wraps it in a receipt.
func encode(w io.Writer, pm *sigpad.Pixmap, format string, fn func(io.Writer, *sigpad.Pixmap) error) (Result, error) {
	if pm == nil {
		return Result{}, ErrNilPixmap
	}
	if err := fn(w, pm); err != nil {
		return Result{}, err
	}
	return newResult(format, pm), nil
}
