// Package sigpad renders freehand signature strokes in real time.
//
// # Overview
//
// sigpad converts a live stream of pointer samples into a
// pressure-simulated, variable-width ink path on a persistent raster
// buffer. Stroke width is derived from pointer velocity (fast strokes
// thin out, slow strokes approach a configured ceiling), each segment
// is a quadratic Bezier ribbon joined to its neighbors at sample
// midpoints, and the inked region can be exported as a tightly
// cropped bitmap.
//
// # Quick Start
//
//	import "github.com/gogpu/sigpad"
//
//	pad := sigpad.NewPad(300, 200, sigpad.WithScale(2))
//
//	// Feed pointer events in arrival order
//	pad.Begin(sigpad.Pt(10, 10))
//	pad.Move(sigpad.Pt(10, 40))
//	pad.End(sigpad.Pt(10, 40))
//
//	// Export the signature
//	img, err := pad.ExportCroppedImage()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Pad, Style, Pixmap, Point, Rect, RGBA, Path
//   - Rendering: Rasterizer (anti-aliased fill via golang.org/x/image/vector)
//   - export/: PNG, JPEG, BMP, and PDF encoding with export receipts
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Gesture events carry logical (view-space) coordinates; the raster
// buffer is the logical size multiplied by the device scale.
//
// # Concurrency
//
// A Pad is single-threaded and synchronous: each sample is processed
// to completion before the next is accepted, and events must arrive
// in order — reordering would corrupt the width smoothing and the
// spine continuity.
package sigpad

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
