package sigpad

import (
	"errors"
	"log/slog"
	"math"
)

// ErrNotSigned indicates an export was requested while the pad holds
// no ink.
var ErrNotSigned = errors.New("sigpad: nothing to export")

// minMoveDistance is the dedupe threshold for move samples, in
// logical units. Samples closer than this to the previous one are
// appended to the history but draw nothing, keeping the width
// estimator away from near-zero distances.
const minMoveDistance = 1.0

// Pad is a signature capture surface. It turns a stream of pointer
// events into variable-width ink on a persistent raster buffer:
// each move sample becomes a tapered quadratic ribbon whose width is
// simulated from pointer velocity, composited over the ink already
// drawn.
//
// Pad is single-threaded by design: callers must deliver gesture
// events in arrival order, one at a time. There is no undo — ink is
// composited irreversibly, and an abandoned gesture needs no
// rollback.
type Pad struct {
	width  int // logical size
	height int
	scale  float64 // device pixels per logical unit

	style  Style
	pixmap *Pixmap // device-scaled, persists across gestures
	ras    *Rasterizer

	// Stroke state, valid for one continuous gesture.
	points     []Point // every recorded sample, append-only until Clear
	prev       Point   // previous raw sample
	prevEnd    Point   // previous segment's smoothed endpoint
	prevWidth  float64
	pending    Point // gesture start, recorded on the first move
	hasPending bool

	onSignedChanged func(bool)
	onRedraw        func()
}

// NewPad creates a pad of the given logical size. The raster buffer
// is allocated at the device-scaled resolution (see WithScale).
func NewPad(width, height int, opts ...Option) *Pad {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	dw := int(math.Ceil(float64(width) * options.scale))
	dh := int(math.Ceil(float64(height) * options.scale))

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(dw, dh)
	}

	return &Pad{
		width:  width,
		height: height,
		scale:  options.scale,
		style:  options.style,
		pixmap: pixmap,
		ras:    NewRasterizer(pixmap.Width(), pixmap.Height()),
	}
}

// Width returns the logical width of the pad.
func (pad *Pad) Width() int {
	return pad.width
}

// Height returns the logical height of the pad.
func (pad *Pad) Height() int {
	return pad.height
}

// Scale returns the device pixel density of the raster buffer.
func (pad *Pad) Scale() float64 {
	return pad.scale
}

// Style returns the pad's stroke style for inspection or mutation.
// Style changes take effect on the next draw operation.
func (pad *Pad) Style() *Style {
	return &pad.style
}

// Pixmap returns the persistent raster buffer. The buffer is the
// full device-scaled pad size and may contain transparent regions.
func (pad *Pad) Pixmap() *Pixmap {
	return pad.pixmap
}

// IsSigned returns true if any point has been recorded since
// construction or the last Clear.
func (pad *Pad) IsSigned() bool {
	return len(pad.points) > 0
}

// Points returns the recorded samples in insertion order.
func (pad *Pad) Points() []Point {
	return pad.points
}

// SetOnSignedChanged registers the signed-state observer. It is
// invoked with the new value exactly once per transition between
// empty and non-empty, not on every event. At most one observer is
// held, non-owning; pass nil to unregister.
func (pad *Pad) SetOnSignedChanged(fn func(signed bool)) {
	pad.onSignedChanged = fn
}

// OnSignedChanged returns the registered signed-state observer.
func (pad *Pad) OnSignedChanged() func(bool) {
	return pad.onSignedChanged
}

// SetOnRedraw registers a fire-and-forget repaint signal, invoked
// after every composite onto the raster buffer. Redraw requests are
// idempotent; pass nil to unregister.
func (pad *Pad) SetOnRedraw(fn func()) {
	pad.onRedraw = fn
}

// Begin starts a gesture at p. It seeds the stroke state but records
// no point yet — the start point enters the history on the first
// move, and a gesture that never moves is delivered as a Tap instead.
func (pad *Pad) Begin(p Point) {
	pad.prev = p
	pad.prevEnd = p
	pad.prevWidth = 0
	pad.pending = p
	pad.hasPending = true
}

// Move advances the gesture to p. Samples within minMoveDistance of
// the previous one are appended to the history (they still count for
// ink bounds) but draw nothing. Anything farther produces one tapered
// segment from the previous smoothed endpoint to the midpoint of the
// previous and current samples, with the previous sample as the
// curve's control point.
func (pad *Pad) Move(p Point) {
	if pad.hasPending {
		pad.appendPoint(pad.pending)
		pad.hasPending = false
	}

	dist := p.Distance(pad.prev)
	if dist < minMoveDistance {
		pad.appendPoint(p)
		return
	}

	w := nextStrokeWidth(dist, pad.prevWidth, pad.style.Width())
	end := Midpoint(pad.prev, p)
	pad.drawSegment(pad.prevEnd, pad.prev, end, pad.prevWidth, w)

	pad.prev = p
	pad.prevEnd = end
	pad.prevWidth = w
	pad.appendPoint(p)
}

// End finishes the gesture at p. The final point is recorded; no
// further ink is drawn.
func (pad *Pad) End(p Point) {
	pad.appendPoint(p)
}

// Cancel abandons the current gesture. Ink already composited stays
// — there is no rollback — so cancellation is equivalent to a normal
// end without a final sample.
func (pad *Pad) Cancel() {}

// Tap records a zero-length gesture: the point is appended and a
// fixed-diameter dot is drawn in place of a curve.
func (pad *Pad) Tap(p Point) {
	pad.appendPoint(p)
	pad.drawDot(p)
}

// Clear erases the raster buffer and the recorded points together
// and resets all stroke state. Afterwards the pad is
// indistinguishable from a freshly constructed one.
func (pad *Pad) Clear() {
	pad.setPoints(pad.points[:0])
	pad.pixmap.Clear(Transparent)
	pad.prev = Point{}
	pad.prevEnd = Point{}
	pad.prevWidth = 0
	pad.hasPending = false
	pad.requestRedraw()
}

// InkBounds returns the rectangle covering all recorded points in
// device pixels, outset by the device-scaled width ceiling so
// anti-aliased edges are not clipped. With no points recorded it
// returns the full buffer bounds.
func (pad *Pad) InkBounds() Rect {
	bounds, ok := boundsOf(pad.points)
	if !ok {
		return NewRect(Pt(0, 0), Pt(float64(pad.pixmap.Width()), float64(pad.pixmap.Height())))
	}
	return bounds.Scale(pad.scale).Outset(pad.style.Width() * pad.scale)
}

// ExportCroppedImage returns a copy of the raster buffer cropped to
// the ink bounds. It returns ErrNotSigned if the buffer holds no ink,
// so callers can distinguish "nothing signed" from a trivial crop.
func (pad *Pad) ExportCroppedImage() (*Pixmap, error) {
	if pad.pixmap.Blank() {
		return nil, ErrNotSigned
	}
	crop := pad.pixmap.Crop(pad.InkBounds().ImageRect())
	if crop == nil {
		return nil, ErrNotSigned
	}
	return crop, nil
}

// setPoints is the single mutation site for the sample list. It
// raises the signed-state notification whenever emptiness flips.
func (pad *Pad) setPoints(pts []Point) {
	was := len(pad.points) > 0
	pad.points = pts
	now := len(pts) > 0
	if was != now && pad.onSignedChanged != nil {
		pad.onSignedChanged(now)
	}
}

func (pad *Pad) appendPoint(p Point) {
	pad.setPoints(append(pad.points, p))
}

// drawSegment composites one tapered ribbon onto the raster buffer.
// Fully degenerate segments, with all three anchors coincident, are
// skipped. A segment whose start and control alone coincide (the
// first segment of every gesture) still draws: its start offsets
// collapse onto the anchor instead of producing NaN directions.
func (pad *Pad) drawSegment(start, control, end Point, startWidth, endWidth float64) {
	if start == control && control == end {
		Logger().Warn("sigpad: skipping degenerate segment", slog.Float64("x", start.X), slog.Float64("y", start.Y))
		return
	}

	outline := ribbonOutline(start, control, end, startWidth, endWidth).Scale(pad.scale)
	ink := pad.style.ink()
	_ = pad.ras.Fill(pad.pixmap, outline, ink)
	_ = pad.ras.Fill(pad.pixmap, hairlineOutline(outline, 1), ink)

	Logger().Debug("sigpad: segment",
		slog.Float64("startWidth", startWidth),
		slog.Float64("endWidth", endWidth))
	pad.requestRedraw()
}

// drawDot composites the tap dot primitive onto the raster buffer.
func (pad *Pad) drawDot(p Point) {
	outline := dotOutline(p, pad.style.DotSize()).Scale(pad.scale)
	_ = pad.ras.Fill(pad.pixmap, outline, pad.style.ink())
	pad.requestRedraw()
}

func (pad *Pad) requestRedraw() {
	if pad.onRedraw != nil {
		pad.onRedraw()
	}
}
