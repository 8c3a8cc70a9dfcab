package sigpad

import "math"

const (
	// velocityFudge converts inter-sample distance into a width
	// sample. It is an empirical constant tied to typical pointer
	// sample density; changing it alters the rendered stroke in
	// non-obvious ways.
	velocityFudge = 50.0

	// widthSmoothing is the exponential smoothing factor applied to
	// the width sample: 50% new sample, 50% history.
	widthSmoothing = 0.5
)

// nextStrokeWidth produces the smoothed stroke width for a segment
// whose endpoints are dist apart, given the previous segment's width
// and the configured width ceiling.
//
// The raw sample is inversely proportional to pointer speed, so fast
// strokes thin out while slow strokes approach the ceiling
// asymptotically. The result is always within (0, ceiling] for
// dist > 0; callers never invoke this with dist == 0 (samples closer
// than the move threshold are discarded before estimation).
func nextStrokeWidth(dist, prevWidth, ceiling float64) float64 {
	sample := velocityFudge/dist*widthSmoothing + prevWidth*widthSmoothing
	return math.Min(ceiling, sample)
}
