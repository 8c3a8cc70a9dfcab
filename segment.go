package sigpad

import "math"

// offsets returns the two points half a width either side of origin,
// perpendicular to the origin→toward direction. If origin and toward
// coincide the direction normalizes to zero and both offsets collapse
// onto origin.
func offsets(origin, toward Point, width float64) (Point, Point) {
	per := toward.Sub(origin).Normalize().Perp().Mul(width / 2)
	return origin.Add(per), origin.Sub(per)
}

// ribbonOutline builds the closed outline of one tapered stroke
// segment: a quadratic Bezier spine from start to end with the given
// control point, expanded by half the local width on each side.
//
// Offsets are computed at the three anchors — start relative to the
// start→control direction, control relative to control→start, and end
// relative to end→control — then joined by two quadratic curves and
// two straight edges into a single closed ribbon. The control anchor
// uses the mean of the start and end widths.
//
// When a pair's direction cannot be normalized (coincident points)
// its offsets collapse onto the anchor, so the outline stays finite;
// callers reject segments where all three anchors coincide.
func ribbonOutline(start, control, end Point, startWidth, endWidth float64) *Path {
	controlWidth := (startWidth + endWidth) / 2

	s1, s2 := offsets(start, control, startWidth)
	c1, c2 := offsets(control, start, controlWidth)
	e1, e2 := offsets(end, control, endWidth)

	p := NewPath()
	p.MoveTo(s1.X, s1.Y)
	p.QuadraticTo(c2.X, c2.Y, e2.X, e2.Y)
	p.LineTo(e1.X, e1.Y)
	p.QuadraticTo(c1.X, c1.Y, s2.X, s2.Y)
	p.LineTo(s1.X, s1.Y)
	p.Close()
	return p
}

// dotOutline builds a closed circular outline of the given diameter
// centered on p, approximated by eight quadratic arcs. Used for the
// single-tap dot primitive.
func dotOutline(center Point, diameter float64) *Path {
	r := diameter / 2
	const n = 8
	// Control points sit at r/cos(pi/n) so each arc touches the
	// true circle at its midpoint.
	k := r / math.Cos(math.Pi/n)

	p := NewPath()
	p.MoveTo(center.X+r, center.Y)
	for i := 1; i <= n; i++ {
		theta := 2 * math.Pi * float64(i) / n
		thetaC := theta - math.Pi/n
		p.QuadraticTo(
			center.X+k*math.Cos(thetaC), center.Y+k*math.Sin(thetaC),
			center.X+r*math.Cos(theta), center.Y+r*math.Sin(theta),
		)
	}
	p.Close()
	return p
}

// hairlineOutline expands every edge of the flattened path into a
// ribbon of the given width, producing the fill geometry for a
// hairline stroke pass over a ribbon outline. The overlapping edge
// quads merge under the non-zero winding rule.
func hairlineOutline(path *Path, width float64) *Path {
	pts := path.flatten(0.25)
	out := NewPath()
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if a == b {
			continue
		}
		a1, a2 := offsets(a, b, width)
		b1, b2 := offsets(b, a, width)
		out.MoveTo(a1.X, a1.Y)
		out.LineTo(b2.X, b2.Y)
		out.LineTo(b1.X, b1.Y)
		out.LineTo(a2.X, a2.Y)
		out.Close()
	}
	return out
}
