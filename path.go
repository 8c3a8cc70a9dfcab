package sigpad

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector outline built from move, line, and
// quadratic curve elements. Stroke ribbons and dots are expressed as
// closed paths and handed to the Rasterizer for filling.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Scale returns a copy of the path with every coordinate multiplied
// by s. Used to map logical coordinates onto the device-scaled buffer.
func (p *Path) Scale(s float64) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := e.Point.Mul(s)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := e.Point.Mul(s)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := e.Control.Mul(s)
			pt := e.Point.Mul(s)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// flatten converts the path into a polyline, subdividing quadratic
// curves to within tol of the true curve.
func (p *Path) flatten(tol float64) []Point {
	var points []Point
	var current Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			current = e.Point
			points = append(points, current)

		case LineTo:
			current = e.Point
			points = append(points, current)

		case QuadTo:
			points = append(points, flattenQuad(current, e.Control, e.Point, tol)...)
			current = e.Point

		case Close:
			if len(points) > 0 {
				points = append(points, points[0])
			}
		}
	}

	return points
}

// flattenQuad subdivides a quadratic Bezier into line segment
// endpoints (excluding p0), using a flatness-driven segment count.
func flattenQuad(p0, ctrl, p1 Point, tol float64) []Point {
	// The deviation of a quad from its chord is at most half the
	// distance from the control point to the chord midpoint.
	dev := ctrl.Sub(Midpoint(p0, p1)).Length() / 2
	n := 1
	if dev > tol {
		n = int(1 + dev/tol)
		if n > 32 {
			n = 32
		}
	}

	out := make([]Point, 0, n)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		a := p0.Lerp(ctrl, t)
		b := ctrl.Lerp(p1, t)
		out = append(out, a.Lerp(b, t))
	}
	return out
}
