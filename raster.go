package sigpad

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Rasterizer fills closed paths into a pixmap with anti-aliasing,
// compositing source-over so earlier ink stays visible. It wraps
// golang.org/x/image/vector and reuses its edge buffers across fills.
//
// Rasterizer is not safe for concurrent use; the Pad serializes all
// drawing onto it.
type Rasterizer struct {
	ras vector.Rasterizer
}

// NewRasterizer creates a rasterizer for a buffer of the given size.
// The size only pre-sizes internal buffers; each Fill re-targets the
// rasterizer at the path's own bounding box.
func NewRasterizer(width, height int) *Rasterizer {
	r := &Rasterizer{}
	r.ras.Reset(width, height)
	return r
}

// Fill rasterizes path into pm with the given color using the
// non-zero winding rule. Open subpaths are closed implicitly.
// Filling an empty path or a path entirely outside the buffer is a
// no-op.
func (r *Rasterizer) Fill(pm *Pixmap, path *Path, c RGBA) error {
	if len(path.Elements()) == 0 {
		return nil
	}

	// Rasterize only the path's pixel bounding box, outset by one
	// pixel for anti-aliased edges.
	clip := pathBounds(path).Outset(1).ImageRect().Intersect(pm.Bounds())
	if clip.Empty() {
		return nil
	}

	r.ras.Reset(clip.Dx(), clip.Dy())
	r.ras.DrawOp = draw.Over

	ox := float32(clip.Min.X)
	oy := float32(clip.Min.Y)
	open := false
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				r.ras.ClosePath()
			}
			r.ras.MoveTo(float32(e.Point.X)-ox, float32(e.Point.Y)-oy)
			open = true
		case LineTo:
			r.ras.LineTo(float32(e.Point.X)-ox, float32(e.Point.Y)-oy)
		case QuadTo:
			r.ras.QuadTo(
				float32(e.Control.X)-ox, float32(e.Control.Y)-oy,
				float32(e.Point.X)-ox, float32(e.Point.Y)-oy,
			)
		case Close:
			if open {
				r.ras.ClosePath()
				open = false
			}
		}
	}
	if open {
		r.ras.ClosePath()
	}

	src := image.NewUniform(c.Color())
	r.ras.Draw(pm.RGBA(), clip, src, image.Point{})
	return nil
}

// pathBounds returns a rectangle covering every anchor and control
// point of the path. A quadratic curve lies inside the convex hull of
// its anchors and control point, so this bound is conservative.
func pathBounds(p *Path) Rect {
	r := Rect{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	grow := func(pt Point) {
		r.Min.X = math.Min(r.Min.X, pt.X)
		r.Min.Y = math.Min(r.Min.Y, pt.Y)
		r.Max.X = math.Max(r.Max.X, pt.X)
		r.Max.Y = math.Max(r.Max.Y, pt.Y)
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			grow(e.Point)
		case LineTo:
			grow(e.Point)
		case QuadTo:
			grow(e.Control)
			grow(e.Point)
		}
	}
	return r
}
