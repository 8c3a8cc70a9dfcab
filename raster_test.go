package sigpad

import "testing"

// rectPath builds a closed rectangular path for fill tests.
func rectPath(x, y, w, h float64) *Path {
	p := NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

func TestRasterizerFill(t *testing.T) {
	pm := NewPixmap(100, 100)
	ras := NewRasterizer(100, 100)

	if err := ras.Fill(pm, rectPath(10, 10, 50, 50), Red); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	// Pixel inside the rectangle (allow some tolerance).
	if got := pm.GetPixel(30, 30); got.R < 0.9 || got.A < 0.9 {
		t.Errorf("pixel inside rect = %+v, want red", got)
	}

	// Pixel outside stays untouched.
	if got := pm.GetPixel(5, 5); got.A > 0.01 {
		t.Errorf("pixel outside rect = %+v, want transparent", got)
	}
}

func TestRasterizerFillQuad(t *testing.T) {
	pm := NewPixmap(100, 100)
	ras := NewRasterizer(100, 100)

	// A filled quadratic lens between the chord and the curve.
	p := NewPath()
	p.MoveTo(10, 50)
	p.QuadraticTo(50, 0, 90, 50)
	p.Close()

	if err := ras.Fill(pm, p, Black); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	// The curve midpoint is at y=25; halfway between it and the
	// chord is well inside the lens.
	if got := pm.GetPixel(50, 37); got.A < 0.9 {
		t.Errorf("pixel inside lens = %+v, want ink", got)
	}
	if got := pm.GetPixel(50, 10); got.A > 0.01 {
		t.Errorf("pixel above curve = %+v, want transparent", got)
	}
}

func TestRasterizerCompositesOver(t *testing.T) {
	pm := NewPixmap(100, 100)
	ras := NewRasterizer(100, 100)

	if err := ras.Fill(pm, rectPath(10, 10, 30, 30), Red); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if err := ras.Fill(pm, rectPath(60, 60, 30, 30), Blue); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	// Both fills are visible: earlier ink is not erased.
	if got := pm.GetPixel(20, 20); got.R < 0.9 {
		t.Errorf("first fill erased: %+v", got)
	}
	if got := pm.GetPixel(70, 70); got.B < 0.9 {
		t.Errorf("second fill missing: %+v", got)
	}
}

func TestRasterizerFillEmptyPath(t *testing.T) {
	pm := NewPixmap(10, 10)
	ras := NewRasterizer(10, 10)

	if err := ras.Fill(pm, NewPath(), Black); err != nil {
		t.Fatalf("Fill(empty): %v", err)
	}
	if !pm.Blank() {
		t.Error("empty path produced ink")
	}
}

func TestRasterizerFillOutsideBuffer(t *testing.T) {
	pm := NewPixmap(10, 10)
	ras := NewRasterizer(10, 10)

	if err := ras.Fill(pm, rectPath(100, 100, 20, 20), Black); err != nil {
		t.Fatalf("Fill(outside): %v", err)
	}
	if !pm.Blank() {
		t.Error("out-of-bounds path produced ink")
	}
}
