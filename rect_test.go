package sigpad

import (
	"image"
	"testing"
)

func TestNewRectNormalizes(t *testing.T) {
	r := NewRect(Pt(10, 20), Pt(0, 5))
	if r.Min.X != 0 || r.Min.Y != 5 || r.Max.X != 10 || r.Max.Y != 20 {
		t.Errorf("NewRect = %+v", r)
	}
}

func TestRectOutset(t *testing.T) {
	r := NewRect(Pt(10, 10), Pt(20, 20)).Outset(5)
	if r.Min.X != 5 || r.Min.Y != 5 || r.Max.X != 25 || r.Max.Y != 25 {
		t.Errorf("Outset = %+v", r)
	}
}

func TestRectScale(t *testing.T) {
	r := NewRect(Pt(1, 2), Pt(3, 4)).Scale(2)
	if r.Min.X != 2 || r.Min.Y != 4 || r.Max.X != 6 || r.Max.Y != 8 {
		t.Errorf("Scale = %+v", r)
	}
}

func TestRectImageRect(t *testing.T) {
	got := NewRect(Pt(1.2, 2.7), Pt(3.1, 4.0)).ImageRect()
	want := image.Rect(1, 2, 4, 4)
	if got != want {
		t.Errorf("ImageRect = %v, want %v", got, want)
	}
}

func TestBoundsOf(t *testing.T) {
	if _, ok := boundsOf(nil); ok {
		t.Error("boundsOf(nil) reported bounds")
	}

	r, ok := boundsOf([]Point{Pt(5, 5), Pt(-1, 10), Pt(3, 2)})
	if !ok {
		t.Fatal("boundsOf returned no bounds")
	}
	if r.Min.X != -1 || r.Min.Y != 2 || r.Max.X != 5 || r.Max.Y != 10 {
		t.Errorf("boundsOf = %+v", r)
	}
}
