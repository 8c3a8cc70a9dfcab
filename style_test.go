package sigpad

import "testing"

func TestStyleAlphaRejectsOutOfRange(t *testing.T) {
	s := DefaultStyle()
	s.SetAlpha(0.8)

	s.SetAlpha(-0.1)
	if s.Alpha() != 0.8 {
		t.Errorf("Alpha after -0.1 = %v, want 0.8 retained", s.Alpha())
	}

	s.SetAlpha(1.1)
	if s.Alpha() != 0.8 {
		t.Errorf("Alpha after 1.1 = %v, want 0.8 retained", s.Alpha())
	}

	s.SetAlpha(0)
	if s.Alpha() != 0 {
		t.Errorf("Alpha = %v, want boundary value 0 accepted", s.Alpha())
	}
	s.SetAlpha(1)
	if s.Alpha() != 1 {
		t.Errorf("Alpha = %v, want boundary value 1 accepted", s.Alpha())
	}
}

func TestStyleWidthRejectsNonPositive(t *testing.T) {
	s := DefaultStyle()
	s.SetWidth(6)

	s.SetWidth(0)
	if s.Width() != 6 {
		t.Errorf("Width after 0 = %v, want 6 retained", s.Width())
	}
	s.SetWidth(-2)
	if s.Width() != 6 {
		t.Errorf("Width after -2 = %v, want 6 retained", s.Width())
	}
}

func TestStyleDotSizeRejectsNonPositive(t *testing.T) {
	s := DefaultStyle()
	s.SetDotSize(5)
	s.SetDotSize(-1)
	if s.DotSize() != 5 {
		t.Errorf("DotSize = %v, want 5 retained", s.DotSize())
	}
}

func TestStyleInk(t *testing.T) {
	s := DefaultStyle()
	s.SetColor(RGBA{R: 1, G: 0, B: 0, A: 1})
	s.SetAlpha(0.5)

	ink := s.ink()
	if ink.A != 0.5 || ink.R != 1 {
		t.Errorf("ink = %+v, want red at alpha 0.5", ink)
	}
}

func TestStyleSetColorHex(t *testing.T) {
	s := DefaultStyle()
	s.SetColorHex("#0000FF")
	if c := s.Color(); c.B < 0.99 || c.R > 0.01 {
		t.Errorf("Color = %+v, want blue", c)
	}
}
