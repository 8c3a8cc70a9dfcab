package sigpad

// Style holds the cosmetic stroke configuration of a Pad: the width
// ceiling, the tap dot size, the ink color, and the ink alpha.
//
// All setters are permissive: an out-of-range value is silently
// rejected and the previous value retained, so a bad cosmetic setting
// can never fail a gesture. Changes take effect on the next draw
// operation.
type Style struct {
	width   float64 // stroke width ceiling, > 0
	dotSize float64 // tap dot diameter, > 0
	color   RGBA
	alpha   float64 // in [0, 1]
}

// DefaultStyle returns the default stroke style: a 4-unit width
// ceiling, 3-unit dot, opaque black ink.
func DefaultStyle() Style {
	return Style{
		width:   4,
		dotSize: 3,
		color:   Black,
		alpha:   1,
	}
}

// Width returns the stroke width ceiling.
func (s *Style) Width() float64 {
	return s.width
}

// SetWidth sets the stroke width ceiling.
// Non-positive values are rejected.
func (s *Style) SetWidth(w float64) {
	if w > 0 {
		s.width = w
	}
}

// DotSize returns the diameter of the dot drawn for a tap.
func (s *Style) DotSize() float64 {
	return s.dotSize
}

// SetDotSize sets the tap dot diameter.
// Non-positive values are rejected.
func (s *Style) SetDotSize(d float64) {
	if d > 0 {
		s.dotSize = d
	}
}

// Color returns the ink color.
func (s *Style) Color() RGBA {
	return s.color
}

// SetColor sets the ink color.
func (s *Style) SetColor(c RGBA) {
	s.color = c
}

// SetColorHex sets the ink color from a hex string ("#RRGGBB" etc).
func (s *Style) SetColorHex(hex string) {
	s.color = Hex(hex)
}

// Alpha returns the ink alpha.
func (s *Style) Alpha() float64 {
	return s.alpha
}

// SetAlpha sets the ink alpha. Values outside [0, 1] are rejected
// and the previous alpha retained.
func (s *Style) SetAlpha(a float64) {
	if a >= 0 && a <= 1 {
		s.alpha = a
	}
}

// ink returns the effective drawing color: the configured color with
// its alpha scaled by the style alpha.
func (s *Style) ink() RGBA {
	c := s.color
	c.A *= s.alpha
	return c
}
