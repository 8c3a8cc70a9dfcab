package sigpad

// Option configures a Pad during creation.
// Use functional options to customize Pad behavior.
//
// Example:
//
//	// Default: scale 1, DefaultStyle
//	pad := sigpad.NewPad(300, 200)
//
//	// Retina-density buffer with blue ink
//	style := sigpad.DefaultStyle()
//	style.SetColor(sigpad.Blue)
//	pad := sigpad.NewPad(300, 200, sigpad.WithScale(2), sigpad.WithStyle(style))
type Option func(*padOptions)

// padOptions holds optional configuration for Pad creation.
type padOptions struct {
	scale  float64
	style  Style
	pixmap *Pixmap
}

// defaultOptions returns the default pad options.
func defaultOptions() padOptions {
	return padOptions{
		scale: 1,
		style: DefaultStyle(),
	}
}

// WithScale sets the device pixel density: the raster buffer is the
// logical size multiplied by scale. Non-positive values are ignored.
func WithScale(scale float64) Option {
	return func(o *padOptions) {
		if scale > 0 {
			o.scale = scale
		}
	}
}

// WithStyle sets the initial stroke style.
func WithStyle(style Style) Option {
	return func(o *padOptions) {
		o.style = style
	}
}

// WithPixmap sets a custom raster buffer for the Pad.
// The pixmap dimensions should match the device-scaled Pad
// dimensions. Use this to draw onto an existing buffer.
func WithPixmap(pm *Pixmap) Option {
	return func(o *padOptions) {
		o.pixmap = pm
	}
}
