package export

import (
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"

	"github.com/gogpu/sigpad"
)

// PNG writes pm to w as a PNG image.
func PNG(w io.Writer, pm *sigpad.Pixmap) (Result, error) {
	return encode(w, pm, "png", func(w io.Writer, pm *sigpad.Pixmap) error {
		return png.Encode(w, pm.RGBA())
	})
}

// JPEG writes pm to w as a JPEG image with the given quality (1-100).
// JPEG has no alpha channel, so transparent regions come out black;
// composite the signature over a background first if that matters.
func JPEG(w io.Writer, pm *sigpad.Pixmap, quality int) (Result, error) {
	return encode(w, pm, "jpeg", func(w io.Writer, pm *sigpad.Pixmap) error {
		return jpeg.Encode(w, pm.RGBA(), &jpeg.Options{Quality: quality})
	})
}

// BMP writes pm to w as an uncompressed BMP image.
func BMP(w io.Writer, pm *sigpad.Pixmap) (Result, error) {
	return encode(w, pm, "bmp", func(w io.Writer, pm *sigpad.Pixmap) error {
		return bmp.Encode(w, pm.RGBA())
	})
}
