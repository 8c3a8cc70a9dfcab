package export

import (
	"bytes"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/sigpad"
)

// pdfMarginMM is the page margin around the embedded signature.
const pdfMarginMM = 20.0

// PDF writes pm to w as a single-page A4 PDF with the signature
// raster embedded, scaled to fit the page width. The raster is
// embedded as-is (there is no vector form of the signature to
// persist).
func PDF(w io.Writer, pm *sigpad.Pixmap) (Result, error) {
	return encode(w, pm, "pdf", func(w io.Writer, pm *sigpad.Pixmap) error {
		var buf bytes.Buffer
		if err := png.Encode(&buf, pm.RGBA()); err != nil {
			return err
		}

		doc := gofpdf.New("P", "mm", "A4", "")
		doc.AddPage()

		pageW, _ := doc.GetPageSize()
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		doc.RegisterImageOptionsReader("signature", opts, &buf)

		// Fit to page width, preserving aspect ratio; height 0 lets
		// gofpdf derive it from the image.
		doc.ImageOptions("signature", pdfMarginMM, pdfMarginMM, pageW-2*pdfMarginMM, 0, false, opts, 0, "")
		return doc.Output(w)
	})
}
