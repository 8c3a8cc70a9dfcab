package sigpad

import (
	"image"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(3, 4, Red)

	got := pm.GetPixel(3, 4)
	if got.R < 0.99 || got.A < 0.99 {
		t.Errorf("GetPixel = %+v, want opaque red", got)
	}

	// Out-of-bounds access is a no-op / transparent.
	pm.SetPixel(-1, 0, Red)
	if got := pm.GetPixel(-1, 0); got != Transparent {
		t.Errorf("out-of-bounds GetPixel = %+v, want Transparent", got)
	}
}

func TestPixmapBlank(t *testing.T) {
	pm := NewPixmap(4, 4)
	if !pm.Blank() {
		t.Error("fresh pixmap not blank")
	}

	pm.SetPixel(1, 1, Black)
	if pm.Blank() {
		t.Error("pixmap with ink reported blank")
	}

	pm.Clear(Transparent)
	if !pm.Blank() {
		t.Error("cleared pixmap not blank")
	}
}

func TestPixmapRGBASharesStorage(t *testing.T) {
	pm := NewPixmap(4, 4)
	img := pm.RGBA()
	img.Pix[3] = 255 // alpha of pixel (0,0)

	if pm.Blank() {
		t.Error("write through RGBA view not visible in pixmap")
	}
}

func TestPixmapCrop(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(5, 5, Red)

	crop := pm.Crop(image.Rect(4, 4, 7, 7))
	if crop == nil {
		t.Fatal("Crop returned nil")
	}
	if crop.Width() != 3 || crop.Height() != 3 {
		t.Fatalf("Crop size = %dx%d, want 3x3", crop.Width(), crop.Height())
	}
	if got := crop.GetPixel(1, 1); got.R < 0.99 {
		t.Errorf("cropped pixel = %+v, want red", got)
	}

	// Crop clips to the buffer; a fully outside region yields nil.
	if crop := pm.Crop(image.Rect(20, 20, 30, 30)); crop != nil {
		t.Error("Crop outside bounds returned non-nil")
	}

	// A partially outside region is clipped, not rejected.
	if crop := pm.Crop(image.Rect(-5, -5, 5, 5)); crop == nil || crop.Width() != 5 {
		t.Error("Crop did not clip a partially outside region")
	}
}

func TestPixmapToImageCopies(t *testing.T) {
	pm := NewPixmap(4, 4)
	img := pm.ToImage()
	img.Pix[3] = 255

	if !pm.Blank() {
		t.Error("ToImage shares storage with pixmap")
	}
}
