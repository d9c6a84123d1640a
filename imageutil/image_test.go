package imageutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewRGBAImage(t *testing.T) {
	img := NewRGBAImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
}

func TestRGBAImageGetSetRGB(t *testing.T) {
	img := NewRGBAImage(10, 10)
	c := RGB{R: 100, G: 150, B: 200}
	img.SetRGB(5, 5, c)

	got := img.GetRGB(5, 5)
	if got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
}

func TestRGBAImageClone(t *testing.T) {
	img := NewRGBAImage(10, 10)
	img.SetRGB(5, 5, RGB{R: 255, G: 0, B: 0})

	clone := img.Clone()
	if clone.GetRGB(5, 5) != img.GetRGB(5, 5) {
		t.Error("Clone should have same pixel values")
	}

	// Modify clone, original should be unchanged
	clone.SetRGB(5, 5, RGB{R: 0, G: 255, B: 0})
	if img.GetRGB(5, 5).G != 0 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestGray01KnownValues(t *testing.T) {
	img := NewRGBAImage(1, 1)

	img.SetRGB(0, 0, RGB{R: 255, G: 255, B: 255})
	if v := Gray01(img.Pix, 1, 1)[0]; v < 0.99 || v > 1.0 {
		t.Errorf("white pixel should convert to ~1.0, got %f", v)
	}

	img.SetRGB(0, 0, RGB{R: 0, G: 0, B: 0})
	if v := Gray01(img.Pix, 1, 1)[0]; v != 0 {
		t.Errorf("black pixel should convert to 0, got %f", v)
	}

	// 0.299 * 255 / 255 = 0.299
	img.SetRGB(0, 0, RGB{R: 255, G: 0, B: 0})
	if v := Gray01(img.Pix, 1, 1)[0]; v < 0.29 || v > 0.31 {
		t.Errorf("red pixel should convert to ~0.299, got %f", v)
	}
}

func TestGray01IgnoresAlpha(t *testing.T) {
	rgba := []uint8{100, 150, 200, 0}
	a := Gray01(rgba, 1, 1)[0]
	rgba[3] = 255
	b := Gray01(rgba, 1, 1)[0]
	if a != b {
		t.Errorf("alpha should not affect luminance: got %f and %f", a, b)
	}
}

func TestResize(t *testing.T) {
	img := CreateGradientImage(100, 100)

	// Downscale
	resized := Resize(img, 50, 50, InterpolationArea)
	if resized.Width() != 50 || resized.Height() != 50 {
		t.Errorf("Expected 50x50, got %dx%d", resized.Width(), resized.Height())
	}

	// Upscale
	resized = Resize(img, 200, 200, InterpolationLinear)
	if resized.Width() != 200 || resized.Height() != 200 {
		t.Errorf("Expected 200x200, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestLoadSaveImage(t *testing.T) {
	// Create temp directory
	tmpDir := t.TempDir()

	// Create test image
	img := CreateGradientImage(64, 64)

	// Save to PNG
	pngPath := filepath.Join(tmpDir, "test.png")
	err := SaveImage(img.RGBA, pngPath)
	if err != nil {
		t.Fatalf("Failed to save PNG: %v", err)
	}

	// Load back
	loaded, err := LoadImage(pngPath)
	if err != nil {
		t.Fatalf("Failed to load PNG: %v", err)
	}

	// PNG should be lossless
	mse := CalculateMSE(img, loaded)
	if mse > 0.01 {
		t.Errorf("PNG should be lossless, MSE=%f", mse)
	}
}

func TestCalculateMSE(t *testing.T) {
	img1 := NewRGBAImage(10, 10)
	img2 := NewRGBAImage(10, 10)

	// Same images should have MSE of 0
	mse := CalculateMSE(img1, img2)
	if mse != 0 {
		t.Errorf("Identical images should have MSE=0, got %f", mse)
	}

	// Different images
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img1.SetRGB(x, y, RGB{R: 0, G: 0, B: 0})
			img2.SetRGB(x, y, RGB{R: 10, G: 10, B: 10})
		}
	}
	mse = CalculateMSE(img1, img2)
	expected := 100.0 // 10^2 = 100
	if mse != expected {
		t.Errorf("Expected MSE=%f, got %f", expected, mse)
	}
}

// TestSaveTestImages saves test images to testdata directory for visual inspection.
// Run with: SAVE_TEST_IMAGES=1 go test -run TestSaveTestImages -v
func TestSaveTestImages(t *testing.T) {
	if os.Getenv("SAVE_TEST_IMAGES") != "1" {
		t.Skip("Set SAVE_TEST_IMAGES=1 to generate test images")
	}

	testdataDir := "../testdata"
	os.MkdirAll(testdataDir, 0755)

	gradient := CreateGradientImage(256, 256)
	SaveImage(gradient.RGBA, filepath.Join(testdataDir, "gradient.png"))

	vgradient := CreateVerticalGradientImage(256, 256)
	SaveImage(vgradient.RGBA, filepath.Join(testdataDir, "vgradient.png"))

	checker := CreateCheckerboardImage(256, 256, 32)
	SaveImage(checker.RGBA, filepath.Join(testdataDir, "checkerboard.png"))

	solid := CreateSolidImage(256, 256, RGB{R: 128, G: 128, B: 128})
	SaveImage(solid.RGBA, filepath.Join(testdataDir, "solid.png"))

	t.Log("Test images saved to testdata/")
}
