// Package imageutil provides pure Go image processing primitives:
// pixel buffer wrappers, grayscale conversion, separable convolution,
// Sobel gradients, quantile-based heatmap encoding, resizing, and file I/O.
package imageutil

import (
	"image"
	"image/color"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to color.RGBA for use with standard library.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBFromColor converts a color.Color to RGB.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage converts any image.Image to RGBAImage.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return rgba
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the RGB value at (x, y).
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// Clone creates a deep copy of the image.
func (img *RGBAImage) Clone() *RGBAImage {
	clone := NewRGBAImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}
