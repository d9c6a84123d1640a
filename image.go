package pxgrid

import "github.com/kvidal/pxgrid/imageutil"

// Image is a tightly-packed, row-major RGBA source buffer with straight
// alpha, as described by the RgbaImage entity: width*height*4 bytes, one
// byte per channel per pixel, no padding between rows.
type Image struct {
	Width  int
	Height int
	RGBA   []uint8
}

// FromRGBAImage converts an imageutil.RGBAImage (as produced by
// imageutil.LoadImage) into the tightly-packed Image the pipeline expects.
// A freshly constructed imageutil.RGBAImage always has Stride == Width*4,
// so this is a straight copy of Pix.
func FromRGBAImage(img *imageutil.RGBAImage) Image {
	return Image{
		Width:  img.Width(),
		Height: img.Height(),
		RGBA:   append([]uint8(nil), img.Pix...),
	}
}

// ToRGBAImage converts an Image back to an imageutil.RGBAImage for display
// or file I/O.
func (img Image) ToRGBAImage() *imageutil.RGBAImage {
	out := imageutil.NewRGBAImage(img.Width, img.Height)
	copy(out.Pix, img.RGBA)
	return out
}

func (img Image) checkDimensions() error {
	if img.Width <= 0 || img.Height <= 0 {
		return &Error{Kind: InvalidDimensions, Stage: "input", Err: errInvalidSize}
	}
	if len(img.RGBA) != img.Width*img.Height*4 {
		return &Error{Kind: InvalidDimensions, Stage: "input", Err: errBufferLength}
	}
	return nil
}
