package pxgrid

import "github.com/kvidal/pxgrid/imageutil"

// DrawGridOverlay renders xLines/yLines as 1-pixel-wide lines atop a copy
// of img, for diagnostic inspection (the CLI's debug-overlay mode). It uses
// plain pixel writes rather than a drawing library, matching the teacher's
// SetRGB-loop idiom for simple raster operations.
func DrawGridOverlay(img Image, xLines, yLines []uint32, color [3]uint8) (*imageutil.RGBAImage, error) {
	if err := img.checkDimensions(); err != nil {
		return nil, err
	}
	out := img.ToRGBAImage()

	for _, x := range xLines {
		xi := int(x)
		if xi >= img.Width {
			continue
		}
		for y := 0; y < img.Height; y++ {
			out.SetRGB(xi, y, imageutil.RGB{R: color[0], G: color[1], B: color[2]})
		}
	}
	for _, y := range yLines {
		yi := int(y)
		if yi >= img.Height {
			continue
		}
		for x := 0; x < img.Width; x++ {
			out.SetRGB(x, yi, imageutil.RGB{R: color[0], G: color[1], B: color[2]})
		}
	}
	return out, nil
}
