package imageutil

// Sobel computes the horizontal and vertical gradients of a flat grayscale
// buffer using the standard 3x3 Sobel operators:
//
//	Gx = [-1 0 1; -2 0 2; -1 0 1]
//	Gy = [-1 -2 -1; 0 0 0; 1 2 1]
//
// Border pixels use clamp-to-edge neighbors. gray must have length
// width*height; both returned slices have the same length.
func Sobel(gray []float32, width, height int) (gx, gy []float32) {
	gx = make([]float32, len(gray))
	gy = make([]float32, len(gray))

	at := func(x, y int) float32 {
		x = clampInt(x, 0, width-1)
		y = clampInt(y, 0, height-1)
		return gray[y*width+x]
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a00 := at(x-1, y-1)
			a01 := at(x, y-1)
			a02 := at(x+1, y-1)
			a10 := at(x-1, y)
			a12 := at(x+1, y)
			a20 := at(x-1, y+1)
			a21 := at(x, y+1)
			a22 := at(x+1, y+1)

			idx := y*width + x
			gx[idx] = (-a00 + a02) + (-2*a10 + 2*a12) + (-a20 + a22)
			gy[idx] = (-a00 - 2*a01 - a02) + (a20 + 2*a21 + a22)
		}
	}

	return gx, gy
}
