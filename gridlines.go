package pxgrid

// DetectGridLines derives vertical and horizontal grid-line positions from
// a heatmap (§4.9): sum u8 into column/row profiles, box-smooth each by
// smooth, then run DetectPeaks1D on each with gapSize=s.
func DetectGridLines(u8 []uint8, width, height int, s int, gapTolerance uint32, minEnergy float64, smooth, windowSize uint32) (xLines, yLines []uint32, err error) {
	if width <= 0 || height <= 0 {
		return nil, nil, invalidDims("detect_grid_lines", "width and height must be > 0")
	}
	if len(u8) != width*height {
		return nil, nil, invalidDims("detect_grid_lines", "heatmap length does not match width*height")
	}
	if s <= 0 {
		return nil, nil, invalidParam("detect_grid_lines", "s must be > 0")
	}

	px := boxSmooth(columnProfile(u8, width, height), int(smooth))
	py := boxSmooth(rowProfile(u8, width, height), int(smooth))

	xLines, err = DetectPeaks1D(px, uint32(s), gapTolerance, minEnergy, windowSize)
	if err != nil {
		return nil, nil, err
	}
	yLines, err = DetectPeaks1D(py, uint32(s), gapTolerance, minEnergy, windowSize)
	if err != nil {
		return nil, nil, err
	}
	return xLines, yLines, nil
}
