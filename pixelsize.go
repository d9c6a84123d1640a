package pxgrid

// DetectPixelSize estimates the hidden grid's period (§4.7) by scoring
// candidate periods s in [minS, maxS] against the unbiased autocorrelation
// of the zero-mean column and row profiles of the heatmap, returning the
// s with the highest combined score. Ties favor the smaller s. A constant
// (degenerate) heatmap falls back to minS.
func DetectPixelSize(u8 []uint8, width, height int, minS, maxS uint32) (uint32, error) {
	if width <= 0 || height <= 0 {
		return 0, invalidDims("detect_pixel_size", "width and height must be > 0")
	}
	if len(u8) != width*height {
		return 0, invalidDims("detect_pixel_size", "heatmap length does not match width*height")
	}
	limit := uint32(min(width, height) / 2)
	if minS < 1 || minS > maxS || maxS > limit {
		return 0, invalidDims("detect_pixel_size", "require 1 <= minS <= maxS <= min(W,H)/2")
	}

	px := zeroMean(columnProfile(u8, width, height))
	py := zeroMean(rowProfile(u8, width, height))

	if isAllZero(px) && isAllZero(py) {
		return minS, nil
	}

	best := minS
	var bestScore float64
	first := true
	for s := minS; s <= maxS; s++ {
		score := unbiasedAutocorr(px, int(s)) + unbiasedAutocorr(py, int(s))
		if first || score > bestScore {
			bestScore = score
			best = s
			first = false
		}
	}
	return best, nil
}

func zeroMean(p Profile) Profile {
	mean := profileMean(p)
	out := make(Profile, len(p))
	for i, v := range p {
		out[i] = v - mean
	}
	return out
}

func isAllZero(p Profile) bool {
	for _, v := range p {
		if v != 0 {
			return false
		}
	}
	return true
}

// unbiasedAutocorr computes the autocorrelation of x at lag s, normalized
// by the number of overlapping terms (N-s) rather than N, which is the
// "unbiased" estimator.
func unbiasedAutocorr(x Profile, s int) float64 {
	n := len(x)
	if s <= 0 || s >= n {
		return 0
	}
	var sum float64
	for i := 0; i < n-s; i++ {
		sum += x[i] * x[i+s]
	}
	return sum / float64(n-s)
}
