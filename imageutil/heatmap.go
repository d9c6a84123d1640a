package imageutil

import "math"

const heatmapHistBins = 1024

// QuantileApprox estimates the q-th quantile (0..1) of v using a 1024-bin
// histogram over the observed [min, max] range, linearly interpolating
// within the containing bin. Runs in O(len(v)).
func QuantileApprox(v []float32, q float64) float32 {
	if len(v) == 0 {
		return 0
	}

	lo, hi := v[0], v[0]
	for _, x := range v {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	if hi <= lo {
		return lo
	}

	var hist [heatmapHistBins]int
	binWidth := (hi - lo) / float32(heatmapHistBins)
	for _, x := range v {
		b := int((x - lo) / binWidth)
		if b >= heatmapHistBins {
			b = heatmapHistBins - 1
		}
		if b < 0 {
			b = 0
		}
		hist[b]++
	}

	target := q * float64(len(v))
	var cum int
	for b, c := range hist {
		next := cum + c
		if float64(next) >= target {
			// Linear interpolation within the bin.
			frac := 0.0
			if c > 0 {
				frac = (target - float64(cum)) / float64(c)
			}
			return lo + (float32(b)+float32(frac))*binWidth
		}
		cum = next
	}
	return hi
}

// ToHeatmapU8 normalizes energy to 8-bit using a robust [2%, 98%] quantile
// window: values at or below the 2nd percentile map to 0, values at or above
// the 98th percentile map to 255. If the window collapses (hi <= lo, i.e.
// the input is effectively constant) the result is all zeros.
func ToHeatmapU8(e []float32) []uint8 {
	out := make([]uint8, len(e))

	lo := QuantileApprox(e, 0.02)
	hi := QuantileApprox(e, 0.98)
	if hi <= lo {
		return out
	}

	span := hi - lo
	for i, v := range e {
		n := clampFloat32((v-lo)/span, 0, 1)
		out[i] = uint8(math.Round(float64(n) * 255))
	}
	return out
}
