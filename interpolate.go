package pxgrid

import "math"

// InterpolateLines fills in missing interior grid lines (§4.10). The
// typical spacing is the median gap between consecutive lines; per the
// resolution of the degenerate-median open question, a zero or non-finite
// median gap falls back to fallbackGap. Any consecutive pair whose gap
// exceeds 1.5x the typical spacing gets evenly spaced interior lines
// inserted between them. limit bounds inserted positions (exclusive).
func InterpolateLines(lines []uint32, limit uint32, fallbackGap float64) []uint32 {
	if len(lines) < 2 {
		out := make([]uint32, len(lines))
		copy(out, lines)
		return out
	}

	gap := medianGap(lines)
	if gap == 0 || math.IsNaN(gap) || math.IsInf(gap, 0) {
		gap = fallbackGap
	}
	if gap <= 0 {
		out := make([]uint32, len(lines))
		copy(out, lines)
		return out
	}

	out := []uint32{lines[0]}
	for i := 1; i < len(lines); i++ {
		a, b := lines[i-1], lines[i]
		span := float64(b - a)
		if span > 1.5*gap {
			n := int(math.Round(span/gap)) - 1
			for j := 1; j <= n; j++ {
				pos := float64(a) + float64(j)*span/float64(n+1)
				p := uint32(math.Round(pos))
				if p > a && p < b && p < limit {
					out = append(out, p)
				}
			}
		}
		out = append(out, b)
	}
	return out
}
