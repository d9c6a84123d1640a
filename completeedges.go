package pxgrid

import "math"

// CompleteEdges extends a detected line set out to both image borders
// (§4.11). Interior lines are kept as-is. If the first line is farther than
// typicalGap-gapTolerance from 0, lines are prepended by stepping back from
// it by typicalGap, 2*typicalGap, ... until a position goes negative, which
// is dropped. The far edge is treated symmetrically against limit: lines are
// appended stepping forward from the last line until a position exceeds
// limit. An empty input is treated as a single gap spanning the whole
// image, filled by stepping back from limit. 0 and limit are always present
// in the result.
func CompleteEdges(lines []uint32, limit uint32, typicalGap float64, gapTolerance uint32) []uint32 {
	if typicalGap <= 0 {
		typicalGap = 1
	}
	trigger := typicalGap - float64(gapTolerance)

	out := make([]uint32, 0, len(lines)+2)
	push := func(v uint32) {
		if len(out) == 0 || out[len(out)-1] < v {
			out = append(out, v)
		}
	}

	if len(lines) == 0 {
		push(0)
		if float64(limit) > trigger {
			for _, p := range stepBackFill(float64(limit), typicalGap) {
				push(p)
			}
		}
		push(limit)
		return out
	}

	if float64(lines[0]) > trigger {
		push(0)
		for _, p := range stepBackFill(float64(lines[0]), typicalGap) {
			push(p)
		}
	} else {
		push(0)
	}

	for _, l := range lines {
		push(l)
	}

	last := lines[len(lines)-1]
	if float64(limit-last) > trigger {
		for pos := float64(last) + typicalGap; pos <= float64(limit); pos += typicalGap {
			push(uint32(math.Round(pos)))
		}
	}
	push(limit)

	return out
}

// stepBackFill returns the positions anchor-typicalGap, anchor-2*typicalGap,
// ... that remain >= 0, in ascending order (the first position that would go
// negative is dropped, per §4.11 step 1).
func stepBackFill(anchor, typicalGap float64) []uint32 {
	var pts []uint32
	for pos := anchor - typicalGap; pos >= 0; pos -= typicalGap {
		pts = append(pts, uint32(math.Round(pos)))
	}
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
	return pts
}
