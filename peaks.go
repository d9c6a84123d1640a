package pxgrid

// DetectPeaks1D finds strictly increasing peak positions in profile (§4.8).
// Step 1 smooths profile by a box filter of windowSize (odd; a windowSize of
// 1 is a no-op). Candidates are then positions whose smoothed value clears
// minThresholdRatio*max(smoothed) and is the local max over
// [i-gapSize/2, i+gapSize/2]. Candidates are finally greedily filtered so
// consecutive accepted positions are spaced close to gapSize apart.
func DetectPeaks1D(profile Profile, gapSize, gapTolerance uint32, minThresholdRatio float64, windowSize uint32) ([]uint32, error) {
	if windowSize == 0 || windowSize%2 == 0 {
		return nil, invalidParam("detect_peaks_1d", "windowSize must be odd and >= 1")
	}
	if minThresholdRatio < 0 || minThresholdRatio > 1 {
		return nil, invalidParam("detect_peaks_1d", "minThresholdRatio must be in [0,1]")
	}

	smoothed := boxSmooth(profile, int(windowSize))

	maxVal := profileMax(smoothed)
	if maxVal == 0 {
		return []uint32{}, nil
	}
	thr := minThresholdRatio * maxVal

	half := int(gapSize) / 2
	var candidates []int
	for i, v := range smoothed {
		if v < thr {
			continue
		}
		if isLocalMax(smoothed, i, half) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return []uint32{}, nil
	}

	selected := selectPeaks(candidates, smoothed, int(gapSize), int(gapTolerance))

	out := make([]uint32, len(selected))
	for i, v := range selected {
		out[i] = uint32(v)
	}
	return out, nil
}

func isLocalMax(p Profile, i, half int) bool {
	lo := i - half
	hi := i + half
	if lo < 0 {
		lo = 0
	}
	if hi >= len(p) {
		hi = len(p) - 1
	}
	for j := lo; j <= hi; j++ {
		if p[j] > p[i] {
			return false
		}
	}
	return true
}

// selectPeaks implements step 4: starting from the leftmost candidate,
// greedily accept, among the following candidates whose distance from the
// previous accepted one lies in [gapSize-gapTolerance, gapSize+gapTolerance],
// the strongest one (the first of equal strength wins);
// if none falls in that window, accept the strongest candidate strictly
// greater than prev+(gapSize-gapTolerance) and continue from there.
func selectPeaks(candidates []int, values Profile, gapSize, gapTolerance int) []int {
	low := gapSize - gapTolerance
	high := gapSize + gapTolerance

	accepted := []int{candidates[0]}
	idx := 1
	for idx < len(candidates) {
		prev := accepted[len(accepted)-1]

		inRangeBest := -1
		j := idx
		for j < len(candidates) {
			dist := candidates[j] - prev
			if dist > high {
				break
			}
			if dist >= low && dist <= high {
				if inRangeBest == -1 || values[candidates[j]] > values[candidates[inRangeBest]] {
					inRangeBest = j
				}
			}
			j++
		}
		if inRangeBest != -1 {
			accepted = append(accepted, candidates[inRangeBest])
			idx = inRangeBest + 1
			continue
		}

		fallback := -1
		for k := idx; k < len(candidates); k++ {
			dist := candidates[k] - prev
			if dist > low {
				if fallback == -1 || values[candidates[k]] > values[candidates[fallback]] {
					fallback = k
				}
			}
		}
		if fallback == -1 {
			break
		}
		accepted = append(accepted, candidates[fallback])
		idx = fallback + 1
	}
	return accepted
}
