package pxgrid

import "testing"

func TestDetectPeaks1DFindsEvenlySpacedPeaks(t *testing.T) {
	profile := make(Profile, 64)
	for _, pos := range []int{8, 16, 24, 32, 40, 48, 56} {
		profile[pos] = 100
	}
	lines, err := DetectPeaks1D(profile, 8, 2, 0.2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7: %v", len(lines), lines)
	}
	for i := 1; i < len(lines); i++ {
		if lines[i] <= lines[i-1] {
			t.Fatalf("lines not strictly increasing: %v", lines)
		}
	}
}

func TestDetectPeaks1DEmptyOnFlatProfile(t *testing.T) {
	profile := make(Profile, 32)
	lines, err := DetectPeaks1D(profile, 8, 2, 0.2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("got %v, want empty on a flat profile", lines)
	}
}

func TestDetectPeaks1DRejectsEvenWindow(t *testing.T) {
	profile := make(Profile, 16)
	if _, err := DetectPeaks1D(profile, 4, 1, 0.2, 4); err == nil {
		t.Fatal("expected error for even windowSize")
	}
}

// Three closely-spaced bumps one sample apart must collapse to the single
// strongest one under a gapSize/2 local-max window (step 3); a windowSize/2
// window (windowSize=1 here) would wrongly treat each bump as its own
// trivial local max.
func TestDetectPeaks1DLocalMaxWindowUsesGapSizeNotWindowSize(t *testing.T) {
	profile := make(Profile, 20)
	profile[5] = 40
	profile[6] = 50
	profile[7] = 45

	lines, err := DetectPeaks1D(profile, 6, 2, 0.3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0] != 6 {
		t.Fatalf("got %v, want the three close bumps collapsed to the single peak at 6", lines)
	}
}

// A one-sample noise spike taller than a broad real peak must be suppressed
// once it is averaged down by step 1's internal box smoothing, while the
// broad peak survives.
func TestDetectPeaks1DInternalSmoothingSuppressesNarrowSpike(t *testing.T) {
	profile := make(Profile, 40)
	profile[10] = 90
	for i, v := range []float64{60, 70, 80, 70, 60} {
		profile[18+i] = v
	}

	withoutSmoothing, err := DetectPeaks1D(profile, 6, 2, 0.3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(withoutSmoothing) != 2 {
		t.Fatalf("got %v, want both the narrow spike and the broad peak with no smoothing", withoutSmoothing)
	}

	withSmoothing, err := DetectPeaks1D(profile, 6, 2, 0.3, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(withSmoothing) != 1 || withSmoothing[0] != 20 {
		t.Fatalf("got %v, want windowSize=5 box smoothing to suppress the narrow spike, leaving only the broad peak at 20", withSmoothing)
	}
}
