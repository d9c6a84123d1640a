package imageutil

import "testing"

func TestGaussianKernel1DNormalizes(t *testing.T) {
	for _, sigma := range []float64{0.5, 1, 2, 4, 8, 16} {
		k := GaussianKernel1D(sigma)
		var sum float64
		for _, v := range k {
			sum += float64(v)
		}
		if diff := sum - 1; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("sigma=%v: kernel sums to %v, want 1 +/- 1e-6", sigma, sum)
		}
		if len(k)%2 != 1 {
			t.Errorf("sigma=%v: kernel length %d is not odd", sigma, len(k))
		}
	}
}

func TestGaussianKernel1DDegenerate(t *testing.T) {
	k := GaussianKernel1D(0)
	if len(k) != 1 || k[0] != 1 {
		t.Errorf("sigma<=0: got %v, want [1]", k)
	}
}

func TestConvolveSeparableIdentity(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	dst := ConvolveSeparable(src, 3, 3, []float32{1})
	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("index %d: got %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestConvolveSeparableClampsAtBorder(t *testing.T) {
	src := make([]float32, 5*5)
	for i := range src {
		src[i] = 10
	}
	k := GaussianKernel1D(2)
	dst := ConvolveSeparable(src, 5, 5, k)
	for i, v := range dst {
		if v < 9.99 || v > 10.01 {
			t.Errorf("index %d: constant input should survive clamp-to-edge blur, got %v", i, v)
		}
	}
}
