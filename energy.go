package pxgrid

import (
	"math"

	"github.com/kvidal/pxgrid/imageutil"
)

// GrayF is luminance in [0,1], row-major, length width*height.
type GrayF []float32

// EnergyF is non-negative gradient magnitude, row-major, length
// width*height.
type EnergyF []float32

// RgbaToGray01 converts a tightly-packed RGBA buffer to grayscale
// luminance (§4.1): y = (0.299*R + 0.587*G + 0.114*B)/255, ignoring alpha.
func RgbaToGray01(img Image) (GrayF, error) {
	if err := img.checkDimensions(); err != nil {
		return nil, err
	}
	return GrayF(imageutil.Gray01(img.RGBA, img.Width, img.Height)), nil
}

// GradEnergy computes the gradient-energy map (§4.4): Gaussian-blur gray
// by sigma, run Sobel on the blurred copy, and take the gradient magnitude.
func GradEnergy(gray GrayF, width, height int, sigma float64) (EnergyF, error) {
	if len(gray) != width*height {
		return nil, invalidDims("grad_energy", "gray length does not match width*height")
	}
	if sigma <= 0 {
		return nil, invalidParam("grad_energy", "sigma must be > 0")
	}

	k := imageutil.GaussianKernel1D(sigma)
	blurred := imageutil.ConvolveSeparable(gray, width, height, k)
	gx, gy := imageutil.Sobel(blurred, width, height)

	energy := make(EnergyF, width*height)
	for i := range energy {
		energy[i] = float32(math.Hypot(float64(gx[i]), float64(gy[i])))
	}
	return energy, nil
}

// EnhanceEnergyDirectional amplifies energy along horizontal and/or
// vertical edge structure (§4.5). A small blur (sigma=1.0) is applied to E
// first; the Sobel gradients of that blurred copy give the horizontal and
// vertical structure responses, each max-normalized to [0,1] before
// blending. When hFactor == vFactor == 1, the output equals the input.
func EnhanceEnergyDirectional(e EnergyF, width, height int, hFactor, vFactor float64) (EnergyF, error) {
	if len(e) != width*height {
		return nil, invalidDims("enhance_energy_directional", "energy length does not match width*height")
	}
	if hFactor < 1 || vFactor < 1 {
		return nil, invalidParam("enhance_energy_directional", "factors must be >= 1")
	}

	k := imageutil.GaussianKernel1D(1.0)
	blurred := imageutil.ConvolveSeparable(e, width, height, k)
	gx, gy := imageutil.Sobel(blurred, width, height)

	hResp := make([]float32, len(e))
	vResp := make([]float32, len(e))
	var hMax, vMax float32
	for i := range e {
		hResp[i] = float32(math.Abs(float64(gx[i])))
		vResp[i] = float32(math.Abs(float64(gy[i])))
		if hResp[i] > hMax {
			hMax = hResp[i]
		}
		if vResp[i] > vMax {
			vMax = vResp[i]
		}
	}

	out := make(EnergyF, len(e))
	for i, v := range e {
		var hn, vn float32
		if hMax > 0 {
			hn = hResp[i] / hMax
		}
		if vMax > 0 {
			vn = vResp[i] / vMax
		}
		scale := 1 + float32(hFactor-1)*hn + float32(vFactor-1)*vn
		out[i] = v * scale
	}
	return out, nil
}
