package pxgrid

// SampleMode selects how a detected cell collapses to one output color.
// The integer encoding is part of the external ABI and must not be
// reordered.
type SampleMode int

const (
	// SampleDirect resamples a regular grid of a caller-supplied pixel
	// size without any detection, using arithmetic cell averaging.
	SampleDirect SampleMode = iota
	// SampleCenter takes the RGBA at the geometric center of the cell.
	SampleCenter
	// SampleAverage takes the arithmetic mean over the cell.
	SampleAverage
	// SampleWeighted takes a two-phase distance-weighted mean.
	SampleWeighted
)

func (m SampleMode) String() string {
	switch m {
	case SampleDirect:
		return "direct"
	case SampleCenter:
		return "center"
	case SampleAverage:
		return "average"
	case SampleWeighted:
		return "weighted"
	default:
		return "unknown"
	}
}

// PipelineParams is the immutable configuration record for RunPipeline.
// Validate resolves the zero-value defaults of PixelSize (direct mode only)
// and SampleWeightRatio; Upscale=0 is resolved by RunPipeline. All other
// fields must be set by the caller.
type PipelineParams struct {
	// Sigma is the Gaussian standard deviation used to pre-blur the image
	// before gradient energy is computed. Must be > 0.
	Sigma float64

	// EnhanceEnergy enables directional enhancement (§4.5).
	EnhanceEnergy bool
	// EnhanceDirectional, when false and EnhanceEnergy is true, forces
	// both enhancement factors to 1.5 regardless of EnhanceHorizontal/
	// EnhanceVertical.
	EnhanceDirectional bool
	// EnhanceHorizontal and EnhanceVertical are the §4.5 factors; both
	// must be >= 1 when used.
	EnhanceHorizontal float64
	EnhanceVertical   float64

	// PixelSize, if > 0, skips autocorrelation-based detection (§4.7) and
	// is used directly as the grid period. In direct mode it is the
	// literal sampling cell size and defaults to 8 if left at 0.
	PixelSize uint32
	// MinS and MaxS bound the §4.7 search range. Both must satisfy
	// 1 <= MinS <= MaxS <= min(W,H)/2 when PixelSize == 0.
	MinS uint32
	MaxS uint32

	// GapTolerance is the +/- pixel tolerance used by peak detection
	// (§4.8) and edge completion (§4.11).
	GapTolerance uint32
	// MinEnergy is the §4.8 threshold ratio in [0,1] against the profile
	// max.
	MinEnergy float64
	// Smooth is the §4.9 box-smoothing window width for the profiles; must
	// be odd and >= 1.
	Smooth uint32
	// WindowSize is the §4.8 step-1 box-smoothing window applied inside
	// DetectPeaks1D, on top of Smooth; must be odd and >= 1.
	WindowSize uint32

	// Sample enables the §4.12 sampling stage.
	Sample bool
	// SampleMode selects the sampling rule.
	SampleMode SampleMode
	// SampleWeightRatio is the §4.12 weighted-mode ratio; must be >= 1.
	SampleWeightRatio float64

	// Upscale is the integer tiling factor for the output pixel art. 0
	// means "auto" (use the detected/configured pixel size); 1 or
	// NativeRes=true means no tiling.
	Upscale uint32
	// NativeRes forces 1x output regardless of Upscale.
	NativeRes bool
}

// DefaultParams returns a PipelineParams with the reference defaults from
// the external interface table, suitable as a starting point before
// overriding individual fields.
func DefaultParams() PipelineParams {
	return PipelineParams{
		Sigma:             1.0,
		EnhanceHorizontal: 1.5,
		EnhanceVertical:   1.5,
		MinS:              4,
		MaxS:              16,
		GapTolerance:      2,
		MinEnergy:         0.15,
		Smooth:            3,
		WindowSize:        7,
		Sample:            true,
		SampleMode:        SampleAverage,
		SampleWeightRatio: 1,
		Upscale:           0,
	}
}

// Validate checks field-level invariants against the given image size and
// resolves defaults (PixelSize=0 becomes 8 in direct mode,
// SampleWeightRatio=0 becomes 1; Upscale is left as given). It returns a
// copy with defaults filled in, or a typed *Error on the first violation
// found.
func (p PipelineParams) Validate(width, height int) (PipelineParams, error) {
	if p.Sigma <= 0 {
		return p, invalidParam("validate_params", "sigma must be > 0")
	}
	if p.EnhanceEnergy {
		hFactor, vFactor := p.EnhanceHorizontal, p.EnhanceVertical
		if !p.EnhanceDirectional {
			hFactor, vFactor = 1.5, 1.5
		}
		if hFactor < 1 || vFactor < 1 {
			return p, invalidParam("validate_params", "enhance factors must be >= 1")
		}
		p.EnhanceHorizontal, p.EnhanceVertical = hFactor, vFactor
	}
	if p.MinEnergy < 0 || p.MinEnergy > 1 {
		return p, invalidParam("validate_params", "minEnergy must be in [0,1]")
	}
	if p.SampleWeightRatio != 0 && p.SampleWeightRatio < 1 {
		return p, invalidParam("validate_params", "sampleWeightRatio must be >= 1")
	}
	if p.Smooth == 0 || p.Smooth%2 == 0 {
		return p, invalidParam("validate_params", "smooth must be odd and >= 1")
	}
	if p.WindowSize == 0 || p.WindowSize%2 == 0 {
		return p, invalidParam("validate_params", "windowSize must be odd and >= 1")
	}
	if p.SampleMode < SampleDirect || p.SampleMode > SampleWeighted {
		return p, invalidParam("validate_params", "unknown sampleMode")
	}

	if p.PixelSize == 0 {
		limit := uint32(min(width, height) / 2)
		if p.MinS < 1 || p.MinS > p.MaxS || p.MaxS > limit {
			return p, invalidDims("validate_params", "require 1 <= minS <= maxS <= min(W,H)/2")
		}
	}
	if p.SampleMode == SampleDirect && p.PixelSize == 0 {
		p.PixelSize = 8
	}
	if p.SampleWeightRatio == 0 {
		p.SampleWeightRatio = 1
	}

	return p, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
