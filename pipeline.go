package pxgrid

import (
	"time"

	"github.com/kvidal/pxgrid/imageutil"
)

// EnergyU8 is a quantile-normalized energy map, row-major, length
// width*height.
type EnergyU8 []uint8

// LineSet is a sorted, strictly increasing sequence of grid-line positions
// on one axis, all within [0, limit].
type LineSet []uint32

// Observer receives the name of each pipeline stage and how long it took,
// invoked only between stages — never from inner loops.
type Observer func(stage string, elapsed time.Duration)

// Result is everything RunPipeline produces for one invocation.
type Result struct {
	Width  int
	Height int

	DetectedPixelSize uint32
	EnergyU8          EnergyU8

	XLines LineSet
	YLines LineSet

	AllXLines LineSet
	AllYLines LineSet

	PixelArt *PixelArt
}

// RunPipeline executes the full grid-recovery and resampling pipeline
// (§2) against img using params, reporting per-stage timings to observer
// if non-nil. It takes no ownership of img.RGBA and returns freshly
// allocated output buffers; no buffer is aliased between input and output.
func RunPipeline(img Image, params PipelineParams, observer Observer) (*Result, error) {
	if err := img.checkDimensions(); err != nil {
		return nil, err
	}
	p, err := params.Validate(img.Width, img.Height)
	if err != nil {
		return nil, err
	}

	report := func(stage string, start time.Time) {
		if observer != nil {
			observer(stage, time.Since(start))
		}
	}

	result := &Result{Width: img.Width, Height: img.Height}

	if p.SampleMode == SampleDirect {
		return runDirectPipeline(img, p, result, report)
	}

	t := time.Now()
	gray, err := RgbaToGray01(img)
	if err != nil {
		return nil, err
	}
	report("grayscale", t)

	t = time.Now()
	energy, err := GradEnergy(gray, img.Width, img.Height, p.Sigma)
	if err != nil {
		return nil, err
	}
	report("grad_energy", t)

	if p.EnhanceEnergy {
		t = time.Now()
		energy, err = EnhanceEnergyDirectional(energy, img.Width, img.Height, p.EnhanceHorizontal, p.EnhanceVertical)
		if err != nil {
			return nil, err
		}
		report("enhance_energy_directional", t)
	}

	t = time.Now()
	heatmap := imageutil.ToHeatmapU8([]float32(energy))
	result.EnergyU8 = EnergyU8(heatmap)
	report("to_heatmap_u8", t)

	pixelSize := p.PixelSize
	if pixelSize == 0 {
		t = time.Now()
		pixelSize, err = DetectPixelSize(heatmap, img.Width, img.Height, p.MinS, p.MaxS)
		if err != nil {
			return nil, err
		}
		report("detect_pixel_size", t)
	}
	result.DetectedPixelSize = pixelSize

	t = time.Now()
	xLines, yLines, err := DetectGridLines(heatmap, img.Width, img.Height, int(pixelSize), p.GapTolerance, p.MinEnergy, p.Smooth, p.WindowSize)
	if err != nil {
		return nil, err
	}
	report("detect_grid_lines", t)
	result.XLines = LineSet(xLines)
	result.YLines = LineSet(yLines)

	t = time.Now()
	allX := InterpolateLines(xLines, uint32(img.Width), float64(pixelSize))
	allY := InterpolateLines(yLines, uint32(img.Height), float64(pixelSize))
	report("interpolate_lines", t)

	t = time.Now()
	allX = CompleteEdges(allX, uint32(img.Width), float64(pixelSize), p.GapTolerance)
	allY = CompleteEdges(allY, uint32(img.Height), float64(pixelSize), p.GapTolerance)
	report("complete_edges", t)
	result.AllXLines = LineSet(allX)
	result.AllYLines = LineSet(allY)

	if !p.Sample {
		return result, nil
	}

	t = time.Now()
	pa, err := SamplePixelArt(img, allX, allY, p.SampleMode, p.SampleWeightRatio, resolveUpscale(p.Upscale, pixelSize), p.NativeRes)
	if err != nil {
		return nil, err
	}
	report("sample_pixel_art", t)
	result.PixelArt = pa

	return result, nil
}

// runDirectPipeline implements the direct-mode contract (§6): stages 1-4,
// 7, 8 are skipped, energyU8 is zero-filled, the detection line sets are
// empty, and the sampler runs against a regular pixelSize grid.
func runDirectPipeline(img Image, p PipelineParams, result *Result, report func(string, time.Time)) (*Result, error) {
	result.EnergyU8 = make(EnergyU8, img.Width*img.Height)
	result.DetectedPixelSize = p.PixelSize
	result.XLines = LineSet{}
	result.YLines = LineSet{}
	result.AllXLines = LineSet{}
	result.AllYLines = LineSet{}

	targetW := img.Width / int(p.PixelSize)
	targetH := img.Height / int(p.PixelSize)

	if !p.Sample {
		return result, nil
	}

	t := time.Now()
	pa, err := SamplePixelArtDirect(img, targetW, targetH, resolveUpscale(p.Upscale, p.PixelSize), p.NativeRes)
	if err != nil {
		return nil, err
	}
	report("sample_pixel_art_direct", t)
	result.PixelArt = pa
	return result, nil
}

// resolveUpscale implements upscale=0 meaning "auto" (use the
// detected/configured pixel size).
func resolveUpscale(upscale, pixelSize uint32) uint32 {
	if upscale == 0 {
		return pixelSize
	}
	return upscale
}
