// Command pxgrid recovers the pixel-art grid hidden inside a rasterized
// image and resamples it down to a faithful low-resolution canvas.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kvidal/pxgrid"
	"github.com/kvidal/pxgrid/imageutil"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	outputFile := flag.String("output", "",
		"Path to save the resampled pixel art (PNG/JPEG/GIF by extension)")
	debugOverlay := flag.String("debug-overlay", "",
		"Path to save a copy of the input with detected grid lines drawn over it")
	preview := flag.String("preview", "",
		"Path to save a downscaled thumbnail of the debug overlay (or source, "+
			"if -debug-overlay is unset) for quick terminal-friendly inspection")
	previewWidth := flag.Uint("preview-width", 80, "Target width in pixels for the -preview thumbnail")

	pixelSizeFlag := flag.String("pixel-size", "auto",
		"Grid period: 'auto' to detect via autocorrelation, or a literal pixel size")
	mode := flag.String("mode", "average",
		"Sampling mode: direct, center, average, or weighted")
	sample := flag.Bool("sample", true,
		"Run the sampling stage and produce pixel art output")

	sigma := flag.Float64("sigma", 1.0, "Gaussian sigma for the pre-blur")
	enhance := flag.Bool("enhance", false, "Enable directional energy enhancement")
	enhanceH := flag.Float64("enhance-h", 1.5, "Horizontal enhancement factor")
	enhanceV := flag.Float64("enhance-v", 1.5, "Vertical enhancement factor")
	minS := flag.Uint("min-s", 4, "Minimum candidate pixel size for auto-detection")
	maxS := flag.Uint("max-s", 16, "Maximum candidate pixel size for auto-detection")
	gapTolerance := flag.Uint("gap-tolerance", 2, "Tolerance in pixels around the expected grid gap")
	minEnergy := flag.Float64("min-energy", 0.15, "Peak threshold ratio against the profile max, in [0,1]")
	smooth := flag.Uint("smooth", 3, "Box-smoothing window for profiles (odd)")
	windowSize := flag.Uint("window-size", 7, "Box-smoothing window applied inside peak detection (odd)")
	weightRatio := flag.Float64("weight-ratio", 1, "Weighted-mode weight ratio, >= 1")
	upscale := flag.Uint("upscale", 0, "Output tiling factor; 0 = auto (use the pixel size)")
	nativeRes := flag.Bool("native-res", false, "Force 1x output regardless of -upscale")

	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	params := pxgrid.DefaultParams()
	params.Sigma = *sigma
	params.EnhanceEnergy = *enhance
	params.EnhanceDirectional = true
	params.EnhanceHorizontal = *enhanceH
	params.EnhanceVertical = *enhanceV
	params.MinS = uint32(*minS)
	params.MaxS = uint32(*maxS)
	params.GapTolerance = uint32(*gapTolerance)
	params.MinEnergy = *minEnergy
	params.Smooth = uint32(*smooth)
	params.WindowSize = uint32(*windowSize)
	params.Sample = *sample
	params.SampleWeightRatio = *weightRatio
	params.Upscale = uint32(*upscale)
	params.NativeRes = *nativeRes

	sampleMode, err := parseSampleMode(*mode)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	params.SampleMode = sampleMode

	if *pixelSizeFlag != "auto" {
		n, err := strconv.ParseUint(*pixelSizeFlag, 10, 32)
		if err != nil {
			fmt.Printf("Error: -pixel-size must be 'auto' or an integer: %v\n", err)
			os.Exit(1)
		}
		params.PixelSize = uint32(n)
	} else if sampleMode == pxgrid.SampleDirect {
		fmt.Println("Error: -mode=direct requires an explicit -pixel-size")
		os.Exit(1)
	}

	begin := time.Now()
	src, err := imageutil.LoadImage(*inputFile)
	if err != nil {
		fmt.Printf("Error loading image: %v\n", err)
		os.Exit(1)
	}
	img := pxgrid.FromRGBAImage(src)
	fmt.Printf("Loaded %s: %dx%d\n", *inputFile, img.Width, img.Height)

	observer := func(stage string, elapsed time.Duration) {
		log.Printf("%-28s %v", stage, elapsed)
	}

	result, err := pxgrid.RunPipeline(img, params, observer)
	if err != nil {
		fmt.Printf("Error running pipeline: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Detected pixel size: %d\n", result.DetectedPixelSize)
	fmt.Printf("Grid lines: %d x-lines, %d y-lines (raw); %d x %d (completed)\n",
		len(result.XLines), len(result.YLines), len(result.AllXLines), len(result.AllYLines))

	var overlay *imageutil.RGBAImage
	if *debugOverlay != "" || *preview != "" {
		overlay, err = pxgrid.DrawGridOverlay(img, result.AllXLines, result.AllYLines, [3]uint8{255, 0, 0})
		if err != nil {
			fmt.Printf("Error drawing overlay: %v\n", err)
			os.Exit(1)
		}
	}

	if *debugOverlay != "" {
		if err := imageutil.SaveImage(overlay, *debugOverlay); err != nil {
			fmt.Printf("Error writing overlay: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Overlay written to %s\n", *debugOverlay)
	}

	if *preview != "" {
		previewSrc := overlay
		if previewSrc == nil {
			previewSrc = img.ToRGBAImage()
		}
		w := int(*previewWidth)
		if w < 1 {
			w = 1
		}
		h := previewSrc.Height() * w / previewSrc.Width()
		if h < 1 {
			h = 1
		}
		thumb := imageutil.Resize(previewSrc, w, h, imageutil.InterpolationArea)
		if err := imageutil.SaveImage(thumb, *preview); err != nil {
			fmt.Printf("Error writing preview: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Preview (%dx%d) written to %s\n", w, h, *preview)
	}

	if result.PixelArt != nil && *outputFile != "" {
		out := packPixelArt(result.PixelArt)
		if err := imageutil.SaveImage(out, *outputFile); err != nil {
			fmt.Printf("Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Pixel art (%dx%d, upscale %d) written to %s\n",
			result.PixelArt.Width, result.PixelArt.Height, result.PixelArt.UpscaleFactor, *outputFile)
	}

	fmt.Printf("Total time: %v\n", time.Since(begin))
}

func parseSampleMode(s string) (pxgrid.SampleMode, error) {
	switch strings.ToLower(s) {
	case "direct":
		return pxgrid.SampleDirect, nil
	case "center":
		return pxgrid.SampleCenter, nil
	case "average":
		return pxgrid.SampleAverage, nil
	case "weighted":
		return pxgrid.SampleWeighted, nil
	default:
		return 0, fmt.Errorf("unknown -mode %q, want direct, center, average, or weighted", s)
	}
}

func packPixelArt(pa *pxgrid.PixelArt) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, pa.Width, pa.Height))
	copy(out.Pix, pa.RGBA)
	return out
}
