package pxgrid

import (
	"image"
	"math"

	"github.com/kvidal/pxgrid/imageutil"
)

// rgbCubeDiag is the Euclidean diagonal of the 8-bit RGB cube, used to
// normalize color distances in weighted sampling to [0,1].
const rgbCubeDiag = 441.6729559300637 // sqrt(3 * 255^2)

// PixelArt is the sampler's output bitmap (§4.12): a native-resolution
// buffer tiled by UpscaleFactor, in both RGB and RGBA form.
type PixelArt struct {
	Width         int
	Height        int
	UpscaleFactor int
	RGB           []uint8
	RGBA          []uint8
}

// SamplePixelArt collapses the cells bounded by allX x allY down to one
// color each (§4.12). allX and allY must each be sorted, strictly
// increasing, and have at least two entries. upscaleFactor tiles each
// native cell into a k*k block of identical pixels; nativeRes forces 1x
// regardless of upscaleFactor.
func SamplePixelArt(img Image, allX, allY []uint32, mode SampleMode, weightRatio float64, upscaleFactor uint32, nativeRes bool) (*PixelArt, error) {
	if err := img.checkDimensions(); err != nil {
		return nil, err
	}
	if len(allX) < 2 || len(allY) < 2 {
		return nil, emptyDetection("sample_pixel_art", "need at least two lines on each axis to bound a cell")
	}
	return sampleCells(img, allX, allY, mode, weightRatio, effectiveUpscale(upscaleFactor, nativeRes))
}

// SamplePixelArtDirect samples a regular targetW x targetH grid with no
// detection step (§4.12's direct mode), always by arithmetic average.
func SamplePixelArtDirect(img Image, targetW, targetH int, upscaleFactor uint32, nativeRes bool) (*PixelArt, error) {
	if err := img.checkDimensions(); err != nil {
		return nil, err
	}
	if targetW <= 0 || targetH <= 0 {
		return nil, emptyDetection("sample_pixel_art_direct", "pixelSize exceeds image dimensions")
	}
	allX := regularLines(img.Width, targetW)
	allY := regularLines(img.Height, targetH)
	return sampleCells(img, allX, allY, SampleAverage, 1, effectiveUpscale(upscaleFactor, nativeRes))
}

func effectiveUpscale(upscaleFactor uint32, nativeRes bool) int {
	if nativeRes || upscaleFactor <= 1 {
		return 1
	}
	return int(upscaleFactor)
}

func regularLines(extent, cells int) []uint32 {
	lines := make([]uint32, cells+1)
	for i := 0; i <= cells; i++ {
		lines[i] = uint32(i * extent / cells)
	}
	return lines
}

func sampleCells(img Image, allX, allY []uint32, mode SampleMode, weightRatio float64, upscale int) (*PixelArt, error) {
	width := len(allX) - 1
	height := len(allY) - 1

	native := make([]uint8, width*height*4)
	for cy := 0; cy < height; cy++ {
		y0, y1 := clampCellSpan(allY[cy], allY[cy+1], img.Height)
		for cx := 0; cx < width; cx++ {
			x0, x1 := clampCellSpan(allX[cx], allX[cx+1], img.Width)
			c := cellColor(img, x0, y0, x1, y1, mode, weightRatio)
			o := (cy*width + cx) * 4
			native[o+0], native[o+1], native[o+2], native[o+3] = c[0], c[1], c[2], c[3]
		}
	}

	nativeImg := &imageutil.RGBAImage{RGBA: packRGBA(native, width, height)}
	tiled := imageutil.TileUpscale(nativeImg, upscale)

	outW, outH := tiled.Width(), tiled.Height()
	rgba := append([]uint8(nil), tiled.Pix...)
	rgb := make([]uint8, outW*outH*3)
	for i := 0; i < outW*outH; i++ {
		rgb[i*3+0] = rgba[i*4+0]
		rgb[i*3+1] = rgba[i*4+1]
		rgb[i*3+2] = rgba[i*4+2]
	}

	return &PixelArt{
		Width:         outW,
		Height:        outH,
		UpscaleFactor: upscale,
		RGB:           rgb,
		RGBA:          rgba,
	}, nil
}

func packRGBA(pix []uint8, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pix)
	return img
}

// clampCellSpan enforces the 1-pixel minimum span for empty cells and
// clamps to the image bounds.
func clampCellSpan(a, b uint32, extent int) (int, int) {
	x0, x1 := int(a), int(b)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > extent {
		x1 = extent
	}
	if x1 <= x0 {
		x0 = extent - 1
		if x0 < 0 {
			x0 = 0
		}
		x1 = extent
	}
	return x0, x1
}

func cellColor(img Image, x0, y0, x1, y1 int, mode SampleMode, weightRatio float64) [4]uint8 {
	switch mode {
	case SampleCenter:
		return centerColor(img, x0, y0, x1, y1)
	case SampleWeighted:
		return weightedColor(img, x0, y0, x1, y1, weightRatio)
	default: // SampleAverage, SampleDirect
		return averageColor(img, x0, y0, x1, y1)
	}
}

func pixelAt(img Image, x, y int) [4]uint8 {
	o := (y*img.Width + x) * 4
	return [4]uint8{img.RGBA[o], img.RGBA[o+1], img.RGBA[o+2], img.RGBA[o+3]}
}

func centerColor(img Image, x0, y0, x1, y1 int) [4]uint8 {
	cx := (x0 + x1) / 2
	cy := (y0 + y1) / 2
	if cx >= x1 {
		cx = x1 - 1
	}
	if cy >= y1 {
		cy = y1 - 1
	}
	return pixelAt(img, cx, cy)
}

func averageColor(img Image, x0, y0, x1, y1 int) [4]uint8 {
	var sum [4]uint64
	var n uint64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := pixelAt(img, x, y)
			sum[0] += uint64(p[0])
			sum[1] += uint64(p[1])
			sum[2] += uint64(p[2])
			sum[3] += uint64(p[3])
			n++
		}
	}
	if n == 0 {
		return [4]uint8{}
	}
	return [4]uint8{
		uint8(sum[0] / n),
		uint8(sum[1] / n),
		uint8(sum[2] / n),
		uint8(sum[3] / n),
	}
}

// weightedColor implements §4.12's two-phase weighted mode: phase 1 is the
// plain mean RGB over the cell; phase 2 re-weights each pixel by
// 1 + (weightRatio-1)*(1-d), where d is the RGB-cube-diagonal-normalized
// Euclidean distance between that pixel's color and the phase-1 mean, so
// colors close to the dominant mean count more than outliers. Alpha is
// averaged arithmetically, unweighted.
func weightedColor(img Image, x0, y0, x1, y1 int, weightRatio float64) [4]uint8 {
	var sumR, sumG, sumB, sumA float64
	var n float64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := pixelAt(img, x, y)
			sumR += float64(p[0])
			sumG += float64(p[1])
			sumB += float64(p[2])
			sumA += float64(p[3])
			n++
		}
	}
	if n == 0 {
		return [4]uint8{}
	}
	meanR, meanG, meanB := sumR/n, sumG/n, sumB/n
	meanA := sumA / n

	var wr, wg, wb, wsum float64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := pixelAt(img, x, y)
			dr := float64(p[0]) - meanR
			dg := float64(p[1]) - meanG
			db := float64(p[2]) - meanB
			dist := math.Sqrt(dr*dr + dg*dg + db*db)
			d := dist / rgbCubeDiag
			w := 1 + (weightRatio-1)*(1-d)
			wr += w * float64(p[0])
			wg += w * float64(p[1])
			wb += w * float64(p[2])
			wsum += w
		}
	}
	if wsum == 0 {
		wsum = 1
	}
	return [4]uint8{
		clampUint8Round(wr / wsum),
		clampUint8Round(wg / wsum),
		clampUint8Round(wb / wsum),
		clampUint8Round(meanA),
	}
}

func clampUint8Round(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
