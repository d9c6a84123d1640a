// Package pxgrid recovers the logical pixel-art grid hidden inside a
// rasterized image and resamples the source into a low-resolution pixel-art
// canvas.
//
// The entry point is RunPipeline, which estimates per-axis grid line
// positions by gradient-energy autocorrelation and peak detection, then
// collapses each detected cell to a single output color. The individual
// stages (grayscale conversion, Gaussian/Sobel energy, quantile heatmap
// encoding, pixel-size detection, peak detection, interpolation, edge
// completion, and sampling) are exported separately for direct use.
//
// Low-level numeric primitives (convolution, Sobel, quantile heatmap,
// resizing, file I/O) live in the imageutil subpackage.
package pxgrid
