package imageutil

import "testing"

func TestTileUpscaleExactBlocks(t *testing.T) {
	src := NewRGBAImage(2, 2)
	src.SetRGB(0, 0, RGB{10, 20, 30})
	src.SetRGB(1, 0, RGB{40, 50, 60})
	src.SetRGB(0, 1, RGB{70, 80, 90})
	src.SetRGB(1, 1, RGB{100, 110, 120})

	k := 3
	dst := TileUpscale(src, k)
	if dst.Width() != 2*k || dst.Height() != 2*k {
		t.Fatalf("got %dx%d, want %dx%d", dst.Width(), dst.Height(), 2*k, 2*k)
	}

	for sy := 0; sy < 2; sy++ {
		for sx := 0; sx < 2; sx++ {
			want := src.GetRGB(sx, sy)
			for a := 0; a < k; a++ {
				for b := 0; b < k; b++ {
					got := dst.GetRGB(sx*k+a, sy*k+b)
					if got != want {
						t.Errorf("block (%d,%d) offset (%d,%d): got %v, want %v", sx, sy, a, b, got, want)
					}
				}
			}
		}
	}
}

func TestTileUpscaleNoOp(t *testing.T) {
	src := NewRGBAImage(3, 3)
	src.SetRGB(1, 1, RGB{9, 9, 9})
	dst := TileUpscale(src, 1)
	if dst.Width() != 3 || dst.Height() != 3 {
		t.Fatalf("k=1 should not resize, got %dx%d", dst.Width(), dst.Height())
	}
	if dst.GetRGB(1, 1) != (RGB{9, 9, 9}) {
		t.Errorf("k=1 should preserve pixel values")
	}
}
