package render

import (
	"image/color"
	"testing"
)

var testPalette = []color.RGBA{
	{R: 10, G: 20, B: 30, A: 255},
	{R: 200, G: 100, B: 50, A: 255},
}

func TestFillPaletteRGBA(t *testing.T) {
	cells := []uint8{0, 1, 1, 0}
	buf := make([]byte, len(cells)*4)
	FillPaletteRGBA(buf, cells, testPalette)

	for i, c := range cells {
		want := testPalette[c]
		base := i * 4
		got := color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
		if got != want {
			t.Fatalf("pixel %d = %v, want %v", i, got, want)
		}
	}
}

func TestFillPaletteRGBAClampsOutOfRange(t *testing.T) {
	buf := make([]byte, 4)
	FillPaletteRGBA(buf, []uint8{9}, testPalette)
	want := testPalette[1]
	got := color.RGBA{R: buf[0], G: buf[1], B: buf[2], A: buf[3]}
	if got != want {
		t.Fatalf("clamped pixel = %v, want %v", got, want)
	}
}

func TestPalettedFrameScales(t *testing.T) {
	cells := []uint8{0, 1, 1, 0}
	img := PalettedFrame(cells, 2, 2, 3, testPalette)

	if got := img.Bounds().Dx(); got != 6 {
		t.Fatalf("width = %d, want 6", got)
	}
	if got := img.Bounds().Dy(); got != 6 {
		t.Fatalf("height = %d, want 6", got)
	}

	// Every pixel of an upscaled block must carry its source cell's index.
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := cells[(y/3)*2+(x/3)]
			if got := img.ColorIndexAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) index = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestPalettedFrameScaleFloor(t *testing.T) {
	img := PalettedFrame([]uint8{1}, 1, 1, 0, testPalette)
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Fatalf("scale < 1 must clamp to 1, got %v", img.Bounds())
	}
}
