package render

import (
	"image"
	"image/color"
)

// FillPaletteRGBA converts cell values into RGBA pixels using a palette.
// buf must hold 4*len(cells) bytes. When the palette is empty the buffer is
// cleared to transparent black; out-of-range cell values clamp to the last
// palette entry.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// PalettedFrame builds a paletted image from cell values, upscaled by an
// integer factor with nearest-neighbor sampling. Cell values index into the
// palette directly, clamped to its last entry.
func PalettedFrame(cells []uint8, w, h, scale int, palette []color.RGBA) *image.Paletted {
	if scale < 1 {
		scale = 1
	}
	pal := make(color.Palette, len(palette))
	for i, c := range palette {
		pal[i] = c
	}
	img := image.NewPaletted(image.Rect(0, 0, w*scale, h*scale), pal)
	last := len(palette) - 1
	if last < 0 {
		return img
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := int(cells[y*w+x])
			if idx > last {
				idx = last
			}
			v := uint8(idx)
			for sy := 0; sy < scale; sy++ {
				row := (y*scale + sy) * img.Stride
				base := row + x*scale
				for sx := 0; sx < scale; sx++ {
					img.Pix[base+sx] = v
				}
			}
		}
	}
	return img
}
