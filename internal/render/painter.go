//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads cell values to a GPU texture and draws it scaled.
type GridPainter struct {
	w, h int
	buf  []byte
	tex  *ebiten.Image
}

// NewGridPainter allocates a painter for a w x h cell grid.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		buf: make([]byte, w*h*4),
		tex: ebiten.NewImage(w, h),
	}
}

// Blit renders the cells onto dst using the palette, scaled by an integer
// factor.
func (p *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if scale < 1 {
		scale = 1
	}
	FillPaletteRGBA(p.buf, cells, palette)
	p.tex.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.tex, op)
}
