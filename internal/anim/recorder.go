// Package anim captures simulation frames and writes them out as an
// animated GIF.
package anim

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"

	"github.com/mudk-ux/emergence-lab/internal/render"
)

// Recorder accumulates paletted frames from a fixed-size cell grid.
type Recorder struct {
	w, h    int
	scale   int
	palette []color.RGBA
	delay   int // per-frame delay in 100ths of a second

	frames []*image.Paletted
}

// NewRecorder creates a recorder for a w x h grid rendered with the given
// palette, upscaled by scale, at fps frames per second.
func NewRecorder(w, h, scale, fps int, palette []color.RGBA) *Recorder {
	if scale < 1 {
		scale = 1
	}
	if fps < 1 {
		fps = 20
	}
	delay := 100 / fps
	if delay < 1 {
		delay = 1
	}
	return &Recorder{w: w, h: h, scale: scale, palette: palette, delay: delay}
}

// Capture appends a frame built from the current cell values.
func (r *Recorder) Capture(cells []uint8) {
	r.frames = append(r.frames, render.PalettedFrame(cells, r.w, r.h, r.scale, r.palette))
}

// Pause repeats the most recent frame n times so the animation holds on the
// final state. No-op before the first capture.
func (r *Recorder) Pause(n int) {
	if len(r.frames) == 0 {
		return
	}
	last := r.frames[len(r.frames)-1]
	for i := 0; i < n; i++ {
		r.frames = append(r.frames, last)
	}
}

// FrameCount reports the number of captured frames, pause frames included.
func (r *Recorder) FrameCount() int { return len(r.frames) }

// Save encodes the captured frames as an animated GIF, creating the parent
// directory if needed.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("saving %s: no frames captured", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	out := &gif.GIF{
		Image: r.frames,
		Delay: make([]int, len(r.frames)),
	}
	for i := range out.Delay {
		out.Delay[i] = r.delay
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
