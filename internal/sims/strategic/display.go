package strategic

import "image/color"

// strategicPalette matches the article rendering: blue cooperators, orange
// defectors.
var strategicPalette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
}

// Palette exposes the color palette used for rendering the strategy grid,
// indexed by Strategy value.
func (a *Automaton) Palette() []color.RGBA {
	return strategicPalette
}
