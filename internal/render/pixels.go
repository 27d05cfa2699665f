package render

import (
	"image/color"

	"github.com/hagrid67/flatland-2019/internal/episode"
)

// Palette maps episode display classes to colors: background, rail, target,
// agent, broken agent.
var Palette = []color.RGBA{
	episode.CellEmpty:  {R: 0x12, G: 0x12, B: 0x14, A: 0xff},
	episode.CellRail:   {R: 0x8a, G: 0x8a, B: 0x8f, A: 0xff},
	episode.CellTarget: {R: 0x2e, G: 0xa0, B: 0x4f, A: 0xff},
	episode.CellAgent:  {R: 0xd8, G: 0x3c, B: 0x3c, A: 0xff},
	episode.CellBroken: {R: 0xd8, G: 0xa8, B: 0x2c, A: 0xff},
}

// fillPaletteRGBA converts cell class values into RGBA pixels using a
// palette. Values beyond the palette clamp to its last entry; an empty
// palette clears the buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
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
