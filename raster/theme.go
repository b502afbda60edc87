package raster

import "image/color"

// Theme is the fixed palette for one display mode. Every color painted
// by the renderer comes from this table; nothing is computed.
type Theme struct {
	Background   color.RGBA
	Text         color.RGBA
	HeaderText   color.RGBA
	FileHeaderBG color.RGBA
	HunkHeaderBG color.RGBA
	AddedBG      color.RGBA
	AddedText    color.RGBA
	RemovedBG    color.RGBA
	RemovedText  color.RGBA
	LineNumber   color.RGBA
	Divider      color.RGBA
}

// Dark is the default palette.
var Dark = Theme{
	Background:   color.RGBA{R: 0x0d, G: 0x11, B: 0x17, A: 0xff},
	Text:         color.RGBA{R: 0xc9, G: 0xd1, B: 0xd9, A: 0xff},
	HeaderText:   color.RGBA{R: 0xe6, G: 0xed, B: 0xf3, A: 0xff},
	FileHeaderBG: color.RGBA{R: 0x16, G: 0x1b, B: 0x22, A: 0xff},
	HunkHeaderBG: color.RGBA{R: 0x1c, G: 0x24, B: 0x32, A: 0xff},
	AddedBG:      color.RGBA{R: 0x12, G: 0x26, B: 0x1e, A: 0xff},
	AddedText:    color.RGBA{R: 0x3f, G: 0xb9, B: 0x50, A: 0xff},
	RemovedBG:    color.RGBA{R: 0x2d, G: 0x16, B: 0x1a, A: 0xff},
	RemovedText:  color.RGBA{R: 0xf8, G: 0x51, B: 0x49, A: 0xff},
	LineNumber:   color.RGBA{R: 0x6e, G: 0x76, B: 0x81, A: 0xff},
	Divider:      color.RGBA{R: 0x30, G: 0x36, B: 0x3d, A: 0xff},
}

// Light is the alternate palette.
var Light = Theme{
	Background:   color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Text:         color.RGBA{R: 0x24, G: 0x29, B: 0x2f, A: 0xff},
	HeaderText:   color.RGBA{R: 0x1f, G: 0x23, B: 0x28, A: 0xff},
	FileHeaderBG: color.RGBA{R: 0xf6, G: 0xf8, B: 0xfa, A: 0xff},
	HunkHeaderBG: color.RGBA{R: 0xdd, G: 0xf4, B: 0xff, A: 0xff},
	AddedBG:      color.RGBA{R: 0xe6, G: 0xff, B: 0xec, A: 0xff},
	AddedText:    color.RGBA{R: 0x1a, G: 0x7f, B: 0x37, A: 0xff},
	RemovedBG:    color.RGBA{R: 0xff, G: 0xeb, B: 0xe9, A: 0xff},
	RemovedText:  color.RGBA{R: 0xcf, G: 0x22, B: 0x2e, A: 0xff},
	LineNumber:   color.RGBA{R: 0x65, G: 0x6d, B: 0x76, A: 0xff},
	Divider:      color.RGBA{R: 0xd0, G: 0xd7, B: 0xde, A: 0xff},
}

// themeFor selects the palette for a render.
func themeFor(darkMode bool) Theme {
	if darkMode {
		return Dark
	}
	return Light
}
