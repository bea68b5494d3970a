package sprite

import "github.com/csboard/retropix/rgb565"

const (
	// TransparentIndex is the palette slot reserved as the transparent
	// sentinel. Pixels holding this index are never drawn when
	// transparency is in effect.
	TransparentIndex = 0

	// PaletteSize is the number of slots in a palette.
	PaletteSize = 16
)

// Palette is a fixed table of 16 RGB565 colors. Slot 0 is reserved as the
// transparent sentinel. Palette is a value type: assigning one copies all
// slots, so images that snapshot a palette are unaffected by later edits to
// the source.
type Palette struct {
	colors [PaletteSize]uint16
}

// ClassicPalette returns the built-in 16-color retro palette.
func ClassicPalette() Palette {
	return Palette{colors: [PaletteSize]uint16{
		0x0000, // 0: transparent (black)
		0xffff, // 1: white
		0xf800, // 2: red
		0x07e0, // 3: green
		0x001f, // 4: blue
		0xffe0, // 5: yellow
		0xf81f, // 6: magenta
		0x07ff, // 7: cyan
		0x8410, // 8: gray
		0xfc00, // 9: orange
		0x8000, // 10: dark red
		0x0400, // 11: dark green
		0x0010, // 12: dark blue
		0x8400, // 13: brown
		0x4208, // 14: dark gray
		0x2104, // 15: very dark gray
	}}
}

// GrayscalePalette returns a palette with 15 gray levels after the
// transparent slot.
func GrayscalePalette() Palette {
	var p Palette
	for i := 1; i < PaletteSize; i++ {
		level := uint8(i * 255 / (PaletteSize - 1))
		p.colors[i] = rgb565.From888(level, level, level)
	}
	return p
}

// SepiaPalette returns a palette with a 15-step sepia ramp after the
// transparent slot.
func SepiaPalette() Palette {
	var p Palette
	for i := 1; i < PaletteSize; i++ {
		ratio := float32(i) / (PaletteSize - 1)
		p.colors[i] = rgb565.From888(
			uint8(ratio*255*0.8),
			uint8(ratio*255*0.6),
			uint8(ratio*255*0.4))
	}
	return p
}

// ColorAt returns the color in the given slot. Out-of-range indices resolve
// to the transparent slot's color rather than reading out of bounds.
func (p Palette) ColorAt(index uint8) uint16 {
	if index >= PaletteSize {
		return p.colors[TransparentIndex]
	}
	return p.colors[index]
}

// SetColor overwrites one slot. Out-of-range indices are ignored.
func (p *Palette) SetColor(index uint8, color uint16) {
	if index < PaletteSize {
		p.colors[index] = color
	}
}
