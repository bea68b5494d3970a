// Package rgb565 provides helpers for the 16-bit 5-6-5 color format used by
// small SPI TFT panels: 5 bits red, 6 bits green, 5 bits blue packed into one
// uint16.
package rgb565

// From888 packs 8-bit color components into RGB565 by bit truncation:
// the top 5 bits of red, top 6 bits of green and top 5 bits of blue.
func From888(r, g, b uint8) uint16 {
	return (uint16(r&0xf8) << 8) | (uint16(g&0xfc) << 3) | uint16(b>>3)
}

// To888 expands an RGB565 value back to 8-bit components, scaling each
// channel over its full range.
func To888(c uint16) (r, g, b uint8) {
	r = uint8(((c >> 11) & 0x1f) * 255 / 31)
	g = uint8(((c >> 5) & 0x3f) * 255 / 63)
	b = uint8((c & 0x1f) * 255 / 31)
	return
}

// FromHSV converts a hue (degrees), saturation and value (both percent) to
// RGB565 using the hexagonal-sector formula. Hue wraps modulo 360;
// saturation and value above 100 are clamped.
func FromHSV(h uint16, s, v uint8) uint16 {
	h %= 360
	if s > 100 {
		s = 100
	}
	if v > 100 {
		v = 100
	}

	sf := float32(s) / 100
	vf := float32(v) / 100

	c := vf * sf
	x := c * (1 - abs32(mod2(float32(h)/60)-1))
	m := vf - c

	var r, g, b float32
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return From888(uint8((r+m)*255), uint8((g+m)*255), uint8((b+m)*255))
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// mod2 is fmod(f, 2) for the non-negative inputs FromHSV produces.
func mod2(f float32) float32 {
	for f >= 2 {
		f -= 2
	}
	return f
}
