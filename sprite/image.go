/*
Package sprite implements a 16-color palette-indexed image format for small
RGB565 TFT panels.

Pixels are stored packed two to a byte, linearly over y*width+x: the low
nibble holds the even pixel offset and the high nibble the odd one, so a
width-by-height image occupies ceil(width*height/2) bytes and byte pairs
may straddle rows when the width is odd. Each nibble indexes a 16-entry RGB565
palette in which slot 0 is reserved as the transparent sentinel. Compared to
a plain 16-bit-per-pixel bitmap this saves 75% of the pixel storage before
the fixed 32-byte palette is counted.
*/
package sprite

// Image is an immutable packed-nibble indexed bitmap paired with a palette
// snapshot. Pixel data is never modified after construction; only the
// palette may be replaced.
type Image struct {
	data   []byte
	pal    Palette
	width  int
	height int
}

// New creates an image over the given packed pixel data. The data slice is
// retained, not copied, and must hold at least ceil(w*h/2) bytes; short data
// reads as transparent. A nil palette selects the built-in classic palette.
func New(data []byte, w, h int, pal *Palette) *Image {
	img := &Image{
		data:   data,
		width:  w,
		height: h,
	}
	if pal != nil {
		img.pal = *pal
	} else {
		img.pal = ClassicPalette()
	}
	return img
}

// Size returns the image dimensions in pixels.
func (img *Image) Size() (w, h int) {
	return img.width, img.height
}

// PixelIndex returns the palette index at (x, y). Coordinates outside the
// image, or beyond the backing data, resolve to the transparent index.
func (img *Image) PixelIndex(x, y int) uint8 {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return TransparentIndex
	}

	pixel := y*img.width + x
	byteIndex := pixel >> 1
	if byteIndex >= len(img.data) {
		return TransparentIndex
	}

	// even pixel offset: low nibble, odd: high nibble
	if pixel&1 == 0 {
		return img.data[byteIndex] & 0x0f
	}
	return img.data[byteIndex] >> 4
}

// ColorAt returns the RGB565 color at (x, y) resolved through the palette.
func (img *Image) ColorAt(x, y int) uint16 {
	return img.pal.ColorAt(img.PixelIndex(x, y))
}

// IsTransparent reports whether the pixel at (x, y) holds the transparent
// index. Out-of-bounds coordinates are transparent.
func (img *Image) IsTransparent(x, y int) bool {
	return img.PixelIndex(x, y) == TransparentIndex
}

// Palette returns a copy of the image's palette snapshot.
func (img *Image) Palette() Palette {
	return img.pal
}

// SetPalette replaces the palette snapshot. Pixel indices are untouched; the
// new palette takes effect on the next read.
func (img *Image) SetPalette(pal Palette) {
	img.pal = pal
}

// DataSize returns the packed pixel storage size in bytes, ceil(w*h/2).
func (img *Image) DataSize() int {
	return (img.width*img.height + 1) / 2
}

// MemoryFootprint returns the total backing storage in bytes: packed pixels
// plus the palette table.
func (img *Image) MemoryFootprint() int {
	return img.DataSize() + PaletteSize*2
}
