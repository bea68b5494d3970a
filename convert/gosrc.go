package convert

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/csboard/retropix/rgb565"
	"github.com/csboard/retropix/sprite"
)

// GoAsset writes img as a compilable Go source file: a packed pixel byte
// slice plus its palette, ready to hand to sprite.New in firmware that
// cannot load assets from storage.
func GoAsset(w io.Writer, pkg, name string, img *sprite.Image) error {
	iw, ih := img.Size()

	if _, err := fmt.Fprintf(w, "// Code generated by retroimg; DO NOT EDIT.\n\npackage %s\n\n", pkg); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "// %s is a %dx%d packed 16-color sprite.\nvar %s = []byte{\n", name, iw, ih, name); err != nil {
		return err
	}
	perRow := (iw + 1) / 2
	if perRow > 12 {
		perRow = 12
	}
	total := (iw*ih + 1) / 2
	for i := 0; i < total; i++ {
		pixel := i * 2
		b := img.PixelIndex(pixel%iw, pixel/iw)
		if pixel+1 < iw*ih {
			b |= img.PixelIndex((pixel+1)%iw, (pixel+1)/iw) << 4
		}
		sep := " "
		if i%perRow == 0 {
			sep = "\n\t"
		}
		if i == 0 {
			sep = "\t"
		}
		if _, err := fmt.Fprintf(w, "%s0x%02x,", sep, b); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(w, "\n}\n\n"); err != nil {
		return err
	}

	pal := img.Palette()
	if _, err := fmt.Fprintf(w, "// %sPalette holds the RGB565 palette for %s.\nvar %sPalette = [16]uint16{\n\t", name, name, name); err != nil {
		return err
	}
	for i := 0; i < sprite.PaletteSize; i++ {
		if i > 0 && i%8 == 0 {
			if _, err := fmt.Fprint(w, "\n\t"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "0x%04x, ", pal.ColorAt(uint8(i))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "\n}\n")
	return err
}

// ToImage expands a sprite back to RGBA for previewing on the host.
// Transparent pixels come out fully transparent.
func ToImage(img *sprite.Image) *image.RGBA {
	w, h := img.Size()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.IsTransparent(x, y) {
				continue
			}
			r, g, b := rgb565.To888(img.ColorAt(x, y))
			out.SetRGBA(x, y, color.RGBA{r, g, b, 0xff})
		}
	}
	return out
}
