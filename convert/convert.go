/*
Package convert turns standard Go images into 16-color packed sprites.

The pipeline mirrors the asset flow the firmware expects: optional
nearest-neighbor resize, reduction to at most 15 opaque colors (median-cut
quantization or nearest-match against one of the built-in palettes), and
alpha keying into the reserved transparent index 0.
*/
package convert

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/ericpauley/go-quantize/quantize"
	xdraw "golang.org/x/image/draw"

	"github.com/csboard/retropix/rgb565"
	"github.com/csboard/retropix/sprite"
)

// opaqueColors is the number of palette slots available to real colors;
// slot 0 is the transparent sentinel.
const opaqueColors = sprite.PaletteSize - 1

// Options controls a conversion.
type Options struct {
	// Palette selects a built-in palette ("classic", "grayscale",
	// "sepia") to nearest-match against. Empty means derive a palette
	// from the image by median-cut quantization.
	Palette string

	// Width and Height resize the source before conversion when
	// non-zero. A single zero keeps the aspect ratio.
	Width  int
	Height int

	// AlphaThreshold maps source pixels with alpha below it to the
	// transparent index. Zero disables alpha keying.
	AlphaThreshold uint8

	// Dither applies Floyd-Steinberg error diffusion while reducing
	// colors.
	Dither bool
}

// ToSprite converts src into a packed 16-color sprite.
func ToSprite(logger *slog.Logger, src image.Image, opts Options) (*sprite.Image, error) {
	src = resize(logger, src, opts.Width, opts.Height)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("convert: empty source image")
	}
	if w > 0xffff || h > 0xffff {
		return nil, fmt.Errorf("convert: source too large: %dx%d", w, h)
	}

	pal, err := targetPalette(src, opts.Palette)
	if err != nil {
		return nil, err
	}
	logger.Info("reducing colors", "colors", len(pal), "dither", opts.Dither)

	pm := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	if opts.Dither {
		xdraw.FloydSteinberg.Draw(pm, pm.Bounds(), src, b.Min)
	} else {
		xdraw.Draw(pm, pm.Bounds(), src, b.Min, xdraw.Src)
	}

	// Pack nibbles linearly over y*w+x; paletted index i lands in sprite
	// slot i+1, keeping slot 0 for transparency.
	data := make([]byte, (w*h+1)/2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			index := pm.ColorIndexAt(x, y) + 1
			if opts.AlphaThreshold > 0 {
				_, _, _, a := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
				if uint8(a>>8) < opts.AlphaThreshold {
					index = sprite.TransparentIndex
				}
			}

			pixel := y*w + x
			if pixel&1 == 0 {
				data[pixel>>1] = index & 0x0f
			} else {
				data[pixel>>1] |= index << 4
			}
		}
	}

	sp := spritePalette(pal)
	return sprite.New(data, w, h, &sp), nil
}

// resize scales src to the requested size with nearest-neighbor sampling,
// deriving the missing dimension from the aspect ratio.
func resize(logger *slog.Logger, src image.Image, width, height int) image.Image {
	if width <= 0 && height <= 0 {
		return src
	}

	b := src.Bounds()
	if width <= 0 {
		width = b.Dx() * height / b.Dy()
	}
	if height <= 0 {
		height = b.Dy() * width / b.Dx()
	}
	if width == b.Dx() && height == b.Dy() {
		return src
	}

	logger.Info("resizing", "from", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
		"to", fmt.Sprintf("%dx%d", width, height))

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// targetPalette returns the at-most-15-color palette to reduce into: a
// named built-in palette, or one derived from the image by median cut.
func targetPalette(src image.Image, name string) (color.Palette, error) {
	if name == "" {
		q := quantize.MedianCutQuantizer{}
		pal := q.Quantize(make(color.Palette, 0, opaqueColors), src)
		if len(pal) == 0 {
			return nil, fmt.Errorf("convert: quantizer produced no colors")
		}
		return pal, nil
	}

	var p sprite.Palette
	switch name {
	case "classic":
		p = sprite.ClassicPalette()
	case "grayscale":
		p = sprite.GrayscalePalette()
	case "sepia":
		p = sprite.SepiaPalette()
	default:
		return nil, fmt.Errorf("convert: unknown palette %q", name)
	}

	pal := make(color.Palette, opaqueColors)
	for i := 0; i < opaqueColors; i++ {
		r, g, b := rgb565.To888(p.ColorAt(uint8(i + 1)))
		pal[i] = color.RGBA{r, g, b, 0xff}
	}
	return pal, nil
}

// spritePalette converts the reduction palette into the sprite's 16-slot
// RGB565 table, shifted past the transparent slot.
func spritePalette(pal color.Palette) sprite.Palette {
	var p sprite.Palette
	for i, c := range pal {
		if i >= opaqueColors {
			break
		}
		r, g, b, _ := c.RGBA()
		p.SetColor(uint8(i+1), rgb565.From888(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
	}
	return p
}
