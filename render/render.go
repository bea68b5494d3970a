/*
Package render composites palette-indexed sprites into an offscreen RGB565
buffer and transfers the result to a display surface.

The renderer owns (or borrows) a width-by-height buffer of 16-bit pixels.
Sprites are drawn into the buffer with Blit and BlitScaled, then the whole
buffer is pushed to the hardware with Present or PresentKeyed. All drawing
is clipped to the buffer; pixels that land outside it are dropped silently.
*/
package render

import (
	"errors"

	"github.com/csboard/retropix/sprite"
)

// Surface is the physical display a renderer presents to. The panel driver
// in package st7789 implements it.
type Surface interface {
	// Size returns the drawable area for the current rotation.
	Size() (width, height uint16)
	// WriteRect streams w*h RGB565 pixels, row-major, into the given
	// window. The window must lie fully on the surface.
	WriteRect(x, y, w, h uint16, pix []uint16) error
	// DrawPixel sets a single pixel.
	DrawPixel(x, y uint16, c uint16) error
}

// Renderer composites sprites into an offscreen buffer sized independently
// of the surface. A renderer is single-owner: its buffer must not be shared
// with another renderer or mutated concurrently.
type Renderer struct {
	surf   Surface
	buf    []uint16
	width  int
	height int
	line   []uint16 // row staging for the opaque blit path
}

// New creates a renderer with its own w-by-h buffer.
func New(surf Surface, w, h int) (*Renderer, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.New("render: invalid buffer dimensions")
	}
	return &Renderer{
		surf:   surf,
		buf:    make([]uint16, w*h),
		width:  w,
		height: h,
	}, nil
}

// NewWithBuffer creates a renderer over a caller-owned buffer, which must
// hold at least w*h pixels. The caller must not hand the same buffer to
// another renderer.
func NewWithBuffer(surf Surface, buf []uint16, w, h int) (*Renderer, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.New("render: invalid buffer dimensions")
	}
	if len(buf) < w*h {
		return nil, errors.New("render: buffer smaller than dimensions")
	}
	return &Renderer{
		surf:   surf,
		buf:    buf,
		width:  w,
		height: h,
	}, nil
}

// Size returns the buffer dimensions.
func (r *Renderer) Size() (w, h int) {
	return r.width, r.height
}

// Buffer exposes the backing pixel buffer, row-major.
func (r *Renderer) Buffer() []uint16 {
	return r.buf
}

// At returns the buffer pixel at (x, y), or 0 when out of bounds.
func (r *Renderer) At(x, y int) uint16 {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return 0
	}
	return r.buf[y*r.width+x]
}

// Clear fills the entire buffer with one color.
func (r *Renderer) Clear(color uint16) {
	for i := range r.buf {
		r.buf[i] = color
	}
}

// Blit draws img into the buffer with its top-left corner at (offsetX,
// offsetY). With useTransparency, pixels holding the transparent index are
// skipped and the buffer keeps its prior content there; without it every
// pixel is written through a full-row staging buffer.
func (r *Renderer) Blit(img *sprite.Image, offsetX, offsetY int, useTransparency bool) {
	if !useTransparency {
		r.blitOpaque(img, offsetX, offsetY)
		return
	}

	w, h := img.Size()
	pal := img.Palette()
	for y := 0; y < h; y++ {
		dy := y + offsetY
		if dy < 0 || dy >= r.height {
			continue
		}
		for x := 0; x < w; x++ {
			dx := x + offsetX
			if dx < 0 || dx >= r.width {
				continue
			}
			if index := img.PixelIndex(x, y); index != sprite.TransparentIndex {
				r.buf[dy*r.width+dx] = pal.ColorAt(index)
			}
		}
	}
}

// blitOpaque resolves one full row of colors at a time and copies it into
// the buffer in a single write per row.
func (r *Renderer) blitOpaque(img *sprite.Image, offsetX, offsetY int) {
	w, h := img.Size()
	if len(r.line) < w {
		r.line = make([]uint16, w)
	}

	for y := 0; y < h; y++ {
		dy := y + offsetY
		if dy < 0 || dy >= r.height {
			continue
		}

		for x := 0; x < w; x++ {
			r.line[x] = img.ColorAt(x, y)
		}

		// clip the row to the buffer
		src := r.line[:w]
		dx := offsetX
		if dx < 0 {
			if -dx >= w {
				continue
			}
			src = src[-dx:]
			dx = 0
		}
		if dx >= r.width {
			continue
		}
		if over := dx + len(src) - r.width; over > 0 {
			src = src[:len(src)-over]
		}

		copy(r.buf[dy*r.width+dx:], src)
	}
}

// BlitScaled draws img scaled by (scaleX, scaleY) with nearest-neighbor
// sampling toward the origin: destination pixel (dx, dy) reads source pixel
// (int(dx/scaleX), int(dy/scaleY)). The transparency rule matches Blit.
func (r *Renderer) BlitScaled(img *sprite.Image, offsetX, offsetY int, scaleX, scaleY float32, useTransparency bool) {
	w, h := img.Size()
	scaledW := int(float32(w) * scaleX)
	scaledH := int(float32(h) * scaleY)
	if scaledW <= 0 || scaledH <= 0 {
		return
	}

	pal := img.Palette()
	for sy := 0; sy < scaledH; sy++ {
		dy := sy + offsetY
		if dy < 0 || dy >= r.height {
			continue
		}
		origY := int(float32(sy) / scaleY)
		for sx := 0; sx < scaledW; sx++ {
			dx := sx + offsetX
			if dx < 0 || dx >= r.width {
				continue
			}
			origX := int(float32(sx) / scaleX)

			index := img.PixelIndex(origX, origY)
			if !useTransparency || index != sprite.TransparentIndex {
				r.buf[dy*r.width+dx] = pal.ColorAt(index)
			}
		}
	}
}

// Present transfers the whole buffer to the surface with its top-left
// corner at (x, y), overwriting the destination unconditionally. The
// transfer is clipped to the surface.
func (r *Renderer) Present(x, y int) error {
	sw, sh := r.surf.Size()

	x0, y0, bx, by, w, h := clipToSurface(x, y, r.width, r.height, int(sw), int(sh))
	if w <= 0 || h <= 0 {
		return nil
	}

	if bx == 0 && w == r.width {
		// unclipped horizontally: rows are contiguous, one transfer
		return r.surf.WriteRect(uint16(x0), uint16(y0), uint16(w), uint16(h),
			r.buf[by*r.width:(by+h)*r.width])
	}

	for row := 0; row < h; row++ {
		off := (by+row)*r.width + bx
		if err := r.surf.WriteRect(uint16(x0), uint16(y0+row), uint16(w), 1,
			r.buf[off:off+w]); err != nil {
			return err
		}
	}
	return nil
}

// PresentKeyed transfers the buffer like Present, except pixels equal to
// key leave the destination untouched. Runs of non-key pixels within a row
// are pushed with a single WriteRect each.
func (r *Renderer) PresentKeyed(x, y int, key uint16) error {
	sw, sh := r.surf.Size()

	x0, y0, bx, by, w, h := clipToSurface(x, y, r.width, r.height, int(sw), int(sh))
	if w <= 0 || h <= 0 {
		return nil
	}

	for row := 0; row < h; row++ {
		off := (by + row) * r.width
		runStart := -1
		for col := 0; col <= w; col++ {
			opaque := col < w && r.buf[off+bx+col] != key
			switch {
			case opaque && runStart < 0:
				runStart = col
			case !opaque && runStart >= 0:
				if err := r.surf.WriteRect(uint16(x0+runStart), uint16(y0+row),
					uint16(col-runStart), 1,
					r.buf[off+bx+runStart:off+bx+col]); err != nil {
					return err
				}
				runStart = -1
			}
		}
	}
	return nil
}

// clipToSurface intersects a w-by-h buffer placed at (x, y) with a
// sw-by-sh surface. It returns the surface origin, the buffer origin and
// the size of the visible region.
func clipToSurface(x, y, w, h, sw, sh int) (x0, y0, bx, by, cw, ch int) {
	x0, y0 = x, y
	cw, ch = w, h

	if x0 < 0 {
		bx = -x0
		cw += x0
		x0 = 0
	}
	if y0 < 0 {
		by = -y0
		ch += y0
		y0 = 0
	}
	if x0+cw > sw {
		cw = sw - x0
	}
	if y0+ch > sh {
		ch = sh - y0
	}
	return
}
