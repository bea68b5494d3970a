package sprite

import (
	"encoding/binary"
	"errors"
	"io"
)

// Binary sprite stream layout, all fields little-endian:
//
//	4 bytes  magic "RPIX"
//	1 byte   version (currently 1)
//	2 bytes  width
//	2 bytes  height
//	32 bytes palette, 16 RGB565 colors
//	ceil(width*height/2) bytes of packed pixel indices
//
// The stream must end exactly after the pixel data.

const (
	codecVersion = 1
	headerSize   = 4 + 1 + 2 + 2

	// maxPixels caps the decoded image size. A full 320x320 controller RAM
	// is 102400 pixels; anything near the uint16 field limits is a corrupt
	// header, and the product must not overflow int on 32-bit targets.
	maxPixels = 1 << 20
)

var magic = [4]byte{'R', 'P', 'I', 'X'}

var (
	errBadMagic   = errors.New("sprite: bad magic")
	errBadVersion = errors.New("sprite: unsupported version")
	errBadSize    = errors.New("sprite: invalid dimensions")
	errNotEnough  = errors.New("sprite: not enough image data")
	errTooMuch    = errors.New("sprite: too much image data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	width  int
	height int
	pal    Palette
	data   []byte

	tmp [headerSize + PaletteSize*2]byte
}

func (d *decoder) readHeader() error {
	if err := readFull(d.r, d.tmp[:]); err != nil {
		return err
	}

	if [4]byte(d.tmp[:4]) != magic {
		return errBadMagic
	}
	if d.tmp[4] != codecVersion {
		return errBadVersion
	}

	d.width = int(binary.LittleEndian.Uint16(d.tmp[5:]))
	d.height = int(binary.LittleEndian.Uint16(d.tmp[7:]))
	if d.width == 0 || d.height == 0 || d.width > maxPixels/d.height {
		return errBadSize
	}

	for i := 0; i < PaletteSize; i++ {
		d.pal.colors[i] = binary.LittleEndian.Uint16(d.tmp[headerSize+i*2:])
	}
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := d.readHeader(); err != nil {
		if err == io.ErrUnexpectedEOF {
			return errNotEnough
		}
		return err
	}

	if configOnly {
		return nil
	}

	d.data = make([]byte, (d.width*d.height+1)/2)
	if err := readFull(d.r, d.data); err != nil {
		if err == io.ErrUnexpectedEOF {
			return errNotEnough
		}
		return err
	}

	if n, err := r.Read(d.tmp[:1]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil && err != io.EOF {
			return err
		}
		return errTooMuch
	}

	return nil
}

// Decode reads a sprite stream from r and returns it as an Image.
func Decode(r io.Reader) (*Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return New(d.data, d.width, d.height, &d.pal), nil
}

// DecodeConfig returns the dimensions and palette of a sprite stream without
// decoding the pixel data.
func DecodeConfig(r io.Reader) (w, h int, pal Palette, err error) {
	var d decoder
	if err = d.decode(r, true); err != nil {
		return 0, 0, Palette{}, err
	}
	return d.width, d.height, d.pal, nil
}

// Encode writes img to w as a sprite stream.
func Encode(w io.Writer, img *Image) error {
	iw, ih := img.Size()
	if iw == 0 || ih == 0 || iw > 0xffff || ih > 0xffff {
		return errBadSize
	}

	var hdr [headerSize + PaletteSize*2]byte
	copy(hdr[:4], magic[:])
	hdr[4] = codecVersion
	binary.LittleEndian.PutUint16(hdr[5:], uint16(iw))
	binary.LittleEndian.PutUint16(hdr[7:], uint16(ih))
	for i := 0; i < PaletteSize; i++ {
		binary.LittleEndian.PutUint16(hdr[headerSize+i*2:], img.pal.colors[i])
	}
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	// Repack from pixel reads rather than copying img.data: short backing
	// slices come out zero-padded. Packing is linear over y*width+x, so for
	// odd widths a byte can straddle two rows.
	var b [1]byte
	total := iw * ih
	for p := 0; p < total; p += 2 {
		b[0] = img.PixelIndex(p%iw, p/iw)
		if p+1 < total {
			b[0] |= img.PixelIndex((p+1)%iw, (p+1)/iw) << 4
		}
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}

	return nil
}
