package sprite

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pal := ClassicPalette()
	pal.SetColor(2, 0xbeef)
	src := New(Heart8x8, 8, 8, &pal)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src))
	assert.Equal(t, headerSize+PaletteSize*2+32, buf.Len())

	got, err := Decode(&buf)
	require.NoError(t, err)

	w, h := got.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)
	assert.Equal(t, uint16(0xbeef), got.Palette().ColorAt(2))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, src.PixelIndex(x, y), got.PixelIndex(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestEncodeDecodeOddWidth(t *testing.T) {
	src := New(pack([]uint8{1, 2, 3, 4, 5, 6}), 3, 2, nil)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src))

	got, err := Decode(&buf)
	require.NoError(t, err)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, src.PixelIndex(x, y), got.PixelIndex(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestDecodeConfig(t *testing.T) {
	src := New(Coin8x8, 8, 8, nil)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src))

	w, h, pal, err := DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)
	assert.Equal(t, uint16(0xffe0), pal.ColorAt(5))
}

func TestDecodeTruncated(t *testing.T) {
	src := New(Heart8x8, 8, 8, nil)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src))
	full := buf.Bytes()

	for _, n := range []int{0, 3, headerSize, headerSize + 10, len(full) - 1} {
		_, err := Decode(bytes.NewReader(full[:n]))
		assert.ErrorIs(t, err, errNotEnough, "truncated at %d", n)
	}
}

func TestDecodeRejectsOversizedDimensions(t *testing.T) {
	src := New(Heart8x8, 8, 8, nil)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src))
	full := buf.Bytes()

	// corrupt headers must fail before the pixel allocation: the product
	// of the extreme dimensions overflows int on 32-bit targets
	dims := []struct{ w, h uint16 }{
		{0xffff, 0xffff},
		{0, 8},
		{8, 0},
		{0xffff, 17},
	}

	for _, d := range dims {
		raw := append([]byte(nil), full...)
		binary.LittleEndian.PutUint16(raw[5:], d.w)
		binary.LittleEndian.PutUint16(raw[7:], d.h)

		_, err := Decode(bytes.NewReader(raw))
		assert.ErrorIs(t, err, errBadSize, "%dx%d", d.w, d.h)

		_, _, _, err = DecodeConfig(bytes.NewReader(raw))
		assert.ErrorIs(t, err, errBadSize, "%dx%d", d.w, d.h)
	}
}

func TestDecodeTrailingData(t *testing.T) {
	src := New(Heart8x8, 8, 8, nil)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src))
	buf.WriteByte(0x00)

	_, err := Decode(&buf)
	assert.ErrorIs(t, err, errTooMuch)
}

func TestDecodeBadMagic(t *testing.T) {
	src := New(Heart8x8, 8, 8, nil)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src))
	raw := buf.Bytes()
	raw[0] = 'X'

	_, err := Decode(bytes.NewReader(raw))
	assert.ErrorIs(t, err, errBadMagic)
}

func TestDecodeBadVersion(t *testing.T) {
	src := New(Heart8x8, 8, 8, nil)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src))
	raw := buf.Bytes()
	raw[4] = 0x7f

	_, err := Decode(bytes.NewReader(raw))
	assert.ErrorIs(t, err, errBadVersion)
}

func TestEncodeZeroSize(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Encode(&buf, New(nil, 0, 0, nil)))
}
