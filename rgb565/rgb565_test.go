package rgb565

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom888(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint16
	}{
		{"black", 0, 0, 0, 0x0000},
		{"white", 255, 255, 255, 0xffff},
		{"red", 255, 0, 0, 0xf800},
		{"green", 0, 255, 0, 0x07e0},
		{"blue", 0, 0, 255, 0x001f},
		{"truncates low bits", 0x07, 0x03, 0x07, 0x0000},
		{"keeps high bits", 0x08, 0x04, 0x08, 0x0821},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, From888(tt.r, tt.g, tt.b))
		})
	}
}

func TestTo888(t *testing.T) {
	r, g, b := To888(0xffff)
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(255), g)
	assert.Equal(t, uint8(255), b)

	r, g, b = To888(0xf800)
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(0), g)
	assert.Equal(t, uint8(0), b)
}

func TestFromHSV(t *testing.T) {
	tests := []struct {
		name string
		h    uint16
		s, v uint8
		want uint16
	}{
		{"red", 0, 100, 100, 0xf800},
		{"yellow", 60, 100, 100, 0xffe0},
		{"green", 120, 100, 100, 0x07e0},
		{"cyan", 180, 100, 100, 0x07ff},
		{"blue", 240, 100, 100, 0x001f},
		{"magenta", 300, 100, 100, 0xf81f},
		{"hue wraps", 360, 100, 100, 0xf800},
		{"hue wraps past full turn", 480, 100, 100, 0x07e0},
		{"zero value is black", 200, 100, 0, 0x0000},
		{"zero saturation is gray", 200, 0, 100, 0xffff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromHSV(tt.h, tt.s, tt.v))
		})
	}
}

func TestFromHSVClampsSaturationAndValue(t *testing.T) {
	assert.Equal(t, FromHSV(30, 100, 100), FromHSV(30, 200, 250))
}
