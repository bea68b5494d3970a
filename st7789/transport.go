package st7789

import (
	"tinygo.org/x/drivers"
)

// Transport is the write-only byte pipe between the driver and the panel.
// Implementations batch writes however suits the underlying bus; 16-bit
// values go out big-endian, the order the panel consumes RGB565 pixels in.
type Transport interface {
	// 8 bit
	Write8(b uint8)
	Write8n(b uint8, n int)
	Write8sl(b []uint8)

	// 16 bit
	Write16(data uint16)
	Write16n(data uint16, n int)
	Write16sl(data []uint16)
}

type spiTransport struct {
	spi drivers.SPI // spi bus
	buf []uint8     // spi data buffer
}

// NewSPITransport wraps an SPI bus in a Transport, staging writes through a
// reusable 64-byte buffer.
func NewSPITransport(spi drivers.SPI) Transport {
	return &spiTransport{
		spi: spi,
		buf: make([]uint8, 64),
	}
}

func (st *spiTransport) Write8(data uint8) {
	st.buf[0] = data
	st.spi.Tx(st.buf[:1], nil)
}

func (st *spiTransport) Write8n(data uint8, n int) {
	for i := range st.buf {
		st.buf[i] = data
	}
	for n > 0 {
		chunk := n
		if chunk > len(st.buf) {
			chunk = len(st.buf)
		}
		st.spi.Tx(st.buf[:chunk], nil)
		n -= chunk
	}
}

func (st *spiTransport) Write8sl(data []uint8) {
	if len(data) == 0 {
		return
	}
	st.spi.Tx(data, nil)
}

func (st *spiTransport) Write16(data uint16) {
	st.buf[0] = uint8(data >> 8)
	st.buf[1] = uint8(data)
	st.spi.Tx(st.buf[:2], nil)
}

func (st *spiTransport) Write16n(data uint16, n int) {
	bufWords := len(st.buf) / 2
	for i := 0; i < bufWords; i++ {
		st.buf[i*2] = uint8(data >> 8)
		st.buf[i*2+1] = uint8(data)
	}
	for n > 0 {
		chunk := n
		if chunk > bufWords {
			chunk = bufWords
		}
		st.spi.Tx(st.buf[:chunk*2], nil)
		n -= chunk
	}
}

func (st *spiTransport) Write16sl(data []uint16) {
	bufWords := len(st.buf) / 2
	for len(data) > 0 {
		chunk := len(data)
		if chunk > bufWords {
			chunk = bufWords
		}
		for i, word := range data[:chunk] {
			st.buf[i*2] = uint8(word >> 8)
			st.buf[i*2+1] = uint8(word)
		}
		st.spi.Tx(st.buf[:chunk*2], nil)
		data = data[chunk:]
	}
}
