/*
Package st7789 drives ST7789 and ST7789P3 SPI TFT panels.

One Device type covers every panel variant: the differences between modules
(glass size, where the glass sits inside the controller's RAM, color order,
inversion) live in the Config, and the per-rotation address-window offsets
and MADCTL values are derived from it rather than hard-coded per panel.

The driver talks to the bus through the Transport interface, so it can be
exercised on the host with a recording transport and on hardware with
NewSPITransport over machine.SPI.
*/
package st7789

import (
	"errors"
	"time"
)

type Rotation uint8

const ( // clock-wise rotation
	Rot_0   Rotation = iota // portrait
	Rot_90                  // landscape
	Rot_180                 // portrait, flipped
	Rot_270                 // landscape, flipped
)

// Pin is a single GPIO output. A nil Pin means the line is not wired (or is
// driven by hardware, as chip select often is).
type Pin interface {
	Set(high bool)
}

// Config describes a panel module. Width/Height and the offsets are given
// for Rot_0; the driver derives the other rotations.
type Config struct {
	Width        uint16 // panel width at Rot_0
	Height       uint16 // panel height at Rot_0
	MemoryWidth  uint16 // controller RAM width, 0 = 240
	MemoryHeight uint16 // controller RAM height, 0 = 320
	ColumnOffset uint16 // glass x position inside RAM at Rot_0
	RowOffset    uint16 // glass y position inside RAM at Rot_0
	Rotation     Rotation
	Mirror       bool
	BGR          bool
	Invert       bool
}

// ConfigP3_76x284 returns the configuration for the 76x284 ST7789P3 bar
// module. The glass sits at (82, 18) inside the controller's 320x320 RAM;
// the row offset keeps writes off the noisy bottom rows of the panel.
func ConfigP3_76x284() Config {
	return Config{
		Width:        76,
		Height:       284,
		MemoryWidth:  320,
		MemoryHeight: 320,
		ColumnOffset: 82,
		RowOffset:    18,
	}
}

// Device is an ST7789 panel on a write-only transport.
type Device struct {
	trans  Transport
	dc     Pin    // data / command
	cs     Pin    // chip select
	bl     Pin    // backlight
	rst    Pin    // reset
	width  uint16 // panel pixel width at Rot_0
	height uint16 // panel pixel height at Rot_0
	memW   uint16 // controller RAM width
	memH   uint16 // controller RAM height
	colOff uint16 // RAM column offset at Rot_0
	rowOff uint16 // RAM row offset at Rot_0
	rot    Rotation
	mirror bool
	bgr    bool
	x0, x1 uint16 // current address window for
	y0, y1 uint16 //  CMD_CASET and CMD_RASET
}

// New creates a device over the given transport and control pins. The dc
// pin is required; cs, bl and rst may be nil. Configure must be called
// before drawing.
func New(trans Transport, dc, cs, bl, rst Pin) *Device {
	return &Device{
		trans: trans,
		dc:    dc,
		cs:    cs,
		bl:    bl,
		rst:   rst,
	}
}

// Configure resets the panel and runs the ST7789P3 initialization sequence:
// pixel format, porch, gate and voltage setup, frame rate, gamma tables,
// then display on. It leaves the backlight on.
func (d *Device) Configure(cfg Config) {
	d.width = cfg.Width
	d.height = cfg.Height
	if d.width == 0 {
		d.width = 240
	}
	if d.height == 0 {
		d.height = 320
	}
	d.memW = cfg.MemoryWidth
	d.memH = cfg.MemoryHeight
	if d.memW == 0 {
		d.memW = 240
	}
	if d.memH == 0 {
		d.memH = 320
	}
	d.colOff = cfg.ColumnOffset
	d.rowOff = cfg.RowOffset
	d.rot = cfg.Rotation
	d.mirror = cfg.Mirror
	d.bgr = cfg.BGR

	// force the first setWindow to emit both address commands
	d.x0, d.x1, d.y0, d.y1 = 0xffff, 0xffff, 0xffff, 0xffff

	d.Reset()

	d.writeCmd(CMD_SLPOUT)
	time.Sleep(time.Millisecond * 120)

	d.updateMadctl()

	d.writeCmd(CMD_COLMOD, COLMOD_RGB565)

	// porch: normal 0x0c/0x0c, idle 0x33/0x33
	d.writeCmd(CMD_PORCTRL, 0x0c, 0x0c, 0x00, 0x33, 0x33)
	d.writeCmd(CMD_GCTRL, 0x35)    // VGH 13.26V, VGL -10.43V
	d.writeCmd(CMD_VCOMS, 0x19)    // VCOM 0.725V
	d.writeCmd(CMD_LCMCTRL, 0x2c)  // XOR MX, MH
	d.writeCmd(CMD_VDVVRHEN, 0x01) // VDV and VRH from command
	d.writeCmd(CMD_VRHS, 0x12)     // VRH 4.45V
	d.writeCmd(CMD_VDVS, 0x20)     // VDV 0V
	d.writeCmd(CMD_FRCTRL2, 0x0f)  // 60Hz in normal mode
	d.writeCmd(CMD_PWCTRL1, 0xa4, 0xa1)

	d.writeCmd(CMD_PVGAMCTRL,
		0xd0, 0x04, 0x0d, 0x11, 0x13, 0x2b, 0x3f,
		0x54, 0x4c, 0x18, 0x0d, 0x0b, 0x1f, 0x23)
	d.writeCmd(CMD_NVGAMCTRL,
		0xd0, 0x04, 0x0c, 0x11, 0x13, 0x2c, 0x3f,
		0x44, 0x51, 0x2f, 0x1f, 0x1f, 0x20, 0x23)

	if cfg.Invert {
		d.writeCmd(CMD_INVON)
	} else {
		d.writeCmd(CMD_INVOFF)
	}
	d.writeCmd(CMD_NORON)

	d.writeCmd(CMD_DISON)
	time.Sleep(time.Millisecond * 120)

	d.SetBacklight(true)
}

// Size returns the drawable area for the current rotation.
func (d *Device) Size() (uint16, uint16) {
	if d.rot == Rot_0 || d.rot == Rot_180 {
		return d.width, d.height
	}
	return d.height, d.width
}

// windowOffset returns the RAM offsets of the glass for the current
// rotation, derived from the Rot_0 offsets and the RAM dimensions.
func (d *Device) windowOffset() (col, row uint16) {
	switch d.rot {
	case Rot_90:
		return d.rowOff, d.memW - d.width - d.colOff
	case Rot_180:
		return d.memW - d.width - d.colOff, d.memH - d.height - d.rowOff
	case Rot_270:
		return d.memH - d.height - d.rowOff, d.colOff
	default:
		return d.colOff, d.rowOff
	}
}

// DrawPixel draws a single pixel with the specified color.
func (d *Device) DrawPixel(x, y uint16, color uint16) error {
	return d.FillRectangle(x, y, 1, 1, color)
}

// DrawHLine draws a horizontal line with the specified color.
func (d *Device) DrawHLine(x0, x1, y uint16, color uint16) error {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	return d.FillRectangle(x0, y, x1-x0+1, 1, color)
}

// DrawVLine draws a vertical line with the specified color.
func (d *Device) DrawVLine(x, y0, y1 uint16, color uint16) error {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return d.FillRectangle(x, y0, 1, y1-y0+1, color)
}

// FillScreen fills the screen with the specified color.
func (d *Device) FillScreen(color uint16) {
	w, h := d.Size()
	d.FillRectangle(0, 0, w, h, color)
}

// FillRectangle fills a rectangle at given coordinates and dimensions with
// the specified color.
func (d *Device) FillRectangle(x, y, width, height uint16, color uint16) error {
	w, h := d.Size()
	if x >= w || (x+width) > w || y >= h || (y+height) > h {
		return errors.New("rectangle coordinates outside display area")
	}
	d.setWindow(x, y, width, height)

	d.writeCmd(CMD_RAMWR)
	d.startWrite()
	d.trans.Write16n(color, int(width)*int(height))
	d.endWrite()

	return nil
}

// WriteRect streams w*h RGB565 pixels, row-major, into the given window.
func (d *Device) WriteRect(x, y, w, h uint16, pix []uint16) error {
	dw, dh := d.Size()
	if x >= dw || (x+w) > dw || y >= dh || (y+h) > dh {
		return errors.New("rectangle coordinates outside display area")
	}
	if len(pix) < int(w)*int(h) {
		return errors.New("pixel data shorter than rectangle")
	}
	d.setWindow(x, y, w, h)

	d.writeCmd(CMD_RAMWR)
	d.startWrite()
	d.trans.Write16sl(pix[:int(w)*int(h)])
	d.endWrite()

	return nil
}

// SetScrollArea sets an area to scroll with fixed top/bottom parts of the
// display. Rotation affects scroll direction.
func (d *Device) SetScrollArea(topFixedArea, bottomFixedArea uint16) {
	vertScrollArea := d.memH - topFixedArea - bottomFixedArea
	d.writeCmd(CMD_VSCRDEF,
		uint8(topFixedArea>>8),
		uint8(topFixedArea),
		uint8(vertScrollArea>>8),
		uint8(vertScrollArea),
		uint8(bottomFixedArea>>8),
		uint8(bottomFixedArea))
}

// SetScroll sets the vertical scroll address of the display.
func (d *Device) SetScroll(line uint16) {
	d.writeCmd(CMD_VSCRSADD,
		uint8(line>>8),
		uint8(line))
}

// StopScroll returns the display to its normal state.
func (d *Device) StopScroll() {
	d.writeCmd(CMD_NORON)
}

// GetRotation returns the current rotation of the display.
func (d *Device) GetRotation() Rotation {
	return d.rot
}

// SetRotation sets the clock-wise rotation of the display.
func (d *Device) SetRotation(rot Rotation) {
	d.rot = rot
	d.x0, d.x1, d.y0, d.y1 = 0xffff, 0xffff, 0xffff, 0xffff
	d.updateMadctl()
}

// SetMirror switches the display between mirrored and normal output.
func (d *Device) SetMirror(mirror bool) {
	d.mirror = mirror
	d.updateMadctl()
}

// SetBGR switches the display between blue-green-red and red-green-blue
// component order.
func (d *Device) SetBGR(bgr bool) {
	d.bgr = bgr
	d.updateMadctl()
}

// InvertColors turns display inversion on or off.
func (d *Device) InvertColors(invert bool) {
	if invert {
		d.writeCmd(CMD_INVON)
	} else {
		d.writeCmd(CMD_INVOFF)
	}
}

// SetBacklight turns the panel backlight on or off, when a backlight pin is
// wired.
func (d *Device) SetBacklight(on bool) {
	if d.bl != nil {
		d.bl.Set(on)
	}
}

// Sleep puts the panel in or out of sleep mode.
func (d *Device) Sleep(sleep bool) {
	if sleep {
		d.writeCmd(CMD_SLPIN)
	} else {
		d.writeCmd(CMD_SLPOUT)
	}
	time.Sleep(time.Millisecond * 120)
}

// Reset performs a hardware reset if a reset pin is wired, otherwise a
// CMD_SWRESET software reset.
func (d *Device) Reset() {
	if d.rst != nil {
		d.rst.Set(true)
		time.Sleep(time.Millisecond * 50)
		d.rst.Set(false)
		time.Sleep(time.Millisecond * 50)
		d.rst.Set(true)
	} else {
		d.writeCmd(CMD_SWRESET)
	}
	time.Sleep(time.Millisecond * 150)
}

// setWindow defines the output area for subsequent calls to CMD_RAMWR,
// shifted by the rotation's RAM offsets.
func (d *Device) setWindow(x, y, w, h uint16) {
	colOff, rowOff := d.windowOffset()
	x += colOff
	y += rowOff

	x1 := x + w - 1
	if x != d.x0 || x1 != d.x1 {
		d.writeCmd(CMD_CASET,
			uint8(x>>8),
			uint8(x),
			uint8(x1>>8),
			uint8(x1),
		)
		d.x0, d.x1 = x, x1
	}
	y1 := y + h - 1
	if y != d.y0 || y1 != d.y1 {
		d.writeCmd(CMD_RASET,
			uint8(y>>8),
			uint8(y),
			uint8(y1>>8),
			uint8(y1),
		)
		d.y0, d.y1 = y, y1
	}
}

// updateMadctl updates CMD_MADCTRL based settings (mirror, rotation,
// RGB/BGR).
func (d *Device) updateMadctl() {
	madctl := uint8(0)

	if !d.mirror {
		// regular
		switch d.rot {
		case Rot_0:
			madctl = 0
		case Rot_90:
			madctl = MADCTRL_MX | MADCTRL_MH | MADCTRL_MV
		case Rot_180:
			madctl = MADCTRL_MX | MADCTRL_MH | MADCTRL_MY | MADCTRL_ML
		case Rot_270:
			madctl = MADCTRL_MV | MADCTRL_MY | MADCTRL_ML
		}
	} else {
		// mirrored
		switch d.rot {
		case Rot_0:
			madctl = MADCTRL_MX | MADCTRL_MH
		case Rot_90:
			madctl = MADCTRL_MX | MADCTRL_MH | MADCTRL_MY | MADCTRL_ML | MADCTRL_MV
		case Rot_180:
			madctl = MADCTRL_MY | MADCTRL_ML
		case Rot_270:
			madctl = MADCTRL_MV
		}
	}

	if d.bgr {
		madctl |= MADCTRL_BGR
	}

	d.writeCmd(CMD_MADCTRL, madctl)
}

// writeCmd issues a panel command with optional data.
func (d *Device) writeCmd(cmd uint8, data ...uint8) {
	d.startWrite()

	d.dc.Set(false) // command mode
	d.trans.Write8(cmd)

	d.dc.Set(true) // data mode
	d.trans.Write8sl(data)

	d.endWrite()
}

//go:inline
func (d *Device) startWrite() {
	if d.cs != nil {
		d.cs.Set(false)
	}
}

//go:inline
func (d *Device) endWrite() {
	if d.cs != nil {
		d.cs.Set(true)
	}
}
