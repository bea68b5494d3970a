package st7789

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recTransport records the command/data stream as the panel would see it,
// split into per-command entries by watching the dc line.
type recTransport struct {
	cmdMode bool
	ops     []op
}

type op struct {
	cmd  uint8
	data []uint8
}

type dcPin struct {
	t *recTransport
}

func (p dcPin) Set(high bool) {
	p.t.cmdMode = !high
}

type boolPin struct {
	sets []bool
}

func (p *boolPin) Set(high bool) {
	p.sets = append(p.sets, high)
}

func (t *recTransport) Write8(b uint8) {
	if t.cmdMode {
		t.ops = append(t.ops, op{cmd: b})
		return
	}
	t.appendData(b)
}

func (t *recTransport) Write8n(b uint8, n int) {
	for i := 0; i < n; i++ {
		t.Write8(b)
	}
}

func (t *recTransport) Write8sl(b []uint8) {
	for _, v := range b {
		t.Write8(v)
	}
}

func (t *recTransport) Write16(data uint16) {
	t.appendData(uint8(data>>8), uint8(data))
}

func (t *recTransport) Write16n(data uint16, n int) {
	for i := 0; i < n; i++ {
		t.Write16(data)
	}
}

func (t *recTransport) Write16sl(data []uint16) {
	for _, v := range data {
		t.Write16(v)
	}
}

func (t *recTransport) appendData(b ...uint8) {
	last := len(t.ops) - 1
	t.ops[last].data = append(t.ops[last].data, b...)
}

// last returns the most recent entry for cmd, or nil.
func (t *recTransport) last(cmd uint8) *op {
	for i := len(t.ops) - 1; i >= 0; i-- {
		if t.ops[i].cmd == cmd {
			return &t.ops[i]
		}
	}
	return nil
}

func (t *recTransport) count(cmd uint8) int {
	n := 0
	for _, o := range t.ops {
		if o.cmd == cmd {
			n++
		}
	}
	return n
}

func newP3Device(t *testing.T) (*Device, *recTransport) {
	t.Helper()
	trans := &recTransport{}
	d := New(trans, dcPin{trans}, nil, nil, nil)
	d.Configure(ConfigP3_76x284())
	trans.ops = nil
	return d, trans
}

func TestConfigureInitSequence(t *testing.T) {
	trans := &recTransport{}
	bl := &boolPin{}
	d := New(trans, dcPin{trans}, nil, bl, nil)
	d.Configure(ConfigP3_76x284())

	// no reset pin wired: software reset opens the sequence
	require.NotEmpty(t, trans.ops)
	assert.Equal(t, uint8(CMD_SWRESET), trans.ops[0].cmd)
	assert.Equal(t, uint8(CMD_SLPOUT), trans.ops[1].cmd)

	colmod := trans.last(CMD_COLMOD)
	require.NotNil(t, colmod)
	assert.Equal(t, []uint8{COLMOD_RGB565}, colmod.data)

	madctl := trans.last(CMD_MADCTRL)
	require.NotNil(t, madctl)
	assert.Equal(t, []uint8{0x00}, madctl.data)

	porch := trans.last(CMD_PORCTRL)
	require.NotNil(t, porch)
	assert.Equal(t, []uint8{0x0c, 0x0c, 0x00, 0x33, 0x33}, porch.data)

	gamma := trans.last(CMD_PVGAMCTRL)
	require.NotNil(t, gamma)
	assert.Len(t, gamma.data, 14)

	assert.NotNil(t, trans.last(CMD_INVOFF))
	assert.Nil(t, trans.last(CMD_INVON))
	assert.Equal(t, uint8(CMD_DISON), trans.ops[len(trans.ops)-1].cmd)

	// backlight ends up on
	require.NotEmpty(t, bl.sets)
	assert.True(t, bl.sets[len(bl.sets)-1])
}

func TestConfigureInvert(t *testing.T) {
	trans := &recTransport{}
	d := New(trans, dcPin{trans}, nil, nil, nil)
	cfg := ConfigP3_76x284()
	cfg.Invert = true
	d.Configure(cfg)

	assert.NotNil(t, trans.last(CMD_INVON))
	assert.Nil(t, trans.last(CMD_INVOFF))
}

func TestSizeFollowsRotation(t *testing.T) {
	d, _ := newP3Device(t)

	w, h := d.Size()
	assert.Equal(t, uint16(76), w)
	assert.Equal(t, uint16(284), h)

	d.SetRotation(Rot_90)
	w, h = d.Size()
	assert.Equal(t, uint16(284), w)
	assert.Equal(t, uint16(76), h)
}

func TestMadctlPerRotation(t *testing.T) {
	d, trans := newP3Device(t)

	tests := []struct {
		rot  Rotation
		want uint8
	}{
		{Rot_0, 0x00},
		{Rot_90, MADCTRL_MX | MADCTRL_MH | MADCTRL_MV},
		{Rot_180, MADCTRL_MX | MADCTRL_MH | MADCTRL_MY | MADCTRL_ML},
		{Rot_270, MADCTRL_MV | MADCTRL_MY | MADCTRL_ML},
	}

	for _, tt := range tests {
		trans.ops = nil
		d.SetRotation(tt.rot)
		madctl := trans.last(CMD_MADCTRL)
		require.NotNil(t, madctl, "rotation %d", tt.rot)
		assert.Equal(t, []uint8{tt.want}, madctl.data, "rotation %d", tt.rot)
	}
}

func TestMadctlMirrorAndBGR(t *testing.T) {
	d, trans := newP3Device(t)

	d.SetMirror(true)
	madctl := trans.last(CMD_MADCTRL)
	require.NotNil(t, madctl)
	assert.Equal(t, []uint8{MADCTRL_MX | MADCTRL_MH}, madctl.data)

	trans.ops = nil
	d.SetBGR(true)
	madctl = trans.last(CMD_MADCTRL)
	require.NotNil(t, madctl)
	assert.Equal(t, []uint8{MADCTRL_MX | MADCTRL_MH | MADCTRL_BGR}, madctl.data)
}

func TestWindowOffsetsAtRot0(t *testing.T) {
	d, trans := newP3Device(t)

	// full-panel fill lands at the glass position inside the 320x320 RAM:
	// columns 82..157, rows 18..301
	require.NoError(t, d.FillRectangle(0, 0, 76, 284, 0xf800))

	caset := trans.last(CMD_CASET)
	require.NotNil(t, caset)
	assert.Equal(t, []uint8{0x00, 82, 0x00, 157}, caset.data)

	raset := trans.last(CMD_RASET)
	require.NotNil(t, raset)
	assert.Equal(t, []uint8{0x00, 18, 0x01, 0x2d}, raset.data)

	ramwr := trans.last(CMD_RAMWR)
	require.NotNil(t, ramwr)
	assert.Len(t, ramwr.data, 76*284*2)
}

func TestWindowOffsetsDerivedPerRotation(t *testing.T) {
	tests := []struct {
		rot     Rotation
		wantCol uint8
		wantRow uint16
	}{
		{Rot_0, 82, 18},
		{Rot_90, 18, 320 - 76 - 82},
		{Rot_180, 320 - 76 - 82, 320 - 284 - 18},
		{Rot_270, 320 - 284 - 18, 82},
	}

	for _, tt := range tests {
		d, trans := newP3Device(t)
		d.SetRotation(tt.rot)
		trans.ops = nil

		require.NoError(t, d.DrawPixel(0, 0, 0xffff), "rotation %d", tt.rot)

		caset := trans.last(CMD_CASET)
		require.NotNil(t, caset, "rotation %d", tt.rot)
		assert.Equal(t, []uint8{0x00, tt.wantCol, 0x00, tt.wantCol}, caset.data,
			"rotation %d", tt.rot)

		raset := trans.last(CMD_RASET)
		require.NotNil(t, raset, "rotation %d", tt.rot)
		assert.Equal(t, []uint8{uint8(tt.wantRow >> 8), uint8(tt.wantRow),
			uint8(tt.wantRow >> 8), uint8(tt.wantRow)}, raset.data, "rotation %d", tt.rot)
	}
}

func TestWriteRectStreamsPixels(t *testing.T) {
	d, trans := newP3Device(t)

	pix := []uint16{0x1234, 0x5678, 0x9abc, 0xdef0}
	require.NoError(t, d.WriteRect(1, 2, 2, 2, pix))

	caset := trans.last(CMD_CASET)
	require.NotNil(t, caset)
	assert.Equal(t, []uint8{0x00, 83, 0x00, 84}, caset.data)

	raset := trans.last(CMD_RASET)
	require.NotNil(t, raset)
	assert.Equal(t, []uint8{0x00, 20, 0x00, 21}, raset.data)

	ramwr := trans.last(CMD_RAMWR)
	require.NotNil(t, ramwr)
	assert.Equal(t, []uint8{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0},
		ramwr.data)
}

func TestWriteRectBounds(t *testing.T) {
	d, _ := newP3Device(t)

	pix := make([]uint16, 4)
	assert.Error(t, d.WriteRect(75, 0, 2, 2, pix))
	assert.Error(t, d.WriteRect(0, 283, 2, 2, pix))
	assert.Error(t, d.WriteRect(76, 0, 1, 1, pix))

	// pixel slice shorter than the window
	assert.Error(t, d.WriteRect(0, 0, 4, 4, pix))
}

func TestFillRectangleBounds(t *testing.T) {
	d, _ := newP3Device(t)

	assert.Error(t, d.FillRectangle(0, 0, 77, 1, 0))
	assert.Error(t, d.FillRectangle(0, 284, 1, 1, 0))
	assert.NoError(t, d.FillRectangle(75, 283, 1, 1, 0))
}

func TestWindowCache(t *testing.T) {
	d, trans := newP3Device(t)

	require.NoError(t, d.FillRectangle(5, 5, 10, 10, 0x0001))
	require.NoError(t, d.FillRectangle(5, 5, 10, 10, 0x0002))

	// second fill reuses the cached address window
	assert.Equal(t, 1, trans.count(CMD_CASET))
	assert.Equal(t, 1, trans.count(CMD_RASET))
	assert.Equal(t, 2, trans.count(CMD_RAMWR))

	// rotation invalidates the cache
	d.SetRotation(Rot_0)
	require.NoError(t, d.FillRectangle(5, 5, 10, 10, 0x0003))
	assert.Equal(t, 2, trans.count(CMD_CASET))
}

func TestDrawLines(t *testing.T) {
	d, trans := newP3Device(t)

	// reversed endpoints are normalized
	require.NoError(t, d.DrawHLine(10, 2, 0, 0xffff))
	caset := trans.last(CMD_CASET)
	require.NotNil(t, caset)
	assert.Equal(t, []uint8{0x00, 82 + 2, 0x00, 82 + 10}, caset.data)

	trans.ops = nil
	require.NoError(t, d.DrawVLine(0, 30, 20, 0xffff))
	raset := trans.last(CMD_RASET)
	require.NotNil(t, raset)
	assert.Equal(t, []uint8{0x00, 18 + 20, 0x00, 18 + 30}, raset.data)
}

func TestResetPinSequence(t *testing.T) {
	trans := &recTransport{}
	rst := &boolPin{}
	d := New(trans, dcPin{trans}, nil, nil, rst)
	d.Reset()

	// hardware reset pulses the pin low and issues no software reset
	assert.Equal(t, []bool{true, false, true}, rst.sets)
	assert.Nil(t, trans.last(CMD_SWRESET))
}

func TestScrollCommands(t *testing.T) {
	d, trans := newP3Device(t)

	d.SetScrollArea(16, 32)
	def := trans.last(CMD_VSCRDEF)
	require.NotNil(t, def)
	scrollArea := 320 - 16 - 32
	assert.Equal(t, []uint8{0x00, 16, uint8(scrollArea >> 8), uint8(scrollArea), 0x00, 32},
		def.data)

	d.SetScroll(300)
	add := trans.last(CMD_VSCRSADD)
	require.NotNil(t, add)
	assert.Equal(t, []uint8{0x01, 0x2c}, add.data)
}
