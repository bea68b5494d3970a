package st7789

const ( // ST7789/ST7789P3 datasheet, command tables 1 and 2
	CMD_NOP     uint8 = 0x00 // No Operation
	CMD_SWRESET       = 0x01 // Software Reset

	CMD_RDDID  = 0x04 // Read Display ID
	CMD_RDDST  = 0x09 // Read Display Status
	CMD_RDDPM  = 0x0a // Read Display Power Mode
	CMD_RDDIM  = 0x0d // Read Display Image Mode
	CMD_RDDSM  = 0x0e // Read Display Signal Mode
	CMD_RDDSDR = 0x0f // Read Display Self-Diagnostic Result

	CMD_SLPIN  = 0x10 // Enter Sleep Mode
	CMD_SLPOUT = 0x11 // Sleep Out
	CMD_PTLON  = 0x12 // Partial Mode ON
	CMD_NORON  = 0x13 // Normal Display Mode ON
	CMD_INVOFF = 0x20 // Display Inversion OFF
	CMD_INVON  = 0x21 // Display Inversion ON
	CMD_GAMSET = 0x26 // Gamma Set
	CMD_DISOFF = 0x28 // Display OFF
	CMD_DISON  = 0x29 // Display ON

	CMD_CASET    = 0x2a // Column Address Set
	CMD_RASET    = 0x2b // Row Address Set
	CMD_RAMWR    = 0x2c // Memory Write
	CMD_RAMRD    = 0x2e // Memory Read
	CMD_PTLAR    = 0x30 // Partial Area
	CMD_VSCRDEF  = 0x33 // Vertical Scrolling Definition
	CMD_TEOFF    = 0x34 // Tearing Effect Line OFF
	CMD_TEON     = 0x35 // Tearing Effect Line ON
	CMD_MADCTRL  = 0x36 // Memory Data Access Control
	CMD_VSCRSADD = 0x37 // Vertical Scrolling Start Address
	CMD_IDMOFF   = 0x38 // Idle Mode OFF
	CMD_IDMON    = 0x39 // Idle Mode ON
	CMD_COLMOD   = 0x3a // Interface Pixel Format
	CMD_RAMWRC   = 0x3c // Memory Write Continue
	CMD_RAMRDC   = 0x3e // Memory Read Continue

	CMD_WRDISBV  = 0x51 // Write Display Brightness Value
	CMD_RDDISBV  = 0x52 // Read Display Brightness Value
	CMD_WRCTRLD  = 0x53 // Write CTRL Display Value
	CMD_WRCACE   = 0x55 // Write Content Adaptive Brightness Control
	CMD_WRCABCMB = 0x5e // Write CABC Minimum Brightness

	CMD_RAMCTRL  = 0xb0 // RAM Control
	CMD_RGBCTRL  = 0xb1 // RGB Interface Control
	CMD_PORCTRL  = 0xb2 // Porch Setting
	CMD_FRCTRL1  = 0xb3 // Frame Rate Control 1 (Partial/Idle)
	CMD_GCTRL    = 0xb7 // Gate Control
	CMD_DGMEN    = 0xba // Digital Gamma Enable
	CMD_VCOMS    = 0xbb // VCOM Setting
	CMD_LCMCTRL  = 0xc0 // LCM Control
	CMD_IDSET    = 0xc1 // ID Code Setting
	CMD_VDVVRHEN = 0xc2 // VDV and VRH Command Enable
	CMD_VRHS     = 0xc3 // VRH Set
	CMD_VDVS     = 0xc4 // VDV Set
	CMD_VCMOFSET = 0xc5 // VCOM Offset Set
	CMD_FRCTRL2  = 0xc6 // Frame Rate Control 2 (Normal Mode)
	CMD_CABCCTRL = 0xc7 // CABC Control
	CMD_PWCTRL1  = 0xd0 // Power Control 1

	CMD_PVGAMCTRL = 0xe0 // Positive Voltage Gamma Control
	CMD_NVGAMCTRL = 0xe1 // Negative Voltage Gamma Control
	CMD_DGMLUTR   = 0xe2 // Digital Gamma Look-up Table Red
	CMD_DGMLUTB   = 0xe3 // Digital Gamma Look-up Table Blue
	CMD_GATECTRL  = 0xe4 // Gate Control
	CMD_PWCTRL2   = 0xe8 // Power Control 2
	CMD_EQCTRL    = 0xe9 // Equalize Time Control
)

const (
	MADCTRL_MY  uint8 = 0x80 // Row Address Order         1 = address bottom to top
	MADCTRL_MX        = 0x40 // Column Address Order      1 = address right to left
	MADCTRL_MV        = 0x20 // Row/Column Exchange       1 = mirror and rotate 90 ccw
	MADCTRL_ML        = 0x10 // Vertical Refresh Order    1 = refresh bottom to top
	MADCTRL_BGR       = 0x08 // RGB-BGR Order             1 = Blue-Green-Red pixel order
	MADCTRL_MH        = 0x04 // Horizontal Refresh Order  1 = refresh right to left
)

const (
	COLMOD_RGB565 uint8 = 0x05 // 16 bits / pixel
	COLMOD_RGB666       = 0x06 // 18 bits / pixel
)
