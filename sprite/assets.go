package sprite

// Built-in sample sprites, packed two pixels per byte. Indices refer to the
// classic palette: 2 red, 3 green, 4 blue, 5 yellow, 6 magenta, 7 cyan.

// Heart8x8 is an 8x8 heart using indices 0 (transparent) and 2 (red).
var Heart8x8 = []byte{
	0x00, 0x00, 0x00, 0x00,
	0x02, 0x20, 0x02, 0x20,
	0x22, 0x22, 0x22, 0x22,
	0x22, 0x22, 0x22, 0x22,
	0x02, 0x22, 0x22, 0x20,
	0x00, 0x22, 0x22, 0x00,
	0x00, 0x02, 0x20, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

// Coin8x8 is an 8x8 coin using index 5 (yellow).
var Coin8x8 = []byte{
	0x00, 0x05, 0x55, 0x00,
	0x00, 0x55, 0x55, 0x50,
	0x05, 0x55, 0x55, 0x55,
	0x05, 0x55, 0x55, 0x55,
	0x05, 0x55, 0x55, 0x55,
	0x05, 0x55, 0x55, 0x55,
	0x00, 0x55, 0x55, 0x50,
	0x00, 0x05, 0x55, 0x00,
}

// Face16x16 is a 16x16 smiling face using indices 1 (outline), 2 (eyes) and
// 3 (mouth).
var Face16x16 = []byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x11, 0x11, 0x11, 0x11, 0x00, 0x00,
	0x00, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x00,
	0x00, 0x11, 0x11, 0x22, 0x11, 0x22, 0x11, 0x00,
	0x00, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x00,
	0x00, 0x11, 0x33, 0x11, 0x11, 0x11, 0x33, 0x00,
	0x00, 0x11, 0x11, 0x33, 0x33, 0x33, 0x11, 0x00,
	0x00, 0x00, 0x11, 0x11, 0x11, 0x11, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// CharStand12x16 is a 12x16 standing character pose.
var CharStand12x16 = []byte{
	0x00, 0x00, 0x33, 0x33, 0x00, 0x00,
	0x00, 0x03, 0x33, 0x33, 0x30, 0x00,
	0x00, 0x03, 0x44, 0x44, 0x30, 0x00,
	0x00, 0x03, 0x42, 0x24, 0x30, 0x00,
	0x00, 0x03, 0x44, 0x44, 0x30, 0x00,
	0x00, 0x03, 0x34, 0x43, 0x30, 0x00,
	0x00, 0x06, 0x66, 0x66, 0x60, 0x00,
	0x00, 0x66, 0x66, 0x66, 0x66, 0x00,
	0x00, 0x66, 0x66, 0x66, 0x66, 0x00,
	0x00, 0x66, 0x66, 0x66, 0x66, 0x00,
	0x00, 0x06, 0x66, 0x66, 0x60, 0x00,
	0x00, 0x00, 0x66, 0x66, 0x00, 0x00,
	0x00, 0x00, 0x77, 0x77, 0x00, 0x00,
	0x00, 0x00, 0x77, 0x77, 0x00, 0x00,
	0x00, 0x00, 0x77, 0x77, 0x00, 0x00,
	0x00, 0x07, 0x77, 0x77, 0x70, 0x00,
}

// CharWalk1_12x16 is the walk pose with the left foot forward.
var CharWalk1_12x16 = []byte{
	0x00, 0x00, 0x33, 0x33, 0x00, 0x00,
	0x00, 0x03, 0x33, 0x33, 0x30, 0x00,
	0x00, 0x03, 0x44, 0x44, 0x30, 0x00,
	0x00, 0x03, 0x42, 0x24, 0x30, 0x00,
	0x00, 0x03, 0x44, 0x44, 0x30, 0x00,
	0x00, 0x03, 0x34, 0x43, 0x30, 0x00,
	0x00, 0x06, 0x66, 0x66, 0x60, 0x00,
	0x00, 0x66, 0x66, 0x66, 0x66, 0x00,
	0x00, 0x66, 0x66, 0x66, 0x66, 0x00,
	0x00, 0x66, 0x66, 0x66, 0x66, 0x00,
	0x00, 0x06, 0x66, 0x66, 0x60, 0x00,
	0x00, 0x07, 0x66, 0x66, 0x00, 0x00,
	0x00, 0x07, 0x77, 0x77, 0x00, 0x00,
	0x00, 0x07, 0x77, 0x00, 0x77, 0x00,
	0x00, 0x07, 0x77, 0x00, 0x77, 0x00,
	0x00, 0x77, 0x77, 0x07, 0x77, 0x70,
}

// CharWalk2_12x16 is the walk pose with the right foot forward.
var CharWalk2_12x16 = []byte{
	0x00, 0x00, 0x33, 0x33, 0x00, 0x00,
	0x00, 0x03, 0x33, 0x33, 0x30, 0x00,
	0x00, 0x03, 0x44, 0x44, 0x30, 0x00,
	0x00, 0x03, 0x42, 0x24, 0x30, 0x00,
	0x00, 0x03, 0x44, 0x44, 0x30, 0x00,
	0x00, 0x03, 0x34, 0x43, 0x30, 0x00,
	0x00, 0x06, 0x66, 0x66, 0x60, 0x00,
	0x00, 0x66, 0x66, 0x66, 0x66, 0x00,
	0x00, 0x66, 0x66, 0x66, 0x66, 0x00,
	0x00, 0x66, 0x66, 0x66, 0x66, 0x00,
	0x00, 0x06, 0x66, 0x66, 0x60, 0x00,
	0x00, 0x00, 0x66, 0x66, 0x70, 0x00,
	0x00, 0x00, 0x77, 0x77, 0x70, 0x00,
	0x00, 0x77, 0x00, 0x77, 0x70, 0x00,
	0x00, 0x77, 0x00, 0x77, 0x70, 0x00,
	0x07, 0x77, 0x70, 0x77, 0x77, 0x00,
}
