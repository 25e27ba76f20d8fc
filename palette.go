package fixpoly

import "image/color"

// Palette is the 16-entry color table of the reference 320-mode
// display. Pen 14 (light gray) is the default polygon fill and pen 7
// (red) the default outline; the viewer cycles the remaining entries
// per face.
var Palette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xFF}, // 0: black
	{0x77, 0x77, 0x77, 0xFF}, // 1: dark gray
	{0x88, 0x44, 0x11, 0xFF}, // 2: brown
	{0x77, 0x22, 0xCC, 0xFF}, // 3: purple
	{0x00, 0x00, 0xFF, 0xFF}, // 4: blue
	{0x00, 0x88, 0x00, 0xFF}, // 5: dark green
	{0xFF, 0x77, 0x00, 0xFF}, // 6: orange
	{0xDD, 0x00, 0x00, 0xFF}, // 7: red
	{0xFF, 0xAA, 0x99, 0xFF}, // 8: beige
	{0xFF, 0xFF, 0x00, 0xFF}, // 9: yellow
	{0x00, 0xEE, 0x00, 0xFF}, // 10: green
	{0x44, 0xDD, 0xFF, 0xFF}, // 11: light blue
	{0xDD, 0xAA, 0xFF, 0xFF}, // 12: lilac
	{0x77, 0x88, 0xFF, 0xFF}, // 13: periwinkle
	{0xCC, 0xCC, 0xCC, 0xFF}, // 14: light gray
	{0xFF, 0xFF, 0xFF, 0xFF}, // 15: white
}
