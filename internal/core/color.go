package core

import "fmt"

// Color is an index into the fantasy-console palette.
// Hosts resolve it to RGB (pixel hosts) or hex styles (terminal hosts).
type Color uint8

// Palette indices. The numbering is fixed by the stage and sprite data files.
const (
	ColorBlack Color = iota
	ColorRed
	ColorDarkGreen
	ColorYellow
	ColorBlue
	ColorPurple
	ColorBrown
	ColorGray
	ColorDarkGray
	ColorLightRed
	ColorGreen
	ColorLightYellow
	ColorSkyBlue
	ColorPink
	ColorCyan
	ColorWhite
	ColorTan

	// ColorTransparent marks a pixel or cell that shows whatever is below it.
	ColorTransparent Color = 0xFF
)

// NumColors is the number of opaque palette entries.
const NumColors = int(ColorTan) + 1

// rgb holds the palette entries in index order.
var rgb = [NumColors][3]uint8{
	{0x00, 0x00, 0x00}, // black
	{0xd8, 0x30, 0x28}, // red
	{0x20, 0x70, 0x30}, // dark green
	{0xf0, 0xc0, 0x30}, // yellow
	{0x30, 0x50, 0xd0}, // blue
	{0x80, 0x40, 0xb0}, // purple
	{0x98, 0x58, 0x30}, // brown
	{0xa0, 0xa0, 0xa0}, // gray
	{0x58, 0x58, 0x58}, // dark gray
	{0xf0, 0x78, 0x60}, // light red
	{0x40, 0xb8, 0x40}, // green
	{0xf8, 0xe8, 0x78}, // light yellow
	{0x78, 0xb8, 0xf8}, // sky blue
	{0xf0, 0xa0, 0xc8}, // pink
	{0x40, 0xd0, 0xd0}, // cyan
	{0xf8, 0xf8, 0xf8}, // white
	{0xc0, 0x88, 0x50}, // tan
}

// Valid reports whether c is an opaque palette entry.
func (c Color) Valid() bool {
	return int(c) < NumColors
}

// RGB returns the colour components. Transparent and unknown colours are black.
func (c Color) RGB() (r, g, b uint8) {
	if !c.Valid() {
		return 0, 0, 0
	}
	e := rgb[c]
	return e[0], e[1], e[2]
}

// Hex returns the colour as "#rrggbb", or "" for transparent.
func (c Color) Hex() string {
	if !c.Valid() {
		return ""
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
