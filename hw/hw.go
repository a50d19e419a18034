// Package hw describes the collaborators the console runs on: a text mode
// display of 80x25 character cells and a keyboard delivering Set-1 scancodes.
package hw

import "context"

// Screen geometry of the text mode.
const (
	Cols = 80
	Rows = 25
)

// Color is one of the 16 text mode colors.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

// Attr is a cell attribute: foreground in the low nibble, background in the high nibble.
type Attr uint8

func MakeAttr(fg, bg Color) Attr {
	return Attr(bg&0x0F)<<4 | Attr(fg&0x0F)
}

func (a Attr) Fg() Color { return Color(a & 0x0F) }
func (a Attr) Bg() Color { return Color(a >> 4) }

// FullBlock is the code page 437 glyph used to fill rectangles.
const FullBlock byte = 0xDB

// Display is a text mode screen.
// Generated mock using mockgen:
//  mockgen -source=hw.go -destination=hw_mock.go -package hw
type Display interface {
	// WriteCell puts ch with attr into a cell. Cells outside of the screen are ignored.
	WriteCell(col, row int, ch byte, attr Attr)
	// Clear fills the screen with spaces of attr.
	Clear(attr Attr)
	// FillRect draws solid blocks in the foreground color of attr.
	FillRect(col, row, width, height int, attr Attr)
	// SetCursor moves the hardware cursor.
	SetCursor(col, row int)
}

// Keyboard delivers raw scancodes.
type Keyboard interface {
	// PollScancode returns the next pending scancode without blocking.
	PollScancode() (Scancode, bool)
	// Wait blocks until data is ready or ctx is done.
	Wait(ctx context.Context) error
}

// GlyphLoader is implemented by displays which can replace the glyphs of the
// codes 0x01 to 0x09 by the Polish diacritics ą ć ę ł ń ó ś ź ż.
type GlyphLoader interface {
	LoadPolishGlyphs()
}

// Flusher is implemented by displays which buffer their cells.
type Flusher interface {
	Show()
}

// Print writes text starting at col, row without wrapping.
func Print(d Display, col, row int, attr Attr, text string) {
	for i := 0; i < len(text); i++ {
		d.WriteCell(col+i, row, text[i], attr)
	}
}

// PrintBytes is Print for raw bytes.
func PrintBytes(d Display, col, row int, attr Attr, text []byte) {
	for i, c := range text {
		d.WriteCell(col+i, row, c, attr)
	}
}

// Flush shows buffered cells if the display needs it.
func Flush(d Display) {
	if f, ok := d.(Flusher); ok {
		f.Show()
	}
}
