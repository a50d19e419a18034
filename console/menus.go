package console

import (
	"fmt"

	"github.com/rusted-os/ramfat/hw"
)

type legendEntry struct {
	key      string
	keyAttr  hw.Attr
	label    string
	labelAtt hw.Attr
}

var mainLegend = []legendEntry{
	{"Key 1", 0x0C, "Mode1", 0x0A},
	{"Key 2", 0x0A, "Mode2", 0x0B},
	{"Key 3", 0x0E, "Mode3", 0x0C},
	{"Key 4", 0x09, "Line", 0x0D},
	{"Key 9", 0x01, "Secrets", 0x07},
	{"Key M", 0x0D, "Math", 0x09},
	{"Key I", 0x0B, "Input", 0x0E},
	{"HOME", 0x03, "Files", 0x0B},
	{"F8", 0x06, "Unicode", 0x0E},
	{"ESC", 0x05, "Clear", 0x04},
	{"F5", 0x02, "Reboot", 0x06},
}

// unicodeKeys open the unicode menu. Keyboards report F8 differently
// depending on the scancode set, so a few aliases are accepted.
var unicodeKeys = map[hw.Scancode]bool{
	hw.KeyF8:  true,
	hw.Key6:   true,
	hw.Key8:   true,
	hw.KeyF13: true,
}

func (c *Controller) mainMenu() {
	c.state.Mode = ModeMain

	d := c.display
	d.Clear(0x00)

	title := "Rusted"
	colors := []hw.Attr{0x0F, 0x0A, 0x0E, 0x0C, 0x0B, 0x05}
	for i := 0; i < len(title); i++ {
		d.WriteCell(i, 0, title[i], colors[i])
	}

	for i, e := range mainLegend {
		row := 1 + i
		hw.Print(d, 0, row, 0x0F, "Click")
		hw.Print(d, 6, row, e.keyAttr, e.key)
		d.WriteCell(12, row, '-', 0x0F)
		hw.Print(d, 14, row, e.labelAtt, e.label)
	}
}

func (c *Controller) handleMain(sc hw.Scancode) {
	d := c.display

	switch {
	case sc == hw.Key1:
		hw.Print(d, 0, 0, 0x0A, "Rusted M1")
	case sc == hw.Key2:
		hw.Print(d, 0, 0, 0x0E, "Rusted M2")
	case sc == hw.Key3:
		hw.Print(d, 0, 0, 0x0C, "Rusted M3")
	case sc == hw.Key4:
		d.FillRect(0, 12, hw.Cols, 1, 0x02)
	case sc == hw.Key9:
		// Secrets.
	case sc == hw.KeyM:
		c.mathMenu()
	case sc == hw.KeyI:
		c.beginCapture(FreeEcho)
	case sc == hw.KeyHome:
		c.state.Selection = 0
		c.state.Mode = ModeCommander
		c.commander()
	case unicodeKeys[sc]:
		c.unicodeMenu()
	case sc == hw.KeyEsc:
		d.Clear(0x00)
	}
}

func (c *Controller) mathMenu() {
	c.state.Mode = ModeMath
	c.display.Clear(0x00)
	hw.Print(c.display, 0, 0, 0x0F, "MATH MENU: 1-Add, 2-Sub, 3-Mul, 4-Div, 9-Rand, 0-Back")
}

type mathOp struct {
	title     string
	titleAttr hw.Attr
	a, b      int
	op        byte
}

var mathOps = map[hw.Scancode]mathOp{
	hw.Key1: {"Addition selected!", 0x0A, 2, 2, '+'},
	hw.Key2: {"Subtraction selected!", 0x0E, 5, 3, '-'},
	hw.Key3: {"Multiplication selected!", 0x0C, 3, 4, '*'},
	hw.Key4: {"Division selected!", 0x09, 8, 2, '/'},
}

func (op mathOp) result() int {
	switch op.op {
	case '+':
		return op.a + op.b
	case '-':
		return op.a - op.b
	case '*':
		return op.a * op.b
	default:
		return op.a / op.b
	}
}

func (c *Controller) handleMath(sc hw.Scancode) {
	d := c.display

	if op, ok := mathOps[sc]; ok {
		hw.Print(d, 0, 10, op.titleAttr, fmt.Sprintf("%-30s", op.title))
		hw.Print(d, 0, 11, 0x0F, fmt.Sprintf("%d %c %d = %-20d", op.a, op.op, op.b, op.result()))
		return
	}

	switch sc {
	case hw.Key9:
		n := c.rng.next() % 100
		hw.Print(d, 0, 10, 0x07, fmt.Sprintf("Random Number: %-15d", n))
		hw.Print(d, 0, 11, 0x07, fmt.Sprintf("%30s", ""))
	case hw.Key0:
		c.mainMenu()
	}
}

// polishSample reads "Zażółć gęślą jaźń" with the glyphs loaded at 0x01-0x09.
const polishSample = "Za\x09\x06\x04\x02 g\x03\x07l\x01 ja\x08\x05"

func (c *Controller) unicodeMenu() {
	c.state.Mode = ModeUnicode

	d := c.display
	d.Clear(0x00)
	if gl, ok := d.(hw.GlyphLoader); ok {
		gl.LoadPolishGlyphs()
	}

	hw.Print(d, 0, 0, 0x0F, "POLISH MODE (UTF8-MAPPED) ACTIVE")
	hw.Print(d, 0, 2, 0x0E, polishSample)
	hw.Print(d, 0, 4, 0x0B, "Available characters:")
	hw.Print(d, 0, 5, 0x0A, "\x01 \x02 \x03 \x04 \x05 \x06 \x07 \x08 \x09")
	hw.Print(d, 0, 24, 0x70, " Press 0 to return to the main menu ")
}

func (c *Controller) handleUnicode(sc hw.Scancode) {
	switch sc {
	case hw.Key0:
		c.mainMenu()
	case hw.Key1:
		d := c.display
		d.Clear(0x00)
		hw.Print(d, 0, 5, 0x0C, "High resolution mode needs a graphics driver!")
		hw.Print(d, 0, 6, 0x0C, "The text console can not switch video modes.")
		hw.Print(d, 0, 8, 0x0E, "Press 0 to return")
	}
}
