package hw

// Scancode is a Set-1 keyboard code. A make code reports a key press, the
// matching break code has the top bit set.
type Scancode uint8

// BreakBit turns a make code into its break code.
const BreakBit Scancode = 0x80

// Make codes used by the console.
const (
	KeyEsc       Scancode = 0x01
	Key1         Scancode = 0x02
	Key2         Scancode = 0x03
	Key3         Scancode = 0x04
	Key4         Scancode = 0x05
	Key5         Scancode = 0x06
	Key6         Scancode = 0x07
	Key7         Scancode = 0x08
	Key8         Scancode = 0x09
	Key9         Scancode = 0x0A
	Key0         Scancode = 0x0B
	KeyBackspace Scancode = 0x0E
	KeyE         Scancode = 0x12
	KeyI         Scancode = 0x17
	KeyO         Scancode = 0x18
	KeyA         Scancode = 0x1E
	KeyS         Scancode = 0x1F
	KeyL         Scancode = 0x26
	KeyEnter     Scancode = 0x1C
	KeyZ         Scancode = 0x2C
	KeyX         Scancode = 0x2D
	KeyC         Scancode = 0x2E
	KeyN         Scancode = 0x31
	KeyM         Scancode = 0x32
	KeyAlt       Scancode = 0x38
	KeySpace     Scancode = 0x39
	KeyF5        Scancode = 0x3F
	KeyF7        Scancode = 0x41
	KeyF8        Scancode = 0x42
	KeyF10       Scancode = 0x44
	KeyHome      Scancode = 0x47
	KeyUp        Scancode = 0x48
	KeyLeft      Scancode = 0x4B
	KeyRight     Scancode = 0x4D
	KeyDown      Scancode = 0x50
	KeyDelete    Scancode = 0x53
	KeyF13       Scancode = 0x64
)

func (s Scancode) IsBreak() bool {
	return s&BreakBit != 0
}

// Break returns the break code of a make code.
func (s Scancode) Break() Scancode {
	return s | BreakBit
}

// Make strips the break bit.
func (s Scancode) Make() Scancode {
	return s &^ BreakBit
}

// qwerty maps the make codes of the printable keys to their unshifted US QWERTY character.
var qwerty = [...]byte{
	0x02: '1', 0x03: '2', 0x04: '3', 0x05: '4', 0x06: '5',
	0x07: '6', 0x08: '7', 0x09: '8', 0x0A: '9', 0x0B: '0',
	0x0C: '-', 0x0D: '=',
	0x10: 'q', 0x11: 'w', 0x12: 'e', 0x13: 'r', 0x14: 't',
	0x15: 'y', 0x16: 'u', 0x17: 'i', 0x18: 'o', 0x19: 'p',
	0x1A: '[', 0x1B: ']',
	0x1E: 'a', 0x1F: 's', 0x20: 'd', 0x21: 'f', 0x22: 'g',
	0x23: 'h', 0x24: 'j', 0x25: 'k', 0x26: 'l',
	0x27: ';', 0x28: '\'', 0x29: '`', 0x2B: '\\',
	0x2C: 'z', 0x2D: 'x', 0x2E: 'c', 0x2F: 'v', 0x30: 'b',
	0x31: 'n', 0x32: 'm',
	0x33: ',', 0x34: '.', 0x35: '/',
	0x39: ' ',
}

// Char returns the unshifted QWERTY character of a make code, or 0.
func Char(s Scancode) byte {
	if int(s) >= len(qwerty) {
		return 0
	}
	return qwerty[s]
}

// ScancodeOf is the inverse of Char. Upper case letters map to their key.
func ScancodeOf(c byte) (Scancode, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c == 0 {
		return 0, false
	}
	for s, q := range qwerty {
		if q == c {
			return Scancode(s), true
		}
	}
	return 0, false
}
