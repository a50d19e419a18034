// Package tcellhw runs the console in a terminal. A Terminal is the display
// and the keyboard at once: cells are buffered in a hw.Framebuffer and blitted
// on Show, key events are translated into Set-1 make and break codes.
package tcellhw

import (
	"context"
	"errors"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rusted-os/ramfat/checkpoint"
	"github.com/rusted-os/ramfat/hw"
	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrInterrupt is returned by Wait after Ctrl+C.
	ErrInterrupt = errors.New("interrupted")
	// ErrClosed is returned by Wait once the screen delivers no more events.
	ErrClosed = errors.New("terminal closed")
)

// palette maps the 16 text mode colors to the terminal.
var palette = [16]tcell.Color{
	hw.Black:      tcell.ColorBlack,
	hw.Blue:       tcell.ColorNavy,
	hw.Green:      tcell.ColorGreen,
	hw.Cyan:       tcell.ColorTeal,
	hw.Red:        tcell.ColorMaroon,
	hw.Magenta:    tcell.ColorPurple,
	hw.Brown:      tcell.ColorOlive,
	hw.LightGray:  tcell.ColorSilver,
	hw.DarkGray:   tcell.ColorGray,
	hw.LightBlue:  tcell.ColorBlue,
	hw.LightGreen: tcell.ColorLime,
	hw.LightCyan:  tcell.ColorAqua,
	hw.LightRed:   tcell.ColorRed,
	hw.Pink:       tcell.ColorFuchsia,
	hw.Yellow:     tcell.ColorYellow,
	hw.White:      tcell.ColorWhite,
}

// polishGlyphs replace the codes 0x01 to 0x09 after LoadPolishGlyphs.
var polishGlyphs = [...]rune{'ą', 'ć', 'ę', 'ł', 'ń', 'ó', 'ś', 'ź', 'ż'}

// polishKeys are the letter keys which produce a Polish glyph together with ALT.
var polishKeys = map[rune]rune{
	'ą': 'a', 'ć': 'c', 'ę': 'e', 'ł': 'l', 'ń': 'n',
	'ó': 'o', 'ś': 's', 'ź': 'z', 'ż': 'x',
}

var specialKeys = map[tcell.Key]hw.Scancode{
	tcell.KeyEscape:     hw.KeyEsc,
	tcell.KeyEnter:      hw.KeyEnter,
	tcell.KeyBackspace:  hw.KeyBackspace,
	tcell.KeyBackspace2: hw.KeyBackspace,
	tcell.KeyDelete:     hw.KeyDelete,
	tcell.KeyHome:       hw.KeyHome,
	tcell.KeyUp:         hw.KeyUp,
	tcell.KeyDown:       hw.KeyDown,
	tcell.KeyLeft:       hw.KeyLeft,
	tcell.KeyRight:      hw.KeyRight,
	tcell.KeyF5:         hw.KeyF5,
	tcell.KeyF7:         hw.KeyF7,
	tcell.KeyF8:         hw.KeyF8,
	tcell.KeyF10:        hw.KeyF10,
}

// Terminal is a hw.Display and a hw.Keyboard on top of a tcell.Screen.
// Except for the event pump started by New, it must be used from a single goroutine.
type Terminal struct {
	*hw.Framebuffer

	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	pending     []hw.Scancode
	polish      bool
	interrupted bool
}

var (
	_ hw.Display     = (*Terminal)(nil)
	_ hw.Keyboard    = (*Terminal)(nil)
	_ hw.GlyphLoader = (*Terminal)(nil)
	_ hw.Flusher     = (*Terminal)(nil)
)

// New initializes screen and starts pumping its events.
func New(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, checkpoint.From(err)
	}
	screen.SetStyle(tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack))
	screen.Clear()

	t := &Terminal{
		Framebuffer: hw.NewFramebuffer(),
		screen:      screen,
		events:      make(chan tcell.Event, 100),
		quit:        make(chan struct{}),
	}

	go t.pump()
	return t, nil
}

func (t *Terminal) pump() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// Fini stops the event pump and restores the terminal.
func (t *Terminal) Fini() {
	close(t.quit)
	t.screen.Fini()
}

func (t *Terminal) LoadPolishGlyphs() {
	t.polish = true
}

func (t *Terminal) glyph(b byte) rune {
	switch {
	case t.polish && b >= 0x01 && int(b) <= len(polishGlyphs):
		return polishGlyphs[b-1]
	case b < 0x20 || b == 0x7F:
		return ' '
	default:
		return charmap.CodePage437.DecodeByte(b)
	}
}

func style(attr hw.Attr) tcell.Style {
	return tcell.StyleDefault.Foreground(palette[attr.Fg()]).Background(palette[attr.Bg()])
}

// Show blits the framebuffer to the terminal.
func (t *Terminal) Show() {
	for row := 0; row < hw.Rows; row++ {
		for col := 0; col < hw.Cols; col++ {
			cell := t.Cell(col, row)
			t.screen.SetContent(col, row, t.glyph(cell.Ch), nil, style(cell.Attr))
		}
	}
	t.screen.ShowCursor(t.Cursor())
	t.screen.Show()
}

// PollScancode returns the next scancode of the already received events.
func (t *Terminal) PollScancode() (hw.Scancode, bool) {
	for len(t.pending) == 0 {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return 0, false
			}
			t.handle(ev)
		default:
			return 0, false
		}
	}

	sc := t.pending[0]
	t.pending = t.pending[1:]
	return sc, true
}

// Wait blocks until a scancode is pending. It returns ErrInterrupt after
// Ctrl+C was pressed and all scancodes before it were polled.
func (t *Terminal) Wait(ctx context.Context) error {
	for len(t.pending) == 0 {
		if t.interrupted {
			return checkpoint.From(ErrInterrupt)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-t.events:
			if !ok {
				return checkpoint.From(ErrClosed)
			}
			t.handle(ev)
		}
	}
	return nil
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		if isInterrupt(ev) {
			t.interrupted = true
			return
		}
		t.pending = append(t.pending, scancodes(ev)...)
	}
}

func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && unicode.ToLower(ev.Rune()) == 'c'
}

// scancodes translates a key event into the make and break codes of the key.
// ALT is pressed around the key if the event carries the modifier.
func scancodes(ev *tcell.EventKey) []hw.Scancode {
	alt := ev.Modifiers()&tcell.ModAlt != 0

	var sc hw.Scancode
	if ev.Key() == tcell.KeyRune {
		r := unicode.ToLower(ev.Rune())
		if base, ok := polishKeys[r]; ok {
			r, alt = base, true
		}
		if r >= 0x80 {
			return nil
		}
		var ok bool
		if sc, ok = hw.ScancodeOf(byte(r)); !ok {
			return nil
		}
	} else {
		var ok bool
		if sc, ok = specialKeys[ev.Key()]; !ok {
			return nil
		}
	}

	if alt {
		return []hw.Scancode{hw.KeyAlt, sc, sc.Break(), hw.KeyAlt.Break()}
	}
	return []hw.Scancode{sc, sc.Break()}
}
