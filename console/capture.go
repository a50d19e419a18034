package console

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/rusted-os/ramfat"
	"github.com/rusted-os/ramfat/hw"
)

const (
	inputRow  = 24
	echoCol   = 9
	attrInput = 0x70
)

// altKeys maps letter keys pressed together with ALT to the codes of the
// Polish glyphs: ą ć ę ł ń ó ś ź ż.
var altKeys = map[hw.Scancode]byte{
	hw.KeyA: 0x01,
	hw.KeyC: 0x02,
	hw.KeyE: 0x03,
	hw.KeyL: 0x04,
	hw.KeyN: 0x05,
	hw.KeyO: 0x06,
	hw.KeyS: 0x07,
	hw.KeyZ: 0x08,
	hw.KeyX: 0x09,
}

// captureChar maps a make code to the captured byte. Letters are upper case.
func captureChar(sc hw.Scancode, alt bool) byte {
	if alt {
		return altKeys[sc]
	}
	c := hw.Char(sc)
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

func (c *Controller) beginCapture(ctx Context) {
	c.state.Previous = c.state.Mode
	c.state.Mode = ModeCapture
	c.state.Context = ctx
	c.state.CaptureLen = 0

	d := c.display
	d.FillRect(0, inputRow, hw.Cols, 1, 0x07)
	if ctx == CreateFileName {
		hw.Print(d, 0, inputRow, attrInput, " NAME > ")
	} else {
		hw.Print(d, 0, inputRow, attrInput, " INPUT > ")
	}
}

// endCapture leaves the capture and clears the input bar.
func (c *Controller) endCapture() {
	c.state.CaptureLen = 0
	c.state.Mode = c.state.Previous
	hw.Print(c.display, 0, inputRow, 0x00, blankRow)
}

var blankRow = strings.Repeat(" ", hw.Cols)

func (c *Controller) handleCapture(sc hw.Scancode) {
	st := &c.state
	d := c.display

	switch sc {
	case hw.KeyEnter:
		if st.CaptureLen == 0 {
			return
		}
		c.commitCapture()
	case hw.KeyEsc:
		ctx := st.Context
		c.endCapture()
		if ctx == CreateFileName {
			c.state.Mode = ModeCommander
			c.commander()
		}
	case hw.KeyBackspace:
		if st.CaptureLen > 0 {
			st.CaptureLen--
			d.WriteCell(echoCol+st.CaptureLen, inputRow, ' ', attrInput)
		}
	case hw.KeyHome:
		st.CaptureLen = 0
		st.Selection = 0
		st.Mode = ModeCommander
		c.commander()
	case hw.KeyAlt:
	default:
		ch := captureChar(sc, st.Alt)
		if ch == 0 || st.CaptureLen >= CaptureCapacity {
			return
		}
		st.Capture[st.CaptureLen] = ch
		d.WriteCell(echoCol+st.CaptureLen, inputRow, ch, attrInput)
		st.CaptureLen++
	}
}

func (c *Controller) commitCapture() {
	st := &c.state
	captured := st.Capture[:st.CaptureLen]

	if st.Context == FreeEcho {
		hw.Print(c.display, 0, 22, 0x0E, "LAST INPUT: ")
		hw.PrintBytes(c.display, 12, 22, 0x0F, captured)
		c.log.Debug("input captured", slog.String("text", string(captured)))
		c.endCapture()
		return
	}

	name := ramfat.NameFromBytes(captured[:min(len(captured), len(ramfat.Name{}))])
	err := c.store.Create(name)
	if err != nil {
		c.log.Debug("create failed", slog.String("name", name.String()), slog.Any("err", err))
	} else {
		c.log.Info("file created", slog.String("name", name.String()))
	}

	c.endCapture()
	st.Mode = ModeCommander
	c.commander()

	if err != nil && c.strict {
		hw.Print(c.display, 2, 23, 0x4F, "Create failed: "+createFailure(err))
		return
	}
	hw.Print(c.display, 2, 23, 0x0A, "File created")
}

func createFailure(err error) string {
	switch {
	case errors.Is(err, ramfat.ErrSlotExhausted):
		return "directory full"
	case errors.Is(err, ramfat.ErrClusterExhausted):
		return "disk full"
	case errors.Is(err, ramfat.ErrExists):
		return "file exists"
	case errors.Is(err, ramfat.ErrInvalidName):
		return "invalid name"
	default:
		return "unknown error"
	}
}
