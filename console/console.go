// Package console is the input driven control state machine of the system.
//
// A Controller owns the global control state, the open editor and the file
// store. It consumes one scancode per Step and draws directly on the display.
// All methods must be called from the goroutine which owns the Controller.
package console

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/rusted-os/ramfat"
	"github.com/rusted-os/ramfat/editor"
	"github.com/rusted-os/ramfat/hw"
)

var (
	// ErrReboot is returned by Run when a reset was requested.
	ErrReboot = errors.New("reboot requested")
	// ErrHalted is returned by Run after a fatal fault. The fault banner is on the screen.
	ErrHalted = errors.New("system halted")
)

// CaptureCapacity is the maximum number of captured characters.
const CaptureCapacity = 60

// commanderRows is the number of files shown by the mini-commander.
const commanderRows = 15

// Mode is the current UI mode.
type Mode uint8

const (
	ModeMain Mode = iota
	ModeMath
	ModeUnicode
	ModeCommander
	ModeCapture
	// ModeEditor is active while a file is open in the editor.
	ModeEditor
)

var modeNames = [...]string{"main", "math", "unicode", "commander", "capture", "editor"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Context tells what a finished capture is used for.
type Context uint8

const (
	FreeEcho Context = iota
	CreateFileName
)

// Action is the result of a Step which has to be handled by the caller.
type Action uint8

const (
	ActionNone Action = iota
	ActionReboot
)

// State is the global control state.
type State struct {
	Mode Mode
	// Previous is the mode a capture returns to.
	Previous Mode
	// LastScancode is the edge detection latch.
	LastScancode hw.Scancode
	Alt          bool

	Capture    [CaptureCapacity]byte
	CaptureLen int
	Context    Context

	Selection int
	FileCount int
}

// FileStore is the part of the store the console needs.
// Generated mock using mockgen:
//  mockgen -source=console.go -destination=store_mock.go -package console
type FileStore interface {
	Create(name ramfat.Name) error
	List(limit int) []ramfat.DirEntry
	ReadInto(name ramfat.Name, dst []byte) (int, error)
	Save(name ramfat.Name, data []byte) error
}

var _ FileStore = (*ramfat.Store)(nil)

type Option func(*Controller)

func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithStrict reports filesystem errors on the screen instead of ignoring them.
func WithStrict(strict bool) Option {
	return func(c *Controller) {
		c.strict = strict
	}
}

// WithSeed fixes the seed of the random number generator.
func WithSeed(seed uint64) Option {
	return func(c *Controller) {
		c.rng = lcg{state: seed}
	}
}

// WithShowScancodes shows every new scancode in the top right corner.
func WithShowScancodes(show bool) Option {
	return func(c *Controller) {
		c.showScancodes = show
	}
}

type Controller struct {
	store   FileStore
	display hw.Display
	log     *slog.Logger

	strict        bool
	showScancodes bool
	rng           lcg

	state   State
	editor  *editor.Editor
	entries []ramfat.DirEntry
}

// New creates a controller. Without WithSeed the generator is seeded from the clock.
func New(store FileStore, display hw.Display, opts ...Option) *Controller {
	c := &Controller{
		store:   store,
		display: display,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		rng:     lcg{state: uint64(time.Now().UnixNano())},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Boot resets the control state and shows the main menu.
func (c *Controller) Boot() {
	c.state = State{}
	c.editor = nil
	c.entries = nil
	c.mainMenu()
	hw.Flush(c.display)
	c.log.Info("booted")
}

// State returns a copy of the control state.
func (c *Controller) State() State {
	return c.state
}

// Step processes one scancode.
//
// A scancode equal to the previous one is ignored. Break codes only clear the
// latch (and the ALT modifier for the ALT key), make codes are dispatched to
// the handler of the current mode. F5 requests a reboot in every mode.
func (c *Controller) Step(sc hw.Scancode) Action {
	if c.state.Mode == ModeEditor {
		return c.stepEditor(sc)
	}

	if sc == c.state.LastScancode {
		return ActionNone
	}
	c.state.LastScancode = sc

	c.latchAlt(sc)
	if sc.IsBreak() {
		c.state.LastScancode = 0
		c.drawScancode(sc)
		hw.Flush(c.display)
		return ActionNone
	}

	c.log.Debug("dispatch", slog.String("mode", c.state.Mode.String()), slog.Int("scancode", int(sc)))
	switch c.state.Mode {
	case ModeMain:
		c.handleMain(sc)
	case ModeMath:
		c.handleMath(sc)
	case ModeUnicode:
		c.handleUnicode(sc)
	case ModeCommander:
		c.handleCommander(sc)
	case ModeCapture:
		c.handleCapture(sc)
	}

	c.drawScancode(sc)
	hw.Flush(c.display)

	if sc == hw.KeyF5 {
		return ActionReboot
	}
	return ActionNone
}

func (c *Controller) latchAlt(sc hw.Scancode) {
	switch sc {
	case hw.KeyAlt:
		c.state.Alt = true
	case hw.KeyAlt.Break():
		c.state.Alt = false
	}
}

// stepEditor feeds the open editor. The editor reacts to every make code,
// held keys repeat.
func (c *Controller) stepEditor(sc hw.Scancode) Action {
	c.latchAlt(sc)
	if sc.IsBreak() {
		c.state.LastScancode = 0
		return ActionNone
	}
	c.state.LastScancode = sc

	if sc == hw.KeyF5 {
		return ActionReboot
	}

	if c.editor.HandleKey(sc) {
		c.log.Debug("editor closed", slog.String("name", c.editor.Name().String()), slog.Bool("modified", c.editor.Modified()))
		c.editor = nil
		c.state.Mode = ModeCommander
		c.commander()
		hw.Flush(c.display)
	}
	return ActionNone
}

// drawScancode shows the hex code of sc as "SC xx" in the top right corner.
func (c *Controller) drawScancode(sc hw.Scancode) {
	if !c.showScancodes {
		return
	}
	const digits = "0123456789ABCDEF"
	c.display.WriteCell(74, 0, 'S', 0x0F)
	c.display.WriteCell(75, 0, 'C', 0x0F)
	c.display.WriteCell(77, 0, digits[sc>>4], 0x0E)
	c.display.WriteCell(78, 0, digits[sc&0x0F], 0x0E)
}
