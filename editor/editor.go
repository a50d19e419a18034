// Package editor implements the full screen text editor of the console.
//
// The content is a flat byte buffer mapped row by row into a grid of Width
// columns. Line breaks are stored as '\n' bytes but do not start a new grid
// row, so the cursor position is always row*Width+col.
package editor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rusted-os/ramfat"
	"github.com/rusted-os/ramfat/hw"
)

// Geometry of the editor window.
const (
	Capacity = 8192
	Height   = 22
	// ContentCol is the first screen column of the content, the columns
	// before it hold the line number and a separator.
	ContentCol = 5
	Width      = hw.Cols - ContentCol

	firstRow  = 2
	statusRow = 24
)

const header = " Text Editor v0.1 - [F10] Save  [ESC] Exit "

// Colors of the editor screen.
const (
	attrScreen  hw.Attr = 0x1E
	attrHeader  hw.Attr = 0x70
	attrLineNum hw.Attr = 0x17
	attrText    hw.Attr = 0x1F
	attrStatus  hw.Attr = 0x4F
)

// Store is the part of the file store the editor needs.
type Store interface {
	ReadInto(name ramfat.Name, dst []byte) (int, error)
	Save(name ramfat.Name, data []byte) error
}

var _ Store = (*ramfat.Store)(nil)

type Option func(*Editor)

func WithLogger(log *slog.Logger) Option {
	return func(e *Editor) {
		if log != nil {
			e.log = log
		}
	}
}

// WithStrict keeps the modified flag and shows a status line when saving fails.
// Otherwise a save always counts as done.
func WithStrict(strict bool) Option {
	return func(e *Editor) {
		e.strict = strict
	}
}

// Editor holds one open file.
type Editor struct {
	store   Store
	display hw.Display
	log     *slog.Logger
	strict  bool

	content [Capacity]byte
	size    int

	// Cursor in content space. row counts from the start of the content,
	// offset is the first row shown in the window.
	col, row int
	offset   int

	name     ramfat.Name
	modified bool
	status   string
}

func New(store Store, display hw.Display, opts ...Option) *Editor {
	e := &Editor{
		store:   store,
		display: display,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load replaces the buffer with the content of name. At most Capacity bytes
// are loaded. A missing file results in an empty buffer.
func (e *Editor) Load(name ramfat.Name) error {
	e.name = name
	e.size = 0
	e.col, e.row, e.offset = 0, 0, 0
	e.modified = false
	e.status = ""

	n, err := e.store.ReadInto(name, e.content[:])
	e.size = n
	switch {
	case err == nil:
	case errors.Is(err, ramfat.ErrTruncated):
		e.log.Info("file truncated to the editor capacity", slog.String("name", name.String()))
	default:
		e.log.Debug("load failed", slog.String("name", name.String()), slog.Any("err", err))
		if e.strict {
			e.status = "LOAD FAILED: " + failure(err)
		}
	}
	return err
}

// Open loads name and draws the editor.
func (e *Editor) Open(name ramfat.Name) error {
	err := e.Load(name)
	e.Render()
	return err
}

// Save writes the buffer back to the store.
func (e *Editor) Save() error {
	err := e.store.Save(e.name, e.content[:e.size])
	if err != nil {
		e.log.Warn("save failed", slog.String("name", e.name.String()), slog.Int("size", e.size), slog.Any("err", err))
		if e.strict {
			e.status = "SAVE FAILED: " + failure(err)
			return err
		}
	} else {
		e.log.Debug("saved", slog.String("name", e.name.String()), slog.Int("size", e.size))
	}

	e.modified = false
	e.status = ""
	return err
}

func failure(err error) string {
	switch {
	case errors.Is(err, ramfat.ErrNotFound):
		return "file not found"
	case errors.Is(err, ramfat.ErrOverrun):
		return "file larger than one cluster"
	case errors.Is(err, ramfat.ErrSlotExhausted):
		return "directory full"
	case errors.Is(err, ramfat.ErrClusterExhausted):
		return "disk full"
	default:
		return "unknown error"
	}
}

// HandleKey processes one make code. It returns true if the editor should be
// closed. Break codes are ignored.
func (e *Editor) HandleKey(sc hw.Scancode) (exit bool) {
	if sc.IsBreak() {
		return false
	}

	switch sc {
	case hw.KeyEsc:
		return true
	case hw.KeyF10:
		_ = e.Save()
	case hw.KeyUp:
		e.MoveUp()
	case hw.KeyDown:
		e.MoveDown()
	case hw.KeyLeft:
		e.MoveLeft()
	case hw.KeyRight:
		e.MoveRight()
	case hw.KeyBackspace:
		e.Backspace()
	case hw.KeyDelete:
		e.Delete()
	case hw.KeySpace:
		e.Insert(' ')
	case hw.KeyEnter:
		e.Insert('\n')
	default:
		if c := letter(sc); c != 0 {
			e.Insert(c)
		}
	}

	e.Render()
	return false
}

// letter maps the letter rows and a few punctuation keys. Everything else is ignored.
func letter(sc hw.Scancode) byte {
	switch {
	case sc >= 0x10 && sc <= 0x19:
		return "qwertyuiop"[sc-0x10]
	case sc >= 0x1E && sc <= 0x26:
		return "asdfghjkl"[sc-0x1E]
	case sc >= 0x2C && sc <= 0x32:
		return "zxcvbnm"[sc-0x2C]
	case sc == 0x33:
		return ','
	case sc == 0x34:
		return '.'
	}
	return 0
}

func (e *Editor) pos() int {
	return e.row*Width + e.col
}

func (e *Editor) setPos(p int) {
	e.row, e.col = p/Width, p%Width
	e.scroll()
}

// scroll keeps the cursor row inside the window.
func (e *Editor) scroll() {
	if e.row < e.offset {
		e.offset = e.row
	}
	if e.row >= e.offset+Height {
		e.offset = e.row - Height + 1
	}
}

// Insert puts c at the cursor and advances the cursor.
// It returns false if the buffer is full.
func (e *Editor) Insert(c byte) bool {
	if e.size >= Capacity {
		return false
	}

	p := e.pos()
	copy(e.content[p+1:e.size+1], e.content[p:e.size])
	e.content[p] = c
	e.size++
	e.modified = true
	e.setPos(p + 1)
	return true
}

// Backspace removes the byte before the cursor and moves the cursor onto its place.
func (e *Editor) Backspace() {
	p := e.pos()
	if p == 0 || e.size == 0 {
		return
	}

	copy(e.content[p-1:e.size-1], e.content[p:e.size])
	e.size--
	e.modified = true
	e.setPos(p - 1)
}

// Delete removes the byte under the cursor.
func (e *Editor) Delete() {
	p := e.pos()
	if p >= e.size {
		return
	}

	copy(e.content[p:e.size-1], e.content[p+1:e.size])
	e.size--
	e.modified = true
}

// MoveLeft wraps to the last column of the previous row.
func (e *Editor) MoveLeft() {
	if p := e.pos(); p > 0 {
		e.setPos(p - 1)
	}
}

// MoveRight wraps to the first column of the next row. The cursor never
// passes the end of the content.
func (e *Editor) MoveRight() {
	if p := e.pos(); p < e.size {
		e.setPos(p + 1)
	}
}

func (e *Editor) MoveUp() {
	if e.row > 0 {
		e.row--
		e.scroll()
	}
}

// MoveDown goes one row down, or to the end of the content if that row is shorter.
func (e *Editor) MoveDown() {
	e.setPos(min(e.pos()+Width, e.size))
}

// Render draws the whole editor screen and positions the cursor.
func (e *Editor) Render() {
	d := e.display
	d.Clear(attrScreen)

	hw.Print(d, 0, 0, attrHeader, header)
	title := e.name.String() + "." + string(ramfat.DefaultExt[:])
	if e.modified {
		title += " *"
	}
	hw.Print(d, len(header)+1, 0, attrText, title)

	for r := 0; r < Height; r++ {
		screenRow := r + firstRow
		hw.Print(d, 0, screenRow, attrLineNum, fmt.Sprintf("%03d ", (r+e.offset+1)%1000))
		d.WriteCell(ContentCol-1, screenRow, '|', attrText)

		for c := 0; c < Width; c++ {
			idx := (r+e.offset)*Width + c
			if idx >= e.size {
				break
			}
			d.WriteCell(c+ContentCol, screenRow, e.content[idx], attrText)
		}
	}

	if e.status != "" {
		hw.Print(d, 0, statusRow, attrStatus, e.status)
	}

	d.SetCursor(e.col+ContentCol, e.row-e.offset+firstRow)
	hw.Flush(d)
}

// Content returns a copy of the buffer.
func (e *Editor) Content() []byte {
	return append([]byte(nil), e.content[:e.size]...)
}

func (e *Editor) Size() int {
	return e.size
}

// Cursor returns the cursor in content space.
func (e *Editor) Cursor() (col, row int) {
	return e.col, e.row
}

// Offset returns the first content row shown.
func (e *Editor) Offset() int {
	return e.offset
}

func (e *Editor) Modified() bool {
	return e.modified
}

func (e *Editor) Name() ramfat.Name {
	return e.name
}

// Status returns the message shown in the last row, if any.
func (e *Editor) Status() string {
	return e.status
}
