package hw

// Cell is one character cell of the text mode screen.
type Cell struct {
	Ch   byte
	Attr Attr
}

// Framebuffer is an in-memory text mode screen. Backends blit it to a real
// terminal, tests read it back.
type Framebuffer struct {
	cells     [Rows * Cols]Cell
	cursorCol int
	cursorRow int
}

var _ Display = (*Framebuffer)(nil)

func NewFramebuffer() *Framebuffer {
	fb := &Framebuffer{}
	fb.Clear(0x07)
	return fb
}

func (fb *Framebuffer) WriteCell(col, row int, ch byte, attr Attr) {
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return
	}
	fb.cells[row*Cols+col] = Cell{Ch: ch, Attr: attr}
}

func (fb *Framebuffer) Clear(attr Attr) {
	for i := range fb.cells {
		fb.cells[i] = Cell{Ch: ' ', Attr: attr}
	}
}

// FillRect uses the full block glyph with the foreground color as background too,
// so the rectangle is solid regardless of the font.
func (fb *Framebuffer) FillRect(col, row, width, height int, attr Attr) {
	solid := MakeAttr(attr.Fg(), attr.Fg())
	for r := row; r < row+height; r++ {
		for c := col; c < col+width; c++ {
			fb.WriteCell(c, r, FullBlock, solid)
		}
	}
}

func (fb *Framebuffer) SetCursor(col, row int) {
	fb.cursorCol, fb.cursorRow = col, row
}

// Cursor returns the hardware cursor position.
func (fb *Framebuffer) Cursor() (col, row int) {
	return fb.cursorCol, fb.cursorRow
}

// Cell returns a cell, the zero Cell outside of the screen.
func (fb *Framebuffer) Cell(col, row int) Cell {
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return Cell{}
	}
	return fb.cells[row*Cols+col]
}

// Text returns the characters of a row.
func (fb *Framebuffer) Text(row int) string {
	if row < 0 || row >= Rows {
		return ""
	}
	line := make([]byte, Cols)
	for col := range line {
		line[col] = fb.cells[row*Cols+col].Ch
	}
	return string(line)
}
