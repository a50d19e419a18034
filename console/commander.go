package console

import (
	"log/slog"

	"github.com/rusted-os/ramfat"
	"github.com/rusted-os/ramfat/editor"
	"github.com/rusted-os/ramfat/hw"
)

const (
	listCol      = 4
	listRow      = 4
	footerRow    = 22
	attrFrame    = 0x01
	attrSelected = 0x70
	attrEntry    = 0x1F
)

// commander draws the mini-commander frame and its file list.
func (c *Controller) commander() {
	d := c.display
	d.Clear(0x00)
	d.FillRect(1, 1, 78, 22, attrFrame)
	hw.Print(d, 2, 1, attrEntry, " FAT16 MINI-COMMANDER ")

	c.refreshList()
}

// refreshList reads the directory again and draws the list and the footer.
// The selection is clamped to the listed files.
func (c *Controller) refreshList() {
	st := &c.state
	d := c.display

	c.entries = c.store.List(commanderRows)
	st.FileCount = len(c.entries)
	st.Selection = max(0, min(st.Selection, st.FileCount-1))

	ext := "." + string(ramfat.DefaultExt[:])
	for i, e := range c.entries {
		attr := hw.Attr(attrEntry)
		if i == st.Selection {
			attr = attrSelected
		}
		name := e.FileName()
		hw.PrintBytes(d, listCol, listRow+i, attr, name[:])
		hw.Print(d, listCol+len(name)+1, listRow+i, attr, ext)
	}

	d.FillRect(1, footerRow, 78, 1, attrFrame)
	if st.FileCount == 0 {
		hw.Print(d, 2, footerRow, 0x0E, " No files. [F7] New  [ESC] Exit ")
	} else {
		hw.Print(d, 2, footerRow, 0x0F, " [UP/DOWN] Select  [ENTER] Open  [F7] New  [ESC] Exit ")
	}
}

func (c *Controller) handleCommander(sc hw.Scancode) {
	st := &c.state
	d := c.display

	switch sc {
	case hw.KeyUp:
		if st.Selection > 0 {
			st.Selection--
		}
		c.refreshList()
	case hw.KeyDown:
		if st.Selection+1 < st.FileCount {
			st.Selection++
		}
		c.refreshList()
	case hw.KeyF7:
		d.FillRect(9, 7, 62, 10, 0x07)
		d.FillRect(10, 8, 60, 8, attrFrame)
		hw.Print(d, 12, 9, attrEntry, " CREATE FILE ")
		hw.Print(d, 12, 11, attrEntry, "Name (8 chars, A-Z/0-9):")
		c.beginCapture(CreateFileName)
	case hw.KeyEnter:
		if st.FileCount == 0 {
			hw.Print(d, 2, footerRow, 0x0E, " No files - press F7 to create one ")
			return
		}
		c.openEditor(c.entries[st.Selection].FileName())
	case hw.KeyEsc:
		c.mainMenu()
	}
}

func (c *Controller) openEditor(name ramfat.Name) {
	c.editor = editor.New(c.store, c.display, editor.WithLogger(c.log), editor.WithStrict(c.strict))
	if err := c.editor.Open(name); err != nil {
		c.log.Debug("open failed", slog.String("name", name.String()), slog.Any("err", err))
	}
	c.state.Mode = ModeEditor
}
