package ramfat

import (
	"os"
	"time"
)

// FileInfo describes the entry as os.FileInfo.
func (e DirEntry) FileInfo() os.FileInfo {
	return entryHeaderFileInfo{e}
}

type entryHeaderFileInfo struct {
	entry DirEntry
}

func (e entryHeaderFileInfo) Name() string {
	name := e.entry.FileName().String()
	ext := string(e.entry.Ext[:])
	if ext == "   " {
		return name
	}
	return name + "." + ext
}

func (e entryHeaderFileInfo) Size() int64 {
	return int64(e.entry.FileSize)
}

func (e entryHeaderFileInfo) Mode() os.FileMode {
	if e.IsDir() {
		return os.ModeDir | 0o555
	}
	if e.entry.Attribute&AttrReadOnly != 0 {
		return 0o444
	}
	return 0o666
}

func (e entryHeaderFileInfo) ModTime() time.Time {
	writeDate := ParseDate(e.entry.WriteDate)
	writeTime := ParseTime(e.entry.WriteTime)

	// An invalid date is reported as time.Time{}.
	// For writeTime that is not possible because midnight is a valid zero time.
	if writeDate.IsZero() {
		return time.Time{}
	}

	return time.Date(writeDate.Year(), writeDate.Month(), writeDate.Day(), writeTime.Hour(), writeTime.Minute(), writeTime.Second(), 0, time.UTC)
}

func (e entryHeaderFileInfo) IsDir() bool {
	return e.entry.Attribute&AttrDirectory == AttrDirectory
}

func (e entryHeaderFileInfo) Sys() interface{} {
	return e.entry
}

// rootInfo describes the only directory of the store.
type rootInfo struct{}

func (rootInfo) Name() string       { return "/" }
func (rootInfo) Size() int64        { return 0 }
func (rootInfo) Mode() os.FileMode  { return os.ModeDir | 0o755 }
func (rootInfo) ModTime() time.Time { return time.Time{} }
func (rootInfo) IsDir() bool        { return true }
func (rootInfo) Sys() interface{}   { return nil }
