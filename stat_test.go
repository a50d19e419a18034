package ramfat

import (
	"os"
	"reflect"
	"testing"
	"time"
)

func TestDirEntry_FileInfo(t *testing.T) {
	e := DirEntry{
		EntryHeader: EntryHeader{
			Name:           [8]byte{'H', 'E', 'L', 'L', 'O', ' ', ' ', ' '},
			Ext:            DefaultExt,
			Attribute:      AttrArchive,
			FirstClusterLO: 8,
			FileSize:       9,
		},
		Slot: 3,
	}
	want := entryHeaderFileInfo{entry: e}

	if got := e.FileInfo(); !reflect.DeepEqual(got, want) {
		t.Errorf("DirEntry.FileInfo() = %v, want %v", got, want)
	}
}

func Test_entryHeaderFileInfo_Name(t *testing.T) {
	tests := []struct {
		name  string
		entry DirEntry
		want  string
	}{
		{
			name:  "name with extension",
			entry: DirEntry{EntryHeader: EntryHeader{Name: ParseName("hello"), Ext: DefaultExt}},
			want:  "HELLO.TXT",
		},
		{
			name:  "full length name",
			entry: DirEntry{EntryHeader: EntryHeader{Name: ParseName("ABCDEFGH"), Ext: DefaultExt}},
			want:  "ABCDEFGH.TXT",
		},
		{
			name:  "no extension",
			entry: DirEntry{EntryHeader: EntryHeader{Name: ParseName("RAW"), Ext: [3]byte{' ', ' ', ' '}}},
			want:  "RAW",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.FileInfo().Name(); got != tt.want {
				t.Errorf("entryHeaderFileInfo.Name() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_entryHeaderFileInfo_Mode(t *testing.T) {
	tests := []struct {
		name      string
		attribute byte
		want      os.FileMode
		wantDir   bool
	}{
		{name: "regular file", attribute: AttrArchive, want: 0o666},
		{name: "read only", attribute: AttrArchive | AttrReadOnly, want: 0o444},
		{name: "directory", attribute: AttrDirectory, want: os.ModeDir | 0o555, wantDir: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := DirEntry{EntryHeader: EntryHeader{Attribute: tt.attribute}}.FileInfo()
			if got := info.Mode(); got != tt.want {
				t.Errorf("entryHeaderFileInfo.Mode() = %v, want %v", got, tt.want)
			}
			if got := info.IsDir(); got != tt.wantDir {
				t.Errorf("entryHeaderFileInfo.IsDir() = %v, want %v", got, tt.wantDir)
			}
		})
	}
}

func Test_entryHeaderFileInfo_ModTime(t *testing.T) {
	tests := []struct {
		name      string
		writeDate uint16
		writeTime uint16
		want      time.Time
	}{
		{
			name:      "valid",
			writeDate: 0b0101100_0011_00101, // 2024-03-05
			writeTime: 0b01101_001110_01000, // 13:14:16
			want:      time.Date(2024, time.March, 5, 13, 14, 16, 0, time.UTC),
		},
		{
			name:      "no date",
			writeDate: 0,
			writeTime: 0b01101_001110_01000,
			want:      time.Time{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := DirEntry{EntryHeader: EntryHeader{WriteDate: tt.writeDate, WriteTime: tt.writeTime}}.FileInfo()
			if got := info.ModTime(); !got.Equal(tt.want) {
				t.Errorf("entryHeaderFileInfo.ModTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_entryHeaderFileInfo_SizeSys(t *testing.T) {
	e := DirEntry{EntryHeader: EntryHeader{FileSize: 1234}, Slot: 7}
	info := e.FileInfo()
	if info.Size() != 1234 {
		t.Errorf("Size() = %d", info.Size())
	}
	if got, ok := info.Sys().(DirEntry); !ok || got != e {
		t.Errorf("Sys() = %v", info.Sys())
	}
}

func Test_rootInfo(t *testing.T) {
	var info os.FileInfo = rootInfo{}
	if !info.IsDir() || info.Mode()&os.ModeDir == 0 || info.Name() != "/" {
		t.Errorf("rootInfo = %v %v %v", info.Name(), info.Mode(), info.IsDir())
	}
}
