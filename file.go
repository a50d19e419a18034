package ramfat

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/rusted-os/ramfat/checkpoint"
	"github.com/spf13/afero"
)

// These errors may occur while processing a file.
var (
	ErrReadFile  = errors.New("could not read file completely")
	ErrWriteFile = errors.New("could not write the file back to the store")
	ErrSeekFile  = errors.New("could not seek inside of the file")
	ErrReadDir   = errors.New("could not read the directory")
)

// fatFileFs provides all methods needed from the store for File.
// It mainly exists to be able to mock the Store in tests.
// Generated mock using mockgen:
//  mockgen -source=file.go -destination=file_mock.go -package ramfat
type fatFileFs interface {
	load(name Name) ([]byte, error)
	save(name Name, data []byte) error
	list() []DirEntry
	lookup(name Name) (DirEntry, bool)
}

// File is an open file of the store. The content is a snapshot taken at open
// time, writes are kept in memory and written back on Sync or Close.
type File struct {
	fs   fatFileFs
	path string

	isDirectory bool
	isReadOnly  bool

	entry   DirEntry
	content []byte
	dirty   bool
	offset  int64
}

var _ afero.File = (*File)(nil)

func (f *File) Close() error {
	err := f.Sync()

	f.fs = nil
	f.path = ""
	f.isDirectory = false
	f.isReadOnly = false
	f.entry = DirEntry{}
	f.content = nil
	f.dirty = false
	f.offset = 0

	return err
}

func (f *File) size() int64 {
	return int64(len(f.content))
}

func (f *File) Read(p []byte) (n int, err error) {
	if f.isDirectory {
		return 0, checkpoint.Wrap(syscall.EISDIR, ErrReadFile)
	}
	if len(p) == 0 {
		return 0, nil
	}

	// Reading a file if the size has been already reached, makes no sense.
	if f.size() <= f.offset {
		return 0, io.EOF
	}

	n = copy(p, f.content[f.offset:])
	f.offset += int64(n)
	return n, nil
}

func (f *File) ReadAt(p []byte, off int64) (n int, err error) {
	if f.isDirectory {
		return 0, checkpoint.Wrap(syscall.EISDIR, ErrReadFile)
	}
	if off < 0 {
		return 0, checkpoint.Wrap(syscall.EINVAL, ErrReadFile)
	}

	// Reading over the end makes no sense.
	if f.size() <= off {
		return 0, io.EOF
	}

	n = copy(p, f.content[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Seek jumps to a specific offset in the file. This affects all Read and Write operations except ReadAt and WriteAt.
// May return a syscall.EINVAL error if the whence value is invalid.
// May return an afero.ErrOutOfRange error if the offset is out of range.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		offset = f.offset + offset
	case io.SeekEnd:
		offset = f.size() + offset
	default:
		return 0, checkpoint.Wrap(ErrSeekFile, fmt.Errorf("%w, offset: %v, whence: %v", syscall.EINVAL, offset, whence))
	}

	if offset < 0 || offset > f.size() {
		return 0, checkpoint.Wrap(afero.ErrOutOfRange, fmt.Errorf("%w, offset: %v, whence: %v", ErrSeekFile, offset, whence))
	}

	f.offset = offset
	return offset, nil
}

func (f *File) checkWritable() error {
	if f.isDirectory {
		return checkpoint.Wrap(syscall.EISDIR, ErrWriteFile)
	}
	if f.isReadOnly {
		return checkpoint.Wrap(os.ErrPermission, ErrWriteFile)
	}
	return nil
}

func (f *File) Write(p []byte) (n int, err error) {
	n, err = f.WriteAt(p, f.offset)
	f.offset += int64(n)
	return n, err
}

// WriteAt writes into the snapshot. Writing behind the end fills the gap with zeros.
func (f *File) WriteAt(p []byte, off int64) (n int, err error) {
	if err := f.checkWritable(); err != nil {
		return 0, err
	}
	if off < 0 {
		return 0, checkpoint.Wrap(syscall.EINVAL, ErrWriteFile)
	}

	end := off + int64(len(p))
	if end > f.size() {
		f.content = append(f.content, make([]byte, end-f.size())...)
	}
	copy(f.content[off:], p)

	f.dirty = true
	f.entry.FileSize = uint32(len(f.content))
	return len(p), nil
}

func (f *File) Name() string {
	return f.path
}

// Readdir reads the contents of the root directory.
// May return syscall.ENOTDIR if the current File is no directory.
func (f *File) Readdir(count int) ([]os.FileInfo, error) {
	if !f.isDirectory {
		return nil, checkpoint.Wrap(syscall.ENOTDIR, ErrReadDir)
	}

	content := f.fs.list()

	if f.offset >= int64(len(content)) {
		if count > 0 {
			return nil, io.EOF
		}
		return []os.FileInfo{}, nil
	}

	end := len(content)
	if count > 0 && int(f.offset)+count < end {
		end = int(f.offset) + count
	}

	content = content[f.offset:end]
	f.offset = int64(end)

	result := make([]os.FileInfo, len(content))
	for i := range content {
		result[i] = content[i].FileInfo()
	}

	return result, nil
}

func (f *File) Readdirnames(count int) ([]string, error) {
	content, err := f.Readdir(count)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(content))
	for i, entry := range content {
		names[i] = entry.Name()
	}

	return names, nil
}

func (f *File) Stat() (os.FileInfo, error) {
	if f.isDirectory {
		return rootInfo{}, nil
	}
	return f.entry.FileInfo(), nil
}

// Sync writes the snapshot back to the store if it was changed.
func (f *File) Sync() error {
	if !f.dirty || f.isDirectory {
		return nil
	}

	name := f.entry.FileName()
	err := f.fs.save(name, f.content)
	if err != nil && !errors.Is(err, ErrOverrun) {
		return checkpoint.Wrap(err, ErrWriteFile)
	}

	// A lenient store still writes an overrun, a strict one refuses it.
	if e, ok := f.fs.lookup(name); ok && int(e.FileSize) == len(f.content) {
		f.entry = e
		f.dirty = false
	}
	return checkpoint.Wrap(err, ErrWriteFile)
}

func (f *File) Truncate(size int64) error {
	if err := f.checkWritable(); err != nil {
		return err
	}
	if size < 0 {
		return checkpoint.Wrap(syscall.EINVAL, ErrWriteFile)
	}

	if size <= f.size() {
		f.content = f.content[:size]
	} else {
		f.content = append(f.content, make([]byte, size-f.size())...)
	}

	f.dirty = true
	f.entry.FileSize = uint32(len(f.content))
	return nil
}

func (f *File) WriteString(s string) (ret int, err error) {
	return f.Write([]byte(s))
}
