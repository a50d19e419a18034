package ramfat

import (
	"errors"
	"os"
	"time"

	"github.com/rusted-os/ramfat/checkpoint"
	"github.com/spf13/afero"
)

// These errors are returned for operations the store does not support.
var (
	ErrNoDirectories = errors.New("the store has no directory hierarchy")
	ErrUnsupported   = errors.New("operation not supported by the store")
)

// Fs exposes a Store as afero.Fs. Files live in the root directory and are
// addressed as "NAME.TXT" (or just "NAME"), case insensitive.
type Fs struct {
	store *Store
}

var _ afero.Fs = (*Fs)(nil)

func NewFs(store *Store) *Fs {
	return &Fs{store: store}
}

// Store returns the underlying store.
func (fs *Fs) Store() *Store {
	return fs.store
}

func pathError(op, name string, err error) error {
	return &os.PathError{Op: op, Path: name, Err: err}
}

func (fs *Fs) Create(name string) (afero.File, error) {
	return fs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
}

func (fs *Fs) Mkdir(name string, perm os.FileMode) error {
	return pathError("mkdir", name, checkpoint.From(ErrNoDirectories))
}

func (fs *Fs) MkdirAll(path string, perm os.FileMode) error {
	if _, root, err := parsePath(path); err == nil && root {
		return nil
	}
	return pathError("mkdir", path, checkpoint.From(ErrNoDirectories))
}

func (fs *Fs) Open(name string) (afero.File, error) {
	return fs.OpenFile(name, os.O_RDONLY, 0)
}

func (fs *Fs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	fileName, root, err := parsePath(name)
	if err != nil {
		return nil, pathError("open", name, checkpoint.Wrap(err, os.ErrNotExist))
	}

	writable := flag&(os.O_WRONLY|os.O_RDWR) != 0

	if root {
		if writable {
			return nil, pathError("open", name, checkpoint.Wrap(ErrNoDirectories, os.ErrPermission))
		}
		return &File{
			fs:          fs.store,
			path:        name,
			isDirectory: true,
			isReadOnly:  true,
		}, nil
	}

	entry, ok := fs.store.Lookup(fileName)
	switch {
	case ok && flag&(os.O_CREATE|os.O_EXCL) == os.O_CREATE|os.O_EXCL:
		return nil, pathError("open", name, checkpoint.Wrap(ErrExists, os.ErrExist))
	case !ok && flag&os.O_CREATE == 0:
		return nil, pathError("open", name, checkpoint.Wrap(ErrNotFound, os.ErrNotExist))
	case !ok:
		if err := fs.store.Create(fileName); err != nil {
			return nil, pathError("open", name, err)
		}
		entry, _ = fs.store.Lookup(fileName)
	}

	f := &File{
		fs:         fs.store,
		path:       name,
		isReadOnly: !writable,
		entry:      entry,
	}

	if flag&os.O_TRUNC != 0 && writable {
		f.dirty = entry.FileSize != 0
		f.entry.FileSize = 0
		return f, nil
	}

	f.content, err = fs.store.Load(fileName)
	if err != nil {
		return nil, pathError("open", name, checkpoint.Wrap(err, ErrReadFile))
	}

	if flag&os.O_APPEND != 0 {
		f.offset = f.size()
	}

	return f, nil
}

func (fs *Fs) Remove(name string) error {
	return pathError("remove", name, checkpoint.From(ErrUnsupported))
}

func (fs *Fs) RemoveAll(path string) error {
	return pathError("remove", path, checkpoint.From(ErrUnsupported))
}

func (fs *Fs) Rename(oldname, newname string) error {
	return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: checkpoint.From(ErrUnsupported)}
}

func (fs *Fs) Stat(name string) (os.FileInfo, error) {
	fileName, root, err := parsePath(name)
	if err != nil {
		return nil, pathError("stat", name, checkpoint.Wrap(err, os.ErrNotExist))
	}
	if root {
		return rootInfo{}, nil
	}

	entry, ok := fs.store.Lookup(fileName)
	if !ok {
		return nil, pathError("stat", name, checkpoint.Wrap(ErrNotFound, os.ErrNotExist))
	}
	return entry.FileInfo(), nil
}

func (fs *Fs) Name() string {
	return "ramfat"
}

func (fs *Fs) Chmod(name string, mode os.FileMode) error {
	return pathError("chmod", name, checkpoint.From(ErrUnsupported))
}

func (fs *Fs) Chown(name string, uid, gid int) error {
	return pathError("chown", name, checkpoint.From(ErrUnsupported))
}

func (fs *Fs) Chtimes(name string, atime time.Time, mtime time.Time) error {
	return pathError("chtimes", name, checkpoint.From(ErrUnsupported))
}
