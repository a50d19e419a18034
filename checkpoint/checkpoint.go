// Package checkpoint decorates errors with the location they passed through,
// which results in something similar to a stacktrace.
// Each error added to a checkpoint can be checked by errors.Is and retrieved by errors.As.
package checkpoint

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
)

// From wraps err by a new checkpoint which records the calling function.
// It returns nil, if err == nil.
func From(err error) error {
	if err == nil {
		return nil
	}

	// io.EOF must be returned as io.EOF directly
	// https://github.com/golang/go/issues/39155
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return err
	}

	return newCheckpoint(nil, err)
}

// Wrap adds a checkpoint to prev and attaches err as the reason of the checkpoint.
// Both errors stay visible to errors.Is and errors.As:
//  var ErrSlotExhausted = errors.New("no free directory entry")
//
//  func create() error {
//  	err := scan()
//  	return checkpoint.Wrap(err, ErrSlotExhausted)
//  }
// Returns nil if prev == nil.
func Wrap(prev, err error) error {
	if prev == nil {
		return nil
	}

	// io.EOF must be returned as io.EOF directly
	// https://github.com/golang/go/issues/39155
	if prev == io.EOF {
		return io.EOF
	}

	return newCheckpoint(err, prev)
}

// Errorf creates a checkpoint around a freshly formatted error. The format
// may use %w to keep a sentinel matchable.
func Errorf(format string, args ...interface{}) error {
	return newCheckpoint(nil, fmt.Errorf(format, args...))
}

func newCheckpoint(err, prev error) *checkpoint {
	// Skip newCheckpoint and the exported helper.
	pc, file, line, ok := runtime.Caller(2)

	cp := &checkpoint{
		err:  err,
		prev: prev,

		callerOk: ok,
		file:     filepath.Base(file),
		line:     line,
	}

	if fn := runtime.FuncForPC(pc); ok && fn != nil {
		name := fn.Name()
		cp.function = name[strings.LastIndex(name, ".")+1:]
	}

	return cp
}

type checkpoint struct {
	err  error
	prev error

	callerOk bool
	file     string
	line     int
	function string
}

func (e *checkpoint) location() string {
	if !e.callerOk {
		return "unknown"
	}
	if e.function == "" {
		return fmt.Sprintf("%s:%d", e.file, e.line)
	}
	return fmt.Sprintf("%s:%d %s()", e.file, e.line, e.function)
}

func (e *checkpoint) Error() string {
	// A checkpoint formats its predecessors itself, other errors get indented.
	prevErrString := e.prev.Error()
	if _, ok := e.prev.(*checkpoint); !ok {
		prevErrString = "\t" + strings.ReplaceAll(prevErrString, "\n", "\n\t")
	}

	if e.err == nil {
		return fmt.Sprintf("at %s\n%v", e.location(), prevErrString)
	}
	return fmt.Sprintf("at %s: %v\n%v", e.location(), e.err, prevErrString)
}

func (e *checkpoint) Unwrap() error {
	return e.prev
}

func (e *checkpoint) Is(target error) bool {
	return e.err != nil && errors.Is(e.err, target)
}

func (e *checkpoint) As(target interface{}) bool {
	return e.err != nil && errors.As(e.err, target)
}
