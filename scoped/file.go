package scoped

import (
	"io"
	"os"

	ownerrors "github.com/ownref/ownref/errors"
)

// State represents a file resource's lifecycle position.
type State uint8

const (
	StateUnopened State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// File is a scoped file resource. The zero value is Unopened; Open
// returns a File in the Open state.
type File struct {
	file  *os.File
	name  string
	state State
}

// Open acquires the named file for reading and writing, creating it if
// needed and discarding content from previous runs. Acquisition
// failure is propagated to the caller.
func Open(name string) (*File, error) {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, ownerrors.IOFailure("open "+name, err)
	}
	return &File{
		file:  f,
		name:  name,
		state: StateOpen,
	}, nil
}

// Name returns the identifier the resource was opened with.
func (f *File) Name() string {
	return f.name
}

// State returns the resource's current lifecycle state.
func (f *File) State() State {
	return f.state
}

// Write appends data to the file. When the file is not Open, Write is
// a no-op and returns nil.
func (f *File) Write(data string) error {
	if f.state != StateOpen {
		return nil
	}
	if _, err := f.file.WriteString(data); err != nil {
		return ownerrors.IOFailure("write "+f.name, err)
	}
	return nil
}

// ReadAll seeks to the start of the file and returns its entire
// content.
func (f *File) ReadAll() (string, error) {
	if f.state != StateOpen {
		return "", ownerrors.NotOpen("read " + f.name)
	}
	if _, err := f.file.Seek(0, io.SeekStart); err != nil {
		return "", ownerrors.IOFailure("seek "+f.name, err)
	}
	content, err := io.ReadAll(f.file)
	if err != nil {
		return "", ownerrors.IOFailure("read "+f.name, err)
	}
	return string(content), nil
}

// Close releases the underlying file exactly once. Closing an
// unopened or already closed file is a safe no-op.
func (f *File) Close() error {
	if f.state != StateOpen {
		return nil
	}
	f.state = StateClosed
	err := f.file.Close()
	f.file = nil
	if err != nil {
		return ownerrors.IOFailure("close "+f.name, err)
	}
	return nil
}
