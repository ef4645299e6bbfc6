package filemodels

import "io/fs"

// Handle is the native file handle an adapter delegates to. Both *os.File
// and *sftp.File satisfy it.
type Handle interface {
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	Seek(offset int64, whence int) (int64, error)
	Close() error
	Name() string
	Stat() (fs.FileInfo, error)
}

// Fder is implemented by handles backed by a real descriptor, like *os.File.
// Remote handles do not implement it.
type Fder interface {
	Fd() uintptr
}

// Syncer is implemented by handles that can flush buffered writes to stable
// storage.
type Syncer interface {
	Sync() error
}

var (
	ErrNotExist   = fs.ErrNotExist   // Item does not exist
	ErrExist      = fs.ErrExist      // Item already exists
	ErrPermission = fs.ErrPermission // Permission denied
	ErrInvalid    = fs.ErrInvalid    // Invalid operation
	ErrClosed     = fs.ErrClosed     // File already closed
)

// OpenError reports that a path and mode could not be satisfied by the
// native layer.
type OpenError struct {
	Path string
	Mode string
	Err  error
}

func (e *OpenError) Error() string {
	if e.Err == nil {
		return "open " + e.Path + " (mode " + e.Mode + ")"
	}
	return "open " + e.Path + " (mode " + e.Mode + "): " + e.Err.Error()
}

func (e *OpenError) Unwrap() error { return e.Err }

// IOError reports a read, write, seek, flush or close failure on an open
// handle.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return e.Op + " " + e.Path
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// StateError reports an operation the native layer rejected because the
// handle was already closed. The adapter does not pre-check the closed flag;
// it only classifies what the native layer returns.
type StateError struct {
	Op   string
	Path string
	Err  error
}

func (e *StateError) Error() string {
	if e.Err == nil {
		return e.Op + " " + e.Path + ": handle is closed"
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *StateError) Unwrap() error { return e.Err }
