package filelocal

import (
	"os"

	filemodels "github.com/ImGajeed76/pyfile/pkg/pyfile/models"
)

// DefaultPermissions is the mode bits used for files created by write and
// append dispositions.
const DefaultPermissions = 0644

// Flags translates a mode string into os.OpenFile flags. Unrecognized mode
// strings fall back to read-only; an invalid mode is not an error.
func Flags(mode string) int {
	switch mode {
	case "r", "rb":
		return os.O_RDONLY
	case "w", "wb":
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case "a", "ab":
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case "r+", "rb+":
		return os.O_RDWR
	case "w+", "wb+":
		return os.O_RDWR | os.O_CREATE | os.O_TRUNC
	default:
		return os.O_RDONLY
	}
}

// Open opens path on the local filesystem with the disposition encoded in
// mode.
func Open(path string, mode string) (filemodels.Handle, error) {
	handle, err := os.OpenFile(path, Flags(mode), DefaultPermissions)
	if err != nil {
		return nil, &filemodels.OpenError{Path: path, Mode: mode, Err: err}
	}
	return handle, nil
}
