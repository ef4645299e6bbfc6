package filesftp

import (
	"context"
	"os"

	filemodels "github.com/ImGajeed76/pyfile/pkg/pyfile/models"
	"github.com/ImGajeed76/pyfile/pkg/pyfile/sftpmanager"
)

// Flags translates a mode string into the flag set understood by
// sftp.Client.OpenFile, which accepts the os.O_* values. Unrecognized mode
// strings fall back to read-only, same as the local backend.
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

// Open opens a remote file through the pooled SFTP connection for details.
func Open(path string, mode string, details sftpmanager.ConnectionDetails) (filemodels.Handle, error) {
	client, err := sftpmanager.GetClient(context.Background(), details)
	if err != nil {
		return nil, &filemodels.OpenError{Path: path, Mode: mode, Err: err}
	}

	handle, err := client.OpenFile(path, Flags(mode))
	if err != nil {
		return nil, &filemodels.OpenError{Path: path, Mode: mode, Err: err}
	}
	return handle, nil
}

// OpenURL opens the remote file named by an sftp:// URL with the disposition
// encoded in mode.
func OpenURL(raw string, mode string) (filemodels.Handle, error) {
	target, err := ParseURL(raw)
	if err != nil {
		return nil, &filemodels.OpenError{Path: raw, Mode: mode, Err: err}
	}
	return Open(target.Path, mode, target.Details)
}
