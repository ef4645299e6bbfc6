package pyfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/term"

	filehelpers "github.com/ImGajeed76/pyfile/pkg/pyfile/helpers"
	filemodels "github.com/ImGajeed76/pyfile/pkg/pyfile/models"
	filelocal "github.com/ImGajeed76/pyfile/pkg/pyfile/operations/local"
	filesftp "github.com/ImGajeed76/pyfile/pkg/pyfile/operations/sftp"
)

// File mimics a scripting-language file object on top of a native handle.
// Every operation delegates to the handle; the adapter only keeps the mode
// string, the path and a closed flag, and derives the line-oriented and
// count-capped read variants.
//
// A File is not safe for concurrent use; callers needing shared access must
// serialize externally. Operations on a closed File are not guarded and
// surface whatever the native layer reports.
type File struct {
	handle    filemodels.Handle
	name      string
	mode      string
	closed    bool
	buffering int

	// Kept for interface parity with the mimicked object. Never consulted.
	Softspace bool
	Encoding  string
	Newlines  string
}

// Open opens path with the given options; when omitted the mode is "r" and
// the buffering hint the system default. Paths with an sftp:// prefix are
// opened on the remote host through the shared connection manager,
// everything else on the local filesystem. Failures are reported as
// *filemodels.OpenError.
func Open(path string, opts ...OpenOptions) (*File, error) {
	opt := DefaultOpenOptions()
	if len(opts) > 0 {
		opt = opts[0]
		if opt.Mode == "" {
			opt.Mode = DefaultMode
		}
	}

	var handle filemodels.Handle
	var err error
	if strings.HasPrefix(path, "sftp://") {
		handle, err = filesftp.OpenURL(path, opt.Mode)
	} else {
		handle, err = filelocal.Open(path, opt.Mode)
	}
	if err != nil {
		return nil, err
	}

	return &File{
		handle:    handle,
		name:      path,
		mode:      opt.Mode,
		buffering: opt.Buffering,
	}, nil
}

// Name returns the path the file was opened with.
func (f *File) Name() string { return f.name }

// Mode returns the mode string the file was opened with.
func (f *File) Mode() string { return f.mode }

// Closed reports whether Close has been called.
func (f *File) Closed() bool { return f.closed }

// Close releases the native handle and marks the adapter closed. Closing is
// not idempotent: a second call surfaces the native layer's error, so call
// it at most once.
func (f *File) Close() error {
	err := f.handle.Close()
	f.closed = true
	if err != nil {
		return f.opError("close", err)
	}
	return nil
}

// Flush forces buffered writes to the underlying storage. On read-only
// dispositions, and on handles that cannot sync, it is a no-op.
func (f *File) Flush() error {
	if !writable(f.mode) {
		return nil
	}
	s, ok := f.handle.(filemodels.Syncer)
	if !ok {
		return nil
	}
	if err := s.Sync(); err != nil {
		return f.opError("flush", err)
	}
	return nil
}

// Tell returns the current byte offset.
func (f *File) Tell() (int64, error) {
	pos, err := f.handle.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, f.opError("tell", err)
	}
	return pos, nil
}

// Seek repositions the handle. Without a whence, or with SeekSet, offset is
// absolute. SeekCur seeks relative to the current position and SeekEnd
// relative to the end of the file; negative offsets seek backwards from
// there. Unrecognized whence values behave as absolute. The target offset is
// handed to the native layer unchecked.
func (f *File) Seek(offset int64, whence ...int) error {
	w := SeekSet
	if len(whence) > 0 {
		w = whence[0]
	}

	target := offset
	switch w {
	case SeekCur:
		pos, err := f.Tell()
		if err != nil {
			return err
		}
		target = pos + offset
	case SeekEnd:
		info, err := f.handle.Stat()
		if err != nil {
			return f.opError("seek", err)
		}
		target = info.Size() + offset
	}

	if _, err := f.handle.Seek(target, io.SeekStart); err != nil {
		return f.opError("seek", err)
	}
	return nil
}

// Write writes value to the handle. Strings and NUL-terminated byte slices
// are written as-is; booleans, integers, floats and single characters are
// converted to their canonical text form first. No separator is appended.
func (f *File) Write(value any) error {
	text, err := formatValue(value)
	if err != nil {
		return &filemodels.IOError{Op: "write", Path: f.name, Err: err}
	}
	if _, err := io.WriteString(f.handle, text); err != nil {
		return f.opError("write", err)
	}
	return nil
}

// WriteLines writes each element of lines in order via Write. No separators
// are inserted between or after elements; callers include their own line
// terminators.
func (f *File) WriteLines(lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(f.handle, line); err != nil {
			return f.opError("writelines", err)
		}
	}
	return nil
}

// Read with no count returns everything from the current position to the end
// of the file and leaves the handle at end-of-file. With a count it returns
// up to count bytes, advancing by the bytes actually read; at end-of-file
// the result is short or empty without error. Read(0) returns an empty
// string and does not move the position.
func (f *File) Read(count ...int) (string, error) {
	if len(count) == 0 {
		return f.readAll()
	}
	return f.readCount(count[0])
}

// readAll captures the current offset, reads the whole file from the start
// and returns the part after the captured offset.
func (f *File) readAll() (string, error) {
	pos, err := f.Tell()
	if err != nil {
		return "", err
	}
	if _, err := f.handle.Seek(0, io.SeekStart); err != nil {
		return "", f.opError("read", err)
	}

	var size int64
	if info, err := f.handle.Stat(); err == nil {
		size = info.Size()
	}
	reader := bufio.NewReaderSize(f.handle, filehelpers.ReadBufferSize(size))
	content, err := io.ReadAll(reader)
	if err != nil {
		return "", f.opError("read", err)
	}

	if pos > int64(len(content)) {
		pos = int64(len(content))
	}
	return string(content[pos:]), nil
}

func (f *File) readCount(count int) (string, error) {
	if count <= 0 {
		return "", nil
	}

	buf := make([]byte, count)
	n, err := io.ReadFull(f.handle, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", f.opError("read", err)
	}
	return string(buf[:n]), nil
}

// ReadLine returns the next line including its trailing newline; only a
// final line with no terminator in the source comes back without one. At
// end-of-file the result is empty without error. With a count, a longer line
// is cut to count bytes and the discarded tail is pushed back with a
// relative seek, so the next read continues right after the truncated
// region.
func (f *File) ReadLine(count ...int) (string, error) {
	line, err := f.readLine()
	if err != nil {
		return "", err
	}
	if len(count) == 0 {
		return line, nil
	}
	return f.truncateLine(line, count[0])
}

// readLine advances byte by byte so the handle position always matches what
// has been returned.
func (f *File) readLine() (string, error) {
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := f.handle.Read(buf)
		if n > 0 {
			line = append(line, buf[0])
			if buf[0] == '\n' {
				break
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", f.opError("readline", err)
		}
	}
	return string(line), nil
}

// truncateLine cuts line down to count bytes and rewinds the handle by the
// length of the discarded tail.
func (f *File) truncateLine(line string, count int) (string, error) {
	if count < 0 {
		count = 0
	}
	if len(line) <= count {
		return line, nil
	}

	discarded := int64(len(line) - count)
	if err := f.Seek(-discarded, SeekCur); err != nil {
		return "", err
	}
	return line[:count], nil
}

// ReadLines returns the lines from the current position to end-of-file, each
// produced by the same rule as ReadLine. With a count, lines accumulate
// until the running total would pass count; the crossing line is cut to
// exactly fill the remaining budget, the handle is rewound past its
// discarded remainder, and later lines are left unread. On a mid-sequence
// failure the lines read so far are returned with the error; there is no
// rollback.
func (f *File) ReadLines(count ...int) ([]string, error) {
	capped := len(count) > 0
	var budget int
	if capped {
		budget = count[0]
	}

	var lines []string
	total := 0
	for {
		line, err := f.readLine()
		if err != nil {
			return lines, err
		}
		if line == "" {
			return lines, nil
		}

		if capped && total+len(line) > budget {
			truncated, err := f.truncateLine(line, budget-total)
			if err != nil {
				return lines, err
			}
			if truncated != "" {
				lines = append(lines, truncated)
			}
			return lines, nil
		}

		total += len(line)
		lines = append(lines, line)
	}
}

// Fileno returns the platform handle behind the adapter. The value is an
// opaque identifier in the host platform's domain, not interchangeable with
// the descriptor convention of the mimicked object; do not hand it to
// unrelated fd-based APIs. Handles without a descriptor (remote files)
// report an error.
func (f *File) Fileno() (uintptr, error) {
	h, ok := f.handle.(filemodels.Fder)
	if !ok {
		return 0, &filemodels.IOError{Op: "fileno", Path: f.name, Err: filemodels.ErrInvalid}
	}
	return h.Fd(), nil
}

// Isatty reports whether the handle is attached to an interactive terminal.
// Backends without a descriptor always report false.
func (f *File) Isatty() bool {
	fd, err := f.Fileno()
	if err != nil {
		return false
	}
	return term.IsTerminal(int(fd))
}

// opError classifies a native failure: closed-handle errors become
// *filemodels.StateError, everything else *filemodels.IOError.
func (f *File) opError(op string, err error) error {
	if errors.Is(err, filemodels.ErrClosed) {
		return &filemodels.StateError{Op: op, Path: f.name, Err: err}
	}
	return &filemodels.IOError{Op: op, Path: f.name, Err: err}
}

// formatValue converts a write value to its textual form.
func formatValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		if i := bytes.IndexByte(v, 0); i >= 0 {
			v = v[:i]
		}
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case rune:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported value type %T: %w", value, filemodels.ErrInvalid)
	}
}
