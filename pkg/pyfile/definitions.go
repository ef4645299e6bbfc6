package pyfile

// DefaultMode is the disposition used when Open is called without options,
// matching the mimicked convention open(path) == open(path, "r").
const DefaultMode = "r"

// Whence values accepted by Seek. Anything else behaves as SeekSet.
const (
	SeekSet = 0 // relative to the start of the file
	SeekCur = 1 // relative to the current position
	SeekEnd = 2 // relative to the end of the file
)

// OpenOptions carries the optional arguments of Open: the mode string and
// the buffering hint (0 unbuffered, 1 line-buffered, negative system
// default, other positive values an approximate buffer size). Neither
// backend exposes a matching buffering control, so the hint is recorded but
// never changes read or write behavior.
type OpenOptions struct {
	Mode      string
	Buffering int
}

// DefaultOpenOptions returns the options used when Open is called without
// any.
func DefaultOpenOptions() OpenOptions {
	return OpenOptions{
		Mode:      DefaultMode,
		Buffering: -1,
	}
}

// writable reports whether a mode string selects a disposition that can
// write. Unrecognized modes fall back to read-only, so they are not
// writable.
func writable(mode string) bool {
	switch mode {
	case "w", "wb", "a", "ab", "r+", "rb+", "w+", "wb+":
		return true
	}
	return false
}
