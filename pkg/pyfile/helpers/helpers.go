package helpers

import "runtime"

// ReadBufferSize returns the buffer size to use for whole-file reads: the
// file size itself for small files, otherwise 4KB scaled by the available
// CPU cores and capped at 1MB.
func ReadBufferSize(fileSize int64) int {
	// Base buffer size (4KB)
	baseSize := 4 * 1024

	if fileSize <= 0 {
		return baseSize
	}
	if fileSize < int64(baseSize) {
		return int(fileSize)
	}

	scaledSize := baseSize * runtime.GOMAXPROCS(0)

	// Cap maximum buffer size at 1MB
	maxSize := 1 * 1024 * 1024
	if scaledSize > maxSize {
		return maxSize
	}

	return scaledSize
}
