package chunkuploader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bitrise-io/go-s3transfer/internal/osproxy"
)

// ErrRangeOutOfBounds is returned when the requested range does not fit in the file.
var ErrRangeOutOfBounds = errors.New("range out of bounds")

// RangeReader reads a fixed byte range of a file. Reads never go past the end of the
// range, even if the file grows after it was opened.
type RangeReader struct {
	*io.SectionReader
	file *os.File
}

// OpenRange opens path and returns a reader for length bytes starting at offset.
// The caller must Close it.
func OpenRange(osProxy osproxy.OsProxy, path string, offset, length int64) (*RangeReader, error) {
	if offset < 0 || length < 0 {
		return nil, fmt.Errorf("%w: offset %d, length %d", ErrRangeOutOfBounds, offset, length)
	}

	file, err := osProxy.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close() //nolint:errcheck
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if offset+length > info.Size() {
		file.Close() //nolint:errcheck
		return nil, fmt.Errorf("%w: %d-%d of %s (size %d)", ErrRangeOutOfBounds, offset, offset+length, path, info.Size())
	}

	return &RangeReader{
		SectionReader: io.NewSectionReader(file, offset, length),
		file:          file,
	}, nil
}

// Close closes the underlying file.
func (r *RangeReader) Close() error {
	return r.file.Close()
}
