// Package chunkuploader splits a local file into byte ranges and uploads them one by one
// as the parts of a multipart upload.
package chunkuploader

import (
	"context"
	"io"
)

// Range is one part of a Plan. Index is the 1-based part number.
type Range struct {
	Index  int
	Offset int64
	Length int64
}

// End returns the offset right after the last byte of the range.
func (r Range) End() int64 {
	return r.Offset + r.Length
}

// Plan describes how a file of TotalSize bytes is cut into parts.
type Plan struct {
	TotalSize int64
	PartCount int
	ChunkSize int64
	Parts     []Range
}

// PartUploader receives the parts of one multipart upload.
type PartUploader interface {
	UploadPart(ctx context.Context, partNumber int32, body io.ReadSeeker, size int64) error
}

// ProgressFunc is called after each part is acknowledged.
type ProgressFunc func(done, total int)
