// Package bucket wraps the object storage backend behind the small set of operations
// the transfer code needs: key handles, single-shot and multipart uploads, ACLs,
// listing, lookup, deletion and downloads.
package bucket

import (
	"context"
	"io"
	"time"
)

// Key is a handle for one object at a given path in the bucket.
type Key struct {
	Name string
}

// Object is a single listing entry. Size and LastModified are nil when the backend
// did not report them.
type Object struct {
	Name         string
	Size         *int64
	LastModified *time.Time
}

// Client ...
type Client interface {
	// NewKey returns a handle for remotePath without touching the backend.
	NewKey(remotePath string) Key
	// UploadFromFile pushes the whole local file as the content of key.
	UploadFromFile(ctx context.Context, key Key, localPath string) (int64, error)
	// SetPublicRead makes the object readable by anyone.
	SetPublicRead(ctx context.Context, key Key) error

	InitiateMultipart(ctx context.Context, remotePath string) (*MultipartSession, error)
	UploadPart(ctx context.Context, session *MultipartSession, partNumber int32, body io.ReadSeeker, size int64) error
	CompleteMultipart(ctx context.Context, session *MultipartSession) error
	AbortMultipart(ctx context.Context, session *MultipartSession) error

	// ListKeys returns every object under prefix in the order the backend returns them.
	ListKeys(ctx context.Context, prefix string) ([]Object, error)
	// GetKey returns nil and no error if there is no object at path.
	GetKey(ctx context.Context, path string) (*Key, error)
	DeleteKey(ctx context.Context, key Key) error
	DownloadToFile(ctx context.Context, key Key, localPath string) (int64, error)
}
