package transfer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when the remote object does not exist.
var ErrNotFound = errors.New("remote object not found")

// ErrorKind classifies transfer failures.
type ErrorKind int

const (
	// InputError means the caller passed something unusable: an empty path, a directory
	// where a file is expected, a size that cannot be planned.
	InputError ErrorKind = iota + 1
	// IOError means the local file could not be read or written.
	IOError
	// BackendError covers every failure reported by the storage client.
	BackendError
	// PartialUpload means a multipart upload stopped after some of its parts were sent.
	PartialUpload
)

func (k ErrorKind) String() string {
	switch k {
	case InputError:
		return "input error"
	case IOError:
		return "io error"
	case BackendError:
		return "backend error"
	case PartialUpload:
		return "partial upload"
	default:
		return "unknown error"
	}
}

// Error is a transfer failure with the paths it happened on.
type Error struct {
	Kind       ErrorKind
	Op         string
	LocalPath  string
	RemotePath string
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	switch {
	case e.LocalPath != "" && e.RemotePath != "":
		fmt.Fprintf(&b, " %s -> %s", e.LocalPath, e.RemotePath)
	case e.LocalPath != "":
		fmt.Fprintf(&b, " %s", e.LocalPath)
	case e.RemotePath != "":
		fmt.Fprintf(&b, " %s", e.RemotePath)
	}
	fmt.Fprintf(&b, ": %s: %s", e.Kind, e.Err)
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PartialUploadError is returned when a part of a multipart upload fails.
// Uploaded parts were acknowledged by the backend before the failure.
type PartialUploadError struct {
	LocalPath  string
	RemotePath string
	UploadID   string
	Uploaded   int
	Total      int
	// Aborted is true if the multipart session was discarded on the backend.
	// Otherwise it is left dangling until the backend expires it.
	Aborted  bool
	AbortErr error
	Err      error
}

func (e *PartialUploadError) Error() string {
	state := "left incomplete"
	if e.Aborted {
		state = "aborted"
	}
	return fmt.Sprintf("upload %s -> %s: %d of %d parts uploaded, multipart upload %s %s: %s",
		e.LocalPath, e.RemotePath, e.Uploaded, e.Total, e.UploadID, state, e.Err)
}

func (e *PartialUploadError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first transfer error in err's chain, or 0 if there is none.
func KindOf(err error) ErrorKind {
	var partialErr *PartialUploadError
	if errors.As(err, &partialErr) {
		return PartialUpload
	}
	var transferErr *Error
	if errors.As(err, &transferErr) {
		return transferErr.Kind
	}
	return 0
}

// IsKind ...
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

func newError(kind ErrorKind, op, localPath, remotePath string, err error) *Error {
	return &Error{
		Kind:       kind,
		Op:         op,
		LocalPath:  localPath,
		RemotePath: remotePath,
		Err:        err,
	}
}
