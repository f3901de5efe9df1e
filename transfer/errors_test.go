package transfer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "both paths",
			err:  newError(BackendError, "upload", "/tmp/a.bin", "data/a.bin", errors.New("forbidden")),
			want: "upload /tmp/a.bin -> data/a.bin: backend error: forbidden",
		},
		{
			name: "no paths",
			err:  newError(InputError, "delete", "", "", errors.New("remote path is empty")),
			want: "delete: input error: remote path is empty",
		},
		{
			name: "partial upload",
			err: &PartialUploadError{
				LocalPath:  "/tmp/a.bin",
				RemotePath: "data/a.bin",
				UploadID:   "id-1",
				Uploaded:   3,
				Total:      100,
				Aborted:    true,
				Err:        errors.New("reset"),
			},
			want: "upload /tmp/a.bin -> data/a.bin: 3 of 100 parts uploaded, multipart upload id-1 aborted: reset",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindOf(t *testing.T) {
	ioErr := newError(IOError, "upload", "a", "b", errors.New("permission denied"))

	assert.Equal(t, IOError, KindOf(fmt.Errorf("wrapped: %w", ioErr)))
	assert.Equal(t, PartialUpload, KindOf(&PartialUploadError{Err: ioErr}))
	assert.Equal(t, ErrorKind(0), KindOf(errors.New("plain")))
	assert.Equal(t, "unknown error", ErrorKind(0).String())
}
