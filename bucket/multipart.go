package bucket

import (
	"errors"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ErrSessionFinalized is returned when a multipart session is used after it was completed or aborted.
var ErrSessionFinalized = errors.New("multipart session already finalized")

// MultipartSession is an in-progress multipart upload. It must be completed or aborted
// exactly once and is not safe for concurrent use.
type MultipartSession struct {
	Key      Key
	UploadID string

	parts     []types.CompletedPart
	finalized bool
}

// NewMultipartSession ...
func NewMultipartSession(key Key, uploadID string) *MultipartSession {
	return &MultipartSession{
		Key:      key,
		UploadID: uploadID,
	}
}

// PartCount returns the number of parts acknowledged by the backend so far.
func (s *MultipartSession) PartCount() int {
	return len(s.parts)
}

// Finalized reports whether the session was already completed or aborted.
func (s *MultipartSession) Finalized() bool {
	return s.finalized
}

func (s *MultipartSession) addPart(partNumber int32, etag *string) {
	s.parts = append(s.parts, types.CompletedPart{
		ETag:       etag,
		PartNumber: aws.Int32(partNumber),
	})
}

// completedParts returns the acknowledged parts ordered by part number,
// which is what CompleteMultipartUpload expects.
func (s *MultipartSession) completedParts() []types.CompletedPart {
	parts := make([]types.CompletedPart, len(s.parts))
	copy(parts, s.parts)
	sort.Slice(parts, func(i, j int) bool {
		return aws.ToInt32(parts[i].PartNumber) < aws.ToInt32(parts[j].PartNumber)
	})
	return parts
}
