package chunkuploader

import (
	"errors"
	"fmt"
)

// ErrInvalidPlan is returned for sizes and part counts that cannot be planned.
var ErrInvalidPlan = errors.New("invalid chunk plan")

// NewPlan cuts totalSize bytes into parts of floor(totalSize/targetPartCount) bytes.
// The part count is then ceil(totalSize/chunkSize), so it can exceed targetPartCount
// when the size is not evenly divisible. The last part holds the remaining bytes.
func NewPlan(totalSize int64, targetPartCount int) (Plan, error) {
	if targetPartCount <= 0 {
		return Plan{}, fmt.Errorf("%w: part count must be positive, got %d", ErrInvalidPlan, targetPartCount)
	}
	if targetPartCount > MaxPartCount {
		return Plan{}, fmt.Errorf("%w: part count %d is above the limit of %d", ErrInvalidPlan, targetPartCount, MaxPartCount)
	}
	if totalSize <= 0 {
		return Plan{}, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidPlan, totalSize)
	}
	if totalSize < int64(targetPartCount) {
		// floor division would give empty chunks
		return Plan{}, fmt.Errorf("%w: size %d is smaller than the part count %d", ErrInvalidPlan, totalSize, targetPartCount)
	}

	chunkSize := totalSize / int64(targetPartCount)
	partCount := int((totalSize + chunkSize - 1) / chunkSize)
	if partCount > MaxPartCount {
		return Plan{}, fmt.Errorf("%w: %d bytes in %d byte chunks need %d parts, the limit is %d",
			ErrInvalidPlan, totalSize, chunkSize, partCount, MaxPartCount)
	}

	parts := make([]Range, 0, partCount)
	for i := 0; i < partCount; i++ {
		offset := int64(i) * chunkSize
		length := chunkSize
		if remaining := totalSize - offset; remaining < length {
			length = remaining
		}
		parts = append(parts, Range{
			Index:  i + 1,
			Offset: offset,
			Length: length,
		})
	}

	return Plan{
		TotalSize: totalSize,
		PartCount: partCount,
		ChunkSize: chunkSize,
		Parts:     parts,
	}, nil
}
