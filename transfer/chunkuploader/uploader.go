package chunkuploader

import (
	"context"
	"fmt"
	"time"

	"github.com/bitrise-io/go-s3transfer/internal/osproxy"
	"github.com/bitrise-io/go-utils/v2/log"
)

// Uploader sends the parts of a Plan strictly in order, one at a time.
type Uploader struct {
	osProxy osproxy.OsProxy
	logger  log.Logger
	stats   *Stats
}

// New creates a new Uploader.
func New(osProxy osproxy.OsProxy, logger log.Logger) *Uploader {
	return &Uploader{
		osProxy: osProxy,
		logger:  logger,
		stats:   NewStats(),
	}
}

// Upload reads every range of plan from path and hands it to dst.
// It stops at the first failure and returns the number of parts acknowledged before it.
func (u *Uploader) Upload(ctx context.Context, path string, plan Plan, dst PartUploader, progress ProgressFunc) (int, error) {
	u.stats.Reset()
	u.logger.Debugf("Uploading %d parts, %dB each", plan.PartCount, plan.ChunkSize)

	uploaded := 0
	for _, r := range plan.Parts {
		if err := ctx.Err(); err != nil {
			return uploaded, fmt.Errorf("part %d upload cancelled: %w", r.Index, err)
		}

		if err := u.uploadPart(ctx, path, r, plan.PartCount, dst); err != nil {
			return uploaded, err
		}
		uploaded++

		if progress != nil {
			progress(r.Index, plan.PartCount)
		}
	}

	return uploaded, nil
}

// Stats returns the upload statistics.
func (u *Uploader) Stats() *Stats {
	return u.stats
}

func (u *Uploader) uploadPart(ctx context.Context, path string, r Range, partCount int, dst PartUploader) error {
	reader, err := OpenRange(u.osProxy, path, r.Offset, r.Length)
	if err != nil {
		return fmt.Errorf("open part %d: %w", r.Index, err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			u.logger.Warnf("Failed to close part %d reader: %s", r.Index, err)
		}
	}()

	u.logger.Debugf("Uploading part %d/%d (offset=%d, size=%d) [finished=%d] [avg=%v]",
		r.Index, partCount, r.Offset, r.Length,
		u.stats.FinishedCount(), u.stats.Average().Round(time.Millisecond))

	start := time.Now()
	if err := dst.UploadPart(ctx, int32(r.Index), reader, r.Length); err != nil {
		return fmt.Errorf("upload part %d: %w", r.Index, err)
	}
	u.stats.Update(time.Since(start), r.Length)

	return nil
}
