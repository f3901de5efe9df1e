package transfer

import (
	"time"

	"github.com/bitrise-io/go-s3transfer/transfer/chunkuploader"
)

const defaultDownloadRetryWait = 5 * time.Second

// Options controls how a Session transfers files.
type Options struct {
	// PartCount is the target number of parts of a multipart upload.
	// Default: 100
	PartCount int
	// MultipartThreshold is the smallest file size uploaded in parts.
	// Default: 1,000,000,000 bytes
	MultipartThreshold int64
	// AbortOnFailure discards the multipart session on the backend when a part fails.
	// If false, the session is left for the backend to expire.
	// Default: true
	AbortOnFailure bool
	// DownloadRetries is the number of extra attempts of a failed download. 0 means a single attempt.
	DownloadRetries   uint
	DownloadRetryWait time.Duration
	// ExcludePatterns are doublestar patterns matched against the path relative to the
	// uploaded directory. Matching files and directories are skipped.
	ExcludePatterns []string
	// Progress receives multipart upload progress. Nil means logging through the session logger.
	Progress ProgressReporter
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		PartCount:          chunkuploader.DefaultPartCount,
		MultipartThreshold: chunkuploader.DefaultMultipartThreshold,
		AbortOnFailure:     true,
		DownloadRetryWait:  defaultDownloadRetryWait,
	}
}

func (o Options) chunkConfig() chunkuploader.Config {
	cfg := chunkuploader.DefaultConfig()
	if o.PartCount != 0 {
		cfg.PartCount = o.PartCount
	}
	if o.MultipartThreshold != 0 {
		cfg.MultipartThreshold = o.MultipartThreshold
	}
	return cfg
}
