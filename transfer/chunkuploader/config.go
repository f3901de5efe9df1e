package chunkuploader

const (
	// DefaultPartCount is the number of parts every multipart upload is split into, regardless of file size.
	DefaultPartCount = 100
	// DefaultMultipartThreshold is the file size (decimal gigabyte) from which multipart upload is used.
	DefaultMultipartThreshold int64 = 1000000000
	// MaxPartCount is the highest part number S3 accepts in a multipart upload.
	MaxPartCount = 10000
)

// Config holds configuration for the chunk uploader.
type Config struct {
	// PartCount is the target number of parts.
	// Default: 100
	PartCount int

	// MultipartThreshold is the smallest file size uploaded in parts.
	// Smaller files are uploaded with a single request.
	// Default: 1,000,000,000 bytes
	MultipartThreshold int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		PartCount:          DefaultPartCount,
		MultipartThreshold: DefaultMultipartThreshold,
	}
}

// UseMultipart reports whether a file of the given size takes the multipart path.
func (c Config) UseMultipart(size int64) bool {
	return size >= c.MultipartThreshold
}
