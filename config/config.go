// Package config reads the transfer settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bitrise-io/go-s3transfer/bucket"
	"github.com/bitrise-io/go-s3transfer/transfer"
	"github.com/bitrise-io/go-s3transfer/transfer/chunkuploader"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
)

// Environment variables read by NewFromEnv.
const (
	BucketKey             = "S3TRANSFER_BUCKET"
	RegionKey             = "S3TRANSFER_REGION"
	AccessKeyIDKey        = "S3TRANSFER_ACCESS_KEY_ID"
	SecretAccessKeyKey    = "S3TRANSFER_SECRET_ACCESS_KEY"
	EndpointKey           = "S3TRANSFER_ENDPOINT"
	InsecureSkipVerifyKey = "S3TRANSFER_INSECURE_SKIP_VERIFY"
	PartCountKey          = "S3TRANSFER_PART_COUNT"
	MultipartThresholdKey = "S3TRANSFER_MULTIPART_THRESHOLD"
	AbortOnFailureKey     = "S3TRANSFER_ABORT_ON_FAILURE"
	DownloadRetriesKey    = "S3TRANSFER_DOWNLOAD_RETRIES"
	ExcludeKey            = "S3TRANSFER_EXCLUDE"
	VerboseKey            = "S3TRANSFER_VERBOSE"
)

// Config holds every setting of a transfer run.
// Bucket and Region are required but checked by Validate, so flags can still provide them.
type Config struct {
	Bucket          string          `env:"S3TRANSFER_BUCKET"`
	Region          string          `env:"S3TRANSFER_REGION"`
	AccessKeyID     stepconf.Secret `env:"S3TRANSFER_ACCESS_KEY_ID"`
	SecretAccessKey stepconf.Secret `env:"S3TRANSFER_SECRET_ACCESS_KEY"`
	// Endpoint points the client at an S3 compatible service. Path style addressing is used with it.
	Endpoint string `env:"S3TRANSFER_ENDPOINT"`
	// InsecureSkipVerify disables TLS certificate checks on the storage client only.
	InsecureSkipVerify bool `env:"S3TRANSFER_INSECURE_SKIP_VERIFY"`

	PartCount          int   `env:"S3TRANSFER_PART_COUNT"`
	MultipartThreshold int64 `env:"S3TRANSFER_MULTIPART_THRESHOLD"`
	AbortOnFailure     bool  `env:"S3TRANSFER_ABORT_ON_FAILURE"`
	DownloadRetries    int   `env:"S3TRANSFER_DOWNLOAD_RETRIES"`
	// ExcludePatterns are separated by "|" in the environment.
	ExcludePatterns []string `env:"S3TRANSFER_EXCLUDE"`
	Verbose         bool     `env:"S3TRANSFER_VERBOSE"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		PartCount:          chunkuploader.DefaultPartCount,
		MultipartThreshold: chunkuploader.DefaultMultipartThreshold,
		AbortOnFailure:     true,
	}
}

// NewFromEnv reads the configuration from envRepo. Unset variables keep their default.
// It does not validate required values, call Validate once every override is applied.
func NewFromEnv(envRepo env.Repository) (Config, error) {
	cfg := Default()
	if err := stepconf.NewInputParser(envRepo).Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values a storage client cannot be built without.
func (c Config) Validate() error {
	var errs []error
	if c.Bucket == "" {
		errs = append(errs, fmt.Errorf("bucket must not be empty (%s)", BucketKey))
	}
	if c.Region == "" {
		errs = append(errs, fmt.Errorf("region must not be empty (%s)", RegionKey))
	}
	if (c.AccessKeyID == "") != (c.SecretAccessKey == "") {
		errs = append(errs, fmt.Errorf("%s and %s must be set together", AccessKeyIDKey, SecretAccessKeyKey))
	}
	if c.PartCount <= 0 || c.PartCount > chunkuploader.MaxPartCount {
		errs = append(errs, fmt.Errorf("part count must be between 1 and %d, got %d", chunkuploader.MaxPartCount, c.PartCount))
	}
	if c.MultipartThreshold <= 0 {
		errs = append(errs, fmt.Errorf("multipart threshold must be positive, got %d", c.MultipartThreshold))
	}
	if c.DownloadRetries < 0 {
		errs = append(errs, fmt.Errorf("download retries must not be negative, got %d", c.DownloadRetries))
	}
	return errors.Join(errs...)
}

// BucketParams returns the parameters of the storage client.
func (c Config) BucketParams() bucket.Params {
	return bucket.Params{
		Region:             c.Region,
		Bucket:             c.Bucket,
		AccessKeyID:        string(c.AccessKeyID),
		SecretAccessKey:    string(c.SecretAccessKey),
		Endpoint:           c.Endpoint,
		InsecureSkipVerify: c.InsecureSkipVerify,
	}
}

// TransferOptions returns the options of a transfer session.
func (c Config) TransferOptions() transfer.Options {
	opts := transfer.DefaultOptions()
	opts.PartCount = c.PartCount
	opts.MultipartThreshold = c.MultipartThreshold
	opts.AbortOnFailure = c.AbortOnFailure
	if c.DownloadRetries > 0 {
		opts.DownloadRetries = uint(c.DownloadRetries)
	}
	opts.ExcludePatterns = c.ExcludePatterns
	return opts
}

// Print logs the configuration with secrets masked.
func (c Config) Print(logger log.Logger) {
	logger.Infof("Configuration:")
	logger.Printf("- Bucket: %s", c.Bucket)
	logger.Printf("- Region: %s", c.Region)
	logger.Printf("- AccessKeyID: %s", c.AccessKeyID)
	logger.Printf("- SecretAccessKey: %s", c.SecretAccessKey)
	logger.Printf("- Endpoint: %s", c.Endpoint)
	logger.Printf("- InsecureSkipVerify: %t", c.InsecureSkipVerify)
	logger.Printf("- PartCount: %d", c.PartCount)
	logger.Printf("- MultipartThreshold: %d", c.MultipartThreshold)
	logger.Printf("- AbortOnFailure: %t", c.AbortOnFailure)
	logger.Printf("- DownloadRetries: %d", c.DownloadRetries)
	logger.Printf("- ExcludePatterns: %s", strings.Join(c.ExcludePatterns, ", "))
	logger.Printf("- Verbose: %t", c.Verbose)
}
