//go:build integration
// +build integration

package integration

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitrise-io/go-s3transfer/bucket"
	"github.com/bitrise-io/go-s3transfer/config"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
)

var logger = log.NewLogger()

// newClient builds a client from the S3TRANSFER_* environment and skips the test if no bucket is configured.
func newClient(t *testing.T) (*bucket.S3Client, config.Config) {
	t.Helper()

	cfg, err := config.NewFromEnv(env.NewRepository())
	if err != nil {
		t.Fatalf("failed to parse configuration: %s", err)
	}
	if cfg.Bucket == "" {
		t.Skipf("%s is not set", config.BucketKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid configuration: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := bucket.NewS3Client(ctx, cfg.BucketParams(), logger)
	if err != nil {
		t.Fatalf("failed to create client: %s", err)
	}
	return client, cfg
}

// remotePrefix returns a prefix unique to one test run.
func remotePrefix(t *testing.T) string {
	return fmt.Sprintf("s3transfer-integration/%s-%d/", t.Name(), time.Now().UnixNano())
}

func randomFile(t *testing.T, name string, size int64) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close() //nolint:errcheck

	if _, err := io.CopyN(f, rand.Reader, size); err != nil {
		t.Fatal(err)
	}
	return path
}

func checksumOfFile(t *testing.T, path string) string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close() //nolint:errcheck

	return checksumOf(t, f)
}

func checksumOf(t *testing.T, r io.Reader) string {
	t.Helper()

	hash := sha256.New()
	if _, err := io.Copy(hash, r); err != nil {
		t.Fatal(err)
	}
	return hex.EncodeToString(hash.Sum(nil))
}
