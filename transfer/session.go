// Package transfer moves local files to and from a bucket. Files below the multipart
// threshold are uploaded with a single request, larger ones in a fixed number of parts.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitrise-io/go-s3transfer/bucket"
	"github.com/bitrise-io/go-s3transfer/internal/osproxy"
	"github.com/bitrise-io/go-s3transfer/transfer/chunkuploader"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/docker/go-units"
)

// UploadResult describes one finished upload.
type UploadResult struct {
	LocalPath        string
	RemotePath       string
	BytesTransferred int64
	Elapsed          time.Duration
	Multipart        bool
	PartCount        int
}

// Session runs transfers against one bucket client. It is not safe for concurrent use.
type Session struct {
	client       bucket.Client
	opts         Options
	chunkConfig  chunkuploader.Config
	logger       log.Logger
	osProxy      osproxy.OsProxy
	pathModifier pathutil.PathModifier
	uploader     *chunkuploader.Uploader
	progress     ProgressReporter
}

// NewSession creates a new transfer session on top of client.
func NewSession(client bucket.Client, opts Options, logger log.Logger) *Session {
	osProxy := osproxy.RealOS{}
	progress := opts.Progress
	if progress == nil {
		progress = NewLogProgressReporter(logger)
	}

	return &Session{
		client:       client,
		opts:         opts,
		chunkConfig:  opts.chunkConfig(),
		logger:       logger,
		osProxy:      osProxy,
		pathModifier: pathutil.NewPathModifier(),
		uploader:     chunkuploader.New(osProxy, logger),
		progress:     progress,
	}
}

// Upload uploads a single local file to remotePath.
func (s *Session) Upload(ctx context.Context, localPath, remotePath string) (UploadResult, error) {
	if strings.TrimSpace(localPath) == "" {
		return UploadResult{}, newError(InputError, "upload", localPath, remotePath, errors.New("local path is empty"))
	}
	if strings.TrimSpace(remotePath) == "" {
		return UploadResult{}, newError(InputError, "upload", localPath, remotePath, errors.New("remote path is empty"))
	}

	absPath, err := s.pathModifier.AbsPath(localPath)
	if err != nil {
		return UploadResult{}, newError(InputError, "upload", localPath, remotePath, err)
	}

	info, err := s.osProxy.Stat(absPath)
	if err != nil {
		return UploadResult{}, newError(IOError, "upload", absPath, remotePath, err)
	}
	if info.IsDir() {
		return UploadResult{}, newError(InputError, "upload", absPath, remotePath, errors.New("path is a directory"))
	}

	result := UploadResult{
		LocalPath:  absPath,
		RemotePath: remotePath,
	}
	start := time.Now()

	if s.chunkConfig.UseMultipart(info.Size()) {
		result.Multipart = true
		result.PartCount, err = s.uploadMultipart(ctx, absPath, remotePath, info.Size())
		result.BytesTransferred = info.Size()
	} else {
		result.BytesTransferred, err = s.uploadSingle(ctx, absPath, remotePath)
	}
	if err != nil {
		return UploadResult{}, err
	}

	result.Elapsed = time.Since(start)
	s.logger.Donef("%s is uploaded to %s (filesize: %d, %s) (%s elapsed)",
		absPath, remotePath, result.BytesTransferred,
		units.HumanSizeWithPrecision(float64(result.BytesTransferred), 3),
		result.Elapsed.Round(time.Millisecond))

	return result, nil
}

// UploadPath uploads a file or a directory tree.
// A directory is uploaded under remotePath/<directory name>/, file by file, stopping at the first failure.
// A file uploaded to a remotePath ending in "/" keeps its name.
func (s *Session) UploadPath(ctx context.Context, localPath, remotePath string) ([]UploadResult, error) {
	absPath, err := s.pathModifier.AbsPath(localPath)
	if err != nil {
		return nil, newError(InputError, "upload", localPath, remotePath, err)
	}

	info, err := s.osProxy.Stat(absPath)
	if err != nil {
		return nil, newError(IOError, "upload", absPath, remotePath, err)
	}

	if !info.IsDir() {
		if strings.HasSuffix(remotePath, "/") {
			remotePath += filepath.Base(absPath)
		}
		result, err := s.Upload(ctx, absPath, remotePath)
		if err != nil {
			return nil, err
		}
		return []UploadResult{result}, nil
	}

	walker, err := NewDirectoryWalker(s.opts.ExcludePatterns, s.logger)
	if err != nil {
		return nil, newError(InputError, "upload", absPath, remotePath, err)
	}
	pairs, err := walker.Walk(absPath, remotePath)
	if err != nil {
		return nil, newError(IOError, "upload", absPath, remotePath, err)
	}

	s.logger.Infof("Uploading %d files from %s", len(pairs), absPath)

	var results []UploadResult
	for _, pair := range pairs {
		result, err := s.Upload(ctx, pair.LocalPath, pair.RemotePath)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *Session) uploadSingle(ctx context.Context, localPath, remotePath string) (int64, error) {
	s.logger.Debugf("Uploading %s with a single request", localPath)

	key := s.client.NewKey(remotePath)
	written, err := s.client.UploadFromFile(ctx, key, localPath)
	if err != nil {
		return 0, newError(BackendError, "upload", localPath, remotePath, err)
	}

	if err := s.client.SetPublicRead(ctx, key); err != nil {
		return 0, newError(BackendError, "set public-read acl", localPath, remotePath, err)
	}

	return written, nil
}

func (s *Session) uploadMultipart(ctx context.Context, localPath, remotePath string, size int64) (int, error) {
	key := s.client.NewKey(remotePath)

	plan, err := chunkuploader.NewPlan(size, s.chunkConfig.PartCount)
	if err != nil {
		return 0, newError(InputError, "plan multipart upload", localPath, remotePath, err)
	}

	session, err := s.client.InitiateMultipart(ctx, remotePath)
	if err != nil {
		return 0, newError(BackendError, "initiate multipart upload", localPath, remotePath, err)
	}
	s.logger.Debugf("Multipart upload %s started for %s", session.UploadID, remotePath)

	s.progress.Start(size, plan.PartCount)
	uploaded, err := s.uploader.Upload(ctx, localPath, plan, multipartTarget{client: s.client, session: session}, s.progress.Update)
	if err != nil {
		partialErr := &PartialUploadError{
			LocalPath:  localPath,
			RemotePath: remotePath,
			UploadID:   session.UploadID,
			Uploaded:   uploaded,
			Total:      plan.PartCount,
			Err:        err,
		}
		partialErr.Aborted, partialErr.AbortErr = s.abort(ctx, session)
		return uploaded, partialErr
	}

	if err := s.client.CompleteMultipart(ctx, session); err != nil {
		s.abort(ctx, session) //nolint:errcheck
		return uploaded, newError(BackendError, "complete multipart upload", localPath, remotePath, err)
	}
	s.progress.Finish()

	stats := s.uploader.Stats()
	s.logger.Debugf("Average part upload time: %s, throughput: %s/s",
		stats.Average().Round(time.Millisecond), units.HumanSize(stats.BytesPerSecond()))

	if err := s.client.SetPublicRead(ctx, key); err != nil {
		return uploaded, newError(BackendError, "set public-read acl", localPath, remotePath, err)
	}

	return uploaded, nil
}

// abort discards session if configured to. The abort request is sent even if ctx was cancelled.
func (s *Session) abort(ctx context.Context, session *bucket.MultipartSession) (bool, error) {
	if !s.opts.AbortOnFailure {
		s.logger.Warnf("Multipart upload %s of %s is left incomplete", session.UploadID, session.Key.Name)
		return false, nil
	}

	if err := s.client.AbortMultipart(context.WithoutCancel(ctx), session); err != nil {
		s.logger.Warnf("Failed to abort multipart upload %s: %s", session.UploadID, err)
		return false, fmt.Errorf("abort multipart upload: %w", err)
	}
	s.logger.Warnf("Multipart upload %s of %s is aborted", session.UploadID, session.Key.Name)

	return true, nil
}

type multipartTarget struct {
	client  bucket.Client
	session *bucket.MultipartSession
}

func (t multipartTarget) UploadPart(ctx context.Context, partNumber int32, body io.ReadSeeker, size int64) error {
	return t.client.UploadPart(ctx, t.session, partNumber, body, size)
}
