package transfer

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitrise-io/go-utils/retry"
)

// DownloadResult describes one finished download.
type DownloadResult struct {
	RemotePath       string
	LocalPath        string
	BytesTransferred int64
	Elapsed          time.Duration
}

// Download fetches the object at remotePath into localPath.
// If localPath is an existing directory the object keeps its name inside it.
func (s *Session) Download(ctx context.Context, remotePath, localPath string) (DownloadResult, error) {
	if strings.TrimSpace(remotePath) == "" {
		return DownloadResult{}, newError(InputError, "download", localPath, remotePath, errors.New("remote path is empty"))
	}
	if strings.TrimSpace(localPath) == "" {
		return DownloadResult{}, newError(InputError, "download", localPath, remotePath, errors.New("local path is empty"))
	}

	absPath, err := s.pathModifier.AbsPath(localPath)
	if err != nil {
		return DownloadResult{}, newError(InputError, "download", localPath, remotePath, err)
	}
	if info, err := s.osProxy.Stat(absPath); err == nil && info.IsDir() {
		absPath = filepath.Join(absPath, filepath.Base(remotePath))
	}

	key, err := s.client.GetKey(ctx, remotePath)
	if err != nil {
		return DownloadResult{}, newError(BackendError, "download", absPath, remotePath, err)
	}
	if key == nil {
		return DownloadResult{}, newError(BackendError, "download", absPath, remotePath, ErrNotFound)
	}

	start := time.Now()
	var written int64
	err = retry.Times(s.opts.DownloadRetries).Wait(s.opts.DownloadRetryWait).TryWithAbort(func(attempt uint) (error, bool) {
		if attempt > 0 {
			s.logger.Debugf("Retrying download of %s (attempt %d)", remotePath, attempt)
		}

		n, err := s.client.DownloadToFile(ctx, *key, absPath)
		if err != nil {
			s.logger.Warnf("Download of %s failed: %s", remotePath, err)
			return err, ctx.Err() != nil
		}
		written = n
		return nil, false
	})
	if err != nil {
		return DownloadResult{}, newError(BackendError, "download", absPath, remotePath, err)
	}

	result := DownloadResult{
		RemotePath:       remotePath,
		LocalPath:        absPath,
		BytesTransferred: written,
		Elapsed:          time.Since(start),
	}
	s.logger.Donef("%s is downloaded to %s (%s elapsed)", remotePath, absPath, result.Elapsed.Round(time.Millisecond))

	return result, nil
}
