package transfer

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bitrise-io/go-s3transfer/internal/osproxy"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bmatcuk/doublestar/v4"
)

// UploadPair is one file of a directory upload.
type UploadPair struct {
	LocalPath  string
	RemotePath string
}

// DirectoryWalker turns a local directory tree into upload pairs.
type DirectoryWalker struct {
	excludes []string
	osProxy  osproxy.OsProxy
	logger   log.Logger
}

// NewDirectoryWalker returns a walker skipping the paths matching any of excludePatterns.
func NewDirectoryWalker(excludePatterns []string, logger log.Logger) (*DirectoryWalker, error) {
	var excludes []string
	for _, pattern := range excludePatterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
		excludes = append(excludes, pattern)
	}

	return &DirectoryWalker{
		excludes: excludes,
		osProxy:  osproxy.RealOS{},
		logger:   logger,
	}, nil
}

// Walk lists the regular files under localDir in lexical order. Each file is mapped to
// remoteDir/<base of localDir>/<slash separated relative path>.
// Symlinks to regular files are included, symlinked directories are not followed.
func (w *DirectoryWalker) Walk(localDir, remoteDir string) ([]UploadPair, error) {
	root := filepath.Clean(localDir)
	prefix := filepath.Base(root)
	if trimmed := strings.TrimRight(remoteDir, "/"); trimmed != "" {
		prefix = trimmed + "/" + prefix
	}

	var pairs []UploadPair
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if w.excluded(rel) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !w.isRegularFile(path, d) {
			return nil
		}

		pairs = append(pairs, UploadPair{
			LocalPath:  path,
			RemotePath: prefix + "/" + rel,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return pairs, nil
}

func (w *DirectoryWalker) isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		w.logger.Warnf("Skipping %s: not a regular file", path)
		return false
	}

	info, err := w.osProxy.Stat(path)
	if err != nil {
		w.logger.Warnf("Skipping %s: broken symlink: %s", path, err)
		return false
	}
	if !info.Mode().IsRegular() {
		w.logger.Warnf("Skipping %s: symlink does not point to a regular file", path)
		return false
	}
	return true
}

func (w *DirectoryWalker) excluded(rel string) bool {
	for _, pattern := range w.excludes {
		if match, err := doublestar.Match(pattern, rel); err == nil && match {
			return true
		}
	}
	return false
}
