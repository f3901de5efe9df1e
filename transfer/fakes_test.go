package transfer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-s3transfer/bucket/mocks"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/stretchr/testify/require"
)

type progressCall struct {
	done  int
	parts int
}

type fakeProgress struct {
	startTotal int64
	startParts int
	updates    []progressCall
	finished   bool
}

func (p *fakeProgress) Start(totalBytes int64, parts int) {
	p.startTotal = totalBytes
	p.startParts = parts
}

func (p *fakeProgress) Update(done, parts int) {
	p.updates = append(p.updates, progressCall{done: done, parts: parts})
}

func (p *fakeProgress) Finish() {
	p.finished = true
}

func newTestSession(client *mocks.Client, opts Options) *Session {
	return NewSession(client, opts, log.NewLogger())
}

// sparseFile creates a file of the given size without writing its content.
func sparseFile(t *testing.T, name string, size int64) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, os.Truncate(path, size))

	return path
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
