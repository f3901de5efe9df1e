package transfer

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/bitrise-io/go-s3transfer/bucket"
	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	// UnknownSize is listed when the backend does not report an object's size.
	UnknownSize = "0"
	// UnknownLastModified is listed when the backend does not report an object's modification time.
	UnknownLastModified = "unknown"
)

// RemoteObjectEntry is one listed object.
type RemoteObjectEntry struct {
	Path         string
	Size         string
	LastModified string
}

func newRemoteObjectEntry(obj bucket.Object) RemoteObjectEntry {
	entry := RemoteObjectEntry{
		Path:         obj.Name,
		Size:         UnknownSize,
		LastModified: UnknownLastModified,
	}
	if obj.Size != nil {
		entry.Size = strconv.FormatInt(*obj.Size, 10)
	}
	if obj.LastModified != nil {
		entry.LastModified = obj.LastModified.UTC().Format(time.RFC3339)
	}
	return entry
}

// List returns the objects under prefix in the order the backend returned them.
func (s *Session) List(ctx context.Context, prefix string) ([]RemoteObjectEntry, error) {
	s.logger.Infof("Listing: remote/%s", prefix)

	objects, err := s.client.ListKeys(ctx, prefix)
	if err != nil {
		return nil, newError(BackendError, "list", "", prefix, err)
	}

	entries := make([]RemoteObjectEntry, 0, len(objects))
	for _, obj := range objects {
		entries = append(entries, newRemoteObjectEntry(obj))
	}
	s.logger.Debugf("Found %d objects under %s", len(entries), prefix)

	return entries, nil
}

// PrintListing renders entries as a table.
func PrintListing(w io.Writer, prefix string, entries []RemoteObjectEntry) error {
	tb := table.NewWriter()
	tb.SetTitle("remote/%s", prefix)
	tb.AppendHeader(table.Row{"Index", "Size", "Last Modified", "Path"})
	for i, entry := range entries {
		tb.AppendRow(table.Row{i, entry.Size, entry.LastModified, entry.Path})
	}

	_, err := fmt.Fprintln(w, tb.Render())
	return err
}
