package chunkuploader

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/bitrise-io/go-s3transfer/internal/osproxy"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedPart struct {
	number int32
	data   []byte
}

type fakePartUploader struct {
	parts  []recordedPart
	failAt int32
	err    error
	onPart func(partNumber int32)
}

func (f *fakePartUploader) UploadPart(_ context.Context, partNumber int32, body io.ReadSeeker, size int64) error {
	if f.onPart != nil {
		f.onPart(partNumber)
	}
	if partNumber == f.failAt {
		return f.err
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if int64(len(data)) != size {
		return errors.New("size mismatch")
	}
	f.parts = append(f.parts, recordedPart{number: partNumber, data: data})
	return nil
}

func TestUpload_SendsPartsInOrder(t *testing.T) {
	path, data := writeTestFile(t, 1050)
	plan, err := NewPlan(int64(len(data)), 10)
	require.NoError(t, err)

	dst := &fakePartUploader{}
	var progress [][2]int
	uploader := New(osproxy.RealOS{}, log.NewLogger())

	uploaded, err := uploader.Upload(context.Background(), path, plan, dst, func(done, total int) {
		progress = append(progress, [2]int{done, total})
	})
	require.NoError(t, err)

	assert.Equal(t, plan.PartCount, uploaded)
	require.Len(t, dst.parts, plan.PartCount)

	var joined []byte
	for i, p := range dst.parts {
		assert.Equal(t, int32(i+1), p.number)
		joined = append(joined, p.data...)
	}
	assert.Equal(t, data, joined)

	require.Len(t, progress, plan.PartCount)
	assert.Equal(t, [2]int{1, plan.PartCount}, progress[0])
	assert.Equal(t, [2]int{plan.PartCount, plan.PartCount}, progress[len(progress)-1])

	assert.Equal(t, int64(plan.PartCount), uploader.Stats().FinishedCount())
	assert.Equal(t, int64(len(data)), uploader.Stats().Bytes())
}

func TestUpload_StopsAtFirstFailure(t *testing.T) {
	path, data := writeTestFile(t, 1000)
	plan, err := NewPlan(int64(len(data)), 10)
	require.NoError(t, err)

	backendErr := errors.New("connection reset")
	dst := &fakePartUploader{failAt: 4, err: backendErr}
	var attempted []int32
	dst.onPart = func(n int32) { attempted = append(attempted, n) }

	uploaded, err := New(osproxy.RealOS{}, log.NewLogger()).Upload(context.Background(), path, plan, dst, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, backendErr)
	assert.Contains(t, err.Error(), "upload part 4")
	assert.Equal(t, 3, uploaded)
	assert.Equal(t, []int32{1, 2, 3, 4}, attempted)
}

func TestUpload_StopsWhenCancelled(t *testing.T) {
	path, data := writeTestFile(t, 1000)
	plan, err := NewPlan(int64(len(data)), 10)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dst := &fakePartUploader{}
	dst.onPart = func(n int32) {
		if n == 2 {
			cancel()
		}
	}

	uploaded, err := New(osproxy.RealOS{}, log.NewLogger()).Upload(ctx, path, plan, dst, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, uploaded)
	assert.Len(t, dst.parts, 2)
}

func TestUpload_FileShrankAfterPlanning(t *testing.T) {
	path, _ := writeTestFile(t, 100)
	plan, err := NewPlan(200, 10)
	require.NoError(t, err)

	dst := &fakePartUploader{}
	uploaded, err := New(osproxy.RealOS{}, log.NewLogger()).Upload(context.Background(), path, plan, dst, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRangeOutOfBounds)
	assert.Equal(t, 5, uploaded)
}
