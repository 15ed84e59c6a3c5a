package streams

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"alb-analytics/internal/events"
	"alb-analytics/internal/models"
	"alb-analytics/internal/progress"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOpener struct {
	objects map[models.LogObjectKey][]byte
	opened  []models.LogObjectKey
	closed  int
}

type trackedCloser struct {
	io.Reader
	onClose func()
}

func (c trackedCloser) Close() error {
	c.onClose()
	return nil
}

func (f *fakeOpener) Open(_ context.Context, key models.LogObjectKey) (io.ReadCloser, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("not cached")
	}
	f.opened = append(f.opened, key)
	return trackedCloser{Reader: bytes.NewReader(data), onClose: func() { f.closed++ }}, nil
}

func gzipped(t *testing.T, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

type countingObserver struct {
	last events.ProgressEvent
	n    int
}

func (o *countingObserver) Observe(e events.ProgressEvent) {
	o.last = e
	o.n++
}

func TestDecompressedStream_ConcatenatesInOrder(t *testing.T) {
	t.Parallel()

	opener := &fakeOpener{objects: map[models.LogObjectKey][]byte{
		"a.log.gz": gzipped(t, "line-a1\nline-a2\n"),
		"b.log.gz": gzipped(t, "line-b1"),
		"c.log.gz": gzipped(t, ""),
		"d.log.gz": gzipped(t, "line-d1\n"),
	}}
	observer := &countingObserver{}
	tracker := progress.NewTracker(observer, "run", events.StageDecompress, 4)

	stream := NewDecompressedStream(context.Background(), opener, []models.LogObjectKey{"a.log.gz", "b.log.gz", "c.log.gz", "d.log.gz"}, tracker)
	got, err := io.ReadAll(stream)
	require.NoError(t, err)
	require.NoError(t, stream.Close())

	assert.Equal(t, "line-a1\nline-a2\nline-b1\nline-d1\n", string(got))
	assert.Equal(t, []models.LogObjectKey{"a.log.gz", "b.log.gz", "c.log.gz", "d.log.gz"}, opener.opened)
	assert.Equal(t, 4, opener.closed)
	assert.Equal(t, int64(4), tracker.Count())
	assert.True(t, observer.last.Done())
}

func TestDecompressedStream_OpensLazily(t *testing.T) {
	t.Parallel()

	opener := &fakeOpener{objects: map[models.LogObjectKey][]byte{
		"a.log.gz": gzipped(t, "first\n"),
		"b.log.gz": gzipped(t, "second\n"),
	}}

	stream := NewDecompressedStream(context.Background(), opener, []models.LogObjectKey{"a.log.gz", "b.log.gz"}, nil)
	assert.Empty(t, opener.opened)

	buf := make([]byte, 3)
	_, err := stream.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, []models.LogObjectKey{"a.log.gz"}, opener.opened)

	require.NoError(t, stream.Close())
	assert.Equal(t, 1, opener.closed)
}

func TestDecompressedStream_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		objects map[models.LogObjectKey][]byte
		keys    []models.LogObjectKey
	}{
		{
			name:    "missing object",
			objects: map[models.LogObjectKey][]byte{},
			keys:    []models.LogObjectKey{"missing.log.gz"},
		},
		{
			name:    "not gzip",
			objects: map[models.LogObjectKey][]byte{"plain.log.gz": []byte("plain text")},
			keys:    []models.LogObjectKey{"plain.log.gz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stream := NewDecompressedStream(context.Background(), &fakeOpener{objects: tt.objects}, tt.keys, nil)
			_, err := io.ReadAll(stream)
			require.Error(t, err)
			assert.Contains(t, err.Error(), string(tt.keys[0]))
		})
	}
}

func TestDecompressedStream_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opener := &fakeOpener{objects: map[models.LogObjectKey][]byte{"a.log.gz": gzipped(t, "x\n")}}
	stream := NewDecompressedStream(ctx, opener, []models.LogObjectKey{"a.log.gz"}, nil)

	_, err := io.ReadAll(stream)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, opener.opened)
}

func TestDecompressedStream_NoKeys(t *testing.T) {
	t.Parallel()

	stream := NewDecompressedStream(context.Background(), &fakeOpener{}, nil, nil)
	got, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Empty(t, got)
}
