package objectstorages

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 serves a fixed bucket listing in pages of pageSize keys.
type fakeS3 struct {
	bucket   string
	objects  map[string]string
	keys     []string
	pageSize int
	listErr  error
	calls    int
}

func (f *fakeS3) ListObjectsV2(_ context.Context, params *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if aws.ToString(params.Bucket) != f.bucket {
		return nil, errors.New("unexpected bucket")
	}

	var matched []string
	for _, key := range f.keys {
		if strings.HasPrefix(key, aws.ToString(params.Prefix)) {
			matched = append(matched, key)
		}
	}

	start := 0
	if token := aws.ToString(params.ContinuationToken); token != "" {
		for i, key := range matched {
			if key == token {
				start = i
			}
		}
	}
	end := start + f.pageSize
	if end > len(matched) {
		end = len(matched)
	}

	output := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(end < len(matched))}
	for _, key := range matched[start:end] {
		output.Contents = append(output.Contents, types.Object{Key: aws.String(key)})
	}
	if end < len(matched) {
		output.NextContinuationToken = aws.String(matched[end])
	}
	return output, nil
}

func (f *fakeS3) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.ToString(params.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("The specified key does not exist.")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestS3ObjectStorage_List_FollowsPagination(t *testing.T) {
	t.Parallel()

	client := &fakeS3{
		bucket:   "prod-lbs-access-log",
		keys:     []string{"a/1", "a/2", "a/3", "a/4", "a/5", "b/1"},
		pageSize: 2,
	}
	objectStorage := NewS3ObjectStorage(client, "prod-lbs-access-log")

	keys, err := objectStorage.List(context.Background(), "a/")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/1", "a/2", "a/3", "a/4", "a/5"}, keys)
	assert.Equal(t, 3, client.calls)
}

func TestS3ObjectStorage_List_Empty(t *testing.T) {
	t.Parallel()

	objectStorage := NewS3ObjectStorage(&fakeS3{bucket: "b", pageSize: 10}, "b")

	keys, err := objectStorage.List(context.Background(), "none/")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestS3ObjectStorage_List_Error(t *testing.T) {
	t.Parallel()

	listErr := errors.New("access denied")
	objectStorage := NewS3ObjectStorage(&fakeS3{bucket: "b", pageSize: 10, listErr: listErr}, "b")

	_, err := objectStorage.List(context.Background(), "a/")
	assert.ErrorIs(t, err, listErr)
}

func TestS3ObjectStorage_Fetch(t *testing.T) {
	t.Parallel()

	objectStorage := NewS3ObjectStorage(&fakeS3{bucket: "b", objects: map[string]string{"a/1": "payload"}}, "b")

	reader, err := objectStorage.Fetch(context.Background(), "a/1")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	_, err = objectStorage.Fetch(context.Background(), "a/missing")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestNew_UnsupportedProvider(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), Config{Provider: "ftp"})
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}
