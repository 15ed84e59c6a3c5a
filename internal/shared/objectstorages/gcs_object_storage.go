package objectstorages

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GCSObjectIterator yields object attributes until iterator.Done.
type GCSObjectIterator interface {
	Next() (*storage.ObjectAttrs, error)
}

// GCSBucket is the part of *storage.BucketHandle the storage needs.
type GCSBucket interface {
	Name() string
	Objects(ctx context.Context, query *storage.Query) GCSObjectIterator
	NewReader(ctx context.Context, name string) (io.ReadCloser, error)
}

type bucketHandle struct {
	name   string
	handle *storage.BucketHandle
}

// NewGCSBucket adapts a bucket of client to GCSBucket.
func NewGCSBucket(client *storage.Client, bucket string) GCSBucket {
	return &bucketHandle{name: bucket, handle: client.Bucket(bucket)}
}

func (b *bucketHandle) Name() string { return b.name }

func (b *bucketHandle) Objects(ctx context.Context, query *storage.Query) GCSObjectIterator {
	return b.handle.Objects(ctx, query)
}

func (b *bucketHandle) NewReader(ctx context.Context, name string) (io.ReadCloser, error) {
	reader, err := b.handle.Object(name).NewReader(ctx)
	if err != nil {
		return nil, err
	}
	return reader, nil
}

// NewGCSClient creates a client from a credentials file, or from application
// default credentials when none is configured.
func NewGCSClient(ctx context.Context, cfg Config) (*storage.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	if cfg.EndpointURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.EndpointURL))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create gcs client: %w", err)
	}
	return client, nil
}

type gcsObjectStorage struct {
	bucket GCSBucket
}

func NewGCSObjectStorage(bucket GCSBucket) ObjectStorage {
	return &gcsObjectStorage{bucket: bucket}
}

func (s *gcsObjectStorage) List(ctx context.Context, prefix string) ([]string, error) {
	it := s.bucket.Objects(ctx, &storage.Query{Prefix: prefix})

	var keys []string
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list gs://%s/%s: %w", s.bucket.Name(), prefix, err)
		}
		keys = append(keys, attrs.Name)
	}
	return keys, nil
}

func (s *gcsObjectStorage) Fetch(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := s.bucket.NewReader(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("%w: gs://%s/%s", ErrObjectNotFound, s.bucket.Name(), key)
		}
		return nil, fmt.Errorf("failed to read gs://%s/%s: %w", s.bucket.Name(), key, err)
	}
	return reader, nil
}
