package objectstorages

import (
	"context"
	"errors"
	"fmt"
	"io"
)

const (
	ProviderS3  = "s3"
	ProviderGCS = "gcs"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrUnsupportedProvider = errors.New("unsupported object storage provider")
)

//go:generate mockgen -source=object_storage.go -destination=./mocks/object_storage_mock.go -package=mocks
type ObjectStorage interface {
	// List returns every key under prefix in storage order.
	List(ctx context.Context, prefix string) ([]string, error)
	// Fetch opens the object stored at key. Callers close the reader.
	Fetch(ctx context.Context, key string) (io.ReadCloser, error)
}

// Config selects and configures a provider.
type Config struct {
	Provider string
	Bucket   string

	// S3
	Region          string
	EndpointURL     string
	ForcePathStyle  bool
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string

	// GCS
	CredentialsFile string
}

// New builds the ObjectStorage for cfg.Provider.
func New(ctx context.Context, cfg Config) (ObjectStorage, error) {
	switch cfg.Provider {
	case ProviderS3:
		client, err := NewS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewS3ObjectStorage(client, cfg.Bucket), nil
	case ProviderGCS:
		client, err := NewGCSClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewGCSObjectStorage(NewGCSBucket(client, cfg.Bucket)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, cfg.Provider)
	}
}
