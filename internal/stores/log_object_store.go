package stores

import (
	"context"
	"errors"
	"fmt"
	"io"

	"alb-analytics/internal/models"
	"alb-analytics/internal/shared/filestorages"
)

var (
	ErrLogObjectAlreadyExist = errors.New("log object already cached")
	ErrLogObjectNotCached    = errors.New("log object not cached")
)

// LogObjectStore caches downloaded log objects on local disk under their base
// name. Put without overwrite is an atomic create-if-not-exists, so two
// concurrent downloads of one key store it once:
//   - download A and download B both fetch "abc_20230501T1205Z_x.log.gz"
//   - A's Put succeeds and the file is published
//   - B's Put returns ErrLogObjectAlreadyExist and B's copy is discarded
//
//go:generate mockgen -source=log_object_store.go -destination=./mocks/log_object_store_mock.go -package=mocks
type LogObjectStore interface {
	Exists(ctx context.Context, key models.LogObjectKey) (bool, error)
	Put(ctx context.Context, key models.LogObjectKey, r io.Reader, overwrite bool) error
	Open(ctx context.Context, key models.LogObjectKey) (io.ReadCloser, error)
}

type logObjectStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewLogObjectStore(fileStorage filestorages.FileStorage) LogObjectStore {
	return &logObjectStore{fileStorage: fileStorage, dir: "downloads"}
}

func (s *logObjectStore) Exists(ctx context.Context, key models.LogObjectKey) (bool, error) {
	exists, err := s.fileStorage.Exists(ctx, s.getKey(key))
	if err != nil {
		return false, fmt.Errorf("failed to check cached log object: %w", err)
	}
	return exists, nil
}

func (s *logObjectStore) Put(ctx context.Context, key models.LogObjectKey, r io.Reader, overwrite bool) error {
	_, err := s.fileStorage.Put(ctx, s.getKey(key), r, filestorages.PutOptions{AllowOverwrite: overwrite})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrLogObjectAlreadyExist
		}
		return fmt.Errorf("failed to put log object: %w", err)
	}
	return nil
}

func (s *logObjectStore) Open(ctx context.Context, key models.LogObjectKey) (io.ReadCloser, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(key))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrLogObjectNotCached, key)
		}
		return nil, fmt.Errorf("failed to open log object: %w", err)
	}
	return readCloser, nil
}

func (s *logObjectStore) getKey(key models.LogObjectKey) string {
	return fmt.Sprintf("%s/%s", s.dir, key.BaseName())
}
